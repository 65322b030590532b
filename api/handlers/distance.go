package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/recseq/siscan-go/pkg/siscan"
)

// DistanceRequest represents a pairwise distance request.
type DistanceRequest struct {
	Sequence1 string `json:"sequence1"`
	Sequence2 string `json:"sequence2"`
}

// DistanceResponse represents the response for a pairwise distance.
type DistanceResponse struct {
	PDistance   float64 `json:"p_distance"`
	JukesCantor float64 `json:"jukes_cantor"`
}

// DistanceHandler handles pairwise distance requests.
func DistanceHandler(w http.ResponseWriter, r *http.Request) {
	var req DistanceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if len(req.Sequence1) == 0 || len(req.Sequence2) == 0 {
		http.Error(w, `{"error": "sequence1 and sequence2 are required"}`, http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(DistanceResponse{
		PDistance:   siscan.PDistance(req.Sequence1, req.Sequence2),
		JukesCantor: siscan.JukesCantor(req.Sequence1, req.Sequence2),
	})
}
