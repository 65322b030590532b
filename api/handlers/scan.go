package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/recseq/siscan-go/pkg/siscan"
)

// SequenceInput represents one named aligned sequence.
type SequenceInput struct {
	Name  string `json:"name"`
	Bases string `json:"bases"`
}

// ScanRequest represents a breakpoint scan request.
type ScanRequest struct {
	Sequences []SequenceInput   `json:"sequences"`
	Options   map[string]string `json:"options,omitempty"`
}

// RegionResult represents one merged breakpoint region.
type RegionResult struct {
	Recombinant string  `json:"recombinant"`
	Parent1     string  `json:"parent_1"`
	Parent2     string  `json:"parent_2"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
	ZScore      float64 `json:"z_score"`
}

// ScanResponse represents the response for a breakpoint scan.
type ScanResponse struct {
	Regions     []RegionResult `json:"regions"`
	Diagnostics []string       `json:"diagnostics,omitempty"`
}

// ScanHandler handles breakpoint scan requests.
func ScanHandler(w http.ResponseWriter, r *http.Request) {
	var req ScanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, `{"error": "invalid request body"}`, http.StatusBadRequest)
		return
	}

	if len(req.Sequences) < 3 {
		http.Error(w, `{"error": "at least 3 sequences are required"}`, http.StatusBadRequest)
		return
	}

	names := make([]string, len(req.Sequences))
	seqs := make([]string, len(req.Sequences))
	for i, s := range req.Sequences {
		names[i] = s.Name
		seqs[i] = s.Bases
	}

	aln, err := siscan.NewAlignment(names, seqs)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	cfg, err := siscan.ConfigFromSettings(req.Options)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	scanner, err := siscan.NewScanner(aln, cfg)
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	regions, err := scanner.Run()
	if err != nil {
		http.Error(w, `{"error": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	results := make([]RegionResult, len(regions))
	for i, reg := range regions {
		results[i] = RegionResult{
			Recombinant: reg.Recombinant,
			Parent1:     reg.Parents[0],
			Parent2:     reg.Parents[1],
			Start:       reg.Start,
			End:         reg.End,
			ZScore:      reg.Score,
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(ScanResponse{
		Regions:     results,
		Diagnostics: scanner.Diagnostics,
	})
}
