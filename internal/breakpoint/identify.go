// Package breakpoint turns candidate intervals into recombination
// calls. Identify decides which member of a triplet is the probable
// recombinant for an interval, and Merge consolidates overlapping
// calls that agree on the recombinant and its parents.
package breakpoint

import (
	"fmt"
	"math"
	"sort"

	"github.com/recseq/siscan-go/internal/alignment"
	"github.com/recseq/siscan-go/internal/stats"
)

// Call is one raw per-window breakpoint call. Parents keep the triplet
// order of the two non-recombinant sequences; Score is the absolute
// smoothed z-score at the peak that produced the interval.
type Call struct {
	Recombinant string
	Parents     [2]string
	Start       int
	End         int
	Score       float64
}

func (c Call) String() string {
	return fmt.Sprintf("%s (%s, %s) %d-%d z=%.2f",
		c.Recombinant, c.Parents[0], c.Parents[1], c.Start, c.End, c.Score)
}

// SortCalls orders calls lexicographically by recombinant, parents,
// and interval, so that merging sees a deterministic sequence
// regardless of scan order.
func SortCalls(calls []Call) {
	sort.Slice(calls, func(i, j int) bool {
		a, b := calls[i], calls[j]
		if a.Recombinant != b.Recombinant {
			return a.Recombinant < b.Recombinant
		}
		if a.Parents[0] != b.Parents[0] {
			return a.Parents[0] < b.Parents[0]
		}
		if a.Parents[1] != b.Parents[1] {
			return a.Parents[1] < b.Parents[1]
		}
		if a.Start != b.Start {
			return a.Start < b.Start
		}
		return a.End < b.End
	})
}

// Identify decides which member of the triplet is the recombinant for
// the candidate interval [start, end). For every sequence it computes
// Jukes-Cantor distances to the other two, restricted to the columns
// upstream of start and, separately, downstream of end (both clamped
// to the triplet length), and correlates the upstream against the
// downstream distances. A sequence whose distance pattern flips across
// the interval correlates negatively, so the minimum coefficient marks
// the recombinant; the other two sequences are returned as parents in
// triplet order.
//
// A sequence whose upstream or downstream distances are all equal has
// no usable signal and its coefficient is NaN; NaN is never selected
// unless all three coefficients are NaN, in which case the first
// sequence is reported.
func Identify(trp *alignment.Triplet, start, end int) (string, [2]string) {
	length := trp.Length()
	upEnd := start
	if upEnd > length {
		upEnd = length
	}
	downStart := end
	if downStart > length {
		downStart = length
	}

	var coeffs [3]float64
	for i := 0; i < 3; i++ {
		up := make([]float64, 0, 2)
		down := make([]float64, 0, 2)
		for j := 0; j < 3; j++ {
			if j == i {
				continue
			}
			up = append(up, stats.JukesCantor(trp.Rows[i][:upEnd], trp.Rows[j][:upEnd]))
			down = append(down, stats.JukesCantor(trp.Rows[i][downStart:], trp.Rows[j][downStart:]))
		}
		if stats.AllEqual(up) || stats.AllEqual(down) {
			coeffs[i] = math.NaN()
			continue
		}
		coeffs[i] = stats.Pearson(up, down)
	}

	rec := minCoefficient(coeffs)
	var parents [2]string
	k := 0
	for i, name := range trp.Names {
		if i == rec {
			continue
		}
		parents[k] = name
		k++
	}
	return trp.Names[rec], parents
}

// minCoefficient returns the index of the smallest finite coefficient,
// or 0 when every coefficient is NaN.
func minCoefficient(r [3]float64) int {
	best := -1
	for i, v := range r {
		if math.IsNaN(v) {
			continue
		}
		if best < 0 || v < r[best] {
			best = i
		}
	}
	if best < 0 {
		return 0
	}
	return best
}
