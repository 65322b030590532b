package pattern

import (
	"fmt"
	"math"
	"math/rand"

	"gonum.org/v1/gonum/stat"
)

// Normalizer standardizes a window's count vectors against a
// permutation-derived null model. It owns no randomness of its own; the
// caller supplies the generator so runs stay reproducible.
type Normalizer struct {
	permNum int
	rng     *rand.Rand
}

// NewNormalizer creates a normalizer running permNum column
// permutations per window.
func NewNormalizer(permNum int, rng *rand.Rand) *Normalizer {
	return &Normalizer{permNum: permNum, rng: rng}
}

// NullModel holds the location and scale used to standardize a window's
// pattern and summary vectors.
type NullModel struct {
	PatternMean float64
	PatternStd  float64
	SummaryMean float64
	SummaryStd  float64
}

// EstimateNull builds the null model for one window by repeatedly
// permuting its columns. The same permutation is applied to all four
// rows jointly, so each column's pattern survives and only column order
// changes. Counts from the final permutation parameterize the model;
// earlier iterations are discarded. The summary vector enters without
// its informative classes, exactly as permuted windows are scored.
//
// Mean and standard deviation are taken across the elements of each
// vector, with the population (n-divisor) form of the deviation.
func (n *Normalizer) EstimateNull(rows [4][]byte) (NullModel, error) {
	if n.permNum < 1 {
		return NullModel{}, fmt.Errorf("permutation count must be at least 1, got %d", n.permNum)
	}

	width := len(rows[0])
	var permuted [4][]byte
	for r := range permuted {
		permuted[r] = make([]byte, width)
	}

	var counts Counts
	var summary Summary
	for it := 0; it < n.permNum; it++ {
		perm := n.rng.Perm(width)
		for r := 0; r < 4; r++ {
			for i, p := range perm {
				permuted[r][i] = rows[r][p]
			}
		}

		c, err := CountPatterns(permuted)
		if err != nil {
			return NullModel{}, err
		}
		counts = c
		summary = SumPatternCounts(c)
	}

	pat := counts.Floats()
	sum := summary.Floats()
	return NullModel{
		PatternMean: stat.Mean(pat, nil),
		PatternStd:  stat.PopStdDev(pat, nil),
		SummaryMean: stat.Mean(sum, nil),
		SummaryStd:  stat.PopStdDev(sum, nil),
	}, nil
}

// PatternZ standardizes a pattern count vector. A degenerate model
// (zero deviation) yields an all-NaN vector rather than dividing by
// zero; such windows contribute no peaks downstream.
func (m NullModel) PatternZ(c Counts) []float64 {
	z := make([]float64, NumPatterns)
	if m.PatternStd == 0 {
		for i := range z {
			z[i] = math.NaN()
		}
		return z
	}
	for i, v := range c {
		z[i] = (float64(v) - m.PatternMean) / m.PatternStd
	}
	return z
}

// SummaryZ standardizes a summary count vector, with the same
// degenerate-model behavior as PatternZ.
func (m NullModel) SummaryZ(s Summary) []float64 {
	z := make([]float64, NumSummaries)
	if m.SummaryStd == 0 {
		for i := range z {
			z[i] = math.NaN()
		}
		return z
	}
	for i, v := range s {
		z[i] = (float64(v) - m.SummaryMean) / m.SummaryStd
	}
	return z
}
