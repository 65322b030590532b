// Package stats provides the statistical primitives behind the scan:
// evolutionary distances, correlation of distance profiles and normal
// tail probabilities for reporting.
package stats

import (
	"math"

	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"
)

// Pearson returns the Pearson correlation coefficient of two equal-length
// vectors. Degenerate input (a constant vector) yields NaN.
func Pearson(x, y []float64) float64 {
	return stat.Correlation(x, y, nil)
}

// AllEqual reports whether every element of x equals the first.
// An empty vector is trivially uniform.
func AllEqual(x []float64) bool {
	if len(x) == 0 {
		return true
	}
	for _, v := range x[1:] {
		if v != x[0] {
			return false
		}
	}
	return true
}

var stdNormal = distuv.Normal{Mu: 0, Sigma: 1}

// NormalTailP converts a z-score into a two-sided standard-normal tail
// probability, clamped to [0, 1].
func NormalTailP(z float64) float64 {
	p := 2 * stdNormal.Survival(math.Abs(z))
	if p > 1 {
		return 1
	}
	return p
}
