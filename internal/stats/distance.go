package stats

import "math"

// jcSaturation is the proportion of mismatches at which the Jukes-Cantor
// correction diverges: random sequences over a 4-letter alphabet agree at
// a quarter of their sites.
const jcSaturation = 0.75

// PDistance returns the proportion of columns at which two aligned
// fragments differ. Fragments are compared column by column over the
// shorter of the two lengths; two empty fragments are at distance 0.
func PDistance(s1, s2 []byte) float64 {
	n := len(s1)
	if len(s2) < n {
		n = len(s2)
	}
	if n == 0 {
		return 0
	}

	diff := 0
	for i := 0; i < n; i++ {
		if s1[i] != s2[i] {
			diff++
		}
	}
	return float64(diff) / float64(n)
}

// JukesCantor returns the Jukes-Cantor corrected evolutionary distance
// between two aligned fragments. Saturated input (p-distance >= 0.75,
// where the correction is undefined) returns 1.
func JukesCantor(s1, s2 []byte) float64 {
	p := PDistance(s1, s2)
	if p >= jcSaturation {
		return 1
	}
	return -jcSaturation * math.Log(1-p/jcSaturation)
}
