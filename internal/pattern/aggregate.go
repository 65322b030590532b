package pattern

// Summary holds the nine aggregated counts derived from a window's
// pattern counts. Indices 3-8 are the six pairwise-agreement classes;
// indices 0-2 are the three informative-site classes, which only
// SumInformative fills (real windows get them, permuted windows do not).
type Summary [NumSummaries]int

// Floats returns the summary as a float vector.
func (s Summary) Floats() []float64 {
	out := make([]float64, NumSummaries)
	for i, v := range s {
		out[i] = float64(v)
	}
	return out
}

// SumPatternCounts aggregates pattern counts into the six
// pairwise-agreement summary classes. Each class collects every pattern
// in which the named pair of rows carries the same symbol, minus the
// all-equal column class.
func SumPatternCounts(c Counts) Summary {
	var s Summary
	s[3] = c[1] + c[7] + c[10] + c[11] // a=b: ab|c|d, ab|cd, abc|d, abd|c
	s[4] = c[2] + c[8] + c[10] + c[12] // a=c: ac|b|d, ac|bd, abc|d, acd|b
	s[5] = c[3] + c[9] + c[11] + c[12] // a=d: ad|b|c, ad|bc, abd|c, acd|b
	s[6] = c[4] + c[9] + c[10] + c[13] // b=c: bc|a|d, ad|bc, abc|d, bcd|a
	s[7] = c[5] + c[8] + c[11] + c[13] // b=d: bd|a|c, ac|bd, abd|c, bcd|a
	s[8] = c[6] + c[7] + c[12] + c[13] // c=d: cd|a|b, ab|cd, acd|b, bcd|a
	return s
}

// SumInformative fills the three informative-site classes: columns that
// split the four rows into two groups and so support one of the three
// possible pairings. Only real windows receive these; the permutation
// null model leaves them at zero.
func (s *Summary) SumInformative(c Counts) {
	s[0] = c[1] + c[6] + c[7] // ab vs cd split: ab|c|d, cd|a|b, ab|cd
	s[1] = c[2] + c[5] + c[8] // ac vs bd split: ac|b|d, bd|a|c, ac|bd
	s[2] = c[3] + c[4] + c[9] // ad vs bc split: ad|b|c, bc|a|d, ad|bc
}
