// Package pattern classifies the columns of a four-row alignment window
// into site patterns and aggregates them into the summary counts that
// the scan standardizes into z-scores.
//
// A column of four symbols (a, b, c, d) induces a partition of the rows
// under symbol equality. There are exactly fifteen such partitions:
//
//	 0  a|b|c|d   all four distinct
//	 1  ab|c|d    a=b only
//	 2  ac|b|d    a=c only
//	 3  ad|b|c    a=d only
//	 4  bc|a|d    b=c only
//	 5  bd|a|c    b=d only
//	 6  cd|a|b    c=d only
//	 7  ab|cd     two pairs
//	 8  ac|bd     two pairs
//	 9  ad|bc     two pairs
//	10  abc|d     three equal
//	11  abd|c     three equal
//	12  acd|b     three equal
//	13  bcd|a     three equal
//	14  abcd      all four equal
//
// Every column lands in exactly one class, so a window's counts always
// sum to the window length.
package pattern

import "fmt"

// NumPatterns is the number of site-pattern classes.
const NumPatterns = 15

// NumSummaries is the number of aggregated summary counts.
const NumSummaries = 9

// Counts holds per-class column counts for one window, indexed by the
// pattern numbering above.
type Counts [NumPatterns]int

// Total returns the sum of all pattern counts. For counts produced by
// CountPatterns this equals the window length.
func (c Counts) Total() int {
	sum := 0
	for _, v := range c {
		sum += v
	}
	return sum
}

// Floats returns the counts as a float vector.
func (c Counts) Floats() []float64 {
	out := make([]float64, NumPatterns)
	for i, v := range c {
		out[i] = float64(v)
	}
	return out
}

// Pairwise equality predicates for one column, used as bit flags.
const (
	eqAB = 1 << iota
	eqAC
	eqAD
	eqBC
	eqBD
	eqCD
)

// classify maps one column's equality mask to its pattern class.
func classify(a, b, c, d byte) int {
	var mask uint8
	if a == b {
		mask |= eqAB
	}
	if a == c {
		mask |= eqAC
	}
	if a == d {
		mask |= eqAD
	}
	if b == c {
		mask |= eqBC
	}
	if b == d {
		mask |= eqBD
	}
	if c == d {
		mask |= eqCD
	}

	switch mask {
	case 0:
		return 0
	case eqAB:
		return 1
	case eqAC:
		return 2
	case eqAD:
		return 3
	case eqBC:
		return 4
	case eqBD:
		return 5
	case eqCD:
		return 6
	case eqAB | eqCD:
		return 7
	case eqAC | eqBD:
		return 8
	case eqAD | eqBC:
		return 9
	case eqAB | eqAC | eqBC:
		return 10
	case eqAB | eqAD | eqBD:
		return 11
	case eqAC | eqAD | eqCD:
		return 12
	case eqBC | eqBD | eqCD:
		return 13
	case eqAB | eqAC | eqAD | eqBC | eqBD | eqCD:
		return 14
	default:
		// Symbol equality is transitive, so no other mask can occur.
		return 0
	}
}

// CountPatterns tallies the pattern class of every column in a four-row
// window. All rows must have equal length.
func CountPatterns(rows [4][]byte) (Counts, error) {
	width := len(rows[0])
	for i := 1; i < 4; i++ {
		if len(rows[i]) != width {
			return Counts{}, fmt.Errorf("row %d has %d columns, expected %d", i, len(rows[i]), width)
		}
	}

	var counts Counts
	for col := 0; col < width; col++ {
		counts[classify(rows[0][col], rows[1][col], rows[2][col], rows[3][col])]++
	}
	return counts, nil
}
