// Package alignment provides multiple-sequence-alignment types and the
// triplet views that sister-scanning operates on.
//
// An Alignment is a rectangular block of single-character nucleotide
// symbols: every row has the same number of columns. The rectangle
// invariant is enforced at construction time; downstream code indexes
// columns freely and never re-checks it.
package alignment

import (
	"bytes"
	"fmt"
)

// Gap is the alignment gap symbol.
const Gap = '-'

// Alignment represents a validated multiple sequence alignment.
// Names[i] labels Rows[i]; all rows have equal length.
type Alignment struct {
	Names []string
	Rows  [][]byte
}

// New creates an alignment from parallel name and row slices.
// Rows are uppercased and copied, then validated against ValidSymbols
// and checked for uniform length.
func New(names []string, rows [][]byte) (*Alignment, error) {
	if len(rows) == 0 {
		return nil, &EmptyAlignmentError{}
	}
	if len(names) != len(rows) {
		return nil, fmt.Errorf("got %d names for %d rows", len(names), len(rows))
	}

	width := len(rows[0])
	if width == 0 {
		return nil, &EmptyAlignmentError{}
	}

	copied := make([][]byte, len(rows))
	for i, row := range rows {
		if len(row) != width {
			return nil, &LengthMismatchError{Name: names[i], Expected: width, Actual: len(row)}
		}
		copied[i] = bytes.ToUpper(row)
		if err := ValidateRow(names[i], copied[i]); err != nil {
			return nil, err
		}
	}

	return &Alignment{
		Names: append([]string(nil), names...),
		Rows:  copied,
	}, nil
}

// NewFromStrings creates an alignment from string rows.
func NewFromStrings(names []string, seqs []string) (*Alignment, error) {
	rows := make([][]byte, len(seqs))
	for i, s := range seqs {
		rows[i] = []byte(s)
	}
	return New(names, rows)
}

// Length returns the number of columns.
func (a *Alignment) Length() int {
	if len(a.Rows) == 0 {
		return 0
	}
	return len(a.Rows[0])
}

// NumSequences returns the number of rows.
func (a *Alignment) NumSequences() int {
	return len(a.Rows)
}

// Row returns the row with the given name, or false if absent.
func (a *Alignment) Row(name string) ([]byte, bool) {
	for i, n := range a.Names {
		if n == name {
			return a.Rows[i], true
		}
	}
	return nil, false
}

// Triplets enumerates every 3-sequence combination in row order:
// (i, j, k) for all i < j < k. Fewer than three rows yields an empty
// slice. Triplet rows share the alignment's backing arrays and must be
// treated as read-only.
func (a *Alignment) Triplets() []*Triplet {
	n := len(a.Rows)
	if n < 3 {
		return nil
	}

	triplets := make([]*Triplet, 0, n*(n-1)*(n-2)/6)
	for i := 0; i < n-2; i++ {
		for j := i + 1; j < n-1; j++ {
			for k := j + 1; k < n; k++ {
				triplets = append(triplets, &Triplet{
					Names: [3]string{a.Names[i], a.Names[j], a.Names[k]},
					Rows:  [3][]byte{a.Rows[i], a.Rows[j], a.Rows[k]},
				})
			}
		}
	}
	return triplets
}

func (a *Alignment) String() string {
	return fmt.Sprintf("Alignment { sequences: %d, columns: %d }", a.NumSequences(), a.Length())
}

// Triplet is an ordered view of three alignment rows. The scan examines
// each triplet independently.
type Triplet struct {
	Names [3]string
	Rows  [3][]byte
}

// NewTriplet creates a triplet from three named rows of equal length.
func NewTriplet(names [3]string, rows [3][]byte) (*Triplet, error) {
	width := len(rows[0])
	if width == 0 {
		return nil, &EmptyAlignmentError{}
	}
	for i := 1; i < 3; i++ {
		if len(rows[i]) != width {
			return nil, &LengthMismatchError{Name: names[i], Expected: width, Actual: len(rows[i])}
		}
	}
	return &Triplet{Names: names, Rows: rows}, nil
}

// Length returns the number of columns.
func (t *Triplet) Length() int {
	return len(t.Rows[0])
}

// Window returns the three row slices covering columns [start, end).
// The slices share the triplet's backing arrays.
func (t *Triplet) Window(start, end int) ([3][]byte, error) {
	if start < 0 || end > t.Length() || start >= end {
		return [3][]byte{}, &WindowBoundsError{Start: start, End: end, Length: t.Length()}
	}
	return [3][]byte{
		t.Rows[0][start:end],
		t.Rows[1][start:end],
		t.Rows[2][start:end],
	}, nil
}

func (t *Triplet) String() string {
	return fmt.Sprintf("(%s, %s, %s)", t.Names[0], t.Names[1], t.Names[2])
}
