package alignment

import "fmt"

// AlignmentError is the base error type for alignment structure violations.
type AlignmentError interface {
	error
	IsAlignmentError()
}

// EmptyAlignmentError is returned when an alignment has no rows or no columns.
type EmptyAlignmentError struct{}

func (e *EmptyAlignmentError) Error() string {
	return "alignment must have at least one non-empty row"
}

func (e *EmptyAlignmentError) IsAlignmentError() {}

// LengthMismatchError is returned when a row breaks the rectangle invariant.
type LengthMismatchError struct {
	Name     string
	Expected int
	Actual   int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("row %q has %d columns, expected %d", e.Name, e.Actual, e.Expected)
}

func (e *LengthMismatchError) IsAlignmentError() {}

// InvalidSymbolError is returned when a row contains a symbol outside
// the accepted alphabet.
type InvalidSymbolError struct {
	Name     string
	Position int
	Found    byte
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("row %q: invalid symbol '%c' at column %d", e.Name, e.Found, e.Position)
}

func (e *InvalidSymbolError) IsAlignmentError() {}

// WindowBoundsError is returned when a window does not fit the alignment.
type WindowBoundsError struct {
	Start  int
	End    int
	Length int
}

func (e *WindowBoundsError) Error() string {
	return fmt.Sprintf("window [%d, %d) out of bounds for length %d", e.Start, e.End, e.Length)
}

func (e *WindowBoundsError) IsAlignmentError() {}

// ValidSymbols is the accepted column alphabet: the four bases, U for
// RNA input, the IUPAC ambiguity codes and the gap character.
var ValidSymbols = map[byte]bool{
	'A': true, 'C': true, 'G': true, 'T': true, 'U': true,
	'R': true, 'Y': true, 'S': true, 'W': true, 'K': true, 'M': true,
	'B': true, 'D': true, 'H': true, 'V': true, 'N': true,
	Gap: true,
}

// ValidateRow checks that every symbol in a row is in ValidSymbols.
func ValidateRow(name string, row []byte) error {
	for i, b := range row {
		if !ValidSymbols[b] {
			return &InvalidSymbolError{Name: name, Position: i, Found: b}
		}
	}
	return nil
}

// IsValidSymbol checks a single column symbol.
func IsValidSymbol(b byte) bool {
	return ValidSymbols[b]
}
