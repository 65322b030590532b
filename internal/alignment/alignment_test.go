package alignment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		seqs    []string
		wantErr bool
		errType interface{}
	}{
		{
			name:  "valid alignment",
			names: []string{"a", "b", "c"},
			seqs:  []string{"ATGCATGC", "ATGCATGG", "ATGAATGC"},
		},
		{
			name:  "lowercase input",
			names: []string{"a", "b"},
			seqs:  []string{"atgc", "atgg"},
		},
		{
			name:  "gaps and ambiguity codes",
			names: []string{"a", "b"},
			seqs:  []string{"AT-CN", "ATRCW"},
		},
		{
			name:    "no rows",
			names:   []string{},
			seqs:    []string{},
			wantErr: true,
			errType: &EmptyAlignmentError{},
		},
		{
			name:    "empty row",
			names:   []string{"a"},
			seqs:    []string{""},
			wantErr: true,
			errType: &EmptyAlignmentError{},
		},
		{
			name:    "ragged rows",
			names:   []string{"a", "b"},
			seqs:    []string{"ATGC", "ATG"},
			wantErr: true,
			errType: &LengthMismatchError{},
		},
		{
			name:    "invalid symbol",
			names:   []string{"a", "b"},
			seqs:    []string{"ATGC", "ATXC"},
			wantErr: true,
			errType: &InvalidSymbolError{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			aln, err := NewFromStrings(tt.names, tt.seqs)

			if tt.wantErr {
				require.Error(t, err)
				if tt.errType != nil {
					assert.IsType(t, tt.errType, err)
				}
			} else {
				require.NoError(t, err)
				assert.Equal(t, len(tt.seqs), aln.NumSequences())
				assert.Equal(t, len(tt.seqs[0]), aln.Length())
			}
		})
	}
}

func TestNewCopiesRows(t *testing.T) {
	rows := [][]byte{[]byte("atgc"), []byte("atgg")}
	aln, err := New([]string{"a", "b"}, rows)
	require.NoError(t, err)

	rows[0][0] = 'X'
	assert.Equal(t, byte('A'), aln.Rows[0][0])
	assert.Equal(t, "ATGC", string(aln.Rows[0]))
}

func TestRow(t *testing.T) {
	aln, err := NewFromStrings([]string{"a", "b", "c"}, []string{"AAAA", "CCCC", "GGGG"})
	require.NoError(t, err)

	row, ok := aln.Row("b")
	assert.True(t, ok)
	assert.Equal(t, "CCCC", string(row))

	_, ok = aln.Row("missing")
	assert.False(t, ok)
}

func TestTriplets(t *testing.T) {
	tests := []struct {
		name  string
		count int
		want  int
	}{
		{"two rows", 2, 0},
		{"three rows", 3, 1},
		{"four rows", 4, 4},
		{"five rows", 5, 10},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			names := make([]string, tt.count)
			seqs := make([]string, tt.count)
			for i := range names {
				names[i] = string(rune('a' + i))
				seqs[i] = "ATGCATGC"
			}

			aln, err := NewFromStrings(names, seqs)
			require.NoError(t, err)
			assert.Len(t, aln.Triplets(), tt.want)
		})
	}
}

func TestTripletsOrder(t *testing.T) {
	aln, err := NewFromStrings(
		[]string{"w", "x", "y", "z"},
		[]string{"AAAA", "CCCC", "GGGG", "TTTT"},
	)
	require.NoError(t, err)

	triplets := aln.Triplets()
	require.Len(t, triplets, 4)

	assert.Equal(t, [3]string{"w", "x", "y"}, triplets[0].Names)
	assert.Equal(t, [3]string{"w", "x", "z"}, triplets[1].Names)
	assert.Equal(t, [3]string{"w", "y", "z"}, triplets[2].Names)
	assert.Equal(t, [3]string{"x", "y", "z"}, triplets[3].Names)

	assert.Equal(t, "CCCC", string(triplets[0].Rows[1]))
	assert.Equal(t, "TTTT", string(triplets[3].Rows[2]))
}

func TestNewTriplet(t *testing.T) {
	names := [3]string{"a", "b", "c"}

	trp, err := NewTriplet(names, [3][]byte{[]byte("ATGC"), []byte("ATGG"), []byte("TTGC")})
	require.NoError(t, err)
	assert.Equal(t, 4, trp.Length())
	assert.Equal(t, "(a, b, c)", trp.String())

	_, err = NewTriplet(names, [3][]byte{[]byte("ATGC"), []byte("ATG"), []byte("TTGC")})
	require.Error(t, err)
	assert.IsType(t, &LengthMismatchError{}, err)
}

func TestWindow(t *testing.T) {
	trp, err := NewTriplet(
		[3]string{"a", "b", "c"},
		[3][]byte{[]byte("ATGCATGC"), []byte("ATGCATGG"), []byte("TTGCATGC")},
	)
	require.NoError(t, err)

	tests := []struct {
		name    string
		start   int
		end     int
		want    string
		wantErr bool
	}{
		{"first half", 0, 4, "ATGC", false},
		{"second half", 4, 8, "ATGC", false},
		{"middle", 2, 6, "GCAT", false},
		{"negative start", -1, 4, "", true},
		{"end before start", 4, 2, "", true},
		{"end out of bounds", 0, 10, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows, err := trp.Window(tt.start, tt.end)
			if tt.wantErr {
				require.Error(t, err)
				assert.IsType(t, &WindowBoundsError{}, err)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tt.want, string(rows[0]))
				assert.Len(t, rows[1], tt.end-tt.start)
				assert.Len(t, rows[2], tt.end-tt.start)
			}
		})
	}
}

func BenchmarkTriplets(b *testing.B) {
	names := make([]string, 12)
	seqs := make([]string, 12)
	for i := range names {
		names[i] = string(rune('a' + i))
		seqs[i] = "ATGCATGCATGCATGCATGC"
	}
	aln, _ := NewFromStrings(names, seqs)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = aln.Triplets()
	}
}
