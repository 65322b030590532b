// Package siscan provides a high-level API for sister-scanning
// recombination detection.
//
// This package exposes the core scanning functionality through a
// simple, easy-to-use API.
//
// Example usage:
//
//	aln, err := siscan.ReadFASTA("alignment.fasta")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	regions, err := siscan.Scan(aln, siscan.DefaultConfig())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	siscan.WriteReport(os.Stdout, regions)
package siscan

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/recseq/siscan-go/internal/alignment"
	"github.com/recseq/siscan-go/internal/breakpoint"
	"github.com/recseq/siscan-go/internal/scan"
	"github.com/recseq/siscan-go/internal/stats"
)

// Re-export types for convenience
type (
	Alignment = alignment.Alignment
	Triplet   = alignment.Triplet
	Config    = scan.Config
	Scanner   = scan.Scanner
	Call      = breakpoint.Call
	Region    = breakpoint.Region
)

// NewAlignment creates an alignment from named sequence strings.
func NewAlignment(names []string, seqs []string) (*Alignment, error) {
	return alignment.NewFromStrings(names, seqs)
}

// DefaultConfig returns the documented default scan options.
func DefaultConfig() Config {
	return scan.DefaultConfig()
}

// ConfigFromSettings builds a Config from a loosely-typed key to value
// mapping, config-file style.
func ConfigFromSettings(settings map[string]string) (Config, error) {
	return scan.ConfigFromSettings(settings)
}

// NewScanner validates the config against the alignment and builds a
// Scanner.
func NewScanner(aln *Alignment, cfg Config) (*Scanner, error) {
	return scan.New(aln, cfg)
}

// Scan runs a full sister-scanning pass over the alignment and returns
// the merged breakpoint regions.
func Scan(aln *Alignment, cfg Config) ([]Region, error) {
	s, err := scan.New(aln, cfg)
	if err != nil {
		return nil, err
	}
	return s.Run()
}

// JukesCantor computes the Jukes-Cantor distance between two aligned
// sequence fragments.
func JukesCantor(seq1, seq2 string) float64 {
	return stats.JukesCantor([]byte(seq1), []byte(seq2))
}

// PDistance computes the proportion of mismatching sites between two
// aligned sequence fragments.
func PDistance(seq1, seq2 string) float64 {
	return stats.PDistance([]byte(seq1), []byte(seq2))
}

// ReadFASTA reads an alignment from a FASTA file.
func ReadFASTA(filename string) (*Alignment, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening file: %w", err)
	}
	defer file.Close()

	return ParseFASTA(file)
}

// ParseFASTA parses an aligned FASTA stream. Sequence lines between
// headers are concatenated; every record must have the same length.
func ParseFASTA(r io.Reader) (*Alignment, error) {
	var names []string
	var rows [][]byte

	scanner := bufio.NewScanner(r)
	const maxLine = 64 * 1024 * 1024 // unwrapped records put a whole sequence on one line
	scanner.Buffer(make([]byte, 64*1024), maxLine)

	var currentName string
	var currentBases strings.Builder

	flushSequence := func() {
		if currentBases.Len() > 0 {
			names = append(names, currentName)
			rows = append(rows, []byte(currentBases.String()))
			currentBases.Reset()
		}
	}

	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if len(line) == 0 {
			continue
		}

		if line[0] == '>' {
			flushSequence()

			header := line[1:]
			parts := strings.SplitN(header, " ", 2)
			currentName = parts[0]
		} else {
			currentBases.WriteString(line)
		}
	}
	flushSequence()

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading file: %w", err)
	}

	return alignment.New(names, rows)
}

// WriteReport writes merged breakpoint regions as tab-separated text
// with a header line. The p-value column is the two-sided normal tail
// probability of the region's peak z-score.
func WriteReport(w io.Writer, regions []Region) error {
	if _, err := fmt.Fprintln(w, "recombinant\tparent_1\tparent_2\tstart\tend\tz_score\tp_value"); err != nil {
		return fmt.Errorf("writing report: %w", err)
	}
	for _, r := range regions {
		_, err := fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%d\t%.3f\t%.4g\n",
			r.Recombinant, r.Parents[0], r.Parents[1],
			r.Start, r.End, r.Score, stats.NormalTailP(r.Score))
		if err != nil {
			return fmt.Errorf("writing report: %w", err)
		}
	}
	return nil
}

// WriteReportFile writes merged breakpoint regions to a file.
func WriteReportFile(filename string, regions []Region) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()

	return WriteReport(file, regions)
}

// Version returns the SiScan version.
func Version() string {
	return "1.0.0"
}

// Info returns information about SiScan.
func Info() string {
	return fmt.Sprintf(`SiScan v%s - Recombination Breakpoint Scanner

Sister-scanning detection of recombination in nucleotide alignments.

Features:
  - Aligned FASTA loading with validation
  - Triplet enumeration over aligned sequences
  - Windowed site-pattern counting against a randomized fourth sequence
  - Permutation-based z-score normalization
  - Gaussian smoothing and peak detection with interval expansion
  - Recombinant identification via distance correlation
  - Overlap merging of breakpoint calls

For more information, see: https://github.com/recseq/siscan-go
`, Version())
}
