package scan

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/sirupsen/logrus"

	"github.com/recseq/siscan-go/internal/alignment"
	"github.com/recseq/siscan-go/internal/breakpoint"
	"github.com/recseq/siscan-go/internal/pattern"
	"github.com/recseq/siscan-go/internal/peak"
)

// smoothingSigma is the standard deviation, in samples, of the
// Gaussian kernel applied to summary z-scores before peak detection.
const smoothingSigma = 1.5

// Scanner runs the sister-scanning pass over one alignment. It owns
// the single seeded random generator; windows are scanned in strict
// triplet and column order, so a fixed seed reproduces every call.
type Scanner struct {
	cfg        Config
	aln        *alignment.Alignment
	rng        *rand.Rand
	normalizer *pattern.Normalizer

	// Progress, when set, is called after each scanned window.
	Progress func(done, total int)

	// Diagnostics holds one line per option corrected at construction.
	Diagnostics []string
}

// New validates the config against the alignment and builds a Scanner.
// Out-of-range options are replaced by their defaults, logged, and
// reported in Diagnostics; a window wider than the alignment is out of
// range too. An alignment shorter than the default window is an error.
func New(aln *alignment.Alignment, cfg Config) (*Scanner, error) {
	if aln == nil || aln.NumSequences() == 0 {
		return nil, fmt.Errorf("scan needs a loaded alignment")
	}

	cfg, diags := cfg.Validate()
	if cfg.WinSize > aln.Length() {
		if DefaultWinSize > aln.Length() {
			return nil, fmt.Errorf("window size %d exceeds alignment length %d",
				cfg.WinSize, aln.Length())
		}
		cfg.WinSize = DefaultWinSize
		diags = append(diags, correction("win_size", DefaultWinSize))
		if cfg.StepSize >= cfg.WinSize {
			cfg.StepSize = DefaultStepSize
			diags = append(diags, correction("step_size", DefaultStepSize))
		}
	}
	for _, d := range diags {
		logrus.Warn(d)
	}

	rng := rand.New(rand.NewSource(cfg.RandomSeed))
	return &Scanner{
		cfg:         cfg,
		aln:         aln,
		rng:         rng,
		normalizer:  pattern.NewNormalizer(cfg.ScanPermNum, rng),
		Diagnostics: diags,
	}, nil
}

// Config returns the corrected configuration the scanner runs with.
func (s *Scanner) Config() Config {
	return s.cfg
}

// Run scans every triplet of the alignment and returns the merged
// breakpoint regions, sorted by recombinant, parent pair, and start.
func (s *Scanner) Run() ([]breakpoint.Region, error) {
	triplets := s.aln.Triplets()
	if len(triplets) == 0 {
		return nil, fmt.Errorf("alignment has %d sequences, scanning needs at least 3",
			s.aln.NumSequences())
	}

	length := s.aln.Length()
	windows := 0
	for start := 0; start+s.cfg.WinSize <= length; start += s.cfg.StepSize {
		windows++
	}

	total := len(triplets) * windows
	done := 0

	var raw []breakpoint.Call
	for _, trp := range triplets {
		for start := 0; start+s.cfg.WinSize <= length; start += s.cfg.StepSize {
			window, err := trp.Window(start, start+s.cfg.WinSize)
			if err != nil {
				return nil, fmt.Errorf("triplet %s: %w", trp, err)
			}

			calls, err := s.scanWindow(trp, window, start)
			if err != nil {
				return nil, fmt.Errorf("triplet %s, window at %d: %w", trp, start, err)
			}
			raw = append(raw, calls...)

			done++
			if s.Progress != nil {
				s.Progress(done, total)
			}
		}
	}

	breakpoint.SortCalls(raw)
	return breakpoint.Merge(raw), nil
}

// scanWindow analyzes one window of one triplet: it adds the synthetic
// fourth row, z-scores the summary counts against the permutation null,
// and converts each detected peak into a breakpoint call in alignment
// coordinates.
func (s *Scanner) scanWindow(trp *alignment.Triplet, window [3][]byte, winStart int) ([]breakpoint.Call, error) {
	rows := [4][]byte{window[0], window[1], window[2], s.syntheticRow(window)}

	counts, err := pattern.CountPatterns(rows)
	if err != nil {
		return nil, err
	}
	summary := pattern.SumPatternCounts(counts)
	summary.SumInformative(counts)

	model, err := s.normalizer.EstimateNull(rows)
	if err != nil {
		return nil, err
	}

	smoothed := peak.Smooth(model.SummaryZ(summary), smoothingSigma)

	length := trp.Length()
	var calls []breakpoint.Call
	for _, pk := range peak.Detect(smoothed, s.cfg.WinSize) {
		start := winStart + pk.Start
		end := winStart + pk.End
		if start > length {
			start = length
		}
		if end > length {
			end = length
		}
		if start >= end {
			continue
		}

		rec, parents := breakpoint.Identify(trp, start, end)
		calls = append(calls, breakpoint.Call{
			Recombinant: rec,
			Parents:     parents,
			Start:       start,
			End:         end,
			Score:       math.Abs(pk.Height),
		})
	}
	return calls, nil
}

// syntheticRow builds the null-model fourth row: a copy of a uniformly
// chosen window row with its columns shuffled. Always a copy, so the
// triplet's own rows are never disturbed.
func (s *Scanner) syntheticRow(window [3][]byte) []byte {
	src := window[s.rng.Intn(3)]
	row := append([]byte(nil), src...)
	s.rng.Shuffle(len(row), func(i, j int) {
		row[i], row[j] = row[j], row[i]
	})
	return row
}
