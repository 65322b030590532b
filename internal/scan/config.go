// Package scan drives the sister-scanning pass: it validates the scan
// configuration against an alignment, slides a window over every
// triplet, normalizes pattern counts against column permutations, and
// turns detected peaks into merged breakpoint regions.
package scan

import (
	"fmt"
	"strconv"
)

// Documented defaults, substituted for any out-of-range option.
const (
	DefaultWinSize       = 200
	DefaultStepSize      = 20
	DefaultStripGaps     = true
	DefaultPValuePermNum = 1100
	DefaultScanPermNum   = 100
	DefaultRandomSeed    = 3
)

// Config holds the scan options. The mapstructure tags match the
// option names used in config files.
type Config struct {
	WinSize       int   `mapstructure:"win_size"`        // window width in columns
	StepSize      int   `mapstructure:"step_size"`       // window advance per iteration
	StripGaps     bool  `mapstructure:"strip_gaps"`      // reserved: strip gap columns before scanning
	PValuePermNum int   `mapstructure:"pvalue_perm_num"` // reserved: permutations for p-value estimation
	ScanPermNum   int   `mapstructure:"scan_perm_num"`   // column permutations per window
	RandomSeed    int64 `mapstructure:"random_seed"`     // seed for the scan's generator
}

// DefaultConfig returns the documented default scan options.
func DefaultConfig() Config {
	return Config{
		WinSize:       DefaultWinSize,
		StepSize:      DefaultStepSize,
		StripGaps:     DefaultStripGaps,
		PValuePermNum: DefaultPValuePermNum,
		ScanPermNum:   DefaultScanPermNum,
		RandomSeed:    DefaultRandomSeed,
	}
}

// ConfigFromSettings builds a Config from a loosely-typed key to value
// mapping, config-file style. Missing keys keep their defaults and
// unknown keys are ignored; a present key whose value does not parse
// is an error. Range checking happens later, when a Scanner is built.
func ConfigFromSettings(settings map[string]string) (Config, error) {
	cfg := DefaultConfig()

	var err error
	if cfg.WinSize, err = intSetting(settings, "win_size", DefaultWinSize); err != nil {
		return Config{}, err
	}
	if cfg.StepSize, err = intSetting(settings, "step_size", DefaultStepSize); err != nil {
		return Config{}, err
	}
	if cfg.PValuePermNum, err = intSetting(settings, "pvalue_perm_num", DefaultPValuePermNum); err != nil {
		return Config{}, err
	}
	if cfg.ScanPermNum, err = intSetting(settings, "scan_perm_num", DefaultScanPermNum); err != nil {
		return Config{}, err
	}

	if v, ok := settings["strip_gaps"]; ok {
		b, perr := strconv.ParseBool(v)
		if perr != nil {
			return Config{}, fmt.Errorf("option 'strip_gaps': %q is not a boolean", v)
		}
		cfg.StripGaps = b
	}
	if v, ok := settings["random_seed"]; ok {
		n, perr := strconv.ParseInt(v, 10, 64)
		if perr != nil {
			return Config{}, fmt.Errorf("option 'random_seed': %q is not an integer", v)
		}
		cfg.RandomSeed = n
	}
	return cfg, nil
}

func intSetting(settings map[string]string, key string, fallback int) (int, error) {
	v, ok := settings[key]
	if !ok {
		return fallback, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, fmt.Errorf("option '%s': %q is not an integer", key, v)
	}
	return n, nil
}

// Validate range-checks every option and substitutes the documented
// default for any out-of-range value. It returns the corrected config
// and one diagnostic line per corrected option. Consistency with an
// alignment's dimensions is checked separately, in New.
func (c Config) Validate() (Config, []string) {
	var diags []string
	if c.WinSize <= 0 {
		c.WinSize = DefaultWinSize
		diags = append(diags, correction("win_size", DefaultWinSize))
	}
	if c.StepSize <= 0 || c.StepSize >= c.WinSize {
		c.StepSize = DefaultStepSize
		diags = append(diags, correction("step_size", DefaultStepSize))
	}
	if c.PValuePermNum <= 0 {
		c.PValuePermNum = DefaultPValuePermNum
		diags = append(diags, correction("pvalue_perm_num", DefaultPValuePermNum))
	}
	if c.ScanPermNum <= 0 {
		c.ScanPermNum = DefaultScanPermNum
		diags = append(diags, correction("scan_perm_num", DefaultScanPermNum))
	}
	if c.RandomSeed <= 0 {
		c.RandomSeed = DefaultRandomSeed
		diags = append(diags, correction("random_seed", DefaultRandomSeed))
	}
	return c, diags
}

func correction(option string, def int64) string {
	return fmt.Sprintf("invalid option '%s': using default value %d", option, def)
}
