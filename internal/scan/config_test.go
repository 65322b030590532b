package scan

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, 200, cfg.WinSize)
	assert.Equal(t, 20, cfg.StepSize)
	assert.True(t, cfg.StripGaps)
	assert.Equal(t, 1100, cfg.PValuePermNum)
	assert.Equal(t, 100, cfg.ScanPermNum)
	assert.Equal(t, int64(3), cfg.RandomSeed)
}

func TestConfigFromSettings(t *testing.T) {
	tests := []struct {
		name     string
		settings map[string]string
		want     Config
		wantErr  bool
	}{
		{
			name:     "empty settings keep defaults",
			settings: map[string]string{},
			want:     DefaultConfig(),
		},
		{
			name: "all options set",
			settings: map[string]string{
				"win_size":        "100",
				"step_size":       "10",
				"strip_gaps":      "false",
				"pvalue_perm_num": "500",
				"scan_perm_num":   "40",
				"random_seed":     "7",
			},
			want: Config{
				WinSize:       100,
				StepSize:      10,
				StripGaps:     false,
				PValuePermNum: 500,
				ScanPermNum:   40,
				RandomSeed:    7,
			},
		},
		{
			name:     "unknown keys are ignored",
			settings: map[string]string{"colour_scheme": "dark"},
			want:     DefaultConfig(),
		},
		{
			name:     "malformed integer",
			settings: map[string]string{"win_size": "wide"},
			wantErr:  true,
		},
		{
			name:     "malformed boolean",
			settings: map[string]string{"strip_gaps": "perhaps"},
			wantErr:  true,
		},
		{
			name:     "fractional seed",
			settings: map[string]string{"random_seed": "3.5"},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := ConfigFromSettings(tt.settings)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, cfg)
		})
	}
}

func TestValidateAcceptsGoodConfig(t *testing.T) {
	corrected, diags := DefaultConfig().Validate()

	assert.Equal(t, DefaultConfig(), corrected)
	assert.Empty(t, diags)
}

func TestValidateSubstitutesDefaults(t *testing.T) {
	cfg := Config{
		WinSize:       -1,
		StepSize:      0,
		StripGaps:     true,
		PValuePermNum: 0,
		ScanPermNum:   -5,
		RandomSeed:    0,
	}

	corrected, diags := cfg.Validate()

	assert.Equal(t, DefaultConfig(), corrected)
	require.Len(t, diags, 5)
	assert.Contains(t, diags, "invalid option 'win_size': using default value 200")
	assert.Contains(t, diags, "invalid option 'random_seed': using default value 3")
}

func TestValidateStepAgainstWindow(t *testing.T) {
	// A step as wide as the window would skip columns between windows.
	cfg := DefaultConfig()
	cfg.WinSize = 100
	cfg.StepSize = 100

	corrected, diags := cfg.Validate()

	assert.Equal(t, 100, corrected.WinSize)
	assert.Equal(t, DefaultStepSize, corrected.StepSize)
	require.Len(t, diags, 1)
	assert.Contains(t, diags[0], "step_size")
}
