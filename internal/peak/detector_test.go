package peak

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSmoothConstantProfile(t *testing.T) {
	x := []float64{2, 2, 2, 2, 2, 2, 2, 2, 2}

	smoothed := Smooth(x, 1.5)
	require.Len(t, smoothed, len(x))
	for _, v := range smoothed {
		assert.InDelta(t, 2.0, v, 1e-9)
	}
}

func TestSmoothImpulseResponse(t *testing.T) {
	// For sigma 1.5 the kernel is truncated at radius 6; the normalized
	// center weight is 1/sum(exp(-i^2/4.5), i=-6..6).
	x := make([]float64, 13)
	x[6] = 1

	smoothed := Smooth(x, 1.5)
	assert.InDelta(t, 0.26596, smoothed[6], 1e-4)
	assert.InDelta(t, 0.21297, smoothed[5], 1e-4)
	assert.InDelta(t, 0.21297, smoothed[7], 1e-4)
	assert.InDelta(t, smoothed[4], smoothed[8], 1e-12)
}

func TestSmoothEdgeCases(t *testing.T) {
	assert.Nil(t, Smooth(nil, 1.5))

	single := Smooth([]float64{7}, 1.5)
	require.Len(t, single, 1)
	assert.InDelta(t, 7.0, single[0], 1e-9)

	// Non-positive sigma leaves the profile untouched.
	x := []float64{1, 2, 3}
	assert.Equal(t, x, Smooth(x, 0))
}

func TestSmoothSpreadsNaN(t *testing.T) {
	x := []float64{0, 0, 0, 0, math.NaN(), 0, 0, 0, 0}

	for _, v := range Smooth(x, 1.5) {
		assert.True(t, math.IsNaN(v))
	}
}

func TestFind(t *testing.T) {
	tests := []struct {
		name     string
		x        []float64
		distance int
		want     []int
	}{
		{"single peak", []float64{0, 1, 0}, 1, []int{1}},
		{"monotonic has none", []float64{0, 1, 2, 3, 4}, 1, nil},
		{"endpoints are never peaks", []float64{5, 0, 0, 5}, 1, nil},
		{"plateau resolves to middle", []float64{0, 1, 1, 1, 0}, 1, []int{2}},
		{"two separated peaks", []float64{0, 3, 0, 0, 0, 5, 0}, 4, []int{1, 5}},
		{"close pair keeps highest", []float64{0, 3, 0, 5, 0}, 4, []int{3}},
		{"close pair keeps highest left", []float64{0, 5, 0, 3, 0}, 4, []int{1}},
		{"all NaN has none", []float64{math.NaN(), math.NaN(), math.NaN(), math.NaN()}, 1, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Find(tt.x, tt.distance))
		})
	}
}

func TestDetectSpike(t *testing.T) {
	x := make([]float64, 100)
	x[50] = 10

	peaks := Detect(x, 20)
	require.Len(t, peaks, 1)

	pk := peaks[0]
	assert.Equal(t, 50, pk.Index)
	assert.InDelta(t, 10.0, pk.Height, 1e-9)
	// Flanks drop straight to zero, so the expansion stops at radius 1;
	// both flanks tie, which keeps the interval on the upstream side.
	assert.Equal(t, 49, pk.Start)
	assert.Equal(t, 70, pk.End)
}

func TestDetectAsymmetricFlanks(t *testing.T) {
	// The downstream flank holds above 30% of the peak, the upstream one
	// does not, so the interval starts at the peak and pads downstream.
	x := []float64{0, 1, 2, 10, 4, 1, 0, 0, 0}

	peaks := Detect(x, 5)
	require.Len(t, peaks, 1)
	assert.Equal(t, 3, peaks[0].Index)
	assert.Equal(t, 3, peaks[0].Start)
	assert.Equal(t, 9, peaks[0].End)
}

func TestDetectWideSupport(t *testing.T) {
	// Both flanks stay above threshold until the expansion hits the
	// profile edge.
	x := []float64{0, 4, 5, 6, 10, 6, 5, 4, 0}

	peaks := Detect(x, 3)
	require.Len(t, peaks, 1)
	assert.Equal(t, 4, peaks[0].Index)
	assert.Equal(t, 0, peaks[0].Start)
	assert.Equal(t, 7, peaks[0].End)
}

func TestDetectDegenerateProfile(t *testing.T) {
	nan := math.NaN()
	assert.Empty(t, Detect([]float64{nan, nan, nan, nan, nan, nan, nan, nan, nan}, 10))
	assert.Empty(t, Detect([]float64{0, 0, 0, 0, 0, 0, 0, 0, 0}, 10))
}

func BenchmarkDetect(b *testing.B) {
	x := make([]float64, 9)
	x[4] = 5
	x[3] = 2
	x[5] = 3
	smoothed := Smooth(x, 1.5)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Detect(smoothed, 200)
	}
}
