// Package peak locates candidate breakpoints in summary z-score
// profiles: a profile is smoothed, strict local maxima are picked with a
// minimum separation, and each surviving peak is widened into an
// interval while its flanks stay above 30% of the peak height.
package peak

import (
	"math"
	"sort"
)

// expandThreshold is the fraction of the peak height a flank must keep
// for the interval to grow another sample.
const expandThreshold = 0.3

// Peak is one candidate breakpoint in a z-score profile. Start and End
// bound the expanded interval in profile coordinates; Height is the
// profile value at the peak sample.
type Peak struct {
	Index  int
	Height float64
	Start  int
	End    int
}

// Smooth convolves x with a normalized Gaussian kernel of the given
// sigma, truncated at four standard deviations, reflecting the profile
// at its edges. NaN samples spread through the kernel's support, which
// keeps degenerate profiles degenerate.
func Smooth(x []float64, sigma float64) []float64 {
	n := len(x)
	if n == 0 {
		return nil
	}

	out := make([]float64, n)
	radius := 0
	if sigma > 0 {
		radius = int(4*sigma + 0.5)
	}
	if radius == 0 {
		copy(out, x)
		return out
	}

	kernel := make([]float64, 2*radius+1)
	total := 0.0
	for i := -radius; i <= radius; i++ {
		v := math.Exp(-0.5 * float64(i*i) / (sigma * sigma))
		kernel[i+radius] = v
		total += v
	}
	for i := range kernel {
		kernel[i] /= total
	}

	for i := 0; i < n; i++ {
		acc := 0.0
		for k := -radius; k <= radius; k++ {
			acc += x[reflect(i+k, n)] * kernel[k+radius]
		}
		out[i] = acc
	}
	return out
}

// reflect maps an out-of-range index back into [0, n) by mirroring at
// the profile edges.
func reflect(i, n int) int {
	if n == 1 {
		return 0
	}
	for i < 0 || i >= n {
		if i < 0 {
			i = -i - 1
		}
		if i >= n {
			i = 2*n - i - 1
		}
	}
	return i
}

// Find returns the indices of strict local maxima of x, in ascending
// order, keeping only the highest peak within any minDistance
// neighborhood. A flat-topped maximum resolves to its middle sample.
// The first and last samples are never peaks.
func Find(x []float64, minDistance int) []int {
	maxima := localMaxima(x)
	if minDistance > 1 && len(maxima) > 1 {
		maxima = selectByDistance(x, maxima, minDistance)
	}
	return maxima
}

func localMaxima(x []float64) []int {
	var peaks []int
	iMax := len(x) - 1

	for i := 1; i < iMax; i++ {
		if x[i-1] < x[i] {
			ahead := i + 1
			for ahead < iMax && x[ahead] == x[i] {
				ahead++
			}
			if x[ahead] < x[i] {
				peaks = append(peaks, (i+ahead-1)/2)
				i = ahead
			}
		}
	}
	return peaks
}

// selectByDistance suppresses, highest peak first, every other peak
// closer than minDistance samples.
func selectByDistance(x []float64, peaks []int, minDistance int) []int {
	n := len(peaks)
	keep := make([]bool, n)
	order := make([]int, n)
	for i := range order {
		keep[i] = true
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		return x[peaks[order[a]]] < x[peaks[order[b]]]
	})

	for i := n - 1; i >= 0; i-- {
		j := order[i]
		if !keep[j] {
			continue
		}
		for k := j - 1; k >= 0 && peaks[j]-peaks[k] < minDistance; k-- {
			keep[k] = false
		}
		for k := j + 1; k < n && peaks[k]-peaks[j] < minDistance; k++ {
			keep[k] = false
		}
	}

	out := make([]int, 0, n)
	for i, p := range peaks {
		if keep[i] {
			out = append(out, p)
		}
	}
	return out
}

// Detect finds peaks in an already-smoothed profile and expands each
// into its breakpoint interval. winSize is both the minimum peak
// separation and the downstream pad of the interval: expansion stops at
// the first flank falling to 30% of the peak height, then the interval
// runs winSize past whichever flank is higher.
func Detect(x []float64, winSize int) []Peak {
	var out []Peak
	for _, p := range Find(x, winSize) {
		r := 1
		for p-r > 0 && p+r < len(x)-1 &&
			x[p+r] > expandThreshold*x[p] && x[p-r] > expandThreshold*x[p] {
			r++
		}

		pk := Peak{Index: p, Height: x[p]}
		if x[p+r] > x[p-r] {
			pk.Start = p
			pk.End = p + r + winSize
		} else {
			pk.Start = p - r
			pk.End = p + winSize
		}
		out = append(out, pk)
	}
	return out
}
