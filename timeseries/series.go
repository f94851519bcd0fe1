package timeseries

import (
	"math"

	"gonum.org/v1/gonum/stat"
)

// clone returns a fresh copy of x so transforms never alias the input.
func clone(x []float64) []float64 {
	out := make([]float64, len(x))
	copy(out, x)
	return out
}

// linspace fills n evenly spaced values from 0 to stop inclusive.
// n == 1 yields [0], matching the degenerate single-sample series.
func linspace(stop float64, n int) []float64 {
	out := make([]float64, n)
	if n < 2 {
		return out
	}
	step := stop / float64(n-1)
	for i := range out {
		out[i] = step * float64(i)
	}
	return out
}

// spread is the population standard deviation over the finite entries
// of x. NaN gaps are skipped rather than poisoning the estimate; a
// series with no finite entries reports NaN.
func spread(x []float64) float64 {
	finite := make([]float64, 0, len(x))
	for _, v := range x {
		if !math.IsNaN(v) {
			finite = append(finite, v)
		}
	}
	if len(finite) == 0 {
		return math.NaN()
	}
	return stat.PopStdDev(finite, nil)
}
