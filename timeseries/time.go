package timeseries

import (
	"math"
	"sort"

	"github.com/kallistra/enrich/prob"
)

// AddSlopeTrend overlays, with probability p, a linear ramp running
// from 0 at the first entry to m standard deviations at the last, with
// a random sign. The slope scales with the series' own spread so m is
// unitless.
func (e *Enricher) AddSlopeTrend(x []float64, p, m float64) []float64 {
	out := clone(x)
	if len(out) == 0 || !prob.Coin(e.rng, p) {
		return out
	}
	ramp := linspace(prob.Sign(e.rng)*m*spread(x), len(out))
	for i := range out {
		out[i] += ramp[i]
	}
	return out
}

// AddSpike perturbs each entry independently with probability p by
// m standard deviations, up or down at random.
func (e *Enricher) AddSpike(x []float64, p, m float64) []float64 {
	out := clone(x)
	if len(out) == 0 {
		return out
	}
	s := spread(x)
	for i := range out {
		if prob.Coin(e.rng, p) {
			out[i] += prob.Sign(e.rng) * m * s
		}
	}
	return out
}

// AddStepTrend overlays a staircase drift: each entry starts a new
// step with probability p, and every step shifts the remainder of the
// series by another m standard deviations in a direction fixed once
// per call.
func (e *Enricher) AddStepTrend(x []float64, p, m float64) []float64 {
	out := clone(x)
	if len(out) == 0 {
		return out
	}
	step := prob.Sign(e.rng) * m * spread(x)
	var drift float64
	for i := range out {
		if prob.Coin(e.rng, p) {
			drift += step
		}
		out[i] += drift
	}
	return out
}

// AddWarp resamples the series, with probability p, at unevenly spaced
// positions: the unit interval is subdivided m times more finely than
// the original grid and len(x) of those positions are drawn without
// replacement, so stretches of the curve speed up while others slow
// down. The series length is preserved. m below 2/len(x) leaves too
// coarse a grid to warp and the input is returned as is.
func (e *Enricher) AddWarp(x []float64, p, m float64) []float64 {
	out := clone(x)
	n := len(out)
	if n < 2 {
		return out
	}
	fine := int(math.Round(float64(n) * m))
	if fine < 2 || !prob.Coin(e.rng, p) {
		return out
	}
	grid := fine * n
	idx := e.rng.Perm(grid)[:n]
	sort.Ints(idx)

	pred := e.newInterp()
	if err := pred.Fit(linspace(1, n), x); err != nil {
		return out
	}
	scale := 1 / float64(grid-1)
	for i, at := range idx {
		out[i] = pred.Predict(float64(at) * scale)
	}
	return out
}

// CropAndStretch cuts, with probability p, a random window covering a
// (1-m) fraction of the series and stretches it back to the original
// length. Windows shorter than two samples cannot be stretched and
// leave the input unchanged.
func (e *Enricher) CropAndStretch(x []float64, p, m float64) []float64 {
	out := clone(x)
	n := len(out)
	window := int(math.Round((1 - m) * float64(n)))
	if window < 2 || window >= n || !prob.Coin(e.rng, p) {
		return out
	}
	start := e.rng.Intn(n - window)
	crop := x[start : start+window]

	pred := e.newInterp()
	if err := pred.Fit(linspace(1, window), crop); err != nil {
		return out
	}
	for i, t := range linspace(1, n) {
		out[i] = pred.Predict(t)
	}
	return out
}

// Flip negates every entry with probability p. The magnitude argument
// is accepted for pool uniformity and ignored.
func (e *Enricher) Flip(x []float64, p, _ float64) []float64 {
	out := clone(x)
	if !prob.Coin(e.rng, p) {
		return out
	}
	for i := range out {
		out[i] = -out[i]
	}
	return out
}

// Reverse plays the series backwards with probability p. The magnitude
// argument is accepted for pool uniformity and ignored.
func (e *Enricher) Reverse(x []float64, p, _ float64) []float64 {
	out := clone(x)
	if !prob.Coin(e.rng, p) {
		return out
	}
	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return out
}
