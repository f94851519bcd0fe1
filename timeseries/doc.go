// Package timeseries is the catalogue of probabilistic transforms for
// numeric sequences, in both the time and the frequency domain. The
// organization and the basic set of operations follow Wen et al.,
// "Time Series Data Augmentation for Deep Learning"
// (https://arxiv.org/abs/2002.12478).
//
// 🚀 What is timeseries?
//
//	An Enricher owns a seedable generator and exposes transforms as
//	methods with the (x, p, m) → x' contract — probability p plus a
//	magnitude m that usually scales with the series' standard
//	deviation:
//
//	Time domain
//	  AddSlopeTrend · AddSpike · AddStepTrend · AddWarp ·
//	  CropAndStretch · Flip · Reverse
//
//	Frequency domain
//	  AddDiscretePhaseShifts · AddHighFrequencyNoise ·
//	  AddRandomFrequencyNoise · RemoveRandomFrequency
//
// ✨ Semantics:
//
//   - Inputs are never mutated; every transform returns a fresh slice
//     of the same length.
//   - p is per-sequence for the whole-series transforms (trend, warp,
//     crop, flip, reverse, high-frequency noise) and per-entry or
//     per-frequency for the pointwise ones (spike, step, phase shift,
//     frequency noise and removal).
//   - Magnitude scaling ignores NaN entries when measuring spread, so a
//     few gaps do not silence a transform.
//   - Frequency transforms run through a real FFT and its inverse
//     (gonum dsp/fourier) and are length-preserving for odd and even
//     series alike.
//
// For use in a randaug pool, pre-bind the magnitude:
//
//	e := timeseries.New(timeseries.WithSeed(3))
//	spike := func(x []float64, p float64) []float64 {
//	  return e.AddSpike(x, p, 1.0)
//	}
//
// Concurrency: one Enricher per goroutine; see package text.
package timeseries
