package timeseries

import (
	"math"
	"math/cmplx"

	"gonum.org/v1/gonum/dsp/fourier"

	"github.com/kallistra/enrich/prob"
)

// spectrum computes the real FFT of x. The companion rebuild inverts
// it; gonum's Sequence returns the unnormalized inverse, so rebuild
// divides by the series length.
func spectrum(x []float64) (*fourier.FFT, []complex128) {
	fft := fourier.NewFFT(len(x))
	return fft, fft.Coefficients(nil, x)
}

func rebuild(fft *fourier.FFT, coeffs []complex128, n int) []float64 {
	out := fft.Sequence(nil, coeffs)
	inv := 1 / float64(n)
	for i := range out {
		out[i] *= inv
	}
	return out
}

// peak is the largest coefficient modulus, the reference amplitude for
// the noise transforms.
func peak(coeffs []complex128) float64 {
	var max float64
	for _, c := range coeffs {
		if a := cmplx.Abs(c); a > max {
			max = a
		}
	}
	return max
}

// AddDiscretePhaseShifts selects frequency components independently
// with probability p and swaps each selected component with a
// neighbor round(m*len) bins away, in a random direction. Only
// mutually selected components trade places, each at most once per
// call; the constant (0 Hz) component never moves. The effect is a
// local scrambling of the spectrum that keeps the set of component
// magnitudes unchanged.
func (e *Enricher) AddDiscretePhaseShifts(x []float64, p, m float64) []float64 {
	if len(x) < 2 {
		return clone(x)
	}
	fft, coeffs := spectrum(x)
	reach := int(math.Round(float64(len(coeffs)) * m))

	// 1 selected, 0 skipped, -1 already traded.
	marks := make([]int8, len(coeffs))
	dirs := make([]int, len(coeffs))
	for i := 1; i < len(coeffs); i++ {
		if prob.Coin(e.rng, p) {
			marks[i] = 1
		}
		dirs[i] = int(prob.Sign(e.rng))
	}
	for i := 1; i < len(coeffs); i++ {
		if marks[i] != 1 {
			continue
		}
		j := i + dirs[i]*reach
		if j < 1 {
			j = 1
		} else if j >= len(coeffs) {
			j = len(coeffs) - 1
		}
		if marks[j] != 1 {
			continue
		}
		coeffs[i], coeffs[j] = coeffs[j], coeffs[i]
		marks[i], marks[j] = -1, -1
	}
	return rebuild(fft, coeffs, len(x))
}

// AddRandomFrequencyNoise perturbs each non-constant frequency
// component independently with probability p by complex Gaussian noise
// scaled to m times the strongest component's amplitude.
func (e *Enricher) AddRandomFrequencyNoise(x []float64, p, m float64) []float64 {
	if len(x) < 2 {
		return clone(x)
	}
	fft, coeffs := spectrum(x)
	amp := m * peak(coeffs)
	for i := 1; i < len(coeffs); i++ {
		if prob.Coin(e.rng, p) {
			coeffs[i] += complex(prob.Normal(e.rng, 1), prob.Normal(e.rng, 1)) * complex(amp, 0)
		}
	}
	return rebuild(fft, coeffs, len(x))
}

// AddHighFrequencyNoise perturbs, with probability p, the highest
// frequency component by complex Gaussian noise scaled to m times the
// strongest component's amplitude. On typical smooth series this adds
// a faint sample-to-sample jitter.
func (e *Enricher) AddHighFrequencyNoise(x []float64, p, m float64) []float64 {
	if len(x) < 2 {
		return clone(x)
	}
	fft, coeffs := spectrum(x)
	if prob.Coin(e.rng, p) {
		amp := m * peak(coeffs)
		coeffs[len(coeffs)-1] += complex(prob.Normal(e.rng, 1), prob.Normal(e.rng, 1)) * complex(amp, 0)
	}
	return rebuild(fft, coeffs, len(x))
}

// RemoveRandomFrequency zeroes each frequency component independently
// with probability p, the constant component included, acting as a
// randomized notch filter. The magnitude argument is accepted for pool
// uniformity and ignored.
func (e *Enricher) RemoveRandomFrequency(x []float64, p, _ float64) []float64 {
	if len(x) < 2 {
		return clone(x)
	}
	fft, coeffs := spectrum(x)
	for i := range coeffs {
		if prob.Coin(e.rng, p) {
			coeffs[i] = 0
		}
	}
	return rebuild(fft, coeffs, len(x))
}
