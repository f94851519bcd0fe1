package timeseries

import (
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/interp"

	"github.com/kallistra/enrich/prob"
)

// Enricher owns the random stream and the interpolation strategy used
// by the resampling transforms (AddWarp, CropAndStretch). Construct one
// with New; the zero value is not usable.
type Enricher struct {
	rng       *rand.Rand
	newInterp func() interp.FittablePredictor
}

// Option configures an Enricher during New.
type Option func(*Enricher)

// WithSeed makes the Enricher's draws reproducible. The zero seed
// (prob.FreshSeed) keeps a fresh, time-seeded stream.
func WithSeed(seed uint64) Option {
	return func(e *Enricher) { e.rng = prob.NewRand(seed) }
}

// WithRand injects an external generator, e.g. one shared with a
// randaug.Sampler. Panics if rng is nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("timeseries: WithRand requires a non-nil generator")
	}
	return func(e *Enricher) { e.rng = rng }
}

// WithInterpolator swaps the curve model used when a transform
// resamples the series. The factory is invoked once per fit because
// predictors keep state across Fit calls. The default builds an
// interp.PiecewiseLinear. Panics if factory is nil.
func WithInterpolator(factory func() interp.FittablePredictor) Option {
	if factory == nil {
		panic("timeseries: WithInterpolator requires a non-nil factory")
	}
	return func(e *Enricher) { e.newInterp = factory }
}

// New builds an Enricher with a fresh time-seeded stream and piecewise
// linear interpolation, then applies opts in order.
func New(opts ...Option) *Enricher {
	e := &Enricher{
		rng: prob.NewRand(prob.FreshSeed),
		newInterp: func() interp.FittablePredictor {
			return &interp.PiecewiseLinear{}
		},
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
