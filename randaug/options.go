// Package randaug - functional options for Sampler construction.
//
// Contract (strict):
//   - Options are functional (type Option func(*config)).
//   - Option constructors validate and panic on meaningless inputs
//     (nil RNG); sampler methods themselves never panic, they return
//     sentinel errors.
//   - Determinism is explicit: seed via WithSeed or inject WithRand.
//     No hidden globals.
package randaug

import (
	"golang.org/x/exp/rand"

	"github.com/kallistra/enrich/prob"
)

// Option customizes Sampler construction.
type Option func(*config)

type config struct {
	m       int
	n       int
	shuffle bool
	seed    uint64
	rng     *rand.Rand
}

func defaultConfig() config {
	return config{
		m:       10,
		n:       1,
		shuffle: true,
		seed:    prob.FreshSeed,
	}
}

// WithMagnitude sets the magnitude m on the 0-100 scale (default 10).
// Out-of-range values are clamped, not rejected: magnitude is a tuning
// knob, and any value can be interpreted.
func WithMagnitude(m int) Option {
	return func(c *config) {
		c.m = m
	}
}

// WithCount sets the number of transforms n drawn per sample
// (default 1). Validated against the pool size by New.
func WithCount(n int) Option {
	return func(c *config) {
		c.n = n
	}
}

// WithoutShuffle makes Sample return its selections in pool order
// instead of random order. Use when transforms must run in a logical
// sequence.
func WithoutShuffle() Option {
	return func(c *config) {
		c.shuffle = false
	}
}

// WithSeed seeds the Sampler's owned generator for reproducible draws.
// prob.FreshSeed (zero) keeps the default fresh, time-derived stream.
func WithSeed(seed uint64) Option {
	return func(c *config) {
		c.seed = seed
	}
}

// WithRand injects an explicit generator, overriding WithSeed.
// The Sampler takes exclusive ownership of it. Panics on nil to surface
// programmer error early.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("randaug: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = rng
	}
}
