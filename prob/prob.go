package prob

import (
	"time"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/mathext/prng"
	"gonum.org/v1/gonum/stat/distuv"
)

// FreshSeed is the seed value that requests a fresh, time-derived stream.
// Any other value produces a deterministic, replayable generator.
const FreshSeed uint64 = 0

// NewSource returns an MT19937 source seeded with seed.
// seed==FreshSeed seeds from the wall clock; the resulting stream is
// independent of every other source created by this package.
func NewSource(seed uint64) rand.Source {
	src := prng.NewMT19937()
	if seed == FreshSeed {
		seed = uint64(time.Now().UnixNano())
	}
	src.Seed(seed)
	return src
}

// NewRand returns a *rand.Rand over NewSource(seed).
// The returned generator is owned by the caller and is not safe for
// concurrent use.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(NewSource(seed))
}

// Coin performs a single Bernoulli trial with success probability p.
// p ≤ 0 never succeeds and p ≥ 1 always succeeds without consuming
// entropy, so degenerate probabilities stay exactly degenerate.
func Coin(rng *rand.Rand, p float64) bool {
	if p <= 0 {
		return false
	}
	if p >= 1 {
		return true
	}
	return distuv.Bernoulli{P: p, Src: rng}.Rand() == 1
}

// Sign returns +1 or -1 with probability 0.5 each.
func Sign(rng *rand.Rand) float64 {
	if Coin(rng, 0.5) {
		return 1
	}
	return -1
}

// Pick returns a uniformly chosen element of xs.
// Panics on an empty slice; choosing from nothing is programmer error.
func Pick[T any](rng *rand.Rand, xs []T) T {
	if len(xs) == 0 {
		panic("prob: Pick from empty slice")
	}
	return xs[rng.Intn(len(xs))]
}

// Normal returns a draw from the normal distribution N(0, sigma).
// sigma ≤ 0 yields exactly zero.
func Normal(rng *rand.Rand, sigma float64) float64 {
	if sigma <= 0 {
		return 0
	}
	return distuv.Normal{Mu: 0, Sigma: sigma, Src: rng}.Rand()
}
