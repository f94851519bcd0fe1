package randaug

import (
	"math"
	"sort"

	"golang.org/x/exp/rand"

	"github.com/kallistra/enrich/prob"
)

// Sampler draws random, non-repeating subsets of a fixed transform
// pool, each selection bound to the current magnitude.
//
// The pool is fixed at construction; n and m may be reassigned freely
// between draws (SetN revalidates, SetM reclamps). The zero value is
// not usable; construct with New.
type Sampler[T any] struct {
	pool    []Transform[T]
	p       float64
	n       int
	shuffle bool
	rng     *rand.Rand
}

// New builds a Sampler over pool.
//
// Defaults: n=1, m=10, shuffled selection order, fresh time-seeded
// generator. Returns ErrSampleSize when the configured n is negative or
// exceeds len(pool) — including the default n=1 over an empty pool.
func New[T any](pool []Transform[T], opts ...Option) (*Sampler[T], error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	rng := cfg.rng
	if rng == nil {
		rng = prob.NewRand(cfg.seed)
	}

	s := &Sampler[T]{
		pool:    append([]Transform[T](nil), pool...),
		shuffle: cfg.shuffle,
		rng:     rng,
	}
	if err := s.SetN(cfg.n); err != nil {
		return nil, err
	}
	s.SetM(cfg.m)
	return s, nil
}

// Len returns the pool size.
func (s *Sampler[T]) Len() int { return len(s.pool) }

// N returns the number of transforms drawn per sample.
func (s *Sampler[T]) N() int { return s.n }

// SetN reconfigures the sample size. Returns ErrSampleSize when
// n < 0 or n > Len(); the previous value is kept on error.
func (s *Sampler[T]) SetN(n int) error {
	if n < 0 || n > len(s.pool) {
		return ErrSampleSize
	}
	s.n = n
	return nil
}

// M returns the magnitude on the 0-100 scale, derived from the stored
// probability: round(p*100).
func (s *Sampler[T]) M() int {
	return int(math.Round(s.p * 100))
}

// SetM reconfigures the magnitude, clamping to [0,100] through the
// stored fractional probability p = m/100. Never fails.
func (s *Sampler[T]) SetM(m int) {
	s.p = math.Min(math.Max(float64(m)/100, 0), 1)
}

// P returns the normalized probability the next sample will bind,
// p = clamp(m/100) ∈ [0,1].
func (s *Sampler[T]) P() float64 { return s.p }

// Sample draws n transforms uniformly without replacement and binds
// each to the current probability.
//
// The draw is a single permutation primitive (Fisher–Yates via
// rng.Perm), so every pool element is equally likely to occupy any
// position of a shuffled result and no element appears twice. Without
// shuffling, the chosen indices are returned sorted into pool order.
//
// Each call is an independent fresh draw; a Sampler never exhausts.
func (s *Sampler[T]) Sample() []Bound[T] {
	idx := s.rng.Perm(len(s.pool))[:s.n]
	if !s.shuffle {
		sort.Ints(idx)
	}

	out := make([]Bound[T], s.n)
	for k, i := range idx {
		fn := s.pool[i]
		p := s.p
		out[k] = func(v T) T { return fn(v, p) }
	}
	return out
}

// Apply draws one fresh sample and runs it over v in selection order,
// returning the transformed value.
func (s *Sampler[T]) Apply(v T) T {
	for _, fn := range s.Sample() {
		v = fn(v)
	}
	return v
}
