// Package randaug - transform contracts and sentinel errors.
package randaug

import "errors"

// Transform is the contract every pool element must satisfy: a pure
// mapping from (value, probability) to a value of the same domain.
// Transforms that also take a magnitude or other parameters are
// expected to be pre-bound (closed over) before joining a pool.
type Transform[T any] func(value T, p float64) T

// Bound is a Transform pre-bound with the Sampler's current
// probability, ready to apply to a value.
type Bound[T any] func(value T) T

// Sentinel errors for sampler configuration.
var (
	// ErrSampleSize indicates n is negative or exceeds the pool size.
	ErrSampleSize = errors.New("randaug: sample size n must satisfy 0 <= n <= len(pool)")
)
