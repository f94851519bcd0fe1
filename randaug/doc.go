// Package randaug composes stochastic transforms into repeatable
// augmentation pipelines, in the manner of the RandAugment algorithm
// (https://arxiv.org/abs/1909.13719).
//
// 🚀 What is randaug?
//
//	A Sampler holds a fixed pool of transform functions. Every call to
//	Sample draws n of them at random, without replacement, each bound
//	to the current magnitude m (normalized to a probability p = m/100):
//	  • New          — build a Sampler over a pool, with options
//	  • Sample       — one fresh draw of n bound transforms
//	  • Apply        — draw once and run the pipeline over a value
//	  • SetN / SetM  — reconfigure between epochs
//
// The original paper describes m on a 0-10 scale but experiments with
// values in the 20s and 30s; enrich reads it as a 0-100 scale instead.
// Defaults are m=10, n=1.
//
// ✨ Semantics:
//
//   - n is validated strictly (ErrSampleSize) at construction and on
//     every SetN: no sampling strategy can satisfy n > len(pool).
//   - m is a tuning knob and is clamped to [0,100], never rejected.
//   - With shuffling (the default) the n selections come back in random
//     order, every pool element equally likely at every position. With
//     WithoutShuffle they come back in pool order — use that when your
//     transforms must run in a logical sequence (e.g. swapping synonyms
//     before deleting random characters).
//   - A Sampler is restartable: each Sample is an independent fresh
//     draw from the owned generator.
//
// Concurrency:
//
//	Sampling mutates the owned RNG, so a single Sampler must not be
//	shared across goroutines without external synchronization. Distinct
//	Samplers own distinct generators and are fully independent.
//
// ⚙️ Usage:
//
//	e := text.New(text.WithSeed(11))
//	aug, err := randaug.New(
//	  []randaug.Transform[string]{e.AddLeet, e.SwapChars, e.RemoveArticles},
//	  randaug.WithCount(2),
//	  randaug.WithMagnitude(15),
//	  randaug.WithSeed(7),
//	)
//	if err != nil { ... }
//	for _, fn := range aug.Sample() {
//	  line = fn(line)
//	}
package randaug
