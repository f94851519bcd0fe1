// Package enrich is your toolbox for synthetically diversifying training
// data — probabilistic text and time-series transforms, plus a
// RandAugment-style sampler that composes them into repeatable pipelines.
//
// 🚀 What is enrich?
//
//	A small, deterministic-when-seeded library that brings together:
//		• randaug     — select n transforms at random, bound to magnitude m
//		• subst       — the substring / token substitution engine
//		• text        — character, word & sentence level text transforms
//		• timeseries  — time-domain & frequency-domain series transforms
//		• prob        — shared seedable randomness helpers
//
// ✨ Why choose enrich?
//
//   - Reproducible – every stochastic object owns its RNG; seed it, replay it
//   - Composable   – all transforms share one (value, p) contract
//   - Pure         – no hidden globals, no I/O, no shared mutable state
//   - Honest       – per-occurrence Bernoulli trials, never biased scans
//
// Quick taste:
//
//	e := text.New(text.WithSeed(42))
//	aug, _ := randaug.New(
//	  []randaug.Transform[string]{e.AddLeet, e.SwapChars, e.RemoveWhitespace},
//	  randaug.WithCount(2), randaug.WithMagnitude(15), randaug.WithSeed(7),
//	)
//	for _, fn := range aug.Sample() {
//	  line = fn(line)
//	}
//
// Each package documents its own contracts; start with randaug and subst.
//
//	go get github.com/kallistra/enrich
package enrich
