// Package prob centralizes seedable randomness for the enrich library.
//
// 🚀 What is prob?
//
//	One construction policy and a handful of sampling helpers shared by
//	every stochastic package:
//	  • NewRand / NewSource — MT19937-backed generators, seeded or fresh
//	  • Coin               — a single Bernoulli(p) trial
//	  • Sign               — ±1 with equal probability
//	  • Pick               — uniform choice from a non-empty slice
//	  • Normal             — a draw from N(0, sigma)
//
// ✨ Why a dedicated package?
//
//   - Determinism – same seed ⇒ identical streams across platforms
//   - Encapsulation – a single RNG factory; time-based seeding happens
//     here and nowhere else
//   - Independence – every caller owns its *rand.Rand; two generators
//     never share state
//
// Concurrency:
//
//	*rand.Rand is NOT goroutine-safe. Never share one across goroutines
//	without external synchronization; construct one per worker instead.
//
// The underlying source is gonum's MT19937 (mathext/prng) exposed through
// golang.org/x/exp/rand, which is also the Source type gonum's
// distribution samplers consume.
package prob
