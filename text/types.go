// Package text - Enricher construction and functional options.
//
// Contract (strict):
//   - Options validate and panic on meaningless inputs (nil translator,
//     nil RNG, empty tables); transform methods never panic.
//   - Determinism is explicit: seed via WithSeed or inject WithRand.
package text

import (
	"golang.org/x/exp/rand"

	"github.com/kallistra/enrich/prob"
)

// Translator is the injected handle for backtranslation: implementations
// round-trip a sentence through another language and back. Loading and
// caching the underlying models is the caller's responsibility; the
// handle is constructed once and passed by reference, never lazily
// materialized inside a transform.
type Translator interface {
	// Backtranslate returns the round-tripped sentence. On error the
	// calling transform keeps the input unchanged.
	Backtranslate(s string) (string, error)
}

// defaultByteTail is the number of random bytes AddBytes appends,
// before invalid UTF-8 repair.
const defaultByteTail = 100

// Enricher owns a random generator and the lookup tables behind the
// word-level transforms. Construct with New; the zero value is not
// usable.
type Enricher struct {
	rng        *rand.Rand
	translator Translator
	byteTail   int

	synonyms     map[string][]string
	hypernyms    map[string][]string
	hyponyms     map[string][]string
	misspellings map[string][]string
}

// Option customizes an Enricher.
type Option func(*Enricher)

// WithSeed seeds the Enricher's owned generator for reproducible runs.
// prob.FreshSeed (zero) keeps the default fresh, time-derived stream.
func WithSeed(seed uint64) Option {
	return func(e *Enricher) {
		e.rng = prob.NewRand(seed)
	}
}

// WithRand injects an explicit generator. The Enricher takes exclusive
// ownership of it. Panics on nil.
func WithRand(rng *rand.Rand) Option {
	if rng == nil {
		panic("text: WithRand(nil)")
	}
	return func(e *Enricher) {
		e.rng = rng
	}
}

// WithTranslator injects the backtranslation handle. Panics on nil;
// omit the option entirely to leave AddBacktranslation a no-op.
func WithTranslator(tr Translator) Option {
	if tr == nil {
		panic("text: WithTranslator(nil)")
	}
	return func(e *Enricher) {
		e.translator = tr
	}
}

// WithByteTail sets how many random bytes AddBytes appends (default 100).
// Panics on non-positive lengths.
func WithByteTail(n int) Option {
	if n <= 0 {
		panic("text: WithByteTail(n <= 0)")
	}
	return func(e *Enricher) {
		e.byteTail = n
	}
}

// WithSynonyms replaces the built-in synonym table. Panics on nil.
func WithSynonyms(table map[string][]string) Option {
	if table == nil {
		panic("text: WithSynonyms(nil)")
	}
	return func(e *Enricher) {
		e.synonyms = table
	}
}

// WithHypernyms replaces the built-in hypernym table. Panics on nil.
func WithHypernyms(table map[string][]string) Option {
	if table == nil {
		panic("text: WithHypernyms(nil)")
	}
	return func(e *Enricher) {
		e.hypernyms = table
	}
}

// WithHyponyms replaces the built-in hyponym table. Panics on nil.
func WithHyponyms(table map[string][]string) Option {
	if table == nil {
		panic("text: WithHyponyms(nil)")
	}
	return func(e *Enricher) {
		e.hyponyms = table
	}
}

// WithMisspellings replaces the built-in misspelling table. Panics on nil.
func WithMisspellings(table map[string][]string) Option {
	if table == nil {
		panic("text: WithMisspellings(nil)")
	}
	return func(e *Enricher) {
		e.misspellings = table
	}
}

// New builds an Enricher with the built-in English tables, a fresh
// time-seeded generator, and no translator.
func New(opts ...Option) *Enricher {
	e := &Enricher{
		rng:          prob.NewRand(prob.FreshSeed),
		byteTail:     defaultByteTail,
		synonyms:     synonymTable,
		hypernyms:    hypernymTable,
		hyponyms:     hyponymTable,
		misspellings: misspellingTable,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}
