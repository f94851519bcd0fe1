// Package text - character-granularity transforms.
package text

import (
	"strings"

	"golang.org/x/exp/rand"

	"github.com/kallistra/enrich/prob"
	"github.com/kallistra/enrich/subst"
)

const asciiLetters = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"

// AddCharacters inserts random ASCII letters before existing
// characters, each gap independently with probability p. Gaps are
// drawn right-to-left so earlier positions are never shifted by a
// pending insertion.
func (e *Enricher) AddCharacters(s string, p float64) string {
	return subst.InsertRunes(e.rng, s, p, func(rng *rand.Rand) rune {
		return rune(asciiLetters[rng.Intn(len(asciiLetters))])
	}, false)
}

// AddContractions replaces common word pairs with their contraction
// ("is not" → "isn't"), each occurrence independently with
// probability p. This can introduce ambiguity; that is treated as
// semantics-preserving noise (arXiv:1812.04718).
func (e *Enricher) AddContractions(s string, p float64) string {
	return subst.Chars(e.rng, s, p, contractionTable)
}

// RemoveContractions expands contractions back into individual tokens
// ("isn't" → "is not"), each occurrence independently with
// probability p.
func (e *Enricher) RemoveContractions(s string, p float64) string {
	return subst.Chars(e.rng, s, p, expansionTable)
}

// AddFatThumbs replaces characters with a QWERTY neighbor, simulating
// a nearby-key press on a keyboard or touchscreen. Each character is
// independently selected with probability p; characters without a
// neighbor entry pass through unchanged.
func (e *Enricher) AddFatThumbs(s string, p float64) string {
	return subst.ReplaceRunes(e.rng, s, p, func(rng *rand.Rand, r rune) string {
		neighbors, ok := neighborTable[r]
		if !ok {
			return string(r)
		}
		return string(prob.Pick(rng, []rune(neighbors)))
	})
}

// AddLeet replaces character groups with visually or aurally similar
// ones, each occurrence independently with probability p. Groups are
// searched in table priority (roughly largest to smallest), e.g.:
//
//	"Hello, you are banned"
//	"Hello, you are b&"
//	"Hello, you r b&"
//	"Hello, u r b&"
//	"H3110, u r b&"
func (e *Enricher) AddLeet(s string, p float64) string {
	return subst.Chars(e.rng, s, p, leetTable)
}

// AddStickyKeys simulates a failing keyboard: each character is
// independently selected with probability p and then either dropped or
// doubled, chosen with equal probability. Characters are visited
// right-to-left so pending length changes never shift earlier
// positions.
func (e *Enricher) AddStickyKeys(s string, p float64) string {
	return subst.ReplaceRunes(e.rng, s, p, func(rng *rand.Rand, r rune) string {
		return strings.Repeat(string(r), prob.Pick(rng, []int{0, 2}))
	})
}

// AddWhitespace inserts a space character into each gap, including the
// trailing one, independently with probability p. Extraneous whitespace
// in the middle of an important word degrades tokenizer-dependent
// models.
func (e *Enricher) AddWhitespace(s string, p float64) string {
	return subst.InsertRunes(e.rng, s, p, func(*rand.Rand) rune { return ' ' }, true)
}

// RemoveCharacters deletes individual characters, each independently
// with probability p.
func (e *Enricher) RemoveCharacters(s string, p float64) string {
	return subst.ReplaceRunes(e.rng, s, p, func(*rand.Rand, rune) string { return "" })
}

// RemovePunctuation deletes ASCII punctuation, each occurrence
// independently with probability p. When the punctuation sits inside a
// word (e.g. a possessive apostrophe) removal may change semantics;
// that is the point.
func (e *Enricher) RemovePunctuation(s string, p float64) string {
	return subst.Chars(e.rng, s, p, punctuationTable)
}

// RemoveWhitespace deletes space characters, each independently with
// probability p.
func (e *Enricher) RemoveWhitespace(s string, p float64) string {
	return subst.Chars(e.rng, s, p, subst.Mapping{{Pattern: " ", Replacement: ""}})
}

// SwapChars exchanges adjacent characters: each adjacent pair is an
// independent Bernoulli(p) trial and a successful swap consumes both
// characters, so no character moves more than one position.
func (e *Enricher) SwapChars(s string, p float64) string {
	return string(subst.SwapAdjacent(e.rng, []rune(s), p))
}
