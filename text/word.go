// Package text - word-granularity transforms.
package text

import (
	"strings"

	"github.com/kallistra/enrich/prob"
	"github.com/kallistra/enrich/subst"
)

// replaceFromTable rewrites whole tokens found in table, each
// independently with probability p; a hit is replaced by a uniformly
// chosen candidate. Lookup is by lowercased token.
func (e *Enricher) replaceFromTable(s string, p float64, table map[string][]string) string {
	words := strings.Fields(s)
	for i, w := range words {
		candidates, ok := table[strings.ToLower(w)]
		if !ok || len(candidates) == 0 {
			continue
		}
		if prob.Coin(e.rng, p) {
			words[i] = prob.Pick(e.rng, candidates)
		}
	}
	return strings.Join(words, " ")
}

// AddHypernyms replaces words with a higher-level category — same
// general meaning, too general for the context, e.g.
// "all dogs go to heaven" → "all quadrupeds go to place". Each word is
// an independent Bernoulli(p) trial; words with several candidates get
// a uniformly chosen one.
func (e *Enricher) AddHypernyms(s string, p float64) string {
	return e.replaceFromTable(s, p, e.hypernyms)
}

// AddHyponyms replaces words with a lower-level category — same general
// meaning, too specific for the context, e.g.
// "all dogs go to heaven" → "all australian shepherds go to heaven".
func (e *Enricher) AddHyponyms(s string, p float64) string {
	return e.replaceFromTable(s, p, e.hyponyms)
}

// AddMisspelling replaces words with a common misspelling, each word
// independently with probability p.
func (e *Enricher) AddMisspelling(s string, p float64) string {
	return e.replaceFromTable(s, p, e.misspellings)
}

// AddParens wraps individual words in triple parentheses, e.g.
// "(((term)))" — a common tactic for disrupting tokenizers. Each word
// is an independent Bernoulli(p) trial.
func (e *Enricher) AddParens(s string, p float64) string {
	words := strings.Fields(s)
	for i, w := range words {
		if prob.Coin(e.rng, p) {
			words[i] = "(((" + w + ")))"
		}
	}
	return strings.Join(words, " ")
}

// AddSynonyms replaces words with one of close meaning, e.g.
// "all dogs go to heaven" → "all domestic dogs depart to heaven"
// (arXiv:1509.01626).
func (e *Enricher) AddSynonyms(s string, p float64) string {
	return e.replaceFromTable(s, p, e.synonyms)
}

// RemoveArticles deletes the articles and simple possessives
// the, a, an, these, those, his, hers, their — each matching token
// independently with probability p. Removal collapses the surrounding
// whitespace.
func (e *Enricher) RemoveArticles(s string, p float64) string {
	return subst.Words(e.rng, s, p, articleTable)
}

// SwapWords exchanges adjacent words under the same pair-consumption
// rule as SwapChars: vocabulary is preserved, token order is perturbed.
func (e *Enricher) SwapWords(s string, p float64) string {
	return strings.Join(subst.SwapAdjacent(e.rng, strings.Fields(s), p), " ")
}
