// Package text - sentence-granularity transforms. Each applies (or
// not) to the sentence as a whole: p is a single per-sentence trial.
package text

import (
	"regexp"
	"strings"

	"github.com/kallistra/enrich/prob"
)

// whitespaceRun matches maximal runs of whitespace for AddApplause.
var whitespaceRun = regexp.MustCompile(`\s+`)

// AddApplause replaces every whitespace run with the clapping emoji
// (U+1F44F), an online idiom for emphasis that incidentally defeats
// word- and token-based models. The whole sentence is one Bernoulli(p)
// trial.
func (e *Enricher) AddApplause(s string, p float64) string {
	if prob.Coin(e.rng, p) {
		s = whitespaceRun.ReplaceAllString(s, "\U0001f44f")
	}
	return s
}

// AddBacktranslation round-trips the sentence through the configured
// Translator, with probability p. Without a translator (or when the
// handle returns an error, or on an empty sentence) the input passes
// through unchanged. See WithTranslator for lifecycle expectations.
func (e *Enricher) AddBacktranslation(s string, p float64) string {
	if e.translator == nil || s == "" {
		return s
	}
	if prob.Coin(e.rng, p) {
		if out, err := e.translator.Backtranslate(s); err == nil {
			s = out
		}
	}
	return s
}

// AddBytes appends random bytes to the end of the sentence, with
// probability p — a spam-disguising technique effective against
// character-based and length-featured models. The bytes are repaired
// into valid UTF-8 (invalid sequences become U+FFFD), so the appended
// character count is typically below the configured byte tail length.
func (e *Enricher) AddBytes(s string, p float64) string {
	if prob.Coin(e.rng, p) {
		tail := make([]byte, e.byteTail)
		for i := range tail {
			tail[i] = byte(e.rng.Intn(256))
		}
		s += strings.ToValidUTF8(string(tail), "�")
	}
	return s
}

// AddLove appends " love" to the sentence, with probability p. A word
// with strong positive sentiment confuses sentiment-based input
// filters (arXiv:1808.09115).
func (e *Enricher) AddLove(s string, p float64) string {
	if prob.Coin(e.rng, p) {
		s += " love"
	}
	return s
}
