package subst

import (
	"strings"

	"golang.org/x/exp/rand"

	"github.com/kallistra/enrich/prob"
)

// Chars replaces pattern occurrences inside s, each independently with
// probability p.
//
// Algorithm, per (pattern, replacement) in mapping order:
//  1. Lower the current haystack once (ASCII folding) and start a
//     cursor at 0.
//  2. Find the next occurrence of the lowercased pattern at or after
//     the cursor; stop this pattern when none remains.
//  3. On a successful Bernoulli(p) trial emit the replacement verbatim
//     and continue searching after it; on a failed trial emit the
//     matched span unchanged and continue searching after the match.
//     Either way the occurrence is consumed exactly once.
//  4. Later patterns scan the already-rewritten sequence, so earlier
//     entries win overlapping spans.
//
// Case-insensitivity is ASCII-only: matching folds A-Z and nothing
// else, so full Unicode folding never shifts byte offsets between the
// lowered haystack and s (see lowerASCII). A pattern such as "café"
// will not match a haystack spelling "CAFÉ"; callers with non-ASCII
// tables must supply the case variants they care about as separate
// mapping entries.
//
// Empty patterns are skipped: a zero-length needle would stall the
// cursor. Pattern-not-found is a silent no-op.
//
// Complexity: O(len(mapping) · len(s)) time; output built through a
// single accumulator per pattern pass, never by repeated slicing.
func Chars(rng *rand.Rand, s string, p float64, mapping Mapping) string {
	cur := s
	for _, pr := range mapping {
		if pr.Pattern == "" || cur == "" {
			continue
		}
		pat := lowerASCII(pr.Pattern)
		hay := lowerASCII(cur)

		var b strings.Builder
		b.Grow(len(cur))
		i := 0
		for i < len(cur) {
			j := strings.Index(hay[i:], pat)
			if j < 0 {
				break
			}
			at := i + j
			b.WriteString(cur[i:at])
			if prob.Coin(rng, p) {
				b.WriteString(pr.Replacement)
			} else {
				b.WriteString(cur[at : at+len(pat)])
			}
			i = at + len(pat)
		}
		b.WriteString(cur[i:])
		cur = b.String()
	}
	return cur
}

// Words replaces whole tokens of s, each independently with probability p.
//
// The sequence is split on whitespace. For each (pattern, replacement)
// in mapping order, every token whose lowercased form exactly equals
// the pattern is replaced verbatim — no partial matches. Tokens left
// empty by a deletion are dropped and the survivors are rejoined with
// single spaces, so removal also collapses extraneous whitespace.
func Words(rng *rand.Rand, s string, p float64, mapping Mapping) string {
	words := strings.Fields(s)
	for _, pr := range mapping {
		for i, w := range words {
			if strings.ToLower(w) == pr.Pattern && prob.Coin(rng, p) {
				words[i] = pr.Replacement
			}
		}
	}
	kept := words[:0]
	for _, w := range words {
		if w != "" {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

// lowerASCII lowercases A-Z only, leaving every other byte untouched.
// Unlike full Unicode folding it can never change byte offsets, which
// keeps match positions in the lowered haystack aligned with s.
func lowerASCII(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}
