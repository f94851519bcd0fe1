// Package subst - position-preserving scan primitives shared by the
// character-level transforms.
//
// Direction contracts:
//   - ReplaceRunes and InsertRunes draw right-to-left: a length change
//     at a higher index can never shift a lower, not-yet-visited
//     position, so each position sees an unbiased, independent
//     Bernoulli(p) trial. Scanning left-to-right instead would skew the
//     effective per-position probability after the first edit.
//   - SwapAdjacent scans left-to-right and consumes both elements of a
//     successful swap, so p is a per-adjacent-pair trial applied at most
//     len-1 times and no element moves twice.
package subst

import (
	"strings"

	"golang.org/x/exp/rand"

	"github.com/kallistra/enrich/prob"
)

// ReplaceRunes rewrites individual characters of s.
//
// Each rune position, visited right-to-left, is independently selected
// with probability p; a selected rune is replaced by repl(rng, r),
// which may be empty (deletion), the rune repeated, or any other
// string. Unselected runes pass through untouched.
func ReplaceRunes(rng *rand.Rand, s string, p float64, repl func(rng *rand.Rand, r rune) string) string {
	runes := []rune(s)
	edits := make([]string, len(runes))
	hit := make([]bool, len(runes))
	for i := len(runes) - 1; i >= 0; i-- {
		if prob.Coin(rng, p) {
			edits[i] = repl(rng, runes[i])
			hit[i] = true
		}
	}

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		if hit[i] {
			b.WriteString(edits[i])
		} else {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// InsertRunes inserts generated characters into the gaps of s.
//
// A gap i is the position immediately before rune i. Gaps are visited
// right-to-left and each is independently selected with probability p;
// a selected gap receives gen(rng). tailGap controls whether the gap
// after the final rune is eligible as well (len(s)+1 gaps) or only the
// gaps preceding existing runes (len(s) gaps).
func InsertRunes(rng *rand.Rand, s string, p float64, gen func(rng *rand.Rand) rune, tailGap bool) string {
	runes := []rune(s)
	ins := make([]rune, len(runes)+1)
	hit := make([]bool, len(runes)+1)
	start := len(runes) - 1
	if tailGap {
		start = len(runes)
	}
	for i := start; i >= 0; i-- {
		if prob.Coin(rng, p) {
			ins[i] = gen(rng)
			hit[i] = true
		}
	}

	var b strings.Builder
	b.Grow(len(s) + len(runes) + 1)
	for i := 0; i <= len(runes); i++ {
		if hit[i] {
			b.WriteRune(ins[i])
		}
		if i < len(runes) {
			b.WriteRune(runes[i])
		}
	}
	return b.String()
}

// SwapAdjacent exchanges adjacent elements of xs.
//
// A cursor scans left-to-right; with probability p the elements at the
// cursor and its right neighbor are swapped and the cursor advances by
// two (the pair is consumed), otherwise it advances by one. The input
// slice is never mutated; a copy is returned.
func SwapAdjacent[T any](rng *rand.Rand, xs []T, p float64) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	for i := 0; i+1 < len(out); {
		if prob.Coin(rng, p) {
			out[i], out[i+1] = out[i+1], out[i]
			i += 2
		} else {
			i++
		}
	}
	return out
}
