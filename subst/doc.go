// Package subst is the probabilistic substitution engine behind every
// character- and word-level text transform in enrich.
//
// 🚀 What is subst?
//
//	Given a sequence and an ordered pattern→replacement table, subst
//	scans for occurrences and rewrites each one independently with a
//	caller-supplied probability:
//	  • Chars        — substring granularity, case-insensitive matching
//	  • Words        — whole-token granularity over whitespace splits
//	  • ReplaceRunes — per-character replace/delete, right-to-left
//	  • InsertRunes  — per-gap insertion, right-to-left
//	  • SwapAdjacent — non-overlapping adjacent-pair swaps
//
// ✨ Guarantees:
//
//   - Every occurrence is visited exactly once: the scan cursor skips a
//     replacement after a hit and the matched span after a miss, so a
//     length-changing rewrite can neither hide nor duplicate later
//     occurrences of the same pattern.
//   - Mapping order is priority order: once an earlier pattern rewrites
//     a span, later patterns never re-match text it consumed.
//   - Length-changing per-position edits draw right-to-left, so an edit
//     at a higher index never shifts a position that has not been
//     visited yet, keeping the per-position probability unbiased.
//   - A successful adjacent swap consumes both participants; no element
//     is ever swapped twice in one pass.
//
// ⚙️ Usage:
//
//	m := subst.Mapping{{Pattern: "and", Replacement: "&"}}
//	out := subst.Chars(rng, "salt and pepper", 1.0, m)
//	// out == "salt & pepper"
//
// All functions are pure with respect to their inputs; entropy comes
// only from the provided generator. A nil rng is acceptable only for
// the degenerate probabilities 0 and 1.
package subst
