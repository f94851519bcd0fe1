// Package subst - ordered pattern table types.
package subst

// Pair binds one pattern to its replacement.
//
// For Chars, Pattern is a literal substring matched case-insensitively
// (ASCII folding) against the haystack; for Words it is an exact,
// lowercase token. The Replacement is always inserted verbatim,
// preserving its own case. An empty Replacement deletes the match.
type Pair struct {
	Pattern     string
	Replacement string
}

// Mapping is an ordered pattern→replacement table.
//
// Order is semantically significant: patterns are applied in table
// order, so when two patterns overlap (e.g. "anned" vs "and") the
// earlier entry claims the overlapping span. Use a slice literal, never
// a Go map, to define one; map iteration order would break priorities.
type Mapping []Pair

// Inverse returns a new Mapping with every pattern and replacement
// swapped, preserving entry order. Useful for round-trip tables such as
// contraction ↔ expansion.
func (m Mapping) Inverse() Mapping {
	inv := make(Mapping, len(m))
	for i, pr := range m {
		inv[i] = Pair{Pattern: pr.Replacement, Replacement: pr.Pattern}
	}
	return inv
}
