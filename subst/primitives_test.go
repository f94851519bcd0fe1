package subst_test

import (
	"testing"

	"golang.org/x/exp/rand"

	"github.com/kallistra/enrich/prob"
	"github.com/kallistra/enrich/subst"
	"github.com/stretchr/testify/assert"
)

// TestReplaceRunes_Degenerate verifies p=0 identity and p=1 full edit.
func TestReplaceRunes_Degenerate(t *testing.T) {
	rng := prob.NewRand(1)

	assert.Equal(t, "bob", subst.ReplaceRunes(rng, "bob", 0.0, func(_ *rand.Rand, r rune) string { return "x" }))
	assert.Equal(t, "", subst.ReplaceRunes(rng, "bob", 1.0, func(_ *rand.Rand, _ rune) string { return "" }))
	assert.Equal(t, "bbpp", subst.ReplaceRunes(rng, "bp", 1.0, func(_ *rand.Rand, r rune) string { return string(r) + string(r) }))
}

// TestReplaceRunes_EmptyInput verifies the empty string passes through.
func TestReplaceRunes_EmptyInput(t *testing.T) {
	rng := prob.NewRand(1)
	assert.Equal(t, "", subst.ReplaceRunes(rng, "", 1.0, func(_ *rand.Rand, _ rune) string { return "x" }))
}

// TestInsertRunes_TailGap verifies the add-whitespace shape: every gap,
// including the trailing one, receives an insertion at p=1.
func TestInsertRunes_TailGap(t *testing.T) {
	rng := prob.NewRand(1)
	space := func(_ *rand.Rand) rune { return ' ' }

	assert.Equal(t, " d o g ", subst.InsertRunes(rng, "dog", 1.0, space, true))
	assert.Equal(t, " ", subst.InsertRunes(rng, "", 1.0, space, true))
	assert.Equal(t, "dog", subst.InsertRunes(rng, "dog", 0.0, space, true))
}

// TestInsertRunes_NoTailGap verifies the add-characters shape: one gap
// per existing rune, none after the last.
func TestInsertRunes_NoTailGap(t *testing.T) {
	rng := prob.NewRand(1)
	x := func(_ *rand.Rand) rune { return 'x' }

	assert.Equal(t, "xbxoxb", subst.InsertRunes(rng, "bob", 1.0, x, false))
	assert.Equal(t, "", subst.InsertRunes(rng, "", 1.0, x, false))
}

// TestSwapAdjacent_SkipByTwo pins the pair-consumption rule: at p=1 the
// result is non-overlapping neighbor swaps, not a reversal.
func TestSwapAdjacent_SkipByTwo(t *testing.T) {
	rng := prob.NewRand(1)
	got := subst.SwapAdjacent(rng, []rune("The man"), 1.0)
	assert.Equal(t, "hT eamn", string(got))
}

// TestSwapAdjacent_ZeroProbability verifies p=0 is the identity and the
// input slice is never mutated.
func TestSwapAdjacent_ZeroProbability(t *testing.T) {
	rng := prob.NewRand(1)
	in := []int{1, 2, 3, 4}
	got := subst.SwapAdjacent(rng, in, 0.0)
	assert.Equal(t, []int{1, 2, 3, 4}, got)

	full := subst.SwapAdjacent(rng, in, 1.0)
	assert.Equal(t, []int{2, 1, 4, 3}, full)
	assert.Equal(t, []int{1, 2, 3, 4}, in, "input must not be mutated")
}

// TestSwapAdjacent_ShortInputs verifies lengths 0 and 1 are no-ops.
func TestSwapAdjacent_ShortInputs(t *testing.T) {
	rng := prob.NewRand(1)
	assert.Empty(t, subst.SwapAdjacent(rng, []rune{}, 1.0))
	assert.Equal(t, []rune("x"), subst.SwapAdjacent(rng, []rune("x"), 1.0))
}
