package text_test

import (
	"strings"
	"testing"

	"github.com/kallistra/enrich/text"
	"github.com/stretchr/testify/assert"
)

// TestRemoveArticles verifies article deletion collapses whitespace and
// is idempotent once all matching tokens are gone.
func TestRemoveArticles(t *testing.T) {
	e := text.New(text.WithSeed(1))

	assert.Equal(t, "The man has a brown dog", e.RemoveArticles("The man has a brown dog", 0.0))

	got := e.RemoveArticles("The man has a brown dog", 1.0)
	assert.Equal(t, "man has brown dog", got)
	assert.Equal(t, got, e.RemoveArticles(got, 1.0), "re-running on stripped text must be a no-op")
}

// TestSwapWords pins the pair-consumption rule at word granularity.
func TestSwapWords(t *testing.T) {
	e := text.New(text.WithSeed(1))
	assert.Equal(t, "one two three four", e.SwapWords("one two three four", 0.0))
	assert.Equal(t, "two one four three", e.SwapWords("one two three four", 1.0))
	assert.Equal(t, "", e.SwapWords("", 1.0))
}

// TestAddParens verifies every word is wrapped at p=1 and none at p=0.
func TestAddParens(t *testing.T) {
	e := text.New(text.WithSeed(1))
	assert.Equal(t, "big dog", e.AddParens("big dog", 0.0))
	assert.Equal(t, "(((big))) (((dog)))", e.AddParens("big dog", 1.0))
}

// TestAddSynonyms verifies table-driven whole-token replacement with a
// deterministic single-candidate override, including lowercased lookup.
func TestAddSynonyms(t *testing.T) {
	e := text.New(
		text.WithSeed(1),
		text.WithSynonyms(map[string][]string{"dog": {"canine"}}),
	)
	assert.Equal(t, "the Dog barks", e.AddSynonyms("the Dog barks", 0.0))
	assert.Equal(t, "the canine barks", e.AddSynonyms("the Dog barks", 1.0))
	assert.Equal(t, "hotdog stand", e.AddSynonyms("hotdog stand", 1.0), "no partial-token matches")
}

// TestAddHypernyms and TestAddHyponyms verify direction of the
// generalization with single-candidate overrides.
func TestAddHypernyms(t *testing.T) {
	e := text.New(
		text.WithSeed(1),
		text.WithHypernyms(map[string][]string{"dogs": {"quadrupeds"}, "heaven": {"place"}}),
	)
	assert.Equal(t, "all quadrupeds go to place", e.AddHypernyms("all dogs go to heaven", 1.0))
}

func TestAddHyponyms(t *testing.T) {
	e := text.New(
		text.WithSeed(1),
		text.WithHyponyms(map[string][]string{"dogs": {"dachshunds"}}),
	)
	assert.Equal(t, "all dachshunds go to heaven", e.AddHyponyms("all dogs go to heaven", 1.0))
}

// TestAddMisspelling verifies a chosen candidate really comes from the
// table.
func TestAddMisspelling(t *testing.T) {
	e := text.New(text.WithSeed(1))
	assert.Equal(t, "weird until which", e.AddMisspelling("weird until which", 0.0))

	got := strings.Fields(e.AddMisspelling("weird until which", 1.0))
	assert.Equal(t, []string{"wierd", "untill", "wich"}, got)
}
