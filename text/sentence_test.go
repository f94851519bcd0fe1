package text_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/kallistra/enrich/text"
	"github.com/stretchr/testify/assert"
)

// reverser is a toy Translator that "round-trips" by reversing words.
type reverser struct{}

func (reverser) Backtranslate(s string) (string, error) {
	words := strings.Fields(s)
	for l, r := 0, len(words)-1; l < r; l, r = l+1, r-1 {
		words[l], words[r] = words[r], words[l]
	}
	return strings.Join(words, " "), nil
}

// failing is a Translator whose backend is unavailable.
type failing struct{}

func (failing) Backtranslate(string) (string, error) {
	return "", errors.New("model not loaded")
}

// TestAddLove verifies the per-sentence trial.
func TestAddLove(t *testing.T) {
	e := text.New(text.WithSeed(1))
	assert.Equal(t, "good morning", e.AddLove("good morning", 0.0))
	assert.Equal(t, "good morning love", e.AddLove("good morning", 1.0))
}

// TestAddApplause verifies whitespace runs collapse into single claps.
func TestAddApplause(t *testing.T) {
	e := text.New(text.WithSeed(1))
	assert.Equal(t, "so  proud", e.AddApplause("so  proud", 0.0))
	assert.Equal(t, "so\U0001f44fproud\U0001f44fof", e.AddApplause("so  proud\t of", 1.0))
}

// TestAddBytes verifies the tail is appended only at p=1, preserves the
// prefix, and produces valid UTF-8.
func TestAddBytes(t *testing.T) {
	e := text.New(text.WithSeed(1), text.WithByteTail(32))

	assert.Equal(t, "spam", e.AddBytes("spam", 0.0))

	got := e.AddBytes("spam", 1.0)
	assert.True(t, strings.HasPrefix(got, "spam"))
	assert.Greater(t, len(got), len("spam"))
	assert.True(t, strings.ToValidUTF8(got, "") == got, "appended tail must be valid UTF-8")
}

// TestAddBacktranslation covers the translator handle lifecycle: absent,
// present, failing, and the empty-sentence guard.
func TestAddBacktranslation(t *testing.T) {
	plain := text.New(text.WithSeed(1))
	assert.Equal(t, "a b c", plain.AddBacktranslation("a b c", 1.0), "no translator means no-op")

	e := text.New(text.WithSeed(1), text.WithTranslator(reverser{}))
	assert.Equal(t, "a b c", e.AddBacktranslation("a b c", 0.0))
	assert.Equal(t, "c b a", e.AddBacktranslation("a b c", 1.0))
	assert.Equal(t, "", e.AddBacktranslation("", 1.0), "empty sentences skip the model")

	broken := text.New(text.WithSeed(1), text.WithTranslator(failing{}))
	assert.Equal(t, "a b c", broken.AddBacktranslation("a b c", 1.0), "backend errors keep the input")
}

// TestOptionPanics verifies option constructors fail fast on nil.
func TestOptionPanics(t *testing.T) {
	assert.Panics(t, func() { text.WithTranslator(nil) })
	assert.Panics(t, func() { text.WithRand(nil) })
	assert.Panics(t, func() { text.WithByteTail(0) })
	assert.Panics(t, func() { text.WithSynonyms(nil) })
}
