package subst_test

import (
	"strings"
	"testing"

	"github.com/kallistra/enrich/prob"
	"github.com/kallistra/enrich/subst"
)

// benchText is a mid-sized haystack with plenty of pattern hits.
var benchText = strings.Repeat("you what mate? shadow banned and gone ", 64)

func BenchmarkChars(b *testing.B) {
	rng := prob.NewRand(1)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		subst.Chars(rng, benchText, 0.5, miniLeet)
	}
}

func BenchmarkWords(b *testing.B) {
	rng := prob.NewRand(1)
	m := subst.Mapping{{Pattern: "and", Replacement: ""}, {Pattern: "what", Replacement: "wat"}}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		subst.Words(rng, benchText, 0.5, m)
	}
}

func BenchmarkSwapAdjacent(b *testing.B) {
	rng := prob.NewRand(1)
	runes := []rune(benchText)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		subst.SwapAdjacent(rng, runes, 0.05)
	}
}
