package randaug_test

import (
	"testing"

	"github.com/kallistra/enrich/randaug"
)

func benchPool(size int) []randaug.Transform[int] {
	pool := make([]randaug.Transform[int], size)
	for i := range pool {
		pool[i] = func(v int, _ float64) int { return v + 1 }
	}
	return pool
}

func BenchmarkSample(b *testing.B) {
	aug, err := randaug.New(benchPool(16),
		randaug.WithSeed(1), randaug.WithCount(4))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		aug.Sample()
	}
}

func BenchmarkApply(b *testing.B) {
	aug, err := randaug.New(benchPool(16),
		randaug.WithSeed(1), randaug.WithCount(4))
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		aug.Apply(i)
	}
}
