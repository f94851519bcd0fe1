package timeseries_test

import (
	"fmt"

	"github.com/kallistra/enrich/randaug"
	"github.com/kallistra/enrich/timeseries"
)

func ExampleEnricher_Flip() {
	e := timeseries.New(timeseries.WithSeed(1))
	fmt.Println(e.Flip([]float64{1, -2, 3}, 1, 0))
	// Output: [-1 2 -3]
}

func ExampleEnricher_Reverse() {
	e := timeseries.New(timeseries.WithSeed(1))
	fmt.Println(e.Reverse([]float64{1, 2, 3, 4}, 1, 0))
	// Output: [4 3 2 1]
}

// A composition pool over series transforms. At magnitude 0 every
// member collapses to the identity, so the pipeline hands the series
// back unchanged no matter which members are drawn.
func Example_pool() {
	e := timeseries.New(timeseries.WithSeed(7))
	bind := func(fn func([]float64, float64, float64) []float64, m float64) randaug.Transform[[]float64] {
		return func(x []float64, p float64) []float64 { return fn(x, p, m) }
	}
	pool := []randaug.Transform[[]float64]{
		bind(e.AddSpike, 0),
		bind(e.AddSlopeTrend, 0),
		bind(e.Flip, 0),
	}

	aug, err := randaug.New(pool,
		randaug.WithSeed(7),
		randaug.WithCount(2),
		randaug.WithMagnitude(0),
	)
	if err != nil {
		panic(err)
	}
	fmt.Println(aug.Apply([]float64{3, 1, 4}))
	// Output: [3 1 4]
}
