// Package tsp_test - benchmarks for the brute-force solver.
//
// Inputs are built outside the timer; sizes stay small enough for CI since
// the work grows as (n−1)!.
package tsp_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/katalvlaran/exhaust/tsp"
)

func BenchmarkBruteForce(b *testing.B) {
	for _, n := range []int{6, 8, 9} {
		b.Run(fmt.Sprintf("n=%d", n), func(b *testing.B) {
			dist := mustDense(b, euclid(n))
			ctx := context.Background()
			b.ReportAllocs()
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				if _, err := tsp.BruteForce(ctx, dist); err != nil {
					b.Fatal(err)
				}
			}
		})
	}
}

func BenchmarkTourCost_n64(b *testing.B) {
	const n = 64
	dist := mustDense(b, euclid(n))
	tour := make([]int, n+1)
	for i := 0; i < n; i++ {
		tour[i] = i
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := tsp.TourCost(dist, tour); err != nil {
			b.Fatal(err)
		}
	}
}
