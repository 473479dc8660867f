// Package tsp - exact brute-force solver.
//
// BruteForce fixes vertex 0 as the origin and walks every permutation of the
// remaining vertices in lexicographic order:
//
//	for P in perms({1..n−1}):   R = (0, P…, 0);   c = Σ dist[R[k]][R[k+1]]
//	                            if c < best: best ← (R, c)
//
// The strict comparison makes the first optimal route in enumeration order the
// answer. There is no pruning and no symmetry reduction: a route and its
// reverse are both evaluated, so asymmetric matrices are handled as-is.
//
// The distance matrix is prefetched once into a flat buffer (w[u*n+v]) so the
// hot loop never goes through the Matrix interface.
//
// Complexity:
//   - Time:   O(n·(n−1)!).
//   - Memory: O(n²) prefetch + O(n) route buffer.
package tsp

import (
	"context"
	"iter"
	"slices"

	"github.com/katalvlaran/exhaust/combinat"
	"github.com/katalvlaran/exhaust/matrix"
	"github.com/katalvlaran/exhaust/search"
)

// spaceName labels logs and spans for this solver.
const spaceName = "tsp.bruteforce"

// BruteForce returns a minimum-cost closed tour from Origin through every
// vertex of dist.
//
// Contracts:
//   - dist is square, finite, non-negative with a zero diagonal, n ≥ 1;
//     otherwise the error matches ErrInvalidInput.
//   - n == 1 yields Tour (0,0) with Cost 0.
//   - If even the optimal tour's length overflows float64 the error matches
//     ErrNonFinite.
//   - On cancellation or TimeLimit expiry the error matches
//     search.ErrCanceled and no partial tour is returned.
//
// Determinism: identical inputs always yield the identical tour.
func BruteForce(ctx context.Context, dist matrix.Matrix, opts ...search.Option) (TSResult, error) {
	w, n, err := prefetch(dist)
	if err != nil {
		return TSResult{}, err
	}

	size, err := CandidateCount(n)
	if err != nil {
		size = 0 // unknown; only used for telemetry
	}

	var (
		route = make([]int, n+1)
		space = search.Space[[]int]{
			Name:       spaceName,
			Size:       size,
			Candidates: routes(n, route),
			Evaluate: func(r []int) (float64, bool) {
				return routeCost(w, n, r), true
			},
		}
		tr = search.NewTracker(search.Minimize, slices.Clone[[]int])
	)
	if _, err = search.Exhaust(ctx, space, tr, search.NewOptions(opts...)); err != nil {
		return TSResult{}, err
	}

	best, raw, _ := tr.Best()
	cost, err := finiteCost(raw)
	if err != nil {
		return TSResult{}, err
	}

	return TSResult{Tour: best, Cost: cost}, nil
}

// Solve is BruteForce over a raw square slice-of-slices.
// Ragged rows fail with ErrNonSquare naming the first offending row.
func Solve(ctx context.Context, dist [][]float64, opts ...search.Option) (TSResult, error) {
	m, err := denseFromRows(dist)
	if err != nil {
		return TSResult{}, err
	}

	return BruteForce(ctx, m, opts...)
}

// CandidateCount reports how many routes BruteForce evaluates for n vertices,
// (n−1)!. It fails with combinat.ErrOverflow once that exceeds uint64.
func CandidateCount(n int) (uint64, error) {
	if n <= 1 {
		return 1, nil
	}

	return combinat.Factorial(n - 1)
}

// routes yields closed routes (0, P…, 0) for every lexicographic permutation
// P of {1..n−1}. The yielded slice is buf itself and is rewritten on each step.
func routes(n int, buf []int) iter.Seq[[]int] {
	return func(yield func([]int) bool) {
		buf[0], buf[n] = Origin, Origin
		var i int
		for p := range combinat.Permutations(n - 1) {
			for i = range p {
				buf[i+1] = p[i] + 1
			}
			if !yield(buf) {
				return
			}
		}
	}
}
