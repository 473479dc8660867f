// Package assignment - exhaustive permutation search over a padded matrix.
package assignment

import (
	"context"
	"errors"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/exhaust/combinat"
	"github.com/katalvlaran/exhaust/matrix"
	"github.com/katalvlaran/exhaust/search"
)

// roundScale is the reported cost precision (1e-9).
const roundScale = 1e9

// spaceName labels logs and spans for this solver.
const spaceName = "assignment.bruteforce"

// Solve returns a minimum-cost assignment of the rows of cost to its columns.
//
// Contracts:
//   - cost is non-nil, at least 1×1, finite and max(r, c) ≤ MaxOrder;
//     violations match ErrInvalidInput.
//   - len(Result.Assignment) == cost.Rows(). When r > c exactly r−c rows are
//     Unassigned; when r ≤ c every row is matched.
//   - An optimal total that overflows float64 fails with ErrNonFinite.
//   - On cancellation the error matches search.ErrCanceled.
//
// Complexity: O(k·k!) time with k = max(r, c).
func Solve(ctx context.Context, cost matrix.Matrix, opts ...search.Option) (Result, error) {
	w, r, c, k, err := pad(cost)
	if err != nil {
		return Result{}, err
	}

	size, _ := combinat.Factorial(k)
	var (
		space = search.Space[[]int]{
			Name:       spaceName,
			Size:       size,
			Candidates: combinat.Permutations(k),
			Evaluate: func(p []int) (float64, bool) {
				var (
					sum float64
					i   int
				)
				for i = 0; i < k; i++ {
					sum += w[i*k+p[i]]
				}
				return sum, true
			},
		}
		tr = search.NewTracker(search.Minimize, slices.Clone[[]int])
	)
	if _, err = search.Exhaust(ctx, space, tr, search.NewOptions(opts...)); err != nil {
		return Result{}, err
	}

	best, total, _ := tr.Best()
	if math.IsInf(total, 0) || math.IsNaN(total) {
		return Result{}, fmt.Errorf("%w: cost sum overflows float64", ErrNonFinite)
	}
	out := make([]int, r)
	for i := 0; i < r; i++ {
		out[i] = best[i]
		if best[i] >= c {
			out[i] = Unassigned
		}
	}

	return Result{Assignment: out, Cost: round1e9(total)}, nil
}

// SolveSlices is Solve over a raw rectangular slice-of-slices.
func SolveSlices(ctx context.Context, cost [][]float64, opts ...search.Option) (Result, error) {
	if len(cost) == 0 || len(cost[0]) == 0 {
		return Result{}, ErrEmptyMatrix
	}
	for i := range cost {
		if len(cost[i]) != len(cost[0]) {
			return Result{}, fmt.Errorf("%w: row %d length %d, want %d", ErrRagged, i, len(cost[i]), len(cost[0]))
		}
	}
	m, err := matrix.NewDenseFrom(cost)
	if err != nil {
		return Result{}, translate(err)
	}

	return Solve(ctx, m, opts...)
}

// pad validates cost and copies it into a flat k×k buffer whose padding cells
// are zero. It returns the buffer with the real and padded dimensions.
func pad(cost matrix.Matrix) (w []float64, r, c, k int, err error) {
	if cost == nil {
		return nil, 0, 0, 0, ErrNilMatrix
	}
	r, c = cost.Rows(), cost.Cols()
	if r <= 0 || c <= 0 {
		return nil, 0, 0, 0, fmt.Errorf("%w: %d×%d", ErrEmptyMatrix, r, c)
	}
	k = max(r, c)
	if k > MaxOrder {
		return nil, 0, 0, 0, fmt.Errorf("%w: order %d > %d", ErrTooLarge, k, MaxOrder)
	}
	if err = matrix.ValidateFinite(cost); err != nil {
		return nil, 0, 0, 0, translate(err)
	}

	w = make([]float64, k*k)
	var (
		i, j int
		x    float64
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if x, err = cost.At(i, j); err != nil {
				return nil, 0, 0, 0, translate(err)
			}
			w[i*k+j] = x
		}
	}

	return w, r, c, k, nil
}

// round1e9 rounds x to 1e-9 absolute precision, leaving values whose scaled
// form would overflow unchanged.
func round1e9(x float64) float64 {
	if math.Abs(x) > math.MaxFloat64/roundScale {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}

// translate maps a matrix error onto the matching assignment sentinel.
func translate(err error) error {
	switch {
	case errors.Is(err, matrix.ErrNaNInf):
		return fmt.Errorf("%w: %w", ErrNonFinite, err)
	case errors.Is(err, matrix.ErrDimensionMismatch), errors.Is(err, matrix.ErrOutOfRange):
		return fmt.Errorf("%w: %w", ErrRagged, err)
	default:
		return fmt.Errorf("%w: %w", ErrInvalidInput, err)
	}
}
