// Package knapsack - exhaustive subset enumeration with early abandonment.
//
//	for mask in 0 … 2ⁿ−1:
//	    w, v ← 0, 0
//	    for i in 0 … n−1 where bit i of mask is set:
//	        w += ranked[i].Weight
//	        if w > capacity: abandon mask
//	        v += ranked[i].Value
//	    if v > best: best ← (mask, v)
//
// The empty pattern comes first and is always feasible, so the best value
// never drops below 0.
package knapsack

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/katalvlaran/exhaust/combinat"
	"github.com/katalvlaran/exhaust/search"
)

// MaxItems is the largest item count Solve accepts.
const MaxItems = combinat.MaxSubsetBits

// spaceName labels logs and spans for this solver.
const spaceName = "knapsack.bruteforce"

// Solve returns the maximum-value subset of ranked whose total weight does not
// exceed capacity.
//
// ranked is normally the output of Rank, but any order is accepted: the order
// only decides which of several equal-value subsets is reported. Zero-weight
// items are allowed here.
//
// Contracts:
//   - capacity is finite and ≥ 0; weights and values are finite and ≥ 0;
//     len(ranked) ≤ MaxItems. Violations match ErrInvalidInput.
//   - An empty item list or zero capacity yields Value 0 and no indices
//     (unless zero-weight items add value).
//   - A best total value that overflows float64 fails with ErrNonFinite.
//   - On cancellation the error matches search.ErrCanceled.
//
// Complexity: O(n·2ⁿ) time, O(n) memory.
func Solve(ctx context.Context, ranked []Item, capacity float64, opts ...search.Option) (Result, error) {
	if err := validate(ranked, capacity); err != nil {
		return Result{}, err
	}

	var (
		n     = len(ranked)
		size  = uint64(1) << uint(n)
		space = search.Space[uint64]{
			Name:       spaceName,
			Size:       size,
			Candidates: combinat.Subsets(n),
			Evaluate:   evaluator(ranked, capacity),
		}
		tr = search.NewTracker[uint64](search.Maximize, nil)
	)
	if _, err := search.Exhaust(ctx, space, tr, search.NewOptions(opts...)); err != nil {
		return Result{}, err
	}

	mask, value, _ := tr.Best()
	if math.IsInf(value, 0) {
		return Result{}, fmt.Errorf("%w: total value overflows float64", ErrNonFinite)
	}

	return decode(ranked, mask, value), nil
}

// SolveItems runs the whole pipeline NewItems → Rank → Solve.
func SolveItems(ctx context.Context, weights, values []float64, capacity float64, opts ...search.Option) (Result, error) {
	items, err := NewItems(weights, values)
	if err != nil {
		return Result{}, err
	}
	ranked, err := Rank(items)
	if err != nil {
		return Result{}, err
	}

	return Solve(ctx, ranked, capacity, opts...)
}

// CandidateCount reports how many patterns Solve enumerates for n items, 2ⁿ.
func CandidateCount(n int) (uint64, error) {
	if n > MaxItems {
		return 0, fmt.Errorf("%w: %d > %d", ErrTooManyItems, n, MaxItems)
	}

	return combinat.Pow2(n)
}

// validate checks capacity, item count and every item's weight and value.
func validate(items []Item, capacity float64) error {
	if math.IsNaN(capacity) || math.IsInf(capacity, 0) {
		return fmt.Errorf("%w: capacity=%v", ErrNonFinite, capacity)
	}
	if capacity < 0 {
		return fmt.Errorf("%w: capacity=%v", ErrNegativeCapacity, capacity)
	}
	if len(items) > MaxItems {
		return fmt.Errorf("%w: %d > %d", ErrTooManyItems, len(items), MaxItems)
	}
	for i, it := range items {
		if err := checkFinite(i, it); err != nil {
			return err
		}
		if it.Weight < 0 {
			return fmt.Errorf("%w: item %d weight=%v", ErrNegativeWeight, i, it.Weight)
		}
		if it.Value < 0 {
			return fmt.Errorf("%w: item %d value=%v", ErrNegativeValue, i, it.Value)
		}
	}

	return nil
}

// evaluator scores a pattern by total value, abandoning it as infeasible the
// moment the running weight exceeds capacity.
func evaluator(ranked []Item, capacity float64) search.Evaluator[uint64] {
	n := len(ranked)

	return func(mask uint64) (float64, bool) {
		var (
			weight, value float64
			i             int
		)
		for i = 0; i < n; i++ {
			if mask&(uint64(1)<<uint(i)) == 0 {
				continue
			}
			weight += ranked[i].Weight
			if weight > capacity {
				return 0, false
			}
			value += ranked[i].Value
		}

		return value, true
	}
}

// decode maps a winning pattern back to sorted original indices.
func decode(ranked []Item, mask uint64, value float64) Result {
	var (
		positions = combinat.Members(make([]int, 0, len(ranked)), mask, len(ranked))
		indices   = make([]int, 0, len(positions))
		weight    float64
	)
	for _, p := range positions {
		indices = append(indices, ranked[p].Index)
		weight += ranked[p].Weight
	}
	slices.Sort(indices)

	return Result{Value: value, Weight: weight, Indices: indices}
}
