// Package knapsack - item construction and ratio ranking.
package knapsack

import (
	"cmp"
	"fmt"
	"math"
	"slices"
)

// NewItems zips parallel weight and value slices into Items whose Index is the
// slice position. Values are copied; no validation beyond lengths happens here.
func NewItems(weights, values []float64) ([]Item, error) {
	if len(weights) != len(values) {
		return nil, fmt.Errorf("%w: %d weights, %d values", ErrLengthMismatch, len(weights), len(values))
	}
	items := make([]Item, len(weights))
	for i := range weights {
		items[i] = Item{Index: i, Weight: weights[i], Value: values[i]}
	}

	return items, nil
}

// Rank returns a copy of items sorted by value/weight ratio, highest first.
// The sort is stable: items with equal ratios keep their relative input order.
// The input slice is not modified.
//
// Errors: ErrNonPositiveWeight, ErrNegativeValue or ErrNonFinite naming the
// first offending item.
//
// Complexity: O(n log n).
func Rank(items []Item) ([]Item, error) {
	for i, it := range items {
		if err := checkFinite(i, it); err != nil {
			return nil, err
		}
		if it.Weight <= 0 {
			return nil, fmt.Errorf("%w: item %d weight=%v", ErrNonPositiveWeight, i, it.Weight)
		}
		if it.Value < 0 {
			return nil, fmt.Errorf("%w: item %d value=%v", ErrNegativeValue, i, it.Value)
		}
	}

	ranked := slices.Clone(items)
	slices.SortStableFunc(ranked, func(a, b Item) int {
		return cmp.Compare(b.Ratio(), a.Ratio())
	})

	return ranked, nil
}

// checkFinite rejects NaN/±Inf weight or value for the item at position i.
func checkFinite(i int, it Item) error {
	if math.IsNaN(it.Weight) || math.IsInf(it.Weight, 0) {
		return fmt.Errorf("%w: item %d weight=%v", ErrNonFinite, i, it.Weight)
	}
	if math.IsNaN(it.Value) || math.IsInf(it.Value, 0) {
		return fmt.Errorf("%w: item %d value=%v", ErrNonFinite, i, it.Value)
	}

	return nil
}
