package knapsack

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the root of every input-validation failure in this package.
var ErrInvalidInput = errors.New("knapsack: invalid input")

// Specific validation sentinels; each one also matches ErrInvalidInput.
var (
	// ErrLengthMismatch is returned when weights and values differ in length.
	ErrLengthMismatch = fmt.Errorf("%w: weights and values differ in length", ErrInvalidInput)

	// ErrNonPositiveWeight is returned by Rank for an item with weight ≤ 0,
	// whose ratio is undefined.
	ErrNonPositiveWeight = fmt.Errorf("%w: weight must be positive", ErrInvalidInput)

	// ErrNegativeWeight is returned by Solve for an item with weight < 0.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrInvalidInput)

	// ErrNegativeValue is returned for an item with value < 0.
	ErrNegativeValue = fmt.Errorf("%w: negative value", ErrInvalidInput)

	// ErrNegativeCapacity is returned for capacity < 0.
	ErrNegativeCapacity = fmt.Errorf("%w: negative capacity", ErrInvalidInput)

	// ErrNonFinite is returned for NaN or ±Inf weights, values or capacity.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf", ErrInvalidInput)

	// ErrTooManyItems is returned when there are more items than a uint64
	// pattern can address.
	ErrTooManyItems = fmt.Errorf("%w: too many items", ErrInvalidInput)
)

// Item is one candidate for the knapsack.
type Item struct {
	// Index is the item's position in the caller's original input.
	Index int

	// Weight is the capacity the item consumes.
	Weight float64

	// Value is what the item contributes when selected.
	Value float64
}

// Ratio returns Value/Weight. It is +Inf for zero-weight items with positive
// value and NaN for 0/0; Rank never produces either.
func (it Item) Ratio() float64 { return it.Value / it.Weight }

// Result is the best feasible selection.
type Result struct {
	// Value is the total value of the selected items.
	Value float64

	// Weight is the total weight of the selected items (≤ capacity).
	Weight float64

	// Indices lists the selected original indices in ascending order.
	// It is empty, never nil, when nothing is selected.
	Indices []int
}
