package assignment

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exhaust/combinat"
)

// Unassigned marks a row matched to a padding column.
const Unassigned = -1

// MaxOrder is the largest padded order k whose k! candidates fit in uint64.
const MaxOrder = combinat.MaxFactorial

// ErrInvalidInput is the root of every input-validation failure in this package.
var ErrInvalidInput = errors.New("assignment: invalid input")

// Specific validation sentinels; each one also matches ErrInvalidInput.
var (
	// ErrNilMatrix is returned when the cost matrix is nil.
	ErrNilMatrix = fmt.Errorf("%w: nil cost matrix", ErrInvalidInput)

	// ErrEmptyMatrix is returned when the matrix has no rows or no columns.
	ErrEmptyMatrix = fmt.Errorf("%w: empty cost matrix", ErrInvalidInput)

	// ErrRagged is returned by SolveSlices when rows differ in length.
	ErrRagged = fmt.Errorf("%w: ragged cost rows", ErrInvalidInput)

	// ErrNonFinite is returned for NaN or ±Inf costs.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf cost", ErrInvalidInput)

	// ErrTooLarge is returned when max(rows, cols) exceeds MaxOrder.
	ErrTooLarge = fmt.Errorf("%w: instance too large", ErrInvalidInput)
)

// Result is an optimal assignment.
type Result struct {
	// Assignment[row] is the column matched to row, or Unassigned.
	Assignment []int

	// Cost is the sum of the matched real cells, rounded to 1e-9.
	Cost float64
}

// Pairs returns the matched (row, column) pairs in row order, skipping
// unassigned rows.
func (r Result) Pairs() [][2]int {
	out := make([][2]int, 0, len(r.Assignment))
	for row, col := range r.Assignment {
		if col != Unassigned {
			out = append(out, [2]int{row, col})
		}
	}

	return out
}
