package tsp

import (
	"errors"
	"fmt"
)

// Origin is the fixed start and end vertex of every route.
const Origin = 0

// ErrInvalidInput is the root of every input-validation failure in this package.
var ErrInvalidInput = errors.New("tsp: invalid input")

// Specific validation sentinels; each one also matches ErrInvalidInput.
var (
	// ErrNilMatrix is returned when dist is nil.
	ErrNilMatrix = fmt.Errorf("%w: nil distance matrix", ErrInvalidInput)

	// ErrEmptyMatrix is returned for a 0×0 matrix (no origin to start from).
	ErrEmptyMatrix = fmt.Errorf("%w: empty distance matrix", ErrInvalidInput)

	// ErrNonSquare is returned when the matrix is not n×n (including ragged rows).
	ErrNonSquare = fmt.Errorf("%w: distance matrix is not square", ErrInvalidInput)

	// ErrNonFinite is returned for NaN or ±Inf distances.
	ErrNonFinite = fmt.Errorf("%w: NaN or Inf distance", ErrInvalidInput)

	// ErrNegativeWeight is returned for a negative distance.
	ErrNegativeWeight = fmt.Errorf("%w: negative distance", ErrInvalidInput)

	// ErrNonZeroDiagonal is returned when some self-distance is not zero.
	ErrNonZeroDiagonal = fmt.Errorf("%w: self-distance must be 0", ErrInvalidInput)

	// ErrInvalidTour is returned by ValidateTour and TourCost for a sequence
	// that is not a closed Hamiltonian cycle from Origin.
	ErrInvalidTour = fmt.Errorf("%w: not a closed tour from the origin", ErrInvalidInput)
)

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Tour is the sequence of vertex indices, starting and ending at Origin.
	// For n vertices, len(Tour) == n+1 and Tour[0]==Tour[n]==Origin.
	Tour []int

	// Cost is the total distance of the cycle, rounded to 1e-9.
	Cost float64
}
