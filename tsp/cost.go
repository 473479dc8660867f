// Package tsp - cost utilities shared by the solver and its callers.
//
// The solver sums edges over a prefetched flat buffer; TourCost is the public,
// fully checked counterpart for arbitrary matrix.Matrix values.
//
// Rounding: reported costs are stabilized to 1e-9 so that equal-cost routes
// print identically across platforms. Comparisons inside the solver always use
// the raw sum.
//
// Complexity:
//   - O(n) time for a tour of length n+1, O(1) extra space.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/exhaust/matrix"
)

// roundScale controls final cost stabilization precision (1e-9).
const roundScale = 1e9

// TourCost validates dist and tour, then returns the rounded length of the
// closed cycle tour[0]→tour[1]→…→tour[n].
//
// Errors: any ErrInvalidInput descendant from the matrix checks, or
// ErrInvalidTour when tour is not a closed Hamiltonian cycle from Origin.
//
// Complexity: O(n²) for validation + O(n) for the sum.
func TourCost(dist matrix.Matrix, tour []int) (float64, error) {
	w, n, err := prefetch(dist)
	if err != nil {
		return 0, err
	}
	if err = ValidateTour(tour, n); err != nil {
		return 0, err
	}

	return finiteCost(routeCost(w, n, tour))
}

// routeCost sums w[u*n+v] along consecutive pairs of route.
// Inputs are trusted: route indices lie in [0..n-1].
func routeCost(w []float64, n int, route []int) float64 {
	var (
		sum  float64
		k    int
		last = len(route) - 1
	)
	for k = 0; k < last; k++ {
		sum += w[route[k]*n+route[k+1]]
	}

	return sum
}

// edgeCost reads dist[u][v] through the Matrix interface and rejects values
// that could not have passed validation.
func edgeCost(dist matrix.Matrix, u, v int) (float64, error) {
	w, err := dist.At(u, v)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrNonSquare, err)
	}
	if math.IsNaN(w) || math.IsInf(w, 0) {
		return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNonFinite, u, v, w)
	}
	if w < 0 {
		return 0, fmt.Errorf("%w: dist[%d][%d]=%v", ErrNegativeWeight, u, v, w)
	}

	return w, nil
}

// PathCost sums dist along an open path without the full-matrix validation
// TourCost performs. Each visited edge is still checked.
//
// Complexity: O(len(path)).
func PathCost(dist matrix.Matrix, path []int) (float64, error) {
	if dist == nil {
		return 0, ErrNilMatrix
	}
	var (
		sum float64
		w   float64
		k   int
		err error
	)
	for k = 0; k+1 < len(path); k++ {
		if w, err = edgeCost(dist, path[k], path[k+1]); err != nil {
			return 0, err
		}
		sum += w
	}

	return finiteCost(sum)
}

// finiteCost rejects a sum that overflowed float64 and rounds the rest.
// Every edge is finite, so an infinite sum can only come from overflow.
func finiteCost(sum float64) (float64, error) {
	if math.IsInf(sum, 0) || math.IsNaN(sum) {
		return 0, fmt.Errorf("%w: cost sum overflows float64", ErrNonFinite)
	}

	return round1e9(sum), nil
}

// round1e9 rounds x to 1e-9 absolute precision. Values too large for x*1e9
// to stay finite already have no fractional digits at that scale and are
// returned unchanged.
func round1e9(x float64) float64 {
	if math.Abs(x) > math.MaxFloat64/roundScale {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
