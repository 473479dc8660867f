// Package tsp - validation and prefetch of the distance matrix.
//
// The matrix is checked once at the solver entry, in a fixed order
// (nil → empty → square → finite → non-negative → diagonal), then copied into
// a flat row-major buffer so the hot loop never touches the Matrix interface.
// Matrix-package sentinels are translated into tsp sentinels here; the
// original error stays in the chain for diagnostics.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/exhaust/matrix"
)

// prefetch validates dist and returns its order n and a flat copy w with
// w[u*n+v] == dist[u][v].
//
// Complexity: O(n²) time and space.
func prefetch(dist matrix.Matrix) ([]float64, int, error) {
	if dist == nil {
		return nil, 0, ErrNilMatrix
	}
	if dist.Rows() == 0 && dist.Cols() == 0 {
		return nil, 0, ErrEmptyMatrix
	}
	if err := matrix.ValidateDistance(dist, matrix.DefaultZeroTol); err != nil {
		return nil, 0, translate(err)
	}

	var (
		n    = dist.Rows()
		w    = make([]float64, n*n)
		u, v int
		x    float64
		err  error
	)
	for u = 0; u < n; u++ {
		for v = 0; v < n; v++ {
			if x, err = dist.At(u, v); err != nil {
				return nil, 0, fmt.Errorf("%w: %w", ErrNonSquare, err)
			}
			w[u*n+v] = x
		}
	}

	return w, n, nil
}

// translate maps a matrix validator error onto the matching tsp sentinel.
func translate(err error) error {
	var target error
	switch {
	case errors.Is(err, matrix.ErrNilMatrix):
		target = ErrNilMatrix
	case errors.Is(err, matrix.ErrNonSquare), errors.Is(err, matrix.ErrDimensionMismatch),
		errors.Is(err, matrix.ErrOutOfRange), errors.Is(err, matrix.ErrInvalidDimensions):
		target = ErrNonSquare
	case errors.Is(err, matrix.ErrNaNInf):
		target = ErrNonFinite
	case errors.Is(err, matrix.ErrNegative):
		target = ErrNegativeWeight
	case errors.Is(err, matrix.ErrNonZeroDiagonal):
		target = ErrNonZeroDiagonal
	default:
		target = ErrInvalidInput
	}

	return fmt.Errorf("%w: %w", target, err)
}

// denseFromRows converts a raw slice-of-slices into a *matrix.Dense, reporting
// shape problems with tsp sentinels and the offending row.
func denseFromRows(dist [][]float64) (*matrix.Dense, error) {
	n := len(dist)
	if n == 0 {
		return nil, ErrEmptyMatrix
	}
	for i := 0; i < n; i++ {
		if len(dist[i]) != n {
			return nil, fmt.Errorf("%w: row %d length %d, want %d", ErrNonSquare, i, len(dist[i]), n)
		}
	}
	m, err := matrix.NewDenseFrom(dist)
	if err != nil {
		return nil, translate(err)
	}

	return m, nil
}
