// SPDX-License-Identifier: MIT
// Package: matrix
//
// Purpose:
//  - Provide a single, canonical source of truth for the checks the solvers
//    run on their inputs (nil, square, finite, non-negative, zero diagonal).
//  - Return sentinel errors wrapped with a validator tag and, where useful, the
//    offending coordinates, so call sites can match them with errors.Is.
//
// Determinism & Performance:
//  - All checks are pure, deterministic and allocate nothing beyond the error value.
//  - Element scans run in fixed row-major order, so the first violation reported
//    is always the same for the same input.

package matrix

import (
	"fmt"
	"math"
)

// DefaultZeroTol is the diagonal tolerance used by ValidateZeroDiagonal callers
// that have no policy of their own.
const DefaultZeroTol = 1e-12

// validatorErrorf wraps an underlying error with the given validator tag.
func validatorErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// cellErrorf wraps err with the validator tag and the offending cell.
func cellErrorf(tag string, i, j int, v float64, err error) error {
	return fmt.Errorf("%s: m[%d][%d]=%v: %w", tag, i, j, v, err)
}

// ValidateNotNil ensures the matrix reference is non-nil.
// Complexity: O(1).
func ValidateNotNil(m Matrix) error {
	if m == nil {
		return validatorErrorf("ValidateNotNil", ErrNilMatrix)
	}

	return nil
}

// ValidateSquare checks that m is square (Rows == Cols).
// Assumes m is not nil.
// Complexity: O(1).
func ValidateSquare(m Matrix) error {
	if m.Rows() != m.Cols() {
		return validatorErrorf("ValidateSquare", ErrNonSquare)
	}

	return nil
}

// ValidateFinite rejects NaN and ±Inf anywhere in m.
// Complexity: O(r*c).
func ValidateFinite(m Matrix) error {
	var (
		r, c = m.Rows(), m.Cols()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateFinite", err)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return cellErrorf("ValidateFinite", i, j, v, ErrNaNInf)
			}
		}
	}

	return nil
}

// ValidateNonNegative rejects negative entries anywhere in m.
// NaN is not considered negative here; pair with ValidateFinite.
// Complexity: O(r*c).
func ValidateNonNegative(m Matrix) error {
	var (
		r, c = m.Rows(), m.Cols()
		i, j int
		v    float64
		err  error
	)
	for i = 0; i < r; i++ {
		for j = 0; j < c; j++ {
			if v, err = m.At(i, j); err != nil {
				return validatorErrorf("ValidateNonNegative", err)
			}
			if v < 0 {
				return cellErrorf("ValidateNonNegative", i, j, v, ErrNegative)
			}
		}
	}

	return nil
}

// ValidateZeroDiagonal requires |m[i][i]| <= tol for every i.
// Assumes m is square.
// Complexity: O(n).
func ValidateZeroDiagonal(m Matrix, tol float64) error {
	var (
		n   = m.Rows()
		i   int
		v   float64
		err error
	)
	for i = 0; i < n; i++ {
		if v, err = m.At(i, i); err != nil {
			return validatorErrorf("ValidateZeroDiagonal", err)
		}
		if math.Abs(v) > tol {
			return cellErrorf("ValidateZeroDiagonal", i, i, v, ErrNonZeroDiagonal)
		}
	}

	return nil
}

// ValidateDistance runs the full distance-matrix policy in a fixed sequence:
// NotNil → Square → Finite → NonNegative → ZeroDiagonal(tol).
// Complexity: O(n²).
func ValidateDistance(m Matrix, tol float64) error {
	if err := ValidateNotNil(m); err != nil {
		return err
	}
	if err := ValidateSquare(m); err != nil {
		return err
	}
	if err := ValidateFinite(m); err != nil {
		return err
	}
	if err := ValidateNonNegative(m); err != nil {
		return err
	}

	return ValidateZeroDiagonal(m, tol)
}
