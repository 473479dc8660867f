// Package matrix provides the dense distance/cost matrix used by the exhaustive
// solvers in this module.
//
// The package offers:
//
//   - Matrix: a small interface (Rows, Cols, At, Set, Clone) so callers can plug
//     in their own storage.
//   - Dense: a row-major implementation with bounds-checked accessors and a
//     finite-only numeric policy.
//   - Validators: square shape, finite entries, non-negative entries and a zero
//     diagonal, each returning a sentinel from errors.go.
//
// Solvers prefetch a Matrix into a private flat buffer once per call, so any
// implementation works; *Dense simply avoids interface overhead during that copy.
package matrix
