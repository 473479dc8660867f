// Package tsp - tour utilities (validation, orientation, formatting).
//
// A tour over n vertices is a closed sequence of length n+1 that starts and
// ends at Origin and visits every other vertex exactly once. The helpers here
// never mutate their input unless the name says InPlace.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidateTour enforces the closed-tour invariants:
//
//	len(tour) == n+1, tour[0]==tour[n]==Origin,
//	each vertex v∈[0..n-1] appears exactly once in positions [0..n-1].
//
// Returns nil if valid, otherwise an error matching ErrInvalidTour.
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n int) error {
	if n <= 0 {
		return fmt.Errorf("%w: n=%d", ErrInvalidTour, n)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("%w: length %d, want %d", ErrInvalidTour, len(tour), n+1)
	}
	if tour[0] != Origin || tour[n] != Origin {
		return fmt.Errorf("%w: endpoints %d..%d", ErrInvalidTour, tour[0], tour[n])
	}

	var (
		seen = make([]bool, n)
		i, v int
	)
	for i = 0; i < n; i++ {
		v = tour[i]
		if v < 0 || v >= n {
			return fmt.Errorf("%w: vertex %d out of range at %d", ErrInvalidTour, v, i)
		}
		if seen[v] {
			return fmt.Errorf("%w: vertex %d repeated at %d", ErrInvalidTour, v, i)
		}
		seen[v] = true
	}

	return nil
}

// ReverseTour returns a fresh copy of tour traversed in the opposite direction.
// The endpoints stay at Origin: (0,1,3,2,0) → (0,2,3,1,0).
//
// Complexity: O(n) time, O(n) space.
func ReverseTour(tour []int) []int {
	out := CopyTour(tour)
	ReverseTourInPlace(out)

	return out
}

// ReverseTourInPlace reverses the interior of a closed tour in place.
func ReverseTourInPlace(tour []int) {
	var i, j int
	for i, j = 1, len(tour)-2; i < j; i, j = i+1, j-1 {
		tour[i], tour[j] = tour[j], tour[i]
	}
}

// CopyTour returns an independent copy of the input tour slice.
func CopyTour(tour []int) []int {
	if tour == nil {
		return nil
	}
	out := make([]int, len(tour))
	copy(out, tour)

	return out
}

// DebugString returns a compact printable representation for tests/debug,
// e.g. "[0 3 1 2 | 0]" where the vertical bar marks the closure.
func DebugString(tour []int) string {
	if len(tour) == 0 {
		return "[]"
	}
	var (
		b strings.Builder
		n = len(tour) - 1
		i int
	)
	b.WriteByte('[')
	for i = 0; i < n; i++ {
		if i > 0 {
			b.WriteByte(' ')
		}
		b.WriteString(strconv.Itoa(tour[i]))
	}
	if n > 0 {
		b.WriteString(" | ")
	}
	b.WriteString(strconv.Itoa(tour[n]))
	b.WriteByte(']')

	return b.String()
}
