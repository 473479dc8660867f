// Package tsp provides an exact brute-force Travelling Salesman solver.
//
// BruteForce fixes the origin at vertex 0 and enumerates every ordering of the
// remaining vertices on a distance matrix.
//
//   - Enumeration: lexicographic permutations of {1..n−1} (combinat).
//   - Complexity:  O(n·(n−1)!) time.
//   - Memory:      O(n²) for the prefetched matrix + O(n) per candidate.
//   - Ties:        the first optimal route in enumeration order is returned.
//   - Symmetry:    not assumed; a route and its reverse are both evaluated.
//
// The distance matrix must be square, finite, non-negative and have a zero
// diagonal; anything else fails with an error matching ErrInvalidInput.
// Use this package for small instances (n≲11) or as a reference oracle for
// faster solvers.
package tsp
