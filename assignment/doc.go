// Package assignment provides an exact brute-force solver for the linear
// assignment problem: match rows (agents) to columns (tasks) one-to-one at
// minimum total cost.
//
// Rectangular r×c instances are padded to k = max(r, c) with zero-cost dummy
// cells, so the surplus rows (or columns) stay unmatched at no charge. Every
// permutation of {0..k−1} is then walked in lexicographic order, row i taking
// column p[i]; the strictly cheaper assignment wins and the first one
// enumerated breaks ties.
//
// Negative costs are allowed. NaN and ±Inf are not.
//
// Complexity: O(k·k!) time, O(k²) memory. Use it for k ≲ 10 or as a reference
// oracle for polynomial solvers.
package assignment
