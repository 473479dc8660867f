// Package combinat provides lazy, restartable candidate generators for
// exhaustive search.
//
// It includes:
//
//   - Permutation / Permutations: every ordering of {0..n-1} in lexicographic
//     order, produced in place by the classic next-permutation step.
//     O(n) amortized per step, O(n) memory regardless of the n! length.
//   - Subsets: every bit pattern 0..2ⁿ−1 in increasing integer order.
//     O(1) per step and O(1) memory.
//   - Factorial / Factorials / Pow2: exact sizes of those search spaces,
//     guarded against uint64 overflow.
//
// Every generator is deterministic: ranging over the same sequence twice
// yields the same candidates in the same order.
package combinat
