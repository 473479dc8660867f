package combinat

import (
	"fmt"
	"iter"
)

// Subsets returns a lazy sequence over every bit pattern of width n, in
// increasing integer order 0, 1, …, 2ⁿ−1. Bit i set means element i is selected.
//
// It panics if n is outside [0, MaxSubsetBits]; callers validate sizes first.
//
// Complexity: O(1) per pattern.
func Subsets(n int) iter.Seq[uint64] {
	if n < 0 || n > MaxSubsetBits {
		panic(fmt.Sprintf("combinat: Subsets(%d): width must be in [0, %d]", n, MaxSubsetBits))
	}
	limit := uint64(1) << uint(n)

	return func(yield func(uint64) bool) {
		for mask := uint64(0); mask < limit; mask++ {
			if !yield(mask) {
				return
			}
		}
	}
}

// Members appends the indices of the set bits of mask (below width n) to dst
// in ascending order and returns the extended slice.
func Members(dst []int, mask uint64, n int) []int {
	for i := 0; i < n; i++ {
		if mask&(uint64(1)<<uint(i)) != 0 {
			dst = append(dst, i)
		}
	}

	return dst
}
