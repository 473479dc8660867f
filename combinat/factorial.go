package combinat

import (
	"fmt"
	"iter"
)

// Factorial returns n! exactly.
//
// Errors: ErrNegative for n<0, ErrOverflow for n>MaxFactorial.
func Factorial(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > MaxFactorial {
		return 0, fmt.Errorf("%w: %d!", ErrOverflow, n)
	}
	f := uint64(1)
	for k := 2; k <= n; k++ {
		f *= uint64(k)
	}

	return f, nil
}

// Factorials yields (k, k!) for k = 1..n, stopping early at MaxFactorial so
// no value ever overflows.
func Factorials(n int) iter.Seq2[int, uint64] {
	return func(yield func(int, uint64) bool) {
		f := uint64(1)
		for k := 1; k <= n && k <= MaxFactorial; k++ {
			f *= uint64(k)
			if !yield(k, f) {
				return
			}
		}
	}
}

// Pow2 returns 2ⁿ for 0 ≤ n ≤ MaxSubsetBits.
//
// Errors: ErrNegative for n<0, ErrOverflow for n>MaxSubsetBits.
func Pow2(n int) (uint64, error) {
	if n < 0 {
		return 0, ErrNegative
	}
	if n > MaxSubsetBits {
		return 0, fmt.Errorf("%w: 2^%d", ErrOverflow, n)
	}

	return uint64(1) << uint(n), nil
}
