package combinat

import "errors"

// MaxSubsetBits is the widest subset universe Subsets can enumerate.
// Patterns are uint64 counters and 2⁶³ is the last power that still leaves
// room for the loop bound.
const MaxSubsetBits = 63

// MaxFactorial is the largest n whose factorial fits in a uint64.
const MaxFactorial = 20

var (
	// ErrNegative is returned when a size argument is negative.
	ErrNegative = errors.New("combinat: negative size")

	// ErrOverflow is returned when a count does not fit in a uint64.
	ErrOverflow = errors.New("combinat: count overflows uint64")
)
