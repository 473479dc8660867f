// Package combinat - lexicographic permutation generator.
//
// NextPermutation is the in-place step (Narayana Pandita):
//  1. Find the largest i with p[i] < p[i+1]; if none, p is the last permutation.
//  2. Find the largest j > i with p[i] < p[j].
//  3. Swap p[i], p[j] and reverse the suffix p[i+1:].
//
// Permutation wraps that step into a restartable generator that starts from
// the identity, and Permutations exposes it as an iter.Seq.
package combinat

import (
	"fmt"
	"iter"
)

// NextPermutation rearranges p into its lexicographic successor and reports
// whether one existed. When p is already the last permutation (non-increasing)
// it is left unchanged and false is returned.
//
// Complexity: O(n) time, O(1) space.
func NextPermutation(p []int) bool {
	var (
		n = len(p)
		i = n - 2
		j = n - 1
	)
	for i >= 0 && p[i] >= p[i+1] {
		i--
	}
	if i < 0 {
		return false
	}
	for p[j] <= p[i] {
		j--
	}
	p[i], p[j] = p[j], p[i]
	reverseInts(p[i+1:])

	return true
}

// reverseInts reverses a in place.
func reverseInts(a []int) {
	for l, r := 0, len(a)-1; l < r; l, r = l+1, r-1 {
		a[l], a[r] = a[r], a[l]
	}
}

// Permutation enumerates the permutations of {0..n-1} in lexicographic order.
// The zero value is not usable; construct with NewPermutation.
//
// Usage:
//
//	p := combinat.NewPermutation(3)
//	for p.Next() {
//	    use(p.Values()) // [0 1 2], [0 2 1], [1 0 2], ...
//	}
type Permutation struct {
	cur     []int
	started bool
	done    bool
}

// NewPermutation returns a generator positioned before the identity permutation.
// It panics if n is negative.
func NewPermutation(n int) *Permutation {
	if n < 0 {
		panic(fmt.Sprintf("combinat: NewPermutation(%d): %v", n, ErrNegative))
	}
	p := &Permutation{cur: make([]int, n)}
	p.Reset()

	return p
}

// Reset rewinds the generator so the next call to Next yields the identity again.
func (p *Permutation) Reset() {
	for i := range p.cur {
		p.cur[i] = i
	}
	p.started = false
	p.done = false
}

// Next advances to the next permutation and reports whether one is available.
// For n == 0 it yields exactly one (empty) permutation.
func (p *Permutation) Next() bool {
	if p.done {
		return false
	}
	if !p.started {
		p.started = true
		return true
	}
	if !NextPermutation(p.cur) {
		p.done = true
		return false
	}

	return true
}

// Values returns the current permutation. The slice is owned by the generator
// and is overwritten by the next call to Next; copy it to retain it.
func (p *Permutation) Values() []int { return p.cur }

// Len returns n.
func (p *Permutation) Len() int { return len(p.cur) }

// Permutations returns a lazy sequence over every permutation of {0..n-1} in
// lexicographic order. Each range over the sequence starts from the identity.
// The yielded slice is reused between iterations.
//
// It panics if n is negative.
func Permutations(n int) iter.Seq[[]int] {
	if n < 0 {
		panic(fmt.Sprintf("combinat: Permutations(%d): %v", n, ErrNegative))
	}

	return func(yield func([]int) bool) {
		p := NewPermutation(n)
		for p.Next() {
			if !yield(p.Values()) {
				return
			}
		}
	}
}
