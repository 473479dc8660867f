package search

import "math"

// Tracker holds the best candidate seen so far and its score.
//
// It starts empty with the worst possible score for its Sense and is replaced
// only by a strictly better score, so the earliest candidate among equals is
// kept. Candidates are copied through clone on every improvement; pass nil for
// value types that need no copy.
//
// A Tracker is not safe for concurrent use; Exhaust owns it while running.
type Tracker[C any] struct {
	sense        Sense
	clone        func(C) C
	best         C
	score        float64
	found        bool
	improvements int64
}

// NewTracker returns an empty tracker for the given sense.
func NewTracker[C any](sense Sense, clone func(C) C) *Tracker[C] {
	return &Tracker[C]{sense: sense, clone: clone, score: sense.Worst()}
}

// Offer considers cand with the given score and reports whether it became the
// new best.
//
// Complexity: O(1) plus the cost of clone on improvement.
func (t *Tracker[C]) Offer(score float64, cand C) bool {
	if t.found {
		if !t.sense.Better(score, t.score) {
			return false
		}
	} else if math.IsNaN(score) {
		return false
	}
	if t.clone != nil {
		cand = t.clone(cand)
	}
	t.best = cand
	t.score = score
	t.found = true
	t.improvements++

	return true
}

// Best returns the best candidate, its score and whether any candidate was accepted.
func (t *Tracker[C]) Best() (C, float64, bool) { return t.best, t.score, t.found }

// Score returns the best score, or Sense.Worst() while empty.
func (t *Tracker[C]) Score() float64 { return t.score }

// Found reports whether any candidate was accepted.
func (t *Tracker[C]) Found() bool { return t.found }

// Sense returns the comparison rule.
func (t *Tracker[C]) Sense() Sense { return t.sense }

// Improvements returns how many times the best candidate was replaced.
func (t *Tracker[C]) Improvements() int64 { return t.improvements }

// Reset empties the tracker, keeping its sense and clone function.
func (t *Tracker[C]) Reset() {
	var zero C
	t.best = zero
	t.score = t.sense.Worst()
	t.found = false
	t.improvements = 0
}
