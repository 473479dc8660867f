package search

import (
	"errors"
	"iter"
	"math"
	"time"
)

// Sentinel errors returned by the engine and its option constructors.
var (
	// ErrCanceled indicates that the context was cancelled or the time limit
	// expired before every candidate was evaluated.
	ErrCanceled = errors.New("search: enumeration canceled")

	// ErrNilArgument indicates a nil tracker, sequence or evaluator.
	ErrNilArgument = errors.New("search: nil argument")

	// ErrBadTimeLimit indicates a negative TimeLimit.
	ErrBadTimeLimit = errors.New("search: TimeLimit must be non-negative")

	// ErrBadCheckEvery indicates a CheckEvery that is not a positive power of two.
	ErrBadCheckEvery = errors.New("search: CheckEvery must be a positive power of two")
)

// Sense selects the comparison rule of a Tracker.
type Sense int

const (
	// Minimize keeps the candidate with the strictly lowest score.
	Minimize Sense = iota

	// Maximize keeps the candidate with the strictly highest score.
	Maximize
)

// String implements fmt.Stringer.
func (s Sense) String() string {
	switch s {
	case Minimize:
		return "minimize"
	case Maximize:
		return "maximize"
	default:
		return "unknown"
	}
}

// Better reports whether a is strictly better than b under s.
func (s Sense) Better(a, b float64) bool {
	if s == Maximize {
		return a > b
	}

	return a < b
}

// Worst returns the initial score of an empty tracker: +Inf for Minimize,
// −Inf for Maximize.
func (s Sense) Worst() float64 {
	if s == Maximize {
		return math.Inf(-1)
	}

	return math.Inf(1)
}

// Evaluator scores one candidate. ok=false marks the candidate infeasible; its
// score is then ignored. Evaluators may stop early once infeasibility is known.
type Evaluator[C any] func(cand C) (score float64, ok bool)

// Space describes one exhaustive search.
type Space[C any] struct {
	// Name labels logs and spans, e.g. "tsp.bruteforce".
	Name string

	// Size is the number of candidates Candidates will yield, or 0 if unknown.
	Size uint64

	// Candidates is the lazy candidate stream. Yielded values may be reused
	// buffers; the Tracker's clone function is responsible for copying them.
	Candidates iter.Seq[C]

	// Evaluate scores each candidate.
	Evaluate Evaluator[C]
}

// Stats summarizes one Exhaust run.
type Stats struct {
	Candidates   int64         // candidates drawn from the sequence
	Feasible     int64         // candidates the evaluator accepted
	Improvements int64         // strict improvements of the best-so-far
	Elapsed      time.Duration // wall time spent enumerating
}
