// Package search - the exhaustive fold loop.
//
// Exhaust is deliberately small: draw a candidate, poll the context on a
// sparse cadence, evaluate, offer feasible scores to the tracker. Everything a
// solver knows about its problem lives in its Space (sequence + evaluator).
//
// Complexity:
//   - O(|space| · cost(Evaluate)) time.
//   - O(1) extra memory beyond what the sequence and tracker hold.
package search

import (
	"context"
	"fmt"
	"time"
)

// Exhaust evaluates every candidate of sp and folds feasible ones into tr.
//
// Contracts:
//   - tr, sp.Candidates and sp.Evaluate must be non-nil (ErrNilArgument).
//   - ctx is polled before the first candidate and then once per
//     opts.CheckEvery candidates. On cancellation or TimeLimit expiry the loop
//     stops and the returned error matches ErrCanceled and ctx.Err(); tr then
//     holds a partial result that callers must not report.
//   - Zero-valued Options fields fall back to DefaultOptions.
//
// The returned Stats are valid on both success and cancellation.
func Exhaust[C any](ctx context.Context, sp Space[C], tr *Tracker[C], opts Options) (Stats, error) {
	if tr == nil || sp.Candidates == nil || sp.Evaluate == nil {
		return Stats{}, ErrNilArgument
	}
	if ctx == nil {
		ctx = context.Background()
	}
	opts = opts.normalize()
	if opts.TimeLimit > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.TimeLimit)
		defer cancel()
	}

	tel := newTelemetry(opts)
	ctx, span := tel.start(ctx, sp.Name, sp.Size)
	defer span.End()

	opts.Logger.DebugContext(ctx, "search started",
		"search", sp.Name,
		"sense", tr.Sense().String(),
		"space_size", sp.Size,
	)

	var (
		st      Stats
		mask    = int64(opts.CheckEvery - 1)
		runErr  error
		score   float64
		ok      bool
		started = time.Now()
	)
	for cand := range sp.Candidates {
		if st.Candidates&mask == 0 {
			if cerr := ctx.Err(); cerr != nil {
				runErr = fmt.Errorf("%s: %w: %w", sp.Name, ErrCanceled, cerr)
				break
			}
		}
		st.Candidates++

		score, ok = sp.Evaluate(cand)
		if !ok {
			continue
		}
		st.Feasible++
		if tr.Offer(score, cand) {
			st.Improvements++
		}
	}
	st.Elapsed = time.Since(started)

	_, best, found := tr.Best()
	tel.finish(ctx, span, sp.Name, st, best, found, runErr)

	if runErr != nil {
		opts.Logger.WarnContext(ctx, "search canceled",
			"search", sp.Name,
			"candidates", st.Candidates,
			"elapsed", st.Elapsed,
			"error", runErr,
		)
		return st, runErr
	}
	opts.Logger.DebugContext(ctx, "search finished",
		"search", sp.Name,
		"candidates", st.Candidates,
		"feasible", st.Feasible,
		"improvements", st.Improvements,
		"elapsed", st.Elapsed,
		"best", best,
		"found", found,
	)

	return st, nil
}
