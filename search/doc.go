// Package search is the enumeration-and-evaluation engine shared by the
// exhaustive solvers in this module.
//
// Every solver has the same shape:
//
//	candidates (iter.Seq[C]) ──► Evaluator[C] ──► Tracker[C]
//
//   - Space bundles a lazy candidate sequence with its evaluator and an
//     optional size hint used for logging and tracing.
//   - Tracker keeps the best-so-far candidate under a strict comparison
//     (Minimize: <, Maximize: >), so among equal scores the first one seen wins.
//   - Exhaust drains the sequence, folding each feasible candidate into the
//     tracker. It is the only owner of the tracker while it runs.
//
// Cancellation: Exhaust checks ctx every Options.CheckEvery candidates (4096 by
// default) and honours Options.TimeLimit. A cancelled run returns an error that
// matches both ErrCanceled and the context error.
//
// Observability: one OpenTelemetry span per Exhaust call plus candidate,
// improvement and duration instruments; debug-level slog records at start and
// finish. Both default to no-ops (global otel providers, discarding logger).
package search
