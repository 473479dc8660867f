// Package exhaust is a small collection of exact, brute-force combinatorial
// optimizers: they try every candidate and keep the best one.
//
// Solvers:
//
//	tsp/        - shortest closed tour from vertex 0 over all (n−1)! orderings
//	knapsack/   - most valuable 0/1 subset over all 2ⁿ bit patterns, with
//	              ratio ranking and early abandonment of overweight patterns
//	assignment/ - cheapest one-to-one row→column matching over all k! permutations
//
// Building blocks:
//
//	matrix/     - Matrix interface, row-major Dense and input validators
//	combinat/   - lexicographic permutations, subset masks, factorials
//	search/     - the shared enumerate-evaluate-keep-best loop with context
//	              cancellation, time limits, slog logging and OpenTelemetry
//
// Every solver is deterministic: ties go to the first candidate enumerated.
// They are meant for small instances and as reference oracles for faster
// algorithms.
//
// Quick start:
//
//	res, err := tsp.Solve(ctx, [][]float64{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	})
//	// res.Tour == [0 1 3 2 0], res.Cost == 80
//
//	go get github.com/katalvlaran/exhaust
package exhaust
