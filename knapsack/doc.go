// Package knapsack provides an exact brute-force 0/1 knapsack solver.
//
// The pipeline has two stages:
//
//   - Rank: stable sort of the items by value/weight ratio, highest first.
//     Items with equal ratios keep their input order.
//   - Solve: walk every bit pattern 0…2ⁿ−1 over the ranked items. Bit i
//     selects ranked item i. A pattern is abandoned as soon as its running
//     weight exceeds the capacity; among feasible patterns the strictly
//     greatest value wins, so the first one enumerated breaks ties.
//
// The winning pattern is reported as the ascending list of original item
// indices. Ranking only changes the enumeration order (and therefore which of
// several equal-value subsets is reported); it never prunes.
//
// Complexity: O(n·2ⁿ) time, O(n) memory. n is capped at 63 because a pattern
// is a uint64.
package knapsack
