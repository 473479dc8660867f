package knapsack_test

import (
	"context"
	"fmt"
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/katalvlaran/exhaust/knapsack"
	"github.com/katalvlaran/exhaust/search"
)

func scenarioWeights() []float64 { return []float64{2, 1, 3, 1.5, 4} }
func scenarioValues() []float64  { return []float64{5, 7, 5, 4, 10} }

func indicesOf(items []knapsack.Item) []int {
	out := make([]int, len(items))
	for i, it := range items {
		out[i] = it.Index
	}

	return out
}

// oracleBest enumerates subsets over the original order and returns the
// greatest feasible value. It shares no code with the solver.
func oracleBest(w, v []float64, capacity float64) float64 {
	var best float64
	n := len(w)
	for mask := 0; mask < 1<<n; mask++ {
		var sw, sv float64
		for i := 0; i < n; i++ {
			if mask>>i&1 == 1 {
				sw += w[i]
				sv += v[i]
			}
		}
		if sw <= capacity && sv > best {
			best = sv
		}
	}

	return best
}

func TestSolveItems_Scenario(t *testing.T) {
	res, err := knapsack.SolveItems(context.Background(), scenarioWeights(), scenarioValues(), 8)
	require.NoError(t, err)
	require.Equal(t, 22.0, res.Value)
	require.Equal(t, []int{0, 1, 4}, res.Indices, "{0,1,4} is enumerated before the equal-value {1,2,4}")
	require.Equal(t, 7.0, res.Weight)
}

func TestSolveItems_ZeroCapacity(t *testing.T) {
	res, err := knapsack.SolveItems(context.Background(), scenarioWeights(), scenarioValues(), 0)
	require.NoError(t, err)
	require.Zero(t, res.Value)
	require.NotNil(t, res.Indices)
	require.Empty(t, res.Indices)
}

func TestSolveItems_NoItems(t *testing.T) {
	res, err := knapsack.SolveItems(context.Background(), nil, nil, 10)
	require.NoError(t, err)
	require.Zero(t, res.Value)
	require.Empty(t, res.Indices)
}

func TestSolveItems_EverythingFits(t *testing.T) {
	res, err := knapsack.SolveItems(context.Background(), scenarioWeights(), scenarioValues(), 100)
	require.NoError(t, err)
	require.Equal(t, 31.0, res.Value)
	require.Equal(t, []int{0, 1, 2, 3, 4}, res.Indices)
	require.Equal(t, 11.5, res.Weight)
}

func TestSolveItems_ExactFitIsFeasible(t *testing.T) {
	res, err := knapsack.SolveItems(context.Background(), []float64{3}, []float64{9}, 3)
	require.NoError(t, err)
	require.Equal(t, 9.0, res.Value)
	require.Equal(t, []int{0}, res.Indices)
}

func TestSolve_ZeroWeightItemAllowed(t *testing.T) {
	items := []knapsack.Item{
		{Index: 0, Weight: 0, Value: 3},
		{Index: 1, Weight: 5, Value: 4},
	}
	res, err := knapsack.Solve(context.Background(), items, 0)
	require.NoError(t, err)
	require.Equal(t, 3.0, res.Value)
	require.Equal(t, []int{0}, res.Indices)
}

func TestSolve_UnrankedOrderChangesOnlyTieBreak(t *testing.T) {
	items, err := knapsack.NewItems(scenarioWeights(), scenarioValues())
	require.NoError(t, err)

	res, err := knapsack.Solve(context.Background(), items, 8)
	require.NoError(t, err)
	require.Equal(t, 22.0, res.Value)
	// In input order {1,2,4} is mask 22 and {0,1,4} is mask 19.
	require.Equal(t, []int{0, 1, 4}, res.Indices)
}

func TestSolveItems_AgreesWithOracle(t *testing.T) {
	r := rand.New(rand.NewPCG(7, 11))
	for n := 0; n <= 12; n++ {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			w := make([]float64, n)
			v := make([]float64, n)
			var total float64
			for i := 0; i < n; i++ {
				w[i] = float64(1 + r.IntN(20))
				v[i] = float64(r.IntN(30))
				total += w[i]
			}
			capacity := math.Floor(total / 2)

			res, err := knapsack.SolveItems(context.Background(), w, v, capacity)
			require.NoError(t, err)
			require.Equal(t, oracleBest(w, v, capacity), res.Value)

			var sw, sv float64
			for _, idx := range res.Indices {
				sw += w[idx]
				sv += v[idx]
			}
			require.LessOrEqual(t, sw, capacity)
			require.Equal(t, res.Value, sv)
			require.Equal(t, res.Weight, sw)
			require.IsIncreasing(t, append([]int{-1}, res.Indices...))
		})
	}
}

func TestSolveItems_Deterministic(t *testing.T) {
	r1, err := knapsack.SolveItems(context.Background(), scenarioWeights(), scenarioValues(), 8)
	require.NoError(t, err)
	r2, err := knapsack.SolveItems(context.Background(), scenarioWeights(), scenarioValues(), 8)
	require.NoError(t, err)
	require.Equal(t, r1, r2)
}

func TestSolve_Errors(t *testing.T) {
	ok := []knapsack.Item{{Index: 0, Weight: 1, Value: 1}}
	cases := []struct {
		name     string
		items    []knapsack.Item
		capacity float64
		want     error
	}{
		{"negative capacity", ok, -1, knapsack.ErrNegativeCapacity},
		{"nan capacity", ok, math.NaN(), knapsack.ErrNonFinite},
		{"inf capacity", ok, math.Inf(1), knapsack.ErrNonFinite},
		{"negative weight", []knapsack.Item{{Weight: -1, Value: 1}}, 1, knapsack.ErrNegativeWeight},
		{"negative value", []knapsack.Item{{Weight: 1, Value: -1}}, 1, knapsack.ErrNegativeValue},
		{"nan value", []knapsack.Item{{Weight: 1, Value: math.NaN()}}, 1, knapsack.ErrNonFinite},
		{"too many", make([]knapsack.Item, knapsack.MaxItems+1), 1, knapsack.ErrTooManyItems},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := knapsack.Solve(context.Background(), tc.items, tc.capacity)
			require.ErrorIs(t, err, tc.want)
			require.ErrorIs(t, err, knapsack.ErrInvalidInput)
		})
	}
}

func TestSolveItems_RankErrorsPropagate(t *testing.T) {
	_, err := knapsack.SolveItems(context.Background(), []float64{0}, []float64{1}, 1)
	require.ErrorIs(t, err, knapsack.ErrNonPositiveWeight)

	_, err = knapsack.SolveItems(context.Background(), []float64{1}, nil, 1)
	require.ErrorIs(t, err, knapsack.ErrLengthMismatch)
}

func TestSolve_Canceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := knapsack.SolveItems(ctx, scenarioWeights(), scenarioValues(), 8)
	require.ErrorIs(t, err, search.ErrCanceled)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res.Indices)
}

func TestSolve_SpanCountsAbandonedPatterns(t *testing.T) {
	rec := tracetest.NewSpanRecorder()
	tp := sdktrace.NewTracerProvider(sdktrace.WithSpanProcessor(rec))

	_, err := knapsack.SolveItems(context.Background(), scenarioWeights(), scenarioValues(), 8,
		search.WithTracer(tp.Tracer("test")))
	require.NoError(t, err)

	spans := rec.Ended()
	require.Len(t, spans, 1)
	require.Equal(t, "knapsack.bruteforce", spans[0].Name())

	attrs := map[string]int64{}
	for _, kv := range spans[0].Attributes() {
		attrs[string(kv.Key)] = kv.Value.AsInt64()
	}
	require.Equal(t, int64(32), attrs["search.candidates"])
	require.Less(t, attrs["search.feasible"], int64(32))
}

func TestCandidateCount(t *testing.T) {
	got, err := knapsack.CandidateCount(5)
	require.NoError(t, err)
	require.Equal(t, uint64(32), got)

	got, err = knapsack.CandidateCount(0)
	require.NoError(t, err)
	require.Equal(t, uint64(1), got)

	_, err = knapsack.CandidateCount(64)
	require.ErrorIs(t, err, knapsack.ErrTooManyItems)
}

func TestSolveItems_OverflowingValueFails(t *testing.T) {
	res, err := knapsack.SolveItems(context.Background(), []float64{1, 1}, []float64{1e308, 1e308}, 2)
	require.ErrorIs(t, err, knapsack.ErrNonFinite)
	require.Nil(t, res.Indices)

	res, err = knapsack.SolveItems(context.Background(), []float64{1, 1}, []float64{1e300, 1e300}, 2)
	require.NoError(t, err)
	require.Equal(t, 2e300, res.Value)
	require.Equal(t, []int{0, 1}, res.Indices)
}
