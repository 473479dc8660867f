// Package tsp_test provides lightweight testing helpers shared across *_test.go
// files in this package.
package tsp_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/exhaust/matrix"
)

const (
	// seedDet is the deterministic seed for random instances.
	seedDet = 42

	// oracleMaxN bounds the instance size cross-checked against oracleMin.
	oracleMaxN = 8
)

// testDense is a simple dense matrix with bounds-checked At/Set and deep Clone.
// It lets tests feed shapes *matrix.Dense would refuse to build.
type testDense struct{ a [][]float64 }

var _ matrix.Matrix = testDense{}

func (m testDense) Rows() int { return len(m.a) }
func (m testDense) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}
func (m testDense) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.a) || j < 0 || j >= len(m.a[i]) {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}
func (m testDense) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m.a) || j < 0 || j >= len(m.a[i]) {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}
func (m testDense) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return testDense{a: cp}
}

// mustDense builds a *matrix.Dense or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFrom(rows)
	require.NoError(t, err)

	return m
}

// scenario4 is the classic four-city instance; its optimum is (0,1,3,2,0)=80.
func scenario4() [][]float64 {
	return [][]float64{
		{0, 10, 15, 20},
		{10, 0, 35, 25},
		{15, 35, 0, 30},
		{20, 25, 30, 0},
	}
}

// randomDist returns an n×n matrix with a zero diagonal and integer weights in
// [1, 100]. When sym is true the matrix is symmetric.
func randomDist(n int, sym bool, seed uint64) [][]float64 {
	var (
		r    = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		a    = make([][]float64, n)
		i, j int
	)
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
	}
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if i == j {
				continue
			}
			if sym && j < i {
				a[i][j] = a[j][i]
				continue
			}
			a[i][j] = float64(1 + r.IntN(100))
		}
	}

	return a
}

// euclid places n points on a rippled circle and returns their distance matrix.
func euclid(n int) [][]float64 {
	var (
		xs   = make([]float64, n)
		ys   = make([]float64, n)
		a    = make([][]float64, n)
		i, j int
		th   float64
		rad  float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		rad = 100 + 7*math.Sin(3*th)
		xs[i], ys[i] = rad*math.Cos(th), rad*math.Sin(th)
	}
	for i = 0; i < n; i++ {
		a[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				a[i][j] = math.Hypot(xs[i]-xs[j], ys[i]-ys[j])
			}
		}
	}

	return a
}

// oracleMin computes the optimal closed-tour cost from vertex 0 by plain
// recursion over unvisited vertices. It shares no code with the solver.
func oracleMin(a [][]float64) float64 {
	n := len(a)
	if n == 1 {
		return a[0][0]
	}
	visited := make([]bool, n)
	visited[0] = true
	best := math.Inf(1)

	var rec func(u, depth int, acc float64)
	rec = func(u, depth int, acc float64) {
		if depth == n {
			if c := acc + a[u][0]; c < best {
				best = c
			}
			return
		}
		for v := 1; v < n; v++ {
			if visited[v] {
				continue
			}
			visited[v] = true
			rec(v, depth+1, acc+a[u][v])
			visited[v] = false
		}
	}
	rec(0, 1, 0)

	return best
}

// rawCost sums a along a closed tour without any validation.
func rawCost(a [][]float64, tour []int) float64 {
	var s float64
	for k := 0; k+1 < len(tour); k++ {
		s += a[tour[k]][tour[k+1]]
	}

	return s
}
