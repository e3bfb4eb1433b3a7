// Package tsp_test holds helpers shared across the black-box tests.
package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/tsp"
)

const (
	// seedDet is the fixed seed used by stochastic tests.
	seedDet = int64(7)

	// eps is the absolute tolerance for float comparisons.
	eps = 1e-9
)

// flatInstance: 2 cities, revenue 10 and 5, every transfer costs 1.
func flatInstance() tsp.Funcs {
	return tsp.Funcs{
		Cities: 2,
		CostFn: func(_, _, _ int) float64 { return 1 },
		RevenueFn: func(city, _ int) float64 {
			if city == 0 {
				return 10
			}
			return 5
		},
	}
}

// smallTable builds a 3-city table with asymmetric costs and step-dependent revenue.
func smallTable(t *testing.T) *tsp.Table {
	t.Helper()
	tbl, err := tsp.NewTableFromSlices(
		[]float64{2, 1, 4},
		[][]float64{
			{0, 3, 1},
			{2, 0, 6},
			{1, 2, 0},
		},
		[][]float64{
			{9, 4},
			{5, 8},
			{7, 7},
		},
	)
	require.NoError(t, err)
	return tbl
}

// rippleTable builds an n-city table with a deterministic, irregular landscape.
func rippleTable(t *testing.T, n int) *tsp.Table {
	t.Helper()
	var (
		dep = make([]float64, n)
		tr  = make([][]float64, n)
		rev = make([][]float64, n)
		i   int
		j   int
	)
	for i = 0; i < n; i++ {
		dep[i] = float64(1 + (i*7)%5)
		tr[i] = make([]float64, n)
		for j = 0; j < n; j++ {
			if i != j {
				tr[i][j] = float64(1 + (i*13+j*5)%11)
			}
		}
		rev[i] = []float64{float64(10 + (i*17)%23), float64(5 + (i*11)%19)}
	}
	tbl, err := tsp.NewTableFromSlices(dep, tr, rev)
	require.NoError(t, err)
	return tbl
}

// enumerate returns every tour in {0..n-1}^length in lexicographic order.
func enumerate(n, length int) [][]int {
	out := [][]int{{}}
	for k := 0; k < length; k++ {
		var next [][]int
		for _, prefix := range out {
			for c := 0; c < n; c++ {
				next = append(next, append(append([]int{}, prefix...), c))
			}
		}
		out = next
	}
	return out
}

// fastGenetic returns genetic options sized for quick tests.
func fastGenetic() tsp.GeneticOptions {
	opts := tsp.DefaultGeneticOptions()
	opts.PopulationSize = 20
	opts.ElitismFactor = 4
	opts.StepsThreshold = 30
	opts.Seed = seedDet
	return opts
}
