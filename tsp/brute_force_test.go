package tsp_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/tsp"
)

func TestBruteForce_FindsOptimum(t *testing.T) {
	tbl := smallTable(t)
	b, err := tsp.NewBruteForce(tbl, 2, 0)
	require.NoError(t, err)
	require.Equal(t, "brute_force", b.Name())
	require.Equal(t, uint64(9), b.Total())

	recs := tsp.Collect(b)
	require.Len(t, recs, 9)

	all := enumerate(3, 2)
	want := math.Inf(-1)
	var wantTour []int
	for i, tour := range all {
		require.Equal(t, tour, recs[i].Current, "enumeration order")
		if s := tsp.Score(tbl, tour); s > want {
			want, wantTour = s, tour
		}
	}
	last := recs[len(recs)-1]
	require.True(t, last.Final)
	require.Equal(t, want, last.BestScore)
	require.Equal(t, wantTour, last.Best)
	require.InDelta(t, 1, last.Fraction, eps)
	require.InDelta(t, 1.0/9, recs[0].Fraction, eps)

	_, ok := b.Next()
	require.False(t, ok)
}

func TestBruteForce_BestIsMonotoneAndFirstSeenWins(t *testing.T) {
	inst := tsp.Funcs{
		Cities:    2,
		CostFn:    func(_, _, _ int) float64 { return 0 },
		RevenueFn: func(_, _ int) float64 { return 1 },
	}
	b, err := tsp.NewBruteForce(inst, 2, 0)
	require.NoError(t, err)

	prev := math.Inf(-1)
	var last tsp.Progress
	for p := range tsp.All(b) {
		require.GreaterOrEqual(t, p.BestScore, prev)
		prev = p.BestScore
		last = p
	}
	// [0,1] is the first tour scoring 2.
	require.Equal(t, []int{0, 1}, last.Best)
}

func TestBruteForce_Repetition(t *testing.T) {
	// A single city can still fill a longer tour.
	inst := tsp.Funcs{
		Cities:    1,
		CostFn:    func(_, _, _ int) float64 { return 1 },
		RevenueFn: func(_, _ int) float64 { return 5 },
	}
	b, err := tsp.NewBruteForce(inst, 3, 0)
	require.NoError(t, err)
	p := tsp.Final(b)
	require.Equal(t, []int{0, 0, 0}, p.Best)
	require.Equal(t, 2.0, p.BestScore)
}

func TestCandidateCount(t *testing.T) {
	n, ok := tsp.CandidateCount(3, 2)
	require.True(t, ok)
	require.Equal(t, uint64(9), n)

	n, ok = tsp.CandidateCount(10, 0)
	require.True(t, ok)
	require.Equal(t, uint64(1), n)

	_, ok = tsp.CandidateCount(100, 9)
	require.True(t, ok)

	_, ok = tsp.CandidateCount(100, 10)
	require.False(t, ok)
}

func TestBruteForce_Budget(t *testing.T) {
	_, err := tsp.NewBruteForce(rippleTable(t, 10), 4, 1000)
	require.ErrorIs(t, err, tsp.ErrTooManyCandidates)

	_, err = tsp.NewBruteForce(rippleTable(t, 10), 40, 0)
	require.ErrorIs(t, err, tsp.ErrTooManyCandidates)

	_, err = tsp.NewBruteForce(rippleTable(t, 10), 3, 1000)
	require.NoError(t, err)

	_, err = tsp.NewBruteForce(flatInstance(), 0, 0)
	require.ErrorIs(t, err, tsp.ErrTourLength)
}
