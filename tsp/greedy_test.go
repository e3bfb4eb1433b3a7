package tsp_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/tsp"
)

func TestGreedy_PicksBestMarginalGain(t *testing.T) {
	g, err := tsp.NewGreedy(smallTable(t), 3)
	require.NoError(t, err)
	require.Equal(t, "greedy", g.Name())

	recs := tsp.Collect(g)
	require.Len(t, recs, 3)

	require.Equal(t, []int{0}, recs[0].Current)
	require.Equal(t, []int{0, 2}, recs[1].Current)
	require.Equal(t, []int{0, 2, 1}, recs[2].Current)
	require.InDelta(t, 7, recs[0].CurrentScore, eps)
	require.InDelta(t, 13, recs[1].CurrentScore, eps)
	require.InDelta(t, 19, recs[2].CurrentScore, eps)

	for i, p := range recs {
		require.Equal(t, i+1, p.Step)
		require.InDelta(t, float64(i+1)/3, p.Fraction, eps)
		require.Equal(t, p.Current, p.Best)
		require.Equal(t, i == 2, p.Final)
	}

	_, ok := g.Next()
	require.False(t, ok)
}

func TestGreedy_TiesGoToLowestIndex(t *testing.T) {
	inst := tsp.Funcs{
		Cities:    4,
		CostFn:    func(_, _, _ int) float64 { return 0 },
		RevenueFn: func(_, _ int) float64 { return 1 },
	}
	g, err := tsp.NewGreedy(inst, 4)
	require.NoError(t, err)
	require.Equal(t, []int{0, 1, 2, 3}, tsp.Final(g).Best)
}

func TestGreedy_ConfigErrors(t *testing.T) {
	var nilTable *tsp.Table
	cases := []struct {
		name string
		inst tsp.Instance
		l    int
		want error
	}{
		{"nil", nil, 1, tsp.ErrNilInstance},
		{"nil table", nilTable, 1, tsp.ErrNilInstance},
		{"funcs without cost", tsp.Funcs{Cities: 2, RevenueFn: func(_, _ int) float64 { return 0 }}, 1, tsp.ErrNilInstance},
		{"no cities", tsp.Funcs{Cities: 0, CostFn: flatInstance().CostFn, RevenueFn: flatInstance().RevenueFn}, 1, tsp.ErrNoCities},
		{"zero length", flatInstance(), 0, tsp.ErrTourLength},
		{"too long", flatInstance(), 3, tsp.ErrTourTooLong},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := tsp.NewGreedy(tc.inst, tc.l)
			require.ErrorIs(t, err, tc.want)
		})
	}
}
