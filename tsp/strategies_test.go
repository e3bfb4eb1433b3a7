package tsp_test

import (
	"math/rand"
	"slices"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tourplan/tsp"
)

// requireCover asserts subset and complement are disjoint and cover 0..n-1.
func requireCover(t *testing.T, n int, subset, complement []int) {
	t.Helper()
	all := append(slices.Clone(subset), complement...)
	slices.Sort(all)
	want := make([]int, n)
	for i := range want {
		want[i] = i
	}
	require.Equal(t, want, all)
}

func TestPartition_CoverAndShape(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	for _, n := range []int{1, 2, 5, 13} {
		for trial := 0; trial < 200; trial++ {
			sub, comp := tsp.ContinuousPartition.Partition(n, rng)
			requireCover(t, n, sub, comp)
			require.NotEmpty(t, comp, "complement [c,n) holds c")
			if len(sub) > 0 {
				require.Equal(t, 0, sub[0])
			}

			sub, comp = tsp.ScatteredPartition.Partition(n, rng)
			requireCover(t, n, sub, comp)
			for i := 1; i < len(sub); i++ {
				require.Equal(t, sub[i-1]+1, sub[i], "subset is contiguous")
			}
		}
	}

	sub, comp := tsp.ScatteredPartition.Partition(0, rng)
	require.Empty(t, sub)
	require.Empty(t, comp)
}

func TestPartitionByName(t *testing.T) {
	for _, name := range []string{"continuous", "1", "scattered", "2"} {
		p, err := tsp.PartitionByName(name)
		require.NoError(t, err)
		require.NotNil(t, p)
	}
	_, err := tsp.PartitionByName("3")
	require.ErrorIs(t, err, tsp.ErrUnknownStrategy)
}

func TestInverseFrequency_FavoursRareCities(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	pop := [][]int{{0, 0, 0}, {0, 0, 0}}
	counts := make([]int, 3)
	for i := 0; i < 5000; i++ {
		c := tsp.InverseFrequency.SelectCity(pop, 3, rng)
		require.GreaterOrEqual(t, c, 0)
		require.Less(t, c, 3)
		counts[c]++
	}
	require.Less(t, counts[0], counts[1])
	require.Less(t, counts[0], counts[2])
}

func TestCitySelectors_Degenerate(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	require.Equal(t, 0, tsp.InverseFrequency.SelectCity(nil, 1, rng))
	require.Equal(t, 0, tsp.UniformCity.SelectCity(nil, 1, rng))

	c := tsp.InverseFrequency.SelectCity(nil, 4, rng)
	require.True(t, c >= 0 && c < 4)
}

func TestCitySelectorByName(t *testing.T) {
	for _, name := range []string{"inverse_frequency", "1", "uniform"} {
		s, err := tsp.CitySelectorByName(name)
		require.NoError(t, err)
		require.NotNil(t, s)
	}
	_, err := tsp.CitySelectorByName("nearest")
	require.ErrorIs(t, err, tsp.ErrUnknownStrategy)
}
