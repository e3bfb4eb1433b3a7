// Package tsp - crossover partition strategies.
//
// A Partitioner splits the positions {0..n-1} of a tour into two disjoint
// index sets whose union is the whole range. Crossover then builds child A
// from parent X at subset and parent Y at complement, and child B mirrored.
package tsp

import (
	"fmt"
	"math/rand"
)

// Partitioner is the crossover partition capability consumed by GeneticSolver.
// Implementations must return disjoint subset/complement slices covering 0..n-1.
type Partitioner interface {
	Partition(n int, rng *rand.Rand) (subset, complement []int)
}

// PartitionFunc adapts a plain function to Partitioner.
type PartitionFunc func(n int, rng *rand.Rand) (subset, complement []int)

// Partition calls f(n, rng).
func (f PartitionFunc) Partition(n int, rng *rand.Rand) ([]int, []int) { return f(n, rng) }

var (
	// ContinuousPartition cuts the tour once at c ∈ [0, n):
	// subset = [0, c), complement = [c, n).
	ContinuousPartition Partitioner = PartitionFunc(partitionContinuous)

	// ScatteredPartition draws two bounds lo ≤ hi from [0, n]:
	// subset = [lo, hi), complement = [0, lo) ∪ [hi, n).
	ScatteredPartition Partitioner = PartitionFunc(partitionScattered)
)

func partitionContinuous(n int, rng *rand.Rand) ([]int, []int) {
	if n <= 0 {
		return []int{}, []int{}
	}
	c := rng.Intn(n)
	return indexRange(0, c), indexRange(c, n)
}

func partitionScattered(n int, rng *rand.Rand) ([]int, []int) {
	if n <= 0 {
		return []int{}, []int{}
	}
	lo, hi := rng.Intn(n+1), rng.Intn(n+1)
	if lo > hi {
		lo, hi = hi, lo
	}
	complement := make([]int, 0, n-(hi-lo))
	complement = append(complement, indexRange(0, lo)...)
	complement = append(complement, indexRange(hi, n)...)

	return indexRange(lo, hi), complement
}

// indexRange returns [from, from+1, …, to-1] (empty, non-nil when to <= from).
func indexRange(from, to int) []int {
	if to <= from {
		return []int{}
	}
	out := make([]int, to-from)
	for i := range out {
		out[i] = from + i
	}
	return out
}

// PartitionByName resolves a partition strategy by name. Besides the
// descriptive names it accepts the numeric suffixes "1" (continuous) and
// "2" (scattered) used by the partition_{n} naming of earlier tooling.
func PartitionByName(name string) (Partitioner, error) {
	switch name {
	case "continuous", "1":
		return ContinuousPartition, nil
	case "scattered", "2":
		return ScatteredPartition, nil
	default:
		return nil, fmt.Errorf("partition %q: %w", name, ErrUnknownStrategy)
	}
}
