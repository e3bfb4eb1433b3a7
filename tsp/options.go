// Package tsp - solver configuration.
package tsp

import (
	"math"
	"math/rand"
)

// Defaults mirror the hyperparameters the engine was tuned with.
const (
	DefaultPopulationSize      = 200
	DefaultStepsThreshold      = 20000
	DefaultMutationProbability = 0.3
	DefaultElitismFactor       = 50
	DefaultTourLength          = 10
)

// GeneticOptions configures a GeneticSolver.
//
//   - PopulationSize:      individuals per generation (≥ 1).
//   - StepsThreshold:      generation budget (> 0); the run stops after exactly this many.
//   - ScoreThreshold:      stop once a generation's best reaches it; +Inf disables.
//   - MutationProbability: per-child mutation chance in [0, 1].
//   - ElitismFactor:       elites copied unchanged each generation (0 ≤ k < PopulationSize);
//     raised by one when k+PopulationSize is odd so children pair up evenly.
//   - Partition:           crossover partition strategy (nil ⇒ ContinuousPartition).
//   - CitySelection:       mutation city selector (nil ⇒ InverseFrequency).
//   - Seed / Rand:         randomness; a non-nil Rand wins, seed 0 ⇒ fixed default seed.
type GeneticOptions struct {
	PopulationSize      int
	StepsThreshold      int
	ScoreThreshold      float64
	MutationProbability float64
	ElitismFactor       int
	Partition           Partitioner
	CitySelection       CitySelector
	Seed                int64
	Rand                *rand.Rand
}

// DefaultGeneticOptions returns the default genetic configuration.
func DefaultGeneticOptions() GeneticOptions {
	return GeneticOptions{
		PopulationSize:      DefaultPopulationSize,
		StepsThreshold:      DefaultStepsThreshold,
		ScoreThreshold:      math.Inf(1),
		MutationProbability: DefaultMutationProbability,
		ElitismFactor:       DefaultElitismFactor,
		Partition:           ContinuousPartition,
		CitySelection:       InverseFrequency,
	}
}

// Options configures the New dispatcher.
//
//   - Algo:          which strategy to construct.
//   - TourLength:    number of tour positions (≥ 1).
//   - MaxCandidates: brute-force budget; 0 ⇒ only the uint64 overflow guard applies.
//   - Genetic:       used when Algo == Genetic.
type Options struct {
	Algo          Algorithm
	TourLength    int
	MaxCandidates uint64
	Genetic       GeneticOptions
}

// DefaultOptions returns Options for the greedy solver with the default tour
// length and default genetic settings ready to be switched on.
func DefaultOptions() Options {
	return Options{
		Algo:       Greedy,
		TourLength: DefaultTourLength,
		Genetic:    DefaultGeneticOptions(),
	}
}
