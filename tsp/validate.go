// Package tsp - validation utilities shared by all solvers.
//
// Configuration errors fail fast at construction time with a wrapped sentinel
// from types.go; nothing is silently clamped.
//
// Design principles:
//   - Deterministic, side-effect free functions.
//   - No logging, no panics on user input.
package tsp

import (
	"fmt"
	"math"
)

// validateInstance returns inst.NumCities() after checking that inst is usable.
func validateInstance(inst Instance) (int, error) {
	if inst == nil {
		return 0, ErrNilInstance
	}
	if t, ok := inst.(*Table); ok && t == nil {
		return 0, ErrNilInstance
	}
	if f, ok := inst.(Funcs); ok && (f.CostFn == nil || f.RevenueFn == nil) {
		return 0, fmt.Errorf("funcs instance without cost or revenue function: %w", ErrNilInstance)
	}
	n := inst.NumCities()
	if n < 1 {
		return 0, fmt.Errorf("num cities = %d: %w", n, ErrNoCities)
	}

	return n, nil
}

// validateTourLength checks 1 ≤ length, and length ≤ n when unique is set.
func validateTourLength(length, n int, unique bool) error {
	if length < 1 {
		return fmt.Errorf("tour length = %d: %w", length, ErrTourLength)
	}
	if unique && length > n {
		return fmt.Errorf("tour length %d > %d cities: %w", length, n, ErrTourTooLong)
	}

	return nil
}

// validateGeneticOptions checks every numeric hyperparameter.
func validateGeneticOptions(opts GeneticOptions) error {
	if opts.PopulationSize < 1 {
		return fmt.Errorf("population size = %d: %w", opts.PopulationSize, ErrPopulationSize)
	}
	if math.IsNaN(opts.MutationProbability) || opts.MutationProbability < 0 || opts.MutationProbability > 1 {
		return fmt.Errorf("mutation probability = %v: %w", opts.MutationProbability, ErrMutationProbability)
	}
	if opts.ElitismFactor < 0 || opts.ElitismFactor >= opts.PopulationSize {
		return fmt.Errorf("elitism factor = %d with population %d: %w",
			opts.ElitismFactor, opts.PopulationSize, ErrElitismFactor)
	}
	if opts.StepsThreshold <= 0 {
		return fmt.Errorf("steps threshold = %d: %w", opts.StepsThreshold, ErrStepsThreshold)
	}
	if math.IsNaN(opts.ScoreThreshold) {
		return ErrScoreThreshold
	}

	return nil
}

// ValidateTour checks that tour has exactly length entries, each in [0, n).
//
// Complexity: O(len(tour)).
func ValidateTour(tour []int, n, length int) error {
	if len(tour) != length {
		return fmt.Errorf("tour has %d entries, want %d: %w", len(tour), length, ErrTourLength)
	}
	for i, c := range tour {
		if c < 0 || c >= n {
			return fmt.Errorf("tour[%d] = %d not in [0,%d): %w", i, c, n, ErrCityOutOfRange)
		}
	}

	return nil
}
