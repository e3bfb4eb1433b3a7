// Package tsp - mutation city-selection strategies.
package tsp

import (
	"fmt"
	"math/rand"
)

// CitySelector picks the replacement city written into a mutated position.
// population is the generation being mutated; implementations must not
// modify it and must return a city in [0, numCities).
type CitySelector interface {
	SelectCity(population [][]int, numCities int, rng *rand.Rand) int
}

// CitySelectorFunc adapts a plain function to CitySelector.
type CitySelectorFunc func(population [][]int, numCities int, rng *rand.Rand) int

// SelectCity calls f(population, numCities, rng).
func (f CitySelectorFunc) SelectCity(population [][]int, numCities int, rng *rand.Rand) int {
	return f(population, numCities, rng)
}

var (
	// InverseFrequency favours cities that are rare in the population:
	// p = softmax(1 − count(c)/slots) where slots is the total gene count.
	InverseFrequency CitySelector = CitySelectorFunc(selectInverseFrequency)

	// UniformCity ignores the population and draws uniformly from [0, numCities).
	UniformCity CitySelector = CitySelectorFunc(selectUniform)
)

func selectInverseFrequency(population [][]int, numCities int, rng *rand.Rand) int {
	if numCities <= 1 {
		return 0
	}
	var (
		counts = make([]float64, numCities)
		slots  int
		tour   []int
		c      int
	)
	for _, tour = range population {
		for _, c = range tour {
			if c >= 0 && c < numCities {
				counts[c]++
			}
		}
		slots += len(tour)
	}
	if slots == 0 {
		return rng.Intn(numCities)
	}
	for c = range counts {
		counts[c] = 1 - counts[c]/float64(slots)
	}
	// In place: counts becomes the weights, then their running sums.
	softmaxInto(counts, counts)
	cumulativeInto(counts, counts)

	return sampleIndex(rng, counts)
}

func selectUniform(_ [][]int, numCities int, rng *rand.Rand) int {
	if numCities <= 1 {
		return 0
	}
	return rng.Intn(numCities)
}

// CitySelectorByName resolves a city-selection strategy by name; "1" maps to
// InverseFrequency for the city_selection_{n} naming of earlier tooling.
func CitySelectorByName(name string) (CitySelector, error) {
	switch name {
	case "inverse_frequency", "1":
		return InverseFrequency, nil
	case "uniform":
		return UniformCity, nil
	default:
		return nil, fmt.Errorf("city selection %q: %w", name, ErrUnknownStrategy)
	}
}
