// Package tsp - the Solver contract and the unified dispatcher.
//
// Every strategy is an explicit state machine: Next performs exactly one unit
// of work (one greedy position, one brute-force candidate, one genetic
// generation) and returns its Progress. The record with Final == true is the
// last one; every later call returns ok == false. A Solver cannot be rewound;
// construct a new one to restart.
//
// Cancellation is cooperative: stop calling Next. Solvers own no goroutines,
// locks or external resources, so an abandoned Solver is simply garbage.
package tsp

import (
	"fmt"
	"iter"
	"time"
)

// Solver is the polymorphic search contract shared by Greedy, BruteForce and Genetic.
type Solver interface {
	// Name returns the canonical algorithm name (see Algorithm.String).
	Name() string

	// Next performs one unit of work. ok is false once the terminal record
	// has already been returned.
	Next() (p Progress, ok bool)
}

// All adapts s to a range-over-func sequence that ends after the terminal record.
// Breaking out of the loop leaves s resumable at the following unit of work.
func All(s Solver) iter.Seq[Progress] {
	return func(yield func(Progress) bool) {
		for {
			p, ok := s.Next()
			if !ok || !yield(p) {
				return
			}
		}
	}
}

// Final drives s to completion and returns only the terminal record,
// without retaining intermediate records. If s was already exhausted the
// zero Progress is returned.
func Final(s Solver) Progress {
	var last Progress
	for {
		p, ok := s.Next()
		if !ok {
			return last
		}
		last = p
	}
}

// Collect drives s to completion and returns every record in order.
func Collect(s Solver) []Progress {
	var out []Progress
	for p := range All(s) {
		out = append(out, p)
	}
	return out
}

// Algorithm selects a strategy in New.
type Algorithm int

const (
	// Greedy builds a tour position by position (deterministic).
	Greedy Algorithm = iota
	// BruteForce enumerates NumCities^TourLength candidates (deterministic).
	BruteForce
	// Genetic runs a seeded population search.
	Genetic
)

var algorithmNames = [...]string{
	Greedy:     "greedy",
	BruteForce: "brute_force",
	Genetic:    "genetic",
}

// String returns the canonical algorithm name.
func (a Algorithm) String() string {
	if a < 0 || int(a) >= len(algorithmNames) {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return algorithmNames[a]
}

// ParseAlgorithm maps a canonical name back to its Algorithm.
func ParseAlgorithm(name string) (Algorithm, error) {
	for i, s := range algorithmNames {
		if s == name {
			return Algorithm(i), nil
		}
	}
	return 0, fmt.Errorf("algorithm %q: %w", name, ErrUnsupportedAlgorithm)
}

// New validates opts and constructs the requested Solver over inst.
//
// Errors: the construction errors of NewGreedy, NewBruteForce and NewGenetic,
// or ErrUnsupportedAlgorithm.
func New(inst Instance, opts Options) (Solver, error) {
	switch opts.Algo {
	case Greedy:
		return NewGreedy(inst, opts.TourLength)
	case BruteForce:
		return NewBruteForce(inst, opts.TourLength, opts.MaxCandidates)
	case Genetic:
		return NewGenetic(inst, opts.TourLength, opts.Genetic)
	default:
		return nil, fmt.Errorf("%v: %w", opts.Algo, ErrUnsupportedAlgorithm)
	}
}

// stopwatch measures elapsed time from the first unit of work.
type stopwatch struct {
	start   time.Time
	started bool
}

// touch starts the stopwatch on first use.
func (w *stopwatch) touch() {
	if !w.started {
		w.start = time.Now()
		w.started = true
	}
}

func (w *stopwatch) elapsed() time.Duration {
	if !w.started {
		return 0
	}
	return time.Since(w.start)
}

// cloneTour returns an independent copy of t (nil-safe).
func cloneTour(t []int) []int {
	if t == nil {
		return nil
	}
	return append(make([]int, 0, len(t)), t...)
}
