// Package tsp plans profitable tours: choose a fixed-length sequence of cities
// (repeats allowed) that maximizes revenue collected minus transfer cost paid.
//
// A problem is an Instance (Table or Funcs). Score evaluates a tour with
// revenue-once semantics: a city pays its revenue on its first visit only,
// transfer costs are charged on every step.
//
// Three interchangeable strategies implement the incremental Solver contract:
//
//   - GreedySolver:     distinct cities, best marginal gain per position; O(n·L).
//   - BruteForceSolver: exhaustive over n^L candidates, exact; guarded by a budget.
//   - GeneticSolver:    seeded population search with elitism, partition
//     crossover and frequency-aware mutation.
//
// Each call to Next performs one unit of work and returns a Progress record;
// the record with Final set ends the stream. Use All to range over records,
// Final to keep only the result, or New to pick a strategy by Algorithm.
//
// Determinism: Greedy and BruteForce are pure functions of their input;
// Genetic reproduces its stream exactly for a fixed Seed (or injected Rand).
package tsp
