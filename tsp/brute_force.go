// Package tsp - BruteForceSolver.
//
// Enumerates every tour in {0..n-1}^L (repetition allowed) in lexicographic
// odometer order, emitting one Progress per candidate. The first candidate
// reaching the maximum score is kept as Best.
//
// Complexity: O(L) per candidate for scoring, n^L candidates; O(n + L) memory.
package tsp

import (
	"fmt"
	"math/bits"
)

// BruteForceSolver is the exhaustive deterministic Solver.
type BruteForceSolver struct {
	sc        *scorer
	n         int
	total     uint64
	examined  uint64
	cand      []int
	best      []int
	bestScore float64
	sw        stopwatch
	done      bool
}

var _ Solver = (*BruteForceSolver)(nil)

// CandidateCount returns n^length and false if that overflows uint64.
func CandidateCount(n, length int) (uint64, bool) {
	if n < 0 || length < 0 {
		return 0, false
	}
	var (
		total uint64 = 1
		hi    uint64
		i     int
	)
	for i = 0; i < length; i++ {
		hi, total = bits.Mul64(total, uint64(n))
		if hi != 0 {
			return 0, false
		}
	}
	return total, true
}

// NewBruteForce validates its arguments and returns a ready BruteForceSolver.
// maxCandidates == 0 disables the budget check (overflow is still rejected).
//
// Errors: ErrNilInstance, ErrNoCities, ErrTourLength, ErrTooManyCandidates.
func NewBruteForce(inst Instance, tourLength int, maxCandidates uint64) (*BruteForceSolver, error) {
	n, err := validateInstance(inst)
	if err != nil {
		return nil, err
	}
	if err = validateTourLength(tourLength, n, false); err != nil {
		return nil, err
	}
	total, ok := CandidateCount(n, tourLength)
	if !ok {
		return nil, fmt.Errorf("%d^%d overflows: %w", n, tourLength, ErrTooManyCandidates)
	}
	if maxCandidates > 0 && total > maxCandidates {
		return nil, fmt.Errorf("%d candidates > budget %d: %w", total, maxCandidates, ErrTooManyCandidates)
	}

	return &BruteForceSolver{
		sc:    newScorer(inst),
		n:     n,
		total: total,
		cand:  make([]int, tourLength),
	}, nil
}

// Name returns "brute_force".
func (b *BruteForceSolver) Name() string { return BruteForce.String() }

// Total returns the number of candidates the solver will examine.
func (b *BruteForceSolver) Total() uint64 { return b.total }

// Next scores the next candidate.
func (b *BruteForceSolver) Next() (Progress, bool) {
	if b.done {
		return Progress{}, false
	}
	b.sw.touch()
	if b.examined > 0 {
		b.advance()
	}

	score := b.sc.score(b.cand)
	b.examined++
	if b.best == nil || score > b.bestScore {
		b.best = cloneTour(b.cand)
		b.bestScore = score
	}
	b.done = b.examined == b.total

	return Progress{
		Step:         int(b.examined),
		Current:      cloneTour(b.cand),
		CurrentScore: score,
		Best:         cloneTour(b.best),
		BestScore:    b.bestScore,
		Elapsed:      b.sw.elapsed(),
		Fraction:     float64(b.examined) / float64(b.total),
		Final:        b.done,
	}, true
}

// advance moves cand to its lexicographic successor (last position fastest).
func (b *BruteForceSolver) advance() {
	var i int
	for i = len(b.cand) - 1; i >= 0; i-- {
		b.cand[i]++
		if b.cand[i] < b.n {
			return
		}
		b.cand[i] = 0
	}
}
