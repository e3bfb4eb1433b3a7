// Package tsp - GreedySolver.
//
// Builds a tour one position at a time: at position i it appends the unvisited
// city with the largest marginal gain
//
//	Revenue(x, i) − Cost(prev, x, i) [− SecondOrderCost(preprev, prev, x, i)]
//
// scanning candidates in ascending index order, so ties go to the lowest index.
//
// Complexity: O(n) per position, O(n·L) overall; O(n + L) memory.
package tsp

// GreedySolver is a deterministic Solver emitting one Progress per position.
type GreedySolver struct {
	inst    Instance
	so      SecondOrderInstance
	hasSO   bool
	n       int
	length  int
	tour    []int
	visited []bool
	sw      stopwatch
	done    bool
}

var _ Solver = (*GreedySolver)(nil)

// NewGreedy validates inst and tourLength and returns a ready GreedySolver.
//
// Errors: ErrNilInstance, ErrNoCities, ErrTourLength, ErrTourTooLong.
func NewGreedy(inst Instance, tourLength int) (*GreedySolver, error) {
	n, err := validateInstance(inst)
	if err != nil {
		return nil, err
	}
	if err = validateTourLength(tourLength, n, true); err != nil {
		return nil, err
	}
	so, hasSO := secondOrder(inst)

	return &GreedySolver{
		inst:    inst,
		so:      so,
		hasSO:   hasSO,
		n:       n,
		length:  tourLength,
		tour:    make([]int, 0, tourLength),
		visited: make([]bool, n),
	}, nil
}

// Name returns "greedy".
func (g *GreedySolver) Name() string { return Greedy.String() }

// Next places one more city.
func (g *GreedySolver) Next() (Progress, bool) {
	if g.done {
		return Progress{}, false
	}
	g.sw.touch()

	var (
		step    = len(g.tour)
		prev    = NoCity
		preprev = NoCity
		best    = NoCity
		bestG   float64
		gain    float64
		x       int
	)
	if step > 0 {
		prev = g.tour[step-1]
	}
	if step > 1 {
		preprev = g.tour[step-2]
	}
	for x = 0; x < g.n; x++ {
		if g.visited[x] {
			continue
		}
		gain = stepGain(g.inst, g.so, g.hasSO, preprev, prev, x, step)
		if best == NoCity || gain > bestG {
			best, bestG = x, gain
		}
	}
	g.tour = append(g.tour, best)
	g.visited[best] = true
	g.done = len(g.tour) == g.length

	score := Score(g.inst, g.tour)
	return Progress{
		Step:         len(g.tour),
		Current:      cloneTour(g.tour),
		CurrentScore: score,
		Best:         cloneTour(g.tour),
		BestScore:    score,
		Elapsed:      g.sw.elapsed(),
		Fraction:     float64(len(g.tour)) / float64(g.length),
		Final:        g.done,
	}, true
}
