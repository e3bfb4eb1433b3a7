// Package tsp - GeneticSolver.
//
// Population search over tours of fixed length with repetition allowed.
// One call to Next evolves exactly one generation:
//
//  1. Selection weights from the current scores (see selectionWeightsInto).
//  2. The k best individuals (stable ranking by score) are copied unchanged
//     to the tail of the next population; k is raised by one when k+P is odd.
//  3. (P−k)/2 parent pairs are drawn with replacement by weight and combined
//     by the Partitioner into two children each.
//  4. Every child mutates with probability p: one uniform position takes the
//     city chosen by the CitySelector over the new population. Elites never mutate.
//  5. The new population is scored and replaces the current one.
//
// The run ends after StepsThreshold generations, or earlier as soon as a
// generation's best score reaches ScoreThreshold.
//
// Memory: two P×L populations are allocated once and swapped every generation.
package tsp

import (
	"cmp"
	"math/rand"
	"slices"
)

// GeneticSolver is the seeded stochastic Solver. Same options and seed ⇒
// identical Progress stream.
type GeneticSolver struct {
	sc        *scorer
	rng       *rand.Rand
	partition Partitioner
	selector  CitySelector
	n         int
	length    int
	size      int
	elites    int
	steps     int
	threshold float64
	mutateP   float64

	cur, next [][]int
	scores    []float64
	weights   []float64
	scratch   []float64
	cdf       []float64
	order     []int

	generation int
	best       []int
	bestScore  float64
	sw         stopwatch
	done       bool
}

var _ Solver = (*GeneticSolver)(nil)

// NewGenetic validates inst, tourLength and opts, seeds the initial population
// with i.i.d. uniform genes and scores it.
//
// Errors: ErrNilInstance, ErrNoCities, ErrTourLength, ErrTourTooLong,
// ErrPopulationSize, ErrMutationProbability, ErrElitismFactor,
// ErrStepsThreshold, ErrScoreThreshold.
func NewGenetic(inst Instance, tourLength int, opts GeneticOptions) (*GeneticSolver, error) {
	n, err := validateInstance(inst)
	if err != nil {
		return nil, err
	}
	if err = validateTourLength(tourLength, n, true); err != nil {
		return nil, err
	}
	if err = validateGeneticOptions(opts); err != nil {
		return nil, err
	}
	if opts.Partition == nil {
		opts.Partition = ContinuousPartition
	}
	if opts.CitySelection == nil {
		opts.CitySelection = InverseFrequency
	}

	g := &GeneticSolver{
		sc:        newScorer(inst),
		rng:       resolveRNG(opts.Rand, opts.Seed),
		partition: opts.Partition,
		selector:  opts.CitySelection,
		n:         n,
		length:    tourLength,
		size:      opts.PopulationSize,
		elites:    adjustedElites(opts.ElitismFactor, opts.PopulationSize),
		steps:     opts.StepsThreshold,
		threshold: opts.ScoreThreshold,
		mutateP:   opts.MutationProbability,
		cur:       newPopulation(opts.PopulationSize, tourLength),
		next:      newPopulation(opts.PopulationSize, tourLength),
		scores:    make([]float64, opts.PopulationSize),
		weights:   make([]float64, opts.PopulationSize),
		scratch:   make([]float64, opts.PopulationSize),
		cdf:       make([]float64, opts.PopulationSize),
		order:     make([]int, opts.PopulationSize),
	}
	var i, j int
	for i = range g.cur {
		for j = range g.cur[i] {
			g.cur[i][j] = g.rng.Intn(n)
		}
	}
	g.scoreInto(g.cur)

	return g, nil
}

// adjustedElites makes P−k even so children come in pairs.
func adjustedElites(k, size int) int {
	if (k+size)%2 != 0 {
		return k + 1
	}
	return k
}

// newPopulation allocates size tours of length genes backed by one slice.
func newPopulation(size, length int) [][]int {
	flat := make([]int, size*length)
	pop := make([][]int, size)
	for i := range pop {
		pop[i] = flat[i*length : (i+1)*length : (i+1)*length]
	}
	return pop
}

// Name returns "genetic".
func (g *GeneticSolver) Name() string { return Genetic.String() }

// Generation returns the number of generations evolved so far.
func (g *GeneticSolver) Generation() int { return g.generation }

// EliteCount returns the parity-adjusted number of elites per generation.
func (g *GeneticSolver) EliteCount() int { return g.elites }

// Population returns a deep copy of the current population.
func (g *GeneticSolver) Population() [][]int {
	out := newPopulation(g.size, g.length)
	for i := range g.cur {
		copy(out[i], g.cur[i])
	}
	return out
}

// Scores returns a copy of the current population's scores.
func (g *GeneticSolver) Scores() []float64 { return slices.Clone(g.scores) }

// Next evolves one generation.
func (g *GeneticSolver) Next() (Progress, bool) {
	if g.done {
		return Progress{}, false
	}
	g.sw.touch()

	g.evolve()
	g.cur, g.next = g.next, g.cur
	g.scoreInto(g.cur)
	g.generation++

	genBest := 0
	for i := 1; i < g.size; i++ {
		if g.scores[i] > g.scores[genBest] {
			genBest = i
		}
	}
	genScore := g.scores[genBest]
	if g.best == nil || genScore > g.bestScore {
		g.best = cloneTour(g.cur[genBest])
		g.bestScore = genScore
	}
	g.done = g.generation >= g.steps || genScore >= g.threshold

	fraction := 1.0
	if !g.done {
		fraction = float64(g.generation) / float64(g.steps)
	}
	return Progress{
		Step:         g.generation,
		Current:      cloneTour(g.cur[genBest]),
		CurrentScore: genScore,
		Best:         cloneTour(g.best),
		BestScore:    g.bestScore,
		Elapsed:      g.sw.elapsed(),
		Fraction:     fraction,
		Final:        g.done,
	}, true
}

// evolve fills g.next from g.cur and g.scores.
func (g *GeneticSolver) evolve() {
	selectionWeightsInto(g.weights, g.scratch, g.scores)
	cumulativeInto(g.cdf, g.weights)

	// Elites: best first, at the tail.
	var i, j int
	for i = range g.order {
		g.order[i] = i
	}
	slices.SortStableFunc(g.order, func(a, b int) int {
		return cmp.Compare(g.scores[b], g.scores[a])
	})
	children := g.size - g.elites
	for j = 0; j < g.elites; j++ {
		copy(g.next[children+j], g.cur[g.order[j]])
	}

	for i = 0; i+1 < children; i += 2 {
		x := g.cur[sampleIndex(g.rng, g.cdf)]
		y := g.cur[sampleIndex(g.rng, g.cdf)]
		g.crossover(g.next[i], g.next[i+1], x, y)
	}

	if g.mutateP <= 0 {
		return
	}
	for i = 0; i < children; i++ {
		if g.rng.Float64() >= g.mutateP {
			continue
		}
		pos := g.rng.Intn(g.length)
		city := g.selector.SelectCity(g.next, g.n, g.rng)
		if city >= 0 && city < g.n {
			g.next[i][pos] = city
		}
	}
}

// crossover writes a = x|subset + y|complement and b = y|subset + x|complement.
func (g *GeneticSolver) crossover(a, b, x, y []int) {
	copy(a, x)
	copy(b, y)
	_, complement := g.partition.Partition(g.length, g.rng)
	for _, p := range complement {
		if p < 0 || p >= g.length {
			continue
		}
		a[p], b[p] = y[p], x[p]
	}
}

func (g *GeneticSolver) scoreInto(pop [][]int) {
	for i := range pop {
		g.scores[i] = g.sc.score(pop[i])
	}
}
