package tsp

import (
	"errors"
	"time"
)

// NoCity is the "no previous city" sentinel passed as prev (and preprev) to
// Instance.Cost before the first city of a tour has been placed.
const NoCity = -1

// Sentinel errors returned by tsp constructors and helpers. Constructors wrap
// them with context via fmt.Errorf("%w: ..."); branch with errors.Is.
var (
	// ErrNilInstance indicates that a nil Instance was passed to a solver.
	ErrNilInstance = errors.New("tsp: instance is nil")

	// ErrNoCities indicates that the instance reports fewer than one city.
	ErrNoCities = errors.New("tsp: instance must have at least one city")

	// ErrTourLength indicates a tour length below 1 or a tour whose length
	// differs from the expected one.
	ErrTourLength = errors.New("tsp: invalid tour length")

	// ErrTourTooLong indicates tourLength > NumCities for a solver that
	// requires distinct cities.
	ErrTourTooLong = errors.New("tsp: tour length exceeds number of cities")

	// ErrCityOutOfRange indicates a tour entry outside [0, NumCities).
	ErrCityOutOfRange = errors.New("tsp: city index out of range")

	// ErrDimensionMismatch indicates cost/revenue tables whose shapes do not
	// agree with each other.
	ErrDimensionMismatch = errors.New("tsp: dimension mismatch")

	// ErrNonFinite indicates a NaN or ±Inf cost or revenue entry.
	ErrNonFinite = errors.New("tsp: non-finite cost or revenue")

	// ErrPopulationSize indicates a genetic population size below 1.
	ErrPopulationSize = errors.New("tsp: population size must be >= 1")

	// ErrMutationProbability indicates a mutation probability outside [0, 1].
	ErrMutationProbability = errors.New("tsp: mutation probability must lie in [0, 1]")

	// ErrElitismFactor indicates elitism factor < 0 or >= population size.
	ErrElitismFactor = errors.New("tsp: elitism factor must satisfy 0 <= k < population size")

	// ErrStepsThreshold indicates a non-positive generation budget.
	ErrStepsThreshold = errors.New("tsp: steps threshold must be > 0")

	// ErrScoreThreshold indicates a NaN stopping score.
	ErrScoreThreshold = errors.New("tsp: score threshold must not be NaN")

	// ErrTooManyCandidates indicates that NumCities^tourLength overflows or
	// exceeds the configured brute-force budget.
	ErrTooManyCandidates = errors.New("tsp: too many brute-force candidates")

	// ErrUnsupportedAlgorithm indicates an unknown Algorithm value or name.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrUnknownStrategy indicates an unknown partition or city-selection name.
	ErrUnknownStrategy = errors.New("tsp: unknown strategy")
)

// Progress is the record a Solver emits after every unit of work (one greedy
// position, one brute-force candidate or one genetic generation).
//
// Current and Best are independent copies; consumers may keep them.
type Progress struct {
	// Step is the 1-based count of units of work performed so far.
	Step int

	// Current is the tour produced by this unit of work
	// (greedy prefix, examined candidate, or the generation's best).
	Current []int

	// CurrentScore is Score(Current).
	CurrentScore float64

	// Best is the best tour seen so far. BestScore never decreases.
	Best []int

	// BestScore is Score(Best).
	BestScore float64

	// Elapsed is the wall-clock time since the first Next call.
	Elapsed time.Duration

	// Fraction is the completed share of the run in [0, 1].
	Fraction float64

	// Final marks the terminal record; Next reports ok=false afterwards.
	Final bool
}
