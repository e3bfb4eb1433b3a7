// Package tsp - problem instances.
//
// An Instance describes a profitable-tour problem: how many cities exist, what
// it costs to move into a city at a given tour position, and what revenue a
// city yields at that position. Instances are read-only after construction and
// may be shared by concurrently running solvers.
//
// Provided implementations:
//   - Table: cost and revenue tables backed by *matrix.Dense (validated once).
//   - Funcs: plain function fields, convenient for tests and generated data.
package tsp

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/tourplan/matrix"
)

// Instance is the immutable description of a profitable-tour problem.
//
// Contracts:
//   - NumCities() ≥ 1; the visitable cities are 0..NumCities()-1.
//   - Cost and Revenue are pure: same arguments ⇒ same result.
//   - prev == NoCity denotes "no previous city" (step 0).
type Instance interface {
	NumCities() int
	Cost(prev, city, step int) float64
	Revenue(city, step int) float64
}

// SecondOrderInstance is the extended variant that additionally charges a
// cost depending on the city visited two positions earlier. preprev and prev
// may be NoCity at the first two steps.
type SecondOrderInstance interface {
	Instance
	SecondOrderCost(preprev, prev, city, step int) float64
}

// secondOrder returns the second-order view of inst, if it has one.
func secondOrder(inst Instance) (SecondOrderInstance, bool) {
	so, ok := inst.(SecondOrderInstance)
	return so, ok
}

// Table is an Instance backed by dense cost and revenue tables.
//
// Layout:
//   - costs:    (n+1)×n. Row 0 is the departure row (prev == NoCity);
//     row p+1 holds the costs of moving from city p. Costs do not depend on step.
//   - revenues: n×H. Column s holds the revenue of every city at step s.
//     Steps at or beyond the horizon H reuse the last column.
type Table struct {
	n        int
	costs    *matrix.Dense
	revenues *matrix.Dense
}

var _ Instance = (*Table)(nil)

// NewTable validates the tables and returns a Table that owns private clones
// of them (later mutation of the arguments does not affect the instance).
//
// Errors:
//   - ErrNoCities if revenues has no rows.
//   - ErrDimensionMismatch if costs is not (n+1)×n for n = revenues.Rows().
//   - ErrNonFinite if any entry is NaN or ±Inf.
//
// Complexity: O(n² + n·H).
func NewTable(costs, revenues *matrix.Dense) (*Table, error) {
	if revenues == nil || revenues.Rows() < 1 {
		return nil, ErrNoCities
	}
	if costs == nil {
		return nil, fmt.Errorf("nil cost table: %w", ErrDimensionMismatch)
	}
	n := revenues.Rows()
	if costs.Rows() != n+1 || costs.Cols() != n {
		return nil, fmt.Errorf("cost table is %dx%d, want %dx%d: %w",
			costs.Rows(), costs.Cols(), n+1, n, ErrDimensionMismatch)
	}
	if err := matrix.ValidateFinite(costs); err != nil {
		return nil, fmt.Errorf("costs: %w: %w", ErrNonFinite, err)
	}
	if err := matrix.ValidateFinite(revenues); err != nil {
		return nil, fmt.Errorf("revenues: %w: %w", ErrNonFinite, err)
	}

	return &Table{
		n:        n,
		costs:    costs.Clone().(*matrix.Dense),
		revenues: revenues.Clone().(*matrix.Dense),
	}, nil
}

// NewTableFromSlices is NewTable over plain slices: departure is the cost of
// entering each city from NoCity, transfer[p][c] the cost of moving p→c, and
// revenue[c][s] the revenue of city c at step s.
func NewTableFromSlices(departure []float64, transfer [][]float64, revenue [][]float64) (*Table, error) {
	n := len(revenue)
	if n == 0 {
		return nil, ErrNoCities
	}
	if len(departure) != n || len(transfer) != n {
		return nil, fmt.Errorf("departure has %d entries and transfer %d rows, want %d: %w",
			len(departure), len(transfer), n, ErrDimensionMismatch)
	}

	rows := make([][]float64, 0, n+1)
	rows = append(rows, departure)
	rows = append(rows, transfer...)
	costs, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		return nil, fmt.Errorf("costs: %w: %w", ErrDimensionMismatch, err)
	}
	revenues, err := matrix.NewDenseFromRows(revenue)
	if err != nil {
		if errors.Is(err, matrix.ErrInvalidDimensions) {
			return nil, fmt.Errorf("revenues: %w: %w", ErrDimensionMismatch, err)
		}
		return nil, err
	}

	return NewTable(costs, revenues)
}

// NumCities returns n.
func (t *Table) NumCities() int { return t.n }

// Horizon returns the number of revenue columns (distinct steps).
func (t *Table) Horizon() int { return t.revenues.Cols() }

// Cost returns the transfer cost prev→city. The step is ignored.
func (t *Table) Cost(prev, city, _ int) float64 {
	return t.costs.Get(prev+1, city)
}

// Revenue returns the revenue of city at step, clamping step to the horizon.
func (t *Table) Revenue(city, step int) float64 {
	if last := t.revenues.Cols() - 1; step > last {
		step = last
	}
	return t.revenues.Get(city, step)
}

// Funcs is a function-backed Instance. CostFn and RevenueFn are required;
// SecondOrderFn is optional (nil ⇒ the second-order term is zero).
type Funcs struct {
	Cities        int
	CostFn        func(prev, city, step int) float64
	RevenueFn     func(city, step int) float64
	SecondOrderFn func(preprev, prev, city, step int) float64
}

var _ SecondOrderInstance = Funcs{}

// NumCities returns Cities.
func (f Funcs) NumCities() int { return f.Cities }

// Cost delegates to CostFn.
func (f Funcs) Cost(prev, city, step int) float64 { return f.CostFn(prev, city, step) }

// Revenue delegates to RevenueFn.
func (f Funcs) Revenue(city, step int) float64 { return f.RevenueFn(city, step) }

// SecondOrderCost delegates to SecondOrderFn, or returns 0 when it is nil.
func (f Funcs) SecondOrderCost(preprev, prev, city, step int) float64 {
	if f.SecondOrderFn == nil {
		return 0
	}
	return f.SecondOrderFn(preprev, prev, city, step)
}
