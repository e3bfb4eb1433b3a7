// SPDX-License-Identifier: MIT
// Package: tourplan/builder
//
// random_table.go - RandomTable(numCities, opts...).
//
// Determinism:
//   - Draw order is fixed: departure costs (city asc), transfer costs
//     (row asc, column asc, diagonal skipped), revenues (city asc, step asc).
//   - Same seed and options ⇒ identical table.
//
// Complexity: O(n² + n·H) time and space.

package builder

import (
	"fmt"

	"github.com/katalvlaran/tourplan/tsp"
)

const methodRandomTable = "RandomTable"

// RandomTable samples a tour-planning Table over numCities cities.
//
// Errors: ErrTooFewCities, ErrInvalidRange, ErrNeedRandSource.
func RandomTable(numCities int, opts ...Option) (*tsp.Table, error) {
	cfg := newConfig(opts...)
	if numCities < 1 {
		return nil, fmt.Errorf("%s: n=%d < 1: %w", methodRandomTable, numCities, ErrTooFewCities)
	}
	if cfg.minCost > cfg.maxCost {
		return nil, fmt.Errorf("%s: cost range [%d,%d): %w", methodRandomTable, cfg.minCost, cfg.maxCost, ErrInvalidRange)
	}
	if cfg.minRev > cfg.maxRev {
		return nil, fmt.Errorf("%s: revenue range [%d,%d): %w", methodRandomTable, cfg.minRev, cfg.maxRev, ErrInvalidRange)
	}
	if cfg.rng == nil {
		return nil, fmt.Errorf("%s: %w", methodRandomTable, ErrNeedRandSource)
	}
	horizon := cfg.horizon
	if horizon == 0 {
		horizon = numCities
	}

	var (
		departure = make([]float64, numCities)
		transfer  = make([][]float64, numCities)
		revenue   = make([][]float64, numCities)
		i, j      int
	)
	for i = range departure {
		departure[i] = cfg.draw(cfg.minCost, cfg.maxCost)
	}
	for i = range transfer {
		transfer[i] = make([]float64, numCities)
		for j = range transfer[i] {
			if i != j {
				transfer[i][j] = cfg.draw(cfg.minCost, cfg.maxCost)
			}
		}
	}
	for i = range revenue {
		revenue[i] = make([]float64, horizon)
		for j = range revenue[i] {
			revenue[i][j] = cfg.draw(cfg.minRev, cfg.maxRev)
		}
	}

	tbl, err := tsp.NewTableFromSlices(departure, transfer, revenue)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", methodRandomTable, err)
	}
	return tbl, nil
}
