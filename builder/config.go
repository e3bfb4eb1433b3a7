// SPDX-License-Identifier: MIT
// Package: tourplan/builder
//
// config.go - internal configuration and defaults.
//
// Defaults:
//   - cost range    = [5, 50)   (maxCost 50, floor maxCost/10)
//   - revenue range = [50, 300)
//   - horizon       = numCities (0 means "resolve from numCities")
//   - rng           = nil       (RandomTable fails without one)

package builder

import "math/rand"

const (
	defaultMaxCost = 50
	defaultMinRev  = 50
	defaultMaxRev  = 300
)

type config struct {
	rng *rand.Rand

	minCost int
	maxCost int
	minRev  int
	maxRev  int
	horizon int
}

func newConfig(opts ...Option) config {
	cfg := config{
		minCost: max(1, defaultMaxCost/10),
		maxCost: defaultMaxCost,
		minRev:  defaultMinRev,
		maxRev:  defaultMaxRev,
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// draw returns a uniform integer in [lo, hi), or lo when the range is empty.
func (c config) draw(lo, hi int) float64 {
	if hi <= lo {
		return float64(lo)
	}
	return float64(lo + c.rng.Intn(hi-lo))
}
