// SPDX-License-Identifier: MIT
// Package: tourplan/builder
//
// options.go - functional options for RandomTable.
//
// Contract:
//   - Option constructors validate and panic on meaningless inputs.
//   - Later options override earlier ones.

package builder

import "math/rand"

// Option customizes a RandomTable call.
type Option func(*config)

// WithRand provides an explicit RNG. Panics on nil.
func WithRand(r *rand.Rand) Option {
	if r == nil {
		panic("builder: WithRand(nil)")
	}
	return func(c *config) {
		c.rng = r
	}
}

// WithSeed creates a new deterministic *rand.Rand from seed.
func WithSeed(seed int64) Option {
	return func(c *config) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithMaxCost sets the transfer-cost ceiling and derives the floor
// max(1, maxCost/10). Panics if maxCost < 1.
func WithMaxCost(maxCost int) Option {
	if maxCost < 1 {
		panic("builder: WithMaxCost(maxCost<1)")
	}
	return func(c *config) {
		c.minCost = max(1, maxCost/10)
		c.maxCost = maxCost
	}
}

// WithCostRange sets the transfer-cost range [lo, hi) explicitly.
// lo > hi is reported by RandomTable as ErrInvalidRange.
func WithCostRange(lo, hi int) Option {
	return func(c *config) {
		c.minCost, c.maxCost = lo, hi
	}
}

// WithRevenueRange sets the revenue range [lo, hi).
// lo > hi is reported by RandomTable as ErrInvalidRange.
func WithRevenueRange(lo, hi int) Option {
	return func(c *config) {
		c.minRev, c.maxRev = lo, hi
	}
}

// WithHorizon sets the number of revenue steps. Panics if h < 1.
func WithHorizon(h int) Option {
	if h < 1 {
		panic("builder: WithHorizon(h<1)")
	}
	return func(c *config) {
		c.horizon = h
	}
}
