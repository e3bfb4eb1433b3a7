// SPDX-License-Identifier: MIT
// Package: tourplan/builder
//
// errors.go - sentinel errors for the builder package.
//
// Callers branch with errors.Is; constructors attach context with %w.

package builder

import "errors"

// ErrTooFewCities indicates numCities < 1.
var ErrTooFewCities = errors.New("builder: parameter too small")

// ErrInvalidRange indicates a cost or revenue range with lo > hi.
var ErrInvalidRange = errors.New("builder: invalid range")

// ErrNeedRandSource indicates that neither WithSeed nor WithRand was given.
var ErrNeedRandSource = errors.New("builder: rng is required")
