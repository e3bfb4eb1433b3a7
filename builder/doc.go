// SPDX-License-Identifier: MIT
// Package builder generates reproducible random tour-planning instances.
//
// RandomTable mirrors the dataset generator the engine was tuned against:
//   - Staying in a city costs 0; every other transfer, and every departure
//     from the start, costs a uniform integer in [max(1, maxCost/10), maxCost).
//   - Every city earns a uniform integer revenue in [minRev, maxRev) at each
//     step of the horizon (default: one step per city).
//
// Configuration uses functional options. Option constructors panic on
// meaningless values; RandomTable itself only returns sentinel errors.
// Randomness is explicit: pass WithSeed or WithRand, otherwise
// ErrNeedRandSource is returned.
package builder
