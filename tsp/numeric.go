// Package tsp - numeric helpers for selection weights.
//
// All helpers are NaN-safe: degenerate inputs (empty, all-equal, zero scale,
// or any non-finite value) yield a uniform distribution instead of
// propagating NaN/Inf into sampling.
package tsp

import "math"

// uniformInto fills dst with 1/len(dst).
func uniformInto(dst []float64) {
	if len(dst) == 0 {
		return
	}
	u := 1 / float64(len(dst))
	for i := range dst {
		dst[i] = u
	}
}

// softmaxInto writes softmax(x) into dst using the max-subtraction trick.
// Non-finite inputs (or a non-finite normalizer) yield a uniform distribution.
//
// Complexity: O(n).
func softmaxInto(dst, x []float64) {
	if len(x) == 0 {
		return
	}
	var (
		m   = math.Inf(-1)
		sum float64
		i   int
	)
	for i = range x {
		if math.IsNaN(x[i]) || math.IsInf(x[i], 0) {
			uniformInto(dst)
			return
		}
		if x[i] > m {
			m = x[i]
		}
	}
	for i = range x {
		dst[i] = math.Exp(x[i] - m)
		sum += dst[i]
	}
	if sum <= 0 || math.IsInf(sum, 0) || math.IsNaN(sum) {
		uniformInto(dst)
		return
	}
	for i = range dst {
		dst[i] /= sum
	}
}

// selectionWeightsInto turns raw scores into a sampling distribution:
// scores are scaled by max|score| into [-1, 1] and passed through softmax.
// Scaling by the magnitude (rather than by the signed maximum) keeps the
// ranking intact when every score is negative. A zero scale means all scores
// are zero and the result is uniform.
//
// scratch must have len(scores); it may alias nothing else.
func selectionWeightsInto(dst, scratch, scores []float64) {
	var (
		scale float64
		a     float64
		i     int
	)
	for i = range scores {
		if math.IsNaN(scores[i]) || math.IsInf(scores[i], 0) {
			uniformInto(dst)
			return
		}
		if a = math.Abs(scores[i]); a > scale {
			scale = a
		}
	}
	if scale == 0 {
		uniformInto(dst)
		return
	}
	for i = range scores {
		scratch[i] = scores[i] / scale
	}
	softmaxInto(dst, scratch)
}

// SelectionWeights is the exported, allocating form of the genetic selection
// distribution (see GeneticSolver). It is exposed for diagnostics and tests.
func SelectionWeights(scores []float64) []float64 {
	dst := make([]float64, len(scores))
	selectionWeightsInto(dst, make([]float64, len(scores)), scores)
	return dst
}

// Softmax returns the numerically stable softmax of x (uniform on degenerate input).
func Softmax(x []float64) []float64 {
	dst := make([]float64, len(x))
	softmaxInto(dst, x)
	return dst
}
