// Package tsp - tour scoring shared by every solver.
//
// A tour's score is the cumulative revenue minus cost over its positions:
//
//	score = Σ_i [ rev_i − Cost(prev, city_i, i) − SecondOrderCost(preprev, prev, city_i, i) ]
//
// where rev_i = Revenue(city_i, i) on the first occurrence of city_i and 0 on
// every repeat ("revenue-once"). Transfer costs are charged on every step,
// repeats included. The empty tour scores 0.
//
// Design:
//   - Score allocates nothing: repeats are found by scanning the prefix.
//   - scorer (genetic hot path) keeps an epoch-stamped slice so each call is
//     O(len(tour)) without clearing or reallocating a visited set.
//   - Both paths perform the same floating-point operations in the same order,
//     so they agree bit-for-bit.
package tsp

// Score returns the total score of tour under inst.
// Entries must lie in [0, inst.NumCities()); see ValidateTour.
//
// Complexity: O(L²) time worst case for L = len(tour), O(1) extra space.
func Score(inst Instance, tour []int) float64 {
	var (
		so, hasSO = secondOrder(inst)
		prev      = NoCity
		preprev   = NoCity
		total     float64
		rev       float64
		i         int
		city      int
	)
	for i, city = range tour {
		rev = 0
		if !seenBefore(tour, i) {
			rev = inst.Revenue(city, i)
		}
		total += rev - inst.Cost(prev, city, i)
		if hasSO {
			total -= so.SecondOrderCost(preprev, prev, city, i)
		}
		preprev, prev = prev, city
	}

	return total
}

// seenBefore reports whether tour[i] already occurs in tour[:i].
func seenBefore(tour []int, i int) bool {
	var j int
	for j = 0; j < i; j++ {
		if tour[j] == tour[i] {
			return true
		}
	}
	return false
}

// scorer is a reusable scoring context for one instance. It is not safe for
// concurrent use; each solver owns its own.
type scorer struct {
	inst  Instance
	so    SecondOrderInstance
	hasSO bool
	stamp []uint32 // stamp[c]==epoch ⇔ city c visited in the current call
	epoch uint32
}

func newScorer(inst Instance) *scorer {
	so, ok := secondOrder(inst)
	return &scorer{
		inst:  inst,
		so:    so,
		hasSO: ok,
		stamp: make([]uint32, inst.NumCities()),
	}
}

// score is Score(s.inst, tour) in O(L) time.
func (s *scorer) score(tour []int) float64 {
	s.epoch++
	if s.epoch == 0 { // wrapped: reset stamps once every 2^32 calls
		clear(s.stamp)
		s.epoch = 1
	}
	var (
		prev    = NoCity
		preprev = NoCity
		total   float64
		rev     float64
		i       int
		city    int
	)
	for i, city = range tour {
		rev = 0
		if s.stamp[city] != s.epoch {
			rev = s.inst.Revenue(city, i)
			s.stamp[city] = s.epoch
		}
		total += rev - s.inst.Cost(prev, city, i)
		if s.hasSO {
			total -= s.so.SecondOrderCost(preprev, prev, city, i)
		}
		preprev, prev = prev, city
	}

	return total
}

// stepGain is the marginal score of placing city at position step after prev
// and preprev, assuming city has not been visited yet. Greedy uses it to rank
// candidates.
func stepGain(inst Instance, so SecondOrderInstance, hasSO bool, preprev, prev, city, step int) float64 {
	g := inst.Revenue(city, step) - inst.Cost(prev, city, step)
	if hasSO {
		g -= so.SecondOrderCost(preprev, prev, city, step)
	}
	return g
}
