package genetic

import (
	"math/rand"
	"sort"
)

// RouletteSelect returns the index of the first individual whose cumulative
// fitness reaches a uniform draw in [0, Σfitness). Floating-point shortfall
// of the running sum falls back to the last individual.
//
// fits must be non-empty with positive finite entries.
//
// Complexity: O(P).
func RouletteSelect(fits []float64, rng *rand.Rand) int {
	var (
		total float64
		acc   float64
		i     int
	)
	for i = range fits {
		total += fits[i]
	}
	r := rng.Float64() * total
	for i = range fits {
		acc += fits[i]
		if acc >= r {
			return i
		}
	}

	return len(fits) - 1
}

// rankTable caches the ascending-fitness order of one generation so repeated
// rank draws cost O(P) instead of O(P log P).
type rankTable struct {
	order []int   // order[k] is the individual holding rank k+1
	total float64 // Σ ranks = P(P+1)/2
}

// newRankTable stable-sorts individuals ascending by fitness; equal fitness
// keeps population order.
//
// Complexity: O(P log P).
func newRankTable(fits []float64) *rankTable {
	var (
		p     = len(fits)
		order = make([]int, p)
		i     int
	)
	for i = range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool { return fits[order[a]] < fits[order[b]] })

	return &rankTable{order: order, total: float64(p*(p+1)) / 2}
}

// pick draws r ∈ [0, Σranks) and returns the first individual in sorted
// order whose cumulative rank reaches r.
func (rt *rankTable) pick(rng *rand.Rand) int {
	var (
		r   = rng.Float64() * rt.total
		acc float64
		k   int
	)
	for k = range rt.order {
		acc += float64(k + 1)
		if acc >= r {
			return rt.order[k]
		}
	}

	return rt.order[len(rt.order)-1]
}

// RankSelect is the single-draw form of rank selection.
//
// Complexity: O(P log P).
func RankSelect(fits []float64, rng *rand.Rand) int {
	return newRankTable(fits).pick(rng)
}

// selector binds the configured strategy to one generation's fitness values.
func selector(s Selection, fits []float64) func(*rand.Rand) int {
	if s == Rank {
		rt := newRankTable(fits)

		return rt.pick
	}

	return func(rng *rand.Rand) int { return RouletteSelect(fits, rng) }
}
