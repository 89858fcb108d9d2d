package genetic

import (
	"math/rand"

	"github.com/katalvlaran/metatsp/tsp"
)

// Every operator in this file returns a fresh tour and never mutates its
// parents. Parents must be permutations of the same city set with n ≥ 3;
// children are permutations of that set.

// OnePointCrossover draws k ∈ [1, n-2], keeps p1[0:k] and fills the rest with
// the cities of p2 in p2's order, skipping those already taken.
//
// Complexity: O(n).
func OnePointCrossover(p1, p2 []int, rng *rand.Rand) []int {
	var (
		n     = len(p1)
		k     = 1 + rng.Intn(n-2)
		child = make([]int, 0, n)
		taken = make(map[int]struct{}, k)
	)
	child = append(child, p1[:k]...)
	for _, c := range p1[:k] {
		taken[c] = struct{}{}
	}
	for _, c := range p2 {
		if _, ok := taken[c]; !ok {
			child = append(child, c)
		}
	}

	return child
}

// TwoPointCrossover draws a < b in [0, n), keeps seg = p1[a:b] and places it
// at position a of p2 with seg's cities removed:
//
//	child = base[0:a] + seg + base[a:]
//
// Complexity: O(n).
func TwoPointCrossover(p1, p2 []int, rng *rand.Rand) []int {
	var n = len(p1)
	a, b := tsp.DistinctPair(n, rng)
	if a > b {
		a, b = b, a
	}

	var (
		seg   = p1[a:b]
		inSeg = make(map[int]struct{}, len(seg))
		base  = make([]int, 0, n-len(seg))
		child = make([]int, 0, n)
	)
	for _, c := range seg {
		inSeg[c] = struct{}{}
	}
	for _, c := range p2 {
		if _, ok := inSeg[c]; !ok {
			base = append(base, c)
		}
	}
	child = append(child, base[:a]...)
	child = append(child, seg...)

	return append(child, base[a:]...)
}

// UniformCrossover picks each position from p1 or p2 by a fair coin, keeps
// the first occurrence of every city, then appends the missing cities in
// p1's order.
//
// Complexity: O(n).
func UniformCrossover(p1, p2 []int, rng *rand.Rand) []int {
	var (
		n     = len(p1)
		child = make([]int, 0, n)
		seen  = make(map[int]struct{}, n)
		c, i  int
	)
	for i = 0; i < n; i++ {
		if rng.Intn(2) == 1 {
			c = p1[i]
		} else {
			c = p2[i]
		}
		if _, ok := seen[c]; ok {
			continue
		}
		seen[c] = struct{}{}
		child = append(child, c)
	}
	for _, c = range p1 {
		if _, ok := seen[c]; !ok {
			seen[c] = struct{}{}
			child = append(child, c)
		}
	}

	return child
}

// SwapMutation returns a copy of t with two distinct, uniformly chosen
// positions exchanged.
//
// Complexity: O(n).
func SwapMutation(t []int, rng *rand.Rand) []int {
	i, j := tsp.DistinctPair(len(t), rng)

	return tsp.SwapPositions(t, i, j)
}

// crossoverFunc returns the operator for c.
func crossoverFunc(c Crossover) func(p1, p2 []int, rng *rand.Rand) []int {
	switch c {
	case OnePoint:
		return OnePointCrossover
	case Uniform:
		return UniformCrossover
	default:
		return TwoPointCrossover
	}
}
