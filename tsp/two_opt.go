// Package tsp - 2-opt local search polish for symmetric instances.
//
// TwoOpt performs deterministic first-improvement 2-opt on an open tour.
// For cut positions i < k it considers the edges (a→b) and (c→d) with
// a=t[i], b=t[i+1], c=t[k], d=t[(k+1) mod n], and replaces them with (a→c)
// and (b→d) by reversing t[i+1..k]:
//
//	Δ = w(a,c) + w(b,d) − w(a,b) − w(c,d)
//
// A move is accepted when Δ < −twoOptEps; the scan restarts after every
// accepted move and stops at a local optimum or after maxMoves moves.
//
// Contracts:
//   - dist passes ValidateDistances and is symmetric (ErrAsymmetry otherwise);
//     reversing a segment changes directional lengths on asymmetric input.
//   - tour is a permutation of 0..n-1; it is never mutated.
//
// Complexity:
//   - One pass: O(n²) candidate checks, O(n) per accepted move.
//   - Overall: O(moves·n²) time, O(n²) space for the distance snapshot.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/metatsp/matrix"
)

// twoOptEps is the strict improvement threshold for accepting a move.
const twoOptEps = 1e-12

// TwoOpt polishes tour with first-improvement 2-opt and returns the improved
// tour (same first city) and its length rounded to 1e-9. maxMoves ≤ 0 means
// run until no improving move remains.
func TwoOpt(dist matrix.Matrix, tour []int, maxMoves int) ([]int, float64, error) {
	d, err := NewDistances(dist)
	if err != nil {
		return nil, 0, fmt.Errorf("TwoOpt: %w", err)
	}
	if !d.Symmetric() {
		return nil, 0, fmt.Errorf("TwoOpt: %w", ErrAsymmetry)
	}
	var n = d.N()
	if err = ValidatePermutation(tour, n); err != nil {
		return nil, 0, fmt.Errorf("TwoOpt: %w", err)
	}

	cur := CopyTour(tour)

	var (
		accepted   int
		improved   = true
		i, k       int
		a, b, c, e int
		delta      float64
	)
	for improved {
		improved = false
	scan:
		for i = 0; i <= n-3; i++ {
			for k = i + 2; k <= n-1; k++ {
				if i == 0 && k == n-1 {
					continue // both cuts would touch the same closing edge
				}
				a, b = cur[i], cur[i+1]
				c, e = cur[k], cur[(k+1)%n]
				delta = d.At(a, c) + d.At(b, e) - d.At(a, b) - d.At(c, e)
				if delta >= -twoOptEps {
					continue
				}
				reverseInPlace(cur, i+1, k)
				accepted++
				improved = maxMoves <= 0 || accepted < maxMoves
				break scan
			}
		}
	}

	return cur, round1e9(d.Length(cur)), nil
}

// reverseInPlace reverses the inclusive segment t[i..k].
//
// Complexity: O(k-i) time, O(1) space.
func reverseInPlace(t []int, i, k int) {
	for i < k {
		t[i], t[k] = t[k], t[i]
		i++
		k--
	}
}
