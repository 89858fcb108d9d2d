// Package tsp - tour utilities shared by the metaheuristic solvers.
//
// These helpers operate purely on tour structure (index sequences) and never
// look at distances. Tours are open permutations: the closing edge is implicit.
//
// Provided helpers:
//   - ValidatePermutation: verify a permutation over {0..n-1}.
//   - CopyTour: independent copy of a tour slice.
//   - ReverseTour / RotateTour: fresh copies in reversed or shifted order.
//   - EqualTours: element-wise equality (no rotation folding).
//   - SwapPositions: copy with two positions exchanged (the swap move).
//   - EncodeTour: compact string key for membership sets.
//
// None of the helpers mutate their input.
package tsp

import (
	"fmt"
	"strconv"
	"strings"
)

// ValidatePermutation checks that perm is a permutation of {0..n-1} of length n.
//
// Complexity: O(n) time, O(n) space.
func ValidatePermutation(perm []int, n int) error {
	if n <= 0 || len(perm) != n {
		return fmt.Errorf("ValidatePermutation: len=%d, want %d: %w", len(perm), n, ErrDimensionMismatch)
	}
	seen := make([]bool, n)

	var i, v int
	for i = 0; i < n; i++ {
		v = perm[i]
		if v < 0 || v >= n {
			return fmt.Errorf("ValidatePermutation: city %d out of range at %d: %w", v, i, ErrDimensionMismatch)
		}
		if seen[v] {
			return fmt.Errorf("ValidatePermutation: city %d repeated at %d: %w", v, i, ErrDimensionMismatch)
		}
		seen[v] = true
	}

	return nil
}

// CopyTour returns an independent copy of t. A nil input yields nil.
//
// Complexity: O(n).
func CopyTour(t []int) []int {
	if t == nil {
		return nil
	}
	out := make([]int, len(t))
	copy(out, t)

	return out
}

// ReverseTour returns t in reverse order.
//
// Complexity: O(n).
func ReverseTour(t []int) []int {
	var (
		n   = len(t)
		out = make([]int, n)
		i   int
	)
	for i = 0; i < n; i++ {
		out[i] = t[n-1-i]
	}

	return out
}

// RotateTour returns t shifted left by k positions, so out[0] == t[k mod n].
// Negative k rotates right.
//
// Complexity: O(n).
func RotateTour(t []int, k int) []int {
	var n = len(t)
	if n == 0 {
		return []int{}
	}
	k %= n
	if k < 0 {
		k += n
	}
	out := make([]int, 0, n)
	out = append(out, t[k:]...)

	return append(out, t[:k]...)
}

// EqualTours reports whether a and b hold the same cities in the same order.
func EqualTours(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	var i int
	for i = range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// SwapPositions returns a copy of t with positions i and j exchanged.
// Indices are assumed in range; callers draw them via DistinctPair or loops.
//
// Complexity: O(n).
func SwapPositions(t []int, i, j int) []int {
	out := CopyTour(t)
	out[i], out[j] = out[j], out[i]

	return out
}

// EncodeTour renders t as a comma-separated key, e.g. "0,3,1,2".
// Two tours encode equally iff EqualTours reports true.
//
// Complexity: O(n).
func EncodeTour(t []int) string {
	var (
		sb strings.Builder
		i  int
	)
	sb.Grow(len(t) * 3)
	for i = range t {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteString(strconv.Itoa(t[i]))
	}

	return sb.String()
}
