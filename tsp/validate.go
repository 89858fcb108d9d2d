// Package tsp - distance-matrix validation shared by every optimizer.
//
// Optimizers validate their options first, then the matrix, and only then
// allocate search state. The checks here are the single source of truth for
// what a usable instance looks like.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metatsp/matrix"
)

// diagTol is the structural tolerance for the zero-diagonal check.
const diagTol = 1e-12

// minCities is the smallest instance any optimizer accepts.
const minCities = 3

// ValidateDistances verifies that dist is a usable TSP instance and returns its order n.
//
// Checks, in order:
//   - dist is non-nil and square (ErrNonSquare);
//   - every entry is finite (ErrDimensionMismatch on NaN/±Inf);
//   - d(i,i) is zero (ErrNonZeroDiagonal);
//   - off-diagonal entries are nonnegative (ErrNegativeWeight);
//   - n ≥ 3 and some off-diagonal entry is positive (ErrDegenerateInput).
//
// Asymmetric matrices are accepted; lengths are then directional.
//
// Complexity: O(n²) time, O(1) space.
func ValidateDistances(dist matrix.Matrix) (int, error) {
	if dist == nil {
		return 0, fmt.Errorf("ValidateDistances: nil matrix: %w", ErrNonSquare)
	}
	var (
		n        = dist.Rows()
		i, j     int
		v        float64
		err      error
		positive bool
	)
	if n != dist.Cols() || n <= 0 {
		return 0, fmt.Errorf("ValidateDistances: %dx%d: %w", n, dist.Cols(), ErrNonSquare)
	}

	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			if v, err = dist.At(i, j); err != nil {
				return 0, fmt.Errorf("ValidateDistances: At(%d,%d): %v: %w", i, j, err, ErrDimensionMismatch)
			}
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return 0, fmt.Errorf("ValidateDistances: non-finite d(%d,%d): %w", i, j, ErrDimensionMismatch)
			}
			if i == j {
				if math.Abs(v) > diagTol {
					return 0, fmt.Errorf("ValidateDistances: d(%d,%d)=%g: %w", i, i, v, ErrNonZeroDiagonal)
				}
				continue
			}
			if v < 0 {
				return 0, fmt.Errorf("ValidateDistances: d(%d,%d)=%g: %w", i, j, v, ErrNegativeWeight)
			}
			if v > 0 {
				positive = true
			}
		}
	}

	if n < minCities {
		return 0, fmt.Errorf("ValidateDistances: %d cities, need at least %d: %w", n, minCities, ErrDegenerateInput)
	}
	if !positive {
		return 0, fmt.Errorf("ValidateDistances: all distances are zero: %w", ErrDegenerateInput)
	}

	return n, nil
}
