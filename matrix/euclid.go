// SPDX-License-Identifier: MIT

// Package matrix: coordinate-to-matrix conversion.
package matrix

import (
	"fmt"
	"math"
)

// NewEuclidean builds the symmetric n×n matrix of straight-line distances
// between pts. The diagonal is exactly zero and d(i,j) == d(j,i) bitwise.
//
// Errors: ErrInvalidDimensions for an empty slice, ErrNaNInf for a
// non-finite coordinate.
//
// Complexity: O(n²) time and memory.
func NewEuclidean(pts []Point) (*Dense, error) {
	var n = len(pts)
	if n == 0 {
		return nil, ErrInvalidDimensions
	}

	var i, j int
	for i = 0; i < n; i++ {
		if !finite(pts[i].X) || !finite(pts[i].Y) {
			return nil, fmt.Errorf("NewEuclidean: point %d: %w", i, ErrNaNInf)
		}
	}

	m, err := NewDense(n, n)
	if err != nil {
		return nil, err
	}
	// Fill the upper triangle and mirror it so the result is exactly symmetric.
	var d float64
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			d = math.Hypot(pts[i].X-pts[j].X, pts[i].Y-pts[j].Y)
			m.data[i*n+j] = d
			m.data[j*n+i] = d
		}
	}

	return m, nil
}

func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
