// Package tsp - tour length and fitness.
//
// TourLength is the checked entry point for callers holding a matrix.Matrix.
// Optimizers instead build a Distances snapshot once per run: it validates
// the instance, flattens it into a row-major []float64 and evaluates tours
// without interface indirection or error returns in the hot loop.
package tsp

import (
	"fmt"
	"math"

	"github.com/katalvlaran/metatsp/matrix"
)

// roundScale controls cost stabilization precision (1e-9) for reported
// local-search costs.
const roundScale = 1e9

func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}

// TourLength returns Σ d(t[i], t[(i+1) mod n]) over the cyclic tour t.
//
// Contract:
//   - dist is square with order n (ErrNonSquare otherwise);
//   - t is a permutation of 0..n-1 (ErrDimensionMismatch otherwise).
//
// The value is invariant under rotation of t, and under reversal when dist is
// symmetric.
//
// Complexity: O(n).
func TourLength(dist matrix.Matrix, t []int) (float64, error) {
	if dist == nil || dist.Rows() != dist.Cols() || dist.Rows() <= 0 {
		return 0, fmt.Errorf("TourLength: %w", ErrNonSquare)
	}
	var n = dist.Rows()
	if err := ValidatePermutation(t, n); err != nil {
		return 0, fmt.Errorf("TourLength: %w", err)
	}

	var (
		sum  float64
		w    float64
		i    int
		from int
		to   int
		err  error
	)
	for i = 0; i < n; i++ {
		from = t[i]
		to = t[(i+1)%n]
		if w, err = dist.At(from, to); err != nil {
			return 0, fmt.Errorf("TourLength: At(%d,%d): %v: %w", from, to, err, ErrDimensionMismatch)
		}
		sum += w
	}

	return sum, nil
}

// Fitness returns 1 / TourLength(dist, t). A zero-length tour has no finite
// fitness and yields ErrDegenerateInput.
//
// Complexity: O(n).
func Fitness(dist matrix.Matrix, t []int) (float64, error) {
	l, err := TourLength(dist, t)
	if err != nil {
		return 0, err
	}
	if l == 0 {
		return 0, fmt.Errorf("Fitness: zero-length tour: %w", ErrDegenerateInput)
	}

	return 1 / l, nil
}

// Distances is a validated, read-only snapshot of a distance matrix.
// w[i*n+j] mirrors dist.At(i, j) at construction time.
type Distances struct {
	n int
	w []float64
}

// NewDistances validates dist (see ValidateDistances) and copies it into a
// flat buffer. Later mutation of dist does not affect the snapshot.
//
// Complexity: O(n²) time and memory.
func NewDistances(dist matrix.Matrix) (*Distances, error) {
	n, err := ValidateDistances(dist)
	if err != nil {
		return nil, err
	}
	d := &Distances{n: n, w: make([]float64, n*n)}

	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			d.w[i*n+j], _ = dist.At(i, j) // in range after ValidateDistances
		}
	}

	return d, nil
}

// N returns the number of cities.
func (d *Distances) N() int { return d.n }

// At returns d(i, j) without bounds checks beyond the slice's own.
func (d *Distances) At(i, j int) float64 { return d.w[i*d.n+j] }

// Length returns the cyclic length of t. t must be a permutation of 0..N()-1;
// this is the hot-path variant of TourLength and performs no validation.
//
// Complexity: O(n).
func (d *Distances) Length(t []int) float64 {
	var (
		n   = len(t)
		sum float64
		i   int
	)
	for i = 0; i < n-1; i++ {
		sum += d.w[t[i]*d.n+t[i+1]]
	}
	if n > 0 {
		sum += d.w[t[n-1]*d.n+t[0]]
	}

	return sum
}

// Fitness returns the cyclic length of t together with its reciprocal. It is
// the hot-path variant of the package-level Fitness: t is not validated.
// A zero-length tour yields ErrDegenerateInput.
//
// Complexity: O(n).
func (d *Distances) Fitness(t []int) (length, fitness float64, err error) {
	length = d.Length(t)
	if length == 0 {
		return 0, 0, fmt.Errorf("Fitness: zero-length tour: %w", ErrDegenerateInput)
	}

	return length, 1 / length, nil
}

// Symmetric reports whether d(i,j) == d(j,i) for every pair, exactly.
//
// Complexity: O(n²).
func (d *Distances) Symmetric() bool {
	var i, j int
	for i = 0; i < d.n; i++ {
		for j = i + 1; j < d.n; j++ {
			if d.w[i*d.n+j] != d.w[j*d.n+i] {
				return false
			}
		}
	}

	return true
}
