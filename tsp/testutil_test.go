// Package tsp_test provides lightweight helpers shared across *_test.go files
// in this package.
package tsp_test

import (
	"errors"
	"math"
	"testing"

	"github.com/katalvlaran/metatsp/matrix"
)

const (
	// epsTiny is the absolute tolerance used for length comparisons.
	epsTiny = 1e-9

	// seedDet is a deterministic seed for RNG-based helpers.
	seedDet = int64(42)
)

// rowsMatrix is a minimal [][]float64-backed matrix.Matrix. It exercises the
// generic interface path rather than *matrix.Dense.
type rowsMatrix struct{ a [][]float64 }

var _ matrix.Matrix = rowsMatrix{}

func (m rowsMatrix) Rows() int { return len(m.a) }
func (m rowsMatrix) Cols() int {
	if len(m.a) == 0 {
		return 0
	}

	return len(m.a[0])
}

func (m rowsMatrix) At(i, j int) (float64, error) {
	if i < 0 || i >= len(m.a) || j < 0 || j >= len(m.a[i]) {
		return 0, matrix.ErrOutOfRange
	}

	return m.a[i][j], nil
}

func (m rowsMatrix) Set(i, j int, v float64) error {
	if i < 0 || i >= len(m.a) || j < 0 || j >= len(m.a[i]) {
		return matrix.ErrOutOfRange
	}
	m.a[i][j] = v

	return nil
}

func (m rowsMatrix) Clone() matrix.Matrix {
	cp := make([][]float64, len(m.a))
	var i int
	for i = range m.a {
		cp[i] = append([]float64(nil), m.a[i]...)
	}

	return rowsMatrix{a: cp}
}

// Repeat runs fn n times to lock determinism across repetitions.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

// mustErrIs fails unless errors.Is(err, target).
func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// floatsClose reports |a-b| ≤ max(abs, rel·max(|a|,|b|)).
func floatsClose(a, b, rel, abs float64) bool {
	var d = math.Abs(a - b)
	if d <= abs {
		return true
	}

	return d <= rel*math.Max(math.Abs(a), math.Abs(b))
}

// euclid builds a symmetric Euclidean matrix from raw coordinates.
func euclid(t testing.TB, pts [][2]float64) *matrix.Dense {
	t.Helper()
	ps := make([]matrix.Point, len(pts))
	var i int
	for i = range pts {
		ps[i] = matrix.Point{X: pts[i][0], Y: pts[i][1]}
	}
	m, err := matrix.NewEuclidean(ps)
	if err != nil {
		t.Fatalf("NewEuclidean: %v", err)
	}

	return m
}

// unitSquare returns the 4-city unit square: edges 1, diagonals √2.
func unitSquare(t testing.TB) *matrix.Dense {
	return euclid(t, [][2]float64{{0, 0}, {1, 0}, {1, 1}, {0, 1}})
}

// ripple returns n points on a slightly perturbed circle so that optimal
// tours are unique up to rotation and reversal.
func ripple(n int) [][2]float64 {
	pts := make([][2]float64, n)
	var (
		i     int
		th, r float64
	)
	for i = 0; i < n; i++ {
		th = 2 * math.Pi * float64(i) / float64(n)
		r = 1.0 + 0.025*float64(i%3)
		pts[i] = [2]float64{r * math.Cos(th), r * math.Sin(th)}
	}

	return pts
}
