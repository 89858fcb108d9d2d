package genetic_test

import (
	"errors"
	"testing"

	"github.com/katalvlaran/metatsp/matrix"
)

const (
	epsTiny = 1e-9
	seedDet = int64(42)
)

// Repeat runs fn n times.
func Repeat(t *testing.T, n int, fn func(t *testing.T)) {
	t.Helper()
	var i int
	for i = 0; i < n; i++ {
		fn(t)
	}
}

func mustErrIs(t *testing.T, err, target error) {
	t.Helper()
	if !errors.Is(err, target) {
		t.Fatalf("want %v, got %v", target, err)
	}
}

// mustDense builds a Dense from a literal or fails the test.
func mustDense(t testing.TB, rows [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDenseFromRows(rows)
	if err != nil {
		t.Fatalf("NewDenseFromRows: %v", err)
	}

	return m
}

// unitSquare returns the 4-city unit square: edges 1, diagonals √2.
func unitSquare(t testing.TB) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewEuclidean([]matrix.Point{{X: 0, Y: 0}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 0, Y: 1}})
	if err != nil {
		t.Fatalf("NewEuclidean: %v", err)
	}

	return m
}

// reference10 is the classic 10-city comparison instance.
func reference10(t testing.TB) *matrix.Dense {
	return mustDense(t, [][]float64{
		{0, 29, 20, 21, 16, 31, 100, 12, 4, 31},
		{29, 0, 15, 29, 28, 40, 72, 21, 29, 27},
		{20, 15, 0, 28, 24, 27, 81, 9, 23, 30},
		{21, 29, 28, 0, 12, 25, 91, 17, 21, 16},
		{16, 28, 24, 12, 0, 17, 101, 8, 18, 22},
		{31, 40, 27, 25, 17, 0, 110, 19, 31, 14},
		{100, 72, 81, 91, 101, 110, 0, 90, 85, 95},
		{12, 21, 9, 17, 8, 19, 90, 0, 11, 18},
		{4, 29, 23, 21, 18, 31, 85, 11, 0, 25},
		{31, 27, 30, 16, 22, 14, 95, 18, 25, 0},
	})
}
