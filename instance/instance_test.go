package instance_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metatsp/instance"
	"github.com/katalvlaran/metatsp/tsp"
)

func TestParse_Cities(t *testing.T) {
	in, err := instance.Parse([]byte(`
name: square
cities:
  - {label: A, x: 0, y: 0}
  - {label: B, x: 1, y: 0}
  - {label: C, x: 1, y: 1}
  - {label: D, x: 0, y: 1}
`))
	require.NoError(t, err)
	assert.Equal(t, "square", in.Name)
	assert.Equal(t, 4, in.N())
	assert.Len(t, in.Points, 4)

	l, err := tsp.TourLength(in.Dist, []int{0, 1, 2, 3})
	require.NoError(t, err)
	assert.InDelta(t, 4.0, l, 1e-12)
	assert.Equal(t, []string{"A", "C", "B", "D"}, in.Route([]int{0, 2, 1, 3}))
}

func TestParse_Matrix(t *testing.T) {
	in, err := instance.Parse([]byte(`
name: triangle
matrix:
  - [0, 1, 2]
  - [1, 0, 3]
  - [2, 3, 0]
`))
	require.NoError(t, err)
	assert.Nil(t, in.Points)
	assert.Equal(t, []string{"0", "1", "2"}, in.Labels)
	v, err := in.Dist.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		doc  string
		want error
	}{
		{"no source", "name: x\n", instance.ErrInvalidInstance},
		{"both sources", "name: x\ncities: [{label: A, x: 0, y: 0}]\nmatrix: [[0]]\n", instance.ErrInvalidInstance},
		{"missing name", "cities: [{label: A, x: 0, y: 0}, {label: B, x: 1, y: 0}, {label: C, x: 2, y: 2}]\n", instance.ErrInvalidInstance},
		{"missing label", "name: x\ncities: [{x: 0, y: 0}, {label: B, x: 1, y: 0}, {label: C, x: 2, y: 2}]\n", instance.ErrInvalidInstance},
		{"duplicate label", "name: x\ncities: [{label: A, x: 0, y: 0}, {label: A, x: 1, y: 0}, {label: C, x: 2, y: 2}]\n", instance.ErrInvalidInstance},
		{"unknown key", "name: x\ncolour: red\nmatrix: [[0, 1, 1], [1, 0, 1], [1, 1, 0]]\n", instance.ErrInvalidInstance},
		{"not yaml", "name: [unterminated\n", instance.ErrInvalidInstance},
		{"two cities", "name: x\ncities: [{label: A, x: 0, y: 0}, {label: B, x: 1, y: 0}]\n", tsp.ErrDegenerateInput},
		{"coincident cities", "name: x\ncities: [{label: A, x: 1, y: 1}, {label: B, x: 1, y: 1}, {label: C, x: 1, y: 1}]\n", tsp.ErrDegenerateInput},
		{"ragged matrix", "name: x\nmatrix: [[0, 1, 1], [1, 0], [1, 1, 0]]\n", tsp.ErrNonSquare},
		{"non-square", "name: x\nmatrix: [[0, 1, 1], [1, 0, 1]]\n", tsp.ErrNonSquare},
		{"negative", "name: x\nmatrix: [[0, -1, 1], [1, 0, 1], [1, 1, 0]]\n", tsp.ErrNegativeWeight},
		{"diagonal", "name: x\nmatrix: [[1, 1, 1], [1, 0, 1], [1, 1, 0]]\n", tsp.ErrNonZeroDiagonal},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := instance.Parse([]byte(tc.doc))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tc.want), "want %v, got %v", tc.want, err)
		})
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tri.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: tri\nmatrix: [[0, 2, 2], [2, 0, 2], [2, 2, 0]]\n"), 0o600))

	in, err := instance.Load(path)
	require.NoError(t, err)
	assert.Equal(t, 3, in.N())

	_, err = instance.Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestReference10(t *testing.T) {
	a := instance.Reference10()
	n, err := tsp.ValidateDistances(a.Dist)
	require.NoError(t, err)
	assert.Equal(t, 10, n)

	// Each call returns an independent matrix.
	require.NoError(t, a.Dist.Set(0, 1, 999))
	b := instance.Reference10()
	v, err := b.Dist.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 29.0, v)
}
