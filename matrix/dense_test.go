package matrix_test

import (
	"testing"

	"github.com/katalvlaran/metatsp/matrix"
	"github.com/stretchr/testify/require"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	_, err = matrix.NewDense(3, -1)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSetOutOfRange(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	require.Equal(t, 2, m.Rows())
	require.Equal(t, 3, m.Cols())

	require.NoError(t, m.Set(1, 2, 7.5))
	v, err := m.At(1, 2)
	require.NoError(t, err)
	require.Equal(t, 7.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
}

func TestNewDenseFromRows(t *testing.T) {
	rows := [][]float64{{0, 1}, {2, 0}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	// The input literal is copied, not aliased.
	rows[0][1] = 99
	v, _ := m.At(0, 1)
	require.Equal(t, 1.0, v)
	require.Equal(t, [][]float64{{0, 1}, {2, 0}}, m.RowsCopy())

	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {2}})
	require.ErrorIs(t, err, matrix.ErrDimensionMismatch)
	_, err = matrix.NewDenseFromRows(nil)
	require.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_CloneIsIndependent(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)
	c := m.Clone()
	require.NoError(t, c.Set(0, 1, 5))

	v, _ := m.At(0, 1)
	require.Equal(t, 1.0, v)
	v, _ = c.At(0, 1)
	require.Equal(t, 5.0, v)
}

func TestDense_String(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 1.5}, {2, 0}})
	require.NoError(t, err)
	require.Equal(t, "[0, 1.5]\n[2, 0]\n", m.String())
}
