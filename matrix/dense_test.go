package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcut/matrix"
)

// TestNewDense_Shapes verifies shape validation, including the zero-size case.
func TestNewDense_Shapes(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	// Zero-size is a valid, empty matrix.
	z, err := matrix.NewDense(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rows())
	assert.Equal(t, 0, z.Cols())

	// Negative dimensions must fail with the shape sentinel.
	_, err = matrix.NewDense(-1, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
	assert.ErrorIs(t, err, matrix.ErrInvalidInput, "shape sentinel must wrap the broad kind")
}

// TestDense_AtSet_Bounds verifies bounds-checked access semantics.
func TestDense_AtSet_Bounds(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(0, 1, 4.5))
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	_, err = m.At(0, -1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
	err = m.Set(-1, 0, 1)
	assert.ErrorIs(t, err, matrix.ErrOutOfRange)
}

// TestNewDenseFromRows verifies copy semantics and ragged-input rejection.
func TestNewDenseFromRows(t *testing.T) {
	rows := [][]float64{{0, 1}, {1, 0}}
	m, err := matrix.NewDenseFromRows(rows)
	require.NoError(t, err)

	// Mutating the source must not leak into the matrix (data was copied).
	rows[0][1] = 99
	v, err := m.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	// Ragged rows violate the shape contract.
	_, err = matrix.NewDenseFromRows([][]float64{{0, 1}, {1}})
	assert.ErrorIs(t, err, matrix.ErrDimensionMismatch)

	// Empty input yields a valid 0x0 matrix.
	z, err := matrix.NewDenseFromRows(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, z.Rows())
}

// TestDense_Clone verifies deep-copy independence.
func TestDense_Clone(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 2}, {2, 0}})
	require.NoError(t, err)

	c := m.Clone()
	require.NoError(t, m.Set(0, 1, 7))

	got, err := c.At(0, 1)
	require.NoError(t, err)
	assert.Equal(t, 2.0, got, "clone must not observe writes to the original")
}

// TestDense_Row verifies the zero-copy row view including aliasing.
func TestDense_Row(t *testing.T) {
	m, err := matrix.NewDenseFromRows([][]float64{{0, 3}, {3, 0}})
	require.NoError(t, err)

	row := m.Row(1)
	require.Equal(t, []float64{3, 0}, row)

	// The view aliases backing storage.
	row[1] = 5
	v, err := m.At(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5.0, v)

	assert.Nil(t, m.Row(2))
	assert.Nil(t, m.Row(-1))
}
