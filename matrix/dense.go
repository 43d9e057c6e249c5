// SPDX-License-Identifier: MIT

// Dense is a concrete, row-major implementation of the Matrix interface,
// storing elements in a flat slice for performance and cache friendliness.

package matrix

import (
	"fmt"
	"strings"
)

// Dense is a row-major matrix of float64 values.
// r is rows, c is columns, and data holds r*c elements in row-major order.
type Dense struct {
	r, c int       // number of rows and columns
	data []float64 // flat backing storage, length == r*c
}

// compile-time interface conformance check.
var _ Matrix = (*Dense)(nil)

// NewDense creates an r×c Dense matrix initialized to zeros.
//
// Contract:
//   - rows >= 0 and cols >= 0; negative dimensions yield ErrInvalidDimensions.
//   - rows == 0 or cols == 0 is valid and produces an empty matrix.
//
// Complexity: O(r·c) time and memory.
func NewDense(rows, cols int) (*Dense, error) {
	if rows < 0 || cols < 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense matrix from row slices, copying the data.
//
// Contract:
//   - rows may be empty (0×0 result).
//   - every row must have the same length; ragged input yields
//     ErrDimensionMismatch.
//
// Complexity: O(r·c) time and memory.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	var n = len(rows)
	if n == 0 {
		return &Dense{r: 0, c: 0, data: nil}, nil
	}

	var (
		c = len(rows[0]) // expected column count, fixed by the first row
		i int
	)
	for i = 1; i < n; i++ {
		if len(rows[i]) != c {
			return nil, ErrDimensionMismatch
		}
	}

	var d = &Dense{r: n, c: c, data: make([]float64, n*c)}
	for i = 0; i < n; i++ {
		copy(d.data[i*c:(i+1)*c], rows[i])
	}

	return d, nil
}

// Rows returns the number of rows.
// Complexity: O(1).
func (m *Dense) Rows() int { return m.r }

// Cols returns the number of columns.
// Complexity: O(1).
func (m *Dense) Cols() int { return m.c }

// indexOf computes the flat index for (row, col) or returns ErrOutOfRange.
// Complexity: O(1).
func (m *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= m.r || col < 0 || col >= m.c {
		return 0, fmt.Errorf("dense (%d,%d) of %dx%d: %w", row, col, m.r, m.c, ErrOutOfRange)
	}

	return row*m.c + col, nil
}

// At retrieves the element at (row, col).
// Complexity: O(1).
func (m *Dense) At(row, col int) (float64, error) {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return 0, err
	}

	return m.data[idx], nil
}

// Set assigns value v at (row, col).
// Complexity: O(1).
func (m *Dense) Set(row, col int, v float64) error {
	idx, err := m.indexOf(row, col)
	if err != nil {
		return err
	}
	m.data[idx] = v

	return nil
}

// Row returns a zero-copy view of row i. The returned slice aliases the
// backing storage: writes through it mutate the matrix. Returns nil for an
// out-of-range index (callers that need an error should use At).
// Complexity: O(1).
func (m *Dense) Row(i int) []float64 {
	if i < 0 || i >= m.r {
		return nil
	}

	return m.data[i*m.c : (i+1)*m.c]
}

// Clone returns a deep copy of the Dense matrix.
// Complexity: O(r·c) time and memory.
func (m *Dense) Clone() Matrix {
	cp := make([]float64, len(m.data))
	copy(cp, m.data)

	return &Dense{r: m.r, c: m.c, data: cp}
}

// String implements fmt.Stringer for easy debugging.
func (m *Dense) String() string {
	var sb strings.Builder
	var i, j int
	for i = 0; i < m.r; i++ {
		for j = 0; j < m.c; j++ {
			if j > 0 {
				sb.WriteByte(' ')
			}
			fmt.Fprintf(&sb, "%g", m.data[i*m.c+j])
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}
