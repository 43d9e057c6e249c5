// SPDX-License-Identifier: MIT

package matrix

// Matrix is the minimal read/write surface the qcut pipeline consumes.
// Implementations must be bounds-safe: At/Set return ErrOutOfRange for
// invalid indices and never panic.
type Matrix interface {
	// Rows returns the number of rows.
	Rows() int

	// Cols returns the number of columns.
	Cols() int

	// At retrieves the element at (row, col) or returns ErrOutOfRange.
	At(row, col int) (float64, error)

	// Set assigns v at (row, col) or returns ErrOutOfRange.
	Set(row, col int, v float64) error

	// Clone returns a deep copy.
	Clone() Matrix
}
