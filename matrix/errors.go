// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All routines MUST return these sentinels and tests MUST check them
// via errors.Is. No routine panics on user-triggered error conditions.

package matrix

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is the broad kind wrapped by every sentinel below.
// Callers that do not care which structural rule was violated can match
// this single error with errors.Is.
var ErrInvalidInput = errors.New("matrix: invalid input")

var (
	// ErrInvalidDimensions is returned when a requested shape is negative.
	// Zero-size matrices are allowed (empty inputs are meaningful here).
	ErrInvalidDimensions = fmt.Errorf("%w: dimensions must be >= 0", ErrInvalidInput)

	// ErrOutOfRange indicates that a row or column index is outside valid
	// bounds. Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = fmt.Errorf("%w: index out of range", ErrInvalidInput)

	// ErrNilMatrix indicates that a nil Matrix (receiver or argument) was used.
	ErrNilMatrix = fmt.Errorf("%w: nil matrix", ErrInvalidInput)

	// ErrDimensionMismatch indicates incompatible dimensions between operands,
	// e.g. ragged rows passed to NewDenseFromRows.
	ErrDimensionMismatch = fmt.Errorf("%w: dimension mismatch", ErrInvalidInput)

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = fmt.Errorf("%w: matrix is not square", ErrInvalidInput)

	// ErrAsymmetry signals that a matrix expected to be symmetric violated
	// symmetry within the configured tolerance.
	ErrAsymmetry = fmt.Errorf("%w: matrix is not symmetric within tol", ErrInvalidInput)

	// ErrNonZeroDiagonal signals that the diagonal is required to be ~0
	// (within tolerance) but a non-zero entry was observed.
	ErrNonZeroDiagonal = fmt.Errorf("%w: diagonal not zero within tol", ErrInvalidInput)

	// ErrNegativeWeight signals a negative off-diagonal entry where a
	// distance-like non-negative weight is required.
	ErrNegativeWeight = fmt.Errorf("%w: negative weight", ErrInvalidInput)

	// ErrNaNInf signals a NaN or ±Inf value where finite values are required.
	ErrNaNInf = fmt.Errorf("%w: NaN or Inf encountered", ErrInvalidInput)
)
