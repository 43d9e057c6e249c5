// Package ising — direct cut-weight evaluation.
//
// CutValue is deliberately independent of the Ising algebra: it sums the
// weights of edges whose endpoints fall on different sides of the
// bipartition, straight from the weight matrix. Use it to validate
// solutions produced by any engine (native solver, annealer, QAOA) against
// the model invariant Energy(s) + Offset == CutValue(w, s).
package ising

import (
	"math"

	"github.com/katalvlaran/qcut/matrix"
)

// CutValue computes the literal cut weight of assignment s over w:
//
//	cut(s) = Σ_{i<j, s_i != s_j} w_ij
//
// Only the upper triangle is read; a fast path avoids interface-call
// overhead for *matrix.Dense.
//
// Contracts:
//   - w must be square; len(s) must equal its order; spins in {-1,+1}.
//   - Entries are defensively checked per read even when the matrix was
//     validated upstream: NaN/±Inf ⇒ ErrNaNInf, negative ⇒ ErrNegativeWeight.
//
// Complexity: O(n²) time, O(1) space.
func CutValue(w matrix.Matrix, s Spins) (float64, error) {
	if w == nil {
		return 0, matrix.ErrNilMatrix
	}
	if w.Rows() != w.Cols() {
		return 0, matrix.ErrNonSquare
	}
	if err := s.Validate(w.Rows()); err != nil {
		return 0, err
	}

	if d, ok := w.(*matrix.Dense); ok {
		return cutValueDense(d, s)
	}

	return cutValueGeneric(w, s)
}

// cutValueDense sums crossing weights through zero-copy row views.
// Complexity: O(n²).
func cutValueDense(d *matrix.Dense, s Spins) (float64, error) {
	var (
		n   = d.Rows()
		sum float64
		i   int
		j   int
		row []float64
		wij float64
	)
	for i = 0; i < n; i++ {
		row = d.Row(i)
		for j = i + 1; j < n; j++ {
			wij = row[j]
			if math.IsNaN(wij) || math.IsInf(wij, 0) {
				return 0, matrix.ErrNaNInf
			}
			if wij < 0 {
				return 0, matrix.ErrNegativeWeight
			}
			if s[i] != s[j] {
				sum += wij
			}
		}
	}

	return sum, nil
}

// cutValueGeneric sums crossing weights through the Matrix interface.
// Same checks as cutValueDense; slightly higher call overhead.
// Complexity: O(n²).
func cutValueGeneric(w matrix.Matrix, s Spins) (float64, error) {
	var (
		n   = w.Rows()
		sum float64
		i   int
		j   int
		wij float64
		err error
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			wij, err = w.At(i, j)
			if err != nil {
				return 0, err
			}
			if math.IsNaN(wij) || math.IsInf(wij, 0) {
				return 0, matrix.ErrNaNInf
			}
			if wij < 0 {
				return 0, matrix.ErrNegativeWeight
			}
			if s[i] != s[j] {
				sum += wij
			}
		}
	}

	return sum, nil
}
