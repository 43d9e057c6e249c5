// SPDX-License-Identifier: MIT

// Weight-matrix validation: the single, canonical check a distance matrix
// must pass before it may enter a cost formulation.
//
// Design principles:
//   - Deterministic, side-effect free, allocation free.
//   - No logging, no panics on user input - only sentinel errors from errors.go.
//   - O(n²) worst case; symmetry runs on the upper triangle only.

package matrix

import "math"

// DefaultTol is the structural tolerance for symmetry/diagonal checks.
// It is intentionally tight: weight matrices here are either built by this
// module (exactly symmetric) or supplied by callers who own their rounding.
const DefaultTol = 1e-9

// ValidateWeights performs full weight-matrix validation:
//   - non-nil, square (n >= 0; zero-size is valid),
//   - every entry finite (no NaN, no ±Inf),
//   - |a_ii| <= tol on the diagonal,
//   - no negative off-diagonal entries,
//   - |a_ij − a_ji| <= tol (symmetry).
//
// tol < 0 selects DefaultTol. Returns n (matrix order) on success.
//
// Complexity: O(n²) time, O(1) space.
func ValidateWeights(m Matrix, tol float64) (int, error) {
	if m == nil {
		return 0, ErrNilMatrix
	}
	if tol < 0 {
		tol = DefaultTol
	}

	var (
		nr = m.Rows()
		nc = m.Cols()
	)
	if nr != nc {
		return 0, ErrNonSquare
	}
	var n = nr

	var (
		i, j     int     // loop indices
		aij, aji float64 // entries a[i][j] and a[j][i]
		abs      float64 // scratch for absolute values
		err      error
	)

	// Diagonal: finite and ~0 within tol.
	for i = 0; i < n; i++ {
		aij, err = m.At(i, i)
		if err != nil {
			return 0, err
		}
		if math.IsNaN(aij) || math.IsInf(aij, 0) {
			return 0, ErrNaNInf
		}
		abs = aij
		if abs < 0 {
			abs = -abs
		}
		if abs > tol {
			return 0, ErrNonZeroDiagonal
		}
	}

	// Upper triangle: finiteness, non-negativity, symmetry.
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			aij, err = m.At(i, j)
			if err != nil {
				return 0, err
			}
			aji, err = m.At(j, i)
			if err != nil {
				return 0, err
			}
			if math.IsNaN(aij) || math.IsInf(aij, 0) || math.IsNaN(aji) || math.IsInf(aji, 0) {
				return 0, ErrNaNInf
			}
			if aij < 0 || aji < 0 {
				return 0, ErrNegativeWeight
			}
			abs = aij - aji
			if abs < 0 {
				abs = -abs
			}
			if abs > tol {
				return 0, ErrAsymmetry
			}
		}
	}

	return n, nil
}
