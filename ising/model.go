// Package ising - cost-model construction and evaluation.
//
// Design principles:
//   - Pure, deterministic transformations; the input matrix is read once.
//   - Strict sentinels only (matrix package for shape, ErrDomain for n<2).
//   - Packed upper-triangular storage: no maps, no per-pair allocations.
package ising

import (
	"github.com/katalvlaran/qcut/matrix"
)

// Model is the Ising cost model of a max-cut instance: pairwise couplings
// J (i<j), linear biases h (identically zero for max-cut), and the additive
// Offset that ties Energy back to the literal cut weight.
//
// Invariant: for every valid assignment s, Energy(s) + Offset() == cut(s),
// where cut(s) is the total weight of edges crossing the bipartition.
//
// A Model is immutable after construction.
type Model struct {
	n      int       // node count
	j      []float64 // packed upper triangle: J_ij for i<j
	h      []float64 // linear biases, all zero in this formulation
	offset float64   // additive constant of the expansion
}

// FromWeights builds the max-cut Ising model of w using the 1/2 convention
// (see the package documentation):
//
//	J_ij = −w_ij/2, h_i = 0, Offset = Σ_{i<j} w_ij/2.
//
// Contracts:
//   - w must satisfy matrix.ValidateWeights (symmetric, zero diagonal,
//     finite, non-negative); violations surface those sentinels.
//   - The matrix order must be at least 2; otherwise ErrTooFewNodes.
//
// Complexity: O(n²) time, O(n²) space for the packed couplings.
func FromWeights(w matrix.Matrix) (*Model, error) {
	n, err := matrix.ValidateWeights(w, -1)
	if err != nil {
		return nil, err
	}
	if n < 2 {
		return nil, ErrTooFewNodes
	}

	var m = &Model{
		n: n,
		j: make([]float64, n*(n-1)/2),
		h: make([]float64, n),
	}

	var (
		i, k int
		wij  float64
		sum  float64
	)
	for i = 0; i < n; i++ {
		for k = i + 1; k < n; k++ {
			wij, err = w.At(i, k)
			if err != nil {
				return nil, err
			}
			m.j[pairIndex(i, k, n)] = -wij / 2
			sum += wij
		}
	}
	m.offset = sum / 2

	return m, nil
}

// N returns the node count.
// Complexity: O(1).
func (m *Model) N() int { return m.n }

// Offset returns the additive constant of the formulation.
// Complexity: O(1).
func (m *Model) Offset() float64 { return m.offset }

// Coupling returns J_ij for an unordered pair {i,j}, i != j.
// Out-of-range or diagonal pairs return matrix.ErrOutOfRange.
//
// Complexity: O(1).
func (m *Model) Coupling(i, j int) (float64, error) {
	if i < 0 || i >= m.n || j < 0 || j >= m.n || i == j {
		return 0, matrix.ErrOutOfRange
	}
	if i > j {
		i, j = j, i
	}

	return m.j[pairIndex(i, j, m.n)], nil
}

// Bias returns h_i (always 0 for max-cut; kept for formulation symmetry).
// Complexity: O(1).
func (m *Model) Bias(i int) (float64, error) {
	if i < 0 || i >= m.n {
		return 0, matrix.ErrOutOfRange
	}

	return m.h[i], nil
}

// Energy evaluates the Ising objective
//
//	E(s) = Σ_{i<j} J_ij·s_i·s_j + Σ_i h_i·s_i
//
// for the given assignment. Minimizing E maximizes the cut;
// E(s) + Offset() equals the cut weight exactly.
//
// Contracts:
//   - len(s) == N() and every spin in {-1,+1}; otherwise the spin sentinels.
//
// Complexity: O(n²) time, O(1) space.
func (m *Model) Energy(s Spins) (float64, error) {
	if err := s.Validate(m.n); err != nil {
		return 0, err
	}

	var (
		i, k int
		idx  int
		sum  float64
	)
	for i = 0; i < m.n; i++ {
		// h is identically zero here, but the term is kept so the
		// evaluator stays correct should biases ever become non-trivial.
		sum += m.h[i] * float64(s[i])
		for k = i + 1; k < m.n; k++ {
			idx = pairIndex(i, k, m.n)
			sum += m.j[idx] * float64(s[i]) * float64(s[k])
		}
	}

	return sum, nil
}

// pairIndex maps an ordered pair (i<j) of [0..n) to its packed
// upper-triangular slot.
// Complexity: O(1).
func pairIndex(i, j, n int) int {
	return i*(2*n-i-1)/2 + (j - i - 1)
}
