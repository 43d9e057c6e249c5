// Package ising — interop exports for external optimization engines.
//
// Two forms are provided:
//   - QUBO: a dense symmetric Q such that minimizing xᵀQx over binary x
//     (with the x = (1−s)/2 substitution) maximizes the cut.
//   - Coefficients: a flat (I, J, Value) list, the sparse triplet shape
//     annealer/sampler APIs ingest (linear terms carry I == J).
//
// Both are derived views; neither mutates the model.
package ising

import "gonum.org/v1/gonum/mat"

// Coefficient is a single term of the Ising objective. I == J denotes the
// linear bias h_I; I < J denotes the coupling J_IJ.
type Coefficient struct {
	I     int
	J     int
	Value float64
}

// Coefficients returns the model as a flat coefficient list: all pairwise
// couplings with I < J, preceded by any non-zero linear biases. For the
// max-cut formulation every bias is zero, so the list holds exactly
// n·(n−1)/2 quadratic terms in row-major pair order.
//
// Complexity: O(n²) time and space.
func (m *Model) Coefficients() []Coefficient {
	out := make([]Coefficient, 0, len(m.j)+m.n)

	var i, k int
	for i = 0; i < m.n; i++ {
		if m.h[i] != 0 {
			out = append(out, Coefficient{I: i, J: i, Value: m.h[i]})
		}
	}
	for i = 0; i < m.n; i++ {
		for k = i + 1; k < m.n; k++ {
			out = append(out, Coefficient{I: i, J: k, Value: m.j[pairIndex(i, k, m.n)]})
		}
	}

	return out
}

// QUBO returns the quadratic-form matrix Q of the equivalent binary
// formulation. With x_i = (1 − s_i)/2 ∈ {0,1} and W the source weights:
//
//	Q_ii = −Σ_{k≠i} w_ik   (weighted degree, negated)
//	Q_ij = w_ij            (i ≠ j)
//
// so that xᵀQx == −cut(x) for every binary vector x (using x_i² = x_i).
// Minimizing xᵀQx therefore maximizes the cut.
//
// The weights are recovered from the couplings via w_ij = −2·J_ij, so the
// export stays consistent with whatever convention built the model.
//
// Complexity: O(n²) time and space.
func (m *Model) QUBO() *mat.SymDense {
	q := mat.NewSymDense(m.n, nil)

	var (
		i, k int
		wik  float64
		deg  []float64 // weighted degree per node
	)
	deg = make([]float64, m.n)
	for i = 0; i < m.n; i++ {
		for k = i + 1; k < m.n; k++ {
			wik = -2 * m.j[pairIndex(i, k, m.n)]
			q.SetSym(i, k, wik)
			deg[i] += wik
			deg[k] += wik
		}
	}
	for i = 0; i < m.n; i++ {
		q.SetSym(i, i, -deg[i])
	}

	return q
}
