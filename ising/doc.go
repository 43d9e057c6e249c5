// Package ising formulates the max-cut objective of a weight matrix as an
// Ising cost model, and evaluates cut weights directly for validation.
//
// 🚀 What is ising?
//
//	Given a symmetric, zero-diagonal, non-negative weight matrix W, the
//	cut weight of a spin assignment s ∈ {−1,+1}ⁿ is
//
//		cut(s) = Σ_{i<j} W[i][j] · (1 − s_i·s_j) / 2
//
//	FromWeights expands that expression into the model
//
//		J_ij   = −W[i][j] / 2      (pairwise couplings, i<j)
//		h_i    = 0                 (no linear bias for max-cut)
//		Offset = Σ_{i<j} W[i][j]/2 (additive constant)
//
//	so that for every assignment s
//
//		Energy(s) + Offset == cut(s)
//
//	holds identically, and minimizing Energy maximizes the cut. CutValue
//	computes cut(s) straight from W — independent of the Ising algebra —
//	which is what tests and external-sampler validation should compare
//	against.
//
// Normalization note: this package fixes the 1/2 convention of the
// expansion above. The QUBO export applies the matching x = (1−s)/2
// substitution, so xᵀQx == −cut(x) for binary x; no hidden 1/4 rescale
// exists anywhere.
//
// Interop: Model.QUBO returns a gonum *mat.SymDense, and
// Model.Coefficients returns a flat (I, J, Value) list — the two forms
// annealing/sampling engines commonly ingest. This package never talks to
// such an engine itself.
//
// Errors: malformed weight matrices surface the matrix package sentinels
// (InvalidInput kind); formulating over fewer than two nodes fails with
// ErrTooFewNodes (DomainError kind, see ErrDomain).
package ising
