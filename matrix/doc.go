// SPDX-License-Identifier: MIT

// Package matrix provides the dense float64 matrix primitive shared by the
// qcut pipeline, plus the validation rules a weight (distance) matrix must
// satisfy before it may enter a cost formulation.
//
// 🚀 What is matrix?
//
//	A minimal, allocation-conscious layer with two responsibilities:
//	  • Dense — a row-major float64 matrix with bounds-checked At/Set
//	  • ValidateWeights — the single source of truth for "is this a
//	    well-formed weight matrix": square, finite, non-negative,
//	    symmetric within tolerance, ~zero diagonal
//
// Error contract:
//
//	All sentinels in this package wrap ErrInvalidInput, so callers may
//	match either the precise condition (errors.Is(err, ErrAsymmetry))
//	or the broad kind (errors.Is(err, ErrInvalidInput)). Public methods
//	never panic on user input.
//
// Zero-size matrices (0×0) are valid: an empty point set produces an
// empty weight matrix without error.
//
// Complexity: all validators run in O(r·c); Dense accessors are O(1).
package matrix
