// Package pointset converts finite point sets in R^d into symmetric
// Euclidean weight matrices — the first stage of the qcut pipeline.
//
// 🚀 What is pointset?
//
//	A PointSet is an ordered sequence of equal-dimension float64 vectors.
//	DistanceMatrix maps it to an N×N matrix W with
//
//		W[i][j] = ||p_i − p_j||₂
//
//	so W is symmetric, non-negative, and zero on the diagonal by
//	construction. Degenerate inputs are well-defined: an empty set yields
//	a 0×0 matrix, a single point yields [[0]].
//
// ✨ Key properties:
//   - Pure: no mutation of the input, identical output for identical input
//   - Strict: mixed point dimensions fail with ErrDimensionMismatch
//   - Parallel option: DistanceMatrixContext splits the O(N²) pair loop
//     across bounded workers; cells are independent, so the result is
//     bit-identical to the serial build
//
// Norms are delegated to gonum (floats.Distance), the numeric primitive
// this library treats as its linear-algebra backend.
//
// Complexity: O(N²·d) time, O(N²) memory for the result.
package pointset
