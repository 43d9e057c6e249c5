// Package maxcut provides native solvers for the maximum-cut problem on a
// weight matrix ([i][j] = non-negative edge weight, symmetric, zero
// diagonal).
//
// It includes three algorithms behind one dispatcher, Solve:
//
//   - Exact — gray-code enumeration over all 2ⁿ⁻¹ distinct bipartitions
//     (spin 0 is pinned; a global flip does not change the cut).
//
//   - Complexity: O(2ⁿ·n); guarded to n ≤ 24 instances.
//
//   - SingleFlip — deterministic best-improvement local search: repeatedly
//     move the single node whose side change raises the cut the most.
//
//   - Complexity: O(iter·n²); a local optimum, not a global one.
//
//   - Anneal — multi-restart simulated annealing with geometric cooling
//     and a final SingleFlip polish. Seeded and fully deterministic:
//     the same Options.Seed always yields the same result.
//
//   - Complexity: O(restarts·sweeps·n²).
//
// All solvers accept the same Options (DefaultOptions for sane values) and
// return a Result whose Spins are canonical (Spins[0] == −1) and whose
// CutWeight is recomputed strictly from the input matrix and stabilized to
// 1e−9.
//
// Use Exact when n is small and the true optimum matters (tests,
// calibration); use Anneal for everything else.
package maxcut
