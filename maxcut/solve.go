// Package maxcut - unified dispatcher for the max-cut solvers.
//
// Solve is the canonical entry point: it validates Options and the weight
// matrix, prefetches the weights into a flat buffer to keep interface
// indirection out of the hot loops, routes to the requested algorithm, and
// finally recomputes the returned cut strictly from the original matrix.
//
// Design principles:
//   - Deterministic: seed routing to heuristics; no time-based randomness.
//   - Strict sentinels: only errors from types.go and the matrix/ising
//     packages; tests match them with errors.Is.
//   - Stable cost: the reported CutWeight is rounded to 1e-9 to prevent
//     cross-platform FP drift.
package maxcut

import (
	"math"
	"time"

	"github.com/katalvlaran/qcut/ising"
	"github.com/katalvlaran/qcut/matrix"
)

// roundScale controls final cut stabilization precision (1e-9).
const roundScale = 1e9

// Solve routes to the algorithm selected by opts.Algo.
//
// Contracts:
//   - w must satisfy matrix.ValidateWeights; violations surface those
//     sentinels (InvalidInput kind).
//   - The matrix order must be at least 2; otherwise ising.ErrTooFewNodes
//     (DomainError kind).
//   - Returned Spins are canonical: Spins[0] == -1.
//
// Complexity: validation + prefetch O(n²); the rest per algorithm (see
// the package documentation).
func Solve(w matrix.Matrix, opts Options) (Result, error) {
	// Stage 1 - options sanity, then matrix shape/value validation.
	if err := validateOptions(opts); err != nil {
		return Result{}, err
	}
	n, err := matrix.ValidateWeights(w, -1)
	if err != nil {
		return Result{}, err
	}
	if n < 2 {
		return Result{}, ising.ErrTooFewNodes
	}
	opts = opts.normalized()

	// Stage 2 - prefetch weights into a flat buffer wf[i*n+j] so the hot
	// loops read plain slices instead of going through the interface.
	wf := make([]float64, n*n)
	{
		var (
			i, j int
			x    float64
			aerr error
		)
		for i = 0; i < n; i++ {
			for j = 0; j < n; j++ {
				x, aerr = w.At(i, j)
				if aerr != nil {
					return Result{}, aerr
				}
				wf[i*n+j] = x
			}
		}
	}

	// Stage 3 - route by algorithm.
	var spins ising.Spins
	switch opts.Algo {
	case Exact:
		spins, err = solveExact(wf, n)
	case SingleFlip:
		spins, err = solveSingleFlip(wf, n, opts)
	case Anneal:
		spins, err = solveAnneal(wf, n, opts)
	default:
		return Result{}, ErrUnsupportedAlgorithm
	}
	if err != nil {
		return Result{}, err
	}

	// Stage 4 - canonical orientation, then strict final accounting
	// against the original matrix (not the prefetched buffer).
	canonicalizeInPlace(spins)
	cut, err := ising.CutValue(w, spins)
	if err != nil {
		return Result{}, err
	}

	return Result{Spins: spins, CutWeight: round1e9(cut)}, nil
}

// canonicalizeInPlace flips the whole assignment when spins[0] == +1.
// Cut weights are invariant under a global flip, so every bipartition has
// exactly one canonical representative.
//
// Complexity: O(n).
func canonicalizeInPlace(s ising.Spins) {
	if len(s) == 0 || s[0] == -1 {
		return
	}

	var i int
	for i = 0; i < len(s); i++ {
		s[i] = -s[i]
	}
}

// flipGain returns the cut-weight change caused by moving node k to the
// other side of the bipartition:
//
//	Δ = Σ_{j: s_j == s_k} w_kj − Σ_{j: s_j != s_k} w_kj
//
// Positive Δ means the flip improves the cut.
//
// Complexity: O(n).
func flipGain(wf []float64, s ising.Spins, n, k int) float64 {
	var (
		row  = wf[k*n : (k+1)*n]
		gain float64
		j    int
	)
	for j = 0; j < n; j++ {
		if j == k {
			continue
		}
		if s[j] == s[k] {
			gain += row[j]
		} else {
			gain -= row[j]
		}
	}

	return gain
}

// cutFromFlat computes the cut weight of s over the prefetched buffer.
// Used internally to guide the search; the dispatcher recomputes the final
// value from the original matrix.
//
// Complexity: O(n²).
func cutFromFlat(wf []float64, s ising.Spins, n int) float64 {
	var (
		sum  float64
		i, j int
	)
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if s[i] != s[j] {
				sum += wf[i*n+j]
			}
		}
	}

	return sum
}

// deadlineFor converts a soft TimeLimit into an absolute deadline.
// The zero time means "unlimited".
// Complexity: O(1).
func deadlineFor(tl time.Duration) time.Time {
	if tl <= 0 {
		return time.Time{}
	}

	return time.Now().Add(tl)
}

// expired reports whether the soft deadline has passed.
// Complexity: O(1).
func expired(deadline time.Time) bool {
	return !deadline.IsZero() && time.Now().After(deadline)
}

// round1e9 returns x rounded to 1e-9 absolute precision.
// Complexity: O(1).
func round1e9(x float64) float64 {
	return math.Round(x*roundScale) / roundScale
}
