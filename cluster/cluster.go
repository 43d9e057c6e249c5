// Package cluster - the points → weights → cut → labels pipeline.
package cluster

import (
	"github.com/katalvlaran/qcut/ising"
	"github.com/katalvlaran/qcut/matrix"
	"github.com/katalvlaran/qcut/maxcut"
	"github.com/katalvlaran/qcut/pointset"
)

// Result holds a two-way clustering of a point set.
type Result struct {
	// Labels assigns each point to cluster 0 or 1, index-aligned with the
	// input. Canonical: Labels[0] == 0.
	Labels []int

	// Spins is the underlying bipartition (−1 ⇒ cluster 0, +1 ⇒ cluster 1).
	Spins ising.Spins

	// CutWeight is the total inter-cluster distance achieved by the
	// partition, stabilized to 1e-9.
	CutWeight float64
}

// Bipartition clusters ps into two groups by solving max-cut over the
// Euclidean weight matrix of the points.
//
// Contracts:
//   - ps must have uniform dimension and at least 2 points.
//   - opts follows maxcut.Options semantics; maxcut.DefaultOptions() gives
//     deterministic annealing, maxcut.Exact the true optimum (small n).
//
// Complexity: O(n²·d) for the matrix plus the chosen solver's cost.
func Bipartition(ps pointset.PointSet, opts maxcut.Options) (Result, error) {
	w, err := pointset.DistanceMatrix(ps)
	if err != nil {
		return Result{}, err
	}

	res, err := maxcut.Solve(w, opts)
	if err != nil {
		return Result{}, err
	}

	var (
		labels = make([]int, len(res.Spins))
		i      int
	)
	for i = 0; i < len(res.Spins); i++ {
		if res.Spins[i] == 1 {
			labels[i] = 1
		}
	}

	return Result{Labels: labels, Spins: res.Spins, CutWeight: res.CutWeight}, nil
}

// Formulate builds the weight matrix and the Ising cost model of ps without
// solving it — the handoff form for external optimization engines. The
// model satisfies Energy(s) + Offset == cut weight for every assignment s
// (see the ising package).
//
// Complexity: O(n²·d).
func Formulate(ps pointset.PointSet) (*matrix.Dense, *ising.Model, error) {
	w, err := pointset.DistanceMatrix(ps)
	if err != nil {
		return nil, nil, err
	}

	m, err := ising.FromWeights(w)
	if err != nil {
		return nil, nil, err
	}

	return w, m, nil
}
