// Package pointset - Euclidean distance-matrix builders (serial and parallel).
//
// Design principles:
//   - Pure functions of the input; the PointSet is never mutated.
//   - Strict sentinels only (see types.go); no panics on user input.
//   - Each matrix cell is written exactly once, so the parallel build is
//     race-free and bit-identical to the serial one.
package pointset

import (
	"context"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/qcut/matrix"
)

// DistanceMatrix builds the N×N Euclidean weight matrix of ps:
// W[i][j] = ||p_i − p_j||₂, W[i][i] = 0, W symmetric by construction.
//
// Contracts:
//   - ps must pass Validate (uniform dimension); otherwise the validation
//     sentinel is returned.
//   - N = 0 yields a 0×0 matrix, N = 1 yields [[0]], both without error.
//
// Complexity: O(N²·d) time, O(N²) space.
func DistanceMatrix(ps PointSet) (*matrix.Dense, error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}

	var n = len(ps)
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	var (
		i, j int
		d    float64
		row  []float64
	)
	for i = 0; i < n; i++ {
		row = w.Row(i)
		for j = i + 1; j < n; j++ {
			d = floats.Distance(ps[i], ps[j], 2)
			row[j] = d
			// Mirror cell: each (i,j)/(j,i) pair is owned by row i only.
			w.Row(j)[i] = d
		}
	}

	return w, nil
}

// DistanceMatrixContext is the parallel variant of DistanceMatrix.
// Row i owns the pairs (i, j) for j > i and writes both mirrored cells, so
// all writes target disjoint cells and no ordering between rows is needed.
//
// Contracts:
//   - Same input contract and output as DistanceMatrix.
//   - ctx cancellation aborts the build; the context error is returned and
//     the partial matrix is discarded.
//
// Complexity: O(N²·d) work split across opts.Workers goroutines.
func DistanceMatrixContext(ctx context.Context, ps PointSet, opts BuildOptions) (*matrix.Dense, error) {
	if err := ps.Validate(); err != nil {
		return nil, err
	}

	var n = len(ps)
	w, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, err
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.normalized())

	var i int
	for i = 0; i < n-1; i++ {
		row := i // capture the row owned by this task
		g.Go(func() error {
			// Bail out between rows once the context is done.
			if err := gctx.Err(); err != nil {
				return err
			}

			var (
				j   int
				d   float64
				dst = w.Row(row)
			)
			for j = row + 1; j < n; j++ {
				d = floats.Distance(ps[row], ps[j], 2)
				dst[j] = d
				w.Row(j)[row] = d
			}

			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return w, nil
}
