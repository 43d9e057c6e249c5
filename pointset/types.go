// Package pointset - types, options and error definitions for the
// Euclidean distance-matrix builder.
package pointset

import (
	"fmt"
	"runtime"

	"github.com/katalvlaran/qcut/matrix"
)

// Sentinel errors for point-set validation. Both wrap matrix.ErrInvalidInput
// so callers can match the broad kind across the whole pipeline.
var (
	// ErrDimensionMismatch is returned when points do not share a single
	// dimension d.
	ErrDimensionMismatch = fmt.Errorf("%w: pointset: mixed point dimensions", matrix.ErrInvalidInput)

	// ErrNilPoint is returned when a point entry is nil.
	ErrNilPoint = fmt.Errorf("%w: pointset: nil point", matrix.ErrInvalidInput)
)

// PointSet is an ordered sequence of points, each a fixed-length vector of
// real numbers. The zero value (nil) is a valid empty set.
//
// A PointSet is read-only by convention: builders never mutate it, and
// callers must not mutate it while a build is in flight.
type PointSet [][]float64

// Len returns the number of points.
// Complexity: O(1).
func (ps PointSet) Len() int { return len(ps) }

// Dim returns the dimension of the points, or 0 for an empty set.
// It assumes a validated set; for unvalidated input call Validate first.
// Complexity: O(1).
func (ps PointSet) Dim() int {
	if len(ps) == 0 {
		return 0
	}

	return len(ps[0])
}

// Validate checks that every point is non-nil and shares one dimension.
// Zero-dimension points are permitted (all pairwise distances are 0).
//
// Complexity: O(N) time, O(1) space.
func (ps PointSet) Validate() error {
	if len(ps) == 0 {
		return nil
	}

	var (
		d = len(ps[0]) // dimension fixed by the first point
		i int
	)
	for i = 0; i < len(ps); i++ {
		if ps[i] == nil && d > 0 {
			return ErrNilPoint
		}
		if len(ps[i]) != d {
			return ErrDimensionMismatch
		}
	}

	return nil
}

// BuildOptions tunes the parallel distance-matrix build.
type BuildOptions struct {
	// Workers is the maximum number of concurrent row builders.
	// Values < 1 select runtime.NumCPU().
	Workers int
}

// DefaultBuildOptions returns BuildOptions with Workers = NumCPU.
func DefaultBuildOptions() BuildOptions {
	return BuildOptions{Workers: runtime.NumCPU()}
}

// normalized returns the effective worker count.
// Complexity: O(1).
func (o BuildOptions) normalized() int {
	if o.Workers < 1 {
		return runtime.NumCPU()
	}

	return o.Workers
}
