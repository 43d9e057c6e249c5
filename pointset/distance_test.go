package pointset_test

import (
	"context"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/qcut/matrix"
	"github.com/katalvlaran/qcut/pointset"
)

const distTol = 1e-9

// twoTightPairs is the canonical scenario used across the module's tests:
// two tight pairs of points far apart along the x axis.
func twoTightPairs() pointset.PointSet {
	return pointset.PointSet{
		{0, 0, 0},
		{0, 0, 0.1},
		{1, 0, 0},
		{1, 0, 0.1},
	}
}

// TestDistanceMatrix_Degenerate covers N=0 and N=1 per the builder contract.
func TestDistanceMatrix_Degenerate(t *testing.T) {
	// Empty set: 0x0 matrix, no error.
	w, err := pointset.DistanceMatrix(nil)
	require.NoError(t, err)
	assert.Equal(t, 0, w.Rows())
	assert.Equal(t, 0, w.Cols())

	// Single point: [[0]].
	w, err = pointset.DistanceMatrix(pointset.PointSet{{1, 2, 3}})
	require.NoError(t, err)
	require.Equal(t, 1, w.Rows())
	v, err := w.At(0, 0)
	require.NoError(t, err)
	assert.Zero(t, v)
}

// TestDistanceMatrix_DimensionMismatch rejects mixed point dimensions.
func TestDistanceMatrix_DimensionMismatch(t *testing.T) {
	_, err := pointset.DistanceMatrix(pointset.PointSet{{0, 0}, {1}})
	assert.ErrorIs(t, err, pointset.ErrDimensionMismatch)
	assert.ErrorIs(t, err, matrix.ErrInvalidInput)
}

// TestDistanceMatrix_TwoTightPairs pins the concrete geometry: intra-pair
// distances ~0.1, cross-pair distances ~1.0.
func TestDistanceMatrix_TwoTightPairs(t *testing.T) {
	w, err := pointset.DistanceMatrix(twoTightPairs())
	require.NoError(t, err)

	at := func(i, j int) float64 {
		t.Helper()
		v, aerr := w.At(i, j)
		require.NoError(t, aerr)
		return v
	}

	assert.InDelta(t, 0.1, at(0, 1), distTol)
	assert.InDelta(t, 0.1, at(2, 3), distTol)
	assert.InDelta(t, 1.0, at(0, 2), 0.05)
	assert.InDelta(t, 1.0, at(0, 3), 0.05)
	assert.InDelta(t, 1.0, at(1, 2), 0.05)
	assert.InDelta(t, 1.0, at(1, 3), 0.05)
}

// TestDistanceMatrix_Properties checks, on a seeded random cloud, that the
// result is symmetric, zero-diagonal, and matches a direct norm computation.
func TestDistanceMatrix_Properties(t *testing.T) {
	const (
		n = 17
		d = 4
	)
	rng := rand.New(rand.NewSource(42))
	ps := make(pointset.PointSet, n)
	for i := range ps {
		ps[i] = make([]float64, d)
		for k := range ps[i] {
			ps[i][k] = rng.NormFloat64()
		}
	}

	w, err := pointset.DistanceMatrix(ps)
	require.NoError(t, err)

	// The builder's own output must satisfy the weight-matrix contract.
	nn, err := matrix.ValidateWeights(w, distTol)
	require.NoError(t, err)
	require.Equal(t, n, nn)

	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			want := 0.0
			for k := 0; k < d; k++ {
				diff := ps[i][k] - ps[j][k]
				want += diff * diff
			}
			want = math.Sqrt(want)

			got, aerr := w.At(i, j)
			require.NoError(t, aerr)
			assert.InDelta(t, want, got, distTol, "W[%d][%d]", i, j)

			sym, aerr := w.At(j, i)
			require.NoError(t, aerr)
			assert.Equal(t, got, sym, "W[%d][%d] != W[%d][%d]", i, j, j, i)
		}
	}
}

// TestDistanceMatrixContext_MatchesSerial verifies the parallel build is
// bit-identical to the serial one regardless of worker count.
func TestDistanceMatrixContext_MatchesSerial(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	ps := make(pointset.PointSet, 33)
	for i := range ps {
		ps[i] = []float64{rng.Float64(), rng.Float64(), rng.Float64()}
	}

	serial, err := pointset.DistanceMatrix(ps)
	require.NoError(t, err)

	for _, workers := range []int{1, 2, 8} {
		par, perr := pointset.DistanceMatrixContext(context.Background(), ps, pointset.BuildOptions{Workers: workers})
		require.NoError(t, perr)

		for i := 0; i < len(ps); i++ {
			assert.Equal(t, serial.Row(i), par.Row(i), "workers=%d row=%d", workers, i)
		}
	}
}

// TestDistanceMatrixContext_Cancel verifies a cancelled context aborts the build.
func TestDistanceMatrixContext_Cancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ps := make(pointset.PointSet, 64)
	for i := range ps {
		ps[i] = []float64{float64(i)}
	}

	_, err := pointset.DistanceMatrixContext(ctx, ps, pointset.DefaultBuildOptions())
	assert.ErrorIs(t, err, context.Canceled)
}

// TestValidate_NilPoint rejects nil points in non-zero dimension sets.
func TestValidate_NilPoint(t *testing.T) {
	err := pointset.PointSet{{1.0}, nil}.Validate()
	assert.ErrorIs(t, err, pointset.ErrNilPoint)
}
