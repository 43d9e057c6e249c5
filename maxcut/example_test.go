package maxcut_test

import (
	"fmt"

	"github.com/katalvlaran/qcut/maxcut"
	"github.com/katalvlaran/qcut/pointset"
)

// Solve the two-tight-pairs instance exactly: the optimal cut separates the
// pairs.
func ExampleSolve() {
	ps := pointset.PointSet{
		{0, 0, 0},
		{0, 0, 0.1},
		{1, 0, 0},
		{1, 0, 0.1},
	}

	w, err := pointset.DistanceMatrix(ps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	opts := maxcut.DefaultOptions()
	opts.Algo = maxcut.Exact

	res, err := maxcut.Solve(w, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("spins:", res.Spins)
	fmt.Printf("cut weight: %.6f\n", res.CutWeight)
	// Output:
	// spins: [-1 -1 1 1]
	// cut weight: 4.009975
}
