package cluster_test

import (
	"fmt"

	"github.com/katalvlaran/qcut/cluster"
	"github.com/katalvlaran/qcut/maxcut"
	"github.com/katalvlaran/qcut/pointset"
)

// Cluster two tight groups of points into two classes.
func ExampleBipartition() {
	ps := pointset.PointSet{
		{0, 0},
		{0.1, 0},
		{5, 5},
		{5, 5.1},
	}

	opts := maxcut.DefaultOptions()
	opts.Algo = maxcut.Exact

	res, err := cluster.Bipartition(ps, opts)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	fmt.Println("labels:", res.Labels)
	// Output:
	// labels: [0 0 1 1]
}
