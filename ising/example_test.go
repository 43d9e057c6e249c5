package ising_test

import (
	"fmt"
	"math"

	"github.com/katalvlaran/qcut/ising"
	"github.com/katalvlaran/qcut/pointset"
)

// Formulate a 4-point clustering instance as an Ising model and verify the
// cut identity on one assignment.
func ExampleFromWeights() {
	ps := pointset.PointSet{
		{0, 0},
		{0, 1},
		{5, 0},
		{5, 1},
	}

	w, err := pointset.DistanceMatrix(ps)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	model, err := ising.FromWeights(w)
	if err != nil {
		fmt.Println("error:", err)
		return
	}

	// Put the left pair on one side, the right pair on the other.
	s := ising.Spins{-1, -1, 1, 1}

	energy, _ := model.Energy(s)
	cut, _ := ising.CutValue(w, s)

	fmt.Printf("nodes: %d\n", model.N())
	fmt.Printf("identity holds: %t\n", math.Abs(energy+model.Offset()-cut) < 1e-9)
	// Output:
	// nodes: 4
	// identity holds: true
}
