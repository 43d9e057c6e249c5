// Package maxcut - exhaustive enumeration over bipartitions.
package maxcut

import (
	"math/bits"

	"github.com/katalvlaran/qcut/ising"
)

// solveExact enumerates every distinct bipartition and returns an optimal
// assignment.
//
// Spin 0 is pinned to −1: a global flip leaves the cut unchanged, so the
// 2^(n−1) assignments with s_0 == −1 cover all distinct cuts. Enumeration
// follows the binary-reflected gray code, so consecutive assignments differ
// in exactly one spin and the running cut is maintained with an O(n)
// delta instead of an O(n²) recount.
//
// Contracts:
//   - 2 <= n <= exactMaxNodes; larger instances yield ErrTooManyNodes.
//
// Complexity: O(2ⁿ·n) time, O(n) space.
func solveExact(wf []float64, n int) (ising.Spins, error) {
	if n > exactMaxNodes {
		return nil, ErrTooManyNodes
	}

	var (
		cur  = make(ising.Spins, n) // running assignment, s_0 pinned
		best ising.Spins
		cut     float64 // running cut of cur
		bestCut float64
		i       int
	)
	for i = 0; i < n; i++ {
		cur[i] = -1
	}
	best = cur.Clone() // all on one side: cut 0
	bestCut = 0

	var (
		m     uint64 // gray-code step counter over the free spins 1..n-1
		steps = uint64(1) << uint(n-1)
		k     int // spin flipped at this step
	)
	for m = 1; m < steps; m++ {
		// The bit that changes between gray(m-1) and gray(m) is the
		// lowest set bit of m; spin 0 is pinned, so offset by one.
		k = bits.TrailingZeros64(m) + 1

		cut += flipGain(wf, cur, n, k)
		cur[k] = -cur[k]

		if cut > bestCut {
			bestCut = cut
			copy(best, cur)
		}
	}

	return best, nil
}
