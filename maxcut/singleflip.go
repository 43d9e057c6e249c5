// Package maxcut - single-flip local search (the 1-opt of cuts).
//
// SingleFlip repeatedly moves the one node whose side change raises the cut
// the most (best-improvement policy) and stops at a local optimum, when the
// best gain no longer exceeds opts.Eps, or when a budget expires.
//
// Design:
//   - Deterministic: the start assignment comes from the seeded RNG stream,
//     and ties between equal gains resolve to the smallest node index.
//   - Strict sentinels only; no panics, no logging.
//
// Complexity: O(passes·n²) time, O(n) space.
package maxcut

import (
	"math/rand"

	"github.com/katalvlaran/qcut/ising"
)

// solveSingleFlip runs best-improvement local search from a seeded random
// start.
func solveSingleFlip(wf []float64, n int, opts Options) (ising.Spins, error) {
	var (
		rng = rngFromSeed(opts.Seed)
		s   = randomSpins(n, rng)
	)
	localSearch(wf, s, n, opts)

	return s, nil
}

// localSearch improves s in place until no single flip gains more than
// opts.Eps, or opts.MaxIters passes ran, or the soft deadline expired.
// Shared with the annealing solver as its polish phase.
//
// Complexity: O(passes·n²) time, O(1) extra space.
func localSearch(wf []float64, s ising.Spins, n int, opts Options) {
	var (
		deadline = deadlineFor(opts.TimeLimit)
		pass     int
		k        int
		gain     float64
		bestGain float64
		bestK    int
	)
	for pass = 0; pass < opts.MaxIters; pass++ {
		if expired(deadline) {
			return
		}

		bestGain, bestK = 0, -1
		for k = 0; k < n; k++ {
			gain = flipGain(wf, s, n, k)
			if gain > bestGain {
				bestGain, bestK = gain, k
			}
		}

		// Local optimum: no flip clears the strict-improvement threshold.
		if bestK < 0 || bestGain <= opts.Eps {
			return
		}
		s[bestK] = -s[bestK]
	}
}

// randomSpins draws an assignment uniformly from {-1,+1}^n using rng.
// Complexity: O(n) time and space.
func randomSpins(n int, rng *rand.Rand) ising.Spins {
	s := make(ising.Spins, n)

	var i int
	for i = 0; i < n; i++ {
		if rng.Intn(2) == 0 {
			s[i] = -1
		} else {
			s[i] = 1
		}
	}

	return s
}
