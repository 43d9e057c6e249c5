// Package maxcut - simulated annealing over spin assignments.
//
// Each restart walks a Metropolis chain over single-spin flips: improving
// moves are always taken, worsening moves are taken with probability
// exp(Δ/T), and T decays geometrically per sweep. Restarts run on
// independent SplitMix64-derived streams and the best local-search-polished
// result wins.
//
// Design:
//   - Deterministic per seed: restart r uses restartSeed(seed, r), so runs
//     are reproducible and restarts are decorrelated.
//   - Sweep order is a fresh Fisher-Yates permutation per sweep, drawn from
//     the restart's own stream.
//   - Soft time budget: the deadline is checked between sweeps and between
//     restarts; on expiry the best assignment so far is returned.
//
// Complexity: O(restarts·sweeps·n²) time, O(n) space per restart.
package maxcut

import (
	"math"
	"math/rand"
	"time"

	"github.com/katalvlaran/qcut/ising"
)

// solveAnneal runs opts.Restarts independent annealing chains and returns
// the best assignment found.
func solveAnneal(wf []float64, n int, opts Options) (ising.Spins, error) {
	var (
		deadline = deadlineFor(opts.TimeLimit)
		initTemp = opts.InitTemp
		best     ising.Spins
		bestCut  = math.Inf(-1)
		r        int
	)
	if initTemp == 0 {
		initTemp = defaultInitTemp(wf)
	}

	for r = 0; r < opts.Restarts; r++ {
		if best != nil && expired(deadline) {
			break
		}

		rng := rngFromSeed(restartSeed(opts.Seed, uint64(r)))
		s := annealOnce(wf, n, initTemp, opts, rng, deadline)

		// Polish the chain's endpoint to its local optimum.
		localSearch(wf, s, n, opts)

		if cut := cutFromFlat(wf, s, n); cut > bestCut {
			bestCut = cut
			best = s
		}
	}

	return best, nil
}

// annealOnce runs a single Metropolis chain and returns the best assignment
// it visited (not the endpoint: late high-temperature noise must not erase
// a good state).
func annealOnce(wf []float64, n int, temp float64, opts Options, rng *rand.Rand, deadline time.Time) ising.Spins {
	var (
		s       = randomSpins(n, rng)
		cut     = cutFromFlat(wf, s, n)
		best    = s.Clone()
		bestCut = cut
		order   = make([]int, n)
		sweep   int
		i, k    int
		delta   float64
	)
	for i = 0; i < n; i++ {
		order[i] = i
	}

	for sweep = 0; sweep < opts.MaxIters; sweep++ {
		if expired(deadline) {
			break
		}

		shuffleInPlace(order, rng)
		for i = 0; i < n; i++ {
			k = order[i]
			delta = flipGain(wf, s, n, k)

			// Metropolis acceptance: always take improvements, take
			// worsening moves with probability exp(Δ/T).
			if delta > 0 || (temp > 0 && rng.Float64() < math.Exp(delta/temp)) {
				s[k] = -s[k]
				cut += delta
				if cut > bestCut {
					bestCut = cut
					copy(best, s)
				}
			}
		}

		temp *= opts.CoolingRate
	}

	return best
}

// defaultInitTemp derives a starting temperature from the instance: the
// largest edge weight, so early sweeps accept most moves.
// Complexity: O(n²).
func defaultInitTemp(wf []float64) float64 {
	var (
		maxW float64
		i    int
	)
	for i = 0; i < len(wf); i++ {
		if wf[i] > maxW {
			maxW = wf[i]
		}
	}
	if maxW == 0 {
		return 1
	}

	return maxW
}

// shuffleInPlace performs an in-place Fisher-Yates shuffle of a using rng.
// Complexity: O(n) time, O(1) space.
func shuffleInPlace(a []int, rng *rand.Rand) {
	var i, j int
	for i = len(a) - 1; i > 0; i-- {
		j = rng.Intn(i + 1)
		a[i], a[j] = a[j], a[i]
	}
}
