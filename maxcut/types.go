// Package maxcut - options, result types and error definitions for the
// max-cut solvers.
package maxcut

import (
	"fmt"
	"time"

	"github.com/katalvlaran/qcut/ising"
	"github.com/katalvlaran/qcut/matrix"
)

// Sentinel errors for solver configuration and dispatch. Option/shape
// violations wrap matrix.ErrInvalidInput; size limits wrap ising.ErrDomain.
var (
	// ErrUnsupportedAlgorithm is returned for an Algo value outside the
	// known set.
	ErrUnsupportedAlgorithm = fmt.Errorf("%w: maxcut: unsupported algorithm", matrix.ErrInvalidInput)

	// ErrBadOption is returned when an Options field is out of its
	// documented range (negative budgets, cooling rate outside (0,1), ...).
	ErrBadOption = fmt.Errorf("%w: maxcut: invalid option", matrix.ErrInvalidInput)

	// ErrTooManyNodes is returned when Exact is asked to enumerate an
	// instance larger than exactMaxNodes.
	ErrTooManyNodes = fmt.Errorf("%w: maxcut: instance too large for exact enumeration", ising.ErrDomain)
)

// exactMaxNodes bounds the Exact solver: 2^(n-1) bipartitions with an O(n)
// gray-code step stay well under a second up to this order.
const exactMaxNodes = 24

// Algo selects the solving strategy in Options.
type Algo int

const (
	// Anneal - seeded multi-restart simulated annealing (default).
	Anneal Algo = iota

	// Exact - exhaustive gray-code enumeration, optimal, n <= exactMaxNodes.
	Exact

	// SingleFlip - deterministic best-improvement local search only.
	SingleFlip
)

// Options configures a Solve call. Zero-valued budget fields select their
// defaults; DefaultOptions is the canonical starting point.
type Options struct {
	// Algo selects the solver strategy.
	Algo Algo

	// Seed drives every random choice. Policy: 0 selects a fixed default
	// stream, so results are reproducible by default; any other value is
	// used verbatim.
	Seed int64

	// Eps is the strict-improvement threshold for local search: a flip is
	// accepted only when it raises the cut by more than Eps. Must be >= 0.
	Eps float64

	// MaxIters bounds the work per phase: local-search passes for
	// SingleFlip, sweeps per restart for Anneal. 0 selects the default.
	MaxIters int

	// TimeLimit is a soft budget checked between passes/sweeps; on expiry
	// the best solution found so far is returned. 0 means unlimited.
	TimeLimit time.Duration

	// Restarts is the number of independent annealing restarts, each with
	// its own derived RNG stream. 0 selects the default. Ignored by other
	// algorithms.
	Restarts int

	// InitTemp is the starting temperature for Anneal. 0 derives it from
	// the instance (the largest edge weight). Must be >= 0.
	InitTemp float64

	// CoolingRate is the geometric cooling factor per sweep, in (0,1).
	// 0 selects the default.
	CoolingRate float64
}

// Defaults applied by DefaultOptions and by 0-valued fields.
const (
	defaultEps         = 1e-9
	defaultMaxIters    = 200
	defaultRestarts    = 4
	defaultCoolingRate = 0.95
)

// DefaultOptions returns Options with sane, deterministic defaults:
// annealing with 4 restarts, 200 sweeps each, geometric cooling 0.95,
// instance-derived starting temperature, fixed seed stream.
func DefaultOptions() Options {
	return Options{
		Algo:        Anneal,
		Seed:        0,
		Eps:         defaultEps,
		MaxIters:    defaultMaxIters,
		TimeLimit:   0,
		Restarts:    defaultRestarts,
		InitTemp:    0,
		CoolingRate: defaultCoolingRate,
	}
}

// Result holds the outcome of a max-cut solver.
type Result struct {
	// Spins is the bipartition in canonical orientation: Spins[0] == -1.
	// Nodes with equal spin share a side of the cut.
	Spins ising.Spins

	// CutWeight is the total weight of edges crossing the bipartition,
	// recomputed strictly from the input matrix and rounded to 1e-9.
	CutWeight float64
}

// validateOptions checks internal consistency of Options without touching
// the matrix. Only sentinel errors are returned.
//
// Complexity: O(1).
func validateOptions(opts Options) error {
	if opts.TimeLimit < 0 {
		return ErrBadOption
	}
	if opts.Eps < 0 {
		return ErrBadOption
	}
	if opts.MaxIters < 0 || opts.Restarts < 0 {
		return ErrBadOption
	}
	if opts.InitTemp < 0 {
		return ErrBadOption
	}
	if opts.CoolingRate < 0 || opts.CoolingRate >= 1 {
		return ErrBadOption
	}

	switch opts.Algo {
	case Anneal, Exact, SingleFlip:
		// ok
	default:
		return ErrUnsupportedAlgorithm
	}

	return nil
}

// normalized fills 0-valued budget fields with their defaults.
// Complexity: O(1).
func (o Options) normalized() Options {
	if o.MaxIters == 0 {
		o.MaxIters = defaultMaxIters
	}
	if o.Restarts == 0 {
		o.Restarts = defaultRestarts
	}
	if o.CoolingRate == 0 {
		o.CoolingRate = defaultCoolingRate
	}

	return o
}
