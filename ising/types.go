// Package ising - spin types and error definitions.
package ising

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/qcut/matrix"
)

// ErrDomain is the broad kind for requests that are structurally well-formed
// but mathematically undefined (e.g. max-cut over fewer than two nodes).
// Domain sentinels below wrap it; input-shape sentinels wrap
// matrix.ErrInvalidInput instead.
var ErrDomain = errors.New("ising: domain error")

var (
	// ErrTooFewNodes is returned when a cost model is requested for n < 2;
	// a cut needs two sides.
	ErrTooFewNodes = fmt.Errorf("%w: max-cut needs at least 2 nodes", ErrDomain)

	// ErrSpinLength is returned when a spin assignment's length does not
	// match the model/matrix order.
	ErrSpinLength = fmt.Errorf("%w: ising: spin assignment length mismatch", matrix.ErrInvalidInput)

	// ErrSpinDomain is returned when a spin value is outside {-1,+1}.
	ErrSpinDomain = fmt.Errorf("%w: ising: spin value outside {-1,+1}", matrix.ErrInvalidInput)
)

// Spins is a spin assignment: one value in {-1,+1} per node, indexed by
// node position. It represents a bipartition (cluster membership).
type Spins []int8

// Validate checks that every spin is -1 or +1 and, when n >= 0, that the
// assignment has exactly n entries.
//
// Complexity: O(n).
func (s Spins) Validate(n int) error {
	if n >= 0 && len(s) != n {
		return ErrSpinLength
	}

	var i int
	for i = 0; i < len(s); i++ {
		if s[i] != -1 && s[i] != 1 {
			return ErrSpinDomain
		}
	}

	return nil
}

// Flip returns a new assignment with every spin negated. Cut weights are
// invariant under a global flip; this helper exists for tests and for
// canonicalization at solver surfaces.
//
// Complexity: O(n) time and space.
func (s Spins) Flip() Spins {
	out := make(Spins, len(s))
	var i int
	for i = 0; i < len(s); i++ {
		out[i] = -s[i]
	}

	return out
}

// Clone returns a copy of the assignment.
// Complexity: O(n) time and space.
func (s Spins) Clone() Spins {
	out := make(Spins, len(s))
	copy(out, s)

	return out
}
