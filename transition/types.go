// Package transition defines the Transition interface and sentinel
// errors for the transition subpackage of github.com/katalvlaran/funcgraph.
package transition

import "errors"

// Sentinel errors for transition construction and application.
var (
	// ErrNotTotal indicates a mapping whose image falls outside [0, n).
	ErrNotTotal = errors.New("transition: mapping must be total on [0, n)")
	// ErrNilRule indicates NewFunc received a nil rule.
	ErrNilRule = errors.New("transition: rule must be non-nil")
	// ErrLengthMismatch indicates Compose received transitions of unequal length.
	ErrLengthMismatch = errors.New("transition: transitions must have equal length")
	// ErrNegativeLength indicates a constructor received a negative length.
	ErrNegativeLength = errors.New("transition: length must be non-negative")
	// ErrIndexRange indicates Apply was called with an index outside [0, n).
	ErrIndexRange = errors.New("transition: index out of range")
)

// Transition is a total function f: [0, Len()) → [0, Len()).
//
// Contract: Apply is defined for every index in [0, Len()) and returns
// an index in the same range; it must not mutate state, so one value may
// be read by several analyses at once. Applying an out-of-range index is
// a programmer error (implementations panic with ErrIndexRange).
type Transition interface {
	// Len returns the size n of the domain and codomain.
	Len() int
	// Apply returns f(i) for 0 ≤ i < Len().
	Apply(i int) int
}

// Compile-time interface conformance checks.
var (
	_ Transition = (*Explicit)(nil)
	_ Transition = (*Func)(nil)
)

// Images returns [f(0), f(1), …, f(n-1)] — the full enumeration of t
// ordered by source index. A fresh slice is allocated per call.
func Images(t Transition) []int {
	out := make([]int, t.Len())
	for i := range out {
		out[i] = t.Apply(i)
	}

	return out
}
