// Package cycles defines result types and sentinel errors for the
// cycles subpackage of github.com/katalvlaran/funcgraph.
package cycles

import "errors"

// Sentinel errors for cycles operations.
var (
	// ErrNilTransition indicates an analysis received a nil Transition.
	ErrNilTransition = errors.New("cycles: transition must be non-nil")
)

// Tour holds the full per-index cycle profile of a functional graph.
// All three slices have length n and are indexed by node.
type Tour struct {
	// Distances[i] is the number of applications of f needed to move i
	// onto its component's cycle; 0 iff i lies on the cycle itself.
	Distances []int
	// TourLengths[i] is the length (node count) of the cycle that i
	// eventually reaches.
	TourLengths []int
	// Roots[i] is the representative of i's cycle: the first index of
	// that cycle discovered during analysis. Two indices share a cycle
	// iff they share a root.
	Roots []int
}
