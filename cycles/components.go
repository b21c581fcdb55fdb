package cycles

import "github.com/katalvlaran/funcgraph/transition"

// Iterator lazily enumerates the cycles of a functional graph. Obtain
// one from Components and drain it with Next; abandoning the iterator
// early abandons the remaining traversal work.
//
// An Iterator is single-use and not safe for concurrent use.
type Iterator struct {
	w *walker
}

// Components returns a lazy enumeration of all cycles of t.
//
// Each call to Next yields one cycle as a slice of indices in
// first-visit order around the cycle. Guarantees:
//   - every cycle of t is yielded exactly once;
//   - feeder indices (distance > 0) never appear in any group;
//   - a self-loop f(i) == i is a valid one-element group;
//   - group order and each group's starting element are unspecified.
//
// Returns ErrNilTransition if t is nil.
func Components(t transition.Transition) (*Iterator, error) {
	if t == nil {
		return nil, ErrNilTransition
	}

	return &Iterator{w: newWalker(t)}, nil
}

// Next returns the next cycle and true, or (nil, false) when the whole
// graph has been traversed. The returned slice is freshly allocated and
// safe to retain.
func (it *Iterator) Next() ([]int, bool) {
	// Walks that merge into already-finished territory are feeder-only:
	// they yield no group and are skipped here.
	for {
		s, ok := it.w.next()
		if !ok {
			return nil, false
		}
		if !s.closedCycle() {
			continue
		}
		group := make([]int, len(s.members()))
		copy(group, s.members())

		return group, true
	}
}

// AllComponents drains Components(t) into a slice of groups.
// Convenience for callers that do not need laziness.
//
// Returns ErrNilTransition if t is nil.
func AllComponents(t transition.Transition) ([][]int, error) {
	it, err := Components(t)
	if err != nil {
		return nil, err
	}
	var groups [][]int
	for group, ok := it.Next(); ok; group, ok = it.Next() {
		groups = append(groups, group)
	}

	return groups, nil
}
