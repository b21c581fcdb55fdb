package cycles

import "github.com/katalvlaran/funcgraph/transition"

// DistanceTour computes the full per-index cycle profile of t: distance
// to the cycle, the cycle's length and the cycle's representative, as
// three parallel arrays of length n (see Tour).
//
// Bookkeeping per walk:
//   - A walk that closes a fresh cycle assigns distance 0, the cycle's
//     length and its representative (the walk's re-entry index) to every
//     cycle member; the feeder prefix of the walk stack is then unwound
//     LIFO, assigning distances 1, 2, 3, … outward from the cycle.
//   - A walk that merges into finished territory at entry inherits
//     entry's already-final profile: its feeders continue at distances
//     Distances[entry]+1, Distances[entry]+2, … back toward the walk's
//     start.
//
// Time: O(n) amortized. Memory: O(n).
// Returns ErrNilTransition if t is nil.
func DistanceTour(t transition.Transition) (*Tour, error) {
	if t == nil {
		return nil, ErrNilTransition
	}

	n := t.Len()
	tour := &Tour{
		Distances:   make([]int, n),
		TourLengths: make([]int, n),
		Roots:       make([]int, n),
	}

	w := newWalker(t)
	for s, ok := w.next(); ok; s, ok = w.next() {
		var base, size, root, feederTop int
		if s.closedCycle() {
			size = len(s.members())
			root = s.entry
			for _, i := range s.members() {
				tour.Distances[i] = 0
				tour.TourLengths[i] = size
				tour.Roots[i] = root
			}
			base, feederTop = 0, s.cycleStart
		} else {
			// entry belongs to an earlier, finalized walk.
			base = tour.Distances[s.entry]
			size = tour.TourLengths[s.entry]
			root = tour.Roots[s.entry]
			feederTop = len(s.stack)
		}

		dist := base
		for pos := feederTop - 1; pos >= 0; pos-- {
			dist++
			i := s.stack[pos]
			tour.Distances[i] = dist
			tour.TourLengths[i] = size
			tour.Roots[i] = root
		}
	}

	return tour, nil
}

// MaxDistance returns the longest feeder tail in t: the maximum, over
// all indices, of the distance to the index's cycle. 0 when every index
// lies on a cycle (and for the empty transition).
//
// Same walk bookkeeping as DistanceTour, tracking only distances.
//
// Time: O(n) amortized. Memory: O(n).
// Returns ErrNilTransition if t is nil.
func MaxDistance(t transition.Transition) (int, error) {
	if t == nil {
		return 0, ErrNilTransition
	}

	dist := make([]int, t.Len())
	maxDist := 0

	w := newWalker(t)
	for s, ok := w.next(); ok; s, ok = w.next() {
		var d, feederTop int
		if s.closedCycle() {
			// Cycle members keep distance 0 (zero value).
			d, feederTop = 0, s.cycleStart
		} else {
			d, feederTop = dist[s.entry], len(s.stack)
		}

		for pos := feederTop - 1; pos >= 0; pos-- {
			d++
			dist[s.stack[pos]] = d
		}
		if d > maxDist {
			maxDist = d
		}
	}

	return maxDist, nil
}
