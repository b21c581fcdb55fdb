package cycles

import (
	"github.com/katalvlaran/funcgraph/bitvec"
	"github.com/katalvlaran/funcgraph/transition"
)

// sweep is the outcome of one walk through the functional graph.
//
// stack aliases the walker's internal buffer and is only valid until
// the next call to next(); consumers must copy anything they keep.
type sweep struct {
	// stack lists the indices visited by this walk, in visit order.
	stack []int
	// entry is the index at which the walk terminated: either the first
	// repeated index of a freshly closed cycle, or the index at which
	// the walk stepped into territory a previous walk finished.
	entry int
	// cycleStart is the position of entry within stack when this walk
	// closed a new cycle (stack[cycleStart:] is the cycle in first-visit
	// order), or -1 when the walk merged into known territory.
	cycleStart int
}

// closedCycle reports whether this sweep discovered a new cycle.
func (s sweep) closedCycle() bool { return s.cycleStart >= 0 }

// members returns the cycle's indices in first-visit order.
// Only meaningful when closedCycle() is true.
func (s sweep) members() []int { return s.stack[s.cycleStart:] }

// walker is the single traversal engine behind Components, Period,
// MaxDistance and DistanceTour. It owns the glb/cur bit vectors, the
// walk stack and the low starting-point cursor described in doc.go.
type walker struct {
	t transition.Transition
	// glb marks indices not yet owned by any finished walk. It shrinks
	// monotonically: glb &= cur after every sweep.
	glb *bitvec.Vector
	// cur marks indices untouched by the current walk. It is cleared
	// progressively across the whole analysis, never reset: an index
	// absent from cur but present in glb was cleared by THIS walk.
	cur *bitvec.Vector
	// low is the starting index of the next walk.
	low int
	// done is set once no unvisited starting index remains.
	done bool
	// stack is the reusable walk buffer; total appends across all
	// sweeps are exactly n.
	stack []int
}

// newWalker prepares a traversal over t. The caller guarantees t != nil.
func newWalker(t transition.Transition) *walker {
	n := t.Len()

	return &walker{
		t:    t,
		glb:  bitvec.NewFilled(n),
		cur:  bitvec.NewFilled(n),
		done: n == 0,
	}
}

// next performs one walk and reports its outcome. The second return is
// false once every index has been accounted for.
//
// One walk, starting at idx = w.low:
//  1. Clear idx from cur, push idx on the stack, step idx = f(idx).
//  2. Continue while idx is set in BOTH cur and glb — i.e. it has not
//     been visited by this walk nor owned by a finished one.
//  3. On exit, idx either closed a fresh cycle (still in glb, lost from
//     cur by this very walk) or merged into a finished walk's territory
//     (absent from glb).
//  4. Fold the walk into global state: glb &= cur, then advance low to
//     the lowest still-unvisited index strictly above the old one.
func (w *walker) next() (sweep, bool) {
	if w.done {
		return sweep{}, false
	}

	idx := w.low
	w.stack = w.stack[:0]
	for {
		w.cur.Remove(idx)
		w.stack = append(w.stack, idx)
		idx = w.t.Apply(idx)
		if !w.cur.Get(idx) || !w.glb.Get(idx) {
			break
		}
	}

	s := sweep{stack: w.stack, entry: idx, cycleStart: -1}
	if w.glb.Get(idx) {
		// Fresh cycle: idx was cleared from cur by this walk, so its
		// first occurrence on the stack starts the cycle. The scan is
		// bounded by this walk's stack, keeping total work O(n).
		for pos, visited := range w.stack {
			if visited == idx {
				s.cycleStart = pos

				break
			}
		}
	}

	w.glb.AndWith(w.cur)
	if nxt, ok := w.glb.NextSet(w.low + 1); ok {
		w.low = nxt
	} else {
		w.done = true
	}

	return s, true
}
