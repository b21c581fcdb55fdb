// Package cycles discovers the cycle structure of functional graphs:
// the directed graphs of total functions f: [0,n) → [0,n), where every
// node has out-degree exactly 1. Every weakly-connected piece of such a
// graph contains exactly one cycle, reachable from every node in the
// piece; all other nodes are "feeders" hanging off it in trees.
//
// What:
//
//   - Components — lazy, pull-based enumeration of all cycles; each
//     cycle is yielded exactly once, feeder nodes never appear.
//   - Period — the LCM of all cycle lengths (after Period(t) steps every
//     node has returned to its own cycle phase).
//   - MaxDistance — the longest feeder tail anywhere in the graph.
//   - DistanceTour — per-index distance to its cycle, its cycle's length
//     ("tour length") and a representative index of that cycle.
//
// Why:
//
//   - Cycle structure of a deterministic automaton's step function.
//   - Orbit analysis of permutations and modular maps.
//   - Detecting eventual periodicity of iterated transformations.
//
// How (all four analyses share one internal walker):
//
//	Two bit vectors track bookkeeping: glb marks indices not yet owned
//	by any finished walk, cur marks indices untouched by the current
//	walk (cleared progressively, never reset). A walk starts at the
//	lowest glb bit, follows f while the next index is set in BOTH
//	vectors, and terminates either by revisiting its own trail
//	(closing a fresh cycle) or by stepping into territory a previous
//	walk finished (a feeder merge). After each walk glb &= cur.
//
// Complexity:
//
//   - Every analysis: O(n) time amortized, O(n) memory. Each index is
//     pushed on a walk stack exactly once across all sweeps, because a
//     finished walk removes its indices from glb and the cur guard
//     forbids revisits within a walk.
//
// Errors:
//
//   - ErrNilTransition: every entry point rejects a nil Transition.
//
// See example_test.go for the worked f = [1,2,0,2,3,4] scenario.
package cycles
