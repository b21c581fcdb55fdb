// Package transition models a total function f: [0,n) → [0,n) — the
// transition function of a deterministic state machine, permutation or
// iterated map. Totality is the whole contract: every index has exactly
// one image, and the mapping may be many-to-one.
//
// What:
//
//   - Transition — the minimal interface: Len() and Apply(i).
//   - Explicit — array-backed lookup, O(1) per application, validated
//     for totality at construction.
//   - Func — rule-backed, recomputed per access; the rule's output is
//     range-checked on every Apply.
//   - Images, Identity, Compose — enumeration and combinators.
//
// Why:
//
//   - Input type for the cycles package (component/period/distance
//     analysis of functional graphs).
//   - A permutation, an automaton's step function and a modular map
//     all fit the same two-method surface.
//
// Errors:
//
//   - ErrNotTotal: NewExplicit rejects a mapping with an image outside
//     [0,n); Func panics with this sentinel when its rule misbehaves at
//     Apply time (the ill-formed rule is propagated, never masked).
//   - ErrNilRule: NewFunc received a nil rule.
//   - ErrLengthMismatch: Compose received transitions of unequal length.
//   - ErrIndexRange: Apply panics with this sentinel for an index
//     outside [0,n) — a programmer error, mirroring slice indexing.
package transition
