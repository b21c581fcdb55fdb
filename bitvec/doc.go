// Package bitvec implements a fixed-length bit vector packed into
// 64-bit words, with full set algebra and forward set-bit scanning.
//
// What:
//
//   - Vector represents a set of integers in [0, length) as ⌈length/64⌉ words.
//   - Copy-producing And/Or/Xor/Not and in-place AndWith/OrWith/XorWith/Invert.
//   - Masked population count, logical equality, ascending enumeration.
//   - NextSet(from) — lowest set bit ≥ from with an explicit ok flag.
//
// Why:
//
//   - Visited-set bookkeeping for linear-time graph sweeps (see cycles).
//   - Dense membership tests where map[int]struct{} is too heavy.
//   - Word-level set algebra at one CPU instruction per 64 elements.
//
// Complexity:
//
//   - Get/Set/Add/Remove: O(1).
//   - And/Or/Xor/Not, Count, Equal: O(length/64).
//   - NextSet: O(length/64) worst case, O(1) when the next bit is near.
//
// Length semantics:
//
//   - A Vector's length is fixed at construction and never changes.
//   - Copy-producing binary ops return a vector of the LONGER operand's
//     length: And zero-fills beyond the shorter operand, Or/Xor pass the
//     longer operand's words through unchanged.
//   - In-place ops touch only the overlapping word range and re-mask the
//     receiver's final word, so the receiver's length is never extended.
//
// Errors:
//
//   - ErrIndexRange: Get/Set/Add/Remove panic with this sentinel when the
//     index is outside [0, length). Out-of-range access is a programmer
//     error, mirroring slice indexing.
//   - ErrNegativeLength: constructors panic with this sentinel for a
//     negative length.
package bitvec
