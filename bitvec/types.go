// Package bitvec defines the Vector type and sentinel errors
// for the bitvec subpackage of github.com/katalvlaran/funcgraph.
package bitvec

import "errors"

// Sentinel errors for bitvec operations. Both mark programmer errors
// and are raised via panic, never returned.
var (
	// ErrIndexRange indicates a bit index outside [0, length).
	ErrIndexRange = errors.New("bitvec: index out of range")
	// ErrNegativeLength indicates a constructor received a negative length.
	ErrNegativeLength = errors.New("bitvec: length must be non-negative")
)

const (
	// wordShift converts a bit index to a word index (i >> wordShift).
	wordShift = 6
	// wordMask extracts the in-word bit position (i & wordMask).
	wordMask = 63
)

// Vector is a fixed-length packed bit vector. The logical length is set
// at construction and never changes; bits live in [0, length).
//
// Invariant: padding bits at positions ≥ length inside the final word are
// always zero. Every mutating operation maintains this, so Count, Equal
// and iteration may trust raw word contents.
type Vector struct {
	length int
	words  []uint64
}

// wordCount returns the number of 64-bit words needed for length bits.
func wordCount(length int) int {
	return (length + wordMask) >> wordShift
}

// tailMask returns the mask of valid bits in the final word, or all-ones
// when length is a multiple of 64. Undefined for length == 0 (no words).
func tailMask(length int) uint64 {
	if r := length & wordMask; r != 0 {
		return (uint64(1) << r) - 1
	}
	return ^uint64(0)
}

// maskTail zeroes padding bits in the final word, restoring the Vector
// invariant after a whole-word mutation.
func (v *Vector) maskTail() {
	if n := len(v.words); n > 0 {
		v.words[n-1] &= tailMask(v.length)
	}
}

// checkIndex panics with ErrIndexRange unless 0 ≤ i < length.
func (v *Vector) checkIndex(i int) {
	if i < 0 || i >= v.length {
		panic(ErrIndexRange)
	}
}
