package bitvec

import (
	"math/bits"
	"strings"
)

// New returns an all-false Vector of the given logical length.
// Panics with ErrNegativeLength if length < 0.
func New(length int) *Vector {
	if length < 0 {
		panic(ErrNegativeLength)
	}
	return &Vector{
		length: length,
		words:  make([]uint64, wordCount(length)),
	}
}

// NewFilled returns an all-true Vector of the given logical length,
// with padding bits in the final word masked out.
// Panics with ErrNegativeLength if length < 0.
func NewFilled(length int) *Vector {
	v := New(length)
	for i := range v.words {
		v.words[i] = ^uint64(0)
	}
	v.maskTail()

	return v
}

// FromBools builds a Vector whose bit i mirrors bits[i].
// The logical length equals len(bits).
func FromBools(bits []bool) *Vector {
	v := New(len(bits))
	for i, b := range bits {
		if b {
			v.words[i>>wordShift] |= 1 << (i & wordMask)
		}
	}

	return v
}

// Len returns the logical length fixed at construction.
func (v *Vector) Len() int { return v.length }

// Get reports whether bit i is set.
// Panics with ErrIndexRange unless 0 ≤ i < Len().
func (v *Vector) Get(i int) bool {
	v.checkIndex(i)

	return v.words[i>>wordShift]&(1<<(i&wordMask)) != 0
}

// Set assigns bit i to val.
// Panics with ErrIndexRange unless 0 ≤ i < Len().
func (v *Vector) Set(i int, val bool) {
	v.checkIndex(i)
	if val {
		v.words[i>>wordShift] |= 1 << (i & wordMask)
	} else {
		v.words[i>>wordShift] &^= 1 << (i & wordMask)
	}
}

// Add sets bit i (membership insert).
// Panics with ErrIndexRange unless 0 ≤ i < Len().
func (v *Vector) Add(i int) { v.Set(i, true) }

// Remove clears bit i (membership delete).
// Panics with ErrIndexRange unless 0 ≤ i < Len().
func (v *Vector) Remove(i int) { v.Set(i, false) }

// Count returns the number of set bits in [0, Len()).
// The padding invariant makes a plain popcount over all words exact.
func (v *Vector) Count() int {
	total := 0
	for _, w := range v.words {
		total += bits.OnesCount64(w)
	}

	return total
}

// Any reports whether at least one bit is set.
func (v *Vector) Any() bool {
	for _, w := range v.words {
		if w != 0 {
			return true
		}
	}

	return false
}

// None reports whether no bit is set.
func (v *Vector) None() bool { return !v.Any() }

// Equal reports logical equality: lengths must match and every bit in
// [0, Len()) must agree. Padding bits never participate (invariant).
func (v *Vector) Equal(o *Vector) bool {
	if o == nil || v.length != o.length {
		return false
	}
	for i, w := range v.words {
		if w != o.words[i] {
			return false
		}
	}

	return true
}

// Clone returns an independent copy with the same length and bits.
func (v *Vector) Clone() *Vector {
	c := New(v.length)
	copy(c.words, v.words)

	return c
}

// String renders the vector as a '0'/'1' string, bit 0 first.
// Intended for debugging and test diagnostics.
func (v *Vector) String() string {
	var sb strings.Builder
	sb.Grow(v.length)
	for i := 0; i < v.length; i++ {
		if v.Get(i) {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}

	return sb.String()
}
