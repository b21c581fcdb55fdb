package bitvec

import "math/bits"

// NextSet returns the lowest set bit at index ≥ from, and true, or
// (0, false) when no such bit exists. A negative from is treated as 0.
// The ok flag is the ONLY termination signal: index 0 is always a valid
// payload, never a sentinel.
func (v *Vector) NextSet(from int) (int, bool) {
	if from < 0 {
		from = 0
	}
	if from >= v.length {
		return 0, false
	}

	// 1) The first word may be partial: shift away bits below from.
	x := from >> wordShift
	if first := v.words[x] >> (from & wordMask); first != 0 {
		return from + bits.TrailingZeros64(first), true
	}

	// 2) Whole words after it. Padding bits are zero by invariant,
	//    so any non-zero word yields an in-range index.
	for x++; x < len(v.words); x++ {
		if w := v.words[x]; w != 0 {
			return x<<wordShift + bits.TrailingZeros64(w), true
		}
	}

	return 0, false
}

// Indices returns the indices of all set bits in ascending order.
// A fresh slice is allocated on every call, so enumeration is
// restartable and never aliases Vector state.
func (v *Vector) Indices() []int {
	out := make([]int, 0, v.Count())
	for x, w := range v.words {
		for w != 0 {
			out = append(out, x<<wordShift+bits.TrailingZeros64(w))
			w &= w - 1 // clear lowest set bit
		}
	}

	return out
}
