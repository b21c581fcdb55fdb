package bitvec

// wordAt returns word i, zero-extending past the end of storage.
// Binary copy ops use it so the shorter operand contributes zeros.
func (v *Vector) wordAt(i int) uint64 {
	if i < len(v.words) {
		return v.words[i]
	}

	return 0
}

// And returns a NEW vector of length max(v.Len(), o.Len()) holding the
// bitwise intersection. Words beyond the shorter operand are zero.
func (v *Vector) And(o *Vector) *Vector {
	out := New(maxInt(v.length, o.length))
	for i := range out.words {
		out.words[i] = v.wordAt(i) & o.wordAt(i)
	}

	return out
}

// Or returns a NEW vector of length max(v.Len(), o.Len()) holding the
// bitwise union. Words present only in the longer operand pass through
// unchanged.
func (v *Vector) Or(o *Vector) *Vector {
	out := New(maxInt(v.length, o.length))
	for i := range out.words {
		out.words[i] = v.wordAt(i) | o.wordAt(i)
	}

	return out
}

// Xor returns a NEW vector of length max(v.Len(), o.Len()) holding the
// symmetric difference. Words present only in the longer operand pass
// through unchanged.
func (v *Vector) Xor(o *Vector) *Vector {
	out := New(maxInt(v.length, o.length))
	for i := range out.words {
		out.words[i] = v.wordAt(i) ^ o.wordAt(i)
	}

	return out
}

// Not returns a NEW vector of length v.Len() holding the complement
// within the logical length; padding bits stay zero.
func (v *Vector) Not() *Vector {
	out := New(v.length)
	for i, w := range v.words {
		out.words[i] = ^w
	}
	out.maskTail()

	return out
}

// AndWith intersects o into v in place, over the overlapping word range
// only. Words of v beyond the overlap keep their previous contents and
// v's length never changes.
func (v *Vector) AndWith(o *Vector) {
	n := minInt(len(v.words), len(o.words))
	for i := 0; i < n; i++ {
		v.words[i] &= o.words[i]
	}
}

// OrWith unions o into v in place, over the overlapping word range only.
// Bits of o beyond v's logical length are masked away; v's length never
// changes.
func (v *Vector) OrWith(o *Vector) {
	n := minInt(len(v.words), len(o.words))
	for i := 0; i < n; i++ {
		v.words[i] |= o.words[i]
	}
	v.maskTail()
}

// XorWith toggles v by o in place, over the overlapping word range only.
// Bits of o beyond v's logical length are masked away; v's length never
// changes.
func (v *Vector) XorWith(o *Vector) {
	n := minInt(len(v.words), len(o.words))
	for i := 0; i < n; i++ {
		v.words[i] ^= o.words[i]
	}
	v.maskTail()
}

// Invert complements v in place within its logical length.
func (v *Vector) Invert() {
	for i := range v.words {
		v.words[i] = ^v.words[i]
	}
	v.maskTail()
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}

	return b
}

func minInt(a, b int) int {
	if a < b {
		return a
	}

	return b
}
