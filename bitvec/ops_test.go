package bitvec_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/funcgraph/bitvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// randomVector builds a deterministic random Vector of length n with
// roughly density·n set bits.
func randomVector(rng *rand.Rand, n int, density float64) *bitvec.Vector {
	v := bitvec.New(n)
	for i := 0; i < n; i++ {
		if rng.Float64() < density {
			v.Add(i)
		}
	}

	return v
}

// TestOps_Algebra checks the set-algebra laws over random vector pairs
// of differing lengths:
//
//	(A∧B).Count ≤ min(A.Count, B.Count)
//	(A∨B).Count ≥ max(A.Count, B.Count)
//	A⊕A = ∅,  A∧A = A,  ¬¬A = A
func TestOps_Algebra(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	lengths := []int{0, 1, 63, 64, 65, 100, 129, 500}

	for trial := 0; trial < 50; trial++ {
		a := randomVector(rng, lengths[rng.Intn(len(lengths))], 0.4)
		b := randomVector(rng, lengths[rng.Intn(len(lengths))], 0.4)

		and := a.And(b)
		or := a.Or(b)

		wantLen := a.Len()
		if b.Len() > wantLen {
			wantLen = b.Len()
		}
		require.Equal(t, wantLen, and.Len(), "And result takes the longer length")
		require.Equal(t, wantLen, or.Len(), "Or result takes the longer length")

		assert.LessOrEqual(t, and.Count(), a.Count(), "|A∧B| ≤ |A|")
		assert.LessOrEqual(t, and.Count(), b.Count(), "|A∧B| ≤ |B|")
		assert.GreaterOrEqual(t, or.Count(), a.Count(), "|A∨B| ≥ |A|")
		assert.GreaterOrEqual(t, or.Count(), b.Count(), "|A∨B| ≥ |B|")

		assert.True(t, a.Xor(a).None(), "A⊕A must be all-zero")
		assert.True(t, a.And(a).Equal(a), "A∧A must equal A")
		assert.True(t, a.Not().Not().Equal(a), "double complement must restore A")
	}
}

// TestOps_MixedLengthSemantics pins the documented zero-fill rules for
// copy-producing ops on operands of different lengths.
func TestOps_MixedLengthSemantics(t *testing.T) {
	short := bitvec.New(10) // one word
	short.Add(2)
	long := bitvec.New(100) // two words; bits well past short's extent
	long.Add(2)
	long.Add(70)

	and := short.And(long)
	require.Equal(t, 100, and.Len(), "And takes the longer length")
	assert.Equal(t, []int{2}, and.Indices(), "words beyond the shorter operand are zeroed for And")

	or := short.Or(long)
	require.Equal(t, 100, or.Len(), "Or takes the longer length")
	assert.Equal(t, []int{2, 70}, or.Indices(), "the longer operand's own words pass through for Or")

	xor := short.Xor(long)
	assert.Equal(t, []int{70}, xor.Indices(), "Xor passes the longer operand's words through")
}

// TestOps_NotComplementsWithinLength verifies Not flips exactly the
// logical bits and keeps padding clear (Count stays consistent).
func TestOps_NotComplementsWithinLength(t *testing.T) {
	for _, n := range []int{1, 63, 64, 65, 100} {
		v := bitvec.New(n)
		v.Add(0)
		not := v.Not()

		require.Equal(t, n, not.Len(), "Not preserves length (n=%d)", n)
		assert.Equal(t, n-1, not.Count(), "complement of a singleton has n-1 bits (n=%d)", n)
		assert.False(t, not.Get(0), "the set bit must flip off")
	}
}

// TestInPlaceOps_OverlapOnly pins the deliberate divergence from the
// copy variants: in-place ops touch only the overlapping word range and
// never extend the receiver's length.
func TestInPlaceOps_OverlapOnly(t *testing.T) {
	// Receiver shorter than the operand: bits of the operand beyond the
	// receiver's logical length must be masked away, not absorbed.
	recv := bitvec.New(10)
	recv.Add(1)
	other := bitvec.New(100)
	other.Add(1)
	other.Add(8)
	other.Add(40) // same word as receiver's bits, but past its length
	other.Add(70) // entirely outside the receiver's word range

	recv.OrWith(other)
	require.Equal(t, 10, recv.Len(), "OrWith must never change the receiver's length")
	assert.Equal(t, []int{1, 8}, recv.Indices(), "bits past the receiver's length are masked away")

	// Receiver longer than the operand: AndWith leaves words beyond the
	// overlap untouched.
	wide := bitvec.New(150)
	wide.Add(5)
	wide.Add(100)
	narrow := bitvec.New(60)

	wide.AndWith(narrow)
	require.Equal(t, 150, wide.Len(), "AndWith must never change the receiver's length")
	assert.Equal(t, []int{100}, wide.Indices(), "words beyond the overlap keep their contents")
}

// TestInPlaceOps_MatchCopyOnEqualLengths verifies the in-place variants
// agree with the copy-producing ones whenever lengths match.
func TestInPlaceOps_MatchCopyOnEqualLengths(t *testing.T) {
	rng := rand.New(rand.NewSource(4))
	for trial := 0; trial < 30; trial++ {
		n := 1 + rng.Intn(300)
		a := randomVector(rng, n, 0.5)
		b := randomVector(rng, n, 0.5)

		got := a.Clone()
		got.AndWith(b)
		assert.True(t, got.Equal(a.And(b)), "AndWith must match And for equal lengths")

		got = a.Clone()
		got.OrWith(b)
		assert.True(t, got.Equal(a.Or(b)), "OrWith must match Or for equal lengths")

		got = a.Clone()
		got.XorWith(b)
		assert.True(t, got.Equal(a.Xor(b)), "XorWith must match Xor for equal lengths")

		got = a.Clone()
		got.Invert()
		assert.True(t, got.Equal(a.Not()), "Invert must match Not")
	}
}

// TestInvert_MasksTail verifies in-place complement keeps Count within
// the logical length across word-boundary lengths.
func TestInvert_MasksTail(t *testing.T) {
	for _, n := range []int{1, 63, 64, 65, 129} {
		v := bitvec.New(n)
		v.Invert()
		assert.Equal(t, n, v.Count(), "Invert of empty must set exactly n bits (n=%d)", n)

		v.Invert()
		assert.True(t, v.None(), "double Invert must restore emptiness (n=%d)", n)
	}
}
