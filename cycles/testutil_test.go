package cycles_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/funcgraph/transition"
	"github.com/stretchr/testify/require"
)

// Brute-force reference implementations, O(n²), used to validate the
// linear-time walker on small random graphs.

// mustExplicit builds an Explicit or fails the test.
func mustExplicit(t *testing.T, next []int) *transition.Explicit {
	t.Helper()
	f, err := transition.NewExplicit(next)
	require.NoError(t, err, "test mapping must be total")

	return f
}

// randomNext draws a uniform random total mapping on [0, n).
func randomNext(rng *rand.Rand, n int) []int {
	next := make([]int, n)
	for i := range next {
		next[i] = rng.Intn(n)
	}

	return next
}

// refOnCycle reports, per index, whether it lies on a cycle: walk n
// steps to be certain of standing on the cycle, then circle once
// looking for the original index.
func refOnCycle(next []int) []bool {
	n := len(next)
	on := make([]bool, n)
	for i := 0; i < n; i++ {
		j := i
		for step := 0; step < n; step++ {
			j = next[j]
		}
		// j is on i's cycle; circle it once.
		k := j
		for {
			if k == i {
				on[i] = true

				break
			}
			k = next[k]
			if k == j {
				break
			}
		}
	}

	return on
}

// refDistances counts, per index, the steps needed to reach a cyclic
// index, given the refOnCycle classification.
func refDistances(next []int, on []bool) []int {
	dist := make([]int, len(next))
	for i := range next {
		d, j := 0, i
		for !on[j] {
			d++
			j = next[j]
		}
		dist[i] = d
	}

	return dist
}

// refCycleLen returns the length of the cycle through a cyclic index.
func refCycleLen(next []int, i int) int {
	length, j := 1, next[i]
	for j != i {
		length++
		j = next[j]
	}

	return length
}
