package cycles

import "github.com/katalvlaran/funcgraph/transition"

// Period returns the global period of t: the least common multiple of
// all cycle lengths, starting from 1. After Period(t) applications of f
// every node has returned to its own phase on its cycle. The empty
// transition has period 1 (empty LCM).
//
// Time: O(n) amortized. Memory: O(n).
// Returns ErrNilTransition if t is nil.
func Period(t transition.Transition) (int, error) {
	if t == nil {
		return 0, ErrNilTransition
	}

	period := 1
	w := newWalker(t)
	for s, ok := w.next(); ok; s, ok = w.next() {
		if s.closedCycle() {
			period = lcm(period, len(s.members()))
		}
	}

	return period, nil
}

// gcd returns the greatest common divisor of two non-negative ints.
func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}

	return a
}

// lcm returns the least common multiple of two positive ints.
// Divides before multiplying to delay overflow.
func lcm(a, b int) int {
	return a / gcd(a, b) * b
}
