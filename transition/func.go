package transition

// Func is a rule-backed Transition: Apply re-evaluates the rule on
// every call, so the cost of Apply is the cost of the rule. Use it when
// materializing n images up front is wasteful (large n, few lookups).
type Func struct {
	n    int
	rule func(int) int
}

// NewFunc wraps rule as a Transition on [0, n).
// Returns ErrNegativeLength if n < 0 and ErrNilRule if rule is nil.
// The rule's output is range-checked lazily on each Apply, not here.
func NewFunc(n int, rule func(int) int) (*Func, error) {
	if n < 0 {
		return nil, ErrNegativeLength
	}
	if rule == nil {
		return nil, ErrNilRule
	}

	return &Func{n: n, rule: rule}, nil
}

// Len returns the domain size.
func (f *Func) Len() int { return f.n }

// Apply evaluates the rule at i.
// Panics with ErrIndexRange unless 0 ≤ i < Len().
// Panics with ErrNotTotal if the rule returns an image outside [0, Len())
// — an ill-formed rule is propagated, never masked.
func (f *Func) Apply(i int) int {
	if i < 0 || i >= f.n {
		panic(ErrIndexRange)
	}
	img := f.rule(i)
	if img < 0 || img >= f.n {
		panic(ErrNotTotal)
	}

	return img
}
