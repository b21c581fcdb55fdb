package transition

// Explicit is an array-backed Transition: Apply is a single slice read.
// The backing array is copied at construction, so an Explicit never
// aliases caller data and is safe to share between analyses.
type Explicit struct {
	next []int
}

// NewExplicit builds an Explicit from next, where next[i] = f(i).
// Returns ErrNotTotal if any image falls outside [0, len(next)).
// An empty mapping is valid and yields the empty transition.
func NewExplicit(next []int) (*Explicit, error) {
	n := len(next)
	for _, img := range next {
		if img < 0 || img >= n {
			return nil, ErrNotTotal
		}
	}
	cp := make([]int, n)
	copy(cp, next)

	return &Explicit{next: cp}, nil
}

// Identity returns the identity transition on [0, n): every index maps
// to itself, so every index is a singleton self-loop.
// Panics with ErrNegativeLength if n < 0.
func Identity(n int) *Explicit {
	if n < 0 {
		panic(ErrNegativeLength)
	}
	next := make([]int, n)
	for i := range next {
		next[i] = i
	}

	return &Explicit{next: next}
}

// Compose materializes h = g ∘ f, i.e. h(i) = g(f(i)), as an Explicit.
// Returns ErrLengthMismatch unless f.Len() == g.Len().
func Compose(f, g Transition) (*Explicit, error) {
	if f.Len() != g.Len() {
		return nil, ErrLengthMismatch
	}
	next := make([]int, f.Len())
	for i := range next {
		next[i] = g.Apply(f.Apply(i))
	}

	return &Explicit{next: next}, nil
}

// Len returns the domain size.
func (e *Explicit) Len() int { return len(e.next) }

// Apply returns f(i) via a single array lookup.
// Panics with ErrIndexRange unless 0 ≤ i < Len().
func (e *Explicit) Apply(i int) int {
	if i < 0 || i >= len(e.next) {
		panic(ErrIndexRange)
	}

	return e.next[i]
}
