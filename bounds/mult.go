package bounds

// Multiplicity records the linearity of an access: Once when the wrapped
// pattern is read at most informatively once per iteration, Mult when it may
// repeat. This layer never inspects its contents; the region algebra only
// peels and rewraps it.
type Multiplicity[T any] struct {
	value T
	once  bool
}

// Once wraps a linear access.
func Once[T any](v T) Multiplicity[T] {
	return Multiplicity[T]{value: v, once: true}
}

// Mult wraps a possibly repeated access.
func Mult[T any](v T) Multiplicity[T] {
	return Multiplicity[T]{value: v}
}

func (m Multiplicity[T]) IsOnce() bool {
	return m.once
}

// Peel strips the multiplicity wrapper.
func (m Multiplicity[T]) Peel() T {
	return m.value
}
