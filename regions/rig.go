package regions

// Rig is the semiring contract each wrapper layer of a specification
// implements: an additive union (Plus), a multiplicative cross combination
// (Mul), their identities, and the emptiness test downstream layers build
// on. Writing combination logic against Rig once lets it thread through
// every layer of wrapping without manual unpeeling.
type Rig[T any] interface {
	Plus(T) T
	Mul(T) T
	Zero() T
	One() T
	IsUnit() bool
}

var (
	_ Rig[Sum]     = Sum{}
	_ Rig[Spatial] = Spatial{}
)

// PlusOpt lifts Plus through an optional value: absence is transparent, so a
// nil side yields the other side unchanged.
func PlusOpt[T Rig[T]](a, b *T) *T {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		c := (*a).Plus(*b)
		return &c
	}
}

// MulOpt lifts Mul through an optional value the same way.
func MulOpt[T Rig[T]](a, b *T) *T {
	switch {
	case a == nil:
		return b
	case b == nil:
		return a
	default:
		c := (*a).Mul(*b)
		return &c
	}
}
