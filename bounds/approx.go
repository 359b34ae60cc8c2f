// Package bounds carries the bound-arithmetic wrappers of a stencil
// specification: whether an inferred region set is exact or only known
// through lower/upper bounds, and whether the access is linear. The wrappers
// are generic over any semiring so combination logic written against
// regions.Rig threads through them unchanged.
package bounds

import (
	"github.com/pkg/errors"

	"github.com/fortscan/fortscan/regions"
)

// Approximation is either an exact value or an interval with optional lower
// and upper bounds. The zero value is Bound(nil, nil).
type Approximation[T regions.Rig[T]] struct {
	exact        *T
	lower, upper *T
}

// Exact wraps a value known precisely.
func Exact[T regions.Rig[T]](v T) Approximation[T] {
	return Approximation[T]{exact: &v}
}

// Bound wraps an interval; either side may be nil when unknown.
func Bound[T regions.Rig[T]](lower, upper *T) Approximation[T] {
	return Approximation[T]{lower: lower, upper: upper}
}

func (a Approximation[T]) IsExact() bool {
	return a.exact != nil
}

// FromExact unwraps an exact approximation. Calling it on a bound is an
// invariant violation in the caller and fails fast.
func (a Approximation[T]) FromExact() T {
	if a.exact == nil {
		panic(errors.New("bounds: FromExact on a non-exact approximation"))
	}
	return *a.exact
}

// LowerBound returns the best-known lower bound: the value itself when
// exact, else the lower side when present.
func (a Approximation[T]) LowerBound() (T, bool) {
	if a.exact != nil {
		return *a.exact, true
	}
	if a.lower != nil {
		return *a.lower, true
	}
	var zero T
	return zero, false
}

// UpperBound returns the best-known upper bound, mirroring LowerBound.
func (a Approximation[T]) UpperBound() (T, bool) {
	if a.exact != nil {
		return *a.exact, true
	}
	if a.upper != nil {
		return *a.upper, true
	}
	var zero T
	return zero, false
}

// asBound lifts an exact value to the degenerate interval [v, v].
func (a Approximation[T]) asBound() (lower, upper *T) {
	if a.exact != nil {
		l, u := *a.exact, *a.exact
		return &l, &u
	}
	return a.lower, a.upper
}

// Plus combines approximations interval-style: exact with exact combines the
// contents directly; any bound involved degrades the exact side to [v, v]
// and the sides combine componentwise, with a missing side transparent.
func (a Approximation[T]) Plus(other Approximation[T]) Approximation[T] {
	if a.exact != nil && other.exact != nil {
		return Exact((*a.exact).Plus(*other.exact))
	}
	l1, u1 := a.asBound()
	l2, u2 := other.asBound()
	return Approximation[T]{lower: regions.PlusOpt(l1, l2), upper: regions.PlusOpt(u1, u2)}
}

// Mul mirrors Plus with the multiplicative combination.
func (a Approximation[T]) Mul(other Approximation[T]) Approximation[T] {
	if a.exact != nil && other.exact != nil {
		return Exact((*a.exact).Mul(*other.exact))
	}
	l1, u1 := a.asBound()
	l2, u2 := other.asBound()
	return Approximation[T]{lower: regions.MulOpt(l1, l2), upper: regions.MulOpt(u1, u2)}
}

func (Approximation[T]) Zero() Approximation[T] {
	var t T
	return Exact(t.Zero())
}

func (Approximation[T]) One() Approximation[T] {
	var t T
	return Exact(t.One())
}

// IsUnit reports whether the approximation carries no information: an exact
// unit, or an interval whose present sides are all units.
func (a Approximation[T]) IsUnit() bool {
	if a.exact != nil {
		return (*a.exact).IsUnit()
	}
	return (a.lower == nil || (*a.lower).IsUnit()) &&
		(a.upper == nil || (*a.upper).IsUnit())
}
