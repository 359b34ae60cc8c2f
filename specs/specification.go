// Package specs assembles the top-level stencil specification value out of
// the region algebra and the bound-arithmetic wrappers, and renders it in the
// canonical textual syntax consumed by source annotations and downstream
// tooling.
package specs

import (
	"github.com/fortscan/fortscan/bounds"
	"github.com/fortscan/fortscan/regions"
)

// SpatialApprox is the approximation layer of a specification.
type SpatialApprox = bounds.Approximation[regions.Spatial]

var _ regions.Rig[SpatialApprox] = SpatialApprox{}

// Linearity is the policy input to SetLinearity.
type Linearity int

const (
	Linear Linearity = iota
	NonLinear
)

// Specification is the full description of one array's access pattern: a
// multiplicity wrapping an approximation wrapping the spatial region sum.
type Specification struct {
	body bounds.Multiplicity[SpatialApprox]
}

func New(body bounds.Multiplicity[SpatialApprox]) Specification {
	return Specification{body: body}
}

// Body exposes the wrapped value for collaborators that combine bounds.
func (s Specification) Body() bounds.Multiplicity[SpatialApprox] {
	return s.body
}

// IsEmpty reports whether the specification carries no spatial information:
// the peeled approximation is the semiring unit.
func (s Specification) IsEmpty() bool {
	return s.body.Peel().IsUnit()
}

// SetLinearity rewraps the specification's multiplicity without touching the
// spatial content, returning the updated value.
func (s Specification) SetLinearity(l Linearity) Specification {
	inner := s.body.Peel()
	if l == Linear {
		return Specification{body: bounds.Once(inner)}
	}
	return Specification{body: bounds.Mult(inner)}
}

// Plus combines the spatial parts of two specifications without manual
// unwrapping. The result is linear only when both operands are: either side
// repeating makes the combination repeatable.
func (s Specification) Plus(other Specification) Specification {
	return s.combine(other, SpatialApprox.Plus)
}

// Prod mirrors Plus with the cross-product combination.
func (s Specification) Prod(other Specification) Specification {
	return s.combine(other, SpatialApprox.Mul)
}

func (s Specification) combine(other Specification, op func(SpatialApprox, SpatialApprox) SpatialApprox) Specification {
	combined := op(s.body.Peel(), other.body.Peel())
	if s.body.IsOnce() && other.body.IsOnce() {
		return Specification{body: bounds.Once(combined)}
	}
	return Specification{body: bounds.Mult(combined)}
}

// Equal compares specifications structurally on their canonical values.
func (s Specification) Equal(other Specification) bool {
	if s.body.IsOnce() != other.body.IsOnce() {
		return false
	}
	return approxEqual(s.body.Peel(), other.body.Peel())
}

func approxEqual(a, b SpatialApprox) bool {
	if a.IsExact() != b.IsExact() {
		return false
	}
	if a.IsExact() {
		return a.FromExact().Equal(b.FromExact())
	}
	return sideEqual(a.LowerBound, b.LowerBound) && sideEqual(a.UpperBound, b.UpperBound)
}

func sideEqual(a, b func() (regions.Spatial, bool)) bool {
	v1, ok1 := a()
	v2, ok2 := b()
	if ok1 != ok2 {
		return false
	}
	return !ok1 || v1.Equal(v2)
}
