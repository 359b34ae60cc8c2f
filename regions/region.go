// Package regions implements the normalization algebra for array-stencil
// access regions: atomic directional regions, their conjunction into
// multi-dimensional products, and the disjunctive-normal-form sums the rest
// of the analysis builds specifications out of. All values are immutable;
// every operation returns a new canonical value.
package regions

import (
	"cmp"
	"fmt"
	"strings"

	"github.com/hashicorp/go-set/v3"
	"github.com/pkg/errors"
)

// Direction is the orientation of a Region relative to the loop index.
type Direction uint8

const (
	Forward Direction = iota
	Backward
	Centered
)

func (d Direction) String() string {
	switch d {
	case Forward:
		return "forward"
	case Backward:
		return "backward"
	case Centered:
		return "centered"
	default:
		panic(errors.Errorf("regions: unknown direction tag %d", uint8(d)))
	}
}

// Region is an atomic directional access descriptor: along dimension Dim
// (1-indexed), the loop body touches offsets up to Depth cells in the given
// Direction. Reflexive marks whether the center cell itself is included.
// A Centered region of depth 0 is the bare center point ("pointed").
type Region struct {
	Direction Direction
	Depth     int
	Dim       int
	Reflexive bool
}

// NewRegion validates the depth/dim payload. Depth 0 only makes sense for
// Centered (the point); negative depths and dimensions below 1 are malformed
// input from the inference engine and fail fast.
func NewRegion(direction Direction, depth, dim int, reflexive bool) Region {
	if depth < 0 {
		panic(errors.Errorf("regions: negative depth %d in %s region (dim=%d)", depth, direction, dim))
	}
	if dim < 1 {
		panic(errors.Errorf("regions: dimension %d is not 1-indexed in %s region (depth=%d)", dim, direction, depth))
	}
	return Region{Direction: direction, Depth: depth, Dim: dim, Reflexive: reflexive}
}

func NewForward(depth, dim int, reflexive bool) Region {
	return NewRegion(Forward, depth, dim, reflexive)
}

func NewBackward(depth, dim int, reflexive bool) Region {
	return NewRegion(Backward, depth, dim, reflexive)
}

func NewCentered(depth, dim int, reflexive bool) Region {
	return NewRegion(Centered, depth, dim, reflexive)
}

// NewPointed is the single-cell region at the center of dimension dim.
func NewPointed(dim int) Region {
	return NewCentered(0, dim, true)
}

// IsPointed reports whether the region is a bare center point, the shape
// that absorbs into a co-dimensional region by setting its reflexive flag.
func (r Region) IsPointed() bool {
	return r.Direction == Centered && r.Depth == 0 && r.Reflexive
}

// compareRegions is the total order used to canonicalize region lists.
// The direction tag dominates (Forward < Backward < Centered regardless of
// payload), then depth, then dimension; the reflexive flag is a final
// tiebreak so sorting is fully deterministic. The order carries no semantic
// meaning beyond that.
var compareRegions set.CompareFunc[Region] = func(a, b Region) int {
	if c := cmp.Compare(a.Direction, b.Direction); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Depth, b.Depth); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Dim, b.Dim); c != 0 {
		return c
	}
	switch {
	case a.Reflexive == b.Reflexive:
		return 0
	case a.Reflexive:
		return 1
	default:
		return -1
	}
}

// Compare orders r against other per the canonical region order.
func (r Region) Compare(other Region) int {
	return compareRegions(r, other)
}

// Plus combines two regions when they are directionally complementary:
// a forward and a backward neighbor at the same depth and dimension together
// span a centered access, and equal regions are idempotent. ok is false when
// the regions must remain separate disjuncts; that is not an error.
func (r Region) Plus(other Region) (Region, bool) {
	switch {
	case r.Direction == Forward && other.Direction == Backward,
		r.Direction == Backward && other.Direction == Forward:
		if r.Depth == other.Depth && r.Dim == other.Dim {
			return Region{
				Direction: Centered,
				Depth:     r.Depth,
				Dim:       r.Dim,
				Reflexive: r.Reflexive || other.Reflexive,
			}, true
		}
		return Region{}, false
	case r == other:
		return r, true
	default:
		return Region{}, false
	}
}

// String renders the canonical external syntax, e.g.
// "forward(depth=1, dim=2, nonpointed)". A depth-0 centered region renders
// as "pointed(dim=n)" instead.
func (r Region) String() string {
	sb := &strings.Builder{}
	if r.Direction == Centered && r.Depth == 0 {
		sb.WriteString("pointed(dim=")
		sb.WriteString(fmt.Sprint(r.Dim))
	} else {
		sb.WriteString(r.Direction.String())
		fmt.Fprintf(sb, "(depth=%d, dim=%d", r.Depth, r.Dim)
	}
	if !r.Reflexive {
		sb.WriteString(", nonpointed")
	}
	sb.WriteString(")")
	return sb.String()
}
