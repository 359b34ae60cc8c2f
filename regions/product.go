package regions

import (
	"slices"
	"strings"

	"github.com/hashicorp/go-set/v3"

	"github.com/fortscan/fortscan/util"
)

// Product is a conjunction of regions, one intended per distinct dimension,
// describing one concrete multi-dimensional stencil shape. The region list is
// kept sorted per the canonical region order and duplicate-free. The empty
// product is the multiplicative identity: "no constraint".
type Product struct {
	regions []Region
}

// NewProduct canonicalizes the given regions (sort + exact-duplicate removal).
func NewProduct(rs ...Region) Product {
	if len(rs) == 0 {
		return Product{}
	}
	return Product{regions: set.TreeSetFrom(rs, compareRegions).Slice()}
}

// EmptyProduct is the multiplicative identity.
func EmptyProduct() Product {
	return Product{}
}

func (p Product) IsEmpty() bool {
	return len(p.regions) == 0
}

// Regions returns the canonical region list. Callers must not mutate it.
func (p Product) Regions() []Region {
	return p.regions
}

func (p Product) Equal(other Product) bool {
	return slices.Equal(p.regions, other.regions)
}

// Compare orders products lexicographically by their canonical region lists,
// shorter prefix first. Used only to fix a deterministic order in sums.
func (p Product) Compare(other Product) int {
	for i := range p.regions {
		if i >= len(other.regions) {
			return 1
		}
		if c := compareRegions(p.regions[i], other.regions[i]); c != 0 {
			return c
		}
	}
	if len(p.regions) < len(other.regions) {
		return -1
	}
	return 0
}

// Dims returns the distinct dimensions this product constrains.
func (p Product) Dims() []int {
	dims := util.NewEmptySet[int]()
	for _, r := range p.regions {
		dims.Add(r.Dim)
	}
	out := dims.AsSlice()
	slices.Sort(out)
	return out
}

// Merge is the partial union of two products: ok is true with the combined
// product when both denote the same or a combinable shape, false when they
// must remain separate disjuncts of the enclosing sum. The rewrite passes are
// attempted in a fixed precedence:
//
//  1. either side empty: the other, unchanged
//  2. both singletons: Region.Plus on the sole regions (falling through on
//     failure, since a point can still absorb into a singleton)
//  3. structurally equal: idempotent
//  4. reflexive-point absorption, both argument orders
//  5. distribute-and-overlap fusion, both argument orders
//
// Successful results are re-sorted into canonical region order.
func (p Product) Merge(other Product) (Product, bool) {
	if len(p.regions) == 0 {
		return other, true
	}
	if len(other.regions) == 0 {
		return p, true
	}
	if len(p.regions) == 1 && len(other.regions) == 1 {
		if r, ok := p.regions[0].Plus(other.regions[0]); ok {
			return Product{regions: []Region{r}}, true
		}
	}
	if p.Equal(other) {
		return p, true
	}
	if rs, ok := absorbPoint(p.regions, other.regions); ok {
		return NewProduct(rs...), true
	}
	if rs, ok := absorbPoint(other.regions, p.regions); ok {
		return NewProduct(rs...), true
	}
	if rs, ok := distAndOverlaps(p.regions, other.regions); ok {
		return NewProduct(rs...), true
	}
	return Product{}, false
}

// absorbPoint rewrites [point(dim)] ∨ (R(dim) ∧ rest) into (R'(dim) ∧ rest)
// where R' is R with its reflexive flag set: the bare center point is folded
// into the co-dimensional region. pt must be the singleton side.
func absorbPoint(pt, into []Region) ([]Region, bool) {
	if len(pt) != 1 || !pt[0].IsPointed() {
		return nil, false
	}
	for i, r := range into {
		if r.Dim == pt[0].Dim {
			out := slices.Clone(into)
			out[i].Reflexive = true
			return out, true
		}
	}
	return nil, false
}

// distAndOverlaps applies the depth/direction-specific fusion rules on two
// region lists that differ in a bounded way: a single fusable position with
// equal tails, the two-leading-entry reflexivity subsumption, or a common
// leading region factored out before recursing on the tails. The rules are
// stated asymmetrically, so both argument orders are tried.
func distAndOverlaps(a, b []Region) ([]Region, bool) {
	if rs, ok := distOneWay(a, b); ok {
		return rs, true
	}
	return distOneWay(b, a)
}

func distOneWay(a, b []Region) ([]Region, bool) {
	if len(a) == 0 || len(b) == 0 {
		return nil, false
	}
	// Two shape-equal leading pairs where one side is fully reflexive and
	// the other fully irreflexive: the irreflexive product is contained in
	// the reflexive one, so their union is the reflexive pair.
	if len(a) >= 2 && len(b) >= 2 && slices.Equal(a[2:], b[2:]) {
		if sameShape(a[0], b[0]) && sameShape(a[1], b[1]) &&
			a[0].Reflexive && a[1].Reflexive &&
			!b[0].Reflexive && !b[1].Reflexive {
			return a, true
		}
	}
	if slices.Equal(a[1:], b[1:]) {
		if fused, ok := fuseRegions(a[0], b[0]); ok {
			out := append([]Region{fused}, a[1:]...)
			return out, true
		}
	}
	if a[0] == b[0] {
		if rest, ok := distAndOverlaps(a[1:], b[1:]); ok {
			return append([]Region{a[0]}, rest...), true
		}
	}
	return nil, false
}

// sameShape reports equality up to the reflexive flag.
func sameShape(a, b Region) bool {
	return a.Direction == b.Direction && a.Depth == b.Depth && a.Dim == b.Dim
}

// fuseRegions unions two regions occupying the same position of two products
// whose remaining regions agree. Same-direction pairs take the maximum depth
// and OR the reflexive flags; opposite directions at equal depth span a
// centered region; an absorbed point sets the other region's reflexive flag.
func fuseRegions(x, y Region) (Region, bool) {
	if x.Dim != y.Dim {
		return Region{}, false
	}
	switch {
	case y.IsPointed() && !(x.Direction == Centered && x.Depth == 0):
		return Region{Direction: x.Direction, Depth: x.Depth, Dim: x.Dim, Reflexive: true}, true
	case x.Direction == y.Direction && (x.Direction != Centered || (x.Depth > 0 && y.Depth > 0)):
		return Region{
			Direction: x.Direction,
			Depth:     max(x.Depth, y.Depth),
			Dim:       x.Dim,
			Reflexive: x.Reflexive || y.Reflexive,
		}, true
	case x.Direction == Forward && y.Direction == Backward && x.Depth == y.Depth:
		return Region{Direction: Centered, Depth: x.Depth, Dim: x.Dim, Reflexive: x.Reflexive || y.Reflexive}, true
	default:
		return Region{}, false
	}
}

// String renders the canonical external syntax: the empty product is the
// empty string, a singleton renders bare, and larger conjunctions
// parenthesize each region and join with "*".
func (p Product) String() string {
	switch len(p.regions) {
	case 0:
		return ""
	case 1:
		return p.regions[0].String()
	default:
		parts := make([]string, len(p.regions))
		for i, r := range p.regions {
			parts[i] = "(" + r.String() + ")"
		}
		return strings.Join(parts, "*")
	}
}
