package regions

import (
	"log/slog"
	"slices"
	"sort"
	"strings"

	"github.com/xtgo/set"

	"github.com/fortscan/fortscan/internal/log"
)

var logger = log.DefaultLogger.With("section", "regions")

// Sum is a disjunction of products in disjunctive normal form: the set of
// alternative shapes an access pattern may take. The product list is kept
// normalized (no two products merge further) and duplicate-free. The empty
// list and the list holding one empty product both denote the unit and
// print identically.
type Sum struct {
	products []Product
}

// NewSum normalizes the given products into canonical form.
func NewSum(ps ...Product) Sum {
	return Sum{products: normalize(slices.Clone(ps))}
}

// Zero is the additive identity: the empty sum.
func (Sum) Zero() Sum {
	return Sum{}
}

// One is the multiplicative identity: the sum of one empty product.
func (Sum) One() Sum {
	return Sum{products: []Product{{}}}
}

// IsUnit reports whether the sum carries no spatial information: it is zero,
// one, or every product in it is the empty product.
func (s Sum) IsUnit() bool {
	for _, p := range s.products {
		if !p.IsEmpty() {
			return false
		}
	}
	return true
}

// Products returns the canonical product list. Callers must not mutate it.
func (s Sum) Products() []Product {
	return s.products
}

func (s Sum) Equal(other Sum) bool {
	return slices.EqualFunc(s.products, other.products, Product.Equal)
}

// Plus is the union of two sums, re-normalized.
func (s Sum) Plus(other Sum) Sum {
	combined := make([]Product, 0, len(s.products)+len(other.products))
	combined = append(combined, s.products...)
	combined = append(combined, other.products...)
	return Sum{products: normalize(combined)}
}

// Mul is the cross product of two sums: every product of the left side
// conjoined with every product of the right, each result canonicalized
// internally and exact-duplicate results removed. No cross-merge is attempted
// between the results.
func (s Sum) Mul(other Sum) Sum {
	crossed := make([]Product, 0, len(s.products)*len(other.products))
	for _, p := range s.products {
		for _, q := range other.products {
			joined := make([]Region, 0, len(p.regions)+len(q.regions))
			joined = append(joined, p.regions...)
			joined = append(joined, q.regions...)
			crossed = append(crossed, NewProduct(joined...))
		}
	}
	return Sum{products: dedupSorted(crossed)}
}

// normalize is the union-side canonicalizer. The product list is sorted into
// canonical order and deduplicated before the scan and again after every
// successful merge, then repeatedly scanned left-to-right for a pair of
// products that Merge until no pair does. A product can have several merge
// candidates (a shallow forward fuses with its backward twin or with a deeper
// forward), so the scan sequence must be a function of the product multiset
// alone; scanning in the caller's argument order would leak construction
// order into the canonical value.
func normalize(ps []Product) []Product {
	ps = dedupSorted(ps)
	for {
		merged := false
	scan:
		for i := 0; i < len(ps); i++ {
			for j := i + 1; j < len(ps); j++ {
				m, ok := ps[i].Merge(ps[j])
				if !ok {
					continue
				}
				logger.Debug("normalize: merged products",
					slog.String("left", ps[i].String()),
					slog.String("right", ps[j].String()),
					slog.String("into", m.String()),
				)
				ps[i] = m
				ps = dedupSorted(slices.Delete(ps, j, j+1))
				merged = true
				break scan
			}
		}
		if !merged {
			return ps
		}
	}
}

// dedupSorted sorts products into the canonical order and drops exact
// structural duplicates.
func dedupSorted(ps []Product) []Product {
	sort.Sort(productOrder(ps))
	n := set.Uniq(productOrder(ps))
	return ps[:n]
}

// productOrder adapts a product list to sort.Interface for xtgo/set.
type productOrder []Product

func (ps productOrder) Len() int           { return len(ps) }
func (ps productOrder) Less(i, j int) bool { return ps[i].Compare(ps[j]) < 0 }
func (ps productOrder) Swap(i, j int)      { ps[i], ps[j] = ps[j], ps[i] }

// String renders the canonical external syntax: the non-empty product
// renderings joined with " + ", or the literal "empty" for a unit sum.
func (s Sum) String() string {
	parts := make([]string, 0, len(s.products))
	for _, p := range s.products {
		if p.IsEmpty() {
			continue
		}
		parts = append(parts, p.String())
	}
	if len(parts) == 0 {
		return "empty"
	}
	return strings.Join(parts, " + ")
}

// LogValue renders the canonical text lazily so debug events stay cheap when
// the sum is not actually logged.
func (s Sum) LogValue() slog.Value {
	return slog.StringValue(s.String())
}
