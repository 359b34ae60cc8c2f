package specs

import (
	"iter"
	"slices"

	"github.com/fortscan/fortscan/internal/log"
	"github.com/fortscan/fortscan/util"
)

var logger = log.DefaultLogger.With("section", "specs")

// SpecDecls associates one specification with each group of co-specified
// variable names. It is an association list, not a uniqueness-enforcing map:
// a name may legitimately appear in several groups while the analysis is
// still accumulating evidence.
type SpecDecls struct {
	groups []util.Pair[[]string, Specification]
}

func NewSpecDecls(groups ...util.Pair[[]string, Specification]) SpecDecls {
	return SpecDecls{groups: groups}
}

// All iterates the declaration groups in order.
func (d SpecDecls) All() iter.Seq[util.Pair[[]string, Specification]] {
	return func(yield func(util.Pair[[]string, Specification]) bool) {
		for _, g := range d.groups {
			if !yield(g) {
				return
			}
		}
	}
}

// LookupAggregate retrieves every specification attached to name across all
// groups, in declaration order.
func (d SpecDecls) LookupAggregate(name string) []Specification {
	var out []Specification
	for _, g := range d.groups {
		if slices.Contains(g.Fst, name) {
			out = append(out, g.Snd)
		}
	}
	return out
}

// GroupKeyBy collapses adjacent equal-valued entries of a flat name to
// specification association into grouped-name entries, preserving the
// original order. Only adjacent runs merge: callers hand in input already
// sorted or grouped by construction, and a full group-by would reorder it.
func GroupKeyBy(entries []util.Pair[string, Specification]) SpecDecls {
	var groups []util.Pair[[]string, Specification]
	for _, e := range entries {
		n := len(groups)
		if n > 0 && groups[n-1].Snd.Equal(e.Snd) {
			logger.Debug("groupKeyBy: joining adjacent declaration",
				"name", e.Fst, "group", groups[n-1].Fst)
			groups[n-1].Fst = append(groups[n-1].Fst, e.Fst)
			continue
		}
		groups = append(groups, util.NewPair([]string{e.Fst}, e.Snd))
	}
	return SpecDecls{groups: groups}
}
