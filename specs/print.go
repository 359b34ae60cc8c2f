package specs

import (
	"strings"

	"github.com/fortscan/fortscan/regions"
	"github.com/fortscan/fortscan/util"
)

// The canonical syntax must stay bit-exact: it round-trips through source
// annotations and is compared textually by downstream tooling.

// spatialText is the embedded rendering of a spatial value: the degenerate
// "empty" maps to the empty string so linearity and bound markers can decide
// their own separators.
func spatialText(s regions.Spatial) string {
	if s.IsUnit() {
		return ""
	}
	return s.Sum.String()
}

// showApprox renders one approximation, prefixing every rendered side with
// marker ("readOnce" or empty) joined by ", " only when the side text is
// non-empty.
func showApprox(marker string, a SpatialApprox) string {
	join := func(side string) string {
		switch {
		case marker == "":
			return side
		case side == "":
			return marker
		default:
			return marker + ", " + side
		}
	}
	if a.IsExact() {
		return join(spatialText(a.FromExact()))
	}
	lower, hasLower := a.LowerBound()
	upper, hasUpper := a.UpperBound()
	if !hasLower && !hasUpper {
		return join("empty")
	}
	var sides []string
	if hasLower {
		sides = append(sides, join("atLeast, "+spatialText(lower)))
	}
	if hasUpper {
		sides = append(sides, join("atMost, "+spatialText(upper)))
	}
	return strings.Join(sides, "; ")
}

func (s Specification) String() string {
	marker := ""
	if s.body.IsOnce() {
		marker = "readOnce"
	}
	return "stencil " + showApprox(marker, s.body.Peel())
}

// PprintSpecDecls renders one line per declaration group:
// the specification, " :: ", and the comma-joined variable names.
func PprintSpecDecls(decls SpecDecls) string {
	sb := &strings.Builder{}
	lines := util.MapIter(decls.All(), func(d util.Pair[[]string, Specification]) string {
		return d.Snd.String() + " :: " + strings.Join(d.Fst, ",")
	})
	for line := range lines {
		sb.WriteString(line)
		sb.WriteString("\n")
	}
	return sb.String()
}
