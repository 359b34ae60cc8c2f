package specs

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fortscan/fortscan/bounds"
	"github.com/fortscan/fortscan/regions"
	"github.com/fortscan/fortscan/util"
)

func exactOnce(s regions.Sum) Specification {
	return New(bounds.Once(bounds.Exact(regions.NewSpatial(s))))
}

func exactMult(s regions.Sum) Specification {
	return New(bounds.Mult(bounds.Exact(regions.NewSpatial(s))))
}

func forwardBackwardSum() regions.Sum {
	return regions.NewSum(
		regions.NewProduct(regions.NewForward(1, 1, true)),
		regions.NewProduct(regions.NewBackward(1, 2, true)),
	)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, exactOnce(regions.NewSum()).IsEmpty())
	assert.True(t, exactOnce(regions.NewSum(regions.EmptyProduct())).IsEmpty())
	assert.True(t, New(bounds.Once(bounds.Bound[regions.Spatial](nil, nil))).IsEmpty())
	assert.False(t, exactOnce(forwardBackwardSum()).IsEmpty())
}

func TestSetLinearity(t *testing.T) {
	spec := exactMult(forwardBackwardSum())

	linear := spec.SetLinearity(Linear)
	assert.True(t, linear.Body().IsOnce())
	assert.True(t, linear.Body().Peel().FromExact().Equal(spec.Body().Peel().FromExact()),
		"linearity changes must not touch the spatial content")

	back := linear.SetLinearity(NonLinear)
	assert.False(t, back.Body().IsOnce())
	assert.True(t, back.Equal(spec))
}

func TestSpecificationPlus(t *testing.T) {
	fwd := exactOnce(regions.NewSum(regions.NewProduct(regions.NewForward(1, 1, false))))
	bwd := exactOnce(regions.NewSum(regions.NewProduct(regions.NewBackward(1, 1, false))))

	combined := fwd.Plus(bwd)
	assert.True(t, combined.Body().IsOnce(), "two linear accesses combine linearly")
	expected := regions.NewSpatial(regions.NewSum(regions.NewProduct(regions.NewCentered(1, 1, false))))
	assert.True(t, expected.Equal(combined.Body().Peel().FromExact()))

	repeated := fwd.Plus(bwd.SetLinearity(NonLinear))
	assert.False(t, repeated.Body().IsOnce(), "a repeated side makes the combination repeated")

	assert.True(t, fwd.Plus(bwd).Equal(bwd.Plus(fwd)))
}

func TestSpecificationString(t *testing.T) {
	sp := regions.NewSpatial(regions.NewSum(regions.NewProduct(regions.NewForward(1, 1, true))))

	testCases := []struct {
		name     string
		spec     Specification
		expected string
	}{{
		name:     "exact sum of products",
		spec:     exactMult(forwardBackwardSum()),
		expected: "stencil forward(depth=1, dim=1) + backward(depth=1, dim=2)",
	}, {
		name:     "readOnce marks linear specifications",
		spec:     exactOnce(forwardBackwardSum()),
		expected: "stencil readOnce, forward(depth=1, dim=1) + backward(depth=1, dim=2)",
	}, {
		name:     "upper bound only",
		spec:     New(bounds.Mult(bounds.Bound(nil, &sp))),
		expected: "stencil atMost, forward(depth=1, dim=1)",
	}, {
		name:     "lower bound only",
		spec:     New(bounds.Mult(bounds.Bound(&sp, nil))),
		expected: "stencil atLeast, forward(depth=1, dim=1)",
	}, {
		name:     "both bounds join with a semicolon",
		spec:     New(bounds.Once(bounds.Bound(&sp, &sp))),
		expected: "stencil readOnce, atLeast, forward(depth=1, dim=1); readOnce, atMost, forward(depth=1, dim=1)",
	}, {
		name:     "unbounded renders the empty literal",
		spec:     New(bounds.Mult(bounds.Bound[regions.Spatial](nil, nil))),
		expected: "stencil empty",
	}, {
		name:     "unbounded keeps the linearity marker",
		spec:     New(bounds.Once(bounds.Bound[regions.Spatial](nil, nil))),
		expected: "stencil readOnce, empty",
	}, {
		name:     "empty exact linear specification is just the marker",
		spec:     exactOnce(regions.NewSum()),
		expected: "stencil readOnce",
	}}

	for _, testCase := range testCases {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, testCase.spec.String())
		})
	}
}

func TestLookupAggregate(t *testing.T) {
	s1 := exactOnce(regions.NewSum(regions.NewProduct(regions.NewForward(1, 1, true))))
	s2 := exactOnce(regions.NewSum(regions.NewProduct(regions.NewBackward(1, 1, true))))

	decls := NewSpecDecls(
		util.NewPair([]string{"a", "b"}, s1),
		util.NewPair([]string{"c"}, s2),
		util.NewPair([]string{"b"}, s2),
	)

	got := decls.LookupAggregate("b")
	if assert.Len(t, got, 2) {
		assert.True(t, got[0].Equal(s1))
		assert.True(t, got[1].Equal(s2))
	}
	assert.Len(t, decls.LookupAggregate("c"), 1)
	assert.Empty(t, decls.LookupAggregate("z"))
}

func TestGroupKeyBy(t *testing.T) {
	s1 := exactOnce(regions.NewSum(regions.NewProduct(regions.NewForward(1, 1, true))))
	s2 := exactOnce(regions.NewSum(regions.NewProduct(regions.NewBackward(1, 1, true))))

	decls := GroupKeyBy([]util.Pair[string, Specification]{
		util.NewPair("a", s1),
		util.NewPair("b", s1),
		util.NewPair("c", s2),
		util.NewPair("d", s1),
	})

	var groups [][]string
	for g := range decls.All() {
		groups = append(groups, g.Fst)
	}
	assert.Equal(t, [][]string{{"a", "b"}, {"c"}, {"d"}}, groups,
		"only adjacent runs merge; later equal values keep their own group")
}

func TestPprintSpecDecls(t *testing.T) {
	s1 := exactMult(forwardBackwardSum())
	s2 := exactOnce(regions.NewSum(regions.NewProduct(regions.NewPointed(1))))

	decls := NewSpecDecls(
		util.NewPair([]string{"a", "b"}, s1),
		util.NewPair([]string{"c"}, s2),
	)

	expected := "stencil forward(depth=1, dim=1) + backward(depth=1, dim=2) :: a,b\n" +
		"stencil readOnce, pointed(dim=1) :: c\n"
	assert.Equal(t, expected, PprintSpecDecls(decls))
}
