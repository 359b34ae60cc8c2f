package bounds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fortscan/fortscan/regions"
)

func spatialOf(rs ...regions.Region) regions.Spatial {
	products := make([]regions.Product, len(rs))
	for i, r := range rs {
		products[i] = regions.NewProduct(r)
	}
	return regions.NewSpatial(regions.NewSum(products...))
}

func TestApproximationPlus(t *testing.T) {
	fwd := spatialOf(regions.NewForward(1, 1, true))
	bwd := spatialOf(regions.NewBackward(1, 2, true))
	both := fwd.Plus(bwd)

	t.Run("exact with exact combines directly", func(t *testing.T) {
		res := Exact(fwd).Plus(Exact(bwd))
		assert.True(t, res.IsExact())
		assert.True(t, both.Equal(res.FromExact()))
	})

	t.Run("exact with bound degrades to a degenerate bound", func(t *testing.T) {
		res := Exact(fwd).Plus(Bound(nil, &bwd))
		assert.False(t, res.IsExact())
		lower, hasLower := res.LowerBound()
		assert.True(t, hasLower, "the exact side supplies both components")
		assert.True(t, fwd.Equal(lower))
		upper, hasUpper := res.UpperBound()
		assert.True(t, hasUpper)
		assert.True(t, both.Equal(upper))
	})

	t.Run("bounds combine componentwise with absent sides transparent", func(t *testing.T) {
		res := Bound(&fwd, nil).Plus(Bound(&bwd, &bwd))
		lower, hasLower := res.LowerBound()
		assert.True(t, hasLower)
		assert.True(t, both.Equal(lower))
		upper, hasUpper := res.UpperBound()
		assert.True(t, hasUpper)
		assert.True(t, bwd.Equal(upper), "missing left upper bound is transparent")
	})

	t.Run("plus commutes", func(t *testing.T) {
		left := Exact(fwd).Plus(Bound(&bwd, nil))
		right := Bound(&bwd, nil).Plus(Exact(fwd))
		l1, _ := left.LowerBound()
		l2, _ := right.LowerBound()
		assert.True(t, l1.Equal(l2))
	})
}

func TestApproximationMul(t *testing.T) {
	fwd := spatialOf(regions.NewForward(1, 1, true))
	bwd := spatialOf(regions.NewBackward(1, 2, true))

	res := Exact(fwd).Mul(Exact(bwd))
	assert.True(t, res.IsExact())
	assert.True(t, fwd.Mul(bwd).Equal(res.FromExact()))

	mixed := Bound(&fwd, nil).Mul(Exact(bwd))
	assert.False(t, mixed.IsExact())
	lower, hasLower := mixed.LowerBound()
	assert.True(t, hasLower)
	assert.True(t, fwd.Mul(bwd).Equal(lower))
}

func TestApproximationIdentitiesAndUnits(t *testing.T) {
	var none Approximation[regions.Spatial]
	fwd := spatialOf(regions.NewForward(1, 1, true))

	assert.True(t, none.Zero().IsUnit())
	assert.True(t, none.One().IsUnit())
	assert.True(t, Exact(regions.Spatial{}.One()).IsUnit())
	assert.True(t, Bound[regions.Spatial](nil, nil).IsUnit())
	assert.False(t, Exact(fwd).IsUnit())
	assert.False(t, Bound(nil, &fwd).IsUnit())
}

func TestFromExactFailsFastOnBounds(t *testing.T) {
	fwd := spatialOf(regions.NewForward(1, 1, true))
	assert.Panics(t, func() { Bound(&fwd, nil).FromExact() })
}

func TestMultiplicity(t *testing.T) {
	fwd := spatialOf(regions.NewForward(1, 1, true))

	once := Once(Exact(fwd))
	assert.True(t, once.IsOnce())
	assert.True(t, once.Peel().IsExact())

	many := Mult(Exact(fwd))
	assert.False(t, many.IsOnce())
	assert.True(t, fwd.Equal(many.Peel().FromExact()))
}
