package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVector(t *testing.T) {
	v, err := NewVector(3, 4)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v.X())
	assert.Equal(t, 4.0, v.Y())
	assert.Equal(t, 5.0, v.Norm())
	assert.InDelta(t, math.Atan2(4, 3), v.PolarAngle(), 1e-15)

	_, err = NewVector(math.NaN(), 1)
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
	_, err = NewVector(1, math.Inf(1))
	assert.ErrorIs(t, err, ErrInvalidCoordinate)
}

func TestVectorPolarAngle(t *testing.T) {
	cases := []struct {
		x, y     float64
		expected float64
	}{
		{1, 0, 0},
		{0, 1, math.Pi / 2},
		{-1, 0, math.Pi},
		{-1, math.Copysign(0, -1), math.Pi},
		{0, -1, -math.Pi / 2},
		{0, 0, 0},
	}
	for _, c := range cases {
		v := MustVector(c.x, c.y)
		assert.Equal(t, c.expected, v.PolarAngle(), "<%v, %v>", c.x, c.y)
		assert.True(t, v.PolarAngle() > -math.Pi && v.PolarAngle() <= math.Pi)
		assert.True(t, v.Norm() >= 0)
	}

	var zero Vector
	assert.Equal(t, 0.0, zero.Norm())
	assert.Equal(t, 0.0, zero.PolarAngle())
}

func TestVectorArithmetic(t *testing.T) {
	cases := []struct {
		a, b    [2]float64
		sum     [2]float64
		sumNorm float64
		dot     float64
	}{
		{[2]float64{1, 2}, [2]float64{3, -1}, [2]float64{4, 1}, math.Sqrt(17), 1},
		{[2]float64{-0.5, 7.25}, [2]float64{1e3, 1e-3}, [2]float64{999.5, 7.251}, 999.5263013053, -499.99275},
		{[2]float64{0, 0}, [2]float64{-4, 9}, [2]float64{-4, 9}, math.Sqrt(97), 0},
	}
	for _, c := range cases {
		a, b := MustVector(c.a[0], c.a[1]), MustVector(c.b[0], c.b[1])

		sum := a.Add(b)
		assert.InDelta(t, c.sum[0], sum.X(), 1e-12)
		assert.InDelta(t, c.sum[1], sum.Y(), 1e-12)
		assert.InDelta(t, c.sumNorm, sum.Norm(), 1e-9)

		assert.InDelta(t, c.dot, InnerProduct(a, b), 1e-9)
		assert.Equal(t, InnerProduct(a, b), InnerProduct(b, a))
	}
}

func TestVectorAdd(t *testing.T) {
	sum := MustVector(1, 2).Add(MustVector(3, -1))
	assert.True(t, sum.Equal(MustVector(4, 1)))
	assert.InDelta(t, math.Sqrt(17), sum.Norm(), 1e-15)
	assert.False(t, sum.Equal(MustVector(1, 4)))
}

func TestVectorBetween(t *testing.T) {
	v := VectorBetween(Point{1, 1}, Point{4, 5})
	assert.True(t, v.Equal(MustVector(3, 4)))
	assert.Equal(t, 5.0, v.Norm())
	assert.Equal(t, "<3, 4>", v.String())
}

func TestInnerProduct(t *testing.T) {
	assert.Equal(t, 0.0, InnerProduct(MustVector(1, 0), MustVector(0, 5)))
	assert.Equal(t, -2.0, InnerProduct(MustVector(1, 1), MustVector(-1, -1)))
}
