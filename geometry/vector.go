package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// A 2D vector. The polar angle and norm are derived once at construction, so
// the zero Vector is the valid zero vector.
type Vector struct {
	p          r2.Point
	polarAngle float64
	norm       float64
}

func NewVector(x, y float64) (Vector, error) {
	if !isFinite(x) {
		return Vector{}, errors.Wrapf(ErrInvalidCoordinate, "vector x component %v", x)
	}
	if !isFinite(y) {
		return Vector{}, errors.Wrapf(ErrInvalidCoordinate, "vector y component %v", y)
	}
	return newVector(x, y), nil
}

func MustVector(x, y float64) Vector {
	v, err := NewVector(x, y)
	if err != nil {
		throw(err)
	}
	return v
}

// The vector pointing from one point to another.
func VectorBetween(from, to Point) Vector {
	return newVector(to.X-from.X, to.Y-from.Y)
}

func newVector(x, y float64) Vector {
	return fromR2(r2.Point{X: x, Y: y})
}

func fromR2(p r2.Point) Vector {
	angle := math.Atan2(p.Y, p.X)
	// atan2 returns -pi for (-x, -0). Keep the range half open at the bottom.
	if angle == -math.Pi {
		angle = math.Pi
	}
	return Vector{
		p:          p,
		polarAngle: angle,
		norm:       p.Norm(),
	}
}

func (v Vector) X() float64 { return v.p.X }
func (v Vector) Y() float64 { return v.p.Y }

// Angle from the positive x axis, in (-pi, pi].
func (v Vector) PolarAngle() float64 { return v.polarAngle }

func (v Vector) Norm() float64 { return v.norm }

func (v Vector) Add(other Vector) Vector {
	return fromR2(v.p.Add(other.p))
}

func (v Vector) Equal(other Vector) bool {
	return v.p == other.p
}

func (v Vector) String() string {
	return fmt.Sprintf("<%g, %g>", v.p.X, v.p.Y)
}

func InnerProduct(a, b Vector) float64 {
	return a.p.Dot(b.p)
}
