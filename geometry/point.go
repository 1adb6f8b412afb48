package geometry

import (
	"fmt"
	"math"

	"github.com/golang/geo/r2"
	"github.com/pkg/errors"
)

// Tolerance used by Near and Point.ApproxEqual. None of the predicates in this
// package use it: they compare coordinates exactly, so points that are only
// nearly on a segment or edge are treated as off it.
const Tolerance = 1e-9

func Near(a, b float64) bool {
	return math.Abs(a-b) < Tolerance
}

type Point struct {
	X float64
	Y float64
}

// Create a point, rejecting NaN and infinite coordinates.
func NewPoint(x, y float64) (Point, error) {
	if !isFinite(x) {
		return Point{}, errors.Wrapf(ErrInvalidCoordinate, "x coordinate %v", x)
	}
	if !isFinite(y) {
		return Point{}, errors.Wrapf(ErrInvalidCoordinate, "y coordinate %v", y)
	}
	return Point{X: x, Y: y}, nil
}

func MustPoint(x, y float64) Point {
	p, err := NewPoint(x, y)
	if err != nil {
		throw(err)
	}
	return p
}

// Exact coordinate equality. 0 and -0 are equal; NaN is never equal to anything.
func (p Point) Equal(other Point) bool {
	return p.X == other.X && p.Y == other.Y
}

func (p Point) ApproxEqual(other Point) bool {
	return Near(p.X, other.X) && Near(p.Y, other.Y)
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

func (p Point) toR2() r2.Point {
	return r2.Point{X: p.X, Y: p.Y}
}

// A bare coordinate pair, accepted anywhere a PointLike is.
type Pair [2]float64

// PointLike is the closed set of inputs segments and polygons can be built
// from: a Point, or a Pair that still needs converting.
type PointLike interface {
	resolve() (Point, error)
}

func (p Point) resolve() (Point, error) {
	return p, nil
}

func (p Pair) resolve() (Point, error) {
	point, err := NewPoint(p[0], p[1])
	if err != nil {
		return Point{}, errors.Wrapf(ErrInvalidGeometry, "cannot form a point from %v: %v", [2]float64(p), err)
	}
	return point, nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
