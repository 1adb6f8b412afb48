package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Element is anything Distance can measure between: a Point or a Segment.
type Element interface {
	element()
}

func (Point) element()   {}
func (Segment) element() {}

// Distance between two points, a point and a line, or two parallel lines.
// Segments stand for their infinite lines here, so the distance from a point
// to a segment is measured to the foot of the perpendicular even when that
// foot lies outside the segment.
func Distance(a, b Element) (float64, error) {
	switch a := a.(type) {
	case Point:
		switch b := b.(type) {
		case Point:
			return PointDistance(a, b), nil
		case Segment:
			return PointLineDistance(a, b), nil
		}
	case Segment:
		switch b := b.(type) {
		case Point:
			return PointLineDistance(b, a), nil
		case Segment:
			return LineDistance(a, b)
		}
	}
	return 0, errors.Wrapf(ErrInvalidGeometry, "no distance between %T and %T", a, b)
}

func PointDistance(a, b Point) float64 {
	return a.toR2().Sub(b.toR2()).Norm()
}

// Perpendicular distance from p to the line through s.
func PointLineDistance(p Point, s Segment) float64 {
	if s.IsHorizontal() {
		return math.Abs(p.Y - s.start.Y)
	}
	if s.IsVertical() {
		return math.Abs(p.X - s.start.X)
	}

	// Intersect the line with its perpendicular through p
	k1, b1 := s.slope.value, s.yIntercept.value
	k2 := -1 / k1
	b2 := p.Y - p.X*k2
	x := (b2 - b1) / (k1 - k2)
	y := k2*x + b2
	return PointDistance(p, Point{x, y})
}

// Distance between the lines through two segments, which must be parallel.
// Lines that coincide are at distance zero.
func LineDistance(a, b Segment) (float64, error) {
	if !a.slope.Equal(b.slope) {
		return 0, errors.Wrapf(ErrLinesNotParallel, "slopes %v and %v", a.slope, b.slope)
	}
	if a.IsHorizontal() {
		return math.Abs(a.start.Y - b.start.Y), nil
	}
	if a.IsVertical() {
		return math.Abs(a.start.X - b.start.X), nil
	}

	// Any point on one line will do. Always start from the line with the
	// lower intercept so the result doesn't depend on argument order.
	if a.yIntercept.value > b.yIntercept.value {
		a, b = b, a
	}
	x1 := 2.0
	y1 := x1*a.slope.value + a.yIntercept.value
	k := -1 / a.slope.value
	c := y1 - k*x1
	x2 := (c - b.yIntercept.value) / (b.slope.value - k)
	y2 := b.slope.value*x2 + b.yIntercept.value
	return PointDistance(Point{x1, y1}, Point{x2, y2}), nil
}
