package geometry

import (
	"fmt"

	"github.com/pkg/errors"
)

// The slope of a line: either a finite number or vertical. Compare slopes with
// Equal, never by reading Value alone.
type Slope struct {
	value    float64
	vertical bool
}

var VerticalSlope = Slope{vertical: true}

func FiniteSlope(k float64) Slope {
	return Slope{value: k}
}

func (s Slope) IsVertical() bool {
	return s.vertical
}

// The numeric slope, and false if the slope is vertical.
func (s Slope) Value() (float64, bool) {
	return s.value, !s.vertical
}

func (s Slope) Equal(other Slope) bool {
	if s.vertical || other.vertical {
		return s.vertical == other.vertical
	}
	return s.value == other.value
}

func (s Slope) String() string {
	if s.vertical {
		return "vertical"
	}
	return fmt.Sprintf("%g", s.value)
}

// An axis intercept, which horizontal and vertical lines lack on one axis.
// Two missing intercepts are equal.
type Intercept struct {
	value float64
	ok    bool
}

var NoIntercept = Intercept{}

func SomeIntercept(v float64) Intercept {
	return Intercept{value: v, ok: true}
}

func (i Intercept) Get() (float64, bool) {
	return i.value, i.ok
}

func (i Intercept) Equal(other Intercept) bool {
	if !i.ok || !other.ok {
		return i.ok == other.ok
	}
	return i.value == other.value
}

func (i Intercept) String() string {
	if !i.ok {
		return "none"
	}
	return fmt.Sprintf("%g", i.value)
}

// An oriented segment from Start to End. It also stands for the infinite line
// through both points, whose slope and intercepts are computed once when the
// segment is created.
type Segment struct {
	start, end Point
	slope      Slope
	xIntercept Intercept
	yIntercept Intercept
}

func NewSegment(a, b PointLike) (Segment, error) {
	start, err := a.resolve()
	if err != nil {
		return Segment{}, errors.Wrap(err, "segment start")
	}
	end, err := b.resolve()
	if err != nil {
		return Segment{}, errors.Wrap(err, "segment end")
	}
	if start.Equal(end) {
		return Segment{}, errors.Wrapf(ErrCoincidentPoints, "cannot form a segment from %v to itself", start)
	}

	s := Segment{start: start, end: end}
	switch {
	case start.Y == end.Y:
		s.slope = FiniteSlope(0)
		s.yIntercept = SomeIntercept(start.Y)
	case start.X == end.X:
		s.slope = VerticalSlope
		s.xIntercept = SomeIntercept(start.X)
	default:
		k := (end.Y - start.Y) / (end.X - start.X)
		b := start.Y - k*start.X
		s.slope = FiniteSlope(k)
		s.yIntercept = SomeIntercept(b)
		s.xIntercept = SomeIntercept(0 - (1/k)*b)
	}
	return s, nil
}

func MustSegment(a, b PointLike) Segment {
	s, err := NewSegment(a, b)
	if err != nil {
		throw(err)
	}
	return s
}

func (s Segment) Start() Point          { return s.start }
func (s Segment) End() Point            { return s.end }
func (s Segment) Slope() Slope          { return s.slope }
func (s Segment) XIntercept() Intercept { return s.xIntercept }
func (s Segment) YIntercept() Intercept { return s.yIntercept }

func (s Segment) IsHorizontal() bool {
	return !s.slope.vertical && s.start.Y == s.end.Y
}

func (s Segment) IsVertical() bool {
	return s.slope.vertical
}

// Segments are equal only when they run the same way: a reversed segment is a
// different segment.
func (s Segment) Equal(other Segment) bool {
	return s.start.Equal(other.start) && s.end.Equal(other.end)
}

// The y value of the line at x. Vertical lines have no single answer.
func (s Segment) SolveForY(x float64) (float64, bool) {
	if s.slope.vertical {
		return 0, false
	}
	return s.yIntercept.value + s.slope.value*x, true
}

// The x value of the line at y. Horizontal lines have no single answer.
func (s Segment) SolveForX(y float64) (float64, bool) {
	if s.slope.vertical {
		return s.start.X, true
	}
	if s.IsHorizontal() {
		return 0, false
	}
	return (y - s.yIntercept.value) / s.slope.value, true
}

func (s Segment) String() string {
	return fmt.Sprintf("%v->%v", s.start, s.end)
}
