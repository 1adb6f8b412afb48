package geometry

import (
	"math"

	"github.com/pkg/errors"
)

// Whether p lies on s, endpoints included. Every comparison is exact.
//
// For a sloped segment, a point level with the start point (same x or same y)
// counts as on the segment only if it is the start point itself: a line that
// is neither horizontal nor vertical meets each vertical and each horizontal
// exactly once.
func IsOnSegment(p Point, s Segment) bool {
	start, end := s.start, s.end
	if s.IsHorizontal() {
		return p.Y == start.Y && between(p.X, start.X, end.X)
	}
	if s.IsVertical() {
		return p.X == start.X && between(p.Y, start.Y, end.Y)
	}

	if p.Equal(start) || p.Equal(end) {
		return true
	}

	// Either of these would be a zero divisor below
	if p.X == start.X {
		return p.Y == start.Y
	}
	if p.Y == start.Y {
		return p.X == start.X
	}

	onLine := (end.X-p.X)/(p.X-start.X) == (end.Y-p.Y)/(p.Y-start.Y)
	return onLine && between(p.X, start.X, end.X) && between(p.Y, start.Y, end.Y)
}

// Whether the lines through two segments are parallel. Segments on the same
// line are an error rather than parallel.
//
// Lines count as the same line when both their intercepts match. Note that
// this means any two sloped lines through the origin are reported as the same
// line, whatever their slopes.
func IsParallel(a, b Segment) (bool, error) {
	if err := checkDistinctLines(a, b); err != nil {
		return false, err
	}
	return a.slope.Equal(b.slope), nil
}

// Whether the lines through two segments meet at a right angle. Segments on
// the same line are an error, as in IsParallel.
func IsPerpendicular(a, b Segment) (bool, error) {
	if err := checkDistinctLines(a, b); err != nil {
		return false, err
	}
	if a.IsHorizontal() && b.IsVertical() || a.IsVertical() && b.IsHorizontal() {
		return true, nil
	}
	k1, ok1 := a.slope.Value()
	k2, ok2 := b.slope.Value()
	if !ok1 || !ok2 {
		return false, nil
	}
	return k1*k2 == -1, nil
}

func checkDistinctLines(a, b Segment) error {
	if a.xIntercept.Equal(b.xIntercept) && a.yIntercept.Equal(b.yIntercept) {
		return errors.Wrapf(ErrCoincidentLines, "%v and %v", a, b)
	}
	return nil
}

// lo <= v <= hi, for the bounds in either order.
func between(v, a, b float64) bool {
	return math.Min(a, b) <= v && v <= math.Max(a, b)
}
