package geometry

import "github.com/pkg/errors"

// Intersection of two segments. The lines through the segments must cross
// (parallel lines are ErrLinesParallel, identical ones ErrCoincidentLines). If
// the crossing is outside either segment the result is ErrNoIntersection,
// unless allowOnLineOnly is set, in which case the crossing of the infinite
// lines is returned anyway.
func Intersect(a, b Segment, allowOnLineOnly bool) (Point, error) {
	parallel, err := IsParallel(a, b)
	if err != nil {
		return Point{}, err
	}
	if parallel {
		return Point{}, errors.Wrapf(ErrLinesParallel, "%v and %v", a, b)
	}

	crossing := lineCrossing(a, b)
	if allowOnLineOnly || IsOnSegment(crossing, a) && IsOnSegment(crossing, b) {
		return crossing, nil
	}
	return Point{}, errors.Wrapf(ErrNoIntersection, "lines of %v and %v cross at %v", a, b, crossing)
}

// Crossing point of two lines known not to be parallel, so at most one of
// them is vertical.
func lineCrossing(a, b Segment) Point {
	switch {
	case a.IsVertical():
		y, _ := b.SolveForY(a.start.X)
		return Point{a.start.X, y}
	case b.IsVertical():
		y, _ := a.SolveForY(b.start.X)
		return Point{b.start.X, y}
	}
	k1, b1 := a.slope.value, a.yIntercept.value
	k2, b2 := b.slope.value, b.yIntercept.value
	x := -(b2 - b1) / (k2 - k1)
	return Point{x, k1*x + b1}
}
