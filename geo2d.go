// A small planar geometry package for Go.
//
// This package exposes the value types of the geometry package (points,
// vectors, segments and polygons) and a few one-call helpers that take raw
// coordinates, for callers that don't want to build the values themselves.
//
// Containment counts the boundary as inside. All comparisons are exact; see
// geometry.Near for a tolerance-based helper.
package geo2d

import "github.com/osuushi/geo2d/geometry"

type Point = geometry.Point
type Pair = geometry.Pair
type Vector = geometry.Vector
type Segment = geometry.Segment
type Polygon = geometry.Polygon

// Report whether p is inside, or on the boundary of, the polygon with the
// given vertices.
func Contains(vertices []Pair, p Pair) (result bool, err error) {
	defer func() {
		recoveredErr := geometry.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = false
			err = recoveredErr
		}
	}()
	poly := geometry.MustPolygonFromPairs(vertices...)
	return geometry.IsInPolygon(geometry.MustPoint(p[0], p[1]), poly), nil
}

// Intersect the segments a0->a1 and b0->b1. With onLine set, the crossing of
// the two lines is returned even when it lies outside the segments.
func Intersect(a0, a1, b0, b1 Pair, onLine bool) (result Point, err error) {
	defer func() {
		recoveredErr := geometry.HandlePanicRecover(recover())
		if recoveredErr != nil {
			result = Point{}
			err = recoveredErr
		}
	}()
	a := geometry.MustSegment(a0, a1)
	b := geometry.MustSegment(b0, b1)
	return geometry.Intersect(a, b, onLine)
}

// Distance between two points.
func Distance(a, b Pair) (float64, error) {
	p, err := geometry.NewPoint(a[0], a[1])
	if err != nil {
		return 0, err
	}
	q, err := geometry.NewPoint(b[0], b[1])
	if err != nil {
		return 0, err
	}
	return geometry.PointDistance(p, q), nil
}
