package geometry

import (
	"math"
	"strings"

	"github.com/pkg/errors"
)

// A closed polygon. Edge i runs from vertex i to vertex i+1, and the last edge
// closes the loop back to the first vertex, so there are as many edges as
// vertices. Edges may cross; nothing checks that the polygon is simple.
type Polygon struct {
	vertices []Point
	edges    []Segment
}

func NewPolygon(points ...Point) (Polygon, error) {
	if len(points) < 3 {
		return Polygon{}, errors.Wrapf(ErrInsufficientVertices, "got %d points", len(points))
	}
	return buildPolygon(points)
}

func NewPolygonFromPairs(pairs ...Pair) (Polygon, error) {
	if len(pairs) < 3 {
		return Polygon{}, errors.Wrapf(ErrInsufficientVertices, "got %d pairs", len(pairs))
	}
	points := make([]Point, 0, len(pairs))
	for _, pair := range pairs {
		p, err := NewPoint(pair[0], pair[1])
		if err != nil {
			return Polygon{}, err
		}
		points = append(points, p)
	}
	return buildPolygon(points)
}

// Build a polygon from a flat x0, y0, x1, y1, ... list.
func NewPolygonFromCoords(coords ...float64) (Polygon, error) {
	if len(coords)%2 != 0 || len(coords) < 6 {
		return Polygon{}, errors.Wrapf(ErrInsufficientVertices, "got %d coordinates", len(coords))
	}
	points := make([]Point, 0, len(coords)/2)
	for i := 0; i < len(coords); i += 2 {
		p, err := NewPoint(coords[i], coords[i+1])
		if err != nil {
			return Polygon{}, err
		}
		points = append(points, p)
	}
	return buildPolygon(points)
}

// Build a polygon from loosely typed input, such as decoded JSON. The values
// must all have the same shape: all numbers (a flat coordinate list), all
// pairs (Pair, [2]float64 or a two element []float64), or all Points.
func NewPolygonFromValues(values ...interface{}) (Polygon, error) {
	if len(values) == 0 {
		return Polygon{}, errors.Wrap(ErrInsufficientVertices, "no values")
	}

	if _, ok := number(values[0]); ok {
		coords := make([]float64, len(values))
		for i, v := range values {
			n, ok := number(v)
			if !ok {
				return Polygon{}, errors.Wrapf(ErrInvalidGeometry, "value %d is %T in a coordinate list", i, v)
			}
			coords[i] = n
		}
		return NewPolygonFromCoords(coords...)
	}

	if _, ok := pair(values[0]); ok {
		pairs := make([]Pair, len(values))
		for i, v := range values {
			p, ok := pair(v)
			if !ok {
				return Polygon{}, errors.Wrapf(ErrInvalidGeometry, "value %d is %T in a pair list", i, v)
			}
			pairs[i] = p
		}
		return NewPolygonFromPairs(pairs...)
	}

	if _, ok := values[0].(Point); ok {
		points := make([]Point, len(values))
		for i, v := range values {
			p, ok := v.(Point)
			if !ok {
				return Polygon{}, errors.Wrapf(ErrInvalidGeometry, "value %d is %T in a point list", i, v)
			}
			points[i] = p
		}
		return NewPolygon(points...)
	}

	return Polygon{}, errors.Wrapf(ErrInvalidGeometry, "cannot form a polygon from %T values", values[0])
}

func MustPolygon(points ...Point) Polygon {
	poly, err := NewPolygon(points...)
	if err != nil {
		throw(err)
	}
	return poly
}

func MustPolygonFromPairs(pairs ...Pair) Polygon {
	poly, err := NewPolygonFromPairs(pairs...)
	if err != nil {
		throw(err)
	}
	return poly
}

// Runs of identical consecutive vertices collapse into one. Any other repeated
// vertex is an error.
func buildPolygon(points []Point) (Polygon, error) {
	var poly Polygon
	for i, vertex := range points {
		if i > 0 && vertex.Equal(points[i-1]) {
			continue
		}
		if poly.hasVertex(vertex) {
			return Polygon{}, errors.Wrapf(ErrCoincidentPoints, "vertex %v appears more than once", vertex)
		}
		if len(poly.vertices) > 0 {
			edge, err := NewSegment(poly.vertices[len(poly.vertices)-1], vertex)
			if err != nil {
				return Polygon{}, err
			}
			// Unreachable while vertices are unique; kept so the edge rule holds on its own
			if poly.hasEdge(edge) {
				return Polygon{}, errors.Wrapf(ErrCoincidentEdges, "edge %v appears more than once", edge)
			}
			poly.edges = append(poly.edges, edge)
		}
		poly.vertices = append(poly.vertices, vertex)
	}

	if len(poly.vertices) < 3 {
		return Polygon{}, errors.Wrapf(ErrInsufficientVertices, "only %d distinct vertices", len(poly.vertices))
	}

	closing, err := NewSegment(poly.vertices[len(poly.vertices)-1], poly.vertices[0])
	if err != nil {
		return Polygon{}, err
	}
	poly.edges = append(poly.edges, closing)
	return poly, nil
}

func (poly Polygon) hasVertex(p Point) bool {
	for _, vertex := range poly.vertices {
		if vertex.Equal(p) {
			return true
		}
	}
	return false
}

func (poly Polygon) hasEdge(s Segment) bool {
	for _, edge := range poly.edges {
		if edge.Equal(s) {
			return true
		}
	}
	return false
}

func (poly Polygon) Len() int {
	return len(poly.vertices)
}

func (poly Polygon) Vertices() []Point {
	return append([]Point(nil), poly.vertices...)
}

func (poly Polygon) Edges() []Segment {
	return append([]Segment(nil), poly.edges...)
}

// Vertex i, treating the vertex list as a circular buffer.
func (poly Polygon) Vertex(i int) Point {
	return poly.vertices[CircularIndex(i, len(poly.vertices))]
}

// Two polygons are equal when each has every edge of the other. Edges compare
// with their direction, so a polygon and its reversal are not equal, but the
// starting vertex does not matter.
func (poly Polygon) Equal(other Polygon) bool {
	for _, edge := range poly.edges {
		if !other.hasEdge(edge) {
			return false
		}
	}
	for _, edge := range other.edges {
		if !poly.hasEdge(edge) {
			return false
		}
	}
	return true
}

func (poly Polygon) BoundingBox() (min, max Point) {
	min = Point{math.Inf(1), math.Inf(1)}
	max = Point{math.Inf(-1), math.Inf(-1)}
	for _, p := range poly.vertices {
		min.X = math.Min(min.X, p.X)
		min.Y = math.Min(min.Y, p.Y)
		max.X = math.Max(max.X, p.X)
		max.Y = math.Max(max.Y, p.Y)
	}
	return min, max
}

func (poly Polygon) String() string {
	var b strings.Builder
	b.WriteString("Polygon")
	for _, p := range poly.vertices {
		b.WriteByte(' ')
		b.WriteString(p.String())
	}
	return b.String()
}

// Plain even-odd rule with a single rightward ray. It has none of the
// degenerate case handling of IsInPolygon, and gives arbitrary answers for
// points on an edge or level with a vertex, but it is an independent check for
// everything else.
func (poly Polygon) ContainsPointByEvenOdd(p Point) bool {
	return poly.CrossingCount(p)%2 == 1
}

// Crossing count helper for even odd rule
func (poly Polygon) CrossingCount(p Point) int {
	crossingCount := 0
	for _, edge := range poly.edges {
		a, b := edge.start, edge.end
		if (a.Y > p.Y) == (b.Y > p.Y) {
			continue
		}
		x := a.X + (p.Y-a.Y)*(b.X-a.X)/(b.Y-a.Y)
		if x > p.X {
			crossingCount++
		}
	}
	return crossingCount
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

func number(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case int32:
		return float64(n), true
	}
	return 0, false
}

func pair(v interface{}) (Pair, bool) {
	switch p := v.(type) {
	case Pair:
		return p, true
	case [2]float64:
		return Pair(p), true
	case []float64:
		if len(p) == 2 {
			return Pair{p[0], p[1]}, true
		}
	case []interface{}:
		if len(p) != 2 {
			break
		}
		x, xok := number(p[0])
		y, yok := number(p[1])
		if xok && yok {
			return Pair{x, y}, true
		}
	}
	return Pair{}, false
}
