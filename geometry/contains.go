package geometry

// Point in polygon by ray casting in all four axis directions at once. A point
// on an edge or vertex is inside.
//
// A single ray miscounts when it passes exactly through a vertex or runs along
// an edge. Casting left, right, up and down and requiring an odd count in every
// direction means one unlucky alignment does not decide the answer alone.
//
// Vertex handling: each edge owns its start point but not its end point, so a
// vertex shared by two consecutive edges is counted once. An edge lying along a
// ray is not counted as a crossing; it only marks its side of the ray, and a
// marked side with an even count is bumped to odd.
func IsInPolygon(p Point, poly Polygon) bool {
	for _, edge := range poly.edges {
		if IsOnSegment(p, edge) {
			return true
		}
	}

	var left, right, up, down rayCount
	for _, edge := range poly.edges {
		start, end := edge.start, edge.end

		// Horizontal ray
		if (start.Y-p.Y)*(end.Y-p.Y) <= 0 {
			if edge.IsHorizontal() {
				// Only reachable when the edge lies on the ray
				sideOf(start.X < p.X, &left, &right).alongEdge = true
			} else if p.Y != end.Y {
				x := horizontalCrossing(p, edge)
				sideOf(x < p.X, &left, &right).crossings++
			}
		}

		// Vertical ray
		if (start.X-p.X)*(end.X-p.X) <= 0 {
			if edge.IsVertical() {
				sideOf(start.Y < p.Y, &down, &up).alongEdge = true
			} else if p.X != end.X {
				y := verticalCrossing(p, edge)
				sideOf(y < p.Y, &down, &up).crossings++
			}
		}
	}

	return left.isOdd() && right.isOdd() && up.isOdd() && down.isOdd()
}

type rayCount struct {
	crossings int
	alongEdge bool
}

func (c rayCount) isOdd() bool {
	n := c.crossings
	if c.alongEdge && n%2 == 0 {
		n++
	}
	return n%2 == 1
}

func sideOf(before bool, lower, upper *rayCount) *rayCount {
	if before {
		return lower
	}
	return upper
}

// X where the horizontal line through p meets a non-horizontal edge.
func horizontalCrossing(p Point, edge Segment) float64 {
	if p.Y == edge.start.Y {
		return edge.start.X
	}
	x, _ := edge.SolveForX(p.Y)
	return x
}

// Y where the vertical line through p meets a non-vertical edge.
func verticalCrossing(p Point, edge Segment) float64 {
	if p.X == edge.start.X {
		return edge.start.Y
	}
	y, _ := edge.SolveForY(p.X)
	return y
}
