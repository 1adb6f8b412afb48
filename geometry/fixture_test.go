package geometry

import (
	"embed"
	"testing"

	"github.com/osuushi/geo2d/internal/svgpoly"
	"github.com/stretchr/testify/require"
)

// Fixtures are available by name in the fixtures/ directory, sans extension.
// Each is an SVG whose first <polygon> is the shape.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(t *testing.T, name string) Polygon {
	t.Helper()
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	require.NoError(t, err, "could not load fixture %q", name)
	defer fixture.Close()

	points, err := svgpoly.ParseFirst(fixture)
	require.NoError(t, err, "failed to parse fixture %q", name)

	pairs := make([]Pair, len(points))
	for i, p := range points {
		pairs[i] = Pair(p)
	}
	poly, err := NewPolygonFromPairs(pairs...)
	require.NoError(t, err, "invalid polygon in fixture %q", name)
	return poly
}

// Some ad hoc shapes with integer coordinates, so that edge midpoints are
// exactly representable.
func Triangle() Polygon {
	return MustPolygonFromPairs(Pair{0, 0}, Pair{4, 0}, Pair{2, 3})
}

func SkewTriangle() Polygon {
	return MustPolygonFromPairs(Pair{0, 0}, Pair{3, 1}, Pair{1, 4})
}

func Diamond() Polygon {
	return MustPolygonFromPairs(Pair{1, 0}, Pair{0, 1}, Pair{-1, 0}, Pair{0, -1})
}
