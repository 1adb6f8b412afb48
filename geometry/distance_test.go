package geometry

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPointDistance(t *testing.T) {
	assert.Equal(t, 5.0, PointDistance(Point{0, 0}, Point{3, 4}))
	assert.Equal(t, 0.0, PointDistance(Point{1, 1}, Point{1, 1}))

	points := []Point{{0, 0}, {3, 4}, {-1.5, 2.25}, {1e6, -1e-6}}
	for _, a := range points {
		for _, b := range points {
			assert.Equal(t, PointDistance(a, b), PointDistance(b, a))
		}
	}
}

func TestPointLineDistance(t *testing.T) {
	cases := []struct {
		name     string
		p        Point
		s        Segment
		expected float64
	}{
		{"horizontal", Point{1, 5}, MustSegment(Pair{0, 2}, Pair{4, 2}), 3},
		{"vertical", Point{5, 1}, MustSegment(Pair{2, 0}, Pair{2, 3}), 3},
		{"diagonal", Point{0, 2}, MustSegment(Pair{0, 0}, Pair{2, 2}), math.Sqrt2},
		{"diagonal off axis", Point{3, 0}, MustSegment(Pair{0, 0}, Pair{2, 2}), 3 / math.Sqrt2},
		{"beyond the segment", Point{10, 0}, MustSegment(Pair{0, 0}, Pair{1, 1}), 10 / math.Sqrt2},
		{"on the line", Point{5, 5}, MustSegment(Pair{0, 0}, Pair{1, 1}), 0},
		{"shallow slope", Point{0, 5}, MustSegment(Pair{0, 0}, Pair{2, 1}), 10 / math.Sqrt(5)},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			assert.InDelta(t, c.expected, PointLineDistance(c.p, c.s), 1e-12)
		})
	}
}

func TestLineDistance(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Segment
		expected float64
	}{
		{"horizontal", MustSegment(Pair{0, 1}, Pair{5, 1}), MustSegment(Pair{-2, 4}, Pair{9, 4}), 3},
		{"vertical", MustSegment(Pair{1, 0}, Pair{1, 5}), MustSegment(Pair{-2, 3}, Pair{-2, 4}), 3},
		{"diagonal", MustSegment(Pair{0, 0}, Pair{1, 1}), MustSegment(Pair{0, 2}, Pair{1, 3}), math.Sqrt2},
		{"shallow slope", MustSegment(Pair{0, 0}, Pair{2, 1}), MustSegment(Pair{0, 5}, Pair{2, 6}), 10 / math.Sqrt(5)},
		{"same line", MustSegment(Pair{0, 0}, Pair{1, 1}), MustSegment(Pair{2, 2}, Pair{5, 5}), 0},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ab, err := LineDistance(c.a, c.b)
			require.NoError(t, err)
			assert.InDelta(t, c.expected, ab, 1e-12)
			ba, err := LineDistance(c.b, c.a)
			require.NoError(t, err)
			assert.Equal(t, ab, ba)
		})
	}

	_, err := LineDistance(MustSegment(Pair{0, 0}, Pair{1, 1}), MustSegment(Pair{0, 0}, Pair{1, 2}))
	assert.ErrorIs(t, err, ErrLinesNotParallel)
	_, err = LineDistance(MustSegment(Pair{0, 0}, Pair{1, 0}), MustSegment(Pair{0, 0}, Pair{0, 2}))
	assert.ErrorIs(t, err, ErrLinesNotParallel)
}

// Parallel segments built from integer offsets, so both slopes are the same
// float division and the lines are exactly parallel.
func TestLineDistance_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(1))
	coord := func() float64 { return float64(rng.Intn(200) - 100) }
	nonZero := func() float64 {
		for {
			if v := coord(); v != 0 {
				return v
			}
		}
	}

	for i := 0; i < 2000; i++ {
		dx, dy := nonZero(), nonZero()
		x0, y0 := coord(), coord()
		x1, y1 := coord(), coord()
		a := MustSegment(Pair{x0, y0}, Pair{x0 + dx, y0 + dy})
		b := MustSegment(Pair{x1, y1}, Pair{x1 + dx, y1 + dy})

		ab, err := Distance(a, b)
		require.NoError(t, err, "%v %v", a, b)
		ba, err := Distance(b, a)
		require.NoError(t, err, "%v %v", a, b)
		assert.Equal(t, ab, ba, "%v %v", a, b)
	}
}

func TestDistance(t *testing.T) {
	p := Point{0, 2}
	q := Point{3, 6}
	s := MustSegment(Pair{0, 0}, Pair{2, 2})
	r := MustSegment(Pair{0, 1}, Pair{2, 3})

	d, err := Distance(p, q)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	pointToLine, err := Distance(p, s)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2, pointToLine, 1e-12)
	lineToPoint, err := Distance(s, p)
	require.NoError(t, err)
	assert.Equal(t, pointToLine, lineToPoint)

	d, err = Distance(s, r)
	require.NoError(t, err)
	assert.InDelta(t, math.Sqrt2/2, d, 1e-12)

	_, err = Distance(s, MustSegment(Pair{0, 0}, Pair{0, 1}))
	assert.ErrorIs(t, err, ErrLinesNotParallel)

	_, err = Distance(nil, p)
	assert.ErrorIs(t, err, ErrInvalidGeometry)
}
