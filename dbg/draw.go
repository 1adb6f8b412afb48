package dbg

import (
	"math"
	"os"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/osuushi/geo2d/geometry"
	"github.com/pkg/errors"
)

// Padding around the shape so points outside it are still visible
const drawPadding = 50

const pointRadius = 4

// Draw the polygon, and the given points coloured by whether IsInPolygon says
// they are inside, to a PNG file. Coordinates are scaled by scale pixels per
// unit and flipped so the origin is at the bottom left.
func Draw(path string, scale float64, poly geometry.Polygon, points ...geometry.Point) error {
	lo, hi := poly.BoundingBox()
	minX, minY, maxX, maxY := lo.X, lo.Y, hi.X, hi.Y
	// Widen the box to take in the query points
	for _, p := range points {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	// Set up the context
	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	c.SetFillRuleEvenOdd()

	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)

	// Translate for padding
	c.Translate(drawPadding, drawPadding)
	// Scale
	c.Scale(scale, scale)
	// Translate to min
	c.Translate(-minX, -minY)

	c.SetLineWidth(2)
	first := poly.Vertex(0)
	c.MoveTo(first.X, first.Y)
	for i := 1; i < poly.Len(); i++ {
		p := poly.Vertex(i)
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
	c.SetRGB(0, 0.5, 0)
	c.FillPreserve()
	c.SetRGB(0, 1, 1)
	c.Stroke()

	for _, p := range points {
		// Keep the dots round whatever the scale
		c.DrawCircle(p.X, p.Y, pointRadius/scale)
		if geometry.IsInPolygon(p, poly) {
			c.SetRGB(1, 1, 0)
		} else {
			c.SetRGB(1, 0, 0)
		}
		c.Fill()
	}

	return errors.Wrapf(c.SavePNG(path), "save %s", path)
}

// Print an image file inline in the terminal (iTerm only).
func Cat(path string) {
	imgcat.CatFile(path, os.Stdout)
}
