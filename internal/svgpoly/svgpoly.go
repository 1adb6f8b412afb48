// Package svgpoly reads <polygon> elements out of SVG documents. This is not a
// full (or even correct) SVG reader: transforms, paths and every other shape
// are ignored, and coordinates are taken exactly as written.
package svgpoly

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Parse returns the vertices of every <polygon> element in the document, in
// document order.
func Parse(r io.Reader) ([][][2]float64, error) {
	rootEl, err := svgparser.Parse(r, true)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	polygonEls := rootEl.FindAll("polygon")
	if len(polygonEls) == 0 {
		return nil, errors.New("no polygons found")
	}

	polygons := make([][][2]float64, 0, len(polygonEls))
	for i, polygonEl := range polygonEls {
		points, err := ParsePoints(polygonEl.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		polygons = append(polygons, points)
	}
	return polygons, nil
}

// ParseFirst returns the vertices of the first <polygon> in the document.
func ParseFirst(r io.Reader) ([][2]float64, error) {
	polygons, err := Parse(r)
	if err != nil {
		return nil, err
	}
	return polygons[0], nil
}

// ParsePoints parses a points attribute. Numbers may be separated by commas,
// whitespace or both, as in "0,0 2,0 2 2".
func ParsePoints(attr string) ([][2]float64, error) {
	fields := strings.FieldsFunc(attr, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates (%d)", len(fields))
	}

	points := make([][2]float64, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, [2]float64{x, y})
	}
	return points, nil
}
