package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode"

	"github.com/logrusorgru/aurora"
	"github.com/osuushi/geo2d/dbg"
	"github.com/osuushi/geo2d/geometry"
	"github.com/osuushi/geo2d/internal/svgpoly"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
)

func runContains(stdin io.Reader, out io.Writer, log *logrus.Logger, color aurora.Aurora, svgPath string, args []string) error {
	poly, err := loadPolygon(stdin, svgPath, log)
	if err != nil {
		return err
	}
	points, err := parsePoints(args)
	if err != nil {
		return err
	}

	for _, p := range points {
		verdict := color.Red("outside")
		if geometry.IsInPolygon(p, poly) {
			verdict = color.Green("inside")
		}
		fmt.Fprintf(out, "%v %s\n", p, verdict.String())
	}
	return nil
}

func runIntersect(out io.Writer, log *logrus.Logger, color aurora.Aurora, args []string, onLine bool) error {
	if len(args) != 4 {
		return errors.Errorf("intersect needs 4 points, got %d", len(args))
	}
	points, err := parsePoints(args)
	if err != nil {
		return err
	}
	a, err := geometry.NewSegment(points[0], points[1])
	if err != nil {
		return errors.Wrap(err, "first segment")
	}
	b, err := geometry.NewSegment(points[2], points[3])
	if err != nil {
		return errors.Wrap(err, "second segment")
	}
	log.WithField("a", dbg.Name(a)).Debug(dbg.Dump(a))
	log.WithField("b", dbg.Name(b)).Debug(dbg.Dump(b))

	p, err := geometry.Intersect(a, b, onLine)
	switch {
	case errors.Is(err, geometry.ErrNoIntersection), errors.Is(err, geometry.ErrLinesParallel):
		fmt.Fprintf(out, "%s: %v\n", color.Yellow("none").String(), err)
		return nil
	case err != nil:
		return err
	}
	fmt.Fprintln(out, p)
	return nil
}

func runDistance(out io.Writer, log *logrus.Logger, args []string) error {
	points, err := parsePoints(args)
	if err != nil {
		return err
	}

	var a, b geometry.Element
	switch len(points) {
	case 2:
		a, b = points[0], points[1]
	case 3:
		a = points[0]
		b, err = geometry.NewSegment(points[1], points[2])
	case 4:
		a, err = geometry.NewSegment(points[0], points[1])
		if err == nil {
			b, err = geometry.NewSegment(points[2], points[3])
		}
	default:
		return errors.Errorf("distance needs 2, 3 or 4 points, got %d", len(points))
	}
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{"a": a, "b": b}).Debug("measuring")

	d, err := geometry.Distance(a, b)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%g\n", d)
	return nil
}

func runDraw(stdin io.Reader, log *logrus.Logger, svgPath, outPath string, scale float64, cat bool, args []string) error {
	poly, err := loadPolygon(stdin, svgPath, log)
	if err != nil {
		return err
	}
	points, err := parsePoints(args)
	if err != nil {
		return err
	}
	if err := dbg.Draw(outPath, scale, poly, points...); err != nil {
		return err
	}
	log.WithField("polygon", dbg.Name(poly)).Infof("wrote %s", outPath)
	if cat {
		dbg.Cat(outPath)
	}
	return nil
}

func loadPolygon(stdin io.Reader, svgPath string, log *logrus.Logger) (geometry.Polygon, error) {
	var (
		poly geometry.Polygon
		err  error
	)
	if svgPath == "" {
		poly, err = readPolygon(stdin)
	} else {
		poly, err = readSVGPolygon(svgPath)
	}
	if err != nil {
		return geometry.Polygon{}, errors.Wrap(err, "load polygon")
	}
	log.WithField("polygon", dbg.Name(poly)).Debugf("%d vertices: %s", poly.Len(), dbg.Dump(poly.Vertices()))
	return poly, nil
}

// Read "x y" lines up to the first blank line after at least one point.
func readPolygon(in io.Reader) (geometry.Polygon, error) {
	scanner := bufio.NewScanner(in)
	var pairs []geometry.Pair
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		// If it's empty, and we collected any points, this is the end of the polygon
		if line == "" {
			if len(pairs) > 0 {
				break
			}
			continue
		}

		pair, err := parsePair(line)
		if err != nil {
			return geometry.Polygon{}, err
		}
		pairs = append(pairs, pair)
	}
	if err := scanner.Err(); err != nil {
		return geometry.Polygon{}, errors.Wrap(err, "read stdin")
	}
	return geometry.NewPolygonFromPairs(pairs...)
}

func readSVGPolygon(path string) (geometry.Polygon, error) {
	f, err := os.Open(path)
	if err != nil {
		return geometry.Polygon{}, err
	}
	defer f.Close()

	points, err := svgpoly.ParseFirst(f)
	if err != nil {
		return geometry.Polygon{}, errors.Wrap(err, path)
	}
	pairs := make([]geometry.Pair, len(points))
	for i, p := range points {
		pairs[i] = geometry.Pair(p)
	}
	return geometry.NewPolygonFromPairs(pairs...)
}

func parsePoints(args []string) ([]geometry.Point, error) {
	points := make([]geometry.Point, 0, len(args))
	for _, arg := range args {
		pair, err := parsePair(arg)
		if err != nil {
			return nil, err
		}
		p, err := geometry.NewPoint(pair[0], pair[1])
		if err != nil {
			return nil, errors.Wrapf(err, "point %q", arg)
		}
		points = append(points, p)
	}
	return points, nil
}

// Accepts "x,y", "x y" and "x, y".
func parsePair(s string) (geometry.Pair, error) {
	parts := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(parts) != 2 {
		return geometry.Pair{}, errors.Errorf("expected two coordinates in %q", s)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return geometry.Pair{}, errors.Wrapf(err, "invalid x value in %q", s)
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return geometry.Pair{}, errors.Wrapf(err, "invalid y value in %q", s)
	}
	return geometry.Pair{x, y}, nil
}
