// Command geo2d runs planar geometry queries from the shell.
//
// The polygon for contains and draw is read from stdin as newline separated
// points in the form "x y" (a blank line ends the polygon; anything after it
// is ignored), or from the first <polygon> of an SVG file given with --svg.
// Points on the command line are written "x,y". A point starting with a minus
// sign would be read as a flag, so put "--" before the points when any of them
// is negative.
//
//	printf '0 0\n2 0\n2 2\n0 2\n' | geo2d contains 1,1 3,3
//	geo2d intersect 0,0 2,2 0,2 2,0
//	geo2d distance 0,2 0,0 2,2
//	geo2d distance -- -1,0 3,4
//	geo2d --svg shape.svg draw --out shape.png 1,1
package main

import (
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/sirupsen/logrus"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	app     = kingpin.New("geo2d", "Planar geometry queries: containment, intersection, distance.")
	verbose = app.Flag("verbose", "Log parsed input and intermediate results.").Short('v').Envar("GEO2D_VERBOSE").Bool()
	noColor = app.Flag("no-color", "Disable coloured output.").Envar("GEO2D_NO_COLOR").Bool()
	svgFile = app.Flag("svg", "Read the polygon from the first <polygon> of this SVG file instead of stdin.").ExistingFile()

	containsCmd    = app.Command("contains", "Report whether each point lies in the polygon (edges included).")
	containsPoints = containsCmd.Arg("points", "Points as x,y.").Required().Strings()

	intersectCmd    = app.Command("intersect", "Intersect two segments given by four points.")
	intersectPoints = intersectCmd.Arg("points", "Start and end of the first segment, then of the second.").Required().Strings()
	intersectOnLine = intersectCmd.Flag("on-line", "Report the crossing of the lines even when it is outside the segments.").Bool()

	distanceCmd    = app.Command("distance", "Distance between two points (2 args), a point and a line (3) or two parallel lines (4).")
	distancePoints = distanceCmd.Arg("points", "Points as x,y.").Required().Strings()

	drawCmd    = app.Command("draw", "Render the polygon and points to a PNG.")
	drawOut    = drawCmd.Flag("out", "PNG file to write.").Short('o').Default("polygon.png").String()
	drawScale  = drawCmd.Flag("scale", "Pixels per unit.").Default("50").Float64()
	drawImgcat = drawCmd.Flag("imgcat", "Also print the image to the terminal (iTerm only).").Bool()
	drawPoints = drawCmd.Arg("points", "Points to mark, as x,y.").Strings()
)

func main() {
	command := kingpin.MustParse(app.Parse(os.Args[1:]))
	log := newLogger(*verbose)
	color := aurora.NewAurora(!*noColor)

	var err error
	switch command {
	case containsCmd.FullCommand():
		err = runContains(os.Stdin, os.Stdout, log, color, *svgFile, *containsPoints)
	case intersectCmd.FullCommand():
		err = runIntersect(os.Stdout, log, color, *intersectPoints, *intersectOnLine)
	case distanceCmd.FullCommand():
		err = runDistance(os.Stdout, log, *distancePoints)
	case drawCmd.FullCommand():
		err = runDraw(os.Stdin, log, *svgFile, *drawOut, *drawScale, *drawImgcat, *drawPoints)
	}
	if err != nil {
		log.WithError(err).Fatal(command + " failed")
	}
}

func newLogger(verbose bool) *logrus.Logger {
	log := logrus.New()
	log.SetOutput(os.Stderr)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	if verbose {
		log.SetLevel(logrus.DebugLevel)
	}
	return log
}
