package input

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/osuushi/hullgen/hull"
	"github.com/pkg/errors"
)

// This is not a full (or even correct) svg reader. It collects the vertices of
// every <polygon> and the centers of every <circle>, ignoring transforms,
// paths and everything else. That's enough to sketch a point set in a vector
// editor and feed it to the hull command.

func ReadSVGFile(path string) ([]hull.Point, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open svg %s", path)
	}
	defer f.Close()

	points, err := ReadSVG(f)
	if err != nil {
		return nil, errors.Wrapf(err, "svg %s", path)
	}
	return points, nil
}

func ReadSVG(r io.Reader) ([]hull.Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parse svg")
	}

	var points []hull.Point
	for _, polygon := range root.FindAll("polygon") {
		polygonPoints, err := parsePolygonPoints(polygon.Attributes["points"])
		if err != nil {
			return nil, err
		}
		points = append(points, polygonPoints...)
	}

	for _, circle := range root.FindAll("circle") {
		x, err := strconv.ParseFloat(circle.Attributes["cx"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid circle cx %q", circle.Attributes["cx"])
		}
		y, err := strconv.ParseFloat(circle.Attributes["cy"], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid circle cy %q", circle.Attributes["cy"])
		}
		points = append(points, hull.Point{X: x, Y: y})
	}
	return points, nil
}

// The points attribute of a polygon: space separated "x,y" pairs.
func parsePolygonPoints(attr string) ([]hull.Point, error) {
	pointStrings := strings.Fields(attr)
	points := make([]hull.Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		coords := strings.Split(pointString, ",")
		if len(coords) != 2 {
			return nil, errors.Errorf("invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(coords[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", coords[0])
		}
		y, err := strconv.ParseFloat(coords[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", coords[1])
		}
		points = append(points, hull.Point{X: x, Y: y})
	}
	return points, nil
}
