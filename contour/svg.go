package contour

import (
	"io"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
	"github.com/pkg/errors"
)

// Read every <polygon> element of an SVG document as a contour, in document
// order. Only the points attribute is used; transforms and styles are
// ignored, and so are all other shapes.
func ReadSVG(r io.Reader) ([][]Point, error) {
	root, err := svgparser.Parse(r, false)
	if err != nil {
		return nil, errors.Wrap(err, "parsing svg")
	}

	var contours [][]Point
	for i, polygon := range root.FindAll("polygon") {
		points, err := parsePointList(polygon.Attributes["points"])
		if err != nil {
			return nil, errors.Wrapf(err, "polygon %d", i)
		}
		contours = append(contours, points)
	}
	if len(contours) == 0 {
		return nil, errors.New("no polygons found")
	}
	return contours, nil
}

// The points attribute is a flat list of numbers separated by commas or
// whitespace, taken in pairs.
func parsePointList(list string) ([]Point, error) {
	fields := strings.FieldsFunc(list, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields)%2 != 0 {
		return nil, errors.Errorf("odd number of coordinates: %d", len(fields))
	}
	points := make([]Point, 0, len(fields)/2)
	for i := 0; i < len(fields); i += 2 {
		x, err := strconv.ParseFloat(fields[i], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid x value %q", fields[i])
		}
		y, err := strconv.ParseFloat(fields[i+1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "invalid y value %q", fields[i+1])
		}
		points = append(points, Point{X: x, Y: y})
	}
	return points, nil
}
