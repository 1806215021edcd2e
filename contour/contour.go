// Package contour reads and writes the plain-text contour format used by the
// command-line harness and by tests.
//
// Input is one vertex per line, "x y", separated by any whitespace. A blank
// line ends a contour. Lines starting with # are comments. Output is one
// "x\ty" line per vertex, with a blank line after each loop or triangle.
package contour

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pkg/errors"

	"github.com/osuushi/tessellate"
	"github.com/osuushi/tessellate/advanced"
)

type Point = tessellate.Point

// Read contours from r. Contours with no points (repeated blank lines) are
// skipped.
func Read(r io.Reader) ([][]Point, error) {
	var contours [][]Point
	var points []Point
	scanner := bufio.NewScanner(r)
	lineNumber := 0
	for scanner.Scan() {
		lineNumber++
		line := strings.TrimSpace(scanner.Text())

		if strings.HasPrefix(line, "#") {
			continue
		}
		// If it's empty, and we collected any points, this is the end of the contour
		if line == "" {
			if len(points) > 0 {
				contours = append(contours, points)
				points = nil
			}
			continue
		}

		point, err := parsePoint(line)
		if err != nil {
			return nil, errors.Wrapf(err, "line %d", lineNumber)
		}
		points = append(points, point)
	}
	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "reading contours")
	}

	// Handle trailing contour if any
	if len(points) > 0 {
		contours = append(contours, points)
	}
	return contours, nil
}

func parsePoint(line string) (Point, error) {
	parts := strings.Fields(line)
	if len(parts) != 2 {
		return Point{}, errors.Errorf("expected \"x y\", got %q", line)
	}
	x, err := strconv.ParseFloat(parts[0], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid x value %q", parts[0])
	}
	y, err := strconv.ParseFloat(parts[1], 64)
	if err != nil {
		return Point{}, errors.Wrapf(err, "invalid y value %q", parts[1])
	}
	return Point{X: x, Y: y}, nil
}

func writePoints(w *bufio.Writer, points []Point) {
	for _, p := range points {
		fmt.Fprintf(w, "%g\t%g\n", p.X, p.Y)
	}
	w.WriteString("\n")
}

// Write each contour as a loop of points.
func WriteContours(w io.Writer, contours [][]Point) error {
	buf := bufio.NewWriter(w)
	for _, points := range contours {
		writePoints(buf, points)
	}
	return errors.Wrap(buf.Flush(), "writing contours")
}

// Write every face of a network, as found by following its links.
func WriteLoops(w io.Writer, network *advanced.Network) error {
	buf := bufio.NewWriter(w)
	for _, loop := range network.Loops() {
		writePoints(buf, network.LoopPoints(loop))
	}
	return errors.Wrap(buf.Flush(), "writing loops")
}

// Write each triangle of a mesh as a loop of three points.
func WriteTriangles(w io.Writer, mesh *tessellate.Mesh) error {
	buf := bufio.NewWriter(w)
	for i := 0; i < mesh.TriangleCount(); i++ {
		tri := mesh.Triangle(i)
		writePoints(buf, tri[:])
	}
	return errors.Wrap(buf.Flush(), "writing triangles")
}
