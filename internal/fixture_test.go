package internal

import (
	"embed"
	"log"
	"math"
	"strconv"
	"strings"

	"github.com/JoshVarga/svgparser"
)

// This file parses the svg fixtures and outputs contours. This is not a full
// (or even correct) svg parser. It parses the SVG and then finds whatever the
// first polygon is, then converts that into a CCW contour. If anything goes
// wrong, it panics.
//
// Fixtures are available by name in this fixtures/ directory, sans extension.

//go:embed fixtures
var fixtures embed.FS

func LoadFixture(name string) []Point {
	fixture, err := fixtures.Open("fixtures/" + name + ".svg")
	if err != nil {
		log.Fatalf("Could not load fixture %q: %v", name, err)
	}

	defer fixture.Close()
	rootEl, err := svgparser.Parse(fixture, true)
	if err != nil {
		log.Fatalf("Failed to parse fixture %q: %v", name, err)
	}

	// Find the first polygon
	polygons := rootEl.FindAll("polygon")
	if len(polygons) == 0 {
		log.Fatalf("No polygons found in fixture %q", name)
	}
	if len(polygons) > 1 {
		log.Fatalf("More than one polygon found in fixture %q", name)
	}
	polygonEl := polygons[0]

	pointString := polygonEl.Attributes["points"]
	pointStrings := strings.Split(pointString, " ")
	points := make([]Point, 0, len(pointStrings))
	for _, pointString := range pointStrings {
		if pointString == "" {
			continue
		}

		pointStrings := strings.Split(pointString, ",")
		if len(pointStrings) != 2 {
			log.Fatalf("Invalid point string %q", pointString)
		}
		x, err := strconv.ParseFloat(pointStrings[0], 64)
		if err != nil {
			log.Fatalf("Invalid x value %q: %v", pointStrings[0], err)
		}
		y, err := strconv.ParseFloat(pointStrings[1], 64)
		if err != nil {
			log.Fatalf("Invalid y value %q: %v", pointStrings[1], err)
		}
		points = append(points, Point{x, y})
	}

	// Ensure that the contour is CCW
	if !IsCounterClockwise(points) {
		ReverseLoop(points)
	}
	return points
}

func reversed(points []Point) []Point {
	result := append([]Point(nil), points...)
	ReverseLoop(result)
	return result
}

// Some ad hoc code specified fixtures

func UnitSquare() [][]Point {
	return [][]Point{{{0, 0}, {1, 0}, {1, 1}, {0, 1}}}
}

func SimpleStar() [][]Point {
	var points []Point
	const outerRadius = 5
	const innerRadius = 2
	for i := 0; i < 10; i++ {
		var radius float64
		if i%2 == 0 {
			radius = outerRadius
		} else {
			radius = innerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		points = append(points, Point{X: radius * math.Cos(angle), Y: radius * math.Sin(angle)})
	}
	return [][]Point{points}
}

func SquareWithHole() [][]Point {
	outerPoints := []Point{
		{X: -5, Y: -5},
		{X: 5, Y: -5},
		{X: 5, Y: 5},
		{X: -5, Y: 5},
	}

	holePoints := []Point{
		{X: -2, Y: -2},
		{X: -2, Y: 2},
		{X: 2, Y: 2},
		{X: 2, Y: -2},
	}

	return [][]Point{outerPoints, holePoints}
}

func StarOutline() [][]Point {
	filledPoints := []Point{}
	holePoints := []Point{}
	const filledOuterRadius = 10
	const filledInnerRadius = 5
	const holeOuterRadius = filledOuterRadius - 2
	const holeInnerRadius = filledInnerRadius - 2
	for i := 0; i < 10; i++ {
		var (
			filledRadius float64
			holeRadius   float64
		)
		if i%2 == 0 {
			filledRadius = filledOuterRadius
			holeRadius = holeOuterRadius
		} else {
			filledRadius = filledInnerRadius
			holeRadius = holeInnerRadius
		}
		angle := 2 * math.Pi * float64(i) / 10
		filledPoints = append(filledPoints, Point{X: filledRadius * math.Cos(angle), Y: filledRadius * math.Sin(angle)})
		holePoints = append(holePoints, Point{X: holeRadius * math.Cos(angle), Y: holeRadius * math.Sin(angle)})
	}

	return [][]Point{filledPoints, reversed(holePoints)}
}

func StarStripes() [][]Point {
	// Multiple inset stars with alternating winding
	var list [][]Point
	const outerRadius = 10
	const n = 20
	var scale float64 = 1
	const indentScale = 0.7
	const gapScale = 0.9

	for i := 0; i < n; i++ {
		var points []Point
		for j := 0; j < 10; j++ {
			angle := 2 * math.Pi * float64(j) / 10
			r := outerRadius * scale
			if j%2 == 1 {
				r *= indentScale
			}
			points = append(points, Point{X: r * math.Cos(angle), Y: r * math.Sin(angle)})
		}
		scale *= gapScale
		if i%2 == 1 {
			points = reversed(points)
		}
		list = append(list, points)
	}
	return list
}

func MultiLayeredHoles() [][]Point {
	// In this test, we want multiple holes which contain filled shapes inside.
	makeStar := func(x, y, outerRadius, innerRadius float64) []Point {
		points := []Point{}
		for i := 0; i < 10; i++ {
			angle := 2 * math.Pi * float64(i) / 10
			r := outerRadius
			if i%2 == 1 {
				r = innerRadius
			}
			points = append(points, Point{X: x + r*math.Cos(angle), Y: y + r*math.Sin(angle)})
		}
		return points
	}
	return [][]Point{
		// Outer star
		makeStar(0, 0, 10, 7),
		// Top hole
		reversed(makeStar(1.5, 5, 3, 2)),
		// Top inner
		makeStar(1.5, 5, 2, 1),
		// Bottom hole
		reversed(makeStar(1.8, -5, 3, 2)),
		// Bottom inner
		makeStar(1.8, -5, 2, 1),
		// Left hole
		reversed(makeStar(-3, 0, 4, 2)),
		// Left inner
		makeStar(-3, 0, 3, 1),
	}
}

// A square spiral arm, wound inward. Lots of split and merge vertices at
// shared heights.
func Spiral(turns int) [][]Point {
	const width = 1
	var inner, outer []Point
	// Walk the centre line of the arm, offsetting to either side
	x, y := 0.0, 0.0
	length := 4.0
	directions := []Point{{1, 0}, {0, 1}, {-1, 0}, {0, -1}}
	centre := []Point{{x, y}}
	for i := 0; i < turns*4; i++ {
		d := directions[i%4]
		x += d.X * length
		y += d.Y * length
		centre = append(centre, Point{x, y})
		if i%2 == 1 {
			length += 3
		}
	}
	// Offsetting a polyline of right angles: each corner moves diagonally
	for i, c := range centre {
		var normal Point
		switch {
		case i == 0:
			d := directions[0]
			normal = Point{-d.Y, d.X}
		case i == len(centre)-1:
			d := directions[(i-1)%4]
			normal = Point{-d.Y, d.X}
		default:
			a, b := directions[(i-1)%4], directions[i%4]
			normal = Point{-a.Y - b.Y, a.X + b.X}
		}
		inner = append(inner, c.Add(normal.Mul(width/2.0)))
		outer = append(outer, c.Sub(normal.Mul(width/2.0)))
	}
	points := append(outer, reversed(inner)...)
	if !IsCounterClockwise(points) {
		ReverseLoop(points)
	}
	return [][]Point{points}
}
