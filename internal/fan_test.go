package internal

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func regularPolygon(sides int, radius float64) []Point {
	points := make([]Point, sides)
	for i := range points {
		angle := 2 * math.Pi * float64(i) / float64(sides)
		points[i] = Point{radius * math.Cos(angle), radius * math.Sin(angle)}
	}
	return points
}

func TestAnalyzeConvexity(t *testing.T) {
	cases := []struct {
		name    string
		points  []Point
		convex  bool
		winding int
	}{
		{"unit square", UnitSquare()[0], true, 1},
		{"clockwise square", reversed(UnitSquare()[0]), true, -1},
		{"hexagon", regularPolygon(6, 3), true, 1},
		{"collinear edge", []Point{{0, 0}, {1, 0}, {2, 0}, {2, 1}, {0, 1}}, true, 1},
		{"star", SimpleStar()[0], false, 0},
		{"arrow", LoadFixture("arrow"), false, 0},
		{"all on a line", []Point{{0, 0}, {1, 1}, {2, 2}}, false, 0},
		{"two points", []Point{{0, 0}, {1, 1}}, false, 0},
		// Every turn is to the left, but the boundary goes around twice
		{"pentagram", []Point{
			{0, 10},
			{-5.878, -8.090},
			{9.511, 3.090},
			{-9.511, 3.090},
			{5.878, -8.090},
		}, false, 0},
	}
	for _, c := range cases {
		c := c
		t.Run(c.name, func(t *testing.T) {
			result := AnalyzeConvexity(c.points)
			assert.Equal(t, c.convex, result.Convex)
			assert.Equal(t, c.winding, result.Winding)
			assert.Equal(t, len(c.points), result.NumPoints)
			assert.Equal(t, c.convex, IsConvex(c.points))
		})
	}
}

func TestTriangulateFan(t *testing.T) {
	t.Run("unit square", func(t *testing.T) {
		triangles := TriangulateFan(UnitSquare()[0])
		assert.Equal(t, [][3]Index{{0, 1, 2}, {0, 2, 3}}, triangles)
	})

	for _, contour := range [][]Point{regularPolygon(12, 2), reversed(regularPolygon(7, 5))} {
		contour := contour
		t.Run("matches the network triangulation", func(t *testing.T) {
			n := NewNetwork([][]Point{contour})
			triangles := TriangulateFan(contour)
			require.Len(t, triangles, len(contour)-2)

			var area float64
			for _, tri := range triangles {
				a := TriangleSignedArea(contour[tri[0]], contour[tri[1]], contour[tri[2]])
				assert.Greater(t, a, 0.0)
				area += a
			}
			assert.InDelta(t, math.Abs(SignedArea(contour)), area, Epsilon)

			PartitionMonotone(n, nil)
			assert.Len(t, TriangulateFaces(n, nil), len(triangles))
		})
	}

	t.Run("too few points", func(t *testing.T) {
		assert.Error(t, catch(func() { TriangulateFan([]Point{{0, 0}, {1, 1}}) }))
	})
}
