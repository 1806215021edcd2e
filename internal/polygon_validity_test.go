package internal

// This contains no actual tests. It is just a helper for testing triangulation
// validity.

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const Epsilon = 1e-9

// Helper to check that a triangulation is valid. The rules are:
// 1. Every triangle indexes a vertex of the network.
// 2. Every boundary edge of the input is an edge of some triangle.
// 3. Every triangle is counterclockwise
// 4. There are n + 2h - 2c triangles for n vertices, h holes and c outer
//    contours.
// 5. The sum of the areas of all triangles is equal to the area of the input.
func AssertValidTriangulation(t *testing.T, contours [][]Point, n *Network, triangles [][3]Index) {
	var expectedArea float64
	outers, holes := 0, 0
	for _, contour := range contours {
		area := SignedArea(contour)
		expectedArea += area
		if area > 0 {
			outers++
		} else {
			holes++
		}
	}
	// Fully mirrored input is flipped as a whole
	if expectedArea < 0 {
		expectedArea = -expectedArea
		outers, holes = holes, outers
	}

	require.Len(t, triangles, len(n.Vertices)+2*holes-2*outers, "triangle count")

	var triangleArea float64
	triangleSegmentSet := make(normalizedSegmentSet)
	for _, tri := range triangles {
		for _, v := range tri {
			require.Less(t, int(v), len(n.Vertices), "triangle %v indexes past the vertices", tri)
		}
		a, b, c := n.Vertices[tri[0]], n.Vertices[tri[1]], n.Vertices[tri[2]]
		area := TriangleSignedArea(a, b, c)
		require.GreaterOrEqual(t, area, 0.0, "clockwise triangle: %v", tri)
		triangleArea += area
		triangleSegmentSet.add(tri[0], tri[1])
		triangleSegmentSet.add(tri[1], tri[2])
		triangleSegmentSet.add(tri[2], tri[0])
	}

	// Check every boundary segment is in the set
	for v := 0; v < n.BoundaryEdgeCount(); v++ {
		a, b := Index(v), n.RingNext(Index(v))
		require.True(t, triangleSegmentSet.contains(a, b), "segment %v-%v is not in the set of segments in the triangles", n.Vertices[a], n.Vertices[b])
	}

	require.InDelta(t, expectedArea, triangleArea, Epsilon*math.Max(1, expectedArea), "sum of the areas of all triangles is equal to the area of the input")
}

// A vertex pair with the smaller index first
type normalizedSegment struct {
	a, b Index
}

func newNormalizedSegment(a, b Index) normalizedSegment {
	if a < b {
		return normalizedSegment{a, b}
	}
	return normalizedSegment{b, a}
}

type normalizedSegmentSet map[normalizedSegment]struct{}

func (set normalizedSegmentSet) add(a, b Index) {
	set[newNormalizedSegment(a, b)] = struct{}{}
}

func (set normalizedSegmentSet) contains(a, b Index) bool {
	_, ok := set[newNormalizedSegment(a, b)]
	return ok
}

// Even-odd containment over any number of loops. A vertex exactly on the ray
// is counted on the upper side only.
func containsByEvenOdd(loops [][]Point, p Point) bool {
	inside := false
	for _, loop := range loops {
		for i, a := range loop {
			b := loop[(i+1)%len(loop)]
			if (a.Y > p.Y) != (b.Y > p.Y) {
				x := a.X + (p.Y-a.Y)/(b.Y-a.Y)*(b.X-a.X)
				if p.X < x {
					inside = !inside
				}
			}
		}
	}
	return inside
}

func trianglesAsLoops(n *Network, triangles [][3]Index) [][]Point {
	loops := make([][]Point, len(triangles))
	for i, tri := range triangles {
		loops[i] = []Point{n.Vertices[tri[0]], n.Vertices[tri[1]], n.Vertices[tri[2]]}
	}
	return loops
}

func facesAsLoops(n *Network) [][]Point {
	var loops [][]Point
	for _, loop := range n.Loops() {
		loops = append(loops, n.LoopPoints(loop))
	}
	return loops
}

func validatePolygonsBySampling(t *testing.T, actual [][]Point, expected [][]Point) {
	minX, minY, maxX, maxY := math.Inf(1), math.Inf(1), math.Inf(-1), math.Inf(-1)
	for _, list := range [][][]Point{actual, expected} {
		for _, loop := range list {
			for _, p := range loop {
				minX = math.Min(minX, p.X)
				minY = math.Min(minY, p.Y)
				maxX = math.Max(maxX, p.X)
				maxY = math.Max(maxY, p.Y)
			}
		}
	}

	// Pad the bounding box by 10%
	xPadding := (maxX - minX) * 0.1
	yPadding := (maxY - minY) * 0.1
	minX -= xPadding
	minY -= yPadding
	maxX += xPadding
	maxY += yPadding

	// Compute the step size. The grid is nudged off round numbers so that
	// samples don't land on shared edges, which even-odd counts twice.
	step := math.Max(maxX-minX, maxY-minY) / 50
	offset := step * 0.37

	for y := minY + offset; y <= maxY; y += step {
		for x := minX + offset; x <= maxX; x += step {
			p := Point{X: x, Y: y}

			got := containsByEvenOdd(actual, p)
			if containsByEvenOdd(expected, p) {
				assert.True(t, got, "point %v should be in the result", p)
			} else {
				assert.False(t, got, "point %v should not be in the result", p)
			}
		}
	}
}

// Every face is a simple y-monotone loop: exactly one vertex has both loop
// neighbours below it and exactly one has both above, it winds
// counterclockwise, and no vertex repeats.
func assertMonotoneFaces(t *testing.T, n *Network) {
	for _, loop := range n.Loops() {
		vertices := n.LoopVertices(loop)
		points := n.LoopPoints(loop)
		seen := map[Index]bool{}
		for _, v := range vertices {
			require.False(t, seen[v], "vertex %d repeats in face %v", v, vertices)
			seen[v] = true
		}
		require.Greater(t, SignedArea(points), 0.0, "face %v is not counterclockwise", vertices)

		tops, bottoms := 0, 0
		for i, p := range points {
			prev := points[CircularIndex(i-1, len(points))]
			next := points[CircularIndex(i+1, len(points))]
			if IsBelow(prev, p) && IsBelow(next, p) {
				tops++
			}
			if IsAbove(prev, p) && IsAbove(next, p) {
				bottoms++
			}
		}
		assert.Equal(t, 1, tops, "face %v has %d tops", vertices, tops)
		assert.Equal(t, 1, bottoms, "face %v has %d bottoms", vertices, bottoms)
	}
}

// Run f, turning a fatal assertion into an error.
func catch(f func()) (err error) {
	defer func() {
		err = HandlePanicRecover(recover())
	}()
	f()
	return nil
}

// Collects every traced event.
type recorder struct {
	events []Event
}

func (r *recorder) Trace(event Event) {
	r.events = append(r.events, event)
}

func (r *recorder) count(kind EventKind) int {
	count := 0
	for _, e := range r.events {
		if e.Kind == kind {
			count++
		}
	}
	return count
}
