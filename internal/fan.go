package internal

// The fan fast path. A convex contour needs no partition: every vertex sees
// vertex 0, so fanning from it gives a valid triangulation.

// Convex means every turn goes the same way and the boundary wraps around
// exactly once. Winding is +1 for counterclockwise, -1 for clockwise and 0 when
// there is no turn at all.
type ConvexityResult struct {
	Convex    bool
	Winding   int
	NumPoints int
}

func IsConvex(points []Point) bool {
	return AnalyzeConvexity(points).Convex
}

// Collinear vertices are allowed. Same-sign turns alone would also accept a
// pentagram, so the edge directions must also flip sign at most twice in each
// axis.
func AnalyzeConvexity(points []Point) ConvexityResult {
	count := len(points)
	result := ConvexityResult{NumPoints: count}
	if count < 3 {
		return result
	}

	var positive, negative int
	var xFlips, yFlips int
	lastX, lastY := 0.0, 0.0
	for i := 0; i < count; i++ {
		p0 := points[i]
		p1 := points[(i+1)%count]
		p2 := points[(i+2)%count]
		turn := Turn(p0, p1, p2)
		if turn > 0 {
			positive++
		} else if turn < 0 {
			negative++
		}

		d := p1.Sub(p0)
		if d.X != 0 {
			if lastX != 0 && (d.X > 0) != (lastX > 0) {
				xFlips++
			}
			lastX = d.X
		}
		if d.Y != 0 {
			if lastY != 0 && (d.Y > 0) != (lastY > 0) {
				yFlips++
			}
			lastY = d.Y
		}
	}
	// The flip counts above skip the wrap from the last edge back to the first
	if first := firstNonZero(points, func(d Point) float64 { return d.X }); first != 0 && (first > 0) != (lastX > 0) {
		xFlips++
	}
	if first := firstNonZero(points, func(d Point) float64 { return d.Y }); first != 0 && (first > 0) != (lastY > 0) {
		yFlips++
	}

	if positive == 0 && negative == 0 {
		return result
	}
	if positive > 0 && negative > 0 {
		return result
	}
	if xFlips > 2 || yFlips > 2 {
		return result
	}

	result.Convex = true
	if positive > 0 {
		result.Winding = 1
	} else {
		result.Winding = -1
	}
	return result
}

func firstNonZero(points []Point, component func(Point) float64) float64 {
	for i := range points {
		if c := component(points[(i+1)%len(points)].Sub(points[i])); c != 0 {
			return c
		}
	}
	return 0
}

// Fan from vertex 0. The caller is responsible for the contour being convex;
// only the winding is corrected, so the triangles always come out
// counterclockwise.
func TriangulateFan(points []Point) [][3]Index {
	if len(points) < 3 {
		fatalf("cannot fan %d points", len(points))
	}
	clockwise := !IsCounterClockwise(points)
	triangles := make([][3]Index, 0, len(points)-2)
	for i := 1; i+1 < len(points); i++ {
		tri := [3]Index{0, Index(i), Index(i + 1)}
		if clockwise {
			tri[1], tri[2] = tri[2], tri[1]
		}
		triangles = append(triangles, tri)
	}
	return triangles
}
