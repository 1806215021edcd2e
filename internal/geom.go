package internal

import "fmt"

// Index addresses vertices and half-edges. Everything in the network refers to
// everything else by index, never by pointer, so a network can be copied and
// grown freely.
type Index uint32

// NoIndex marks a missing link, such as the twin of a boundary edge.
const NoIndex = ^Index(0)

type Point struct {
	X float64
	Y float64
}

func (p Point) Add(q Point) Point {
	return Point{p.X + q.X, p.Y + q.Y}
}

func (p Point) Sub(q Point) Point {
	return Point{p.X - q.X, p.Y - q.Y}
}

func (p Point) Mul(s float64) Point {
	return Point{p.X * s, p.Y * s}
}

func (p Point) Div(s float64) Point {
	return Point{p.X / s, p.Y / s}
}

func (p Point) String() string {
	return fmt.Sprintf("(%g, %g)", p.X, p.Y)
}

// Z component of the cross product of two vectors.
func Cross(a, b Point) float64 {
	return a.X*b.Y - a.Y*b.X
}

// The turn at curr when walking prev -> curr -> next. Positive is a left
// (counterclockwise) turn, which is a convex corner of a counterclockwise loop.
func Turn(prev, curr, next Point) float64 {
	return Cross(curr.Sub(prev), next.Sub(curr))
}

// A common convention in our geometry is that if two points have the same Y
// value, the one with the smaller X value is "lower". This simulates a slightly
// rotated coordinate system, allowing us to assume Y values are never equal.
// The comparison is exact, so it orders the same way on every run.
func IsBelow(a, b Point) bool {
	if a.Y == b.Y {
		return a.X < b.X
	}
	return a.Y < b.Y
}

func IsAbove(a, b Point) bool {
	return IsBelow(b, a)
}

// Sum of (x_i - x_{i-1}) * (y_i + y_{i-1}) around the closed loop. This is
// twice the area, negated for counterclockwise loops.
func ShoelaceSum(points []Point) float64 {
	if len(points) < 3 {
		fatalf("winding is undefined for %d points", len(points))
	}
	var sum float64
	prev := points[len(points)-1]
	for _, curr := range points {
		sum += (curr.X - prev.X) * (curr.Y + prev.Y)
		prev = curr
	}
	return sum
}

func IsCounterClockwise(points []Point) bool {
	return ShoelaceSum(points) < 0
}

// Signed area of a closed loop, positive for counterclockwise.
func SignedArea(points []Point) float64 {
	return -ShoelaceSum(points) / 2
}

func TriangleSignedArea(a, b, c Point) float64 {
	return Cross(b.Sub(a), c.Sub(a)) / 2
}

// Often we want to treat an array as a circular buffer. This gives the modular
// index given length n, but unlike the raw modulo operator, it only gives positive values
func CircularIndex(i, n int) int {
	return (i%n + n) % n
}

// Reverse a loop in place, flipping its winding.
func ReverseLoop(points []Point) {
	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
}
