// Step-by-step access to the tessellation pipeline.
//
// Most callers want the root package, which runs every step in order. This
// package exposes the steps one at a time: build the half-edge network,
// classify its vertices, partition it into monotone faces, then triangulate
// the faces. Each step recovers its internal assertion failures and returns
// them as errors.
package advanced

import "github.com/osuushi/tessellate/internal"

type Point = internal.Point
type Index = internal.Index
type HalfEdge = internal.HalfEdge
type Ring = internal.Ring
type Network = internal.Network
type VertexRole = internal.VertexRole
type ConvexityResult = internal.ConvexityResult

type Tracer = internal.Tracer
type Event = internal.Event
type EventKind = internal.EventKind

const NoIndex = internal.NoIndex

const (
	Start        = internal.Start
	End          = internal.End
	Split        = internal.Split
	Merge        = internal.Merge
	RegularLeft  = internal.RegularLeft
	RegularRight = internal.RegularRight
)

const (
	EventBegin    = internal.EventBegin
	EventClassify = internal.EventClassify
	EventDiagonal = internal.EventDiagonal
	EventTriangle = internal.EventTriangle
	EventEnd      = internal.EventEnd
)

// Convert a recovered tessellation failure into an error. Any other panic is
// re-raised.
func HandleTessellatePanicRecover(r interface{}) error {
	return internal.HandlePanicRecover(r)
}

func recoverInto(err *error) {
	if recovered := internal.HandlePanicRecover(recover()); recovered != nil {
		*err = recovered
	}
}

// Build a half-edge network from closed subpaths. Outer boundaries go
// counterclockwise and holes clockwise, or the whole set mirrored.
func NewNetwork(subpaths ...[]Point) (network *Network, err error) {
	defer recoverInto(&err)
	return internal.NewNetwork(subpaths), nil
}

func Classify(prev, curr, next Point) VertexRole {
	return internal.Classify(prev, curr, next)
}

func Roles(network *Network) []VertexRole {
	return network.Roles()
}

// Insert a diagonal between two vertices of the network.
func ConnectVertices(network *Network, a, b Index) (e12, e21 Index, err error) {
	defer recoverInto(&err)
	e12, e21 = network.ConnectVertices(a, b)
	return e12, e21, nil
}

func Validate(network *Network) (err error) {
	defer recoverInto(&err)
	network.Validate()
	return nil
}

// Insert diagonals until every face is y-monotone. Returns the number of
// diagonals. The tracer may be nil.
func PartitionMonotone(network *Network, tracer Tracer) (diagonals int, err error) {
	defer recoverInto(&err)
	return internal.PartitionMonotone(network, tracer), nil
}

// Triangulate one monotone face, given as the vertices around its loop.
func TriangulateMonotone(network *Network, loop []Index, tracer Tracer) (triangles [][3]Index, err error) {
	defer recoverInto(&err)
	return internal.TriangulateMonotone(network, loop, tracer), nil
}

// Triangulate every face of a partitioned network.
func TriangulateFaces(network *Network, tracer Tracer) (triangles [][3]Index, err error) {
	defer recoverInto(&err)
	return internal.TriangulateFaces(network, tracer), nil
}

// Fan a contour from its first point. Nothing checks that the contour is
// convex; use IsConvex first unless that is already known.
func TriangulateFan(points []Point) (triangles [][3]Index, err error) {
	defer recoverInto(&err)
	return internal.TriangulateFan(points), nil
}

func IsConvex(points []Point) bool {
	return internal.IsConvex(points)
}

func AnalyzeConvexity(points []Point) ConvexityResult {
	return internal.AnalyzeConvexity(points)
}

func IsCounterClockwise(points []Point) (ccw bool, err error) {
	defer recoverInto(&err)
	return internal.IsCounterClockwise(points), nil
}

func IsBelow(a, b Point) bool {
	return internal.IsBelow(a, b)
}

// Bracket a hand-run pipeline for sinks that group events per call.
func TraceBegin(tracer Tracer, network *Network) {
	internal.TraceBegin(tracer, network)
}

func TraceEnd(tracer Tracer, network *Network) {
	internal.TraceEnd(tracer, network)
}
