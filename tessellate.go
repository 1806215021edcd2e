// Triangle meshes from closed 2D paths.
//
// This package converts a set of simple polygons, which may be non-convex, may
// be disjoint, and may contain holes, into triangles that use only the
// original points. It is meant for flattened vector paths and glyph outlines:
// the mesh comes back as a vertex array and counterclockwise index triples,
// ready for upload.
//
// Under the hood the subpaths become a half-edge network, which a plane sweep
// partitions into y-monotone faces, each of which is then triangulated in
// linear time. A single convex subpath skips all of that and is fanned
// directly.
package tessellate

import (
	"log/slog"

	"github.com/osuushi/tessellate/advanced"
	"github.com/osuushi/tessellate/internal"
)

type Point = advanced.Point
type Index = advanced.Index
type Tracer = advanced.Tracer
type Event = advanced.Event

// The output of a tessellation. Indices holds counterclockwise triangles, three
// entries each, into Vertices. Vertices are the input points with consecutive
// duplicates removed.
type Mesh struct {
	Vertices []Point
	Indices  []Index
}

func (m *Mesh) TriangleCount() int {
	return len(m.Indices) / 3
}

func (m *Mesh) Triangle(i int) [3]Point {
	return [3]Point{
		m.Vertices[m.Indices[3*i]],
		m.Vertices[m.Indices[3*i+1]],
		m.Vertices[m.Indices[3*i+2]],
	}
}

// Total area of all triangles.
func (m *Mesh) Area() float64 {
	var area float64
	for i := 0; i < m.TriangleCount(); i++ {
		tri := m.Triangle(i)
		area += internal.TriangleSignedArea(tri[0], tri[1], tri[2])
	}
	return area
}

// Tessellator runs tessellations with a fixed set of options. It keeps no
// state between calls, so one value can be shared between goroutines as long
// as its tracer can.
type Tessellator struct {
	tracer   Tracer
	logger   *slog.Logger
	fastPath bool
	validate bool
}

func New(opts ...Option) *Tessellator {
	t := &Tessellator{fastPath: true}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Take a set of closed subpaths and convert them into triangles, with the
// default options.
//
// The subpaths must be simple and must not intersect each other. Outer
// boundaries give their points in counterclockwise order, while holes must be
// in clockwise order. A set given entirely in the opposite convention is
// accepted too.
func Tessellate(subpaths ...[]Point) (*Mesh, error) {
	return New().Tessellate(subpaths...)
}

func (t *Tessellator) Tessellate(subpaths ...[]Point) (result *Mesh, err error) {
	defer func() {
		recoveredErr := advanced.HandleTessellatePanicRecover(recover())
		if recoveredErr != nil {
			result = nil
			err = recoveredErr
			t.log().Warn("tessellate: failed", "subpaths", len(subpaths), "err", err)
		}
	}()

	if t.fastPath && len(subpaths) == 1 {
		points := internal.DropDuplicates(subpaths[0])
		if internal.IsConvex(points) {
			return t.fan(points), nil
		}
	}

	network := internal.NewNetwork(subpaths)
	internal.TraceBegin(t.tracer, network)
	diagonals := internal.PartitionMonotone(network, t.tracer)
	if t.validate {
		network.Validate()
	}
	triangles := internal.TriangulateFaces(network, t.tracer)
	internal.TraceEnd(t.tracer, network)

	t.log().Debug("tessellate: partitioned",
		"subpaths", len(subpaths),
		"vertices", len(network.Vertices),
		"diagonals", diagonals,
		"triangles", len(triangles),
	)
	return &Mesh{Vertices: network.Vertices, Indices: flatten(triangles)}, nil
}

func (t *Tessellator) fan(points []Point) *Mesh {
	triangles := internal.TriangulateFan(points)
	if t.tracer != nil {
		// Sinks draw from a network, so build one just for them
		network := internal.NewNetwork([][]Point{points})
		internal.TraceBegin(t.tracer, network)
		internal.TraceTriangles(t.tracer, network, triangles)
		internal.TraceEnd(t.tracer, network)
	}
	t.log().Debug("tessellate: fan",
		"vertices", len(points),
		"triangles", len(triangles),
	)
	return &Mesh{Vertices: points, Indices: flatten(triangles)}
}

func (t *Tessellator) log() *slog.Logger {
	if t.logger != nil {
		return t.logger
	}
	return Logger()
}

func flatten(triangles [][3]Index) []Index {
	indices := make([]Index, 0, 3*len(triangles))
	for _, tri := range triangles {
		indices = append(indices, tri[0], tri[1], tri[2])
	}
	return indices
}
