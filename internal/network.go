package internal

// A half-edge network over a flat vertex array. Every edge knows its origin,
// its successor and predecessor around the face on its left, and, for
// diagonals, the opposite-direction twin. Faces are never stored: following
// Next from any edge walks exactly one face boundary and comes back.
//
// Boundary edges are created one per vertex, so edge i starts at vertex i.
// Diagonals are appended after them in twin pairs by Connect, which is the only
// operation that changes links.

type HalfEdge struct {
	Origin Index
	Next   Index
	Prev   Index
	Twin   Index
}

// A ring is the span of vertices (and boundary edges) that came from one
// subpath.
type Ring struct {
	Begin, End Index
}

func (r Ring) Len() int {
	return int(r.End - r.Begin)
}

type Network struct {
	Vertices []Point
	Edges    []HalfEdge
	Rings    []Ring

	// Outgoing edges per vertex, boundary edge first, then diagonals in
	// insertion order.
	outgoing [][]Index
	// Ring neighbours of each vertex. These stay fixed while diagonals are
	// inserted; Prev links do not.
	ringPrev []Index
	ringNext []Index
}

// Build a network from closed subpaths. Consecutive duplicate points are
// dropped. Outer boundaries are expected counterclockwise and holes
// clockwise; if the subpaths as a whole wind clockwise, every ring is linked in
// reverse so the interior still ends up on the left of each edge.
func NewNetwork(subpaths [][]Point) *Network {
	if len(subpaths) == 0 {
		fatalf("cannot build a network without subpaths")
	}

	cleaned := make([][]Point, 0, len(subpaths))
	var total float64
	vertexCount := 0
	for i, subpath := range subpaths {
		points := DropDuplicates(subpath)
		if len(points) < 3 {
			fatalf("subpath %d has %d distinct points, need at least 3", i, len(points))
		}
		total += ShoelaceSum(points)
		vertexCount += len(points)
		cleaned = append(cleaned, points)
	}

	n := &Network{
		Vertices: make([]Point, 0, vertexCount),
		Edges:    make([]HalfEdge, 0, vertexCount),
		outgoing: make([][]Index, 0, vertexCount),
		ringPrev: make([]Index, 0, vertexCount),
		ringNext: make([]Index, 0, vertexCount),
	}
	reversed := total > 0
	for _, points := range cleaned {
		n.addRing(points, reversed)
	}
	return n
}

// Remove consecutive repeated points, including a closing point that repeats
// the first.
func DropDuplicates(points []Point) []Point {
	result := make([]Point, 0, len(points))
	for _, p := range points {
		if len(result) > 0 && result[len(result)-1] == p {
			continue
		}
		result = append(result, p)
	}
	for len(result) > 1 && result[0] == result[len(result)-1] {
		result = result[:len(result)-1]
	}
	return result
}

func (n *Network) addRing(points []Point, reversed bool) {
	begin := Index(len(n.Vertices))
	last := begin + Index(len(points)) - 1
	for i, p := range points {
		v := begin + Index(i)
		prev, next := v-1, v+1
		if v == begin {
			prev = last
		}
		if v == last {
			next = begin
		}
		if reversed {
			prev, next = next, prev
		}
		n.Vertices = append(n.Vertices, p)
		n.Edges = append(n.Edges, HalfEdge{Origin: v, Next: next, Prev: prev, Twin: NoIndex})
		n.outgoing = append(n.outgoing, []Index{v})
		n.ringPrev = append(n.ringPrev, prev)
		n.ringNext = append(n.ringNext, next)
	}
	n.Rings = append(n.Rings, Ring{Begin: begin, End: last + 1})
}

// Deep copy, so that a partition can run without touching the original.
func (n *Network) Clone() *Network {
	c := &Network{
		Vertices: append([]Point(nil), n.Vertices...),
		Edges:    append([]HalfEdge(nil), n.Edges...),
		Rings:    append([]Ring(nil), n.Rings...),
		outgoing: make([][]Index, len(n.outgoing)),
		ringPrev: append([]Index(nil), n.ringPrev...),
		ringNext: append([]Index(nil), n.ringNext...),
	}
	for v, edges := range n.outgoing {
		c.outgoing[v] = append([]Index(nil), edges...)
	}
	return c
}

func (n *Network) Point(v Index) Point {
	return n.Vertices[v]
}

// Vertex the edge points at.
func (n *Network) Dest(e Index) Index {
	return n.Edges[n.Edges[e].Next].Origin
}

func (n *Network) RingPrev(v Index) Index {
	return n.ringPrev[v]
}

func (n *Network) RingNext(v Index) Index {
	return n.ringNext[v]
}

// Number of edges that came from the input boundary. Every edge at or past
// this index is half of a diagonal.
func (n *Network) BoundaryEdgeCount() int {
	return len(n.Vertices)
}

func (n *Network) DiagonalCount() int {
	return (len(n.Edges) - n.BoundaryEdgeCount()) / 2
}

func (n *Network) Outgoing(v Index) []Index {
	return n.outgoing[v]
}

// Roles of every vertex, from its ring neighbours.
func (n *Network) Roles() []VertexRole {
	roles := make([]VertexRole, len(n.Vertices))
	for v := range n.Vertices {
		roles[v] = n.Role(Index(v))
	}
	return roles
}

func (n *Network) Role(v Index) VertexRole {
	return Classify(n.Vertices[n.ringPrev[v]], n.Vertices[v], n.Vertices[n.ringNext[v]])
}

// Insert the pair of twin edges e1.Origin -> e2.Origin and back. e1 and e2
// are the edges leaving each endpoint from the corners the diagonal passes
// through. If both edges are on the same loop, the loop is split in two;
// otherwise the two loops are merged into one.
func (n *Network) Connect(e1, e2 Index) (Index, Index) {
	a := n.Edges[e1].Origin
	b := n.Edges[e2].Origin
	if a == b {
		fatalf("cannot connect vertex %d to itself", a)
	}

	prev1 := n.Edges[e1].Prev
	prev2 := n.Edges[e2].Prev
	if n.Edges[prev1].Next != e1 || n.Edges[prev2].Next != e2 {
		fatalf("broken links around edges %d and %d", e1, e2)
	}
	if prev1 == e2 || prev2 == e1 {
		fatalf("vertices %d and %d are already adjacent", a, b)
	}

	e12 := Index(len(n.Edges))
	e21 := e12 + 1

	n.Edges[e1].Prev = e21
	n.Edges[e2].Prev = e12
	n.Edges[prev1].Next = e12
	n.Edges[prev2].Next = e21

	n.Edges = append(n.Edges,
		HalfEdge{Origin: a, Next: e2, Prev: prev1, Twin: e21},
		HalfEdge{Origin: b, Next: e1, Prev: prev2, Twin: e12},
	)
	n.outgoing[a] = append(n.outgoing[a], e12)
	n.outgoing[b] = append(n.outgoing[b], e21)
	return e12, e21
}

// Insert a diagonal between two vertices, picking the corner at each end that
// the diagonal passes through.
func (n *Network) ConnectVertices(a, b Index) (Index, Index) {
	ea := n.CornerEdge(a, n.Vertices[b])
	eb := n.CornerEdge(b, n.Vertices[a])
	return n.Connect(ea, eb)
}

// Find the outgoing edge of v whose face corner at v contains the direction
// toward the given point.
func (n *Network) CornerEdge(v Index, toward Point) Index {
	edges := n.outgoing[v]
	if len(edges) == 1 {
		return edges[0]
	}

	origin := n.Vertices[v]
	direction := toward.Sub(origin)
	for _, e := range edges {
		out := n.Vertices[n.Dest(e)].Sub(origin)
		in := n.Vertices[n.Edges[n.Edges[e].Prev].Origin].Sub(origin)
		if cornerContains(out, in, direction) {
			return e
		}
	}
	fatalf("no corner of vertex %d faces %v", v, toward)
	return NoIndex
}

// The corner runs counterclockwise from the outgoing direction to the incoming
// one, since the face is on the left of both edges.
func cornerContains(out, in, d Point) bool {
	if Cross(out, in) > 0 {
		return Cross(out, d) > 0 && Cross(d, in) > 0
	}
	// Reflex or straight: inside unless d is in the closed wedge outside.
	return !(Cross(in, d) >= 0 && Cross(d, out) >= 0)
}

// Every face boundary, as a list of edges in Next order.
func (n *Network) Loops() [][]Index {
	visited := make([]bool, len(n.Edges))
	var loops [][]Index
	for first := range n.Edges {
		if visited[first] {
			continue
		}
		var loop []Index
		e := Index(first)
		for {
			if visited[e] {
				fatalf("edge %d is reached from two loops", e)
			}
			visited[e] = true
			loop = append(loop, e)
			e = n.Edges[e].Next
			if e == Index(first) {
				break
			}
			if len(loop) > len(n.Edges) {
				fatalf("loop from edge %d never closes", first)
			}
		}
		loops = append(loops, loop)
	}
	return loops
}

func (n *Network) LoopVertices(loop []Index) []Index {
	vertices := make([]Index, len(loop))
	for i, e := range loop {
		vertices[i] = n.Edges[e].Origin
	}
	return vertices
}

func (n *Network) LoopPoints(loop []Index) []Point {
	points := make([]Point, len(loop))
	for i, e := range loop {
		points[i] = n.Vertices[n.Edges[e].Origin]
	}
	return points
}

// Check the link invariants, panicking on the first violation.
func (n *Network) Validate() {
	count := Index(len(n.Edges))
	for i, edge := range n.Edges {
		e := Index(i)
		if int(edge.Origin) >= len(n.Vertices) {
			fatalf("edge %d has origin %d out of range", e, edge.Origin)
		}
		if edge.Next >= count || edge.Prev >= count {
			fatalf("edge %d links out of range", e)
		}
		if n.Edges[edge.Next].Prev != e {
			fatalf("edge %d: next.prev is %d", e, n.Edges[edge.Next].Prev)
		}
		if n.Edges[edge.Prev].Next != e {
			fatalf("edge %d: prev.next is %d", e, n.Edges[edge.Prev].Next)
		}
		if edge.Twin != NoIndex {
			if edge.Twin >= count || n.Edges[edge.Twin].Twin != e {
				fatalf("edge %d has an unpaired twin %d", e, edge.Twin)
			}
			if n.Edges[edge.Twin].Origin != n.Dest(e) {
				fatalf("edge %d and its twin do not share endpoints", e)
			}
		}
	}
	for _, loop := range n.Loops() {
		if len(loop) < 3 {
			fatalf("loop from edge %d has only %d edges", loop[0], len(loop))
		}
	}
}
