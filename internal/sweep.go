package internal

import (
	"math"
	"sort"
)

// Partitioning into y-monotone faces with a top-to-bottom plane sweep. Every
// split and merge vertex gets a diagonal, after which no face has a vertex
// whose neighbours are both above or both below it on a reflex corner.
//
// Only left-chain edges (those pointing down, with the interior on their
// right) are ever on the sweep line. Each carries a helper: the lowest
// processed vertex that can see the edge horizontally from the right.

// The edges currently crossing the sweep line, sorted left to right. Edges of
// a simple polygon never cross, so the order only changes by insertion and
// removal.
type activeEdges struct {
	network *Network
	edges   []Index
	// Helper vertex per boundary edge, NoIndex while the edge is not active.
	helper []Index
}

func newActiveEdges(n *Network) *activeEdges {
	helper := make([]Index, n.BoundaryEdgeCount())
	for i := range helper {
		helper[i] = NoIndex
	}
	return &activeEdges{network: n, helper: helper}
}

// X coordinate where the edge crosses the horizontal line at y.
func (a *activeEdges) xAt(e Index, y float64) float64 {
	upper := a.network.Vertices[a.network.Edges[e].Origin]
	lower := a.network.Vertices[a.network.Dest(e)]
	if upper.Y == lower.Y {
		return math.Min(upper.X, lower.X)
	}
	t := (y - upper.Y) / (lower.Y - upper.Y)
	t = math.Max(0, math.Min(1, t))
	return upper.X + t*(lower.X-upper.X)
}

// Position of the first edge crossing at or to the right of p.
func (a *activeEdges) search(p Point) int {
	return sort.Search(len(a.edges), func(i int) bool {
		return a.xAt(a.edges[i], p.Y) >= p.X
	})
}

// Start tracking a left-chain edge from its upper end.
func (a *activeEdges) insert(e, helper Index) {
	i := a.search(a.network.Vertices[a.network.Edges[e].Origin])
	a.edges = append(a.edges, NoIndex)
	copy(a.edges[i+1:], a.edges[i:])
	a.edges[i] = e
	a.helper[e] = helper
}

func (a *activeEdges) remove(e Index) {
	for i, active := range a.edges {
		if active == e {
			a.edges = append(a.edges[:i], a.edges[i+1:]...)
			a.helper[e] = NoIndex
			return
		}
	}
	fatalf("edge %d is not on the sweep line", e)
}

func (a *activeEdges) helperOf(e Index) Index {
	h := a.helper[e]
	if h == NoIndex {
		fatalf("edge %d has no helper", e)
	}
	return h
}

func (a *activeEdges) setHelper(e, v Index) {
	if a.helper[e] == NoIndex {
		fatalf("edge %d is not on the sweep line", e)
	}
	a.helper[e] = v
}

// The active edge directly left of p.
func (a *activeEdges) leftOf(p Point) Index {
	i := a.search(p)
	if i == 0 {
		fatalf("no edge left of %v", p)
	}
	return a.edges[i-1]
}

// Vertices from the top of the plane down. Coincident vertices are ordered by
// role, then by index, so the sweep is the same on every run.
func sweepOrder(n *Network, roles []VertexRole) []Index {
	order := make([]Index, len(n.Vertices))
	for i := range order {
		order[i] = Index(i)
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := n.Vertices[order[i]], n.Vertices[order[j]]
		if a != b {
			return IsAbove(a, b)
		}
		return roles[order[i]] < roles[order[j]]
	})
	return order
}

// Insert diagonals until every face of the network is y-monotone. The network
// must be freshly built. Returns the number of diagonals inserted.
func PartitionMonotone(n *Network, tracer Tracer) int {
	if n.DiagonalCount() != 0 {
		fatalf("network already has %d diagonals", n.DiagonalCount())
	}

	roles := n.Roles()
	for v, role := range roles {
		trace(tracer, Event{Kind: EventClassify, Network: n, Vertex: Index(v), Role: role})
	}

	active := newActiveEdges(n)
	diagonals := 0
	connect := func(v, h Index) {
		e12, e21 := n.ConnectVertices(v, h)
		diagonals++
		trace(tracer, Event{Kind: EventDiagonal, Network: n, From: v, To: h, Edges: [2]Index{e12, e21}})
	}
	// Diagonal to the helper of an edge, but only if that helper is a merge
	// vertex still waiting for its downward diagonal.
	connectMergeHelper := func(v, e Index) {
		if h := active.helperOf(e); roles[h] == Merge {
			connect(v, h)
		}
	}

	for _, v := range sweepOrder(n, roles) {
		p := n.Vertices[v]
		// Boundary edge ending at v. Edge v itself starts at v.
		prevEdge := n.RingPrev(v)

		switch roles[v] {
		case Start:
			active.insert(v, v)

		case End:
			connectMergeHelper(v, prevEdge)
			active.remove(prevEdge)

		case Split:
			left := active.leftOf(p)
			connect(v, active.helperOf(left))
			active.setHelper(left, v)
			active.insert(v, v)

		case Merge:
			connectMergeHelper(v, prevEdge)
			active.remove(prevEdge)
			left := active.leftOf(p)
			connectMergeHelper(v, left)
			active.setHelper(left, v)

		case RegularLeft:
			connectMergeHelper(v, prevEdge)
			active.remove(prevEdge)
			active.insert(v, v)

		case RegularRight:
			left := active.leftOf(p)
			connectMergeHelper(v, left)
			active.setHelper(left, v)
		}
	}

	if len(active.edges) != 0 {
		fatalf("%d edges left on the sweep line", len(active.edges))
	}
	return diagonals
}
