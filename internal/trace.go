package internal

// Tracing hooks for offline inspection. A nil Tracer is the fast path; the
// core never depends on what a tracer does with the events.

type EventKind int

const (
	EventBegin EventKind = iota
	EventClassify
	EventDiagonal
	EventTriangle
	EventEnd
)

var eventKindNames = [...]string{
	EventBegin:    "begin",
	EventClassify: "classify",
	EventDiagonal: "diagonal",
	EventTriangle: "triangle",
	EventEnd:      "end",
}

func (k EventKind) String() string {
	if k < 0 || int(k) >= len(eventKindNames) {
		return "unknown"
	}
	return eventKindNames[k]
}

func (k EventKind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// Event carries only the fields relevant to its kind. Network is the live
// network at the time of the event; sinks must not keep or modify it.
type Event struct {
	Kind    EventKind `json:"kind"`
	Network *Network  `json:"-"`

	// Classify
	Vertex Index      `json:"vertex"`
	Role   VertexRole `json:"role"`

	// Diagonal: the vertex pair and the two new half-edges
	From  Index    `json:"from"`
	To    Index    `json:"to"`
	Edges [2]Index `json:"edges"`

	// Triangle
	Triangle [3]Index `json:"triangle"`
}

type Tracer interface {
	Trace(event Event)
}

func trace(t Tracer, event Event) {
	if t == nil {
		return
	}
	t.Trace(event)
}

// Begin and End bracket one tessellation call for sinks that group events.
func TraceBegin(t Tracer, n *Network) {
	trace(t, Event{Kind: EventBegin, Network: n})
}

func TraceEnd(t Tracer, n *Network) {
	trace(t, Event{Kind: EventEnd, Network: n})
}

// Report triangles produced outside the monotone triangulator, such as by the
// fan path.
func TraceTriangles(t Tracer, n *Network, triangles [][3]Index) {
	for _, tri := range triangles {
		trace(t, Event{Kind: EventTriangle, Network: n, Triangle: tri})
	}
}
