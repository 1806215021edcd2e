package dbg

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"

	"github.com/kr/pretty"
	"github.com/logrusorgru/aurora"

	"github.com/osuushi/tessellate/advanced"
)

// Sink is a tracer that writes somewhere. Trace never fails; the first write
// error is kept and returned by Flush and Close.
type Sink interface {
	advanced.Tracer
	Flush() error
	Close() error
}

// JSONSink writes one JSON object per event.
type JSONSink struct {
	w       *bufio.Writer
	encoder *json.Encoder
	session string
	err     error
}

func NewJSONSink(w io.Writer) *JSONSink {
	bw := bufio.NewWriter(w)
	return &JSONSink{
		w:       bw,
		encoder: json.NewEncoder(bw),
	}
}

type jsonRecord struct {
	Session string `json:"session"`
	advanced.Event
	// Position of the classified vertex
	Position *advanced.Point `json:"position,omitempty"`
	// Network size, on begin and end
	VertexCount *int `json:"vertex_count,omitempty"`
	EdgeCount   *int `json:"edge_count,omitempty"`
}

func (s *JSONSink) Trace(event advanced.Event) {
	if event.Kind == advanced.EventBegin {
		s.session = Name(event.Network)
	}
	record := jsonRecord{Session: s.session, Event: event}
	if n := event.Network; n != nil {
		switch event.Kind {
		case advanced.EventClassify:
			p := n.Point(event.Vertex)
			record.Position = &p
		case advanced.EventBegin, advanced.EventEnd:
			vertices, edges := len(n.Vertices), len(n.Edges)
			record.VertexCount = &vertices
			record.EdgeCount = &edges
		}
	}
	if err := s.encoder.Encode(record); err != nil && s.err == nil {
		s.err = err
	}
}

func (s *JSONSink) Flush() error {
	if err := s.w.Flush(); err != nil && s.err == nil {
		s.err = err
	}
	return s.err
}

func (s *JSONSink) Close() error {
	return s.Flush()
}

// PrettySink writes events for people, one line each, colored by vertex role.
// On end it dumps every face of the network.
type PrettySink struct {
	w   *bufio.Writer
	au  aurora.Aurora
	err error
}

func NewPrettySink(w io.Writer, color bool) *PrettySink {
	return &PrettySink{
		w:  bufio.NewWriter(w),
		au: aurora.NewAurora(color),
	}
}

// Colored role name, the way the classify command prints it too.
func RoleName(au aurora.Aurora, role advanced.VertexRole) string {
	name := role.String()
	switch role {
	case advanced.Start:
		return au.Green(name).String()
	case advanced.End:
		return au.Red(name).String()
	case advanced.Split:
		return au.Cyan(name).String()
	case advanced.Merge:
		return au.Magenta(name).String()
	default:
		return au.Yellow(name).String()
	}
}

func (s *PrettySink) printf(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(s.w, format, args...); err != nil && s.err == nil {
		s.err = err
	}
}

// A face as the dump shows it
type face struct {
	Vertices []advanced.Index
	Area     float64
}

func (s *PrettySink) Trace(event advanced.Event) {
	n := event.Network
	switch event.Kind {
	case advanced.EventBegin:
		s.printf("%s %s: %d vertices in %d rings\n", s.au.Bold("begin"), Name(n), len(n.Vertices), len(n.Rings))
	case advanced.EventClassify:
		s.printf("  v%-4d %-24v %s\n", event.Vertex, n.Point(event.Vertex), RoleName(s.au, event.Role))
	case advanced.EventDiagonal:
		s.printf("  %s v%d %v -> v%d %v (edges %d, %d)\n",
			s.au.Blue("diagonal"), event.From, n.Point(event.From), event.To, n.Point(event.To), event.Edges[0], event.Edges[1])
	case advanced.EventTriangle:
		tri := event.Triangle
		s.printf("  %s v%d v%d v%d\n", s.au.White("triangle"), tri[0], tri[1], tri[2])
	case advanced.EventEnd:
		var faces []face
		for _, loop := range n.Loops() {
			faces = append(faces, face{
				Vertices: n.LoopVertices(loop),
				Area:     signedArea(n.LoopPoints(loop)),
			})
		}
		s.printf("%s %s: %d diagonals, %d faces\n", s.au.Bold("end"), Name(n), n.DiagonalCount(), len(faces))
		if _, err := pretty.Fprintf(s.w, "%# v\n", faces); err != nil && s.err == nil {
			s.err = err
		}
	}
}

func (s *PrettySink) Flush() error {
	if err := s.w.Flush(); err != nil && s.err == nil {
		s.err = err
	}
	return s.err
}

func (s *PrettySink) Close() error {
	return s.Flush()
}

func signedArea(points []advanced.Point) float64 {
	var sum float64
	prev := points[len(points)-1]
	for _, curr := range points {
		sum += prev.X*curr.Y - curr.X*prev.Y
		prev = curr
	}
	return sum / 2
}
