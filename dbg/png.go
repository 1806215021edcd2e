package dbg

import (
	"fmt"
	"io"
	"math"
	"path/filepath"

	"github.com/fogleman/gg"
	imgcat "github.com/martinlindhe/imgcat/lib"
	"github.com/pkg/errors"

	"github.com/osuushi/tessellate/advanced"
)

// Padding around the shape so edges on the bounding box stay visible
const drawPadding = 100

// PNGSink renders a frame after every diagonal, and a final frame with the
// triangles when the call ends. Frames are written to Dir as
// <session>-<frame>.png. If Terminal is set, each frame is also printed to it
// as an inline image (iTerm only).
type PNGSink struct {
	Dir      string
	Scale    float64
	Terminal io.Writer

	session   string
	frame     int
	triangles [][3]advanced.Index
	files     []string
	err       error
}

func NewPNGSink(dir string, scale float64) *PNGSink {
	return &PNGSink{Dir: dir, Scale: scale}
}

// Paths of every frame written so far, in order.
func (s *PNGSink) Files() []string {
	return s.files
}

func (s *PNGSink) Trace(event advanced.Event) {
	switch event.Kind {
	case advanced.EventBegin:
		s.session = Name(event.Network)
		s.frame = 0
		s.triangles = nil
	case advanced.EventDiagonal:
		s.render(event.Network, nil, &event)
	case advanced.EventTriangle:
		s.triangles = append(s.triangles, event.Triangle)
	case advanced.EventEnd:
		s.render(event.Network, s.triangles, nil)
	}
}

func (s *PNGSink) Flush() error {
	return s.err
}

func (s *PNGSink) Close() error {
	return s.err
}

func (s *PNGSink) render(n *advanced.Network, triangles [][3]advanced.Index, diagonal *advanced.Event) {
	if s.err != nil || n == nil || len(n.Vertices) == 0 {
		return
	}
	c := s.newContext(n)
	drawFaces(c, n)
	if diagonal != nil {
		a, b := n.Point(diagonal.From), n.Point(diagonal.To)
		c.MoveTo(a.X, a.Y)
		c.LineTo(b.X, b.Y)
		c.SetRGB(1, 0, 0)
		c.SetLineWidth(4)
		c.Stroke()
	}
	drawTriangles(c, n, triangles)
	drawLabels(c, n)

	path := filepath.Join(s.Dir, fmt.Sprintf("%s-%03d.png", s.session, s.frame))
	s.frame++
	if err := c.SavePNG(path); err != nil {
		s.err = errors.Wrapf(err, "saving frame %s", path)
		return
	}
	s.files = append(s.files, path)
	if s.Terminal != nil {
		imgcat.CatFile(path, s.Terminal)
	}
}

// A black canvas with the network's bounding box mapped into it, y up.
func (s *PNGSink) newContext(n *advanced.Network) *gg.Context {
	scale := s.Scale
	if scale <= 0 {
		scale = 1
	}
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, p := range n.Vertices {
		minX = math.Min(minX, p.X)
		minY = math.Min(minY, p.Y)
		maxX = math.Max(maxX, p.X)
		maxY = math.Max(maxY, p.Y)
	}

	width := int(scale*(maxX-minX)) + drawPadding*2
	height := int(scale*(maxY-minY)) + drawPadding*2
	c := gg.NewContext(width, height)
	c.SetRGB(0, 0, 0)
	c.DrawRectangle(0, 0, float64(width), float64(height))
	c.Fill()
	// Flip the context so the origin is at the bottom left
	c.Translate(0, float64(height))
	c.Scale(1, -1)
	c.Translate(drawPadding, drawPadding)
	c.Scale(scale, scale)
	c.Translate(-minX, -minY)
	return c
}

// Fill each face with its own tint, then stroke all the edges over them.
func drawFaces(c *gg.Context, n *advanced.Network) {
	loops := n.Loops()
	for i, loop := range loops {
		tracePath(c, n.LoopPoints(loop))
		hue := float64(i) / float64(len(loops))
		c.SetRGBA(0.3+0.7*hue, 0.2, 1-0.7*hue, 0.5)
		c.Fill()
	}
	c.SetLineWidth(2)
	for _, loop := range loops {
		tracePath(c, n.LoopPoints(loop))
		c.SetRGB(0, 1, 0)
		c.Stroke()
	}
}

func drawTriangles(c *gg.Context, n *advanced.Network, triangles [][3]advanced.Index) {
	c.SetLineWidth(1)
	for _, tri := range triangles {
		tracePath(c, []advanced.Point{n.Point(tri[0]), n.Point(tri[1]), n.Point(tri[2])})
		c.SetRGB(1, 1, 0)
		c.Stroke()
	}
}

// Vertex numbers, drawn in device space so the text isn't flipped
func drawLabels(c *gg.Context, n *advanced.Network) {
	c.SetRGB(1, 1, 1)
	for v, p := range n.Vertices {
		x, y := c.TransformPoint(p.X, p.Y)
		c.Push()
		c.Identity()
		c.DrawStringAnchored(fmt.Sprint(v), x, y-8, 0.5, 0.5)
		c.Pop()
	}
}

func tracePath(c *gg.Context, points []advanced.Point) {
	c.MoveTo(points[0].X, points[0].Y)
	for _, p := range points[1:] {
		c.LineTo(p.X, p.Y)
	}
	c.ClosePath()
}
