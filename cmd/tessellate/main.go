// Command tessellate runs the tessellator over contour files.
//
//	tessellate classify shape.txt
//	tessellate monotone --trace=png --trace-out=frames shape.txt faces.txt
//	tessellate triangulate --svg shape.svg -
//
// Input is the plain-text contour format (see package contour), or SVG
// polygons with --svg. A path of - means stdin or stdout.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/logrusorgru/aurora"
	"github.com/pkg/errors"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/osuushi/tessellate"
	"github.com/osuushi/tessellate/advanced"
	"github.com/osuushi/tessellate/contour"
	"github.com/osuushi/tessellate/dbg"
	"github.com/osuushi/tessellate/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "tessellate: %v\n", err)
		os.Exit(1)
	}
}

type env struct {
	config *config.Config
	logger *slog.Logger
	tracer advanced.Tracer
	svg    bool
	stdin  io.Reader
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) (err error) {
	app := kingpin.New("tessellate", "Triangulate closed 2D paths.")
	app.Writer(stderr)

	configPath := app.Flag("config", "YAML config file.").Short('c').String()
	svg := app.Flag("svg", "Read input as SVG polygons.").Bool()
	traceKind := app.Flag("trace", "Trace sink: none, pretty, json or png.").String()
	traceOut := app.Flag("trace-out", "Trace file, or frame directory for png.").String()
	imgcat := app.Flag("imgcat", "Echo png frames to the terminal.").Bool()
	logLevel := app.Flag("log-level", "debug, info, warn or error.").String()
	noFastPath := app.Flag("no-fast-path", "Partition convex input too.").Bool()
	validate := app.Flag("validate", "Check the network after partitioning.").Bool()

	classifyCmd := app.Command("classify", "Print the role of every vertex.")
	classifyIn := classifyCmd.Arg("input", "Contour file.").Default("-").String()

	monotoneCmd := app.Command("monotone", "Partition into monotone faces and write them.")
	monotoneIn := monotoneCmd.Arg("input", "Contour file.").Default("-").String()
	monotoneOut := monotoneCmd.Arg("output", "Face file.").Default("-").String()

	triangulateCmd := app.Command("triangulate", "Triangulate and write the triangles.")
	triangulateIn := triangulateCmd.Arg("input", "Contour file.").Default("-").String()
	triangulateOut := triangulateCmd.Arg("output", "Triangle file.").Default("-").String()

	command, err := app.Parse(args)
	if err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		if cfg, err = config.Load(*configPath); err != nil {
			return err
		}
	}
	// Flags win over the file
	if *traceKind != "" {
		cfg.Trace.Kind = *traceKind
	}
	if *traceOut != "" {
		cfg.Trace.Output = *traceOut
	}
	if *imgcat {
		cfg.Trace.Imgcat = true
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *noFastPath {
		cfg.FastPath = false
	}
	if *validate {
		cfg.Validate = true
	}
	if err := cfg.Check(); err != nil {
		return err
	}

	e := &env{
		config: cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: cfg.Level()})),
		svg:    *svg,
		stdin:  stdin,
		stdout: stdout,
		stderr: stderr,
	}
	sink, err := e.openSink()
	if err != nil {
		return err
	}
	if sink != nil {
		e.tracer = sink
		defer func() {
			if closeErr := sink.Close(); closeErr != nil && err == nil {
				err = errors.Wrap(closeErr, "trace")
			}
		}()
	}

	switch command {
	case classifyCmd.FullCommand():
		return e.classify(*classifyIn)
	case monotoneCmd.FullCommand():
		return e.monotone(*monotoneIn, *monotoneOut)
	case triangulateCmd.FullCommand():
		return e.triangulate(*triangulateIn, *triangulateOut)
	}
	return errors.Errorf("unknown command %q", command)
}

func (e *env) classify(in string) error {
	network, err := e.readNetwork(in)
	if err != nil {
		return err
	}
	au := aurora.NewAurora(e.config.Trace.Color)
	for v, role := range advanced.Roles(network) {
		p := network.Vertices[v]
		if _, err := fmt.Fprintf(e.stdout, "%d\t%g\t%g\t%s\n", v, p.X, p.Y, dbg.RoleName(au, role)); err != nil {
			return errors.Wrap(err, "writing roles")
		}
	}
	return nil
}

func (e *env) monotone(in, out string) error {
	network, err := e.readNetwork(in)
	if err != nil {
		return err
	}
	advanced.TraceBegin(e.tracer, network)
	diagonals, err := advanced.PartitionMonotone(network, e.tracer)
	if err != nil {
		return err
	}
	if e.config.Validate {
		if err := advanced.Validate(network); err != nil {
			return err
		}
	}
	advanced.TraceEnd(e.tracer, network)
	e.logger.Info("monotone", "vertices", len(network.Vertices), "diagonals", diagonals, "faces", len(network.Loops()))

	return e.write(out, func(w io.Writer) error {
		return contour.WriteLoops(w, network)
	})
}

func (e *env) triangulate(in, out string) error {
	subpaths, err := e.read(in)
	if err != nil {
		return err
	}
	mesh, err := tessellate.New(
		tessellate.WithTracer(e.tracer),
		tessellate.WithLogger(e.logger),
		tessellate.WithFastPath(e.config.FastPath),
		tessellate.WithValidation(e.config.Validate),
	).Tessellate(subpaths...)
	if err != nil {
		return err
	}
	e.logger.Info("triangulate", "vertices", len(mesh.Vertices), "triangles", mesh.TriangleCount(), "area", mesh.Area())

	return e.write(out, func(w io.Writer) error {
		return contour.WriteTriangles(w, mesh)
	})
}

func (e *env) read(path string) ([][]advanced.Point, error) {
	r := e.stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, errors.Wrap(err, "opening input")
		}
		defer f.Close()
		r = f
	}
	var (
		subpaths [][]advanced.Point
		err      error
	)
	if e.svg {
		subpaths, err = contour.ReadSVG(r)
	} else {
		subpaths, err = contour.Read(r)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", path)
	}
	if len(subpaths) == 0 {
		return nil, errors.Errorf("%s has no contours", path)
	}
	return subpaths, nil
}

func (e *env) readNetwork(path string) (*advanced.Network, error) {
	subpaths, err := e.read(path)
	if err != nil {
		return nil, err
	}
	return advanced.NewNetwork(subpaths...)
}

func (e *env) write(path string, write func(io.Writer) error) error {
	if path == "-" {
		return write(e.stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output")
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return errors.Wrap(f.Close(), "closing output")
}

// The configured trace sink, or nil when tracing is off.
func (e *env) openSink() (dbg.Sink, error) {
	trace := e.config.Trace
	switch trace.Kind {
	case config.TracePretty, config.TraceJSON:
		w := e.stderr
		var file *os.File
		if trace.Output != "" {
			var err error
			if file, err = os.Create(trace.Output); err != nil {
				return nil, errors.Wrap(err, "creating trace output")
			}
			w = file
		}
		var sink dbg.Sink
		if trace.Kind == config.TracePretty {
			sink = dbg.NewPrettySink(w, trace.Color && file == nil)
		} else {
			sink = dbg.NewJSONSink(w)
		}
		if file == nil {
			return sink, nil
		}
		return &fileSink{Sink: sink, file: file}, nil

	case config.TracePNG:
		dir := trace.Output
		if dir == "" {
			dir = "."
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, errors.Wrap(err, "creating frame directory")
		}
		sink := dbg.NewPNGSink(dir, trace.Scale)
		if trace.Imgcat {
			sink.Terminal = e.stderr
		}
		return sink, nil
	}
	return nil, nil
}

// A sink that owns the file it writes to.
type fileSink struct {
	dbg.Sink
	file *os.File
}

func (s *fileSink) Close() error {
	err := s.Sink.Close()
	if closeErr := s.file.Close(); err == nil {
		err = closeErr
	}
	return err
}
