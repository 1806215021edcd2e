package tessellate

import "log/slog"

// Option configures a Tessellator.
//
// Example:
//
//	t := tessellate.New(
//	    tessellate.WithTracer(dbg.NewPrettySink(os.Stderr, true)),
//	    tessellate.WithValidation(true),
//	)
type Option func(*Tessellator)

// WithTracer reports every classification, diagonal and triangle to tracer.
// Tracing is off by default.
func WithTracer(tracer Tracer) Option {
	return func(t *Tessellator) {
		t.tracer = tracer
	}
}

// WithLogger logs this Tessellator's calls to l instead of the package logger.
func WithLogger(l *slog.Logger) Option {
	return func(t *Tessellator) {
		t.logger = l
	}
}

// WithFastPath toggles fanning single convex subpaths without a partition. It
// is on by default.
func WithFastPath(enabled bool) Option {
	return func(t *Tessellator) {
		t.fastPath = enabled
	}
}

// WithValidation checks every half-edge link after partitioning. Off by
// default.
func WithValidation(enabled bool) Option {
	return func(t *Tessellator) {
		t.validate = enabled
	}
}
