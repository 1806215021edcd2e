package tessellate

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler discards everything. Enabled reports false so callers skip
// building the record at all.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger used by every Tessellator that was not
// given its own with WithLogger. By default nothing is logged. Pass nil to go
// back to silence.
//
// Log levels used:
//   - [slog.LevelDebug]: one summary per call (input size, path taken,
//     diagonals, triangles)
//   - [slog.LevelWarn]: a call that failed on malformed input
//
// SetLogger is safe for concurrent use.
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger returns the package logger.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
