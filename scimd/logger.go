package scimd

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// discard backs the logger scimd starts with. Vector arithmetic runs in
// tight loops and must not pay for formatting, so every level reports
// disabled and derived loggers stay silent too.
type discard struct{}

func (discard) Enabled(context.Context, slog.Level) bool  { return false }
func (discard) Handle(context.Context, slog.Record) error { return nil }
func (d discard) WithAttrs([]slog.Attr) slog.Handler      { return d }
func (d discard) WithGroup(string) slog.Handler           { return d }

var (
	silent = slog.New(discard{})
	logger atomic.Pointer[slog.Logger]
)

func init() {
	logger.Store(silent)
}

// SetLogger routes scimd diagnostics to l. By default nothing is logged.
// Pass nil to restore the silent default. The arithmetic path never logs;
// only diagnostics such as Verify do.
//
// Log levels used by scimd:
//   - [slog.LevelDebug]: compiled tier and CPU feature checks
//   - [slog.LevelWarn]: features the compiled tier needs but the CPU lacks
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = silent
	}
	logger.Store(l)
}

// Logger returns the logger Verify and the scimd command report through.
// Callers on the vector path should check Enabled before building
// attributes. It is safe for concurrent use.
func Logger() *slog.Logger {
	return logger.Load()
}
