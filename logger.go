package yengine

import (
	"context"
	"log/slog"
	"sync/atomic"

	"github.com/gogpu/yengine/backend"
	"github.com/gogpu/yengine/platform"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so callers skip formatting entirely.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// loggerPtr stores the active logger. Accessed atomically so that
// SetLogger can be called while the bootstrap worker is logging.
var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger configures the logger for yengine and its sub-packages.
// By default yengine produces no log output.
//
// SetLogger is safe for concurrent use. Pass nil to restore the silent
// default. The logger is also handed to the backend and platform
// packages, so registered GPU backends and platforms log through it.
//
// Log levels used by yengine:
//   - [slog.LevelDebug]: event routing, surface resizes, mode resolution
//   - [slog.LevelInfo]: adapter selected, promotion to the running phase
//   - [slog.LevelWarn]: splash draw or present failures
//   - [slog.LevelError]: fatal bootstrap failures
//
// Example:
//
//	yengine.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
	backend.SetLogger(l)
	platform.SetLogger(l)
}

// Logger returns the current logger used by yengine.
//
// Logger is safe for concurrent use.
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
