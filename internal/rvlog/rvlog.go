// Package rvlog holds the single ambient logger shared by roadview's
// root package and every internal sub-package, without creating an
// import cycle back into the root package.
package rvlog

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler is a slog.Handler that silently discards all log records.
// Enabled returns false so the caller skips message formatting entirely,
// making disabled logging effectively zero-cost.
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

// ptr stores the active logger. Accessed atomically so Set can be
// called concurrently with logging from any goroutine.
var ptr atomic.Pointer[slog.Logger]

func init() {
	ptr.Store(newNopLogger())
}

// Set installs the shared logger. A nil argument restores the silent
// no-op default.
func Set(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	ptr.Store(l)
}

// Get returns the currently installed logger.
func Get() *slog.Logger {
	return ptr.Load()
}
