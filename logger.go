package roadview

import (
	"log/slog"

	"github.com/mapengine/roadview/internal/rvlog"
)

// SetLogger configures the logger for roadview and all its internal
// sub-packages. By default roadview produces no log output; pass nil to
// restore that silent default.
//
// Log levels used by roadview:
//   - [slog.LevelDebug]: per-frame section-selector result size
//   - [slog.LevelInfo]: document construction, with its segment, point
//     and interval-section counts
//   - [slog.LevelWarn]: a frame skipped (content-generation guard, or
//     bitmap lock failure)
//
// Example:
//
//	// Enable debug-level logging to stderr:
//	roadview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
//	    Level: slog.LevelDebug,
//	})))
func SetLogger(l *slog.Logger) {
	rvlog.Set(l)
}

// Logger returns the current logger used by roadview.
func Logger() *slog.Logger {
	return rvlog.Get()
}
