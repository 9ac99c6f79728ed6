package roadview

import (
	"fmt"

	"github.com/mapengine/roadview/geom"
)

// ViewState is the serializable part of the Controller's view: the map-
// coordinate center and the zoom factor. It round-trips through
// SaveView/LoadView as "<cx> <cy> <zoom>".
type ViewState struct {
	CenterX, CenterY geom.Coord
	Zoom             int32
}

// String formats the state as "<cx> <cy> <zoom>".
func (v ViewState) String() string {
	return fmt.Sprintf("%d %d %d", v.CenterX, v.CenterY, v.Zoom)
}

// ParseViewState parses the "<cx> <cy> <zoom>" format produced by
// String. It returns ErrInvalidViewState on malformed input.
func ParseViewState(s string) (ViewState, error) {
	var v ViewState
	var cx, cy, zoom int64
	n, err := fmt.Sscanf(s, "%d %d %d", &cx, &cy, &zoom)
	if err != nil || n != 3 {
		return v, fmt.Errorf("%w: %q", ErrInvalidViewState, s)
	}
	v.CenterX = geom.Coord(cx)
	v.CenterY = geom.Coord(cy)
	v.Zoom = int32(zoom)
	return v, nil
}

// DiagnosticSink is the optional dump surface a Document/Controller
// pair reports through when a DiagnosticSink is configured via
// WithDiagnosticSink. internal/diagnostics provides a default
// implementation; all calls are no-ops when no sink is configured.
type DiagnosticSink interface {
	// DumpRect records a named rectangle, e.g. a computed viewport rect.
	DumpRect(tag string, r geom.Rect)
	// DumpView records a named view state snapshot.
	DumpView(tag string, v ViewState)
	// DumpSections records the section ids a SelectSections call returned.
	DumpSections(tag string, ids []int64)
}
