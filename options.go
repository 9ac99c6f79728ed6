package roadview

import (
	"image/color"
	"log/slog"
)

// DocumentOption configures a Document during construction.
//
// Example:
//
//	doc, err := roadview.NewDocument(raw, roadview.WithRoadClassTable(classes))
type DocumentOption func(*documentOptions)

// documentOptions holds optional configuration for Document construction.
type documentOptions struct {
	roadClassTable    RoadClassTable
	consistencyChecks bool
	diagnosticSink    DiagnosticSink
	logger            *slog.Logger
	background        color.RGBA
}

// defaultDocumentOptions returns the default document options.
func defaultDocumentOptions() documentOptions {
	return documentOptions{
		roadClassTable:    DefaultRoadClassTable(),
		consistencyChecks: false,
		diagnosticSink:    nil,
		logger:            nil, // falls back to the ambient logger, see logger.go
		background:        color.RGBA{R: 255, G: 255, B: 255, A: 255},
	}
}

// WithBackground sets the color an unwritten pixel resolves to when a
// frame is dumped into the host bitmap. The default is white.
func WithBackground(c color.RGBA) DocumentOption {
	return func(o *documentOptions) {
		o.background = c
	}
}

// WithRoadClassTable sets the thickness/color table used to rasterize
// each road class. Without this option a built-in default table is used.
func WithRoadClassTable(t RoadClassTable) DocumentOption {
	return func(o *documentOptions) {
		o.roadClassTable = t
	}
}

// WithConsistencyChecks enables the selector's debug brute-force
// cross-check (internal/selector) on every SelectSections call. It
// panics on a mismatch between the indexed and brute-force result
// sets. Intended for tests and development builds, not production.
func WithConsistencyChecks() DocumentOption {
	return func(o *documentOptions) {
		o.consistencyChecks = true
	}
}

// WithDiagnosticSink attaches a DiagnosticSink that receives optional
// textual/visual dumps of viewport rectangles, view state, and
// selected section ids. A nil sink (the default) disables all dumps
// at zero cost.
func WithDiagnosticSink(sink DiagnosticSink) DocumentOption {
	return func(o *documentOptions) {
		o.diagnosticSink = sink
	}
}

// WithLogger overrides the ambient logger (see SetLogger) for this
// Document instance only.
func WithLogger(l *slog.Logger) DocumentOption {
	return func(o *documentOptions) {
		o.logger = l
	}
}

// ControllerOption configures a Controller during construction.
type ControllerOption func(*controllerOptions)

// controllerOptions holds optional configuration for Controller construction.
type controllerOptions struct {
	initialView ViewState
}

// defaultControllerOptions returns the default controller options.
func defaultControllerOptions() controllerOptions {
	return controllerOptions{
		initialView: ViewState{Zoom: 0},
	}
}

// WithInitialView sets the center and zoom factor that ResetView
// restores the Controller to, and that the Controller starts at.
func WithInitialView(v ViewState) ControllerOption {
	return func(o *controllerOptions) {
		o.initialView = v
	}
}
