package roadview

import (
	"image/color"
	"log/slog"
	"testing"

	"github.com/mapengine/roadview/geom"
)

func TestDefaultDocumentOptions(t *testing.T) {
	o := defaultDocumentOptions()
	if o.consistencyChecks {
		t.Error("consistency checks should be off by default")
	}
	if o.diagnosticSink != nil {
		t.Error("diagnostic sink should be nil by default")
	}
	if o.logger != nil {
		t.Error("logger override should be nil by default")
	}
}

func TestWithRoadClassTable(t *testing.T) {
	custom := RoadClassTable{{Thickness: 9}}
	o := defaultDocumentOptions()
	WithRoadClassTable(custom)(&o)
	if len(o.roadClassTable) != 1 || o.roadClassTable[0].Thickness != 9 {
		t.Errorf("roadClassTable = %+v, want custom table", o.roadClassTable)
	}
}

func TestWithConsistencyChecks(t *testing.T) {
	o := defaultDocumentOptions()
	WithConsistencyChecks()(&o)
	if !o.consistencyChecks {
		t.Error("WithConsistencyChecks did not enable consistency checks")
	}
}

type stubSink struct{}

func (stubSink) DumpRect(string, geom.Rect)    {}
func (stubSink) DumpView(string, ViewState)    {}
func (stubSink) DumpSections(string, []int64)  {}

func TestWithDiagnosticSink(t *testing.T) {
	sink := stubSink{}
	o := defaultDocumentOptions()
	WithDiagnosticSink(sink)(&o)
	if o.diagnosticSink != sink {
		t.Error("WithDiagnosticSink did not install the given sink")
	}
}

func TestWithLogger(t *testing.T) {
	l := slog.Default()
	o := defaultDocumentOptions()
	WithLogger(l)(&o)
	if o.logger != l {
		t.Error("WithLogger did not install the given logger")
	}
}

func TestDefaultDocumentOptionsBackgroundIsWhite(t *testing.T) {
	o := defaultDocumentOptions()
	if o.background != (color.RGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("background = %+v, want white", o.background)
	}
}

func TestWithBackground(t *testing.T) {
	o := defaultDocumentOptions()
	WithBackground(color.RGBA{A: 255})(&o)
	if o.background != (color.RGBA{A: 255}) {
		t.Errorf("background = %+v, want black", o.background)
	}
}

func TestDefaultControllerOptions(t *testing.T) {
	o := defaultControllerOptions()
	if o.initialView.Zoom != 0 {
		t.Errorf("default initial zoom = %d, want 0", o.initialView.Zoom)
	}
}

func TestWithInitialView(t *testing.T) {
	v := ViewState{CenterX: 10, CenterY: 20, Zoom: 3}
	o := defaultControllerOptions()
	WithInitialView(v)(&o)
	if o.initialView != v {
		t.Errorf("initialView = %+v, want %+v", o.initialView, v)
	}
}

func TestMultipleDocumentOptions(t *testing.T) {
	custom := RoadClassTable{{Thickness: 2}}
	sink := stubSink{}

	o := defaultDocumentOptions()
	for _, opt := range []DocumentOption{
		WithRoadClassTable(custom),
		WithConsistencyChecks(),
		WithDiagnosticSink(sink),
	} {
		opt(&o)
	}

	if !o.consistencyChecks {
		t.Error("consistency checks not applied")
	}
	if o.diagnosticSink != sink {
		t.Error("diagnostic sink not applied")
	}
	if len(o.roadClassTable) != 1 || o.roadClassTable[0].Thickness != 2 {
		t.Error("road class table not applied")
	}
}
