package roadview

import (
	"fmt"
	"image/color"
	"log/slog"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/ids"
	"github.com/mapengine/roadview/internal/intervaltree"
	"github.com/mapengine/roadview/internal/rangetree"
	"github.com/mapengine/roadview/internal/segstore"
	"github.com/mapengine/roadview/internal/selector"
)

// SectionID identifies one section of one segment: a section is the
// straight run between two consecutive points of a segment's polyline.
type SectionID uint32

// Document owns the immutable, queryable side of the engine: the
// segment store, the road-class table, and the spatial indexes built
// over the segments' geometry. A Document is safe for concurrent reads
// by multiple Controllers once constructed.
type Document struct {
	store      *segstore.Store
	points     *rangetree.Tree
	horizontal *intervaltree.Tree
	vertical   *intervaltree.Tree

	roadClassTable    RoadClassTable
	consistencyChecks bool
	sink              DiagnosticSink
	logger            *slog.Logger
	background        color.RGBA
	mapRect           geom.Rect
}

// NewDocument builds a Document from decoded raw segments (see
// internal/mapio.Decode). It sorts segments into road-class ascending
// order, derives interval sections, and builds the range tree and the
// two axis-specialized interval trees used by SelectSections.
func NewDocument(raw []segstore.RawSegment, opts ...DocumentOption) (*Document, error) {
	o := defaultDocumentOptions()
	for _, opt := range opts {
		opt(&o)
	}

	store, err := segstore.New(raw)
	if err != nil {
		return nil, fmt.Errorf("roadview: building segment store: %w", err)
	}

	var points []rangetree.Entry
	for _, seg := range store.Segments() {
		for _, p := range seg.Points {
			points = append(points, rangetree.Entry{Point: p.Point, ID: p.ID})
		}
	}

	var hSections, vSections []intervaltree.Section
	for i, isec := range store.IntervalSections() {
		switch isec.Orientation {
		case geom.Horizontal:
			hSections = append(hSections, intervaltree.Section{
				Begin: isec.Begin.X, End: isec.End.X, Cross: isec.Begin.Y, Index: uint32(i),
			})
		case geom.Vertical:
			vSections = append(vSections, intervaltree.Section{
				Begin: isec.Begin.Y, End: isec.End.Y, Cross: isec.Begin.X, Index: uint32(i),
			})
		}
	}

	doc := &Document{
		store:             store,
		points:            rangetree.Build(points),
		horizontal:        intervaltree.Build(hSections),
		vertical:          intervaltree.Build(vSections),
		roadClassTable:    o.roadClassTable,
		consistencyChecks: o.consistencyChecks,
		sink:              o.diagnosticSink,
		logger:            o.logger,
		background:        o.background,
		mapRect:           boundingRect(points),
	}

	doc.log().Info("document constructed",
		"segments", len(store.Segments()),
		"points", len(points),
		"interval_sections", len(store.IntervalSections()))

	return doc, nil
}

func boundingRect(points []rangetree.Entry) geom.Rect {
	if len(points) == 0 {
		return geom.Rect{}
	}
	r := geom.NewRect(points[0].Point.X, points[0].Point.Y, points[0].Point.X, points[0].Point.Y)
	for _, p := range points[1:] {
		if p.Point.X < r.L {
			r.L = p.Point.X
		}
		if p.Point.X > r.R {
			r.R = p.Point.X
		}
		if p.Point.Y < r.T {
			r.T = p.Point.Y
		}
		if p.Point.Y > r.B {
			r.B = p.Point.Y
		}
	}
	return r
}

// MapRect returns the bounding rectangle of every point in the
// document, used by Controller as the pan clip rectangle.
func (d *Document) MapRect() geom.Rect {
	return d.mapRect
}

// RoadClassTable returns the table Controller.GenerateContents uses to
// style each section.
func (d *Document) RoadClassTable() RoadClassTable {
	return d.roadClassTable
}

// SelectSections returns the ids of every section visible in rect,
// ascending — which, because segments are stored road-class ascending,
// is also the order GenerateContents must draw them in.
func (d *Document) SelectSections(rect geom.Rect) []SectionID {
	idx := selector.Indexes{Points: d.points, Horizontal: d.horizontal, Vertical: d.vertical, Store: d.store, MapRect: d.mapRect}
	result := selector.Select(idx, rect, d.consistencyChecks)

	out := make([]SectionID, len(result))
	for i, id := range result {
		out[i] = SectionID(id)
	}

	if d.sink != nil {
		d.sink.DumpRect("select", rect)
		asInt64 := make([]int64, len(out))
		for i, id := range out {
			asInt64[i] = int64(id)
		}
		d.sink.DumpSections("select", asInt64)
	}

	d.log().Debug("selected sections", "rect", rect, "count", len(out))
	return out
}

// GetSection looks up a section's road class and endpoints.
func (d *Document) GetSection(id SectionID) (roadClass int, begin, end geom.Point, ok bool) {
	return d.store.GetSection(ids.SectionID(id))
}

// log returns the document's per-instance logger override if set via
// WithLogger, else the ambient package logger.
func (d *Document) log() *slog.Logger {
	if d.logger != nil {
		return d.logger
	}
	return Logger()
}
