// Package roadview renders a schematic map of classified road segments
// into a rasterized viewport at an integer zoom level.
//
// # Overview
//
// roadview answers two questions on every frame: which road sections
// cross the current viewport, and how those sections paint into a
// device-sized pixel buffer. The map index (a 2-D range tree plus two
// axis-specialized interval trees) answers the first in output-sensitive
// time; the rasterizer answers the second with a Bresenham-style painter
// that understands road class, thickness, outline, and polyline
// junctions.
//
// # Quick Start
//
//	import "github.com/mapengine/roadview"
//
//	raw, err := mapio.Decode(mapFile)
//	doc, err := roadview.NewDocument(raw, roadview.WithRoadClassTable(classes))
//	ctl, err := roadview.NewController(doc)
//	ctl.SetDeviceSize(geom.Size{W: 800, H: 600})
//	ctl.GenerateContents(hostBitmap)
//
// # Architecture
//
//   - Public API: Document, Controller, Bitmap, DiagnosticSink
//   - internal/ids: bit-packed point/section/interval-section identifiers
//   - internal/segstore: owns segments, sections, and interval sections
//   - internal/rangetree: 2-D orthogonal range search over vertices
//   - internal/intervaltree: axis-stabbing priority search trees
//   - internal/selector: combines both queries into a section-id list
//   - internal/viewport: zoom/pan arithmetic in an extended integer domain
//   - internal/clip: binary-subdivision clipping with tolerance
//   - internal/raster: the thick-line, outlined, junction-aware painter
//   - internal/mapio: decodes the byte stream into raw segments
//   - internal/diagnostics: the optional dump sink
//
// # Coordinate system
//
// All coordinates live in a single planar integer grid (no reprojection).
// Origin, scale, and orientation are whatever the map file encodes; the
// engine never interprets them beyond integer arithmetic.
//
// # Non-goals
//
// No anti-aliasing or sub-pixel accuracy: every pixel is either a road
// color or the background color. No editing: the document is immutable
// once built. No concurrent writers: view state is mutated only by the
// Controller, between frames.
package roadview
