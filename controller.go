package roadview

import (
	"fmt"
	"image/color"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/clip"
	"github.com/mapengine/roadview/internal/ids"
	"github.com/mapengine/roadview/internal/raster"
	"github.com/mapengine/roadview/internal/viewport"
)

// Re-exported viewport vocabulary so callers never need to import an
// internal package to drive a Controller.
type (
	MoveKind    = viewport.MoveKind
	MoveRequest = viewport.MoveRequest
	Direction   = viewport.Direction
	ZoomKind    = viewport.ZoomKind
	ZoomRequest = viewport.ZoomRequest
)

const (
	MoveToPoint   = viewport.MoveToPoint
	MoveDirection = viewport.MoveDirection
	MoveDelta     = viewport.MoveDelta

	North     = viewport.North
	South     = viewport.South
	East      = viewport.East
	West      = viewport.West
	NorthEast = viewport.NorthEast
	NorthWest = viewport.NorthWest
	SouthEast = viewport.SouthEast
	SouthWest = viewport.SouthWest

	ZoomIn  = viewport.ZoomIn
	ZoomOut = viewport.ZoomOut
)

// Controller owns the mutable view state over an immutable Document:
// device size, center, and zoom, plus the single entry point that
// turns the current viewport into pixels in a host-owned Bitmap.
type Controller struct {
	doc   *Document
	state *viewport.State
}

// NewController builds a Controller over doc, starting at the
// WithInitialView center/zoom (default center (0,0), zoom 0).
func NewController(doc *Document, opts ...ControllerOption) (*Controller, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}
	o := defaultControllerOptions()
	for _, opt := range opts {
		opt(&o)
	}

	center := geom.Pt(o.initialView.CenterX, o.initialView.CenterY)
	state := viewport.New(doc.MapRect(), center, o.initialView.Zoom)

	return &Controller{doc: doc, state: state}, nil
}

// SetDeviceSize sets the host-reported device size, re-deriving the
// screen size and re-correcting the center into the map's clip rect. It
// reports whether the resulting screen clears the content-generation
// guard, so a host can skip scheduling a frame it knows will be refused.
func (c *Controller) SetDeviceSize(size geom.Size) bool {
	c.state.SetDeviceSize(size)
	return c.state.GenerateReady()
}

// Move applies a pan request. See MoveToPoint, MoveDirection, MoveDelta.
func (c *Controller) Move(req MoveRequest) {
	c.state.Move(req)
	c.dumpView("move")
}

// Zoom applies a zoom request. See ZoomIn, ZoomOut.
func (c *Controller) Zoom(req ZoomRequest) {
	c.state.ApplyZoom(req)
	c.dumpView("zoom")
}

// ResetView restores the center and zoom the Controller was
// constructed (or last WithInitialView-configured) with.
func (c *Controller) ResetView() {
	c.state.Reset()
	c.dumpView("reset")
}

// ViewState returns the current center and zoom.
func (c *Controller) ViewState() ViewState {
	return ViewState{CenterX: c.state.Center.X, CenterY: c.state.Center.Y, Zoom: c.state.Zoom}
}

// SaveView serializes the current view state as "<cx> <cy> <zoom>".
func (c *Controller) SaveView() string {
	return c.ViewState().String()
}

// LoadView restores a view state produced by SaveView.
func (c *Controller) LoadView(s string) error {
	v, err := ParseViewState(s)
	if err != nil {
		return err
	}
	c.state.SetView(geom.Pt(v.CenterX, v.CenterY), v.Zoom)
	return nil
}

// ParamsDescription summarizes the controller's current view for logs
// and diagnostics as "l L t T r R b B zoom Z": the viewport rectangle's
// edges in map coordinates, then the zoom factor.
func (c *Controller) ParamsDescription() string {
	r := c.state.ViewportRect()
	return fmt.Sprintf("l %d t %d r %d b %d zoom %d", r.L, r.T, r.R, r.B, c.state.Zoom)
}

func (c *Controller) dumpView(tag string) {
	if c.doc.sink != nil {
		c.doc.sink.DumpView(tag, c.ViewState())
	}
}

// GenerateContents renders the current viewport into b. It reports
// false without touching b if the screen is too small to produce a
// frame (see the content-generation guard) or if locking b fails.
func (c *Controller) GenerateContents(b Bitmap) bool {
	if !c.state.GenerateReady() {
		c.doc.log().Warn("content generation skipped: screen too small",
			"screen", c.state.ScreenSize)
		return false
	}

	fb, ok := b.Lock()
	if !ok {
		c.doc.log().Warn("bitmap lock failed")
		return false
	}
	defer b.Unlock()

	rect := c.state.ViewportRect()
	canvas := raster.NewCanvas(int(c.state.ScreenSize.H), int(c.state.ScreenSize.W))

	c.paintSections(canvas, rect)

	canvas.ForEachRow(c.doc.background, func(y, x1, x2 int, col color.RGBA) {
		fb.FillRow(x1, x2, y, col)
	})
	return true
}

func (c *Controller) paintSections(canvas *raster.Canvas, rect geom.Rect) {
	table := c.doc.RoadClassTable()
	zoom := c.state.Zoom

	var lastSegment, lastSection uint16
	var lastOrientation geom.Orientation = geom.UnknownOrientation
	haveLast := false

	for _, sid := range c.doc.SelectSections(rect) {
		classIdx, begin, end, ok := c.doc.GetSection(sid)
		if !ok {
			continue
		}
		if !raster.ShouldDraw(classIdx, zoom, viewport.MaxZoom, MaxRoadClass) {
			continue
		}

		rc := table.Lookup(classIdx)
		thickness, outlineThickness := raster.ThicknessForZoom(rc.Thickness, rc.OutlineThickness, zoom)

		orientation := geom.OrientationOf(begin, end)
		clippedBegin, clippedEnd, visible := clip.Clip(begin, end, orientation, rect)
		if !visible {
			continue
		}

		rawID := ids.SectionID(sid)
		segIdx, secIdx := rawID.Segment(), rawID.Section()
		prev := geom.UnknownOrientation
		if haveLast && segIdx == lastSegment && secIdx == lastSection+1 {
			prev = lastOrientation
		}

		canvas.DrawSection(raster.SectionDraw{
			Begin:            viewport.ToDevice(clippedBegin, rect, zoom),
			End:              viewport.ToDevice(clippedEnd, rect, zoom),
			Orientation:      orientation,
			Thickness:        thickness,
			OutlineThickness: outlineThickness,
			Main:             rc.Fill,
			Outline:          rc.Outline,
		}, prev)

		lastSegment, lastSection, lastOrientation, haveLast = segIdx, secIdx, orientation, true
	}
}
