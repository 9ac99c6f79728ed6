package raster

import (
	"image/color"

	"github.com/mapengine/roadview/geom"
)

// SectionDraw is one section's already-clipped, device-space geometry
// and styling, ready to paint.
type SectionDraw struct {
	Begin, End       geom.Point // device pixel coordinates
	Orientation      geom.Orientation
	Thickness        int
	OutlineThickness int
	Main             color.RGBA
	Outline          color.RGBA
}

// DrawSection paints one section onto the canvas following the
// classify-then-dispatch pipeline: thickness 1 is a bare Bresenham
// plot; axis-aligned sections use a span loop; inclined sections use a
// major-axis Bresenham walk. When prev is not UnknownOrientation and
// the orientation pair needs one, a diamond junction is drawn at the
// section's begin point (the shared endpoint with the previous
// section in the polyline).
func (c *Canvas) DrawSection(sec SectionDraw, prev geom.Orientation) {
	x0, y0 := int(sec.Begin.X), int(sec.Begin.Y)
	x1, y1 := int(sec.End.X), int(sec.End.Y)

	switch {
	case sec.Thickness <= 1:
		c.PlotLine(x0, y0, x1, y1, sec.Main)
	case sec.Orientation == geom.Horizontal:
		c.DrawSpanHorizontal(x0, x1, y0, sec.Thickness, sec.OutlineThickness, sec.Main, sec.Outline)
	case sec.Orientation == geom.Vertical:
		c.DrawSpanVertical(y0, y1, x0, sec.Thickness, sec.OutlineThickness, sec.Main, sec.Outline)
	case sec.Orientation == geom.InclinedHorizontal:
		c.DrawBresenhamXMajor(x0, y0, x1, y1, sec.Thickness, sec.OutlineThickness, sec.Main, sec.Outline)
	default: // InclinedVertical
		c.DrawBresenhamYMajor(x0, y0, x1, y1, sec.Thickness, sec.OutlineThickness, sec.Main, sec.Outline)
	}

	if sec.OutlineThickness > 0 && NeedsJunction(prev, sec.Orientation) {
		beginOffset, endOffset := thicknessOffsets(sec.Thickness)
		c.DrawJunction(x0, y0, beginOffset, endOffset, sec.OutlineThickness, sec.Main, sec.Outline)
	}
}
