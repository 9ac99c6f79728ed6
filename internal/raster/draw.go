package raster

import "image/color"

// thicknessOffsets splits a thickness into the symmetric offsets the
// thick-line painters scan: the band runs from beginOffset up to but
// not including endOffset, centered on the line.
func thicknessOffsets(thickness int) (beginOffset, endOffset int) {
	beginOffset = -(thickness / 2)
	endOffset = beginOffset + thickness
	return
}

func isOutlineOffset(off, beginOffset, endOffset, outlineThickness int) bool {
	return outlineThickness > 0 && (off < beginOffset+outlineThickness || off >= endOffset-outlineThickness)
}

// PlotLine draws a thickness-1 line with Bresenham's algorithm and no
// thickness band: put_single_pixel.
func (c *Canvas) PlotLine(x0, y0, x1, y1 int, col color.RGBA) {
	dx := iabs(x1 - x0)
	dy := -iabs(y1 - y0)
	sx, sy := isign(x1-x0), isign(y1-y0)
	err := dx + dy
	x, y := x0, y0
	for {
		c.setMain(x, y, col)
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x += sx
		}
		if e2 <= dx {
			err += dx
			y += sy
		}
	}
}

// DrawSpanHorizontal draws a thick horizontal span from x1 to x2 at
// row y, with a symmetric thickness band and optional outline rings on
// the band's outer edges.
func (c *Canvas) DrawSpanHorizontal(x1, x2, y, thickness, outlineThickness int, main, outline color.RGBA) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	beginOffset, endOffset := thicknessOffsets(thickness)
	for off := beginOffset; off < endOffset; off++ {
		yy := y + off
		outlineBand := isOutlineOffset(off, beginOffset, endOffset, outlineThickness)
		for x := x1; x <= x2; x++ {
			if outlineBand {
				c.setOutline(x, yy, outline)
			} else {
				c.setMain(x, yy, main)
			}
		}
	}
}

// DrawSpanVertical is DrawSpanHorizontal's axis-symmetric counterpart.
func (c *Canvas) DrawSpanVertical(y1, y2, x, thickness, outlineThickness int, main, outline color.RGBA) {
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	beginOffset, endOffset := thicknessOffsets(thickness)
	for off := beginOffset; off < endOffset; off++ {
		xx := x + off
		outlineBand := isOutlineOffset(off, beginOffset, endOffset, outlineThickness)
		for y := y1; y <= y2; y++ {
			if outlineBand {
				c.setOutline(xx, y, outline)
			} else {
				c.setMain(xx, y, main)
			}
		}
	}
}

// DrawBresenhamXMajor walks the major (x) axis with Bresenham's
// algorithm, plotting a vertical thickness band at each step. Used for
// inclined-horizontal sections (|Δx| >= |Δy|).
func (c *Canvas) DrawBresenhamXMajor(x0, y0, x1, y1, thickness, outlineThickness int, main, outline color.RGBA) {
	beginOffset, endOffset := thicknessOffsets(thickness)
	dx, dy := iabs(x1-x0), iabs(y1-y0)
	sx, sy := isign(x1-x0), isign(y1-y0)
	err := dx - dy
	x, y := x0, y0
	for {
		for off := beginOffset; off < endOffset; off++ {
			yy := y + off
			if isOutlineOffset(off, beginOffset, endOffset, outlineThickness) {
				c.setOutline(x, yy, outline)
			} else {
				c.setMain(x, yy, main)
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dy {
			err -= dy
			x += sx
		}
		if e2 < dx {
			err += dx
			y += sy
		}
	}
}

// DrawBresenhamYMajor is DrawBresenhamXMajor's axis-symmetric
// counterpart for inclined-vertical sections (|Δy| > |Δx|).
func (c *Canvas) DrawBresenhamYMajor(x0, y0, x1, y1, thickness, outlineThickness int, main, outline color.RGBA) {
	beginOffset, endOffset := thicknessOffsets(thickness)
	dx, dy := iabs(x1-x0), iabs(y1-y0)
	sx, sy := isign(x1-x0), isign(y1-y0)
	err := dy - dx
	x, y := x0, y0
	for {
		for off := beginOffset; off < endOffset; off++ {
			xx := x + off
			if isOutlineOffset(off, beginOffset, endOffset, outlineThickness) {
				c.setOutline(xx, y, outline)
			} else {
				c.setMain(xx, y, main)
			}
		}
		if x == x1 && y == y1 {
			break
		}
		e2 := 2 * err
		if e2 > -dx {
			err -= dx
			y += sy
		}
		if e2 < dy {
			err += dy
			x += sx
		}
	}
}

// DrawJunction fills a diamond at (cx, cy) joining two consecutive
// thick sections at their shared endpoint: outlineThickness concentric
// rhombic rings followed by a filled inner rhombus, with half-extents
// |beginOffset| and endOffset-1 on the two diagonal axes.
func (c *Canvas) DrawJunction(cx, cy, beginOffset, endOffset, outlineThickness int, main, outline color.RGBA) {
	halfA := iabs(beginOffset)
	halfB := endOffset - 1
	if halfB < 0 {
		halfB = 0
	}

	for ring := 0; ring < outlineThickness; ring++ {
		c.drawRhombusRing(cx, cy, halfA-ring, halfB-ring, outline)
	}
	c.drawFilledRhombus(cx, cy, halfA-outlineThickness, halfB-outlineThickness, main)
}

func (c *Canvas) drawFilledRhombus(cx, cy, halfA, halfB int, col color.RGBA) {
	if halfA <= 0 || halfB <= 0 {
		c.setMain(cx, cy, col)
		return
	}
	for dx := -halfA; dx <= halfA; dx++ {
		span := halfB * (halfA - iabs(dx)) / halfA
		for dy := -span; dy <= span; dy++ {
			c.setMain(cx+dx, cy+dy, col)
		}
	}
}

func (c *Canvas) drawRhombusRing(cx, cy, halfA, halfB int, col color.RGBA) {
	if halfA <= 0 || halfB <= 0 {
		c.setOutline(cx, cy, col)
		return
	}
	for dx := -halfA; dx <= halfA; dx++ {
		dy := halfB * (halfA - iabs(dx)) / halfA
		c.setOutline(cx+dx, cy+dy, col)
		c.setOutline(cx+dx, cy-dy, col)
	}
}

func iabs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

func isign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}
