// Package raster draws selected, clipped sections into a power-of-two
// aligned pixel buffer: plain span fills for axis-aligned sections,
// Bresenham's algorithm for inclined ones, both with symmetric
// thickness and optional outline rings, plus diamond junction fills at
// polyline corners so thick bands don't leave mitre gaps.
package raster

import "image/color"

// Canvas is the rasterizer's private pixel buffer. Rows is the device
// height; Cols is the device width; AlignedCols is the next power of
// two at or above Cols so (y<<Shift)+x indexes a pixel without a
// multiply. Columns beyond Cols are allocated but never read back.
// The zero color.RGBA{} marks an unwritten cell.
type Canvas struct {
	Rows, Cols, AlignedCols int
	Shift                   uint
	pixels                  []color.RGBA
}

// NewCanvas allocates a canvas for a rows x cols device surface.
func NewCanvas(rows, cols int) *Canvas {
	aligned, shift := nextPow2(cols)
	return &Canvas{
		Rows:        rows,
		Cols:        cols,
		AlignedCols: aligned,
		Shift:       shift,
		pixels:      make([]color.RGBA, rows*aligned),
	}
}

func nextPow2(n int) (int, uint) {
	if n < 1 {
		n = 1
	}
	p, shift := 1, uint(0)
	for p < n {
		p <<= 1
		shift++
	}
	return p, shift
}

func (c *Canvas) index(x, y int) int { return (y << c.Shift) + x }

func (c *Canvas) inBounds(x, y int) bool {
	return x >= 0 && x < c.Cols && y >= 0 && y < c.Rows
}

// setMain writes col unconditionally; callers rely on sections being
// drawn in road-class ascending order so a higher class's main fill
// always wins the pixel.
func (c *Canvas) setMain(x, y int, col color.RGBA) {
	if !c.inBounds(x, y) {
		return
	}
	c.pixels[c.index(x, y)] = col
}

// setOutline writes col only into an unwritten cell: outline writes
// never overwrite an already-set main-color pixel, giving automatic
// stacking order between a road's own fill and its outline, and
// between roads.
func (c *Canvas) setOutline(x, y int, col color.RGBA) {
	if !c.inBounds(x, y) {
		return
	}
	i := c.index(x, y)
	if c.pixels[i] == (color.RGBA{}) {
		c.pixels[i] = col
	}
}

// Get returns the pixel at (x, y), or the zero value outside bounds or
// for an unwritten cell.
func (c *Canvas) Get(x, y int) color.RGBA {
	if !c.inBounds(x, y) {
		return color.RGBA{}
	}
	return c.pixels[c.index(x, y)]
}

// ForEachRow visits every device row in order, resolving unwritten
// cells to background and coalescing consecutive same-color pixels
// into a single [x1, x2) run — mirroring the host Framebuffer's own
// span-fill idiom. The caller (the root package, which owns the host
// Framebuffer type) uses this to copy the canvas into the locked host
// buffer one run at a time instead of one pixel at a time, without
// raster importing the Framebuffer type.
func (c *Canvas) ForEachRow(background color.RGBA, fn func(y, x1, x2 int, col color.RGBA)) {
	for y := 0; y < c.Rows; y++ {
		runStart := 0
		runColor := c.resolve(runStart, y, background)
		for x := 1; x < c.Cols; x++ {
			col := c.resolve(x, y, background)
			if col != runColor {
				fn(y, runStart, x, runColor)
				runStart, runColor = x, col
			}
		}
		if c.Cols > 0 {
			fn(y, runStart, c.Cols, runColor)
		}
	}
}

func (c *Canvas) resolve(x, y int, background color.RGBA) color.RGBA {
	col := c.pixels[c.index(x, y)]
	if col == (color.RGBA{}) {
		return background
	}
	return col
}
