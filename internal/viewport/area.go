// Package viewport implements the zoom/pan arithmetic of the view
// state: screen-size derivation, the map-coordinate viewport rectangle,
// move/zoom semantics, and the clip-rectangle correction that keeps the
// viewport inside the map. All of it runs in an extended (BigCoord)
// integer domain so it stays exact at extreme zoom-out levels.
package viewport

import "github.com/mapengine/roadview/geom"

// MinZoom and MaxZoom bound the public zoom range. Negative zoom
// (zoom-in) is implemented and tested but not reachable through the
// exported Controller, which clamps to this range.
const (
	MinZoom = 0
	MaxZoom = 22

	// MinScreenDim is the content-generation guard: a frame is produced
	// only when both screen dimensions are at least this large.
	MinScreenDim = 16

	// coordBits is the width of the coord domain screen size saturates
	// against when zooming out.
	coordBits = 32
)

// ScreenSize derives the screen size for a device size at a given zoom
// factor: the minimum of the device size and 1 << (coordBits - zoom),
// so zooming out eventually saturates the screen at the coordinate
// domain and panning further has no effect.
func ScreenSize(device geom.Size, zoom int32) geom.Size {
	shift := coordBits - zoom
	var lim int64
	switch {
	case shift >= 63:
		lim = 1<<62 - 1
	case shift <= 0:
		lim = 1
	default:
		lim = int64(1) << uint(shift)
	}
	return geom.Size{
		W: clampToLimit(device.W, lim),
		H: clampToLimit(device.H, lim),
	}
}

func clampToLimit(v geom.Coord, lim int64) geom.Coord {
	if int64(v) > lim {
		return geom.Coord(lim)
	}
	if v < 0 {
		return 0
	}
	return v
}

// ViewportRect computes the viewport rectangle in map coordinates:
// center ± (screenSize << zoom) / 2, computed in BigCoord then clipped
// to the Coord domain.
func ViewportRect(center geom.Point, screen geom.Size, zoom int32) geom.Rect {
	halfW := shiftByZoom(geom.BigCoord(screen.W), zoom) / 2
	halfH := shiftByZoom(geom.BigCoord(screen.H), zoom) / 2

	cx, cy := geom.BigCoord(center.X), geom.BigCoord(center.Y)
	bl := geom.BigPoint{X: cx - halfW, Y: cy - halfH}
	br := geom.BigPoint{X: cx + halfW, Y: cy + halfH}

	tl := bl.Narrow()
	brN := br.Narrow()
	return geom.Rect{L: tl.X, T: tl.Y, R: brN.X, B: brN.Y}
}

// shiftByZoom applies a signed shift: positive zoom (zoomed out) shifts
// left (multiplies), negative zoom (zoomed in, reserved) shifts right.
func shiftByZoom(v geom.BigCoord, zoom int32) geom.BigCoord {
	if zoom >= 0 {
		return v << uint(zoom)
	}
	return v >> uint(-zoom)
}

// ToDevice maps a map-space point into device/screen pixel coordinates
// relative to rect (the viewport rect at the given zoom) — the inverse
// of the shift ViewportRect applies to go from screen to map space.
func ToDevice(p geom.Point, rect geom.Rect, zoom int32) geom.Point {
	dx := geom.BigCoord(p.X) - geom.BigCoord(rect.L)
	dy := geom.BigCoord(p.Y) - geom.BigCoord(rect.T)
	if zoom >= 0 {
		dx >>= uint(zoom)
		dy >>= uint(zoom)
	} else {
		dx <<= uint(-zoom)
		dy <<= uint(-zoom)
	}
	return geom.Pt(geom.Coord(dx), geom.Coord(dy))
}

// CorrectPoint nudges center back inside clipRect if the viewport it
// would produce (at the given screen size and zoom) extends past
// clipRect on any side. Axes are corrected independently; on an axis
// where the viewport is larger than clipRect, center is only clamped
// into clipRect.
func CorrectPoint(center geom.Point, clipRect geom.Rect, screen geom.Size, zoom int32) geom.Point {
	rect := ViewportRect(center, screen, zoom)

	x := center.X
	switch {
	case int64(rect.R)-int64(rect.L) > int64(clipRect.R)-int64(clipRect.L):
		x = min(max(x, clipRect.L), clipRect.R)
	case rect.L < clipRect.L:
		x += clipRect.L - rect.L
	case rect.R > clipRect.R:
		x -= rect.R - clipRect.R
	}

	y := center.Y
	switch {
	case int64(rect.B)-int64(rect.T) > int64(clipRect.B)-int64(clipRect.T):
		y = min(max(y, clipRect.T), clipRect.B)
	case rect.T < clipRect.T:
		y += clipRect.T - rect.T
	case rect.B > clipRect.B:
		y -= rect.B - clipRect.B
	}

	return geom.Pt(x, y)
}
