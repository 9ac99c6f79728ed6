// Package clip implements binary-subdivision clipping of a section
// against a viewport rectangle: a plain range clamp for axis-aligned
// sections, and a bisecting search with a catch-tolerance band for
// inclined sections, where no closed-form intersection is cheap to
// compute in integer arithmetic.
package clip

import "github.com/mapengine/roadview/geom"

// SplitPointTolerance bounds find-split-point convergence: once both
// candidate midpoints are within this distance on both axes the
// section is declared not visible rather than searched further.
const SplitPointTolerance geom.Coord = 2

// CatchTolerance bounds how close an endpoint must land to the clip
// rectangle before the bisection in clipToward stops; the clipped
// result may end up this far outside clip_rect.
const CatchTolerance geom.Coord = 16

// maxIterations guards against runaway bisection on pathological input;
// a section's coordinate range halves every iteration, so this comfortably
// covers the full Coord domain.
const maxIterations = 64

// Clip clips the section begin-end against rect according to its
// orientation, returning the (possibly narrowed) endpoints and whether
// the section remains visible.
func Clip(begin, end geom.Point, orientation geom.Orientation, rect geom.Rect) (geom.Point, geom.Point, bool) {
	switch orientation {
	case geom.Horizontal:
		return Horizontal(begin, end, rect)
	case geom.Vertical:
		return Vertical(begin, end, rect)
	default:
		return Inclined(begin, end, rect)
	}
}

// Horizontal clips a horizontal section: it passes iff its y sits
// within [top, bottom], after which both endpoints are clamped to
// [left, right] on x.
func Horizontal(begin, end geom.Point, rect geom.Rect) (geom.Point, geom.Point, bool) {
	y := begin.Y
	if y < rect.T || y > rect.B {
		return begin, end, false
	}
	return geom.Pt(clampCoord(begin.X, rect.L, rect.R), y),
		geom.Pt(clampCoord(end.X, rect.L, rect.R), y),
		true
}

// Vertical is Horizontal's axis-symmetric counterpart.
func Vertical(begin, end geom.Point, rect geom.Rect) (geom.Point, geom.Point, bool) {
	x := begin.X
	if x < rect.L || x > rect.R {
		return begin, end, false
	}
	return geom.Pt(x, clampCoord(begin.Y, rect.T, rect.B)),
		geom.Pt(x, clampCoord(end.Y, rect.T, rect.B)),
		true
}

// Inclined clips a non-axis-aligned section. If both endpoints are
// already inside, it is returned unchanged. If exactly one is inside,
// the outside endpoint is pulled toward it. If both are outside,
// findSplitPoint searches for an interior crossing point to clip each
// half independently, or declares the section not visible.
func Inclined(begin, end geom.Point, rect geom.Rect) (geom.Point, geom.Point, bool) {
	beginIn := rect.Contains(begin)
	endIn := rect.Contains(end)

	switch {
	case beginIn && endIn:
		return begin, end, true
	case beginIn:
		return begin, clipToward(begin, end, rect), true
	case endIn:
		return clipToward(end, begin, rect), end, true
	default:
		return findSplitPoint(begin, end, rect)
	}
}

// clipToward bisects newEnd toward the known-inside anchor until it
// lands within rect ± CatchTolerance. Each step advances the anchor if
// the midpoint is strictly inside, else pulls newEnd to the midpoint.
func clipToward(anchor, newEnd geom.Point, rect geom.Rect) geom.Point {
	rest := false
	for i := 0; i < maxIterations; i++ {
		if withinTolerance(anchor, newEnd, CatchTolerance) {
			return newEnd
		}
		var mid geom.Point
		mid, rest = midpoint(anchor, newEnd, rest)
		if strictlyInside(mid, rect) {
			anchor = mid
		} else {
			newEnd = mid
		}
	}
	return newEnd
}

// findSplitPoint bisects the section, pushing whichever endpoint
// violates the clip rectangle toward the midpoint, until the midpoint
// lands inside (at which point each half clips independently toward
// it) or the endpoints converge within SplitPointTolerance (not
// visible).
func findSplitPoint(begin, end geom.Point, rect geom.Rect) (geom.Point, geom.Point, bool) {
	a, b := begin, end
	rest := false
	for i := 0; i < maxIterations; i++ {
		if withinTolerance(a, b, SplitPointTolerance) {
			return begin, end, false
		}
		var mid geom.Point
		mid, rest = midpoint(a, b, rest)
		if rect.Contains(mid) {
			newBegin := clipToward(mid, begin, rect)
			newEnd := clipToward(mid, end, rect)
			return newBegin, newEnd, true
		}
		if outcode(mid, rect)&outcode(a, rect) != 0 {
			a = mid
		} else {
			b = mid
		}
	}
	return begin, end, false
}

func clampCoord(v, lo, hi geom.Coord) geom.Coord {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func strictlyInside(p geom.Point, rect geom.Rect) bool {
	return p.X > rect.L && p.X < rect.R && p.Y > rect.T && p.Y < rect.B
}

func withinTolerance(a, b geom.Point, tol geom.Coord) bool {
	return absCoord(a.X-b.X) <= tol && absCoord(a.Y-b.Y) <= tol
}

func absCoord(v geom.Coord) geom.Coord {
	if v < 0 {
		return -v
	}
	return v
}

// outcode marks which sides of rect a point lies outside of, Cohen-
// Sutherland style: bit 1 left, 2 right, 4 top, 8 bottom.
func outcode(p geom.Point, rect geom.Rect) int {
	code := 0
	if p.X < rect.L {
		code |= 1
	}
	if p.X > rect.R {
		code |= 2
	}
	if p.Y < rect.T {
		code |= 4
	}
	if p.Y > rect.B {
		code |= 8
	}
	return code
}

// midpoint computes the bisection point of a-b, rounding odd sums up
// or down per axis alternating on rest, so a long run of bisections
// doesn't bias the walk toward one corner. The returned rest is the
// flag to pass to the next call.
func midpoint(a, b geom.Point, rest bool) (geom.Point, bool) {
	x, rest := halfRounded(a.X, b.X, rest)
	y, rest := halfRounded(a.Y, b.Y, rest)
	return geom.Pt(x, y), rest
}

func halfRounded(p, q geom.Coord, rest bool) (geom.Coord, bool) {
	sum := int64(p) + int64(q)
	half := sum >> 1 // floor, also for negative sums
	if sum%2 != 0 {
		if rest {
			half++
		}
		return geom.Coord(half), !rest
	}
	return geom.Coord(half), rest
}
