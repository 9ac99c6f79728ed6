package raster

import "github.com/mapengine/roadview/geom"

// ReductionZoom is the zoom factor above which thickness starts
// shrinking as the view zooms out.
const ReductionZoom = 1

// FilterThreshold returns the minimum road class still drawn at the
// given zoom, for a table with maxClass as its highest class index and
// maxZoom as the engine's zoom ceiling. Below min_filter_zoom (=
// maxZoom - 2*maxClass) every class is drawn; above it the threshold
// rises linearly, rounded up, reaching maxClass at maxZoom.
func FilterThreshold(zoom, maxZoom int32, maxClass int) int {
	minFilterZoom := maxZoom - 2*int32(maxClass)
	if zoom <= minFilterZoom {
		return 0
	}
	den := int64(maxZoom - minFilterZoom)
	if den <= 0 {
		return maxClass
	}
	num := int64(maxClass) * int64(zoom-minFilterZoom)
	threshold := (num + den - 1) / den // ceiling division
	if int(threshold) > maxClass {
		return maxClass
	}
	return int(threshold)
}

// ShouldDraw reports whether a section of the given road class is
// drawn at the given zoom.
func ShouldDraw(class int, zoom, maxZoom int32, maxClass int) bool {
	return class >= FilterThreshold(zoom, maxZoom, maxClass)
}

// ThicknessForZoom adjusts a class's default thickness and outline
// thickness for the current zoom factor: zoom-in (negative zoom)
// multiplies thickness by (-zoom+1); zoom-out past ReductionZoom
// shrinks it by (zoom-1)/2, floored at 1 (0 for the outline, which may
// vanish entirely at very zoomed-out levels).
func ThicknessForZoom(baseThickness, baseOutline int, zoom int32) (thickness, outline int) {
	switch {
	case zoom < 0:
		factor := int(-zoom + 1)
		return baseThickness * factor, baseOutline * factor
	case zoom > ReductionZoom:
		reduceBy := int((zoom - 1) / 2)
		thickness = baseThickness - reduceBy
		if thickness < 1 {
			thickness = 1
		}
		outline = baseOutline - reduceBy
		if outline < 0 {
			outline = 0
		}
		return thickness, outline
	default:
		return baseThickness, baseOutline
	}
}

// NeedsJunction reports whether a diamond junction is drawn between a
// previous and current section orientation at their shared endpoint.
// Same-axis-aligned consecutive pairs need none because their
// thickness bands already overlap, and there is never a junction
// before the first section of a polyline (prev == UnknownOrientation).
func NeedsJunction(prev, curr geom.Orientation) bool {
	switch {
	case prev == geom.UnknownOrientation:
		return false
	case prev == geom.Horizontal && (curr == geom.Vertical || curr == geom.InclinedVertical):
		return true
	case prev == geom.Vertical && curr == geom.InclinedHorizontal:
		return true
	case prev == geom.InclinedHorizontal && curr == geom.InclinedVertical:
		return true
	case prev == geom.InclinedHorizontal && curr == geom.InclinedHorizontal:
		return true
	case prev == geom.InclinedVertical && curr == geom.InclinedVertical:
		return true
	default:
		return false
	}
}

// CalcInclinedSectionEndPos extends stop by offset on the trailing
// side of an inclined walk so a thick band terminates squarely instead
// of sliced at the screen edge, without exceeding limit+offset.
func CalcInclinedSectionEndPos(stop, offset, limit int) int {
	extended := stop + offset
	if extended > limit+offset {
		return limit + offset
	}
	if extended < -offset {
		return -offset
	}
	return extended
}
