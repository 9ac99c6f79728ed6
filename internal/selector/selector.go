// Package selector combines a range-tree point query and two
// interval-tree stabbing queries into the single, deduplicated list of
// section ids visible in a viewport rectangle. An optional debug
// brute-force cross-check (gated by the caller) verifies the indexed
// result against a direct geometric scan of every section.
package selector

import (
	"fmt"
	"sort"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/ids"
	"github.com/mapengine/roadview/internal/intervaltree"
	"github.com/mapengine/roadview/internal/rangetree"
	"github.com/mapengine/roadview/internal/segstore"
)

// Indexes bundles the three structures a Select call queries.
type Indexes struct {
	Points     *rangetree.Tree
	Horizontal *intervaltree.Tree
	Vertical   *intervaltree.Tree
	Store      *segstore.Store
	// MapRect is the overall map bounding rectangle, needed as the
	// upper bound of the cross-section stab's y-range (see
	// crossSections below).
	MapRect geom.Rect
}

// Select returns the section ids visible in the closed rectangle rect,
// sorted ascending. When checkConsistency is true, the result is cross
// checked against a brute-force geometric scan and Select panics on any
// mismatch — intended for tests and development builds, never
// production, per spec.md's "fatal in debug builds" taxonomy.
func Select(idx Indexes, rect geom.Rect, checkConsistency bool) []ids.SectionID {
	pointIDs := idx.Points.SelectPoints(rect)

	var sectPosIDs []ids.SectPosID
	for _, hit := range idx.Horizontal.Stab(rect.L, rect.T, rect.B) {
		sectPosIDs = append(sectPosIDs, intervaltree.ToSectPosID(hit))
	}
	for _, hit := range idx.Horizontal.Stab(rect.R, rect.T, rect.B) {
		sectPosIDs = append(sectPosIDs, intervaltree.ToSectPosID(hit))
	}
	for _, hit := range idx.Vertical.Stab(rect.T, rect.L, rect.R) {
		sectPosIDs = append(sectPosIDs, intervaltree.ToSectPosID(hit))
	}
	for _, hit := range idx.Vertical.Stab(rect.B, rect.L, rect.R) {
		sectPosIDs = append(sectPosIDs, intervaltree.ToSectPosID(hit))
	}
	sectPosIDs = append(sectPosIDs, crossSections(idx, rect)...)

	result := idx.Store.PrepareSections(pointIDs, sectPosIDs)

	if checkConsistency {
		bruteForceCheck(idx.Store, rect, result)
	}

	return result
}

// crossSections finds sections whose bounding box strictly contains
// rect — the one case ordinary border stabs can't reach, per §4.3's
// "Cross sections" rule. It stabs the horizontal tree's left axis with
// the y-range above rect (from the map's top border down to rect's top
// edge), then confirms each hit's owning section actually brackets rect
// by checking that its bounding box's bottom-right corner lies
// below-right of rect. No vertical-tree pass is needed here: such a
// section's top bounding line always crosses rect's left edge above
// rect. Select's ordinary border stabs, by contrast, cover all four
// edges, the vertical tree's bottom one included.
func crossSections(idx Indexes, rect geom.Rect) []ids.SectPosID {
	var out []ids.SectPosID
	for _, hit := range idx.Horizontal.Stab(rect.L, idx.MapRect.T, rect.T) {
		sp := intervaltree.ToSectPosID(hit)
		cross := idx.Store.SectionCrossPoint(sp)
		if cross.X >= rect.R && cross.Y >= rect.B {
			out = append(out, sp)
		}
	}
	return out
}

// bruteForceCheck scans every section directly and panics if the
// indexed result differs from the geometric brute-force result.
func bruteForceCheck(store *segstore.Store, rect geom.Rect, indexed []ids.SectionID) {
	brute := bruteForceSelect(store, rect)

	indexedSet := make(map[ids.SectionID]struct{}, len(indexed))
	for _, id := range indexed {
		indexedSet[id] = struct{}{}
	}
	bruteSet := make(map[ids.SectionID]struct{}, len(brute))
	for _, id := range brute {
		bruteSet[id] = struct{}{}
	}

	var onlyIndexed, onlyBrute []ids.SectionID
	for id := range indexedSet {
		if _, ok := bruteSet[id]; !ok {
			onlyIndexed = append(onlyIndexed, id)
		}
	}
	for id := range bruteSet {
		if _, ok := indexedSet[id]; !ok {
			onlyBrute = append(onlyBrute, id)
		}
	}
	if len(onlyIndexed) != 0 || len(onlyBrute) != 0 {
		panic(fmt.Sprintf("selector: indexed/brute-force mismatch for rect %+v: only in indexed=%v, only in brute=%v",
			rect, onlyIndexed, onlyBrute))
	}
}

// bruteForceSelect directly tests every real section against rect
// with segmentIntersectsRect, independent of any tree.
func bruteForceSelect(store *segstore.Store, rect geom.Rect) []ids.SectionID {
	var out []ids.SectionID
	for segIdx, seg := range store.Segments() {
		for secIdx := 0; secIdx < len(seg.Points)-1; secIdx++ {
			a := seg.Points[secIdx].Point
			b := seg.Points[secIdx+1].Point
			if segmentIntersectsRect(a, b, rect) {
				out = append(out, ids.NewSectionID(uint16(segIdx), uint16(secIdx)))
			}
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// segmentIntersectsRect reports whether the closed segment a-b is
// in-frame for rect per §4.4's authoritative definition: an endpoint
// inside rect, a crossing between one of rect's four border segments
// and an edge of a-b's bounding box (its axis-monotone bounding lines),
// or that bounding box containing rect (the
// "cross section" case — the line need not itself touch rect, only
// bracket it, since it is this bounding box the indexed selector
// actually tests).
func segmentIntersectsRect(a, b geom.Point, rect geom.Rect) bool {
	if rect.Contains(a) || rect.Contains(b) {
		return true
	}
	minX, maxX := a.X, b.X
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	minY, maxY := a.Y, b.Y
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	if minX <= rect.L && maxX >= rect.R && minY <= rect.T && maxY >= rect.B {
		return true
	}
	corners := [4]geom.Point{
		geom.Pt(rect.L, rect.T),
		geom.Pt(rect.R, rect.T),
		geom.Pt(rect.R, rect.B),
		geom.Pt(rect.L, rect.B),
	}
	box := [4]geom.Point{
		geom.Pt(minX, minY),
		geom.Pt(maxX, minY),
		geom.Pt(maxX, maxY),
		geom.Pt(minX, maxY),
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			if segmentsIntersect(box[i], box[(i+1)%4], corners[j], corners[(j+1)%4]) {
				return true
			}
		}
	}
	return false
}

func segmentsIntersect(p1, p2, p3, p4 geom.Point) bool {
	d1 := cross(p3, p4, p1)
	d2 := cross(p3, p4, p2)
	d3 := cross(p1, p2, p3)
	d4 := cross(p1, p2, p4)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	if d1 == 0 && onSegment(p3, p4, p1) {
		return true
	}
	if d2 == 0 && onSegment(p3, p4, p2) {
		return true
	}
	if d3 == 0 && onSegment(p1, p2, p3) {
		return true
	}
	if d4 == 0 && onSegment(p1, p2, p4) {
		return true
	}
	return false
}

func cross(a, b, c geom.Point) int64 {
	return int64(b.X-a.X)*int64(c.Y-a.Y) - int64(b.Y-a.Y)*int64(c.X-a.X)
}

func onSegment(a, b, p geom.Point) bool {
	return p.X >= minCoord(a.X, b.X) && p.X <= maxCoord(a.X, b.X) &&
		p.Y >= minCoord(a.Y, b.Y) && p.Y <= maxCoord(a.Y, b.Y)
}

func minCoord(a, b geom.Coord) geom.Coord {
	if a < b {
		return a
	}
	return b
}

func maxCoord(a, b geom.Coord) geom.Coord {
	if a > b {
		return a
	}
	return b
}
