// Package segstore owns the immutable, road-class-sorted segment
// storage a Document is built from: raw input segments become stable
// Segment/Section records plus the derived interval sections the
// interval tree indexes.
package segstore

import (
	"errors"
	"fmt"
	"sort"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/ids"
)

// Sentinel errors returned by New when raw input fails validation.
var (
	ErrRoadClassRange = errors.New("segstore: road class out of range")
	ErrTooFewPoints   = errors.New("segstore: segment has fewer than 2 points")
	ErrSectionTooLong = errors.New("segstore: section axis span exceeds max_section_length")
)

// MaxRoadClass is the highest valid road-class index.
const MaxRoadClass = 7

// RawSegment is a segment as read from the map file, before road-class
// sorting and point-position id assignment.
type RawSegment struct {
	RoadClass int
	Points    []geom.Point
}

// PointPos bundles a point with its stable identifier.
type PointPos struct {
	Point geom.Point
	ID    ids.PointPosID
}

// Segment is a road-class-indexed polyline: an ordered sequence of
// PointPos entries, each carrying a stable point_pos_id.
type Segment struct {
	RoadClass int
	Points    []PointPos
}

// IntervalSection is one axis-monotone bounding line derived from a
// real section: Begin always holds the smaller coordinate along the
// section's primary axis.
type IntervalSection struct {
	SectionID   ids.SectionID
	Orientation geom.Orientation
	Begin, End  geom.Point
}

// Store owns the road-class-sorted segments and their derived interval
// sections. A Store is immutable once New returns.
type Store struct {
	segments         []Segment
	intervalSections []IntervalSection
}

// New builds a Store from raw segments: it sorts by road class
// ascending (so higher classes draw last, on top), assigns
// point_pos_ids, and derives one or four interval sections per real
// section depending on orientation.
func New(raw []RawSegment) (*Store, error) {
	ordered := make([]RawSegment, len(raw))
	copy(ordered, raw)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].RoadClass < ordered[j].RoadClass
	})

	segments := make([]Segment, len(ordered))
	for segIdx, rs := range ordered {
		if rs.RoadClass < 0 || rs.RoadClass > MaxRoadClass {
			return nil, fmt.Errorf("%w: class %d", ErrRoadClassRange, rs.RoadClass)
		}
		pts := dedupConsecutive(rs.Points)
		if len(pts) < 2 {
			return nil, fmt.Errorf("%w: segment %d has %d points after dedup", ErrTooFewPoints, segIdx, len(pts))
		}
		segPoints := make([]PointPos, len(pts))
		for ptIdx, p := range pts {
			segPoints[ptIdx] = PointPos{
				Point: p,
				ID:    ids.NewPointPosID(uint16(segIdx), uint16(ptIdx)),
			}
		}
		segments[segIdx] = Segment{RoadClass: rs.RoadClass, Points: segPoints}
	}

	var intervalSections []IntervalSection
	for segIdx, seg := range segments {
		for secIdx := 0; secIdx < len(seg.Points)-1; secIdx++ {
			begin := seg.Points[secIdx].Point
			end := seg.Points[secIdx+1].Point
			if err := checkSectionLength(begin, end); err != nil {
				return nil, err
			}
			sectionID := ids.NewSectionID(uint16(segIdx), uint16(secIdx))
			intervalSections = append(intervalSections, deriveIntervalSections(sectionID, begin, end)...)
		}
	}

	return &Store{segments: segments, intervalSections: intervalSections}, nil
}

func checkSectionLength(a, b geom.Point) error {
	dx := abs32(int32(a.X) - int32(b.X))
	dy := abs32(int32(a.Y) - int32(b.Y))
	if dx >= int32(geom.MaxSectionLength) || dy >= int32(geom.MaxSectionLength) {
		return fmt.Errorf("%w: (%d,%d)-(%d,%d)", ErrSectionTooLong, a.X, a.Y, b.X, b.Y)
	}
	return nil
}

func abs32(v int32) int32 {
	if v < 0 {
		return -v
	}
	return v
}

func dedupConsecutive(pts []geom.Point) []geom.Point {
	if len(pts) == 0 {
		return nil
	}
	out := make([]geom.Point, 0, len(pts))
	out = append(out, pts[0])
	for _, p := range pts[1:] {
		if p != out[len(out)-1] {
			out = append(out, p)
		}
	}
	return out
}

// deriveIntervalSections emits the axis-monotone bounding lines for one
// real section: one line if axis-aligned, four (the bounding box's two
// horizontal and two vertical edges) if inclined.
func deriveIntervalSections(sectionID ids.SectionID, a, b geom.Point) []IntervalSection {
	orient := geom.OrientationOf(a, b)
	switch orient {
	case geom.Horizontal:
		begin, end := a, b
		if begin.X > end.X {
			begin, end = end, begin
		}
		return []IntervalSection{{SectionID: sectionID, Orientation: geom.Horizontal, Begin: begin, End: end}}
	case geom.Vertical:
		begin, end := a, b
		if begin.Y > end.Y {
			begin, end = end, begin
		}
		return []IntervalSection{{SectionID: sectionID, Orientation: geom.Vertical, Begin: begin, End: end}}
	default:
		minX, maxX := a.X, b.X
		if minX > maxX {
			minX, maxX = maxX, minX
		}
		minY, maxY := a.Y, b.Y
		if minY > maxY {
			minY, maxY = maxY, minY
		}
		return []IntervalSection{
			{SectionID: sectionID, Orientation: geom.Horizontal, Begin: geom.Pt(minX, a.Y), End: geom.Pt(maxX, a.Y)},
			{SectionID: sectionID, Orientation: geom.Horizontal, Begin: geom.Pt(minX, b.Y), End: geom.Pt(maxX, b.Y)},
			{SectionID: sectionID, Orientation: geom.Vertical, Begin: geom.Pt(a.X, minY), End: geom.Pt(a.X, maxY)},
			{SectionID: sectionID, Orientation: geom.Vertical, Begin: geom.Pt(b.X, minY), End: geom.Pt(b.X, maxY)},
		}
	}
}

// Segments returns the road-class-ascending segment slice. Callers
// must not mutate the returned slice or its contents.
func (s *Store) Segments() []Segment { return s.segments }

// IntervalSections returns every derived interval section, in the
// order they were built. Callers must not mutate the returned slice.
func (s *Store) IntervalSections() []IntervalSection { return s.intervalSections }

// GetSection resolves a section_id to its road class and endpoints.
func (s *Store) GetSection(id ids.SectionID) (roadClass int, begin, end geom.Point, ok bool) {
	seg := int(id.Segment())
	sec := int(id.Section())
	if seg < 0 || seg >= len(s.segments) {
		return 0, geom.Point{}, geom.Point{}, false
	}
	segment := s.segments[seg]
	if sec < 0 || sec+1 >= len(segment.Points) {
		return 0, geom.Point{}, geom.Point{}, false
	}
	return segment.RoadClass, segment.Points[sec].Point, segment.Points[sec+1].Point, true
}

// SectionBeginPoint returns the begin endpoint of the interval section
// addressed by sp, independent of sp's own end-flag.
func (s *Store) SectionBeginPoint(sp ids.SectPosID) geom.Point {
	return s.intervalSections[sp.IntervalSection()].Begin
}

// SectionEndPoint returns the end endpoint of the interval section
// addressed by sp, independent of sp's own end-flag.
func (s *Store) SectionEndPoint(sp ids.SectPosID) geom.Point {
	return s.intervalSections[sp.IntervalSection()].End
}

// SectionCrossPoint returns the bottom-right corner of the bounding box
// of the real section that owns the interval section addressed by sp —
// used by the selector's cross-section test, which checks that this
// corner lies below-right of the viewport.
func (s *Store) SectionCrossPoint(sp ids.SectPosID) geom.Point {
	isec := s.intervalSections[sp.IntervalSection()]
	_, begin, end, _ := s.GetSection(isec.SectionID)
	return geom.Pt(maxCoord(begin.X, end.X), maxCoord(begin.Y, end.Y))
}

func maxCoord(a, b geom.Coord) geom.Coord {
	if a > b {
		return a
	}
	return b
}

// PrepareSections unions the range-tree point hits and the
// interval-tree stabbing hits into a single, sorted, deduplicated list
// of section ids selected for the viewport.
func (s *Store) PrepareSections(pointIDs []ids.PointPosID, sectPosIDs []ids.SectPosID) []ids.SectionID {
	seen := make(map[ids.SectionID]struct{})
	var out []ids.SectionID

	add := func(id ids.SectionID) {
		if _, ok := seen[id]; ok {
			return
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}

	for _, pid := range pointIDs {
		segIdx := int(pid.Segment())
		ptIdx := int(pid.Point())
		if segIdx < 0 || segIdx >= len(s.segments) {
			continue
		}
		n := len(s.segments[segIdx].Points)
		if ptIdx > 0 {
			add(ids.NewSectionID(uint16(segIdx), uint16(ptIdx-1)))
		}
		if ptIdx < n-1 {
			add(ids.NewSectionID(uint16(segIdx), uint16(ptIdx)))
		}
	}

	for _, sp := range sectPosIDs {
		idx := sp.IntervalSection()
		if int(idx) >= len(s.intervalSections) {
			continue
		}
		add(s.intervalSections[idx].SectionID)
	}

	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
