// Package intervaltree implements the two axis-specialized interval
// trees a document indexes its interval sections with: the horizontal
// tree answers "which horizontal sections cross vertical line X=a",
// the vertical tree answers the symmetric question for vertical
// sections. Both are centered (median-split) interval trees whose
// per-node crossing set is kept sorted by the section's constant
// secondary coordinate, so a stabbing query combined with a secondary
// range narrows to a contiguous slice before the per-candidate x/y
// bound check.
package intervaltree

import (
	"sort"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/ids"
)

// Section is one interval section as seen by the tree: a primary-axis
// range [Begin, End] at a constant secondary-axis coordinate, tagged
// with the index into the document's interval-section storage.
type Section struct {
	Begin, End geom.Coord // primary axis (x for a horizontal section, y for a vertical one)
	Cross      geom.Coord // secondary axis (the constant coordinate)
	Index      uint32     // index into the owning store's interval sections
}

type node struct {
	median geom.Coord
	center []Section // sections whose [Begin,End] straddles median, sorted by Cross ascending
	left   *node
	right  *node
}

// Tree is a built, immutable centered interval tree.
type Tree struct {
	root *node
	size int
}

// Build constructs a Tree over sections.
func Build(sections []Section) *Tree {
	t := &Tree{size: len(sections)}
	t.root = build(sections)
	return t
}

// Len returns the number of sections indexed.
func (t *Tree) Len() int { return t.size }

func build(sections []Section) *node {
	if len(sections) == 0 {
		return nil
	}
	median := medianCoord(sections)

	var left, right, center []Section
	for _, s := range sections {
		switch {
		case s.End < median:
			left = append(left, s)
		case s.Begin > median:
			right = append(right, s)
		default:
			center = append(center, s)
		}
	}

	sort.Slice(center, func(i, j int) bool { return center[i].Cross < center[j].Cross })

	return &node{
		median: median,
		center: center,
		left:   build(left),
		right:  build(right),
	}
}

// medianCoord picks the median of all Begin/End endpoints as the split
// value, matching the classic centered-interval-tree construction.
func medianCoord(sections []Section) geom.Coord {
	coords := make([]geom.Coord, 0, len(sections)*2)
	for _, s := range sections {
		coords = append(coords, s.Begin, s.End)
	}
	sort.Slice(coords, func(i, j int) bool { return coords[i] < coords[j] })
	return coords[len(coords)/2]
}

// Stab returns the Index of every section whose primary-axis range
// contains stabAt and whose Cross coordinate lies in [crossLo, crossHi]
// (both inclusive — the closed-rectangle convention).
func (t *Tree) Stab(stabAt, crossLo, crossHi geom.Coord) []uint32 {
	var out []uint32
	for n := t.root; n != nil; {
		lo := sort.Search(len(n.center), func(i int) bool { return n.center[i].Cross >= crossLo })
		hi := sort.Search(len(n.center), func(i int) bool { return n.center[i].Cross > crossHi })
		for _, s := range n.center[lo:hi] {
			if s.Begin <= stabAt && stabAt <= s.End {
				out = append(out, s.Index)
			}
		}
		switch {
		case stabAt < n.median:
			n = n.left
		case stabAt > n.median:
			n = n.right
		default:
			n = nil
		}
	}
	return out
}

// ToSectPosID converts a stabbed section index into the begin-endpoint
// sect_pos_id of that interval section; callers that only need the
// owning section_id do not care which endpoint they start from, since
// segstore resolves both ends to the same section.
func ToSectPosID(idx uint32) ids.SectPosID {
	return ids.NewSectPosID(idx, false)
}
