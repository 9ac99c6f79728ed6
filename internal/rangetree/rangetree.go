// Package rangetree implements the 2-D orthogonal range tree over a
// document's point positions: a balanced BSP on x, with every internal
// node (except the root) carrying its subtree resorted by y so that an
// axis-aligned rectangle query runs in output-sensitive time.
package rangetree

import (
	"sort"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/ids"
)

// Entry is one indexed point, carrying the id the query reports.
type Entry struct {
	Point geom.Point
	ID    ids.PointPosID
}

type ySorted struct {
	y  geom.Coord
	id ids.PointPosID
}

type node struct {
	// leaf
	isLeaf bool
	point  Entry

	// internal
	xMin, xMax geom.Coord
	left, right *node
	secondary   []ySorted // nil at the root; sorted ascending by y otherwise
}

// Tree is a built, immutable 2-D range tree.
type Tree struct {
	root *node
	size int
}

// Build constructs a Tree over entries. An empty input yields an empty,
// queryable Tree.
func Build(entries []Entry) *Tree {
	sorted := make([]Entry, len(entries))
	copy(sorted, entries)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Point.X < sorted[j].Point.X })

	root := buildNode(sorted)
	if root != nil {
		// The root never needs a secondary structure: a query's split
		// node is never the root for a non-trivial rectangle, since the
		// whole tree's x-range always needs at least one further split.
		root.secondary = nil
	}
	return &Tree{root: root, size: len(sorted)}
}

// Len returns the number of points indexed.
func (t *Tree) Len() int { return t.size }

func buildNode(sorted []Entry) *node {
	if len(sorted) == 0 {
		return nil
	}
	if len(sorted) == 1 {
		return &node{isLeaf: true, point: sorted[0], xMin: sorted[0].Point.X, xMax: sorted[0].Point.X}
	}

	mid := len(sorted) / 2
	left := buildNode(sorted[:mid])
	right := buildNode(sorted[mid:])

	n := &node{
		isLeaf: false,
		left:   left,
		right:  right,
		xMin:   sorted[0].Point.X,
		xMax:   sorted[len(sorted)-1].Point.X,
	}
	n.secondary = make([]ySorted, len(sorted))
	bySecondary := make([]Entry, len(sorted))
	copy(bySecondary, sorted)
	sort.Slice(bySecondary, func(i, j int) bool { return bySecondary[i].Point.Y < bySecondary[j].Point.Y })
	for i, e := range bySecondary {
		n.secondary[i] = ySorted{y: e.Point.Y, id: e.ID}
	}
	return n
}

// SelectPoints returns the point_pos_id of every indexed point lying
// inside the closed rectangle r.
func (t *Tree) SelectPoints(r geom.Rect) []ids.PointPosID {
	var out []ids.PointPosID
	if t.root != nil {
		collect(t.root, r, &out)
	}
	return out
}

func collect(n *node, r geom.Rect, out *[]ids.PointPosID) {
	if n.xMax < r.L || n.xMin > r.R {
		return
	}
	if n.isLeaf {
		if r.Contains(n.point.Point) {
			*out = append(*out, n.point.ID)
		}
		return
	}
	if n.xMin >= r.L && n.xMax <= r.R && n.secondary != nil {
		collectSecondary(n.secondary, r, out)
		return
	}
	collect(n.left, r, out)
	collect(n.right, r, out)
}

// collectSecondary binary-searches the y-sorted secondary array for
// [r.T, r.B] and reports every id in that slice.
func collectSecondary(secondary []ySorted, r geom.Rect, out *[]ids.PointPosID) {
	lo := sort.Search(len(secondary), func(i int) bool { return secondary[i].y >= r.T })
	hi := sort.Search(len(secondary), func(i int) bool { return secondary[i].y > r.B })
	for _, e := range secondary[lo:hi] {
		*out = append(*out, e.id)
	}
}
