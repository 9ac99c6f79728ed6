package rangetree

import (
	"sort"
	"testing"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/ids"
)

func entry(x, y int32, seg, pt uint16) Entry {
	return Entry{Point: geom.Pt(geom.Coord(x), geom.Coord(y)), ID: ids.NewPointPosID(seg, pt)}
}

func idsOf(got []ids.PointPosID) []ids.PointPosID {
	sort.Slice(got, func(i, j int) bool { return got[i] < got[j] })
	return got
}

func TestBuildEmpty(t *testing.T) {
	tree := Build(nil)
	if tree.Len() != 0 {
		t.Errorf("Len() = %d, want 0", tree.Len())
	}
	if got := tree.SelectPoints(geom.NewRect(0, 0, 10, 10)); len(got) != 0 {
		t.Errorf("SelectPoints() on empty tree = %v, want empty", got)
	}
}

func TestSelectPointsExactMatch(t *testing.T) {
	entries := []Entry{
		entry(0, 0, 0, 0),
		entry(50, 100, 0, 1),
		entry(200, 200, 0, 2),
		entry(150, 50, 1, 0),
	}
	tree := Build(entries)
	if tree.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", tree.Len())
	}

	got := idsOf(tree.SelectPoints(geom.NewRect(0, 0, 100, 100)))
	want := idsOf([]ids.PointPosID{entries[0].ID, entries[1].ID})
	if len(got) != len(want) {
		t.Fatalf("SelectPoints() = %v, want %v", got, want)
	}
	for i := range got {
		if got[i] != want[i] {
			t.Errorf("SelectPoints()[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestSelectPointsClosedRectangleEdges(t *testing.T) {
	entries := []Entry{entry(100, 100, 0, 0)}
	tree := Build(entries)

	cases := []struct {
		rect geom.Rect
		want bool
	}{
		{geom.NewRect(0, 0, 100, 100), true},   // on right/bottom edge
		{geom.NewRect(100, 100, 200, 200), true}, // on left/top edge
		{geom.NewRect(0, 0, 99, 99), false},
		{geom.NewRect(101, 101, 200, 200), false},
	}
	for _, c := range cases {
		got := len(tree.SelectPoints(c.rect)) > 0
		if got != c.want {
			t.Errorf("SelectPoints(%+v) found=%v, want %v", c.rect, got, c.want)
		}
	}
}

func TestSelectPointsLargeRandomSubset(t *testing.T) {
	var entries []Entry
	for i := int32(0); i < 500; i++ {
		entries = append(entries, entry((i*37)%1000, (i*53)%1000, uint16(i/100), uint16(i%100)))
	}
	tree := Build(entries)

	rect := geom.NewRect(200, 200, 400, 400)
	got := tree.SelectPoints(rect)

	var want []ids.PointPosID
	for _, e := range entries {
		if rect.Contains(e.Point) {
			want = append(want, e.ID)
		}
	}

	if len(got) != len(want) {
		t.Fatalf("SelectPoints() returned %d ids, want %d", len(got), len(want))
	}
	gotSet := make(map[ids.PointPosID]bool, len(got))
	for _, id := range got {
		gotSet[id] = true
	}
	for _, id := range want {
		if !gotSet[id] {
			t.Errorf("SelectPoints() missing expected id %v", id)
		}
	}
}
