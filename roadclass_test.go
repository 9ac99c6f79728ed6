package roadview

import "testing"

func TestRoadClassFullThickness(t *testing.T) {
	c := RoadClass{Thickness: 3, OutlineThickness: 2}
	if got, want := c.FullThickness(), 7; got != want {
		t.Errorf("FullThickness() = %d, want %d", got, want)
	}
}

func TestDefaultRoadClassTableShape(t *testing.T) {
	table := DefaultRoadClassTable()
	if len(table) != MaxRoadClass+1 {
		t.Fatalf("len(table) = %d, want %d", len(table), MaxRoadClass+1)
	}
	for i := 0; i < MaxRoadClass; i++ {
		if table[i].Thickness != 1 {
			t.Errorf("class %d thickness = %d, want 1", i, table[i].Thickness)
		}
	}
	top := table[MaxRoadClass]
	if top.Thickness != MaxRoadClass {
		t.Errorf("top class thickness = %d, want %d", top.Thickness, MaxRoadClass)
	}
	if top.OutlineThickness == 0 {
		t.Error("top class should carry an outline")
	}
}

func TestRoadClassTableLookupClamps(t *testing.T) {
	table := DefaultRoadClassTable()
	if got := table.Lookup(-1); got != table[0] {
		t.Error("Lookup(-1) should clamp to class 0")
	}
	if got := table.Lookup(100); got != table[MaxRoadClass] {
		t.Error("Lookup(100) should clamp to the top class")
	}
	if got := table.Lookup(3); got != table[3] {
		t.Error("Lookup(3) should return class 3 unchanged")
	}
}

func TestRoadClassTableLookupEmpty(t *testing.T) {
	var empty RoadClassTable
	got := empty.Lookup(2)
	if got.Thickness != 1 {
		t.Errorf("empty table Lookup() thickness = %d, want 1", got.Thickness)
	}
}
