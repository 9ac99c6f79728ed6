package clip

import (
	"testing"

	"github.com/mapengine/roadview/geom"
)

func TestHorizontalPassesWithinBand(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	b, e, ok := Horizontal(geom.Pt(-50, 50), geom.Pt(150, 50), rect)
	if !ok {
		t.Fatal("Horizontal() ok = false, want true")
	}
	if b.X != 0 || e.X != 100 {
		t.Errorf("Horizontal() = %+v,%+v, want clamped to [0,100]", b, e)
	}
}

func TestHorizontalRejectsOutsideBand(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	_, _, ok := Horizontal(geom.Pt(10, 200), geom.Pt(90, 200), rect)
	if ok {
		t.Error("Horizontal() ok = true, want false (y outside [top,bottom])")
	}
}

func TestVerticalPassesWithinBand(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	b, e, ok := Vertical(geom.Pt(50, -50), geom.Pt(50, 150), rect)
	if !ok {
		t.Fatal("Vertical() ok = false, want true")
	}
	if b.Y != 0 || e.Y != 100 {
		t.Errorf("Vertical() = %+v,%+v, want clamped to [0,100]", b, e)
	}
}

func TestInclinedBothInsideUnchanged(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	begin, end := geom.Pt(10, 10), geom.Pt(90, 90)
	b, e, ok := Inclined(begin, end, rect)
	if !ok || b != begin || e != end {
		t.Errorf("Inclined() = %+v,%+v,%v, want unchanged", b, e, ok)
	}
}

func TestInclinedOneInsidePullsOutsideEndpoint(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	begin, end := geom.Pt(50, 50), geom.Pt(500, 500)
	b, e, ok := Inclined(begin, end, rect)
	if !ok {
		t.Fatal("Inclined() ok = false, want true")
	}
	if b != begin {
		t.Errorf("Inclined() begin = %+v, want unchanged inside anchor %+v", b, begin)
	}
	if e.X > rect.R+CatchTolerance || e.Y > rect.B+CatchTolerance {
		t.Errorf("Inclined() end = %+v, want within rect+tolerance of %+v", e, rect)
	}
}

func TestInclinedBothOutsideCrossingFound(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	begin, end := geom.Pt(-500, 50), geom.Pt(500, 50)
	b, e, ok := Inclined(begin, end, rect)
	if !ok {
		t.Fatal("Inclined() ok = false, want true for a section crossing the rect")
	}
	if b.X < rect.L-CatchTolerance || e.X > rect.R+CatchTolerance {
		t.Errorf("Inclined() = %+v,%+v, want both endpoints within tolerance of rect", b, e)
	}
}

func TestInclinedBothOutsideNoCrossingNotVisible(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	begin, end := geom.Pt(-500, -500), geom.Pt(-400, -600)
	_, _, ok := Inclined(begin, end, rect)
	if ok {
		t.Error("Inclined() ok = true, want false for a section nowhere near the rect")
	}
}

func TestClipDispatchesByOrientation(t *testing.T) {
	rect := geom.NewRect(0, 0, 100, 100)
	_, _, ok := Clip(geom.Pt(-10, 50), geom.Pt(50, 50), geom.Horizontal, rect)
	if !ok {
		t.Error("Clip() with Horizontal orientation ok = false, want true")
	}
}

func TestMidpointRestFlagAlternates(t *testing.T) {
	p, rest1 := midpoint(geom.Pt(0, 0), geom.Pt(1, 1), false)
	if p.X != 0 && p.X != 1 {
		t.Errorf("midpoint odd-sum x = %d, want 0 or 1", p.X)
	}
	if p.X == p.Y {
		t.Errorf("midpoint((0,0),(1,1)) = %+v, want x and y rounded in opposite directions", p)
	}
	_, rest2 := midpoint(geom.Pt(0, 0), geom.Pt(1, 1), rest1)
	if rest1 == rest2 && rest1 {
		// not a strict requirement, but the flag must at least be usable
		// across calls without panicking or diverging.
		t.Log("rest flag stayed constant across two odd midpoints")
	}
}
