package roadview

import "image/color"

// MaxRoadClass is the highest valid road-class index; classes are
// drawn in ascending order so higher classes paint over lower ones.
const MaxRoadClass = 7

// RoadClass describes how one road class is rendered: a fill color, a
// base thickness, and an optional outline. FullThickness derives from
// both: Thickness + 2*OutlineThickness.
type RoadClass struct {
	Thickness        int
	Fill             color.RGBA
	OutlineThickness int
	Outline          color.RGBA
}

// FullThickness returns the band width the rasterizer occupies,
// including any outline ring on both sides of the fill.
func (c RoadClass) FullThickness() int {
	return c.Thickness + 2*c.OutlineThickness
}

// RoadClassTable maps a road-class index (0..MaxRoadClass) to its
// rendering parameters.
type RoadClassTable []RoadClass

// DefaultRoadClassTable returns a built-in table: thickness 1 and no
// outline for classes 0..MaxRoadClass-1, and thickness MaxRoadClass
// with a 1-pixel outline for the top class only.
func DefaultRoadClassTable() RoadClassTable {
	t := make(RoadClassTable, MaxRoadClass+1)
	for i := range t {
		t[i] = RoadClass{Thickness: 1, Fill: grayShade(i)}
	}
	t[MaxRoadClass] = RoadClass{
		Thickness:        MaxRoadClass,
		Fill:             color.RGBA{R: 0xff, G: 0xcc, B: 0x00, A: 0xff},
		OutlineThickness: 1,
		Outline:          color.RGBA{R: 0x40, G: 0x30, B: 0x00, A: 0xff},
	}
	return t
}

func grayShade(class int) color.RGBA {
	v := uint8(80 + class*20)
	return color.RGBA{R: v, G: v, B: v, A: 0xff}
}

// Lookup returns the RoadClass for class, clamped into the table's
// valid range so an out-of-range index never panics.
func (t RoadClassTable) Lookup(class int) RoadClass {
	switch {
	case len(t) == 0:
		return RoadClass{Thickness: 1, Fill: color.RGBA{A: 0xff}}
	case class < 0:
		return t[0]
	case class >= len(t):
		return t[len(t)-1]
	default:
		return t[class]
	}
}
