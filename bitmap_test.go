package roadview

import (
	"image/color"
	"testing"
)

func TestPixelFormatRGB24RoundTrip(t *testing.T) {
	c := color.RGBA{R: 0x12, G: 0x34, B: 0x56, A: 0xff}
	packed := PixelFormatRGB24.Pack(c)
	got := unpack(packed, PixelFormatRGB24)
	if got.R != c.R || got.G != c.G || got.B != c.B {
		t.Errorf("unpack(Pack(%v)) = %v, want matching RGB", c, got)
	}
}

func TestPixelFormatRGB565LossyRoundTrip(t *testing.T) {
	c := color.RGBA{R: 0xf8, G: 0xfc, B: 0xf8, A: 0xff}
	packed := PixelFormatRGB565.Pack(c)
	got := unpack(packed, PixelFormatRGB565)
	if got.R != c.R || got.G != c.G || got.B != c.B {
		t.Errorf("565 round trip of an on-grid color should be exact, got %v want %v", got, c)
	}
}

func TestMemBitmapLockUnlock(t *testing.T) {
	b := NewMemBitmap(10, 5, PixelFormatRGB24)
	fb, ok := b.Lock()
	if !ok {
		t.Fatal("Lock() returned false")
	}
	if fb.Rows != 5 || fb.Cols != 10 {
		t.Errorf("Framebuffer dims = %dx%d, want 10x5", fb.Cols, fb.Rows)
	}
	fb.Set(3, 2, color.RGBA{R: 0xff, A: 0xff})
	b.Unlock()

	img := b.ToImage()
	r, _, _, _ := img.At(3, 2).RGBA()
	if r>>8 != 0xff {
		t.Errorf("pixel (3,2) red channel = %d, want 0xff", r>>8)
	}
}

func TestFramebufferSetOutOfBounds(t *testing.T) {
	fb := Framebuffer{Rows: 2, Cols: 2, Pixels: make([]uint32, 4)}
	fb.Set(-1, 0, color.RGBA{R: 1})
	fb.Set(5, 0, color.RGBA{R: 1})
	for _, p := range fb.Pixels {
		if p != 0 {
			t.Error("out-of-bounds Set should be a no-op")
		}
	}
}

func TestFramebufferFillRow(t *testing.T) {
	fb := Framebuffer{Rows: 1, Cols: 40, Pixels: make([]uint32, 40), Format: PixelFormatRGB24}
	c := color.RGBA{R: 0xaa, G: 0xbb, B: 0xcc, A: 0xff}
	fb.FillRow(5, 35, 0, c)

	want := PixelFormatRGB24.Pack(c)
	for x := 0; x < 40; x++ {
		got := fb.Pixels[x]
		inRange := x >= 5 && x < 35
		if inRange && got != want {
			t.Errorf("pixel %d = %#x, want %#x", x, got, want)
		}
		if !inRange && got != 0 {
			t.Errorf("pixel %d outside fill range should remain 0, got %#x", x, got)
		}
	}
}

func TestFramebufferFillRowEmptyRange(t *testing.T) {
	fb := Framebuffer{Rows: 1, Cols: 10, Pixels: make([]uint32, 10)}
	fb.FillRow(5, 5, 0, color.RGBA{R: 1})
	fb.FillRow(8, 2, 0, color.RGBA{R: 1})
	for _, p := range fb.Pixels {
		if p != 0 {
			t.Error("degenerate range FillRow should be a no-op")
		}
	}
}
