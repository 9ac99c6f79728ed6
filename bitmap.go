package roadview

import (
	"image"
	"image/color"
	"image/png"
	"os"
	"sync"
)

// PixelFormat selects how a Framebuffer packs a color into one uint32:
// both formats can coexist in the same process, so this is a
// construction-time choice on MemBitmap rather than a build tag.
type PixelFormat int

const (
	// PixelFormatRGB565 packs 5 bits red, 6 bits green, 5 bits blue into
	// the low 16 bits of each uint32.
	PixelFormatRGB565 PixelFormat = iota
	// PixelFormatRGB24 packs 8 bits per channel into the low 24 bits of
	// each uint32.
	PixelFormatRGB24
)

// Pack encodes c into this format's uint32 representation.
func (f PixelFormat) Pack(c color.RGBA) uint32 {
	switch f {
	case PixelFormatRGB565:
		r := uint32(c.R) >> 3
		g := uint32(c.G) >> 2
		b := uint32(c.B) >> 3
		return r<<11 | g<<5 | b
	default:
		return uint32(c.R)<<16 | uint32(c.G)<<8 | uint32(c.B)
	}
}

// Framebuffer is a row-major, Cols-strided pixel buffer handed to the
// rasterizer by a locked Bitmap.
type Framebuffer struct {
	Rows, Cols int
	Pixels     []uint32
	Format     PixelFormat
}

// Set writes c at (x, y), silently ignoring out-of-bounds coordinates
// the way the teacher's pixel buffer does — a rasterizer clipped to the
// viewport should never go out of bounds, so a bounds check here is a
// backstop, not the primary defense.
func (fb *Framebuffer) Set(x, y int, c color.RGBA) {
	if x < 0 || x >= fb.Cols || y < 0 || y >= fb.Rows {
		return
	}
	fb.Pixels[y*fb.Cols+x] = fb.Format.Pack(c)
}

// FillRow fills pixels [x1, x2) on row y with a single color, batching
// the write via copy doubling once a run of pixels has been seeded —
// the same pattern the teacher's FillSpan uses for long spans.
func (fb *Framebuffer) FillRow(x1, x2, y int, c color.RGBA) {
	if y < 0 || y >= fb.Rows || x1 >= x2 {
		return
	}
	if x1 < 0 {
		x1 = 0
	}
	if x2 > fb.Cols {
		x2 = fb.Cols
	}
	if x1 >= x2 {
		return
	}
	packed := fb.Format.Pack(c)
	row := fb.Pixels[y*fb.Cols+x1 : y*fb.Cols+x2]
	row[0] = packed
	for filled := 1; filled < len(row); filled *= 2 {
		copy(row[filled:], row[:filled])
	}
}

// Bitmap is the host-owned pixel surface the Controller writes frames
// into. Lock returns a Framebuffer view valid until Unlock; a false
// return means no frame should be produced this call.
type Bitmap interface {
	Lock() (Framebuffer, bool)
	Unlock()
}

// MemBitmap is a reference Bitmap backed by an in-process buffer. It
// exists for tests, the CLI front end, and any host that doesn't need
// to synchronize with an external display surface.
type MemBitmap struct {
	mu     sync.Mutex
	rows   int
	cols   int
	format PixelFormat
	pixels []uint32
}

// NewMemBitmap allocates a cols x rows in-memory bitmap in the given
// pixel format.
func NewMemBitmap(cols, rows int, format PixelFormat) *MemBitmap {
	return &MemBitmap{
		rows:   rows,
		cols:   cols,
		format: format,
		pixels: make([]uint32, cols*rows),
	}
}

// Lock implements Bitmap. MemBitmap never refuses a lock.
func (b *MemBitmap) Lock() (Framebuffer, bool) {
	b.mu.Lock()
	return Framebuffer{Rows: b.rows, Cols: b.cols, Pixels: b.pixels, Format: b.format}, true
}

// Unlock implements Bitmap.
func (b *MemBitmap) Unlock() {
	b.mu.Unlock()
}

// ToImage renders the current buffer contents as an image.RGBA, for
// tests and the CLI front end's PNG output.
func (b *MemBitmap) ToImage() *image.RGBA {
	b.mu.Lock()
	defer b.mu.Unlock()

	img := image.NewRGBA(image.Rect(0, 0, b.cols, b.rows))
	for y := 0; y < b.rows; y++ {
		for x := 0; x < b.cols; x++ {
			img.Set(x, y, unpack(b.pixels[y*b.cols+x], b.format))
		}
	}
	return img
}

func unpack(v uint32, format PixelFormat) color.RGBA {
	switch format {
	case PixelFormatRGB565:
		r := uint8((v >> 11 & 0x1f) << 3)
		g := uint8((v >> 5 & 0x3f) << 2)
		b := uint8((v & 0x1f) << 3)
		return color.RGBA{R: r, G: g, B: b, A: 0xff}
	default:
		return color.RGBA{
			R: uint8(v >> 16 & 0xff),
			G: uint8(v >> 8 & 0xff),
			B: uint8(v & 0xff),
			A: 0xff,
		}
	}
}

// SavePNG writes the current buffer contents to path as a PNG file.
func (b *MemBitmap) SavePNG(path string) error {
	f, err := os.Create(path) //nolint:gosec // path is caller-provided intentionally
	if err != nil {
		return err
	}
	defer func() {
		_ = f.Close()
	}()
	return png.Encode(f, b.ToImage())
}
