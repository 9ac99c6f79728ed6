// Package diagnostics provides the default DiagnosticSink implementation:
// a dump surface, active only when a Document is given a sink, writing rectangles, view states, and
// section-id lists to a directory as they're produced, for correlating
// two runs of "the same frame" during development.
package diagnostics

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"

	farm "github.com/dgryski/go-farm"
	"golang.org/x/image/draw"

	"github.com/mapengine/roadview"
	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/segstore"
)

const (
	nativeCanvas  = 512
	thumbnailSide = 64
)

// FileSink writes each dump to "<dir>/<seq>-<tag>.txt" (or .png for
// DumpView's thumbnail), relative to a fixed map extent used to
// position markers on the thumbnail. It is safe for concurrent use.
type FileSink struct {
	dir         string
	mapRect     geom.Rect
	mapChecksum uint64
	seq         atomic.Uint64
	mu          sync.Mutex
}

// NewFileSink creates a sink that writes under dir, positioning
// DumpView thumbnails relative to mapRect (the document's full extent)
// and stamping every dump with a 64-bit checksum of raw's decoded
// segment bytes, so dumps from two different runs can be confirmed to
// originate from the same map without re-reading the source file.
func NewFileSink(dir string, mapRect geom.Rect, raw []segstore.RawSegment) *FileSink {
	return &FileSink{dir: dir, mapRect: mapRect, mapChecksum: checksumRawSegments(raw)}
}

// checksumRawSegments hashes a canonical little-endian encoding of the
// decoded segments (road class, point count, then each point) with
// farm.Hash64 — the same hash family the teacher's interval-indexing
// dependency (grailbio-bio/interval) already pulls in.
func checksumRawSegments(raw []segstore.RawSegment) uint64 {
	var buf []byte
	var word [4]byte
	putU32 := func(v uint32) {
		binary.LittleEndian.PutUint32(word[:], v)
		buf = append(buf, word[:]...)
	}
	for _, seg := range raw {
		putU32(uint32(seg.RoadClass))
		putU32(uint32(len(seg.Points)))
		for _, p := range seg.Points {
			putU32(uint32(p.X))
			putU32(uint32(p.Y))
		}
	}
	return farm.Hash64(buf)
}

func (s *FileSink) nextPath(tag, ext string) string {
	n := s.seq.Add(1)
	return filepath.Join(s.dir, fmt.Sprintf("%04d-%s%s", n, tag, ext))
}

func (s *FileSink) writeText(tag, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.MkdirAll(s.dir, 0o755)
	_ = os.WriteFile(s.nextPath(tag, ".txt"), []byte(body), 0o644)
}

// DumpRect writes the rectangle's four coordinates as text.
func (s *FileSink) DumpRect(tag string, r geom.Rect) {
	s.writeText(tag, fmt.Sprintf("rect L=%d T=%d R=%d B=%d map_checksum=%016x\n",
		r.L, r.T, r.R, r.B, s.mapChecksum))
}

// DumpView writes the view state as text and, best-effort, a thumbnail
// PNG showing the center's position within the configured map extent.
func (s *FileSink) DumpView(tag string, v roadview.ViewState) {
	s.writeText(tag, fmt.Sprintf("view %s map_checksum=%016x\n", v, s.mapChecksum))

	thumb := s.renderViewThumbnail(v)
	s.mu.Lock()
	defer s.mu.Unlock()
	_ = os.MkdirAll(s.dir, 0o755)
	f, err := os.Create(s.nextPath(tag, ".png"))
	if err != nil {
		return
	}
	defer f.Close()
	_ = png.Encode(f, thumb)
}

// DumpSections writes the selected section ids alongside the sink's
// map checksum, so a selection dump can be confirmed to have been
// produced against the same map as any other dump from this sink.
func (s *FileSink) DumpSections(tag string, ids []int64) {
	s.writeText(tag, fmt.Sprintf("sections n=%d map_checksum=%016x ids=%v\n", len(ids), s.mapChecksum, ids))
}

// renderViewThumbnail draws the center (as a zoom-sized marker square)
// onto a native-resolution canvas positioned proportionally within
// mapRect, then downsamples it to a fixed thumbnail size with a
// nearest-neighbor scaler.
func (s *FileSink) renderViewThumbnail(v roadview.ViewState) image.Image {
	native := image.NewRGBA(image.Rect(0, 0, nativeCanvas, nativeCanvas))
	draw.Draw(native, native.Bounds(), &image.Uniform{C: color.RGBA{R: 235, G: 235, B: 235, A: 255}}, image.Point{}, draw.Src)

	mapW := int64(s.mapRect.Width())
	mapH := int64(s.mapRect.Height())
	if mapW <= 0 {
		mapW = 1
	}
	if mapH <= 0 {
		mapH = 1
	}

	px := int((int64(v.CenterX-s.mapRect.L) * nativeCanvas) / mapW)
	py := int((int64(v.CenterY-s.mapRect.T) * nativeCanvas) / mapH)

	markerHalf := int(v.Zoom) + 1
	if markerHalf < 1 {
		markerHalf = 1
	}
	marker := color.RGBA{R: 200, A: 255}
	for dy := -markerHalf; dy <= markerHalf; dy++ {
		for dx := -markerHalf; dx <= markerHalf; dx++ {
			x, y := px+dx, py+dy
			if x >= 0 && x < nativeCanvas && y >= 0 && y < nativeCanvas {
				native.SetRGBA(x, y, marker)
			}
		}
	}

	thumb := image.NewRGBA(image.Rect(0, 0, thumbnailSide, thumbnailSide))
	draw.NearestNeighbor.Scale(thumb, thumb.Bounds(), native, native.Bounds(), draw.Over, nil)
	return thumb
}
