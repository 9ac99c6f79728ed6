package diagnostics

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mapengine/roadview"
	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/segstore"
)

func sampleSegments() []segstore.RawSegment {
	return []segstore.RawSegment{
		{RoadClass: 0, Points: []geom.Point{
			geom.Pt(0, 100), geom.Pt(300, 100),
		}},
	}
}

func TestDumpRectWritesText(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, geom.NewRect(0, 0, 1000, 1000), sampleSegments())
	sink.DumpRect("viewport", geom.NewRect(10, 20, 30, 40))

	entries, err := os.ReadDir(dir)
	if err != nil || len(entries) != 1 {
		t.Fatalf("ReadDir() = %v, %v, want exactly one file", entries, err)
	}
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "L=10") {
		t.Errorf("dump content = %q, want it to mention L=10", data)
	}
}

func TestDumpViewWritesTextAndThumbnail(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, geom.NewRect(0, 0, 1000, 1000), sampleSegments())
	sink.DumpView("frame", roadview.ViewState{CenterX: 500, CenterY: 500, Zoom: 4})

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir() error = %v", err)
	}
	var sawText, sawPNG bool
	for _, e := range entries {
		switch filepath.Ext(e.Name()) {
		case ".txt":
			sawText = true
		case ".png":
			sawPNG = true
		}
	}
	if !sawText || !sawPNG {
		t.Errorf("entries = %v, want both a .txt and a .png", entries)
	}
}

func TestDumpSectionsIncludesChecksum(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, geom.NewRect(0, 0, 1000, 1000), sampleSegments())
	sink.DumpSections("select", []int64{1, 2, 3})

	entries, _ := os.ReadDir(dir)
	data, err := os.ReadFile(filepath.Join(dir, entries[0].Name()))
	if err != nil {
		t.Fatalf("ReadFile() error = %v", err)
	}
	if !strings.Contains(string(data), "checksum=") {
		t.Errorf("dump content = %q, want a checksum field", data)
	}
}

func TestMapChecksumStableAcrossDumpsDiffersAcrossMaps(t *testing.T) {
	dirA, dirB := t.TempDir(), t.TempDir()
	sinkA := NewFileSink(dirA, geom.NewRect(0, 0, 1000, 1000), sampleSegments())
	sinkA.DumpRect("one", geom.NewRect(0, 0, 1, 1))
	sinkA.DumpView("two", roadview.ViewState{CenterX: 1, CenterY: 1, Zoom: 0})

	otherSegments := []segstore.RawSegment{
		{RoadClass: 1, Points: []geom.Point{geom.Pt(0, 0), geom.Pt(5, 5)}},
	}
	sinkB := NewFileSink(dirB, geom.NewRect(0, 0, 1000, 1000), otherSegments)

	readChecksum := func(dir string) string {
		entries, err := os.ReadDir(dir)
		if err != nil || len(entries) == 0 {
			t.Fatalf("ReadDir(%s) = %v, %v", dir, entries, err)
		}
		var sums []string
		for _, e := range entries {
			if filepath.Ext(e.Name()) != ".txt" {
				continue
			}
			data, err := os.ReadFile(filepath.Join(dir, e.Name()))
			if err != nil {
				t.Fatalf("ReadFile() error = %v", err)
			}
			i := strings.Index(string(data), "map_checksum=")
			if i < 0 {
				t.Fatalf("dump content = %q, want a map_checksum field", data)
			}
			sums = append(sums, string(data)[i:i+len("map_checksum=")+16])
		}
		for _, s := range sums[1:] {
			if s != sums[0] {
				t.Errorf("map_checksum varies within one sink's dumps: %v", sums)
			}
		}
		return sums[0]
	}

	sumA := readChecksum(dirA)

	sinkB.DumpRect("one", geom.NewRect(0, 0, 1, 1))
	sumB := readChecksum(dirB)

	if sumA == sumB {
		t.Errorf("map_checksum = %s for both sinks, want distinct checksums for distinct maps", sumA)
	}
}

func TestDumpSequenceNumbersIncrement(t *testing.T) {
	dir := t.TempDir()
	sink := NewFileSink(dir, geom.NewRect(0, 0, 100, 100), sampleSegments())
	sink.DumpRect("a", geom.NewRect(0, 0, 1, 1))
	sink.DumpRect("b", geom.NewRect(0, 0, 1, 1))

	entries, _ := os.ReadDir(dir)
	if len(entries) != 2 {
		t.Fatalf("ReadDir() = %d entries, want 2", len(entries))
	}
}
