// Package mapio decodes the map file's little-endian int32 stream into
// raw segments ready for segstore.New.
package mapio

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/mapengine/roadview/geom"
	"github.com/mapengine/roadview/internal/segstore"
)

// trailingSentinel may terminate an in-memory stream for assertion
// purposes; files omit it.
const trailingSentinel int32 = -0x76543211 // 0x89ABCDEF as a signed int32

// Sentinel errors returned by Decode.
var (
	ErrNegativeCount = errors.New("mapio: negative segment or point count")
	ErrRoadClass     = errors.New("mapio: road class out of range")
)

// Decode reads the §6.1 stream format from r: a segment count, then
// per segment a road class and point count followed by that many
// (x, y) pairs. Consecutive duplicate points are dropped as they are
// read, not after. A trailing sentinel, if present, is consumed and
// ignored. Decode wraps io.ErrUnexpectedEOF on a truncated stream.
func Decode(r io.Reader) ([]segstore.RawSegment, error) {
	br := &reader{r: r}

	segmentCount, err := br.readInt32()
	if err != nil {
		return nil, err
	}
	if segmentCount < 0 {
		return nil, fmt.Errorf("%w: segment_count=%d", ErrNegativeCount, segmentCount)
	}

	segments := make([]segstore.RawSegment, 0, segmentCount)
	for i := int32(0); i < segmentCount; i++ {
		roadClass, err := br.readInt32()
		if err != nil {
			return nil, err
		}
		if roadClass < 0 || roadClass > segstore.MaxRoadClass {
			return nil, fmt.Errorf("%w: class %d at segment %d", ErrRoadClass, roadClass, i)
		}

		pointCount, err := br.readInt32()
		if err != nil {
			return nil, err
		}
		if pointCount < 0 {
			return nil, fmt.Errorf("%w: point_count=%d at segment %d", ErrNegativeCount, pointCount, i)
		}

		points := make([]geom.Point, 0, pointCount)
		for j := int32(0); j < pointCount; j++ {
			x, err := br.readInt32()
			if err != nil {
				return nil, err
			}
			y, err := br.readInt32()
			if err != nil {
				return nil, err
			}
			p := geom.Pt(geom.Coord(x), geom.Coord(y))
			if len(points) == 0 || points[len(points)-1] != p {
				points = append(points, p)
			}
		}

		segments = append(segments, segstore.RawSegment{RoadClass: int(roadClass), Points: points})
	}

	// A trailing sentinel may or may not be present; its absence (EOF)
	// is not an error, and any other read error is also swallowed since
	// decoding has already produced a complete, valid result.
	_, _ = br.readInt32()

	return segments, nil
}

type reader struct {
	r   io.Reader
	buf [4]byte
}

func (br *reader) readInt32() (int32, error) {
	if _, err := io.ReadFull(br.r, br.buf[:]); err != nil {
		if errors.Is(err, io.ErrUnexpectedEOF) || errors.Is(err, io.EOF) {
			return 0, fmt.Errorf("mapio: %w", io.ErrUnexpectedEOF)
		}
		return 0, err
	}
	return int32(binary.LittleEndian.Uint32(br.buf[:])), nil
}
