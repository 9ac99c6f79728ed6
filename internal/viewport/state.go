package viewport

import "github.com/mapengine/roadview/geom"

// Direction names a compass direction for an in-direction move; each
// axis component is -1, 0 or 1.
type Direction int

const (
	North Direction = iota
	South
	East
	West
	NorthEast
	NorthWest
	SouthEast
	SouthWest
)

func (d Direction) components() (dx, dy int64) {
	switch d {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	case NorthEast:
		return 1, -1
	case NorthWest:
		return -1, -1
	case SouthEast:
		return 1, 1
	case SouthWest:
		return -1, 1
	default:
		return 0, 0
	}
}

// MoveKind selects how Move interprets its screen-space argument.
type MoveKind int

const (
	// MoveToPoint re-centers the viewport on a screen-space point: the
	// delta is that point's offset from the current screen center.
	MoveToPoint MoveKind = iota
	// MoveDirection shifts the center by half a screen in a compass
	// direction.
	MoveDirection
	// MoveDelta applies a direct screen-space delta.
	MoveDelta
)

// MoveRequest parametrizes Move. Only the field matching Kind is read.
type MoveRequest struct {
	Kind      MoveKind
	ScreenPos geom.Point // for MoveToPoint, screen-space target
	Dir       Direction  // for MoveDirection
	Delta     geom.Point // for MoveDelta, screen-space delta
}

// ZoomKind selects the zoom direction.
type ZoomKind int

const (
	ZoomIn ZoomKind = iota
	ZoomOut
)

// ZoomRequest parametrizes Zoom.
type ZoomRequest struct {
	Kind ZoomKind
	// Steps is the number of zoom levels to change by; at least 1 is
	// assumed by callers.
	Steps int32
	// InPlace, when set, keeps Focus visually fixed on screen instead of
	// re-centering on the current viewport center. A zoom-in with InPlace
	// additionally clips the result to the pre-zoom viewport.
	InPlace bool
	Focus   geom.Point // screen-space anchor, used only when InPlace
}

// State holds the mutable view state: the map's clip rectangle, the
// current center and zoom, and the device/screen sizes derived from
// them. All coordinates are in map space except where a method's
// parameter is explicitly documented as screen space.
type State struct {
	ClipRect geom.Rect

	initialCenter geom.Point
	initialZoom   int32

	Center geom.Point
	Zoom   int32

	DeviceSize geom.Size
	ScreenSize geom.Size
}

// New builds a State with the given clip rectangle and initial center
// and zoom, which Reset later restores. DeviceSize starts at zero; call
// SetDeviceSize before using ViewportRect or GenerateReady.
func New(clipRect geom.Rect, initialCenter geom.Point, initialZoom int32) *State {
	return &State{
		ClipRect:      clipRect,
		initialCenter: initialCenter,
		initialZoom:   clampZoom(initialZoom),
		Center:        initialCenter,
		Zoom:          clampZoom(initialZoom),
	}
}

func clampZoom(z int32) int32 {
	if z < MinZoom {
		return MinZoom
	}
	if z > MaxZoom {
		return MaxZoom
	}
	return z
}

// SetDeviceSize recomputes the derived screen size for a new device
// size at the current zoom, then re-corrects the center into the clip
// rectangle (the screen size change can shrink or grow the viewport).
func (s *State) SetDeviceSize(device geom.Size) {
	s.DeviceSize = device
	s.ScreenSize = ScreenSize(device, s.Zoom)
	s.Center = CorrectPoint(s.Center, s.ClipRect, s.ScreenSize, s.Zoom)
}

// ViewportRect returns the current viewport rectangle in map coordinates.
func (s *State) ViewportRect() geom.Rect {
	return ViewportRect(s.Center, s.ScreenSize, s.Zoom)
}

// GenerateReady reports whether the screen is large enough to produce
// content: both dimensions must be at least MinScreenDim.
func (s *State) GenerateReady() bool {
	return s.ScreenSize.W >= MinScreenDim && s.ScreenSize.H >= MinScreenDim
}

// Move applies a pan request: every kind computes a screen-space delta,
// scales it to map space by the current zoom, applies it to the
// center, then nudges the result back inside the clip rectangle.
func (s *State) Move(req MoveRequest) {
	var dx, dy int64

	switch req.Kind {
	case MoveToPoint:
		dx = int64(req.ScreenPos.X) - int64(s.ScreenSize.W)/2
		dy = int64(req.ScreenPos.Y) - int64(s.ScreenSize.H)/2
	case MoveDirection:
		cdx, cdy := req.Dir.components()
		dx = cdx * int64(s.ScreenSize.W) / 2
		dy = cdy * int64(s.ScreenSize.H) / 2
	case MoveDelta:
		dx = int64(req.Delta.X)
		dy = int64(req.Delta.Y)
	}

	mapDX := shiftByZoom(geom.BigCoord(dx), s.Zoom)
	mapDY := shiftByZoom(geom.BigCoord(dy), s.Zoom)

	newCenter := geom.BigPoint{
		X: geom.BigCoord(s.Center.X) + mapDX,
		Y: geom.BigCoord(s.Center.Y) + mapDY,
	}.Narrow()

	s.Center = CorrectPoint(newCenter, s.ClipRect, s.ScreenSize, s.Zoom)
}

// ApplyZoom applies a zoom request, optionally keeping a screen-space
// focus point visually fixed, and re-derives the screen size at the
// new zoom level.
func (s *State) ApplyZoom(req ZoomRequest) {
	prevRect := s.ViewportRect()
	prevZoom := s.Zoom

	var newZoom int32
	switch req.Kind {
	case ZoomIn:
		newZoom = clampZoom(s.Zoom - req.Steps)
	case ZoomOut:
		newZoom = clampZoom(s.Zoom + req.Steps)
	}

	newCenter := s.Center
	if req.InPlace {
		screenDX := int64(s.ScreenSize.W)/2 - int64(req.Focus.X)
		screenDY := int64(s.ScreenSize.H)/2 - int64(req.Focus.Y)

		oldOffsetX := shiftByZoom(geom.BigCoord(screenDX), prevZoom)
		oldOffsetY := shiftByZoom(geom.BigCoord(screenDY), prevZoom)
		newOffsetX := shiftByZoom(geom.BigCoord(screenDX), newZoom)
		newOffsetY := shiftByZoom(geom.BigCoord(screenDY), newZoom)

		newCenter = geom.BigPoint{
			X: geom.BigCoord(s.Center.X) + (newOffsetX - oldOffsetX),
			Y: geom.BigCoord(s.Center.Y) + (newOffsetY - oldOffsetY),
		}.Narrow()
	}

	newScreen := ScreenSize(s.DeviceSize, newZoom)

	if req.Kind == ZoomIn && req.InPlace {
		newCenter = CorrectPoint(newCenter, prevRect, newScreen, newZoom)
	}

	s.Zoom = newZoom
	s.ScreenSize = newScreen
	s.Center = CorrectPoint(newCenter, s.ClipRect, s.ScreenSize, s.Zoom)
}

// SetView sets the center and zoom directly (e.g. restoring a saved
// view state), clamping zoom and re-deriving screen size and center
// correction.
func (s *State) SetView(center geom.Point, zoom int32) {
	s.Zoom = clampZoom(zoom)
	s.ScreenSize = ScreenSize(s.DeviceSize, s.Zoom)
	s.Center = CorrectPoint(center, s.ClipRect, s.ScreenSize, s.Zoom)
}

// Reset restores the configured initial center and zoom.
func (s *State) Reset() {
	s.Zoom = s.initialZoom
	s.ScreenSize = ScreenSize(s.DeviceSize, s.Zoom)
	s.Center = CorrectPoint(s.initialCenter, s.ClipRect, s.ScreenSize, s.Zoom)
}
