package plan

import "github.com/google/uuid"

// WallAnchor locates an attachment on a room edge. Offset is the fractional
// position of the attachment's center along the edge from its start vertex,
// clamped to [0,1]; Length is the physical width along the wall in meters.
type WallAnchor struct {
	WallIndex int     `json:"wallIndex"`
	Offset    float64 `json:"offset"`
	Length    float64 `json:"length"`
}

// Anchor returns the anchor itself; embedding WallAnchor gives Door and
// Window the WallAttachment capability.
func (a WallAnchor) Anchor() WallAnchor {
	return a
}

// WallAttachment is anything fixed to a wall at a fractional offset.
type WallAttachment interface {
	Anchor() WallAnchor
}

// DoorType selects the door rendering variant and its default width.
type DoorType string

const (
	DoorSingle    DoorType = "single"
	DoorDouble    DoorType = "double"
	DoorSideLight DoorType = "sideLight"
)

// DefaultLength returns the physical width in meters used when a door of
// this type is created.
func (t DoorType) DefaultLength() float64 {
	switch t {
	case DoorDouble:
		return 1.8
	case DoorSideLight:
		return 1.4
	default:
		return 0.9
	}
}

// Door is a wall-mounted door opening.
type Door struct {
	ID uuid.UUID `json:"id"`
	WallAnchor
	Type DoorType `json:"type"`
}

// NewDoor creates a door of the given type at offset on wall wallIndex, with
// the type's default width.
func NewDoor(wallIndex int, offset float64, t DoorType) *Door {
	return &Door{
		ID:         uuid.New(),
		WallAnchor: WallAnchor{WallIndex: wallIndex, Offset: clamp01(offset), Length: t.DefaultLength()},
		Type:       t,
	}
}

// WindowType selects the window rendering variant and its default width.
type WindowType string

const (
	WindowSingle  WindowType = "single"
	WindowDouble  WindowType = "double"
	WindowTriple  WindowType = "triple"
	WindowPicture WindowType = "picture"
)

// DefaultLength returns the physical width in meters used when a window of
// this type is created.
func (t WindowType) DefaultLength() float64 {
	switch t {
	case WindowDouble, WindowPicture:
		return 2.0
	case WindowTriple:
		return 3.0
	default:
		return 1.0
	}
}

// Window is a wall-mounted window opening.
type Window struct {
	ID uuid.UUID `json:"id"`
	WallAnchor
	Type WindowType `json:"type"`
}

// NewWindow creates a window of the given type at offset on wall wallIndex,
// with the type's default width.
func NewWindow(wallIndex int, offset float64, t WindowType) *Window {
	return &Window{
		ID:         uuid.New(),
		WallAnchor: WallAnchor{WallIndex: wallIndex, Offset: clamp01(offset), Length: t.DefaultLength()},
		Type:       t,
	}
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
