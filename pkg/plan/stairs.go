package plan

import (
	"github.com/google/uuid"

	"github.com/openfloor/planner/pkg/geo"
)

// MinStairsScale floors the relative scale factor applied to stairs so a
// pinch can never collapse or invert them.
const MinStairsScale = 0.01

// Stairs is a staircase owned by exactly one room.
type Stairs struct {
	ID       uuid.UUID   `json:"id"`
	Center   geo.Point2D `json:"center"`
	Length   float64     `json:"length"`
	Width    float64     `json:"width"`
	Steps    int         `json:"steps"`
	Up       bool        `json:"up"`
	Rotation float64     `json:"rotation"`
}

// NewStairs creates a staircase centered at center.
func NewStairs(center geo.Point2D, length, width float64, steps int, up bool) *Stairs {
	if steps < 1 {
		steps = 1
	}
	return &Stairs{
		ID:     uuid.New(),
		Center: center,
		Length: length,
		Width:  width,
		Steps:  steps,
		Up:     up,
	}
}

// ApplyDelta updates the stairs relative to its current state: an optional
// translation, rotation increment, and scale factor. Scale is floored at
// MinStairsScale.
func (s *Stairs) ApplyDelta(delta *geo.Point2D, rotation *float64, scale *float64) {
	if delta != nil {
		s.Center = s.Center.Add(*delta)
	}
	if rotation != nil {
		s.Rotation += *rotation
	}
	if scale != nil {
		f := *scale
		if f < MinStairsScale {
			f = MinStairsScale
		}
		s.Length *= f
		s.Width *= f
	}
}
