package plan

import (
	"github.com/google/uuid"

	"github.com/openfloor/planner/pkg/geo"
)

// Room is a polygonal area on a floor. Edge i runs from Vertices[i] to
// Vertices[(i+1) mod n] and carries WallTypes[i]. The fill color is assigned
// once at creation and kept for the life of the room.
type Room struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Vertices  []geo.Point2D `json:"vertices"`
	WallTypes []WallType    `json:"wallTypes"`
	Windows   []*Window     `json:"windows"`
	Doors     []*Door       `json:"doors"`
	Stairs    []*Stairs     `json:"stairs"`
	FillColor FillColor     `json:"fillColor"`
}

// NewRoom creates a room over the given vertices with all walls external and
// a random pastel fill.
func NewRoom(name string, vertices []geo.Point2D) *Room {
	walls := make([]WallType, len(vertices))
	for i := range walls {
		walls[i] = WallExternal
	}
	return &Room{
		ID:        uuid.New(),
		Name:      name,
		Vertices:  append([]geo.Point2D(nil), vertices...),
		WallTypes: walls,
		Windows:   []*Window{},
		Doors:     []*Door{},
		Stairs:    []*Stairs{},
		FillColor: RandomPastel(),
	}
}

// RectVertices returns the counterclockwise vertex ring of an axis-aligned
// rectangle of the given size centered at center.
func RectVertices(center geo.Point2D, width, height float64) []geo.Point2D {
	hw, hh := width/2, height/2
	return []geo.Point2D{
		{X: center.X - hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y - hh},
		{X: center.X + hw, Y: center.Y + hh},
		{X: center.X - hw, Y: center.Y + hh},
	}
}

// NewRectRoom creates an axis-aligned rectangular room of the given size
// centered at center.
func NewRectRoom(name string, center geo.Point2D, width, height float64) *Room {
	return NewRoom(name, RectVertices(center, width, height))
}

// Polygon returns the room outline as a geo.Polygon. The vertex slice is
// shared, not copied.
func (r *Room) Polygon() geo.Polygon {
	return geo.Polygon{Vertices: r.Vertices}
}

// Contains reports whether the point lies inside the room outline.
func (r *Room) Contains(pt geo.Point2D) bool {
	return r.Polygon().Contains(pt)
}

// EdgeCount returns the number of edges (equal to the vertex count for a
// closed polygon).
func (r *Room) EdgeCount() int {
	return len(r.Vertices)
}

// Edge returns the endpoints of edge i. Panics if the room has no vertices.
func (r *Room) Edge(i int) (geo.Point2D, geo.Point2D) {
	return r.Polygon().Edge(i)
}

// EnsureWallTypes resynthesizes the wall-type list if its length has drifted
// from the vertex count, defaulting new entries to external. Existing entries
// are kept where they still correspond to an edge.
func (r *Room) EnsureWallTypes() {
	if len(r.WallTypes) == len(r.Vertices) {
		return
	}
	walls := make([]WallType, len(r.Vertices))
	for i := range walls {
		if i < len(r.WallTypes) {
			walls[i] = r.WallTypes[i]
		} else {
			walls[i] = WallExternal
		}
	}
	r.WallTypes = walls
}

// Translate moves every vertex and every stairs center by delta.
func (r *Room) Translate(delta geo.Point2D) {
	for i := range r.Vertices {
		r.Vertices[i] = r.Vertices[i].Add(delta)
	}
	for _, s := range r.Stairs {
		s.Center = s.Center.Add(delta)
	}
}

// Clone returns a deep copy of the room, preserving all identities.
func (r *Room) Clone() *Room {
	windows := make([]*Window, len(r.Windows))
	for i, w := range r.Windows {
		c := *w
		windows[i] = &c
	}
	doors := make([]*Door, len(r.Doors))
	for i, d := range r.Doors {
		c := *d
		doors[i] = &c
	}
	stairs := make([]*Stairs, len(r.Stairs))
	for i, s := range r.Stairs {
		c := *s
		stairs[i] = &c
	}
	return &Room{
		ID:        r.ID,
		Name:      r.Name,
		Vertices:  append([]geo.Point2D(nil), r.Vertices...),
		WallTypes: append([]WallType(nil), r.WallTypes...),
		Windows:   windows,
		Doors:     doors,
		Stairs:    stairs,
		FillColor: r.FillColor,
	}
}

// StairsByID returns the stairs with the given id, or nil.
func (r *Room) StairsByID(id uuid.UUID) *Stairs {
	for _, s := range r.Stairs {
		if s.ID == id {
			return s
		}
	}
	return nil
}
