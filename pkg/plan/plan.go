// Package plan defines the floor-plan domain model: floors, rooms, wall
// types, wall attachments (doors and windows), and stairs. All coordinates
// are model-space meters.
package plan

import (
	"github.com/google/uuid"

	"github.com/openfloor/planner/pkg/geo"
)

// WallType classifies a room edge as an interior partition or an exterior
// boundary. The string values are part of the project wire format.
type WallType string

const (
	WallInternal WallType = "internalWall"
	WallExternal WallType = "externalWall"
)

// Floor is one level of a project: a named, ordered collection of rooms.
type Floor struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Rooms []*Room   `json:"rooms"`
}

// NewFloor creates an empty floor with a fresh identity.
func NewFloor(name string) *Floor {
	return &Floor{
		ID:    uuid.New(),
		Name:  name,
		Rooms: []*Room{},
	}
}

// Clone returns a deep copy of the floor, preserving all identities.
func (f *Floor) Clone() *Floor {
	rooms := make([]*Room, len(f.Rooms))
	for i, r := range f.Rooms {
		rooms[i] = r.Clone()
	}
	return &Floor{ID: f.ID, Name: f.Name, Rooms: rooms}
}

// RoomByID returns the room with the given id, or nil.
func (f *Floor) RoomByID(id uuid.UUID) *Room {
	for _, r := range f.Rooms {
		if r.ID == id {
			return r
		}
	}
	return nil
}

// RemoveRoom deletes the room with the given id from the floor.
// Returns true if a room was removed.
func (f *Floor) RemoveRoom(id uuid.UUID) bool {
	for i, r := range f.Rooms {
		if r.ID == id {
			f.Rooms = append(f.Rooms[:i], f.Rooms[i+1:]...)
			return true
		}
	}
	return false
}

// CloneFloors deep-copies a floor list. Used for history snapshots and
// export isolation.
func CloneFloors(floors []*Floor) []*Floor {
	out := make([]*Floor, len(floors))
	for i, f := range floors {
		out[i] = f.Clone()
	}
	return out
}

// BoundingBox returns the axis-aligned bounding box of every room vertex on
// every given floor. ok is false when no vertices exist anywhere.
func BoundingBox(floors []*Floor) (min, max geo.Point2D, ok bool) {
	first := true
	for _, f := range floors {
		for _, r := range f.Rooms {
			for _, v := range r.Vertices {
				if first {
					min, max = v, v
					first = false
					continue
				}
				if v.X < min.X {
					min.X = v.X
				}
				if v.Y < min.Y {
					min.Y = v.Y
				}
				if v.X > max.X {
					max.X = v.X
				}
				if v.Y > max.Y {
					max.Y = v.Y
				}
			}
		}
	}
	return min, max, !first
}
