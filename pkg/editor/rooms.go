package editor

import (
	"math"

	"github.com/google/uuid"

	"github.com/openfloor/planner/pkg/geo"
	"github.com/openfloor/planner/pkg/plan"
	"github.com/openfloor/planner/pkg/snap"
)

// duplicateOffset is how far a duplicated room is shifted in both axes.
const duplicateOffset = 2.0

// AddRoom appends a new room over the given vertices to the current floor,
// with default external walls and a random pastel fill.
func (fp *Floorplan) AddRoom(vertices []geo.Point2D) bool {
	if len(vertices) == 0 {
		return false
	}
	fp.saveHistory()
	fp.CurrentFloor().Rooms = append(fp.CurrentFloor().Rooms, plan.NewRoom("", vertices))
	plan.ClassifyFloorWalls(fp.CurrentFloor())
	fp.notify()
	return true
}

// AddRectRoom appends an axis-aligned rectangular room of the given size
// centered at center.
func (fp *Floorplan) AddRectRoom(center geo.Point2D, width, height float64) bool {
	if width <= 0 || height <= 0 {
		return false
	}
	return fp.AddRoom(plan.RectVertices(center, width, height))
}

// DeleteSelectedRooms removes every room in the multi-select set from the
// current floor and clears the selection.
func (fp *Floorplan) DeleteSelectedRooms() bool {
	rooms := fp.selectedRooms()
	if len(fp.selected) == 0 || len(rooms) == 0 {
		return false
	}
	fp.saveHistory()
	for _, r := range rooms {
		fp.CurrentFloor().RemoveRoom(r.ID)
	}
	fp.ClearSelection()
	plan.ClassifyFloorWalls(fp.CurrentFloor())
	fp.notify()
	return true
}

// DeleteSelectedRoom removes the active room and clears the selection.
func (fp *Floorplan) DeleteSelectedRoom() bool {
	room := fp.ActiveRoom()
	if room == nil {
		return false
	}
	fp.saveHistory()
	fp.CurrentFloor().RemoveRoom(room.ID)
	fp.ClearSelection()
	plan.ClassifyFloorWalls(fp.CurrentFloor())
	fp.notify()
	return true
}

// RenameSelectedRoom sets the active room's name.
func (fp *Floorplan) RenameSelectedRoom(name string) bool {
	room := fp.ActiveRoom()
	if room == nil || room.Name == name {
		return false
	}
	fp.saveHistory()
	room.Name = name
	fp.notify()
	return true
}

// SetSelectedWallType overrides the wall type of the selected wall on the
// active room. The wall-type list is resynthesized first if its length has
// drifted from the vertex count.
func (fp *Floorplan) SetSelectedWallType(t plan.WallType) bool {
	room := fp.ActiveRoom()
	if room == nil || fp.selectedWall < 0 || fp.selectedWall >= len(room.Vertices) {
		return false
	}
	fp.saveHistory()
	room.EnsureWallTypes()
	room.WallTypes[fp.selectedWall] = t
	fp.notify()
	return true
}

// AddDoor attaches a door of the given type to the selected wall of the
// active room, centered at the fractional offset along the edge.
func (fp *Floorplan) AddDoor(offset float64, t plan.DoorType) bool {
	room := fp.ActiveRoom()
	if room == nil || fp.selectedWall < 0 || fp.selectedWall >= len(room.Vertices) {
		return false
	}
	fp.saveHistory()
	room.Doors = append(room.Doors, plan.NewDoor(fp.selectedWall, offset, t))
	fp.notify()
	return true
}

// AddWindow attaches a window of the given type to the selected wall of the
// active room.
func (fp *Floorplan) AddWindow(offset float64, t plan.WindowType) bool {
	room := fp.ActiveRoom()
	if room == nil || fp.selectedWall < 0 || fp.selectedWall >= len(room.Vertices) {
		return false
	}
	fp.saveHistory()
	room.Windows = append(room.Windows, plan.NewWindow(fp.selectedWall, offset, t))
	fp.notify()
	return true
}

// RemoveDoor deletes one door from a room on the current floor.
func (fp *Floorplan) RemoveDoor(roomID, doorID uuid.UUID) bool {
	room := fp.CurrentFloor().RoomByID(roomID)
	if room == nil {
		return false
	}
	for i, d := range room.Doors {
		if d.ID == doorID {
			fp.saveHistory()
			room.Doors = append(room.Doors[:i], room.Doors[i+1:]...)
			fp.notify()
			return true
		}
	}
	return false
}

// RemoveWindow deletes one window from a room on the current floor.
func (fp *Floorplan) RemoveWindow(roomID, windowID uuid.UUID) bool {
	room := fp.CurrentFloor().RoomByID(roomID)
	if room == nil {
		return false
	}
	for i, w := range room.Windows {
		if w.ID == windowID {
			fp.saveHistory()
			room.Windows = append(room.Windows[:i], room.Windows[i+1:]...)
			fp.notify()
			return true
		}
	}
	return false
}

// DuplicateSelectedRoom deep-copies the active room with a fresh identity,
// offsets it by a fixed amount in both axes, suffixes the name, and selects
// the duplicate.
func (fp *Floorplan) DuplicateSelectedRoom() bool {
	room := fp.ActiveRoom()
	if room == nil {
		return false
	}
	fp.saveHistory()
	dup := room.Clone()
	dup.ID = uuid.New()
	for _, d := range dup.Doors {
		d.ID = uuid.New()
	}
	for _, w := range dup.Windows {
		w.ID = uuid.New()
	}
	for _, s := range dup.Stairs {
		s.ID = uuid.New()
	}
	if dup.Name != "" {
		dup.Name += " Copy"
	}
	dup.Translate(geo.Pt(duplicateOffset, duplicateOffset))
	fp.CurrentFloor().Rooms = append(fp.CurrentFloor().Rooms, dup)
	fp.activeRoom = dup.ID
	fp.selected = map[uuid.UUID]struct{}{dup.ID: {}}
	fp.selectedWall = -1
	plan.ClassifyFloorWalls(fp.CurrentFloor())
	fp.notify()
	return true
}

// RotateSelectedRoom rotates the active room 90 degrees counterclockwise
// about the arithmetic mean of its vertices. Stairs rotate with the room.
func (fp *Floorplan) RotateSelectedRoom() bool {
	room := fp.ActiveRoom()
	if room == nil || len(room.Vertices) == 0 {
		return false
	}
	fp.saveHistory()
	pivot := room.Polygon().VertexMean()
	for i, v := range room.Vertices {
		room.Vertices[i] = v.RotateAround(pivot, math.Pi/2)
	}
	for _, s := range room.Stairs {
		s.Center = s.Center.RotateAround(pivot, math.Pi/2)
		s.Rotation += math.Pi / 2
	}
	plan.ClassifyFloorWalls(fp.CurrentFloor())
	fp.notify()
	return true
}

// SetWallLength stretches or shrinks one edge of a room to the target length
// by moving one endpoint along the edge's current direction. anchorAtStart
// holds the edge's start vertex fixed and moves the end vertex; otherwise the
// end vertex is held. No-ops on a non-positive target or a zero-length edge.
func (fp *Floorplan) SetWallLength(roomID uuid.UUID, wallIndex int, newLength float64, anchorAtStart bool) bool {
	room := fp.CurrentFloor().RoomByID(roomID)
	if room == nil || newLength <= 0 {
		return false
	}
	n := len(room.Vertices)
	if n < 2 || wallIndex < 0 || wallIndex >= n {
		return false
	}
	i, j := wallIndex, (wallIndex+1)%n
	a, b := room.Vertices[i], room.Vertices[j]
	dir := b.Sub(a)
	if dir.Length() < 1e-12 {
		return false
	}
	unit := dir.Normalize()
	fp.saveHistory()
	if anchorAtStart {
		room.Vertices[j] = a.Add(unit.Scale(newLength))
	} else {
		room.Vertices[i] = b.Sub(unit.Scale(newLength))
	}
	plan.ClassifyFloorWalls(fp.CurrentFloor())
	fp.notify()
	return true
}

// MoveSelectedRooms translates every selected room by delta in one step, then
// applies the translation-consistent soft-snap correction: the single best
// per-axis pull to the grid across all moved vertices, applied uniformly so
// the shapes stay rigid.
func (fp *Floorplan) MoveSelectedRooms(delta geo.Point2D) bool {
	rooms := fp.selectedRooms()
	if len(rooms) == 0 {
		return false
	}
	fp.saveHistory()
	for _, r := range rooms {
		r.Translate(delta)
	}
	var all []geo.Point2D
	for _, r := range rooms {
		all = append(all, r.Vertices...)
	}
	corr := snap.TranslationCorrection(all, fp.GridStep, fp.SnapTolerance)
	if corr.X != 0 || corr.Y != 0 {
		for _, r := range rooms {
			r.Translate(corr)
		}
	}
	plan.ClassifyFloorWalls(fp.CurrentFloor())
	fp.notify()
	return true
}

// AddStairs places a staircase in the active room.
func (fp *Floorplan) AddStairs(center geo.Point2D, length, width float64, steps int, up bool) bool {
	room := fp.ActiveRoom()
	if room == nil || length <= 0 || width <= 0 {
		return false
	}
	fp.saveHistory()
	room.Stairs = append(room.Stairs, plan.NewStairs(center, length, width, steps, up))
	fp.notify()
	return true
}

// RemoveStairs deletes one staircase from a room on the current floor.
func (fp *Floorplan) RemoveStairs(roomID, stairsID uuid.UUID) bool {
	room := fp.CurrentFloor().RoomByID(roomID)
	if room == nil {
		return false
	}
	for i, s := range room.Stairs {
		if s.ID == stairsID {
			fp.saveHistory()
			room.Stairs = append(room.Stairs[:i], room.Stairs[i+1:]...)
			fp.notify()
			return true
		}
	}
	return false
}

// UpdateStairs applies relative translation, rotation, and scale deltas to a
// staircase. Nil deltas leave the corresponding component unchanged; the
// scale factor is floored so stairs can never collapse or invert.
func (fp *Floorplan) UpdateStairs(roomID, stairsID uuid.UUID, delta *geo.Point2D, rotation, scale *float64) bool {
	room := fp.CurrentFloor().RoomByID(roomID)
	if room == nil {
		return false
	}
	s := room.StairsByID(stairsID)
	if s == nil {
		return false
	}
	if delta == nil && rotation == nil && scale == nil {
		return false
	}
	fp.saveHistory()
	s.ApplyDelta(delta, rotation, scale)
	fp.notify()
	return true
}

// selectedRooms resolves the multi-select set (falling back to the active
// room) against the current floor.
func (fp *Floorplan) selectedRooms() []*plan.Room {
	var rooms []*plan.Room
	if len(fp.selected) > 0 {
		for _, r := range fp.CurrentFloor().Rooms {
			if _, ok := fp.selected[r.ID]; ok {
				rooms = append(rooms, r)
			}
		}
		return rooms
	}
	if r := fp.ActiveRoom(); r != nil {
		rooms = append(rooms, r)
	}
	return rooms
}
