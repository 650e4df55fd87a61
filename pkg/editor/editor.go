// Package editor implements the floor-plan editing engine: it owns the floor
// set, the transient selection state, and every mutating operation. All
// coordinates entering the engine are model-space meters; converting from
// screen space is the interaction layer's job.
//
// Failure semantics: operations on a missing selection, an invalid index, or
// degenerate geometry are no-ops and return false. Nothing in this package
// panics or returns errors for user input.
package editor

import (
	"github.com/google/uuid"

	"github.com/openfloor/planner/pkg/geo"
	"github.com/openfloor/planner/pkg/history"
	"github.com/openfloor/planner/pkg/plan"
	"github.com/openfloor/planner/pkg/snap"
)

// Floorplan is the editing engine for one project. One instance per
// session/document; it is not safe for concurrent use.
type Floorplan struct {
	floors  []*plan.Floor
	current int

	activeRoom   uuid.UUID
	selected     map[uuid.UUID]struct{}
	selectedWall int

	hist *history.History

	// GridStep and SnapTolerance parameterize the snapping subsystem.
	GridStep      float64
	SnapTolerance float64

	// OnChange, if set, fires after every successful mutation. Observers
	// re-read state from the accessors; the engine itself never renders.
	OnChange func()
}

// New creates a plan with one default floor. historyLimit bounds the undo
// depth; zero keeps every snapshot.
func New(historyLimit int) *Floorplan {
	return &Floorplan{
		floors:        []*plan.Floor{plan.NewFloor("Floor 1")},
		selected:      map[uuid.UUID]struct{}{},
		selectedWall:  -1,
		hist:          history.New(historyLimit),
		GridStep:      snap.DefaultStep,
		SnapTolerance: snap.DefaultTolerance,
	}
}

// Floors returns the live floor set, for read-only observation and export.
func (fp *Floorplan) Floors() []*plan.Floor {
	return fp.floors
}

// CurrentFloorIndex returns the index of the current floor.
func (fp *Floorplan) CurrentFloorIndex() int {
	return fp.current
}

// CurrentFloor returns the current floor.
func (fp *Floorplan) CurrentFloor() *plan.Floor {
	return fp.floors[fp.current]
}

// ActiveRoom returns the single-target room, or nil if none is active.
func (fp *Floorplan) ActiveRoom() *plan.Room {
	if fp.activeRoom == uuid.Nil {
		return nil
	}
	return fp.CurrentFloor().RoomByID(fp.activeRoom)
}

// SelectedRoomIDs returns the multi-select set.
func (fp *Floorplan) SelectedRoomIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(fp.selected))
	for id := range fp.selected {
		ids = append(ids, id)
	}
	return ids
}

// SelectedWall returns the selected wall index on the active room.
func (fp *Floorplan) SelectedWall() (int, bool) {
	if fp.selectedWall < 0 {
		return 0, false
	}
	return fp.selectedWall, true
}

func (fp *Floorplan) notify() {
	if fp.OnChange != nil {
		fp.OnChange()
	}
}

func (fp *Floorplan) saveHistory() {
	fp.hist.Save(fp.floors)
}

// ClearSelection drops the active room, the multi-select set, and the wall
// selection. Called whenever a referenced room, wall, or floor goes away.
func (fp *Floorplan) ClearSelection() {
	fp.activeRoom = uuid.Nil
	fp.selected = map[uuid.UUID]struct{}{}
	fp.selectedWall = -1
}

// --- Selection ---

// SelectRoomAt selects the topmost room containing p on the current floor.
// Rooms are scanned in reverse z-order so the last-added room wins. With no
// hit, the selection is cleared. Returns whether a room was hit.
func (fp *Floorplan) SelectRoomAt(p geo.Point2D) bool {
	rooms := fp.CurrentFloor().Rooms
	for i := len(rooms) - 1; i >= 0; i-- {
		if rooms[i].Contains(p) {
			fp.activeRoom = rooms[i].ID
			fp.selected = map[uuid.UUID]struct{}{rooms[i].ID: {}}
			fp.selectedWall = -1
			return true
		}
	}
	fp.ClearSelection()
	return false
}

// ToggleRoomSelection adds or removes a room from the multi-select set. The
// most recently toggled-on room becomes the active room.
func (fp *Floorplan) ToggleRoomSelection(id uuid.UUID) bool {
	if fp.CurrentFloor().RoomByID(id) == nil {
		return false
	}
	if _, ok := fp.selected[id]; ok {
		delete(fp.selected, id)
		if fp.activeRoom == id {
			fp.activeRoom = uuid.Nil
			fp.selectedWall = -1
		}
		return true
	}
	fp.selected[id] = struct{}{}
	fp.activeRoom = id
	fp.selectedWall = -1
	return true
}

// SelectWallAt selects the wall of the active room nearest to p, within
// threshold. Returns whether a wall was selected.
func (fp *Floorplan) SelectWallAt(p geo.Point2D, threshold float64) bool {
	room := fp.ActiveRoom()
	if room == nil {
		return false
	}
	idx, ok := room.Polygon().NearestEdge(p, threshold)
	if !ok {
		fp.selectedWall = -1
		return false
	}
	fp.selectedWall = idx
	return true
}

// --- Floors ---

// AddFloor appends a new floor, makes it current, and clears the selection.
func (fp *Floorplan) AddFloor(name string) bool {
	fp.saveHistory()
	fp.floors = append(fp.floors, plan.NewFloor(name))
	fp.current = len(fp.floors) - 1
	fp.ClearSelection()
	fp.notify()
	return true
}

// DeleteCurrentFloor removes the current floor. The floor count never drops
// below one; deleting the last floor is a no-op.
func (fp *Floorplan) DeleteCurrentFloor() bool {
	if len(fp.floors) <= 1 {
		return false
	}
	fp.saveHistory()
	fp.floors = append(fp.floors[:fp.current], fp.floors[fp.current+1:]...)
	if fp.current >= len(fp.floors) {
		fp.current = len(fp.floors) - 1
	}
	fp.ClearSelection()
	fp.notify()
	return true
}

// SetCurrentFloor switches the current floor and clears the selection.
// Switching floors is transient UI state and is not undoable.
func (fp *Floorplan) SetCurrentFloor(i int) bool {
	if i < 0 || i >= len(fp.floors) || i == fp.current {
		return false
	}
	fp.current = i
	fp.ClearSelection()
	fp.notify()
	return true
}

// RenameCurrentFloor sets the current floor's name.
func (fp *Floorplan) RenameCurrentFloor(name string) bool {
	f := fp.CurrentFloor()
	if f.Name == name {
		return false
	}
	fp.saveHistory()
	f.Name = name
	fp.notify()
	return true
}

// --- History ---

// Undo restores the most recent snapshot. The selection is cleared and the
// current floor index clamped into bounds.
func (fp *Floorplan) Undo() bool {
	restored, ok := fp.hist.Undo(fp.floors)
	if !ok {
		return false
	}
	fp.restore(restored)
	return true
}

// Redo restores the most recently undone state.
func (fp *Floorplan) Redo() bool {
	restored, ok := fp.hist.Redo(fp.floors)
	if !ok {
		return false
	}
	fp.restore(restored)
	return true
}

// CanUndo reports whether an undo snapshot exists.
func (fp *Floorplan) CanUndo() bool {
	return fp.hist.CanUndo()
}

// CanRedo reports whether a redo snapshot exists.
func (fp *Floorplan) CanRedo() bool {
	return fp.hist.CanRedo()
}

func (fp *Floorplan) restore(floors []*plan.Floor) {
	fp.floors = floors
	if fp.current >= len(fp.floors) {
		fp.current = len(fp.floors) - 1
	}
	fp.ClearSelection()
	fp.notify()
}

// Load replaces the entire floor set, resets the current floor into bounds,
// and clears all history and selection. Used by project loading; the caller
// guarantees the floor list is non-empty and already validated.
func (fp *Floorplan) Load(floors []*plan.Floor) bool {
	if len(floors) == 0 {
		return false
	}
	fp.floors = floors
	fp.current = 0
	plan.ClassifyWalls(fp.floors)
	fp.hist.Clear()
	fp.ClearSelection()
	fp.notify()
	return true
}
