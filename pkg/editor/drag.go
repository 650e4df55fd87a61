package editor

import (
	"github.com/openfloor/planner/pkg/geo"
	"github.com/openfloor/planner/pkg/plan"
	"github.com/openfloor/planner/pkg/snap"
)

// WallDrag tracks an in-flight wall-resize gesture: moving one wall parallel
// to itself. The wall normal is captured once at gesture start from the
// starting vertex positions and never recomputed, so the wall cannot drift
// or oscillate as it moves. Tangential drag components are ignored.
type WallDrag struct {
	fp             *Floorplan
	room           *plan.Room
	wall           int
	normal         geo.Point2D
	startA, startB geo.Point2D
	snapHard       bool
}

// BeginWallResize starts a resize drag on the selected wall of the active
// room. The pre-drag state is pushed to history immediately; an abandoned
// gesture is recovered with Undo. Returns nil when no wall is selected or
// the edge is degenerate.
func (fp *Floorplan) BeginWallResize(snapHard bool) *WallDrag {
	room := fp.ActiveRoom()
	if room == nil || fp.selectedWall < 0 || fp.selectedWall >= len(room.Vertices) || len(room.Vertices) < 2 {
		return nil
	}
	a, b := room.Edge(fp.selectedWall)
	dir := b.Sub(a)
	if dir.Length() < 1e-12 {
		return nil
	}
	fp.saveHistory()
	return &WallDrag{
		fp:       fp,
		room:     room,
		wall:     fp.selectedWall,
		normal:   dir.Perp().Normalize(),
		startA:   a,
		startB:   b,
		snapHard: snapHard,
	}
}

// Update positions the wall for the accumulated drag delta since gesture
// start. The delta is projected onto the captured normal; both endpoints
// move by the same projected offset, keeping the wall straight.
func (d *WallDrag) Update(delta geo.Point2D) {
	offset := d.normal.Scale(delta.Dot(d.normal))
	n := len(d.room.Vertices)
	d.room.Vertices[d.wall] = d.startA.Add(offset)
	d.room.Vertices[(d.wall+1)%n] = d.startB.Add(offset)
	d.fp.notify()
}

// End finalizes the gesture: endpoints are hard-snapped to the grid when the
// drag was started with snapping enabled, and wall types are reclassified.
func (d *WallDrag) End() {
	if d.snapHard {
		n := len(d.room.Vertices)
		i, j := d.wall, (d.wall+1)%n
		d.room.Vertices[i] = snap.HardPoint(d.room.Vertices[i], d.fp.GridStep)
		d.room.Vertices[j] = snap.HardPoint(d.room.Vertices[j], d.fp.GridStep)
	}
	plan.ClassifyFloorWalls(d.fp.CurrentFloor())
	d.fp.notify()
}

// RoomDrag tracks an in-flight whole-room move of the selected rooms.
type RoomDrag struct {
	fp          *Floorplan
	rooms       []*plan.Room
	startVerts  [][]geo.Point2D
	startStairs [][]geo.Point2D
}

// BeginRoomMove starts a move drag over the selected rooms (or the active
// room when the multi-select set is empty). The pre-drag state is pushed to
// history immediately. Returns nil with nothing selected.
func (fp *Floorplan) BeginRoomMove() *RoomDrag {
	rooms := fp.selectedRooms()
	if len(rooms) == 0 {
		return nil
	}
	fp.saveHistory()
	d := &RoomDrag{fp: fp, rooms: rooms}
	for _, r := range rooms {
		d.startVerts = append(d.startVerts, append([]geo.Point2D(nil), r.Vertices...))
		centers := make([]geo.Point2D, len(r.Stairs))
		for i, s := range r.Stairs {
			centers[i] = s.Center
		}
		d.startStairs = append(d.startStairs, centers)
	}
	return d
}

// Update positions every dragged room for the accumulated delta since
// gesture start. Every vertex receives the same delta.
func (d *RoomDrag) Update(delta geo.Point2D) {
	for ri, r := range d.rooms {
		for vi := range r.Vertices {
			r.Vertices[vi] = d.startVerts[ri][vi].Add(delta)
		}
		for si, s := range r.Stairs {
			s.Center = d.startStairs[ri][si].Add(delta)
		}
	}
	d.fp.notify()
}

// End finalizes the move: the translation-consistent soft-snap correction is
// computed across all dragged vertices and applied uniformly, then wall
// types are reclassified.
func (d *RoomDrag) End() {
	var all []geo.Point2D
	for _, r := range d.rooms {
		all = append(all, r.Vertices...)
	}
	corr := snap.TranslationCorrection(all, d.fp.GridStep, d.fp.SnapTolerance)
	if corr.X != 0 || corr.Y != 0 {
		for _, r := range d.rooms {
			r.Translate(corr)
		}
	}
	plan.ClassifyFloorWalls(d.fp.CurrentFloor())
	d.fp.notify()
}
