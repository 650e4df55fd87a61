package editor

import (
	"testing"

	"github.com/openfloor/planner/pkg/geo"
)

func TestWallDragParallelProjection(t *testing.T) {
	fp := newWithRoom(t)
	fp.SelectRoomAt(geo.Pt(2, 1.5))
	fp.SelectWallAt(geo.Pt(2, -0.1), 0.5) // bottom wall (0,0)-(4,0)

	d := fp.BeginWallResize(false)
	if d == nil {
		t.Fatal("expected drag to start")
	}
	// The tangential x component must be ignored; only the normal-projected
	// y component moves the wall.
	d.Update(geo.Pt(1.3, -0.7))
	room := fp.CurrentFloor().Rooms[0]
	if !approxPt(room.Vertices[0], geo.Pt(0, -0.7)) {
		t.Errorf("expected (0,-0.7), got %+v", room.Vertices[0])
	}
	if !approxPt(room.Vertices[1], geo.Pt(4, -0.7)) {
		t.Errorf("expected (4,-0.7), got %+v", room.Vertices[1])
	}
	d.End()
}

func TestWallDragDeltasAreAbsolute(t *testing.T) {
	fp := newWithRoom(t)
	fp.SelectRoomAt(geo.Pt(2, 1.5))
	fp.SelectWallAt(geo.Pt(2, -0.1), 0.5)

	d := fp.BeginWallResize(false)
	// Updates carry the accumulated delta from gesture start, so repeated
	// calls must not compound.
	d.Update(geo.Pt(0, -0.5))
	d.Update(geo.Pt(0, -0.5))
	room := fp.CurrentFloor().Rooms[0]
	if !approxPt(room.Vertices[0], geo.Pt(0, -0.5)) {
		t.Errorf("expected (0,-0.5), got %+v", room.Vertices[0])
	}
}

func TestWallDragEndHardSnaps(t *testing.T) {
	fp := newWithRoom(t)
	fp.SelectRoomAt(geo.Pt(2, 1.5))
	fp.SelectWallAt(geo.Pt(2, -0.1), 0.5)

	d := fp.BeginWallResize(true)
	d.Update(geo.Pt(0, -0.7))
	d.End()
	room := fp.CurrentFloor().Rooms[0]
	if !approxPt(room.Vertices[0], geo.Pt(0, -1)) {
		t.Errorf("expected hard-snapped (0,-1), got %+v", room.Vertices[0])
	}
	if !approxPt(room.Vertices[1], geo.Pt(4, -1)) {
		t.Errorf("expected hard-snapped (4,-1), got %+v", room.Vertices[1])
	}
}

func TestWallDragRequiresSelection(t *testing.T) {
	fp := newWithRoom(t)
	if fp.BeginWallResize(false) != nil {
		t.Error("expected nil drag without a wall selection")
	}
}

func TestWallDragAbandonedIsUndoable(t *testing.T) {
	fp := newWithRoom(t)
	fp.SelectRoomAt(geo.Pt(2, 1.5))
	fp.SelectWallAt(geo.Pt(2, -0.1), 0.5)

	d := fp.BeginWallResize(false)
	d.Update(geo.Pt(0, -0.7))
	// The interaction layer abandons the gesture without calling End; the
	// snapshot pushed at Begin restores the pre-drag state.
	fp.Undo()
	room := fp.CurrentFloor().Rooms[0]
	if !approxPt(room.Vertices[0], geo.Pt(0, 0)) {
		t.Errorf("expected pre-drag (0,0), got %+v", room.Vertices[0])
	}
}

func TestRoomDragSnapOnEnd(t *testing.T) {
	fp := newWithRoom(t)
	fp.SelectRoomAt(geo.Pt(2, 1.5))

	d := fp.BeginRoomMove()
	if d == nil {
		t.Fatal("expected drag to start")
	}
	d.Update(geo.Pt(1, 0))
	d.Update(geo.Pt(2.05, 0.95)) // accumulated, not compounded
	d.End()
	room := fp.CurrentFloor().Rooms[0]
	if !approxPt(room.Vertices[0], geo.Pt(2, 1)) {
		t.Errorf("expected snapped (2,1), got %+v", room.Vertices[0])
	}
}

func TestRoomDragMovesStairs(t *testing.T) {
	fp := newWithRoom(t)
	fp.SelectRoomAt(geo.Pt(2, 1.5))
	fp.AddStairs(geo.Pt(2, 1.5), 3, 1, 12, true)

	d := fp.BeginRoomMove()
	d.Update(geo.Pt(1, 1))
	d.End()
	s := fp.CurrentFloor().Rooms[0].Stairs[0]
	if !approxPt(s.Center, geo.Pt(3, 2.5)) {
		t.Errorf("expected stairs at (3,2.5), got %+v", s.Center)
	}
}

func TestRoomDragMultiSelectStaysRigid(t *testing.T) {
	fp := New(0)
	fp.AddRoom(rect())
	fp.AddRoom([]geo.Point2D{geo.Pt(10, 0.2), geo.Pt(12, 0.2), geo.Pt(12, 2.2), geo.Pt(10, 2.2)})
	for _, r := range fp.CurrentFloor().Rooms {
		fp.ToggleRoomSelection(r.ID)
	}

	d := fp.BeginRoomMove()
	d.Update(geo.Pt(0.5, 0.1))
	d.End()

	// One shared correction for the whole set: x offsets of 0.5 are outside
	// tolerance, so x stays; in y the first room's -0.1 offset beats the
	// second room's -0.3, and both rooms receive the same -0.1 pull.
	r1 := fp.CurrentFloor().Rooms[0]
	r2 := fp.CurrentFloor().Rooms[1]
	if !approxPt(r1.Vertices[0], geo.Pt(0.5, 0)) {
		t.Errorf("room 1: expected (0.5,0), got %+v", r1.Vertices[0])
	}
	if !approxPt(r2.Vertices[0], geo.Pt(10.5, 0.2)) {
		t.Errorf("room 2: expected (10.5,0.2), got %+v", r2.Vertices[0])
	}
}
