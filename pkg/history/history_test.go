package history

import (
	"testing"

	"github.com/openfloor/planner/pkg/geo"
	"github.com/openfloor/planner/pkg/plan"
)

func floorsWithRoomAt(x float64) []*plan.Floor {
	f := plan.NewFloor("Ground")
	f.Rooms = append(f.Rooms, plan.NewRectRoom("", geo.Pt(x, 0), 2, 2))
	return []*plan.Floor{f}
}

func TestUndoRestoresSnapshot(t *testing.T) {
	h := New(0)
	state := floorsWithRoomAt(0)
	h.Save(state)
	state[0].Rooms[0].Translate(geo.Pt(5, 0))

	restored, ok := h.Undo(state)
	if !ok {
		t.Fatal("expected undo to succeed")
	}
	if got := restored[0].Rooms[0].Vertices[0].X; got != -1 {
		t.Errorf("expected pre-mutation vertex x=-1, got %f", got)
	}
	if !h.CanRedo() {
		t.Error("expected redo available after undo")
	}
}

func TestRedoRestoresMutatedState(t *testing.T) {
	h := New(0)
	state := floorsWithRoomAt(0)
	h.Save(state)
	state[0].Rooms[0].Translate(geo.Pt(5, 0))

	restored, _ := h.Undo(state)
	redone, ok := h.Redo(restored)
	if !ok {
		t.Fatal("expected redo to succeed")
	}
	if got := redone[0].Rooms[0].Vertices[0].X; got != 4 {
		t.Errorf("expected mutated vertex x=4, got %f", got)
	}
}

func TestSaveClearsRedo(t *testing.T) {
	h := New(0)
	state := floorsWithRoomAt(0)
	h.Save(state)
	restored, _ := h.Undo(state)

	h.Save(restored) // a fresh edit after undo invalidates redo
	if h.CanRedo() {
		t.Error("expected redo stack cleared by new save")
	}
	if _, ok := h.Redo(restored); ok {
		t.Error("expected redo to be a no-op")
	}
}

func TestUndoEmptyIsNoop(t *testing.T) {
	h := New(0)
	if _, ok := h.Undo(floorsWithRoomAt(0)); ok {
		t.Error("expected undo on empty history to fail")
	}
}

func TestSnapshotsAreIsolated(t *testing.T) {
	h := New(0)
	state := floorsWithRoomAt(0)
	h.Save(state)
	// Mutating the live state must not leak into the saved snapshot.
	state[0].Rooms[0].Vertices[0].X = 99

	restored, _ := h.Undo(state)
	if restored[0].Rooms[0].Vertices[0].X == 99 {
		t.Error("snapshot shares storage with live state")
	}
}

func TestLimitBoundsUndoDepth(t *testing.T) {
	h := New(3)
	for i := 0; i < 10; i++ {
		h.Save(floorsWithRoomAt(float64(i)))
	}
	count := 0
	state := floorsWithRoomAt(99)
	for {
		restored, ok := h.Undo(state)
		if !ok {
			break
		}
		state = restored
		count++
	}
	if count != 3 {
		t.Errorf("expected undo depth capped at 3, got %d", count)
	}
}

func TestClear(t *testing.T) {
	h := New(0)
	h.Save(floorsWithRoomAt(0))
	h.Clear()
	if h.CanUndo() || h.CanRedo() {
		t.Error("expected empty stacks after clear")
	}
}
