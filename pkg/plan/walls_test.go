package plan

import (
	"testing"

	"github.com/openfloor/planner/pkg/geo"
)

func squareRoom(x, y float64) *Room {
	return NewRoom("", []geo.Point2D{
		geo.Pt(x, y), geo.Pt(x+1, y), geo.Pt(x+1, y+1), geo.Pt(x, y+1),
	})
}

func TestClassifySharedWall(t *testing.T) {
	f := NewFloor("Ground")
	left := squareRoom(0, 0)
	right := squareRoom(1, 0) // shares the x=1 edge with left
	f.Rooms = append(f.Rooms, left, right)

	ClassifyFloorWalls(f)

	// left edge 1 runs (1,0)->(1,1); right edge 3 runs (1,1)->(1,0).
	if left.WallTypes[1] != WallInternal {
		t.Errorf("left shared wall: expected internal, got %s", left.WallTypes[1])
	}
	if right.WallTypes[3] != WallInternal {
		t.Errorf("right shared wall: expected internal, got %s", right.WallTypes[3])
	}
	for _, i := range []int{0, 2, 3} {
		if left.WallTypes[i] != WallExternal {
			t.Errorf("left wall %d: expected external, got %s", i, left.WallTypes[i])
		}
	}
	for _, i := range []int{0, 1, 2} {
		if right.WallTypes[i] != WallExternal {
			t.Errorf("right wall %d: expected external, got %s", i, right.WallTypes[i])
		}
	}
}

func TestClassifyIsolatedRoomAllExternal(t *testing.T) {
	f := NewFloor("Ground")
	r := squareRoom(0, 0)
	r.WallTypes[0] = WallInternal // stale value that must be rederived
	f.Rooms = append(f.Rooms, r)

	ClassifyFloorWalls(f)

	for i, w := range r.WallTypes {
		if w != WallExternal {
			t.Errorf("wall %d: expected external, got %s", i, w)
		}
	}
}

func TestClassifyIgnoresOtherFloors(t *testing.T) {
	ground := NewFloor("Ground")
	upper := NewFloor("Upper")
	a := squareRoom(0, 0)
	b := squareRoom(1, 0) // would share a wall with a, but lives upstairs
	ground.Rooms = append(ground.Rooms, a)
	upper.Rooms = append(upper.Rooms, b)

	ClassifyWalls([]*Floor{ground, upper})

	for i, w := range a.WallTypes {
		if w != WallExternal {
			t.Errorf("wall %d: expected external (other room is on another floor), got %s", i, w)
		}
	}
}

func TestClassifyRepairsDriftedWallTypes(t *testing.T) {
	f := NewFloor("Ground")
	r := squareRoom(0, 0)
	r.WallTypes = r.WallTypes[:2] // simulate drift after a vertex edit
	f.Rooms = append(f.Rooms, r)

	ClassifyFloorWalls(f)

	if len(r.WallTypes) != 4 {
		t.Fatalf("expected wall types resynthesized to 4, got %d", len(r.WallTypes))
	}
}
