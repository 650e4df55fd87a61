package plan

import (
	"math"
	"testing"

	"github.com/openfloor/planner/pkg/geo"
)

func approxEqual(a, b, tol float64) bool {
	return math.Abs(a-b) < tol
}

func TestNewRoomDefaults(t *testing.T) {
	r := NewRoom("Kitchen", []geo.Point2D{geo.Pt(0, 0), geo.Pt(4, 0), geo.Pt(4, 3), geo.Pt(0, 3)})
	if len(r.WallTypes) != 4 {
		t.Fatalf("expected 4 wall types, got %d", len(r.WallTypes))
	}
	for i, w := range r.WallTypes {
		if w != WallExternal {
			t.Errorf("wall %d: expected external by default, got %s", i, w)
		}
	}
	if r.FillColor.B < 0.85 || r.FillColor.S > 0.5 {
		t.Errorf("expected a pastel fill, got %+v", r.FillColor)
	}
}

func TestNewRectRoom(t *testing.T) {
	r := NewRectRoom("", geo.Pt(2, 1), 4, 2)
	want := []geo.Point2D{geo.Pt(0, 0), geo.Pt(4, 0), geo.Pt(4, 2), geo.Pt(0, 2)}
	if len(r.Vertices) != 4 {
		t.Fatalf("expected 4 vertices, got %d", len(r.Vertices))
	}
	for i, v := range r.Vertices {
		if v != want[i] {
			t.Errorf("vertex %d: expected %+v, got %+v", i, want[i], v)
		}
	}
}

func TestEnsureWallTypesResynthesizes(t *testing.T) {
	r := NewRoom("", []geo.Point2D{geo.Pt(0, 0), geo.Pt(1, 0), geo.Pt(1, 1), geo.Pt(0, 1)})
	r.WallTypes[2] = WallInternal
	r.Vertices = append(r.Vertices, geo.Pt(-1, 0.5))
	r.EnsureWallTypes()
	if len(r.WallTypes) != 5 {
		t.Fatalf("expected 5 wall types after resynthesis, got %d", len(r.WallTypes))
	}
	if r.WallTypes[2] != WallInternal {
		t.Error("expected surviving wall type to be kept")
	}
	if r.WallTypes[4] != WallExternal {
		t.Error("expected new wall type to default external")
	}
}

func TestRoomCloneIsDeep(t *testing.T) {
	r := NewRoom("Bed", []geo.Point2D{geo.Pt(0, 0), geo.Pt(4, 0), geo.Pt(4, 3), geo.Pt(0, 3)})
	r.Doors = append(r.Doors, NewDoor(0, 0.5, DoorSingle))
	r.Stairs = append(r.Stairs, NewStairs(geo.Pt(2, 1), 3, 1, 12, true))

	c := r.Clone()
	if c.ID != r.ID {
		t.Error("clone must preserve identity")
	}
	c.Vertices[0] = geo.Pt(99, 99)
	c.Doors[0].Offset = 0.9
	c.Stairs[0].Center = geo.Pt(50, 50)
	if r.Vertices[0] == c.Vertices[0] {
		t.Error("clone shares vertex storage")
	}
	if r.Doors[0].Offset == 0.9 {
		t.Error("clone shares door storage")
	}
	if r.Stairs[0].Center == c.Stairs[0].Center {
		t.Error("clone shares stairs storage")
	}
}

func TestRoomTranslateMovesStairs(t *testing.T) {
	r := NewRoom("", []geo.Point2D{geo.Pt(0, 0), geo.Pt(2, 0), geo.Pt(2, 2), geo.Pt(0, 2)})
	r.Stairs = append(r.Stairs, NewStairs(geo.Pt(1, 1), 2, 1, 10, false))
	r.Translate(geo.Pt(3, 4))
	if r.Vertices[0] != geo.Pt(3, 4) {
		t.Errorf("expected vertex (3,4), got %+v", r.Vertices[0])
	}
	if r.Stairs[0].Center != geo.Pt(4, 5) {
		t.Errorf("expected stairs center (4,5), got %+v", r.Stairs[0].Center)
	}
}

func TestAttachmentDefaults(t *testing.T) {
	tests := []struct {
		name string
		got  float64
		want float64
	}{
		{"door single", DoorSingle.DefaultLength(), 0.9},
		{"door double", DoorDouble.DefaultLength(), 1.8},
		{"door sideLight", DoorSideLight.DefaultLength(), 1.4},
		{"window single", WindowSingle.DefaultLength(), 1.0},
		{"window double", WindowDouble.DefaultLength(), 2.0},
		{"window triple", WindowTriple.DefaultLength(), 3.0},
		{"window picture", WindowPicture.DefaultLength(), 2.0},
	}
	for _, tc := range tests {
		if tc.got != tc.want {
			t.Errorf("%s: expected %.1f, got %.1f", tc.name, tc.want, tc.got)
		}
	}
}

func TestWallAttachmentCapability(t *testing.T) {
	var attachments = []WallAttachment{
		NewDoor(1, 0.25, DoorDouble),
		NewWindow(2, 0.75, WindowTriple),
	}
	if a := attachments[0].Anchor(); a.WallIndex != 1 || a.Length != 1.8 {
		t.Errorf("unexpected door anchor %+v", a)
	}
	if a := attachments[1].Anchor(); a.WallIndex != 2 || a.Length != 3.0 {
		t.Errorf("unexpected window anchor %+v", a)
	}
}

func TestAttachmentOffsetClamped(t *testing.T) {
	d := NewDoor(0, 1.7, DoorSingle)
	if d.Offset != 1 {
		t.Errorf("expected offset clamped to 1, got %f", d.Offset)
	}
	w := NewWindow(0, -0.3, WindowSingle)
	if w.Offset != 0 {
		t.Errorf("expected offset clamped to 0, got %f", w.Offset)
	}
}

func TestStairsApplyDelta(t *testing.T) {
	s := NewStairs(geo.Pt(1, 1), 3, 1, 12, true)
	d := geo.Pt(1, -1)
	rot := math.Pi / 4
	scale := 2.0
	s.ApplyDelta(&d, &rot, &scale)
	if s.Center != geo.Pt(2, 0) {
		t.Errorf("expected center (2,0), got %+v", s.Center)
	}
	if !approxEqual(s.Rotation, math.Pi/4, 1e-9) {
		t.Errorf("expected rotation pi/4, got %f", s.Rotation)
	}
	if s.Length != 6 || s.Width != 2 {
		t.Errorf("expected 6x2, got %fx%f", s.Length, s.Width)
	}
}

func TestStairsScaleFloored(t *testing.T) {
	s := NewStairs(geo.Pt(0, 0), 3, 1, 12, true)
	scale := -5.0
	s.ApplyDelta(nil, nil, &scale)
	if !approxEqual(s.Length, 3*MinStairsScale, 1e-9) {
		t.Errorf("expected length floored at %f, got %f", 3*MinStairsScale, s.Length)
	}
}

func TestFillColorRGBA(t *testing.T) {
	// Pure red: H=0, full saturation and brightness.
	r, g, b, a := (FillColor{H: 0, S: 1, B: 1, A: 0.5}).RGBA()
	if !approxEqual(r, 1, 1e-9) || !approxEqual(g, 0, 1e-9) || !approxEqual(b, 0, 1e-9) {
		t.Errorf("expected (1,0,0), got (%f,%f,%f)", r, g, b)
	}
	if a != 0.5 {
		t.Errorf("expected alpha 0.5, got %f", a)
	}
	// Zero saturation is gray at the brightness level.
	r, g, b, _ = (FillColor{H: 0.37, S: 0, B: 0.8, A: 1}).RGBA()
	if !approxEqual(r, 0.8, 1e-9) || !approxEqual(g, 0.8, 1e-9) || !approxEqual(b, 0.8, 1e-9) {
		t.Errorf("expected gray 0.8, got (%f,%f,%f)", r, g, b)
	}
}

func TestBoundingBoxAcrossFloors(t *testing.T) {
	f1 := NewFloor("Ground")
	f1.Rooms = append(f1.Rooms, NewRoom("", []geo.Point2D{geo.Pt(0, 0), geo.Pt(4, 0), geo.Pt(4, 3), geo.Pt(0, 3)}))
	f2 := NewFloor("First")
	f2.Rooms = append(f2.Rooms, NewRoom("", []geo.Point2D{geo.Pt(-2, 1), geo.Pt(1, 1), geo.Pt(1, 6), geo.Pt(-2, 6)}))

	min, max, ok := BoundingBox([]*Floor{f1, f2})
	if !ok {
		t.Fatal("expected bounding box")
	}
	if min != geo.Pt(-2, 0) || max != geo.Pt(4, 6) {
		t.Errorf("unexpected bbox min=%+v max=%+v", min, max)
	}

	if _, _, ok := BoundingBox([]*Floor{NewFloor("Empty")}); ok {
		t.Error("expected no bounding box for empty plan")
	}
}
