package validation

import (
	"fmt"

	"github.com/google/uuid"

	"github.com/openfloor/planner/pkg/plan"
)

// ValidatePlan checks the structural invariants of a floor set: the floor
// count, wall-type/vertex agreement, attachment anchors, stairs parameters,
// and identity uniqueness.
func ValidatePlan(floors []*plan.Floor) *Report {
	r := NewReport()

	if len(floors) == 0 {
		r.AddError(Result{
			Message:  "plan must have at least one floor",
			Path:     "floors",
			Expected: ">= 1",
		})
		return r
	}

	for fi, f := range floors {
		validateFloor(fi, f, r)
	}
	return r
}

func validateFloor(fi int, f *plan.Floor, r *Report) {
	seen := map[uuid.UUID]bool{}
	for ri, room := range f.Rooms {
		path := fmt.Sprintf("floors[%d].rooms[%d]", fi, ri)
		if seen[room.ID] {
			r.AddError(Result{
				Message:     "duplicate room id on floor",
				Path:        path,
				ActualValue: room.ID.String(),
			})
		}
		seen[room.ID] = true
		validateRoom(path, room, r)
	}
}

func validateRoom(path string, room *plan.Room, r *Report) {
	nv := len(room.Vertices)

	if nv == 1 || nv == 2 {
		r.AddWarning(Result{
			Message:     "room outline is not a drawable polygon",
			Path:        path + ".vertices",
			ActualValue: nv,
			Expected:    "0 or >= 3 vertices",
		})
	}

	if len(room.WallTypes) != nv {
		r.AddWarning(Result{
			Message:     "wall type count differs from vertex count; will be resynthesized on use",
			Path:        path + ".wallTypes",
			ActualValue: len(room.WallTypes),
			Expected:    fmt.Sprintf("%d", nv),
		})
	}

	for i, d := range room.Doors {
		validateAnchor(fmt.Sprintf("%s.doors[%d]", path, i), d.WallAnchor, nv, r)
	}
	for i, w := range room.Windows {
		validateAnchor(fmt.Sprintf("%s.windows[%d]", path, i), w.WallAnchor, nv, r)
	}

	for i, s := range room.Stairs {
		spath := fmt.Sprintf("%s.stairs[%d]", path, i)
		if s.Steps < 1 {
			r.AddError(Result{
				Message:     "stairs must have at least one step",
				Path:        spath + ".steps",
				ActualValue: s.Steps,
				Expected:    ">= 1",
			})
		}
		if s.Length <= 0 || s.Width <= 0 {
			r.AddError(Result{
				Message:     "stairs dimensions must be positive",
				Path:        spath,
				ActualValue: fmt.Sprintf("%gx%g", s.Length, s.Width),
				Expected:    "length > 0, width > 0",
			})
		}
	}
}

func validateAnchor(path string, a plan.WallAnchor, edges int, r *Report) {
	if a.WallIndex < 0 || a.WallIndex >= edges {
		r.AddError(Result{
			Message:     "attachment references a wall that does not exist",
			Path:        path + ".wallIndex",
			ActualValue: a.WallIndex,
			Expected:    fmt.Sprintf("0 <= wallIndex < %d", edges),
		})
	}
	if a.Offset < 0 || a.Offset > 1 {
		r.AddError(Result{
			Message:     "attachment offset out of range",
			Path:        path + ".offset",
			ActualValue: a.Offset,
			Expected:    "[0,1]",
		})
	}
	if a.Length <= 0 {
		r.AddError(Result{
			Message:     "attachment length must be positive",
			Path:        path + ".length",
			ActualValue: a.Length,
			Expected:    "> 0",
		})
	}
}
