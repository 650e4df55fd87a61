package plan

import "github.com/openfloor/planner/pkg/geo"

// wallSampleOffset is how far beyond an edge midpoint, along the edge normal,
// the classifier samples when deciding whether a neighboring room sits on the
// other side of the wall.
const wallSampleOffset = 0.1

// ClassifyWalls rederives the wall type of every edge of every room on every
// floor. An edge whose outside sample falls inside another room on the same
// floor is a shared partition (internal); everything else is external.
// Floors are independent stacked plans, so rooms on other floors never
// influence classification.
func ClassifyWalls(floors []*Floor) {
	for _, f := range floors {
		ClassifyFloorWalls(f)
	}
}

// ClassifyFloorWalls classifies the walls of every room on one floor.
func ClassifyFloorWalls(f *Floor) {
	for _, room := range f.Rooms {
		room.EnsureWallTypes()
		poly := room.Polygon()
		for i := range room.Vertices {
			a, b := poly.Edge(i)
			normal := b.Sub(a).Perp().Normalize()
			mid := geo.MidPoint(a, b)
			s1 := mid.Add(normal.Scale(wallSampleOffset))
			s2 := mid.Sub(normal.Scale(wallSampleOffset))

			// Whichever sample the room itself contains is the interior
			// side; the other faces outward.
			outside := s1
			if poly.Contains(s1) {
				outside = s2
			}

			room.WallTypes[i] = WallExternal
			for _, other := range f.Rooms {
				if other.ID == room.ID {
					continue
				}
				if other.Contains(outside) {
					room.WallTypes[i] = WallInternal
					break
				}
			}
		}
	}
}
