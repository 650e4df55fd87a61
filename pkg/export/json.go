// Package export serializes a floor plan to its interchange formats:
// vertices-only JSON, the round-trippable project JSON, a minimal DXF
// fragment, and a rasterized PNG. Exporters read the model and produce
// in-memory byte buffers; writing them anywhere is the caller's job.
package export

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/xeipuuv/gojsonschema"

	"github.com/openfloor/planner/pkg/geo"
	"github.com/openfloor/planner/pkg/plan"
)

// vertexFloor is the shape of one floor in the vertices-only export.
type vertexFloor struct {
	ID    uuid.UUID       `json:"id"`
	Name  string          `json:"name"`
	Rooms [][]geo.Point2D `json:"rooms"`
}

// VerticesJSON encodes the geometry-only quick-export format: a top-level
// array of floors, each room reduced to its vertex ring. Openings, stairs,
// and wall types are dropped; this format is lossy by design.
func VerticesJSON(floors []*plan.Floor) ([]byte, error) {
	out := make([]vertexFloor, len(floors))
	for i, f := range floors {
		rooms := make([][]geo.Point2D, len(f.Rooms))
		for j, r := range f.Rooms {
			rooms[j] = append([]geo.Point2D{}, r.Vertices...)
		}
		out[i] = vertexFloor{ID: f.ID, Name: f.Name, Rooms: rooms}
	}
	return json.MarshalIndent(out, "", "  ")
}

// ProjectJSON encodes the complete floor set: the round-trippable save
// format, carrying wall types, openings, stairs, and fill colors.
func ProjectJSON(floors []*plan.Floor) ([]byte, error) {
	return json.MarshalIndent(floors, "", "  ")
}

// LoadProject decodes a project document. The document is validated against
// the project schema before decoding, so a malformed payload returns an
// error without producing a partial floor set.
func LoadProject(data []byte) ([]*plan.Floor, error) {
	result, err := gojsonschema.Validate(
		gojsonschema.NewStringLoader(projectSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return nil, fmt.Errorf("validating project document: %w", err)
	}
	if !result.Valid() {
		return nil, fmt.Errorf("project document invalid: %s", result.Errors()[0])
	}

	var floors []*plan.Floor
	if err := json.Unmarshal(data, &floors); err != nil {
		return nil, fmt.Errorf("decoding project document: %w", err)
	}
	for _, f := range floors {
		for _, r := range f.Rooms {
			r.EnsureWallTypes()
		}
	}
	return floors, nil
}
