package export

import (
	"bytes"
	"fmt"

	"github.com/openfloor/planner/pkg/plan"
)

// DXF emits a minimal ENTITIES-only DXF fragment: one closed LWPOLYLINE per
// room with at least 3 vertices, on a layer named after its floor. Vertex
// coordinates are written verbatim in model units, so meters become DXF
// drawing units.
func DXF(floors []*plan.Floor) []byte {
	var b bytes.Buffer
	b.WriteString("0\nSECTION\n2\nENTITIES\n")
	for _, f := range floors {
		for _, r := range f.Rooms {
			if len(r.Vertices) < 3 {
				continue
			}
			fmt.Fprintf(&b, "0\nLWPOLYLINE\n8\n%s\n90\n%d\n70\n1\n", f.Name, len(r.Vertices))
			for _, v := range r.Vertices {
				fmt.Fprintf(&b, "10\n%g\n20\n%g\n", v.X, v.Y)
			}
		}
	}
	b.WriteString("0\nENDSEC\n0\nEOF\n")
	return b.Bytes()
}
