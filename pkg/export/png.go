package export

import (
	"bytes"
	"fmt"
	"math"
	"sync"

	"github.com/gogpu/gg"
	"github.com/gogpu/gg/text"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/openfloor/planner/pkg/config"
	"github.com/openfloor/planner/pkg/geo"
	"github.com/openfloor/planner/pkg/plan"
)

var (
	fontOnce   sync.Once
	fontSource *text.FontSource
)

// annotationFace returns a face of the embedded annotation font. A nil face
// makes gg skip text drawing, which degrades gracefully to an unlabeled
// render.
func annotationFace(points float64) text.Face {
	fontOnce.Do(func() {
		fontSource, _ = text.NewFontSource(goregular.TTF)
	})
	if fontSource == nil {
		return nil
	}
	return fontSource.Face(points)
}

// PNG rasterizes the given floors into an opaque RGBA image. The bounding
// box of every room vertex is fitted into the padded target size with a
// uniform scale, preserving aspect ratio. A plan with no vertices renders as
// a blank canvas of the background color.
func PNG(floors []*plan.Floor, cfg config.Render) ([]byte, error) {
	w := int(float64(cfg.Width) * cfg.Scale)
	h := int(float64(cfg.Height) * cfg.Scale)
	dc := gg.NewContext(w, h)
	dc.ClearWithColor(gg.Hex(cfg.Background))

	min, max, ok := plan.BoundingBox(floors)
	if ok {
		r := newRasterizer(dc, cfg, min, max)
		for _, f := range floors {
			for _, room := range f.Rooms {
				r.drawRoom(room)
			}
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encoding PNG: %w", err)
	}
	return buf.Bytes(), nil
}

// rasterizer carries the model-to-pixel projection for one render.
type rasterizer struct {
	dc    *gg.Context
	cfg   config.Render
	min   geo.Point2D
	scale float64
	ox    float64
	oy    float64
}

func newRasterizer(dc *gg.Context, cfg config.Render, min, max geo.Point2D) *rasterizer {
	w := float64(dc.Width())
	h := float64(dc.Height())
	pad := cfg.Padding * cfg.Scale
	ex, ey := max.X-min.X, max.Y-min.Y

	// Uniform scale preserves aspect ratio; degenerate extents (a plan that
	// is a single point or a straight line) fall back to 1 px/m.
	sx, sy := math.Inf(1), math.Inf(1)
	if ex > 1e-9 {
		sx = (w - 2*pad) / ex
	}
	if ey > 1e-9 {
		sy = (h - 2*pad) / ey
	}
	s := math.Min(sx, sy)
	if math.IsInf(s, 1) || s <= 0 {
		s = 1
	}

	return &rasterizer{
		dc:    dc,
		cfg:   cfg,
		min:   min,
		scale: s,
		ox:    (w - ex*s) / 2,
		oy:    (h - ey*s) / 2,
	}
}

func (r *rasterizer) project(p geo.Point2D) (float64, float64) {
	return r.ox + (p.X-r.min.X)*r.scale, r.oy + (p.Y-r.min.Y)*r.scale
}

func (r *rasterizer) drawRoom(room *plan.Room) {
	poly := room.Polygon()
	if !poly.IsEmpty() {
		r.fill(room)
		r.strokeWalls(room)
		if r.cfg.ShowDimensions {
			r.drawDimensions(room)
		}
		if r.cfg.ShowNames && room.Name != "" {
			r.drawName(room)
		}
	}
}

func (r *rasterizer) fill(room *plan.Room) {
	dc := r.dc
	for i, v := range room.Vertices {
		x, y := r.project(v)
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	fr, fg, fb, fa := room.FillColor.RGBA()
	dc.SetRGBA(fr, fg, fb, fa)
	dc.Fill()
}

// wallType tolerates a wall-type list that has drifted from the vertex
// count; exporters never mutate the model.
func wallType(room *plan.Room, i int) plan.WallType {
	if i < len(room.WallTypes) {
		return room.WallTypes[i]
	}
	return plan.WallExternal
}

func (r *rasterizer) strokeWalls(room *plan.Room) {
	dc := r.dc
	poly := room.Polygon()
	dc.SetRGB(0.15, 0.15, 0.15)
	for i := range room.Vertices {
		a, b := poly.Edge(i)
		width := r.cfg.ExternalWallWidth
		if wallType(room, i) == plan.WallInternal {
			width = r.cfg.InternalWallWidth
		}
		dc.SetLineWidth(width * r.cfg.Scale)
		ax, ay := r.project(a)
		bx, by := r.project(b)
		dc.DrawLine(ax, ay, bx, by)
		dc.Stroke()
	}
}

// drawName draws a faint watermark at the room centroid, sized in
// proportion to the room's bounding box.
func (r *rasterizer) drawName(room *plan.Room) {
	poly := room.Polygon()
	bmin, bmax := poly.BoundingBox()
	minDimPx := math.Min(bmax.X-bmin.X, bmax.Y-bmin.Y) * r.scale
	points := minDimPx * 0.18
	if points < 9 {
		points = 9
	}
	if points > 64 {
		points = 64
	}
	face := annotationFace(points)
	if face == nil {
		return
	}
	dc := r.dc
	dc.SetFont(face)
	dc.SetRGBA(0, 0, 0, 0.15)
	cx, cy := r.project(poly.Centroid())
	dc.DrawStringAnchored(room.Name, cx, cy, 0.5, 0.5)
}

// formatLength renders an edge length the way dimension badges show it.
func formatLength(meters float64) string {
	if meters >= 10 {
		return fmt.Sprintf("%.1f m", meters)
	}
	return fmt.Sprintf("%.2f m", meters)
}

// drawDimensions draws an offset dimension line with perpendicular tick
// marks along each edge, plus a rounded-rect badge with the edge length.
func (r *rasterizer) drawDimensions(room *plan.Room) {
	dc := r.dc
	poly := room.Polygon()
	centroid := poly.Centroid()
	offset := 18 * r.cfg.Scale
	tick := 5 * r.cfg.Scale

	for i := range room.Vertices {
		a, b := poly.Edge(i)
		length := a.Distance(b)
		if length < 0.01 {
			continue
		}

		// The dimension line sits outside the room: flip the edge normal if
		// it points toward the centroid.
		n := b.Sub(a).Perp().Normalize()
		mid := geo.MidPoint(a, b)
		if n.Dot(mid.Sub(centroid)) < 0 {
			n = n.Scale(-1)
		}

		ax, ay := r.project(a)
		bx, by := r.project(b)
		ax, ay = ax+n.X*offset, ay+n.Y*offset
		bx, by = bx+n.X*offset, by+n.Y*offset

		dc.SetRGBA(0.35, 0.35, 0.35, 1)
		dc.SetLineWidth(1 * r.cfg.Scale)
		dc.DrawLine(ax, ay, bx, by)
		dc.Stroke()
		dc.DrawLine(ax-n.X*tick, ay-n.Y*tick, ax+n.X*tick, ay+n.Y*tick)
		dc.Stroke()
		dc.DrawLine(bx-n.X*tick, by-n.Y*tick, bx+n.X*tick, by+n.Y*tick)
		dc.Stroke()

		face := annotationFace(11 * r.cfg.Scale)
		if face == nil {
			continue
		}
		dc.SetFont(face)
		label := formatLength(length)
		tw, th := dc.MeasureString(label)
		mx, my := (ax+bx)/2, (ay+by)/2
		padX, padY := 5*r.cfg.Scale, 2*r.cfg.Scale

		dc.SetRGBA(1, 1, 1, 0.92)
		dc.DrawRoundedRectangle(mx-tw/2-padX, my-th/2-padY, tw+2*padX, th+2*padY, 3*r.cfg.Scale)
		dc.Fill()
		dc.SetRGBA(0.25, 0.25, 0.25, 1)
		dc.DrawStringAnchored(label, mx, my, 0.5, 0.5)
	}
}
