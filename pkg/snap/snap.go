// Package snap provides deterministic, UI-agnostic grid snapping for
// interactive editing. Soft snapping pulls a coordinate onto the grid only
// within a tolerance band; hard snapping always rounds. Both are pure
// coordinate transforms.
package snap

import (
	"math"

	"github.com/openfloor/planner/pkg/geo"
)

// Default grid parameters, in model units (meters).
const (
	DefaultStep      = 1.0
	DefaultTolerance = 0.2
)

// Soft snaps v to the nearest multiple of step if it lies within tolerance,
// otherwise returns v unchanged. A non-positive step disables snapping.
func Soft(v, step, tolerance float64) float64 {
	if step <= 0 {
		return v
	}
	nearest := math.Round(v/step) * step
	if math.Abs(v-nearest) <= tolerance {
		return nearest
	}
	return v
}

// Hard rounds v to the nearest multiple of step regardless of distance.
// A non-positive step disables snapping.
func Hard(v, step float64) float64 {
	if step <= 0 {
		return v
	}
	return math.Round(v/step) * step
}

// SoftPoint applies Soft per axis.
func SoftPoint(p geo.Point2D, step, tolerance float64) geo.Point2D {
	return geo.Point2D{
		X: Soft(p.X, step, tolerance),
		Y: Soft(p.Y, step, tolerance),
	}
}

// HardPoint applies Hard per axis.
func HardPoint(p geo.Point2D, step float64) geo.Point2D {
	return geo.Point2D{
		X: Hard(p.X, step),
		Y: Hard(p.Y, step),
	}
}

// TranslationCorrection computes the single per-axis correction that snaps a
// rigid set of vertices to the grid without distorting their shape: among all
// vertices, the smallest-magnitude per-axis offset to a grid line that lies
// within tolerance. Every vertex then receives the same correction, so the
// dragged shape stays rigid. Axes with no vertex within tolerance get a zero
// correction.
func TranslationCorrection(vertices []geo.Point2D, step, tolerance float64) geo.Point2D {
	if step <= 0 {
		return geo.Point2D{}
	}
	best := func(axis func(geo.Point2D) float64) float64 {
		bestOff := 0.0
		found := false
		for _, v := range vertices {
			c := axis(v)
			off := math.Round(c/step)*step - c
			if math.Abs(off) > tolerance {
				continue
			}
			if !found || math.Abs(off) < math.Abs(bestOff) {
				bestOff = off
				found = true
			}
		}
		return bestOff
	}
	return geo.Point2D{
		X: best(func(p geo.Point2D) float64 { return p.X }),
		Y: best(func(p geo.Point2D) float64 { return p.Y }),
	}
}
