package plan

import (
	"math"
	"math/rand/v2"
)

// FillColor is the room fill in HSB plus alpha. The underscore-prefixed keys
// are part of the project wire format.
type FillColor struct {
	H float64 `json:"_h"`
	S float64 `json:"_s"`
	B float64 `json:"_b"`
	A float64 `json:"_a"`
}

// RandomPastel returns a random low-saturation, high-brightness fill.
// Assigned once at room creation; the color is identity-like and never
// derived from geometry.
func RandomPastel() FillColor {
	return FillColor{
		H: rand.Float64(),
		S: 0.25 + 0.2*rand.Float64(),
		B: 0.88 + 0.08*rand.Float64(),
		A: 0.55,
	}
}

// RGBA converts the HSB color to RGB components in [0,1].
func (c FillColor) RGBA() (r, g, b, a float64) {
	h := c.H - math.Floor(c.H)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := c.B * (1 - c.S)
	q := c.B * (1 - f*c.S)
	t := c.B * (1 - (1-f)*c.S)
	switch i % 6 {
	case 0:
		r, g, b = c.B, t, p
	case 1:
		r, g, b = q, c.B, p
	case 2:
		r, g, b = p, c.B, t
	case 3:
		r, g, b = p, q, c.B
	case 4:
		r, g, b = t, p, c.B
	case 5:
		r, g, b = c.B, p, q
	}
	return r, g, b, c.A
}
