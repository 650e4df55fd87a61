package geo

// ProjectionFactor returns the scalar t such that a + t*(b-a) is the closest
// point on the infinite line through a and b to p. The result is not clamped;
// callers clamp to [0,1] when they need a point on the segment itself.
// Returns 0 for a degenerate segment (a == b).
func ProjectionFactor(p, a, b Point2D) float64 {
	d := b.Sub(a)
	l2 := d.Dot(d)
	if l2 < 1e-24 {
		return 0
	}
	return p.Sub(a).Dot(d) / l2
}

// ClosestPointOnSegment returns the point on segment ab closest to p.
func ClosestPointOnSegment(p, a, b Point2D) Point2D {
	t := ProjectionFactor(p, a, b)
	if t < 0 {
		t = 0
	} else if t > 1 {
		t = 1
	}
	return a.Lerp(b, t)
}

// DistanceToSegment returns the distance from p to segment ab.
// A degenerate segment (a == b) yields the distance to a.
func DistanceToSegment(p, a, b Point2D) float64 {
	return p.Distance(ClosestPointOnSegment(p, a, b))
}
