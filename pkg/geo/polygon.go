package geo

import "math"

// Polygon is a closed polygon defined by its vertices in order. Edge i runs
// from vertex i to vertex (i+1) mod n.
type Polygon struct {
	Vertices []Point2D
}

// NewPolygon creates a polygon from a list of vertices.
func NewPolygon(pts ...Point2D) Polygon {
	return Polygon{Vertices: pts}
}

// Len returns the number of vertices.
func (p Polygon) Len() int {
	return len(p.Vertices)
}

// IsEmpty returns true if the polygon has fewer than 3 vertices.
func (p Polygon) IsEmpty() bool {
	return len(p.Vertices) < 3
}

// Edge returns the i-th edge as (start, end). Wraps around.
func (p Polygon) Edge(i int) (Point2D, Point2D) {
	n := len(p.Vertices)
	return p.Vertices[i%n], p.Vertices[(i+1)%n]
}

// SignedArea returns the signed area using the shoelace formula.
// Positive for counterclockwise winding, negative for clockwise.
func (p Polygon) SignedArea() float64 {
	n := len(p.Vertices)
	if n < 3 {
		return 0
	}
	area := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		area += p.Vertices[i].X * p.Vertices[j].Y
		area -= p.Vertices[j].X * p.Vertices[i].Y
	}
	return area / 2
}

// Area returns the unsigned area of the polygon.
func (p Polygon) Area() float64 {
	return math.Abs(p.SignedArea())
}

// VertexMean returns the arithmetic mean of the vertices. This is the pivot
// used for room rotation; it is not the area centroid.
func (p Polygon) VertexMean() Point2D {
	n := len(p.Vertices)
	if n == 0 {
		return Point2D{}
	}
	sum := Point2D{}
	for _, v := range p.Vertices {
		sum = sum.Add(v)
	}
	return sum.Scale(1.0 / float64(n))
}

// Centroid returns the area centroid of the polygon, falling back to the
// vertex mean for degenerate input.
func (p Polygon) Centroid() Point2D {
	n := len(p.Vertices)
	if n < 3 {
		return p.VertexMean()
	}
	a := p.SignedArea()
	if math.Abs(a) < 1e-12 {
		return p.VertexMean()
	}
	cx, cy := 0.0, 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		cross := p.Vertices[i].X*p.Vertices[j].Y - p.Vertices[j].X*p.Vertices[i].Y
		cx += (p.Vertices[i].X + p.Vertices[j].X) * cross
		cy += (p.Vertices[i].Y + p.Vertices[j].Y) * cross
	}
	f := 1.0 / (6.0 * a)
	return Point2D{cx * f, cy * f}
}

// BoundingBox returns the axis-aligned bounding box as (min, max).
func (p Polygon) BoundingBox() (Point2D, Point2D) {
	if len(p.Vertices) == 0 {
		return Point2D{}, Point2D{}
	}
	minP := p.Vertices[0]
	maxP := p.Vertices[0]
	for _, v := range p.Vertices[1:] {
		if v.X < minP.X {
			minP.X = v.X
		}
		if v.Y < minP.Y {
			minP.Y = v.Y
		}
		if v.X > maxP.X {
			maxP.X = v.X
		}
		if v.Y > maxP.Y {
			maxP.Y = v.Y
		}
	}
	return minP, maxP
}

// Contains returns true if the point is inside the polygon using the even-odd
// ray casting rule. Points exactly on a lower or left edge report inside;
// points on an upper or right edge report outside. Polygons with fewer than
// 3 vertices contain nothing.
func (p Polygon) Contains(pt Point2D) bool {
	n := len(p.Vertices)
	if n < 3 {
		return false
	}
	inside := false
	j := n - 1
	for i := 0; i < n; i++ {
		vi := p.Vertices[i]
		vj := p.Vertices[j]
		if (vi.Y > pt.Y) != (vj.Y > pt.Y) &&
			pt.X < (vj.X-vi.X)*(pt.Y-vi.Y)/(vj.Y-vi.Y)+vi.X {
			inside = !inside
		}
		j = i
	}
	return inside
}

// NearestEdge returns the index of the edge closest to pt, if that edge lies
// within threshold. Ties keep the first edge found with a strictly smaller
// distance, so iteration order (vertex order) is the tie-break.
func (p Polygon) NearestEdge(pt Point2D, threshold float64) (int, bool) {
	n := len(p.Vertices)
	if n < 2 {
		return 0, false
	}
	best := -1
	bestDist := threshold
	for i := 0; i < n; i++ {
		a, b := p.Edge(i)
		d := DistanceToSegment(pt, a, b)
		if d < bestDist {
			bestDist = d
			best = i
		}
	}
	if best < 0 {
		return 0, false
	}
	return best, true
}

// Perimeter returns the total perimeter length.
func (p Polygon) Perimeter() float64 {
	n := len(p.Vertices)
	if n < 2 {
		return 0
	}
	total := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		total += p.Vertices[i].Distance(p.Vertices[j])
	}
	return total
}

// Translate returns the polygon with every vertex offset by delta.
func (p Polygon) Translate(delta Point2D) Polygon {
	out := make([]Point2D, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Add(delta)
	}
	return Polygon{Vertices: out}
}
