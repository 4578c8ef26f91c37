package geometry

import (
	"fmt"

	"gonum.org/v1/gonum/spatial/r2"
)

// Polygon is a simple closed polygon given by its vertices in order.
// The closing edge from the last vertex back to the first is implied.
type Polygon struct {
	vertices []Point
}

// NewPolygon returns a new Polygon with the argument vertices.
// NewPolygon panics if fewer than three vertices are given.
func NewPolygon(vertices ...Point) Polygon {
	if len(vertices) < 3 {
		panic(fmt.Sprintf("newPolygon: a polygon needs at least three "+
			"vertices \n\twant(>=3) \n\thave(%v)", len(vertices)))
	}
	v := make([]Point, len(vertices))
	copy(v, vertices)
	return Polygon{v}
}

// NewRectangle returns the axis-aligned rectangle centred at the origin
// with the given length (along x) and width (along y)
func NewRectangle(length, width float64) Polygon {
	hl, hw := length/2, width/2
	return NewPolygon(
		NewPoint(-hl, -hw),
		NewPoint(hl, -hw),
		NewPoint(hl, hw),
		NewPoint(-hl, hw),
	)
}

// Vertices returns a copy of the vertices of the Polygon
func (p Polygon) Vertices() []Point {
	v := make([]Point, len(p.vertices))
	copy(v, p.vertices)
	return v
}

// Transform returns the Polygon rotated by theta about the origin and
// then translated by (x, y). This maps a footprint given in an agent's
// local frame into the world frame.
func (p Polygon) Transform(x, y, theta float64) Polygon {
	offset := NewPoint(x, y)
	v := make([]Point, len(p.vertices))
	for i, vertex := range p.vertices {
		v[i] = r2.Add(rotate(vertex, theta), offset)
	}
	return Polygon{v}
}

// Contains returns whether point q lies inside the Polygon or on its
// boundary. The even-odd rule is used, so non-convex polygons are
// supported.
func (p Polygon) Contains(q Point) bool {
	n := len(p.vertices)
	inside := false
	for i, j := 0, n-1; i < n; j, i = i, i+1 {
		a, b := p.vertices[i], p.vertices[j]
		if distanceToSegment(a, b, q) < 1e-12 {
			return true
		}
		if (a.Y > q.Y) != (b.Y > q.Y) {
			xCross := (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y) + a.X
			if q.X < xCross {
				inside = !inside
			}
		}
	}
	return inside
}

// ContainsPolygon returns whether every vertex of other lies inside
// the Polygon
func (p Polygon) ContainsPolygon(other Polygon) bool {
	for _, v := range other.vertices {
		if !p.Contains(v) {
			return false
		}
	}
	return true
}

// Centroid returns the mean of the vertices of the Polygon
func (p Polygon) Centroid() Point {
	var c Point
	for _, v := range p.vertices {
		c = r2.Add(c, v)
	}
	return r2.Scale(1/float64(len(p.vertices)), c)
}
