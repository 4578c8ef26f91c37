package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Line is a polyline through an ordered sequence of points. Lane
// centerlines are represented as Lines.
type Line struct {
	points []Point
}

// NewLine returns a new Line through the argument points. NewLine
// panics if fewer than one point is given.
func NewLine(points ...Point) Line {
	if len(points) == 0 {
		panic("newLine: a line needs at least one point")
	}
	p := make([]Point, len(points))
	copy(p, points)
	return Line{p}
}

// Points returns a copy of the points of the Line
func (l Line) Points() []Point {
	p := make([]Point, len(l.points))
	copy(p, l.points)
	return p
}

// Len returns the number of points in the Line
func (l Line) Len() int {
	return len(l.points)
}

// Length returns the arc length of the Line
func (l Line) Length() float64 {
	length := 0.0
	for i := 1; i < len(l.points); i++ {
		length += r2.Norm(r2.Sub(l.points[i], l.points[i-1]))
	}
	return length
}

// Distance returns the planar distance between the Line and point p,
// that is, the distance from p to the closest point on any segment of
// the Line. A Line with a single point behaves as that point, and the
// zero Line is infinitely far from every point.
func Distance(l Line, p Point) float64 {
	if len(l.points) == 1 {
		return r2.Norm(r2.Sub(p, l.points[0]))
	}

	dist := math.Inf(1)
	for i := 1; i < len(l.points); i++ {
		dist = math.Min(dist, distanceToSegment(l.points[i-1], l.points[i], p))
	}
	return dist
}
