// Package geometry implements the planar primitives needed to evaluate
// driving scenarios: points, polylines such as lane centerlines, and
// polygons such as vehicle footprints, goal regions, and drivable areas.
package geometry

import (
	"math"

	"gonum.org/v1/gonum/spatial/r2"
)

// Point is a point in the plane
type Point = r2.Vec

// NewPoint returns the point (x, y)
func NewPoint(x, y float64) Point {
	return Point{X: x, Y: y}
}

// distanceToSegment returns the distance from p to the segment [a, b]
func distanceToSegment(a, b, p Point) float64 {
	ab := r2.Sub(b, a)
	length2 := r2.Norm2(ab)
	if length2 == 0 {
		return r2.Norm(r2.Sub(p, a))
	}

	// Project p onto the line through a and b, clamped to the segment
	t := r2.Dot(r2.Sub(p, a), ab) / length2
	t = math.Max(0, math.Min(1, t))

	closest := r2.Add(a, r2.Scale(t, ab))
	return r2.Norm(r2.Sub(p, closest))
}

// rotate rotates p by theta radians about the origin
func rotate(p Point, theta float64) Point {
	sin, cos := math.Sincos(theta)
	return Point{X: cos*p.X - sin*p.Y, Y: sin*p.X + cos*p.Y}
}
