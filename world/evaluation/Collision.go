package evaluation

import (
	"github.com/ByteArena/box2d"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world"
)

// CollisionEgoAgent reports whether the footprint of the ego agent
// overlaps the footprint of any other agent. Footprints must be convex
// with at most box2d.B2_maxPolygonVertices vertices.
type CollisionEgoAgent struct {
	identity box2d.B2Transform
}

// NewCollisionEgoAgent returns a new CollisionEgoAgent provider
func NewCollisionEgoAgent() *CollisionEgoAgent {
	identity := box2d.MakeB2Transform()
	identity.SetIdentity()
	return &CollisionEgoAgent{identity}
}

// Evaluate returns a bool
func (c *CollisionEgoAgent) Evaluate(w world.ObservedWorld) interface{} {
	ego := toShape(Footprint(w.EgoAgent()))

	for _, other := range w.OtherAgents() {
		if box2d.B2TestOverlapShapes(ego, 0, toShape(Footprint(other)), 0,
			c.identity, c.identity) {
			return true
		}
	}
	return false
}

// toShape converts a world-frame polygon to a box2d polygon shape
func toShape(p geometry.Polygon) *box2d.B2PolygonShape {
	vertices := p.Vertices()
	b2Vertices := make([]box2d.B2Vec2, len(vertices))
	for i, v := range vertices {
		b2Vertices[i] = box2d.MakeB2Vec2(v.X, v.Y)
	}

	shape := box2d.NewB2PolygonShape()
	shape.Set(b2Vertices, len(b2Vertices))
	return shape
}
