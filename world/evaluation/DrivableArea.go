package evaluation

import "github.com/samuelfneumann/gobark/world"

// DrivableArea reports whether the ego agent has left the drivable
// area. The signal is true once any corner of the ego footprint lies
// outside the world's drivable area.
type DrivableArea struct{}

// NewDrivableArea returns a new DrivableArea provider
func NewDrivableArea() *DrivableArea {
	return &DrivableArea{}
}

// Evaluate returns a bool
func (d *DrivableArea) Evaluate(w world.ObservedWorld) interface{} {
	return !w.DrivableArea().ContainsPolygon(Footprint(w.EgoAgent()))
}
