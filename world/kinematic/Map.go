package kinematic

import (
	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world"
)

// LaneCorridor is a single lane given by its centerline
type LaneCorridor struct {
	centerLine geometry.Line
}

// NewLaneCorridor returns a new LaneCorridor with the given centerline
func NewLaneCorridor(centerLine geometry.Line) *LaneCorridor {
	return &LaneCorridor{centerLine}
}

// CenterLine returns the centerline of the lane
func (l *LaneCorridor) CenterLine() geometry.Line {
	return l.centerLine
}

// RoadCorridor is an ordered set of lanes
type RoadCorridor struct {
	lanes []world.LaneCorridor
}

// NewRoadCorridor returns a new RoadCorridor. NewRoadCorridor panics if
// no lanes are given.
func NewRoadCorridor(lanes ...*LaneCorridor) *RoadCorridor {
	if len(lanes) == 0 {
		panic("newRoadCorridor: a road corridor needs at least one lane")
	}

	l := make([]world.LaneCorridor, len(lanes))
	for i := range lanes {
		l[i] = lanes[i]
	}
	return &RoadCorridor{l}
}

// LaneCorridors returns the lanes of the corridor
func (r *RoadCorridor) LaneCorridors() []world.LaneCorridor {
	return r.lanes
}
