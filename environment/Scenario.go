package environment

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world/kinematic"
)

// EgoID is the id of the ego agent in every scenario
const EgoID int = 0

// Scenario creates a fresh world for each episode from a sampled
// start state
type Scenario interface {
	// Create builds a world from the start state and returns it along
	// with the controlled behavior of the ego agent
	Create(start mat.Vector) (*kinematic.World, *kinematic.Controlled, error)

	// StartBounds returns the bounds of the start states that Create
	// accepts
	StartBounds() []r1.Interval
}

// Highway is a straight multi-lane road along the x axis. The ego
// vehicle starts in EgoLane and must reach a goal region at the end of
// its lane. Other vehicles drive ahead of the ego, following their
// lanes at constant velocity.
//
// Start states have two components: the ego x position and the ego
// velocity.
type Highway struct {
	Length     float64 `json:"Length"`
	LaneWidth  float64 `json:"LaneWidth"`
	NumLanes   int     `json:"NumLanes"`
	EgoLane    int     `json:"EgoLane"`
	GoalLength float64 `json:"GoalLength"`

	NumOthers int     `json:"NumOthers"`
	Spacing   float64 `json:"Spacing"`
	OtherVel  float64 `json:"OtherVel"`

	StartX   r1.Interval `json:"StartX"`
	StartVel r1.Interval `json:"StartVel"`
}

// DefaultHighway returns a two-lane highway with two other vehicles
func DefaultHighway() Highway {
	return Highway{
		Length:     200,
		LaneWidth:  4,
		NumLanes:   2,
		EgoLane:    0,
		GoalLength: 20,
		NumOthers:  2,
		Spacing:    25,
		OtherVel:   4,
		StartX:     r1.Interval{Min: 5, Max: 15},
		StartVel:   r1.Interval{Min: 3, Max: 5},
	}
}

// Validate returns an error if the highway cannot be built
func (h Highway) Validate() error {
	switch {
	case h.Length <= 0:
		return fmt.Errorf("highway: length must be positive, have %v",
			h.Length)
	case h.LaneWidth <= 0:
		return fmt.Errorf("highway: lane width must be positive, have %v",
			h.LaneWidth)
	case h.NumLanes < 1:
		return fmt.Errorf("highway: need at least one lane, have %v",
			h.NumLanes)
	case h.EgoLane < 0 || h.EgoLane >= h.NumLanes:
		return fmt.Errorf("highway: ego lane %v out of range [0, %v)",
			h.EgoLane, h.NumLanes)
	case h.GoalLength <= 0 || h.GoalLength > h.Length:
		return fmt.Errorf("highway: goal length %v out of range (0, %v]",
			h.GoalLength, h.Length)
	case h.NumOthers < 0:
		return fmt.Errorf("highway: negative number of others %v",
			h.NumOthers)
	case h.StartX.Min > h.StartX.Max || h.StartVel.Min > h.StartVel.Max:
		return fmt.Errorf("highway: empty start interval")
	}
	return nil
}

// StartBounds returns the ego start position and velocity bounds
func (h Highway) StartBounds() []r1.Interval {
	return []r1.Interval{h.StartX, h.StartVel}
}

// laneY returns the y coordinate of the centerline of lane i
func (h Highway) laneY(i int) float64 {
	return (float64(i) + 0.5) * h.LaneWidth
}

// lane returns the road corridor consisting of lane i only
func (h Highway) lane(i int) *kinematic.RoadCorridor {
	y := h.laneY(i)
	centerLine := geometry.NewLine(
		geometry.NewPoint(0, y),
		geometry.NewPoint(h.Length, y),
	)
	return kinematic.NewRoadCorridor(kinematic.NewLaneCorridor(centerLine))
}

// Create builds the highway world
func (h Highway) Create(start mat.Vector) (*kinematic.World,
	*kinematic.Controlled, error) {
	if err := h.Validate(); err != nil {
		return nil, nil, err
	}
	if start.Len() != 2 {
		return nil, nil, fmt.Errorf("highway: start state must have 2 "+
			"components, have %v", start.Len())
	}

	width := float64(h.NumLanes) * h.LaneWidth
	drivable := geometry.NewPolygon(
		geometry.NewPoint(0, 0),
		geometry.NewPoint(h.Length, 0),
		geometry.NewPoint(h.Length, width),
		geometry.NewPoint(0, width),
	)
	w := kinematic.New(drivable)

	egoY := h.laneY(h.EgoLane)
	goal := geometry.NewPolygon(
		geometry.NewPoint(h.Length-h.GoalLength, egoY-h.LaneWidth/2),
		geometry.NewPoint(h.Length, egoY-h.LaneWidth/2),
		geometry.NewPoint(h.Length, egoY+h.LaneWidth/2),
		geometry.NewPoint(h.Length-h.GoalLength, egoY+h.LaneWidth/2),
	)

	egoX, egoVel := start.AtVec(0), start.AtVec(1)
	control := kinematic.NewControlled()
	ego := kinematic.NewAgent(EgoID, kinematic.NewState(0, egoX, egoY, 0,
		egoVel), goal, h.lane(h.EgoLane), control)
	w.AddAgent(ego)

	follow := kinematic.LaneFollowing{Gain: 0.1, MaxSteer: 0.2}
	for k := 0; k < h.NumOthers; k++ {
		lane := (h.EgoLane + k) % h.NumLanes
		x := egoX + h.Spacing*float64(k+1)
		state := kinematic.NewState(0, x, h.laneY(lane), 0, h.OtherVel)
		other := kinematic.NewAgent(EgoID+k+1, state, goal, h.lane(lane),
			follow)
		w.AddAgent(other)
	}

	return w, control, nil
}
