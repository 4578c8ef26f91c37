package kinematic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/utils/floatutils"
	"github.com/samuelfneumann/gobark/world"
)

// Behavior decides the action an agent takes at each step
type Behavior interface {
	Plan(w *World, a *Agent) mat.Vector
}

// ConstantVelocity keeps the current velocity and heading
type ConstantVelocity struct{}

// Plan returns the zero action
func (ConstantVelocity) Plan(*World, *Agent) mat.Vector {
	return mat.NewVecDense(ActionSize, nil)
}

// Controlled is a Behavior whose action is set externally, usually by
// a learning agent. Until SetAction is called the zero action is used.
type Controlled struct {
	action *mat.VecDense
}

// NewControlled returns a new Controlled behavior
func NewControlled() *Controlled {
	return &Controlled{mat.NewVecDense(ActionSize, nil)}
}

// SetAction sets the action used on the next step
func (c *Controlled) SetAction(action mat.Vector) {
	if action.Len() != ActionSize {
		panic(fmt.Sprintf("setAction: action must have %v components "+
			"\n\twant(%v) \n\thave(%v)", ActionSize, ActionSize, action.Len()))
	}
	c.action = mat.VecDenseCopyOf(action)
}

// Plan returns the most recently set action
func (c *Controlled) Plan(*World, *Agent) mat.Vector {
	return c.action
}

// LaneFollowing steers towards the centerline of the agent's first
// lane by a proportional controller on the lateral offset, holding the
// velocity constant
type LaneFollowing struct {
	Gain     float64
	MaxSteer float64
}

// Plan returns an action with zero acceleration and a steering angle
// proportional to the distance from the lane centerline
func (l LaneFollowing) Plan(_ *World, a *Agent) mat.Vector {
	lanes := a.RoadCorridor().LaneCorridors()
	if len(lanes) == 0 {
		return mat.NewVecDense(ActionSize, nil)
	}
	centerLine := lanes[0].CenterLine()

	state := a.State()
	theta := world.ThetaPosition.At(state)
	pos := geometry.NewPoint(world.XPosition.At(state),
		world.YPosition.At(state))
	left := geometry.NewPoint(pos.X-math.Sin(theta), pos.Y+math.Cos(theta))

	// Steer right when the centerline lies to the right of the agent
	d := geometry.Distance(centerLine, pos)
	steer := l.Gain * d
	if geometry.Distance(centerLine, left) > d {
		steer = -steer
	}

	steer = floatutils.Clip(steer, -l.MaxSteer, l.MaxSteer)
	return mat.NewVecDense(ActionSize, []float64{0, steer})
}
