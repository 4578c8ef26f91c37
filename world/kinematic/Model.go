package kinematic

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
)

const (
	// Wheelbase is the default distance between the axles, in metres
	Wheelbase float64 = 2.7

	// ActionSize is the number of control inputs: acceleration and
	// steering angle
	ActionSize int = 2
)

// SingleTrack is the kinematic single track (bicycle) model. Actions
// are (acceleration, steering angle) pairs.
type SingleTrack struct {
	wheelbase float64
}

// NewSingleTrack returns a new SingleTrack model. NewSingleTrack panics
// if the wheelbase is not positive.
func NewSingleTrack(wheelbase float64) SingleTrack {
	if wheelbase <= 0 {
		panic(fmt.Sprintf("newSingleTrack: wheelbase must be positive "+
			"\n\twant(>0) \n\thave(%v)", wheelbase))
	}
	return SingleTrack{wheelbase}
}

// Step integrates state forward by dt seconds under action using the
// forward Euler method and returns the new state. Velocities are
// clipped at zero so that agents never drive backwards.
func (s SingleTrack) Step(state, action mat.Vector, dt float64) *mat.VecDense {
	if action.Len() != ActionSize {
		panic(fmt.Sprintf("step: action must have %v components "+
			"\n\twant(%v) \n\thave(%v)", ActionSize, ActionSize, action.Len()))
	}

	t := world.TimePosition.At(state)
	x := world.XPosition.At(state)
	y := world.YPosition.At(state)
	theta := world.ThetaPosition.At(state)
	v := world.VelPosition.At(state)

	acc, delta := action.AtVec(0), action.AtVec(1)

	next := mat.VecDenseCopyOf(state)
	next.SetVec(int(world.TimePosition), t+dt)
	next.SetVec(int(world.XPosition), x+v*math.Cos(theta)*dt)
	next.SetVec(int(world.YPosition), y+v*math.Sin(theta)*dt)
	next.SetVec(int(world.ThetaPosition), theta+v/s.wheelbase*math.Tan(delta)*dt)
	next.SetVec(int(world.VelPosition), math.Max(0, v+acc*dt))

	return next
}

// NewState returns a state vector with the given components
func NewState(t, x, y, theta, v float64) *mat.VecDense {
	return mat.NewVecDense(world.MinStateSize, []float64{t, x, y, theta, v})
}
