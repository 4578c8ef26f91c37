// Package evaluation implements the simulator-native base signal
// providers. Each provider computes a single named fact about an
// ObservedWorld; a reward engine registers them on a World under their
// canonical names and reads their results from the world's Signals.
package evaluation

import (
	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world"
)

// Canonical names that base signal providers are registered under
const (
	GoalReachedName  = "goal_reached"
	CollisionName    = "collision"
	StepCountName    = "step_count"
	DrivableAreaName = "drivable_area"
)

// Named pairs a base signal provider with its registration name
type Named struct {
	Name string
	world.Evaluator
}

// Defaults returns the default base signal providers in registration
// order
func Defaults() []Named {
	return []Named{
		{GoalReachedName, NewGoalReached()},
		{CollisionName, NewCollisionEgoAgent()},
		{StepCountName, NewStepCount()},
		{DrivableAreaName, NewDrivableArea()},
	}
}

// Footprint returns the footprint of agent a in the world frame at its
// current state
func Footprint(a world.Agent) geometry.Polygon {
	state := a.State()
	return a.Shape().Transform(
		world.XPosition.At(state),
		world.YPosition.At(state),
		world.ThetaPosition.At(state),
	)
}

// position returns the planar position of agent a
func position(a world.Agent) geometry.Point {
	state := a.State()
	return geometry.NewPoint(world.XPosition.At(state),
		world.YPosition.At(state))
}
