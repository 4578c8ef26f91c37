package evaluator

import (
	"errors"
	"fmt"
)

// Names that functors are registered under
const (
	CollisionFunctorName           = "collision_functor"
	GoalFunctorName                = "goal_reached_functor"
	DrivableAreaFunctorName        = "drivable_area_functor"
	StepCountFunctorName           = "step_count_functor"
	MaxVelFunctorName              = "max_vel_functor"
	SmoothnessFunctorName          = "smoothness_functor"
	PotentialCenterlineFunctorName = "pot_center_functor"
	PotentialVelocityFunctorName   = "pot_vel_functor"
)

// ErrUnknownFunctor is returned when no functor is registered under a
// name
var ErrUnknownFunctor = errors.New("unknown functor")

// constructors maps each functor name to a function building the
// functor from its parameter group
var constructors = map[string]func(Params) Functor{
	CollisionFunctorName: func(p Params) Functor {
		return NewCollision(p.Collision)
	},
	GoalFunctorName: func(p Params) Functor {
		return NewGoal(p.Goal)
	},
	DrivableAreaFunctorName: func(p Params) Functor {
		return NewDrivableArea(p.DrivableArea)
	},
	StepCountFunctorName: func(p Params) Functor {
		return NewStepCount(p.StepCount)
	},
	MaxVelFunctorName: func(p Params) Functor {
		return NewMaxVel(p.MaxVel)
	},
	SmoothnessFunctorName: func(p Params) Functor {
		return NewSmoothness(p.Smoothness)
	},
	PotentialCenterlineFunctorName: func(p Params) Functor {
		return NewPotentialCenterline(p.PotentialCenterline)
	},
	PotentialVelocityFunctorName: func(p Params) Functor {
		return NewPotentialVelocity(p.PotentialVelocity)
	},
}

// DefaultFunctorNames returns the names of the default functors in
// evaluation order. The Smoothness functor is available but not used
// by default.
func DefaultFunctorNames() []string {
	return []string{
		CollisionFunctorName,
		GoalFunctorName,
		DrivableAreaFunctorName,
		StepCountFunctorName,
		MaxVelFunctorName,
		PotentialCenterlineFunctorName,
		PotentialVelocityFunctorName,
	}
}

// NewFunctor returns the functor registered under name, constructed
// from its group in params
func NewFunctor(name string, params Params) (Functor, error) {
	c, ok := constructors[name]
	if !ok {
		return nil, fmt.Errorf("newFunctor: %w: %q", ErrUnknownFunctor, name)
	}
	return c(params), nil
}

// NewFunctors returns the functors registered under names, in order
func NewFunctors(names []string, params Params) ([]Functor, error) {
	functors := make([]Functor, 0, len(names))
	for _, name := range names {
		f, err := NewFunctor(name, params)
		if err != nil {
			return nil, err
		}
		functors = append(functors, f)
	}
	return functors, nil
}
