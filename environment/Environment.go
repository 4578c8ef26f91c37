// Package environment wraps a simulated driving world, an observer and
// a general evaluator into an episodic environment that agents can
// interact with
package environment

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/timestep"
)

// Starter implements a distribution of starting states and samples starting
// states for environments
type Starter interface {
	Start() mat.Vector
}

// Ender determines when episodes should be ended, independently of the
// terminal flag produced by the evaluator
type Ender interface {
	// End returns whether the episode should end, marking t as the
	// last step if so
	End(t *timestep.TimeStep) bool
}

// Environment implements a simualted environment
type Environment interface {
	Reset() (timestep.TimeStep, error)
	Step(action mat.Vector) (timestep.TimeStep, bool, error)
	ObservationSpec() Spec
	ActionSpec() Spec
	DiscountSpec() Spec
}
