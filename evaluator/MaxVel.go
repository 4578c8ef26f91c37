package evaluator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
)

// MaxVel ends the episode when the current velocity of the ego agent
// exceeds a cap
type MaxVel struct {
	params MaxVelParams
}

// NewMaxVel returns a new MaxVel functor
func NewMaxVel(params MaxVelParams) *MaxVel {
	return &MaxVel{params}
}

// Name implements the Functor interface
func (m *MaxVel) Name() string { return MaxVelFunctorName }

// Evaluate returns a terminal outcome with the violation reward if the
// ego velocity is larger than the cap
func (m *MaxVel) Evaluate(w world.ObservedWorld, _ mat.Vector,
	_ world.Signals) (Outcome, error) {
	vel := world.VelPosition.At(w.EgoAgent().State())
	return indicator(vel > m.params.MaxVel,
		m.params.MaxVelViolationReward), nil
}
