package evaluator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
)

// PotentialVelocity rewards the ego agent for moving its velocity
// towards a desired velocity
type PotentialVelocity struct {
	potentialBased
	params PotentialVelocityParams
}

// NewPotentialVelocity returns a new PotentialVelocity functor
func NewPotentialVelocity(params PotentialVelocityParams) *PotentialVelocity {
	return &PotentialVelocity{params: params}
}

// Name implements the Functor interface
func (p *PotentialVelocity) Name() string {
	return PotentialVelocityFunctorName
}

// Evaluate returns the shaping reward for the change in velocity over
// the last two recorded states. The same deviation cap is used for
// both states. The outcome is never terminal, and is neutral with fewer
// than two history entries.
func (p *PotentialVelocity) Evaluate(w world.ObservedWorld, _ mat.Vector,
	_ world.Signals) (Outcome, error) {
	prev, cur, ok := p.prevAndCurState(w.EgoAgent())
	if !ok {
		return Neutral, nil
	}

	prevPot := p.potential(world.VelPosition.At(prev))
	curPot := p.potential(world.VelPosition.At(cur))
	return p.shape(p.params.Gamma, prevPot, curPot), nil
}

func (p *PotentialVelocity) potential(v float64) float64 {
	return VelocityPotential(v, p.params.DesiredVel, p.params.MaxVel,
		p.params.VelExponent)
}
