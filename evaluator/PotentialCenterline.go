package evaluator

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world"
)

// ErrNoLane is returned when the ego agent's road corridor has no lanes
var ErrNoLane = errors.New("road corridor has no lane corridors")

// ErrEmptyCenterline is returned when the centerline of the ego
// agent's lane has no points
var ErrEmptyCenterline = errors.New("lane centerline has no points")

// PotentialCenterline rewards the ego agent for moving towards the
// centerline of the first lane of its road corridor
type PotentialCenterline struct {
	potentialBased
	params PotentialCenterlineParams
}

// NewPotentialCenterline returns a new PotentialCenterline functor
func NewPotentialCenterline(
	params PotentialCenterlineParams) *PotentialCenterline {
	return &PotentialCenterline{params: params}
}

// Name implements the Functor interface
func (p *PotentialCenterline) Name() string {
	return PotentialCenterlineFunctorName
}

// Evaluate returns the shaping reward for the change in distance to
// the lane centerline over the last two recorded states. The outcome
// is never terminal, and is neutral with fewer than two history
// entries.
func (p *PotentialCenterline) Evaluate(w world.ObservedWorld, _ mat.Vector,
	_ world.Signals) (Outcome, error) {
	ego := w.EgoAgent()
	prev, cur, ok := p.prevAndCurState(ego)
	if !ok {
		return Neutral, nil
	}

	lanes := ego.RoadCorridor().LaneCorridors()
	if len(lanes) == 0 {
		return Neutral, fmt.Errorf("%v: %w", p.Name(), ErrNoLane)
	}
	centerLine := lanes[0].CenterLine()
	if centerLine.Len() == 0 {
		return Neutral, fmt.Errorf("%v: %w", p.Name(), ErrEmptyCenterline)
	}

	prevPot := p.potential(distanceToCenterline(centerLine, prev))
	curPot := p.potential(distanceToCenterline(centerLine, cur))
	return p.shape(p.params.Gamma, prevPot, curPot), nil
}

func (p *PotentialCenterline) potential(d float64) float64 {
	return DistancePotential(d, p.params.MaxDist, p.params.DistExponent)
}

// distanceToCenterline returns the planar distance between the
// position in state and centerLine
func distanceToCenterline(centerLine geometry.Line, state mat.Vector) float64 {
	pos := geometry.NewPoint(world.XPosition.At(state),
		world.YPosition.At(state))
	return geometry.Distance(centerLine, pos)
}
