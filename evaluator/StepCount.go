package evaluator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
	"github.com/samuelfneumann/gobark/world/evaluation"
)

// StepCount ends the episode once the step count exceeds a maximum.
// A step count equal to the maximum does not end the episode.
type StepCount struct {
	params StepCountParams
}

// NewStepCount returns a new StepCount functor
func NewStepCount(params StepCountParams) *StepCount {
	return &StepCount{params}
}

// Name implements the Functor interface
func (s *StepCount) Name() string { return StepCountFunctorName }

// Evaluate returns a terminal outcome with the step count reward if the
// step count signal is larger than the maximum step count
func (s *StepCount) Evaluate(_ world.ObservedWorld, _ mat.Vector,
	signals world.Signals) (Outcome, error) {
	steps, err := signals.Float(evaluation.StepCountName)
	if err != nil {
		return Neutral, fmt.Errorf("%v: %w", s.Name(), err)
	}
	return indicator(steps > float64(s.params.MaxStepCount),
		s.params.StepCountReward), nil
}
