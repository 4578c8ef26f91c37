package evaluator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
	"github.com/samuelfneumann/gobark/world/evaluation"
)

// Goal ends the episode when the ego agent has reached its goal
type Goal struct {
	params GoalParams
}

// NewGoal returns a new Goal functor
func NewGoal(params GoalParams) *Goal {
	return &Goal{params}
}

// Name implements the Functor interface
func (g *Goal) Name() string { return GoalFunctorName }

// Evaluate returns a terminal outcome with the goal reward if the
// goal reached signal is set
func (g *Goal) Evaluate(_ world.ObservedWorld, _ mat.Vector,
	signals world.Signals) (Outcome, error) {
	reached, err := signals.Bool(evaluation.GoalReachedName)
	if err != nil {
		return Neutral, fmt.Errorf("%v: %w", g.Name(), err)
	}
	return indicator(reached, g.params.GoalReward), nil
}
