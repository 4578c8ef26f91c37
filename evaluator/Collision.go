package evaluator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
	"github.com/samuelfneumann/gobark/world/evaluation"
)

// Collision ends the episode when the ego agent has collided
type Collision struct {
	params CollisionParams
}

// NewCollision returns a new Collision functor
func NewCollision(params CollisionParams) *Collision {
	return &Collision{params}
}

// Name implements the Functor interface
func (c *Collision) Name() string { return CollisionFunctorName }

// Evaluate returns a terminal outcome with the collision reward if the
// collision signal is set
func (c *Collision) Evaluate(_ world.ObservedWorld, _ mat.Vector,
	signals world.Signals) (Outcome, error) {
	collided, err := signals.Bool(evaluation.CollisionName)
	if err != nil {
		return Neutral, fmt.Errorf("%v: %w", c.Name(), err)
	}
	return indicator(collided, c.params.CollisionReward), nil
}
