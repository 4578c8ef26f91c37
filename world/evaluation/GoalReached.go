package evaluation

import "github.com/samuelfneumann/gobark/world"

// GoalReached reports whether the ego agent's position lies inside its
// goal definition
type GoalReached struct{}

// NewGoalReached returns a new GoalReached provider
func NewGoalReached() *GoalReached {
	return &GoalReached{}
}

// Evaluate returns a bool
func (g *GoalReached) Evaluate(w world.ObservedWorld) interface{} {
	ego := w.EgoAgent()
	return ego.GoalDefinition().Contains(position(ego))
}
