package evaluation

import "github.com/samuelfneumann/gobark/world"

// StepCount reports the number of steps the world has been simulated
// for
type StepCount struct{}

// NewStepCount returns a new StepCount provider
func NewStepCount() *StepCount {
	return &StepCount{}
}

// Evaluate returns an int
func (s *StepCount) Evaluate(w world.ObservedWorld) interface{} {
	return w.Step()
}
