package agent

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/timestep"
)

// Constant always selects the same action
type Constant struct {
	observer
	action *mat.VecDense
}

// NewConstant returns a new Constant agent taking action a
func NewConstant(a mat.Vector) *Constant {
	return &Constant{action: mat.VecDenseCopyOf(a)}
}

// SelectAction returns a copy of the constant action
func (c *Constant) SelectAction(timestep.TimeStep) *mat.VecDense {
	return mat.VecDenseCopyOf(c.action)
}
