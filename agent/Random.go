package agent

import (
	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/samuelfneumann/gobark/environment"
	"github.com/samuelfneumann/gobark/timestep"
)

// Random selects actions uniformly at random within the bounds of an
// action specification
type Random struct {
	observer
	actionDims int
	dist       *distmv.Uniform
}

// NewRandom returns a new Random agent
func NewRandom(spec environment.Spec, seed uint64) *Random {
	source := rand.NewSource(seed)
	return &Random{
		actionDims: spec.Len(),
		dist:       distmv.NewUniform(spec.Bounds(), source),
	}
}

// SelectAction samples an action, ignoring the timestep
func (r *Random) SelectAction(timestep.TimeStep) *mat.VecDense {
	return mat.NewVecDense(r.actionDims, r.dist.Rand(nil))
}
