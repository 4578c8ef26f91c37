package agent

import (
	"fmt"

	"golang.org/x/exp/rand"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat/distmv"

	"github.com/samuelfneumann/gobark/timestep"
)

// Gaussian samples actions from a fixed multi-dimensional Gaussian
// with diagonal covariance
type Gaussian struct {
	observer
	actionDims int
	dist       *distmv.Normal
}

// NewGaussian returns a new Gaussian agent with the given per-dimension
// mean and standard deviation
func NewGaussian(mean, std []float64, seed uint64) (*Gaussian, error) {
	if len(mean) != len(std) {
		return nil, fmt.Errorf("newGaussian: mean and std lengths differ "+
			"\n\tmean(%v) \n\tstd(%v)", len(mean), len(std))
	}

	variance := make([]float64, len(std))
	for i, s := range std {
		if s <= 0 {
			return nil, fmt.Errorf("newGaussian: std must be positive, "+
				"have %v at index %v", s, i)
		}
		variance[i] = s * s
	}

	cov := mat.NewDiagDense(len(variance), variance)
	dist, ok := distmv.NewNormal(mean, cov, rand.NewSource(seed))
	if !ok {
		return nil, fmt.Errorf("newGaussian: covariance is not positive " +
			"definite")
	}

	return &Gaussian{actionDims: len(mean), dist: dist}, nil
}

// SelectAction samples an action, ignoring the timestep
func (g *Gaussian) SelectAction(timestep.TimeStep) *mat.VecDense {
	return mat.NewVecDense(g.actionDims, g.dist.Rand(nil))
}
