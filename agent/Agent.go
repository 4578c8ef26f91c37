// Package agent defines the agent interface and a few fixed policies
// for driving the ego vehicle
package agent

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/environment"
	"github.com/samuelfneumann/gobark/timestep"
)

// Agent determines the implementation details of an agent or algorithm
type Agent interface {
	Learner
	Policy
}

// Learner observes the interaction with the environment. None of the
// agents in this package learn, but experiments drive every Agent
// through the full interface.
type Learner interface {
	// Observe records that an action lead to some timestep
	Observe(action mat.Vector, nextObs timestep.TimeStep) error

	// ObserveFirst records the first timestep in an episode
	ObserveFirst(timestep.TimeStep) error

	// EndEpisode performs cleanup at the end of an episode
	EndEpisode()
}

// Policy determines how agents select actions
type Policy interface {
	SelectAction(t timestep.TimeStep) *mat.VecDense
}

// Type names an agent constructible by New
type Type string

const (
	RandomAgent   Type = "random"
	GaussianAgent Type = "gaussian"
	ConstantAgent Type = "constant"
)

// Config configures an agent created by New
type Config struct {
	Type Type `json:"Type"`

	// Action is the constant action of ConstantAgent and the mean
	// action of GaussianAgent. A nil Action is the zero action.
	Action []float64 `json:"Action"`

	// Std is the per-dimension standard deviation of GaussianAgent
	Std []float64 `json:"Std"`
}

// New returns the agent described by c for actions described by spec
func New(c Config, spec environment.Spec, seed uint64) (Agent, error) {
	action := c.Action
	if action == nil {
		action = make([]float64, spec.Len())
	}
	if len(action) != spec.Len() {
		return nil, fmt.Errorf("new: action must have %v components, "+
			"have %v", spec.Len(), len(action))
	}

	switch c.Type {
	case RandomAgent:
		return NewRandom(spec, seed), nil

	case ConstantAgent:
		return NewConstant(mat.NewVecDense(len(action), action)), nil

	case GaussianAgent:
		if len(c.Std) != spec.Len() {
			return nil, fmt.Errorf("new: std must have %v components, "+
				"have %v", spec.Len(), len(c.Std))
		}
		return NewGaussian(action, c.Std, seed)
	}

	return nil, fmt.Errorf("new: no such agent type %q", c.Type)
}

// observer implements Learner for agents that do not learn
type observer struct{}

func (observer) Observe(mat.Vector, timestep.TimeStep) error { return nil }
func (observer) ObserveFirst(timestep.TimeStep) error         { return nil }
func (observer) EndEpisode()                                  {}
