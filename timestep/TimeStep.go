// Package timestep implements timesteps of the agent-environment interaction
package timestep

import (
	"fmt"

	"github.com/samuelfneumann/gobark/world"
	"gonum.org/v1/gonum/mat"
)

// StepType denotes the type of step that a TimeStep can be, either  first
// environmental step, a middle step, or a last step
type StepType int

const (
	First StepType = iota
	Mid
	Last
)

func (s StepType) String() string {
	switch s {
	case First:
		return "First"
	case Last:
		return "Last"
	default:
		return "Mid"
	}
}

// EndType describes why an episode ended
type EndType int

const (
	// Running denotes a timestep that did not end the episode
	Running EndType = iota

	// TerminalStateReached denotes that some functor flagged the
	// step as terminal
	TerminalStateReached

	// Timeout denotes an episode cut off by an external step limit
	Timeout
)

func (e EndType) String() string {
	switch e {
	case TerminalStateReached:
		return "TerminalStateReached"
	case Timeout:
		return "Timeout"
	default:
		return "Running"
	}
}

// TimeStep packages together a single timestep in an environment. Info
// holds the signals and functor info merged on the step that produced
// the TimeStep.
type TimeStep struct {
	stepType    StepType
	endType     EndType
	Reward      float64
	Discount    float64
	Observation mat.Vector
	Number      int
	Info        world.Signals
}

// New returns a new TimeStep. Last timesteps created through New end
// with TerminalStateReached, use SetEnd to record another cause.
func New(t StepType, r, d float64, o mat.Vector, n int,
	info world.Signals) TimeStep {
	end := Running
	if t == Last {
		end = TerminalStateReached
	}
	return TimeStep{
		stepType:    t,
		endType:     end,
		Reward:      r,
		Discount:    d,
		Observation: o,
		Number:      n,
		Info:        info,
	}
}

// First returns whether a TimeStep is the first in an environment
func (t *TimeStep) First() bool {
	return t.stepType == First
}

// Mid returns whether a TimeStep is a middle step in an environment
func (t *TimeStep) Mid() bool {
	return t.stepType == Mid
}

// Last returns whether a TimeStep is the last step in an environment
func (t *TimeStep) Last() bool {
	return t.stepType == Last
}

// StepType returns the type of the TimeStep
func (t *TimeStep) StepType() StepType {
	return t.stepType
}

// EndType returns why the episode ended, or Running if it did not
func (t *TimeStep) EndType() EndType {
	return t.endType
}

// SetEnd marks the TimeStep as the last in the episode with the
// given cause. Setting Running reverts the step to a middle step.
func (t *TimeStep) SetEnd(e EndType) {
	t.endType = e
	if e == Running {
		if t.stepType == Last {
			t.stepType = Mid
		}
		return
	}
	t.stepType = Last
}

func (t TimeStep) String() string {
	str := "TimeStep | Type: %v  |  Reward:  %.2f  |  Discount: %.2f  |  " +
		"Step Number:  %v  |  End: %v"

	return fmt.Sprintf(str, t.stepType, t.Reward, t.Discount, t.Number,
		t.endType)
}
