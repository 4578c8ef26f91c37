package environment

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"

	"github.com/samuelfneumann/gobark/evaluator"
	"github.com/samuelfneumann/gobark/timestep"
	"github.com/samuelfneumann/gobark/utils/floatutils"
	"github.com/samuelfneumann/gobark/world/kinematic"
)

// ErrEpisodeEnded is returned by Runtime.Step when the previous step
// ended the episode
var ErrEpisodeEnded = errors.New("episode has ended")

// DefaultActionBounds returns the bounds of (acceleration, steering
// angle) actions
func DefaultActionBounds() []r1.Interval {
	return []r1.Interval{
		{Min: -0.5, Max: 0.5},
		{Min: -0.01, Max: 0.01},
	}
}

// Runtime is a single-agent Environment. On each Reset it creates a
// new world from the Scenario and resets the evaluator on it. On each
// Step it applies the (clipped) action to the ego vehicle, advances
// the world and evaluates the reward and termination of the step.
type Runtime struct {
	scenario  Scenario
	starter   Starter
	observer  Observer
	evaluator *evaluator.General
	ender     Ender

	stepTime     float64
	discount     float64
	actionBounds []r1.Interval

	world   *kinematic.World
	control *kinematic.Controlled
	last    timestep.TimeStep
}

// NewRuntime returns a new Runtime. The stepTime argument is the
// simulated time between steps in seconds and discount the discount
// reported on non-terminal steps.
func NewRuntime(s Scenario, starter Starter, o Observer,
	e *evaluator.General, stepTime, discount float64) (*Runtime, error) {
	if s == nil || starter == nil || o == nil || e == nil {
		return nil, fmt.Errorf("newRuntime: scenario, starter, observer " +
			"and evaluator must be non-nil")
	}
	if stepTime <= 0 {
		return nil, fmt.Errorf("newRuntime: step time must be positive, "+
			"have %v", stepTime)
	}
	if discount < 0 || discount > 1 {
		return nil, fmt.Errorf("newRuntime: discount %v out of range [0, 1]",
			discount)
	}

	return &Runtime{
		scenario:     s,
		starter:      starter,
		observer:     o,
		evaluator:    e,
		stepTime:     stepTime,
		discount:     discount,
		actionBounds: DefaultActionBounds(),
	}, nil
}

// SetEnder sets an Ender which may end episodes in addition to the
// evaluator's terminal flag
func (r *Runtime) SetEnder(e Ender) {
	r.ender = e
}

// Reset starts a new episode and returns its first TimeStep. The Info
// of the first TimeStep holds the base signals of the new world.
func (r *Runtime) Reset() (timestep.TimeStep, error) {
	w, control, err := r.scenario.Create(r.starter.Start())
	if err != nil {
		return timestep.TimeStep{}, fmt.Errorf("reset: %w", err)
	}
	r.evaluator.Reset(w)

	observed, err := w.Observe(EgoID)
	if err != nil {
		return timestep.TimeStep{}, fmt.Errorf("reset: %w", err)
	}

	r.world = w
	r.control = control
	r.last = timestep.New(timestep.First, 0, r.discount,
		r.observer.Observe(observed), 0, observed.Evaluate())
	return r.last, nil
}

// Step takes one step in the environment. The action is clipped to
// the action bounds before it is applied. Step returns the resulting
// TimeStep and whether the episode ended.
func (r *Runtime) Step(action mat.Vector) (timestep.TimeStep, bool, error) {
	if r.world == nil {
		return timestep.TimeStep{}, false,
			fmt.Errorf("step: %w", evaluator.ErrNotReset)
	}
	if r.last.Last() {
		return timestep.TimeStep{}, true, fmt.Errorf("step: %w",
			ErrEpisodeEnded)
	}
	if action.Len() != len(r.actionBounds) {
		return timestep.TimeStep{}, false, fmt.Errorf("step: action must "+
			"have %v components, have %v", len(r.actionBounds), action.Len())
	}

	clipped := floatutils.ClipVec(action, r.actionBounds)
	r.control.SetAction(clipped)
	r.world.Step(r.stepTime)

	observed, err := r.world.Observe(EgoID)
	if err != nil {
		return timestep.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}
	reward, terminal, info, err := r.evaluator.Evaluate(observed, clipped)
	if err != nil {
		return timestep.TimeStep{}, false, fmt.Errorf("step: %w", err)
	}

	stepType, discount := timestep.Mid, r.discount
	if terminal {
		stepType, discount = timestep.Last, 0
	}
	step := timestep.New(stepType, reward, discount,
		r.observer.Observe(observed), r.last.Number+1, info)
	if r.ender != nil {
		r.ender.End(&step)
	}

	r.last = step
	return step, step.Last(), nil
}

// World returns the world of the current episode, or nil before the
// first Reset
func (r *Runtime) World() *kinematic.World {
	return r.world
}

// ObservationSpec returns the observation specification
func (r *Runtime) ObservationSpec() Spec {
	return r.observer.ObservationSpec()
}

// ActionSpec returns the action specification
func (r *Runtime) ActionSpec() Spec {
	return NewBoundedSpec(Action, r.actionBounds)
}

// DiscountSpec returns the discount specification
func (r *Runtime) DiscountSpec() Spec {
	return NewBoundedSpec(Discount, []r1.Interval{{Min: 0, Max: r.discount}})
}
