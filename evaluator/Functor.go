// Package evaluator implements the reward and termination engine that
// sits between a simulated world step and a reinforcement learning
// training loop.
//
// Each step, a General evaluator collects the signals of the base
// signal providers registered on the world and passes them, in a fixed
// order, to a list of Functors. Each Functor reports whether the
// episode should end, a reward contribution, and an optional update to
// the diagnostic signals. Rewards are summed and terminal flags are
// OR-ed, so the numeric outcome does not depend on the functor order.
// Info updates are merged with the later functor winning on a key
// collision, which is the only order-sensitive part of the outcome.
package evaluator

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
)

// Outcome is the result of evaluating a single Functor
type Outcome struct {
	Terminal bool
	Reward   float64
	Info     world.Signals
}

// Neutral is the outcome of a functor whose condition did not trigger
var Neutral = Outcome{}

// Functor is a composable unit of the reward engine.
//
// Evaluate must be a pure function of its arguments and the Functor's
// fixed parameters. It must not modify signals; additions to the
// signals are returned in Outcome.Info and merged by the caller. An
// error is returned when a signal the Functor depends on is missing,
// which indicates that base signal providers were not registered.
type Functor interface {
	Name() string
	Evaluate(w world.ObservedWorld, action mat.Vector,
		signals world.Signals) (Outcome, error)
}

// FunctorFunc adapts an ordinary function to a Functor
type FunctorFunc struct {
	name string
	f    func(world.ObservedWorld, mat.Vector, world.Signals) (Outcome, error)
}

// NewFunctorFunc returns a Functor named name which evaluates f
func NewFunctorFunc(name string, f func(world.ObservedWorld, mat.Vector,
	world.Signals) (Outcome, error)) *FunctorFunc {
	return &FunctorFunc{name, f}
}

// Name implements the Functor interface
func (f *FunctorFunc) Name() string { return f.name }

// Evaluate implements the Functor interface
func (f *FunctorFunc) Evaluate(w world.ObservedWorld, action mat.Vector,
	signals world.Signals) (Outcome, error) {
	return f.f(w, action, signals)
}

// indicator returns the outcome of a functor which ends the episode
// with the given reward when triggered
func indicator(triggered bool, reward float64) Outcome {
	if triggered {
		return Outcome{Terminal: true, Reward: reward}
	}
	return Neutral
}
