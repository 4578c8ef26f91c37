package evaluator

import (
	"errors"
	"fmt"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
	"github.com/samuelfneumann/gobark/world/evaluation"
)

// ErrNotReset is returned by General.Evaluate when Reset has never been
// called
var ErrNotReset = errors.New("evaluator has not been reset")

// General is the general evaluator. It holds an ordered list of
// Functors and the set of base signal providers it registers on every
// world it is reset with.
//
// A General is not safe for concurrent use. Each environment instance
// should own its own General; Params may be shared.
type General struct {
	functors  []Functor
	providers []evaluation.Named
	reset     bool
}

// NewGeneral returns a new General evaluator which evaluates functors
// in the given order and registers providers on Reset. If functors is
// nil, the default functors are constructed from DefaultParams. If
// providers is nil, evaluation.Defaults is used.
func NewGeneral(functors []Functor, providers []evaluation.Named) *General {
	if functors == nil {
		var err error
		functors, err = NewFunctors(DefaultFunctorNames(), DefaultParams())
		if err != nil {
			panic(fmt.Sprintf("newGeneral: %v", err))
		}
	}
	if providers == nil {
		providers = evaluation.Defaults()
	}

	for i, f := range functors {
		if f == nil {
			panic(fmt.Sprintf("newGeneral: functor %v is nil", i))
		}
	}

	return &General{
		functors:  append([]Functor(nil), functors...),
		providers: append([]evaluation.Named(nil), providers...),
	}
}

// NewDefaultGeneral returns a General evaluator with the default
// functors built from params and the default base signal providers
func NewDefaultGeneral(params Params) (*General, error) {
	functors, err := NewFunctors(DefaultFunctorNames(), params)
	if err != nil {
		return nil, err
	}
	return NewGeneral(functors, nil), nil
}

// Functors returns the functors in evaluation order
func (g *General) Functors() []Functor {
	return append([]Functor(nil), g.functors...)
}

// Evaluate evaluates the functors on the observed world after action
// was taken and returns the summed reward, whether any functor ended
// the episode, and the base signals merged with every functor's info
// update. Info updates are merged in functor order with later functors
// overwriting earlier ones on a key collision, and each functor sees
// the updates of the functors before it.
//
// An error is returned if any functor fails, most often because a base
// signal it needs is missing from the world.
func (g *General) Evaluate(w world.ObservedWorld, action mat.Vector) (
	reward float64, terminal bool, info world.Signals, err error) {
	if !g.reset {
		return 0, false, nil, fmt.Errorf("evaluate: %w", ErrNotReset)
	}

	info = w.Evaluate()
	if info == nil {
		info = make(world.Signals)
	}

	rewards := make([]float64, len(g.functors))
	for i, f := range g.functors {
		outcome, err := f.Evaluate(w, action, info)
		if err != nil {
			return 0, false, nil, fmt.Errorf("evaluate: %w", err)
		}

		info = world.Merge(info, outcome.Info)
		rewards[i] = outcome.Reward
		terminal = terminal || outcome.Terminal
	}

	// Summing in sorted order makes the total independent of functor
	// order down to the last bit
	sort.Float64s(rewards)
	return floats.Sum(rewards), terminal, info, nil
}

// Reset removes all base signal providers from w and registers the
// evaluator's providers under their names. Reset must be called at the
// start of every episode, before the first call to Evaluate. The
// argument world is returned.
func (g *General) Reset(w world.World) world.World {
	w.ClearEvaluators()
	for _, p := range g.providers {
		w.AddEvaluator(p.Name, p.Evaluator)
	}
	g.reset = true
	return w
}
