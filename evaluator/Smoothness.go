package evaluator

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
)

// Smoothness ends the episode when the rate of change of the ego
// agent's control inputs between its last two recorded actions exceeds
// a per-input cap. The first action component is the acceleration and
// the second the steering input; further components are not checked.
type Smoothness struct {
	params SmoothnessParams
}

// NewSmoothness returns a new Smoothness functor
func NewSmoothness(params SmoothnessParams) *Smoothness {
	return &Smoothness{params}
}

// Name implements the Functor interface
func (s *Smoothness) Name() string { return SmoothnessFunctorName }

// Evaluate returns a terminal outcome with the input rate violation
// reward if either input rate exceeds its cap. With fewer than two
// history entries the outcome is neutral.
func (s *Smoothness) Evaluate(w world.ObservedWorld, _ mat.Vector,
	_ world.Signals) (Outcome, error) {
	hist := w.EgoAgent().History()
	if len(hist) < 2 {
		return Neutral, nil
	}

	prev := mat.Col(nil, 0, hist[len(hist)-2].Action)
	cur := mat.Col(nil, 0, hist[len(hist)-1].Action)
	if len(prev) != len(cur) {
		return Neutral, fmt.Errorf("%v: action sizes differ between "+
			"steps \n\twant(%v) \n\thave(%v)", s.Name(), len(prev), len(cur))
	}

	rate := floats.SubTo(make([]float64, len(cur)), cur, prev)
	floats.Scale(1/s.params.Dt, rate)

	caps := []float64{s.params.MaxAccRate, s.params.MaxSteeringRate}
	for i := 0; i < len(caps) && i < len(rate); i++ {
		if math.Abs(rate[i]) > caps[i] {
			return indicator(true, s.params.InputRateViolation), nil
		}
	}
	return Neutral, nil
}
