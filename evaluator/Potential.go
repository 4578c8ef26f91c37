package evaluator

import (
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
)

// potentialBased is embedded by shaping functors which reward the
// discounted difference of a potential over the last two states of the
// ego agent:
//
//	r = gamma * phi(s') - phi(s)
//
// Shaping of this form preserves the optimal policy of the unshaped
// task, so potential-based functors never end the episode.
type potentialBased struct{}

// prevAndCurState returns the states of the last two history entries of
// agent a. If fewer than two entries exist, ok is false.
func (potentialBased) prevAndCurState(a world.Agent) (prev, cur mat.Vector,
	ok bool) {
	hist := a.History()
	if len(hist) < 2 {
		return nil, nil, false
	}
	return hist[len(hist)-2].State, hist[len(hist)-1].State, true
}

// shape returns the outcome for potentials prev and cur
func (potentialBased) shape(gamma, prev, cur float64) Outcome {
	return Outcome{Reward: gamma*cur - prev}
}

// DistancePotential returns 1 - (d/dMax)^b
func DistancePotential(d, dMax, b float64) float64 {
	return 1 - math.Pow(d/dMax, b)
}

// VelocityPotential returns 1 - (|v-vDes|/vDevMax)^a
func VelocityPotential(v, vDes, vDevMax, a float64) float64 {
	return 1 - math.Pow(math.Abs(v-vDes)/vDevMax, a)
}
