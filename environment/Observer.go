package environment

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
	"gonum.org/v1/gonum/spatial/r2"

	"github.com/samuelfneumann/gobark/world"
)

// Observer converts an observed world into an observation vector
type Observer interface {
	Observe(w world.ObservedWorld) *mat.VecDense
	ObservationSpec() Spec
}

// NearestAgents observes the ego state (x, y, theta, velocity)
// followed by the relative position and velocity (dx, dy, dv) of the
// NumOthers agents nearest to the ego. Missing agents are padded with
// an agent Range metres ahead moving at the ego velocity.
type NearestAgents struct {
	NumOthers int
	Range     float64
}

// NewNearestAgents returns a new NearestAgents observer
func NewNearestAgents(numOthers int, observationRange float64) NearestAgents {
	return NearestAgents{numOthers, observationRange}
}

// Observe returns the observation vector of w
func (n NearestAgents) Observe(w world.ObservedWorld) *mat.VecDense {
	obs := mat.NewVecDense(4+3*n.NumOthers, nil)

	state := w.EgoAgent().State()
	ego := r2.Vec{X: world.XPosition.At(state), Y: world.YPosition.At(state)}
	egoVel := world.VelPosition.At(state)

	obs.SetVec(0, ego.X)
	obs.SetVec(1, ego.Y)
	obs.SetVec(2, world.ThetaPosition.At(state))
	obs.SetVec(3, egoVel)

	type relative struct {
		d    r2.Vec
		dv   float64
		dist float64
	}
	others := w.OtherAgents()
	rel := make([]relative, 0, len(others))
	for _, other := range others {
		s := other.State()
		d := r2.Sub(r2.Vec{X: world.XPosition.At(s),
			Y: world.YPosition.At(s)}, ego)
		dist := r2.Norm(d)
		if dist > n.Range {
			continue
		}
		rel = append(rel, relative{d, world.VelPosition.At(s) - egoVel, dist})
	}
	sort.Slice(rel, func(i, j int) bool { return rel[i].dist < rel[j].dist })

	for k := 0; k < n.NumOthers; k++ {
		i := 4 + 3*k
		if k >= len(rel) {
			obs.SetVec(i, n.Range)
			continue
		}
		obs.SetVec(i, rel[k].d.X)
		obs.SetVec(i+1, rel[k].d.Y)
		obs.SetVec(i+2, rel[k].dv)
	}
	return obs
}

// ObservationSpec returns the specification of the observations
func (n NearestAgents) ObservationSpec() Spec {
	inf := math.Inf(1)
	bounds := []r1.Interval{
		{Min: -inf, Max: inf},
		{Min: -inf, Max: inf},
		{Min: -inf, Max: inf},
		{Min: 0, Max: inf},
	}
	for k := 0; k < n.NumOthers; k++ {
		bounds = append(bounds,
			r1.Interval{Min: -n.Range, Max: n.Range},
			r1.Interval{Min: -n.Range, Max: n.Range},
			r1.Interval{Min: -inf, Max: inf},
		)
	}
	return NewBoundedSpec(Observation, bounds)
}
