// Package kinematic implements a small traffic simulator in which
// vehicles follow the kinematic single track model. It implements the
// world.World and world.ObservedWorld interfaces so that reward
// engines can be run against it.
package kinematic

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world"
)

// World is a kinematic traffic world
type World struct {
	agents     []*Agent
	drivable   geometry.Polygon
	evaluators map[string]world.Evaluator
	steps      int
}

// New returns a new World with no agents
func New(drivableArea geometry.Polygon) *World {
	return &World{
		drivable:   drivableArea,
		evaluators: make(map[string]world.Evaluator),
	}
}

// AddAgent adds an agent to the world. AddAgent panics if an agent with
// the same id already exists.
func (w *World) AddAgent(a *Agent) {
	if w.Agent(a.ID()) != nil {
		panic(fmt.Sprintf("addAgent: agent %v already exists", a.ID()))
	}
	w.agents = append(w.agents, a)
}

// Agent returns the agent with the given id, or nil
func (w *World) Agent(id int) *Agent {
	for _, a := range w.agents {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// Agents returns all agents in the order they were added
func (w *World) Agents() []*Agent {
	return w.agents
}

// DrivableArea returns the drivable area of the world
func (w *World) DrivableArea() geometry.Polygon {
	return w.drivable
}

// Steps returns the number of steps simulated so far
func (w *World) Steps() int {
	return w.steps
}

// AddEvaluator registers e under name, replacing any existing
// Evaluator with that name
func (w *World) AddEvaluator(name string, e world.Evaluator) {
	w.evaluators[name] = e
}

// ClearEvaluators removes all registered Evaluators
func (w *World) ClearEvaluators() {
	w.evaluators = make(map[string]world.Evaluator)
}

// Evaluators returns the sorted names of the registered Evaluators
func (w *World) Evaluators() []string {
	names := make([]string, 0, len(w.evaluators))
	for name := range w.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Step advances every agent by dt seconds. All agents plan against the
// same world state before any of them moves.
func (w *World) Step(dt float64) {
	actions := make([]*mat.VecDense, len(w.agents))
	for i, a := range w.agents {
		actions[i] = a.plan(w)
	}
	for i, a := range w.agents {
		a.advance(actions[i], dt)
	}
	w.steps++
}

// Observe returns the world as observed by the agent with id egoID
func (w *World) Observe(egoID int) (*ObservedWorld, error) {
	ego := w.Agent(egoID)
	if ego == nil {
		return nil, fmt.Errorf("observe: no agent with id %v", egoID)
	}
	return &ObservedWorld{w, ego}, nil
}

// ObservedWorld is a World observed from an ego agent
type ObservedWorld struct {
	w   *World
	ego *Agent
}

// Evaluate runs all registered Evaluators in name order
func (o *ObservedWorld) Evaluate() world.Signals {
	signals := make(world.Signals, len(o.w.evaluators))
	for _, name := range o.w.Evaluators() {
		signals[name] = o.w.evaluators[name].Evaluate(o)
	}
	return signals
}

// EgoAgent returns the ego agent
func (o *ObservedWorld) EgoAgent() world.Agent {
	return o.ego
}

// OtherAgents returns every agent except the ego agent
func (o *ObservedWorld) OtherAgents() []world.Agent {
	others := make([]world.Agent, 0, len(o.w.agents)-1)
	for _, a := range o.w.agents {
		if a != o.ego {
			others = append(others, a)
		}
	}
	return others
}

// DrivableArea returns the drivable area of the world
func (o *ObservedWorld) DrivableArea() geometry.Polygon {
	return o.w.drivable
}

// Step returns the number of steps simulated so far
func (o *ObservedWorld) Step() int {
	return o.w.steps
}
