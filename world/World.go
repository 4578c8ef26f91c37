// Package world outlines the interfaces a traffic simulator implements
// so that its worlds can be evaluated. A World is the mutable simulated
// world on which base signal providers (Evaluators) are registered. An
// ObservedWorld is the world as seen from the ego agent at one step,
// and is what reward functors inspect.
package world

import (
	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/geometry"
)

// StateDefinition indexes the components of an agent state vector
type StateDefinition int

// State vector layout
const (
	TimePosition StateDefinition = iota
	XPosition
	YPosition
	ThetaPosition
	VelPosition

	// MinStateSize is the minimum length of a valid state vector
	MinStateSize int = 5
)

// At returns the component of state described by the StateDefinition
func (s StateDefinition) At(state mat.Vector) float64 {
	return state.AtVec(int(s))
}

// Evaluator is a simulator-native base signal provider. Each
// Evaluator computes a single named boolean or numeric fact about the
// current world, such as whether the ego agent has collided.
type Evaluator interface {
	Evaluate(w ObservedWorld) interface{}
}

// EvaluatorFunc adapts an ordinary function to an Evaluator
type EvaluatorFunc func(w ObservedWorld) interface{}

// Evaluate calls f(w)
func (f EvaluatorFunc) Evaluate(w ObservedWorld) interface{} {
	return f(w)
}

// World is a simulated world on which base signal providers can be
// registered
type World interface {
	// AddEvaluator registers e under name, replacing any Evaluator
	// previously registered under the same name
	AddEvaluator(name string, e Evaluator)

	// ClearEvaluators removes all registered Evaluators
	ClearEvaluators()

	// Evaluators returns the names of all registered evaluators
	Evaluators() []string
}

// ObservedWorld is a World as observed by the ego agent at a single
// simulation step
type ObservedWorld interface {
	// Evaluate runs every Evaluator registered on the World and
	// returns their results keyed by registration name
	Evaluate() Signals

	// EgoAgent returns the agent under evaluation
	EgoAgent() Agent

	// OtherAgents returns all agents except the ego agent
	OtherAgents() []Agent

	// DrivableArea returns the region agents may drive in
	DrivableArea() geometry.Polygon

	// Step returns the number of steps taken since the world was
	// created
	Step() int
}

// HistoryEntry is a (state, action) pair recorded for an agent at a
// single step
type HistoryEntry struct {
	State  mat.Vector
	Action mat.Vector
}

// Agent is an agent in the World
type Agent interface {
	ID() int

	// State returns the current state, laid out according to the
	// StateDefinition constants
	State() mat.Vector

	// History returns the recorded (state, action) pairs, most
	// recent last. Callers must not modify the returned slice.
	History() []HistoryEntry

	// Shape returns the footprint of the agent in its local frame
	Shape() geometry.Polygon

	// GoalDefinition returns the region the agent must reach
	GoalDefinition() geometry.Polygon

	RoadCorridor() RoadCorridor
}

// RoadCorridor is the set of lanes an agent can use to reach its goal
type RoadCorridor interface {
	LaneCorridors() []LaneCorridor
}

// LaneCorridor is a single lane of a RoadCorridor
type LaneCorridor interface {
	CenterLine() geometry.Line
}
