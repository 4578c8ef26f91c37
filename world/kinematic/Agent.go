package kinematic

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world"
)

const (
	// VehicleLength and VehicleWidth give the default vehicle
	// footprint, in metres
	VehicleLength float64 = 4.5
	VehicleWidth  float64 = 1.8

	// DefaultMaxHistory is the default number of (state, action) pairs
	// an Agent retains
	DefaultMaxHistory int = 50
)

// Agent is a vehicle in a kinematic World
type Agent struct {
	id       int
	state    *mat.VecDense
	shape    geometry.Polygon
	goal     geometry.Polygon
	corridor world.RoadCorridor
	behavior Behavior
	model    SingleTrack

	history    []world.HistoryEntry
	maxHistory int
}

// NewAgent returns a new Agent with a default vehicle footprint and
// model. NewAgent panics if the initial state is shorter than
// world.MinStateSize.
func NewAgent(id int, state mat.Vector, goal geometry.Polygon,
	corridor world.RoadCorridor, behavior Behavior) *Agent {
	if state.Len() < world.MinStateSize {
		panic(fmt.Sprintf("newAgent: state too short \n\twant(>=%v) "+
			"\n\thave(%v)", world.MinStateSize, state.Len()))
	}

	return &Agent{
		id:         id,
		state:      mat.VecDenseCopyOf(state),
		shape:      geometry.NewRectangle(VehicleLength, VehicleWidth),
		goal:       goal,
		corridor:   corridor,
		behavior:   behavior,
		model:      NewSingleTrack(Wheelbase),
		maxHistory: DefaultMaxHistory,
	}
}

// SetShape sets the footprint of the agent in its local frame
func (a *Agent) SetShape(shape geometry.Polygon) {
	a.shape = shape
}

// SetMaxHistory sets the number of history entries the agent retains.
// SetMaxHistory panics if max < 2, since shaping needs two entries.
func (a *Agent) SetMaxHistory(max int) {
	if max < 2 {
		panic(fmt.Sprintf("setMaxHistory: history must retain at least "+
			"two entries \n\twant(>=2) \n\thave(%v)", max))
	}
	a.maxHistory = max
	a.trimHistory()
}

// ID returns the id of the agent
func (a *Agent) ID() int { return a.id }

// State returns a copy of the current state
func (a *Agent) State() mat.Vector {
	return mat.VecDenseCopyOf(a.state)
}

// History returns the recorded (state, action) pairs, most recent last
func (a *Agent) History() []world.HistoryEntry { return a.history }

// Shape returns the footprint of the agent in its local frame
func (a *Agent) Shape() geometry.Polygon { return a.shape }

// GoalDefinition returns the region the agent must reach
func (a *Agent) GoalDefinition() geometry.Polygon { return a.goal }

// RoadCorridor returns the corridor the agent drives in
func (a *Agent) RoadCorridor() world.RoadCorridor { return a.corridor }

// Behavior returns the behavior of the agent
func (a *Agent) Behavior() Behavior { return a.behavior }

// plan returns a copy of the action the agent's behavior selects in w
func (a *Agent) plan(w *World) *mat.VecDense {
	return mat.VecDenseCopyOf(a.behavior.Plan(w, a))
}

// advance applies action for dt seconds and records the new
// (state, action) pair
func (a *Agent) advance(action *mat.VecDense, dt float64) {
	a.state = a.model.Step(a.state, action, dt)

	a.history = append(a.history, world.HistoryEntry{
		State:  mat.VecDenseCopyOf(a.state),
		Action: action,
	})
	a.trimHistory()
}

func (a *Agent) trimHistory() {
	if over := len(a.history) - a.maxHistory; over > 0 {
		a.history = append(a.history[:0:0], a.history[over:]...)
	}
}
