package evaluator

import (
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/geometry"
	"github.com/samuelfneumann/gobark/world"
)

// fakeAgent is an agent with a fixed state and history
type fakeAgent struct {
	state    mat.Vector
	history  []world.HistoryEntry
	corridor world.RoadCorridor
}

func (a *fakeAgent) ID() int                          { return 0 }
func (a *fakeAgent) State() mat.Vector                { return a.state }
func (a *fakeAgent) History() []world.HistoryEntry    { return a.history }
func (a *fakeAgent) Shape() geometry.Polygon          { return geometry.NewRectangle(4, 2) }
func (a *fakeAgent) GoalDefinition() geometry.Polygon { return geometry.NewRectangle(1, 1) }
func (a *fakeAgent) RoadCorridor() world.RoadCorridor { return a.corridor }

type fakeCorridor struct {
	lanes []world.LaneCorridor
}

func (c fakeCorridor) LaneCorridors() []world.LaneCorridor { return c.lanes }

type fakeLane struct {
	line geometry.Line
}

func (l fakeLane) CenterLine() geometry.Line { return l.line }

// fakeWorld returns fixed signals when no evaluators are registered,
// and otherwise runs its registered evaluators
type fakeWorld struct {
	signals    world.Signals
	ego        *fakeAgent
	evaluators map[string]world.Evaluator
	adds       int
}

func newFakeWorld(signals world.Signals) *fakeWorld {
	return &fakeWorld{
		signals: signals,
		ego: &fakeAgent{
			state:    state(0, 0, 0, 5),
			corridor: xAxisCorridor(),
		},
		evaluators: make(map[string]world.Evaluator),
	}
}

func (w *fakeWorld) Evaluate() world.Signals {
	if len(w.evaluators) == 0 {
		return w.signals.Clone()
	}
	s := make(world.Signals)
	for name, e := range w.evaluators {
		s[name] = e.Evaluate(w)
	}
	return s
}

func (w *fakeWorld) EgoAgent() world.Agent         { return w.ego }
func (w *fakeWorld) OtherAgents() []world.Agent     { return nil }
func (w *fakeWorld) DrivableArea() geometry.Polygon { return geometry.NewRectangle(100, 100) }
func (w *fakeWorld) Step() int                      { return 0 }

func (w *fakeWorld) AddEvaluator(name string, e world.Evaluator) {
	w.adds++
	w.evaluators[name] = e
}

func (w *fakeWorld) ClearEvaluators() {
	w.evaluators = make(map[string]world.Evaluator)
}

func (w *fakeWorld) Evaluators() []string {
	names := make([]string, 0, len(w.evaluators))
	for name := range w.evaluators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// state returns a state vector at time 0
func state(x, y, theta, v float64) *mat.VecDense {
	return mat.NewVecDense(world.MinStateSize, []float64{0, x, y, theta, v})
}

func action(acc, steer float64) *mat.VecDense {
	return mat.NewVecDense(2, []float64{acc, steer})
}

// xAxisCorridor returns a corridor whose only lane runs along the x
// axis
func xAxisCorridor() fakeCorridor {
	line := geometry.NewLine(geometry.NewPoint(-1000, 0),
		geometry.NewPoint(1000, 0))
	return fakeCorridor{[]world.LaneCorridor{fakeLane{line}}}
}

// baseSignals returns a complete set of base signals
func baseSignals(collision, goal bool, steps int, drivable bool) world.Signals {
	return world.Signals{
		"collision":     collision,
		"goal_reached":  goal,
		"step_count":    steps,
		"drivable_area": drivable,
	}
}
