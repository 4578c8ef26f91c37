package evaluator

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/samuelfneumann/gobark/world"
	"github.com/samuelfneumann/gobark/world/evaluation"
)

// DrivableArea ends the episode when the ego agent has left the
// drivable area
type DrivableArea struct {
	params DrivableAreaParams
}

// NewDrivableArea returns a new DrivableArea functor
func NewDrivableArea(params DrivableAreaParams) *DrivableArea {
	return &DrivableArea{params}
}

// Name implements the Functor interface
func (d *DrivableArea) Name() string { return DrivableAreaFunctorName }

// Evaluate returns a terminal outcome with the drivable area reward if
// the drivable area signal is set
func (d *DrivableArea) Evaluate(_ world.ObservedWorld, _ mat.Vector,
	signals world.Signals) (Outcome, error) {
	left, err := signals.Bool(evaluation.DrivableAreaName)
	if err != nil {
		return Neutral, fmt.Errorf("%v: %w", d.Name(), err)
	}
	return indicator(left, d.params.DrivableAreaReward), nil
}
