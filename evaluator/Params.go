package evaluator

import (
	"encoding/json"
	"fmt"
	"io"
)

// CollisionParams parameterizes the Collision functor
type CollisionParams struct {
	CollisionReward float64
}

// GoalParams parameterizes the Goal functor
type GoalParams struct {
	GoalReward float64
}

// DrivableAreaParams parameterizes the DrivableArea functor
type DrivableAreaParams struct {
	DrivableAreaReward float64
}

// StepCountParams parameterizes the StepCount functor
type StepCountParams struct {
	MaxStepCount    int
	StepCountReward float64
}

// MaxVelParams parameterizes the MaxVel functor
type MaxVelParams struct {
	MaxVel                float64
	MaxVelViolationReward float64
}

// SmoothnessParams parameterizes the Smoothness functor
type SmoothnessParams struct {
	Dt                 float64
	MaxAccRate         float64
	MaxSteeringRate    float64
	InputRateViolation float64
}

// PotentialCenterlineParams parameterizes the PotentialCenterline
// functor
type PotentialCenterlineParams struct {
	MaxDist      float64
	DistExponent float64
	Gamma        float64
}

// PotentialVelocityParams parameterizes the PotentialVelocity functor.
// MaxVel is the velocity deviation at which the potential reaches zero,
// and is independent of MaxVelParams.MaxVel.
type PotentialVelocityParams struct {
	DesiredVel  float64
	MaxVel      float64
	VelExponent float64
	Gamma       float64
}

// Params holds one parameter group per functor. The JSON form nests
// each group under the functor's parameter name, for example
//
//	{"StepCountFunctor": {"MaxStepCount": 100}}
//
// Params are read-only once functors have been constructed from them
// and may be shared between evaluators.
type Params struct {
	Collision           CollisionParams           `json:"CollisionFunctor"`
	Goal                GoalParams                `json:"GoalFunctor"`
	DrivableArea        DrivableAreaParams        `json:"DrivableAreaFunctor"`
	StepCount           StepCountParams           `json:"StepCountFunctor"`
	MaxVel              MaxVelParams              `json:"MaxVelFunctor"`
	Smoothness          SmoothnessParams          `json:"SmoothnessFunctor"`
	PotentialCenterline PotentialCenterlineParams `json:"PotentialCenterlineFunctor"`
	PotentialVelocity   PotentialVelocityParams   `json:"PotentialVelocityFunctor"`
}

// DefaultParams returns the default parameters of every functor
func DefaultParams() Params {
	return Params{
		Collision:    CollisionParams{CollisionReward: -1.0},
		Goal:         GoalParams{GoalReward: 1.0},
		DrivableArea: DrivableAreaParams{DrivableAreaReward: -1.0},
		StepCount: StepCountParams{
			MaxStepCount:    60,
			StepCountReward: 0.0,
		},
		MaxVel: MaxVelParams{
			MaxVel:                25.0,
			MaxVelViolationReward: -1.0,
		},
		Smoothness: SmoothnessParams{
			Dt:                 0.2,
			MaxAccRate:         1.0,
			MaxSteeringRate:    1.0,
			InputRateViolation: -1.0,
		},
		PotentialCenterline: PotentialCenterlineParams{
			MaxDist:      100.0,
			DistExponent: 0.2,
			Gamma:        0.99,
		},
		PotentialVelocity: PotentialVelocityParams{
			DesiredVel:  4.0,
			MaxVel:      20.0,
			VelExponent: 0.2,
			Gamma:       0.99,
		},
	}
}

// LoadParams decodes JSON parameters from r on top of the defaults.
// Groups and keys absent from the input keep their default values.
func LoadParams(r io.Reader) (Params, error) {
	params := DefaultParams()

	dec := json.NewDecoder(r)
	if err := dec.Decode(&params); err != nil && err != io.EOF {
		return Params{}, fmt.Errorf("loadParams: %w", err)
	}
	return params, nil
}

// Validate returns an error describing the first invalid parameter
func (p Params) Validate() error {
	switch {
	case p.Smoothness.Dt <= 0:
		return fmt.Errorf("validate: SmoothnessFunctor.Dt must be positive, "+
			"have %v", p.Smoothness.Dt)
	case p.PotentialCenterline.MaxDist <= 0:
		return fmt.Errorf("validate: PotentialCenterlineFunctor.MaxDist "+
			"must be positive, have %v", p.PotentialCenterline.MaxDist)
	case p.PotentialVelocity.MaxVel <= 0:
		return fmt.Errorf("validate: PotentialVelocityFunctor.MaxVel must "+
			"be positive, have %v", p.PotentialVelocity.MaxVel)
	}
	return nil
}
