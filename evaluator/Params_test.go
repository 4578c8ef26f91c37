package evaluator

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadParamsDefaults(t *testing.T) {
	for _, input := range []string{"", "{}"} {
		params, err := LoadParams(strings.NewReader(input))
		if err != nil {
			t.Fatalf("load %q: %v", input, err)
		}
		if diff := cmp.Diff(DefaultParams(), params); diff != "" {
			t.Errorf("load %q mismatch (-want +have):\n%s", input, diff)
		}
	}
}

func TestLoadParamsPartial(t *testing.T) {
	input := `{
		"StepCountFunctor": {"MaxStepCount": 100},
		"PotentialVelocityFunctor": {"DesiredVel": 8.0}
	}`

	params, err := LoadParams(strings.NewReader(input))
	if err != nil {
		t.Fatal(err)
	}

	want := DefaultParams()
	want.StepCount.MaxStepCount = 100
	want.PotentialVelocity.DesiredVel = 8.0
	if diff := cmp.Diff(want, params); diff != "" {
		t.Errorf("params mismatch (-want +have):\n%s", diff)
	}
}

func TestLoadParamsInvalid(t *testing.T) {
	if _, err := LoadParams(strings.NewReader(`{"StepCountFunctor": [`)); err == nil {
		t.Errorf("expected an error for malformed input")
	}
}

func TestValidate(t *testing.T) {
	if err := DefaultParams().Validate(); err != nil {
		t.Errorf("default params should be valid: %v", err)
	}

	p := DefaultParams()
	p.Smoothness.Dt = 0
	if err := p.Validate(); err == nil {
		t.Errorf("zero Dt should be invalid")
	}
}

func TestIndependentMaxVelDefaults(t *testing.T) {
	p := DefaultParams()
	if p.MaxVel.MaxVel != 25.0 {
		t.Errorf("max velocity cap \n\twant(25) \n\thave(%v)", p.MaxVel.MaxVel)
	}
	if p.PotentialVelocity.MaxVel != 20.0 {
		t.Errorf("velocity deviation cap \n\twant(20) \n\thave(%v)",
			p.PotentialVelocity.MaxVel)
	}
}

func TestNewFunctor(t *testing.T) {
	names := append(DefaultFunctorNames(), SmoothnessFunctorName)
	for _, name := range names {
		f, err := NewFunctor(name, DefaultParams())
		if err != nil {
			t.Fatalf("newFunctor(%q): %v", name, err)
		}
		if f.Name() != name {
			t.Errorf("functor name \n\twant(%v) \n\thave(%v)", name, f.Name())
		}
	}

	if _, err := NewFunctor("no_such_functor", DefaultParams()); !errors.Is(
		err, ErrUnknownFunctor) {
		t.Errorf("error \n\twant(%v) \n\thave(%v)", ErrUnknownFunctor, err)
	}
	if _, err := NewFunctors([]string{CollisionFunctorName, "bad"},
		DefaultParams()); err == nil {
		t.Errorf("newFunctors should fail on an unknown name")
	}
}

func TestNewFunctorUsesParams(t *testing.T) {
	params := DefaultParams()
	params.StepCount.MaxStepCount = 5

	f, err := NewFunctor(StepCountFunctorName, params)
	if err != nil {
		t.Fatal(err)
	}
	signals := baseSignals(false, false, 6, false)
	outcome, err := f.Evaluate(newFakeWorld(signals), action(0, 0), signals)
	if err != nil {
		t.Fatal(err)
	}
	if !outcome.Terminal {
		t.Errorf("step count 6 should exceed a maximum of 5")
	}
}

func BenchmarkGeneralEvaluate(b *testing.B) {
	w := newFakeWorld(baseSignals(false, false, 3, false))
	w.ego.history = historyOf(10, 5, 10, 6)
	g := newScenarioEvaluator(w)
	a := action(0, 0)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, _, err := g.Evaluate(w, a); err != nil {
			b.Fatal(err)
		}
	}
}
