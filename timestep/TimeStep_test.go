package timestep

import (
	"strings"
	"testing"

	"gonum.org/v1/gonum/mat"
)

func TestStepTypes(t *testing.T) {
	obs := mat.NewVecDense(2, []float64{1, 2})

	tests := []struct {
		name       string
		stepType   StepType
		first, mid bool
		last       bool
		end        EndType
	}{
		{"first", First, true, false, false, Running},
		{"mid", Mid, false, true, false, Running},
		{"last", Last, false, false, true, TerminalStateReached},
	}

	for _, test := range tests {
		step := New(test.stepType, 1, 0.99, obs, 3, nil)
		if step.First() != test.first || step.Mid() != test.mid ||
			step.Last() != test.last {
			t.Errorf("%v: got first=%v mid=%v last=%v", test.name,
				step.First(), step.Mid(), step.Last())
		}
		if step.EndType() != test.end {
			t.Errorf("%v: end type: want %v, got %v", test.name, test.end,
				step.EndType())
		}
	}
}

func TestSetEnd(t *testing.T) {
	step := New(Mid, 0, 1, nil, 10, nil)

	step.SetEnd(Timeout)
	if !step.Last() || step.EndType() != Timeout {
		t.Fatalf("SetEnd(Timeout): got %v", step)
	}

	step.SetEnd(Running)
	if !step.Mid() || step.EndType() != Running {
		t.Fatalf("SetEnd(Running): got %v", step)
	}
}

func TestString(t *testing.T) {
	step := New(Last, -1, 0, nil, 4, nil)
	str := step.String()
	for _, want := range []string{"Last", "-1.00", "4", "TerminalStateReached"} {
		if !strings.Contains(str, want) {
			t.Errorf("String() = %q, missing %q", str, want)
		}
	}
}
