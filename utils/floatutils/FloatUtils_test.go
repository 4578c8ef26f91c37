package floatutils

import (
	"testing"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

func TestClip(t *testing.T) {
	tests := []struct {
		value, min, max, want float64
	}{
		{0.5, 0, 1, 0.5},
		{-1, 0, 1, 0},
		{2, 0, 1, 1},
	}
	for _, test := range tests {
		if got := Clip(test.value, test.min, test.max); got != test.want {
			t.Errorf("clip(%v, %v, %v) \n\twant(%v) \n\thave(%v)",
				test.value, test.min, test.max, test.want, got)
		}
	}
}

func TestClipVec(t *testing.T) {
	v := mat.NewVecDense(2, []float64{1.0, -0.5})
	bounds := []r1.Interval{{Min: -0.5, Max: 0.5}, {Min: -0.01, Max: 0.01}}

	got := ClipVec(v, bounds)
	want := mat.NewVecDense(2, []float64{0.5, -0.01})
	if !mat.Equal(got, want) {
		t.Errorf("clipVec \n\twant(%v) \n\thave(%v)", mat.Formatted(want.T()),
			mat.Formatted(got.T()))
	}
}
