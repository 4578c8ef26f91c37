package geometry

import (
	"math"
	"testing"
)

func TestDistance(t *testing.T) {
	line := NewLine(NewPoint(0, 0), NewPoint(10, 0), NewPoint(10, 10))

	tests := []struct {
		name  string
		point Point
		want  float64
	}{
		{"on line", NewPoint(5, 0), 0},
		{"above first segment", NewPoint(5, 3), 3},
		{"before start", NewPoint(-4, 3), 5},
		{"beside second segment", NewPoint(12, 5), 2},
		{"past end", NewPoint(10, 13), 3},
	}

	for _, test := range tests {
		if got := Distance(line, test.point); math.Abs(got-test.want) > 1e-9 {
			t.Errorf("%v: distance \n\twant(%v) \n\thave(%v)", test.name,
				test.want, got)
		}
	}
}

func TestDistanceSinglePoint(t *testing.T) {
	line := NewLine(NewPoint(1, 1))
	if got := Distance(line, NewPoint(4, 5)); math.Abs(got-5) > 1e-9 {
		t.Errorf("distance to single point line \n\twant(5) \n\thave(%v)", got)
	}
}

func TestDistanceZeroLine(t *testing.T) {
	if d := Distance(Line{}, NewPoint(1, 1)); !math.IsInf(d, 1) {
		t.Errorf("distance to zero line \n\twant(+Inf) \n\thave(%v)", d)
	}
}

func TestLineLength(t *testing.T) {
	line := NewLine(NewPoint(0, 0), NewPoint(3, 4), NewPoint(3, 10))
	if got := line.Length(); math.Abs(got-11) > 1e-9 {
		t.Errorf("length \n\twant(11) \n\thave(%v)", got)
	}
}

func TestPolygonContains(t *testing.T) {
	// An L-shaped, non-convex polygon
	poly := NewPolygon(
		NewPoint(0, 0), NewPoint(4, 0), NewPoint(4, 1),
		NewPoint(1, 1), NewPoint(1, 4), NewPoint(0, 4),
	)

	tests := []struct {
		point Point
		want  bool
	}{
		{NewPoint(0.5, 0.5), true},
		{NewPoint(3, 0.5), true},
		{NewPoint(0.5, 3), true},
		{NewPoint(3, 3), false},
		{NewPoint(4, 0.5), true}, // boundary
		{NewPoint(-1, 0), false},
	}

	for _, test := range tests {
		if got := poly.Contains(test.point); got != test.want {
			t.Errorf("contains(%v) \n\twant(%v) \n\thave(%v)", test.point,
				test.want, got)
		}
	}
}

func TestPolygonTransform(t *testing.T) {
	rect := NewRectangle(4, 2).Transform(10, 5, math.Pi/2)

	// After a quarter turn the long side lies along y
	want := []Point{
		NewPoint(11, 3), NewPoint(11, 7), NewPoint(9, 7), NewPoint(9, 3),
	}
	for i, v := range rect.Vertices() {
		if math.Abs(v.X-want[i].X) > 1e-9 || math.Abs(v.Y-want[i].Y) > 1e-9 {
			t.Errorf("vertex %v \n\twant(%v) \n\thave(%v)", i, want[i], v)
		}
	}

	c := rect.Centroid()
	if math.Abs(c.X-10) > 1e-9 || math.Abs(c.Y-5) > 1e-9 {
		t.Errorf("centroid \n\twant(%v) \n\thave(%v)", NewPoint(10, 5), c)
	}
}
