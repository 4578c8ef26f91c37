// Package floatutils provides utilities for working with floats
package floatutils

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r1"
)

// Clip clips a floating point to within a minimum and maximum value.
// If the floating point exceeds max, then the function returns the max
// If min exceeds the floating point, then the function returns the min
func Clip(value, min, max float64) float64 {
	clipped := math.Min(value, max)
	return math.Max(clipped, min)
}

// ClipInterval is a wrapper to use Clip with an r1.Interval instead of
// a separate max and min value
func ClipInterval(value float64, interval r1.Interval) float64 {
	return Clip(value, interval.Min, interval.Max)
}

// ClipVec returns a copy of v with each component clipped to the
// interval at the same index. ClipVec panics if the number of
// intervals does not match the length of v.
func ClipVec(v mat.Vector, intervals []r1.Interval) *mat.VecDense {
	if v.Len() != len(intervals) {
		panic(fmt.Sprintf("clipVec: vector and interval lengths differ "+
			"\n\twant(%v) \n\thave(%v)", len(intervals), v.Len()))
	}

	clipped := mat.NewVecDense(v.Len(), nil)
	for i := 0; i < v.Len(); i++ {
		clipped.SetVec(i, ClipInterval(v.AtVec(i), intervals[i]))
	}
	return clipped
}

// AlmostEqual returns whether a and b differ by no more than tol
func AlmostEqual(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol
}
