package cones

import (
	"math"

	"github.com/katalvlaran/coneal/vecmath"
)

// Scalar helpers over the generic float type. Kept internal: the public
// scalar surface lives in vecmath.

func sqrtT[T vecmath.Float](v T) T { return T(math.Sqrt(float64(v))) }

func logT[T vecmath.Float](v T) T { return T(math.Log(float64(v))) }

func minT[T vecmath.Float](a, b T) T {
	if a < b {
		return a
	}
	return b
}
