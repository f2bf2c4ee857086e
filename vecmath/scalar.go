package vecmath

import "math"

// Float constrains the scalar type T of every kernel: any floating-point
// type with arithmetic, ordering, and the IEEE special values.
type Float interface {
	~float32 | ~float64
}

// Clip returns loNew if v < loThresh, hiNew if v > hiThresh, and v
// unchanged otherwise. Used to regularize scaling factors into a safe
// range with explicit replacement bounds.
func Clip[T Float](v, loThresh, hiThresh, loNew, hiNew T) T {
	switch {
	case v < loThresh:
		return loNew
	case v > hiThresh:
		return hiNew
	default:
		return v
	}
}

// sqrt is the generic scalar square root; NaN propagates as in math.Sqrt.
func sqrt[T Float](v T) T {
	return T(math.Sqrt(float64(v)))
}

// abs is the generic scalar absolute value.
func abs[T Float](v T) T {
	if v < 0 {
		return -v
	}
	return v
}

// Inf returns +Inf for sign >= 0 and -Inf for sign < 0 in the scalar type T.
func Inf[T Float](sign int) T {
	return T(math.Inf(sign))
}

// LogSafe returns log(v) for v > 0 and -Inf otherwise, so that barrier
// evaluations at or beyond a cone boundary diverge instead of yielding NaN.
func LogSafe[T Float](v T) T {
	if v <= 0 {
		return T(math.Inf(-1))
	}
	return T(math.Log(float64(v)))
}
