package vecmath

// assertSameLen panics unless the two paired buffers have equal length.
// Length mismatches are contract violations (integration bugs), so there
// is no recoverable-error path.
func assertSameLen[T Float](x, y []T) {
	if len(x) != len(y) {
		panic("vecmath: paired buffers differ in length")
	}
}

// CopyFrom copies src into dst. Panics on length mismatch.
func CopyFrom[T Float](dst, src []T) {
	assertSameLen(dst, src)
	copy(dst, src)
}

// Fill sets every element of x to c.
func Fill[T Float](x []T, c T) {
	for i := range x {
		x[i] = c
	}
}

// Translate adds c to every element of x in place.
func Translate[T Float](x []T, c T) {
	for i := range x {
		x[i] += c
	}
}

// Scale multiplies every element of x by c in place.
func Scale[T Float](x []T, c T) {
	for i := range x {
		x[i] *= c
	}
}

// Negate flips the sign of every element of x in place.
func Negate[T Float](x []T) {
	for i := range x {
		x[i] = -x[i]
	}
}

// Reciprocal replaces every element of x by its reciprocal in place.
func Reciprocal[T Float](x []T) {
	for i := range x {
		x[i] = 1 / x[i]
	}
}

// Sqrt replaces every element of x by its square root in place.
func Sqrt[T Float](x []T) {
	for i := range x {
		x[i] = sqrt(x[i])
	}
}

// Rsqrt replaces every element of x by its reciprocal square root in place.
func Rsqrt[T Float](x []T) {
	for i := range x {
		x[i] = 1 / sqrt(x[i])
	}
}

// Hadamard multiplies x elementwise by y in place. Panics on length mismatch.
func Hadamard[T Float](x, y []T) {
	assertSameLen(x, y)
	for i := range x {
		x[i] *= y[i]
	}
}

// ClipAll applies Clip to every element of x in place.
func ClipAll[T Float](x []T, loThresh, hiThresh, loNew, hiNew T) {
	for i := range x {
		x[i] = Clip(x[i], loThresh, hiThresh, loNew, hiNew)
	}
}

// Dot returns the inner product of x and y. Panics on length mismatch.
func Dot[T Float](x, y []T) T {
	assertSameLen(x, y)
	var acc T
	for i := range x {
		acc += x[i] * y[i]
	}
	return acc
}

// SumSq returns the sum of squares of x (= Dot(x, x)).
func SumSq[T Float](x []T) T {
	return Dot(x, x)
}

// Norm returns the Euclidean norm of x.
func Norm[T Float](x []T) T {
	return sqrt(SumSq(x))
}

// NormScaled returns the Euclidean norm of the elementwise product x .* v.
// Panics on length mismatch.
func NormScaled[T Float](x, v []T) T {
	assertSameLen(x, v)
	var acc T
	for i := range x {
		p := x[i] * v[i]
		acc += p * p
	}
	return sqrt(acc)
}

// NormInf returns the maximum absolute value of x. NaN entries are
// silently skipped rather than propagated: every ordered comparison
// against NaN is false, so a NaN never replaces the running maximum.
func NormInf[T Float](x []T) T {
	var out T
	for _, v := range x {
		a := abs(v)
		if a > out {
			out = a
		}
	}
	return out
}

// NormOne returns the sum of absolute values of x.
func NormOne[T Float](x []T) T {
	var acc T
	for _, v := range x {
		acc += abs(v)
	}
	return acc
}

// Minimum folds min over x, seeded from +Inf; the seed is returned for an
// empty buffer.
func Minimum[T Float](x []T) T {
	r := Inf[T](1)
	for _, v := range x {
		if v < r {
			r = v
		}
	}
	return r
}

// Maximum folds max over x, seeded from -Inf; the seed is returned for an
// empty buffer.
func Maximum[T Float](x []T) T {
	r := Inf[T](-1)
	for _, v := range x {
		if v > r {
			r = v
		}
	}
	return r
}

// Mean returns the arithmetic mean of x, defined as zero for an empty buffer.
func Mean[T Float](x []T) T {
	if len(x) == 0 {
		return 0
	}
	var acc T
	for _, v := range x {
		acc += v
	}
	return acc / T(len(x))
}

// Axpby computes y ← a·x + b·y in place, with exact-case branches for
// b ∈ {0, 1, −1} that avoid reading or multiplying the old y when possible.
// Panics on length mismatch.
func Axpby[T Float](y []T, a T, x []T, b T) {
	assertSameLen(y, x)
	switch b {
	case 0:
		for i := range y {
			y[i] = a * x[i]
		}
	case 1:
		for i := range y {
			y[i] += a * x[i]
		}
	case -1:
		for i := range y {
			y[i] = a*x[i] - y[i]
		}
	default:
		for i := range y {
			y[i] = a*x[i] + b*y[i]
		}
	}
}

// Waxpby writes the weighted sum w ← a·x + b·y into a third buffer,
// with the same exact-case branches for b as Axpby.
// Panics if either operand length differs from len(w).
func Waxpby[T Float](w []T, a T, x []T, b T, y []T) {
	assertSameLen(w, x)
	assertSameLen(w, y)
	switch b {
	case 0:
		for i := range w {
			w[i] = a * x[i]
		}
	case 1:
		for i := range w {
			w[i] = a*x[i] + y[i]
		}
	case -1:
		for i := range w {
			w[i] = a*x[i] - y[i]
		}
	default:
		for i := range w {
			w[i] = a*x[i] + b*y[i]
		}
	}
}
