package cones

import "github.com/katalvlaran/coneal/vecmath"

// Central-ray interior point of the exponential cone, written by
// UnitInitialization into both z and s.
const (
	expCentralX = -1.051383945322714
	expCentralY = 0.556409619469370
	expCentralZ = 1.258967884768947
)

// ExponentialCone is the three-dimensional cone
//
//	K    = cl{ (x, y, z) : y > 0,  y·e^{x/y} ≤ z }
//	K*   = cl{ (u, v, w) : u < 0,  −u·e^{v/u} ≤ e·w }
//
// It admits no symmetric scaling; the scaled Hessian block is μ·∇²f*(z),
// the dual-barrier Hessian at the current dual iterate, stored as a packed
// 3×3 upper triangle. Step lengths are found by backtracking against cone
// membership since no closed-form boundary crossing exists.
type ExponentialCone[T vecmath.Float] struct {
	// hs is μ·∇²f*(z) packed column-major over the upper triangle:
	// (0,0) (0,1) (1,1) (0,2) (1,2) (2,2).
	hs [6]T
	// grad is ∇f*(z) from the last scaling update, consumed by the
	// centering shift.
	grad [3]T
}

func newExponentialCone[T vecmath.Float]() *ExponentialCone[T] {
	c := &ExponentialCone[T]{}
	c.SetIdentityScaling()
	return c
}

func (c *ExponentialCone[T]) Dim() int          { return 3 }
func (c *ExponentialCone[T]) Degree() int       { return 3 }
func (c *ExponentialCone[T]) Numel() int        { return 3 }
func (c *ExponentialCone[T]) IsSymmetric() bool { return false }

// RectifyEquilibration forces a uniform scaling across the block, as for
// the second-order cone.
func (c *ExponentialCone[T]) RectifyEquilibration(delta, e []T) bool {
	return rectifyUniform(delta, e)
}

// dualGap returns ψ(z) = z₁ − z₀ + z₀·log(−z₀/z₂), positive strictly
// inside the dual cone (given z₀ < 0 < z₂).
func dualGap[T vecmath.Float](z []T) T {
	return z[1] - z[0] + z[0]*logT(-z[0]/z[2])
}

// primalGap returns φ(s) = s₁·log(s₂/s₁) − s₀, positive strictly inside
// the primal cone (given s₁, s₂ > 0).
func primalGap[T vecmath.Float](s []T) T {
	return s[1]*logT(s[2]/s[1]) - s[0]
}

func isDualInterior[T vecmath.Float](z []T) bool {
	return z[0] < 0 && z[2] > 0 && dualGap(z) > 0
}

func isPrimalInterior[T vecmath.Float](s []T) bool {
	return s[1] > 0 && s[2] > 0 && primalGap(s) > 0
}

// ShiftToCone replaces z by the central ray whenever it is not strictly
// dual-interior; no cheap translation keeps exponential-cone membership.
func (c *ExponentialCone[T]) ShiftToCone(z []T) {
	if !isDualInterior(z) {
		z[0], z[1], z[2] = expCentralX, expCentralY, expCentralZ
	}
}

func (c *ExponentialCone[T]) UnitInitialization(z, s []T) {
	s[0], s[1], s[2] = expCentralX, expCentralY, expCentralZ
	vecmath.CopyFrom(z, s)
}

func (c *ExponentialCone[T]) SetIdentityScaling() {
	c.hs = [6]T{1, 0, 1, 0, 0, 1}
	c.grad = [3]T{}
}

// UpdateScaling stores ∇f*(z) and μ·∇²f*(z) for the dual barrier
//
//	f*(z) = −log ψ(z) − log(−z₀) − log z₂.
//
// The strategy token is accepted for contract uniformity; the exponential
// cone always scales through the dual barrier.
func (c *ExponentialCone[T]) UpdateScaling(s, z []T, mu T, strategy ScalingStrategy) {
	u, w := z[0], z[2]
	ψ := dualGap(z)
	l := logT(-u / w)

	// ∇ψ = (l, 1, −u/w); ∇²ψ has entries 1/u, −1/w, u/w².
	c.grad[0] = -l/ψ - 1/u
	c.grad[1] = -1 / ψ
	c.grad[2] = (u/w)/ψ - 1/w

	ψ2 := ψ * ψ
	c.hs[0] = mu * (l*l/ψ2 - (1/u)/ψ + 1/(u*u))
	c.hs[1] = mu * (l / ψ2)
	c.hs[2] = mu * (1 / ψ2)
	c.hs[3] = mu * (l*(-u/w)/ψ2 + (1/w)/ψ)
	c.hs[4] = mu * ((-u / w) / ψ2)
	c.hs[5] = mu * ((u*u)/(w*w)/ψ2 - (u/(w*w))/ψ + 1/(w*w))
}

func (c *ExponentialCone[T]) HsIsDiagonal() bool { return false }

func (c *ExponentialCone[T]) GetHs(block []T) {
	for i, v := range c.hs {
		block[i] = v
	}
}

// MulHs applies the packed symmetric 3×3 block: y ← Hs·x.
func (c *ExponentialCone[T]) MulHs(y, x, work []T) {
	h := &c.hs
	y[0] = h[0]*x[0] + h[1]*x[1] + h[3]*x[2]
	y[1] = h[1]*x[0] + h[2]*x[1] + h[4]*x[2]
	y[2] = h[3]*x[0] + h[4]*x[1] + h[5]*x[2]
}

// AffineDs copies s: nonsymmetric cones take the affine slack directly.
func (c *ExponentialCone[T]) AffineDs(ds, s []T) {
	vecmath.CopyFrom(ds, s)
}

// CombinedDsShift writes σμ·∇f*(z) using the gradient stored by the last
// scaling update. The third-order correction term is omitted; see the
// package notes.
func (c *ExponentialCone[T]) CombinedDsShift(shift, stepZ, stepS []T, sigmaMu T) {
	shift[0] = sigmaMu * c.grad[0]
	shift[1] = sigmaMu * c.grad[1]
	shift[2] = sigmaMu * c.grad[2]
}

// DsFromDzOffset passes the offset through: the unscaled form is used for
// nonsymmetric cones.
func (c *ExponentialCone[T]) DsFromDzOffset(out, ds, work []T) {
	vecmath.CopyFrom(out, ds)
}

// StepLength backtracks from alphaMax by the settings' shrink factor until
// z+α·dz is strictly dual-interior and s+α·ds strictly primal-interior,
// bottoming out at the settings' termination floor.
func (c *ExponentialCone[T]) StepLength(dz, ds, z, s []T, set *Settings[T], alphaMax T) (T, T) {
	αz := backtrackStep(z, dz, alphaMax, set, isDualInterior[T])
	αs := backtrackStep(s, ds, alphaMax, set, isPrimalInterior[T])
	return αz, αs
}

func backtrackStep[T vecmath.Float](x, dx []T, alphaMax T, set *Settings[T], interior func([]T) bool) T {
	var trial [3]T
	α := alphaMax
	for {
		for i := range trial {
			trial[i] = x[i] + α*dx[i]
		}
		if interior(trial[:]) {
			return α
		}
		α *= set.LinesearchBacktrackStep
		if α < set.MinTerminateStepLength {
			return set.MinTerminateStepLength
		}
	}
}

// ComputeBarrier evaluates f(s+α·ds) + f*(z+α·dz), diverging to +Inf
// outside either interior.
func (c *ExponentialCone[T]) ComputeBarrier(z, s, dz, ds []T, alpha T) T {
	var zt, st [3]T
	for i := 0; i < 3; i++ {
		zt[i] = z[i] + alpha*dz[i]
		st[i] = s[i] + alpha*ds[i]
	}
	return dualBarrier(zt[:]) + primalBarrier(st[:])
}

func dualBarrier[T vecmath.Float](z []T) T {
	if !isDualInterior(z) {
		return vecmath.Inf[T](1)
	}
	return -vecmath.LogSafe(dualGap(z)) - vecmath.LogSafe(-z[0]) - vecmath.LogSafe(z[2])
}

func primalBarrier[T vecmath.Float](s []T) T {
	if !isPrimalInterior(s) {
		return vecmath.Inf[T](1)
	}
	return -vecmath.LogSafe(primalGap(s)) - vecmath.LogSafe(s[1]) - vecmath.LogSafe(s[2])
}
