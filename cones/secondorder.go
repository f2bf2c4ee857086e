package cones

import "github.com/katalvlaran/coneal/vecmath"

// SecondOrderCone is the Lorentz cone {x : x₀ ≥ ‖x₁:‖}. Its Nesterov–Todd
// scaling is W = η·(2wwᵀ − J) with J = diag(1, −1, …, −1), where w is the
// unit-hyperbolic scaling point (wᵀJw = 1) and η⁴ is the ratio of the
// primal and dual cone residuals. The structural Hessian block W² is
// dense, so HsIsDiagonal is false and the block is stored as a packed
// upper triangle.
type SecondOrderCone[T vecmath.Float] struct {
	dim int
	// w is the NT scaling point; wJ caches J·w.
	w  []T
	wJ []T
	// λ = Wz is the scaled point.
	λ []T
	// η is the scalar scaling magnitude.
	η T
	// work is per-cone scratch for the combined shift.
	work []T
}

func newSecondOrderCone[T vecmath.Float](dim int) *SecondOrderCone[T] {
	c := &SecondOrderCone[T]{
		dim:  dim,
		w:    make([]T, dim),
		wJ:   make([]T, dim),
		λ:    make([]T, dim),
		work: make([]T, dim),
	}
	c.SetIdentityScaling()
	return c
}

func (c *SecondOrderCone[T]) Dim() int          { return c.dim }
func (c *SecondOrderCone[T]) Degree() int       { return 1 }
func (c *SecondOrderCone[T]) Numel() int        { return c.dim }
func (c *SecondOrderCone[T]) IsSymmetric() bool { return true }

// RectifyEquilibration forces a uniform scaling across the block: the SOC
// is not invariant under elementwise scaling, so delta = mean(e)./e.
func (c *SecondOrderCone[T]) RectifyEquilibration(delta, e []T) bool {
	return rectifyUniform(delta, e)
}

// socResidual returns x₀² − ‖x₁:‖², positive strictly inside the cone.
func socResidual[T vecmath.Float](x []T) T {
	return x[0]*x[0] - vecmath.SumSq(x[1:])
}

// ShiftToCone lifts the first coordinate until the point is strictly
// interior: z₀ ← ‖z₁:‖ + 1 whenever the residual is not positive.
func (c *SecondOrderCone[T]) ShiftToCone(z []T) {
	if z[0] <= 0 || socResidual(z) <= 0 {
		z[0] = vecmath.Norm(z[1:]) + 1
	}
}

// UnitInitialization writes the canonical interior point e = (1, 0, …, 0)
// into both z and s.
func (c *SecondOrderCone[T]) UnitInitialization(z, s []T) {
	vecmath.Fill(z, 0)
	vecmath.Fill(s, 0)
	z[0] = 1
	s[0] = 1
}

// SetIdentityScaling picks w = e and η = 1, for which 2wwᵀ − J = I.
func (c *SecondOrderCone[T]) SetIdentityScaling() {
	vecmath.Fill(c.w, 0)
	vecmath.Fill(c.λ, 0)
	c.w[0] = 1
	c.λ[0] = 1
	c.η = 1
	c.refreshWJ()
}

func (c *SecondOrderCone[T]) refreshWJ() {
	c.wJ[0] = c.w[0]
	for i := 1; i < c.dim; i++ {
		c.wJ[i] = -c.w[i]
	}
}

// UpdateScaling recomputes w, η and λ from the current iterate. With
// z̄ = z/zscale and s̄ = s/sscale normalized to unit residual,
//
//	γ  = sqrt((1 + z̄ᵀs̄)/2)
//	w̄  = (s̄ + Jz̄) / 2γ
//	w  = (w̄ + e) / sqrt(2(w̄₀+1))     (half-angle point: (2wwᵀ−J)z̄ = λ̄)
//	λ̄₀ = γ,  λ̄₁: = ((γ+z̄₀)s̄₁: + (γ+s̄₀)z̄₁:) / (z̄₀+s̄₀+2γ)
//	λ  = sqrt(zscale·sscale)·λ̄,  η = sqrt(sscale/zscale)
func (c *SecondOrderCone[T]) UpdateScaling(s, z []T, mu T, strategy ScalingStrategy) {
	zscale := sqrtT(socResidual(z))
	sscale := sqrtT(socResidual(s))

	γ := sqrtT((1 + vecmath.Dot(z, s)/(zscale*sscale)) / 2)

	z0, s0 := z[0]/zscale, s[0]/sscale
	c.w[0] = (s0 + z0) / (2 * γ)
	for i := 1; i < c.dim; i++ {
		c.w[i] = (s[i]/sscale - z[i]/zscale) / (2 * γ)
	}

	// half-angle renormalization of the scaling point
	vden := sqrtT(2 * (c.w[0] + 1))
	c.w[0] = (c.w[0] + 1) / vden
	for i := 1; i < c.dim; i++ {
		c.w[i] /= vden
	}

	c.refreshWJ()
	c.η = sqrtT(sscale / zscale)

	scale := sqrtT(zscale * sscale)
	den := z0 + s0 + 2*γ
	c.λ[0] = scale * γ
	for i := 1; i < c.dim; i++ {
		c.λ[i] = scale * ((γ+z0)*s[i]/sscale + (γ+s0)*z[i]/zscale) / den
	}
}

func (c *SecondOrderCone[T]) HsIsDiagonal() bool { return false }

// GetHs writes W² packed column-major over the upper triangle:
//
//	W² = η²·(I + 4(wᵀw)·wwᵀ − 2(w·wJᵀ + wJ·wᵀ))
func (c *SecondOrderCone[T]) GetHs(block []T) {
	η2 := c.η * c.η
	ww4 := 4 * vecmath.SumSq(c.w)

	k := 0
	for j := 0; j < c.dim; j++ {
		for i := 0; i <= j; i++ {
			v := ww4*c.w[i]*c.w[j] - 2*(c.w[i]*c.wJ[j]+c.wJ[i]*c.w[j])
			if i == j {
				v++
			}
			block[k] = η2 * v
			k++
		}
	}
}

// MulHs applies y ← W²x without materializing the dense block.
func (c *SecondOrderCone[T]) MulHs(y, x, work []T) {
	η2 := c.η * c.η
	wx := vecmath.Dot(c.w, x)
	wJx := vecmath.Dot(c.wJ, x)
	ww4 := 4 * vecmath.SumSq(c.w)

	for i := range y {
		y[i] = η2 * (x[i] + ww4*wx*c.w[i] - 2*wJx*c.w[i] - 2*wx*c.wJ[i])
	}
}

// mulW applies y ← Wx = η·(2w(wᵀx) − Jx).
func (c *SecondOrderCone[T]) mulW(y, x []T) {
	wx := vecmath.Dot(c.w, x)
	y[0] = c.η * (2*c.w[0]*wx - x[0])
	for i := 1; i < c.dim; i++ {
		y[i] = c.η * (2*c.w[i]*wx + x[i])
	}
}

// mulWinv applies y ← W⁻¹x = (2·wJ·(wJᵀx) − Jx)/η.
func (c *SecondOrderCone[T]) mulWinv(y, x []T) {
	wJx := vecmath.Dot(c.wJ, x)
	y[0] = (2*c.wJ[0]*wJx - x[0]) / c.η
	for i := 1; i < c.dim; i++ {
		y[i] = (2*c.wJ[i]*wJx + x[i]) / c.η
	}
}

// circ writes the Jordan product out ← u∘v = (uᵀv, u₀v₁: + v₀u₁:).
func circ[T vecmath.Float](out, u, v []T) {
	out[0] = vecmath.Dot(u, v)
	for i := 1; i < len(out); i++ {
		out[i] = u[0]*v[i] + v[0]*u[i]
	}
}

// AffineDs writes λ∘λ = (λᵀλ, 2λ₀λ₁:).
func (c *SecondOrderCone[T]) AffineDs(ds, s []T) {
	circ(ds, c.λ, c.λ)
}

// CombinedDsShift writes WΔz ∘ W⁻¹Δs − σμ·e, e = (1, 0, …, 0).
// The shift buffer holds W⁻¹Δs while the Jordan product folds in place.
func (c *SecondOrderCone[T]) CombinedDsShift(shift, stepZ, stepS []T, sigmaMu T) {
	c.mulW(c.work, stepZ)
	c.mulWinv(shift, stepS)

	u0, v0 := c.work[0], shift[0]
	dot := vecmath.Dot(c.work, shift)
	for i := 1; i < c.dim; i++ {
		shift[i] = u0*shift[i] + v0*c.work[i]
	}
	shift[0] = dot - sigmaMu
}

// DsFromDzOffset writes W(λ∘⁻¹ ds): the arrow-matrix solve λ∘u = ds
// lands in work, then out ← W·work.
func (c *SecondOrderCone[T]) DsFromDzOffset(out, ds, work []T) {
	p := socResidual(c.λ)
	u0 := (c.λ[0]*ds[0] - vecmath.Dot(c.λ[1:], ds[1:])) / p
	work[0] = u0
	for i := 1; i < c.dim; i++ {
		work[i] = (ds[i] - u0*c.λ[i]) / c.λ[0]
	}
	c.mulW(out, work)
}

// StepLength finds, for each of (z, dz) and (s, ds), the minimum positive
// root of the boundary quadratic ‖x₁:+αu₁:‖² = (x₀+αu₀)², capped at
// alphaMax.
func (c *SecondOrderCone[T]) StepLength(dz, ds, z, s []T, set *Settings[T], alphaMax T) (T, T) {
	return socStep(z, dz, alphaMax), socStep(s, ds, alphaMax)
}

func socStep[T vecmath.Float](x, dx []T, alphaMax T) T {
	a := socResidual(dx) // may be negative
	b := 2 * (x[0]*dx[0] - vecmath.Dot(x[1:], dx[1:]))
	cc := socResidual(x)
	if cc < 0 {
		panic("cones: second-order step-length start point is outside the cone")
	}

	d := b*b - 4*a*cc
	if (a > 0 && b > 0) || d < 0 {
		// no positive boundary crossing on this ray
		return alphaMax
	}

	α := alphaMax
	if a == 0 {
		if b < 0 {
			α = minT(α, -cc/b)
		}
		return α
	}

	sqrtd := sqrtT(d)
	if r := (-b + sqrtd) / (2 * a); r > 0 {
		α = minT(α, r)
	}
	if r := (-b - sqrtd) / (2 * a); r > 0 {
		α = minT(α, r)
	}
	return α
}

// ComputeBarrier evaluates −½·log(res_z·res_s) at the shifted points,
// diverging to +Inf at or beyond the boundary.
func (c *SecondOrderCone[T]) ComputeBarrier(z, s, dz, ds []T, alpha T) T {
	resZ := socResidualShifted(z, dz, alpha)
	resS := socResidualShifted(s, ds, alpha)
	if resZ <= 0 || resS <= 0 {
		return vecmath.Inf[T](1)
	}
	return -vecmath.LogSafe(resZ*resS) / 2
}

func socResidualShifted[T vecmath.Float](x, dx []T, alpha T) T {
	h := x[0] + alpha*dx[0]
	acc := h * h
	for i := 1; i < len(x); i++ {
		v := x[i] + alpha*dx[i]
		acc -= v * v
	}
	return acc
}
