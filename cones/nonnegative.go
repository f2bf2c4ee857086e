package cones

import "github.com/katalvlaran/coneal/vecmath"

// NonnegativeCone is the nonnegative orthant with the diagonal
// Nesterov–Todd scaling w = sqrt(s./z) and scaled point λ = sqrt(s.*z).
type NonnegativeCone[T vecmath.Float] struct {
	dim int
	w   []T
	λ   []T
}

func newNonnegativeCone[T vecmath.Float](dim int) *NonnegativeCone[T] {
	return &NonnegativeCone[T]{
		dim: dim,
		w:   make([]T, dim),
		λ:   make([]T, dim),
	}
}

func (c *NonnegativeCone[T]) Dim() int          { return c.dim }
func (c *NonnegativeCone[T]) Degree() int       { return c.dim }
func (c *NonnegativeCone[T]) Numel() int        { return c.dim }
func (c *NonnegativeCone[T]) IsSymmetric() bool { return true }

func (c *NonnegativeCone[T]) RectifyEquilibration(delta, e []T) bool {
	vecmath.Fill(delta, 1)
	return false
}

// ShiftToCone translates z so its minimum entry is one. Done in two stages
// so that α = -Inf cannot produce a NaN through (1 - α).
func (c *NonnegativeCone[T]) ShiftToCone(z []T) {
	α := vecmath.Minimum(z)
	if α < 0 {
		vecmath.Translate(z, -α)
		vecmath.Translate(z, 1)
	}
}

func (c *NonnegativeCone[T]) UnitInitialization(z, s []T) {
	vecmath.Fill(z, 1)
	vecmath.Fill(s, 1)
}

func (c *NonnegativeCone[T]) SetIdentityScaling() {
	vecmath.Fill(c.w, 1)
	vecmath.Fill(c.λ, 1)
}

func (c *NonnegativeCone[T]) UpdateScaling(s, z []T, mu T, strategy ScalingStrategy) {
	for i := range c.w {
		c.λ[i] = sqrtT(s[i] * z[i])
		c.w[i] = sqrtT(s[i] / z[i])
	}
}

func (c *NonnegativeCone[T]) HsIsDiagonal() bool { return true }

// GetHs writes the diagonal w.^2 = s./z.
func (c *NonnegativeCone[T]) GetHs(block []T) {
	vecmath.CopyFrom(block, c.w)
	vecmath.Hadamard(block, c.w)
}

func (c *NonnegativeCone[T]) MulHs(y, x, work []T) {
	for i := range y {
		y[i] = c.w[i] * c.w[i] * x[i]
	}
}

// AffineDs writes λ.^2 = s.*z, the affine-step slack contribution.
func (c *NonnegativeCone[T]) AffineDs(ds, s []T) {
	for i := range ds {
		ds[i] = c.λ[i] * c.λ[i]
	}
}

// CombinedDsShift writes WΔz ∘ W⁻¹Δs − σμ·e, which for the diagonal NT
// scaling collapses to Δz.*Δs − σμ.
func (c *NonnegativeCone[T]) CombinedDsShift(shift, stepZ, stepS []T, sigmaMu T) {
	for i := range shift {
		shift[i] = stepZ[i]*stepS[i] - sigmaMu
	}
}

// DsFromDzOffset writes W(λ \ ds) = ds .* w ./ λ (= ds ./ z).
func (c *NonnegativeCone[T]) DsFromDzOffset(out, ds, work []T) {
	for i := range out {
		out[i] = ds[i] * c.w[i] / c.λ[i]
	}
}

// StepLength returns the largest steps keeping z+α·dz and s+α·ds
// nonnegative: the minimum of -u/du over negative direction entries.
func (c *NonnegativeCone[T]) StepLength(dz, ds, z, s []T, set *Settings[T], alphaMax T) (T, T) {
	return orthantStep(z, dz, alphaMax), orthantStep(s, ds, alphaMax)
}

func orthantStep[T vecmath.Float](u, du []T, alphaMax T) T {
	α := alphaMax
	for i := range u {
		if du[i] < 0 {
			if r := -u[i] / du[i]; r < α {
				α = r
			}
		}
	}
	return α
}

// ComputeBarrier evaluates -Σ log((s+α·ds).*(z+α·dz)); any non-positive
// product drives the result to +Inf through LogSafe.
func (c *NonnegativeCone[T]) ComputeBarrier(z, s, dz, ds []T, alpha T) T {
	var barrier T
	for i := range z {
		si := s[i] + alpha*ds[i]
		zi := z[i] + alpha*dz[i]
		barrier -= vecmath.LogSafe(si * zi)
	}
	return barrier
}
