package cones

import "github.com/katalvlaran/coneal/vecmath"

// ZeroCone is the cone {0}ᵈ, expressing equality constraints. Its dual is
// all of Rᵈ, it contributes nothing to the barrier (degree 0), and every
// scaling-related block is identically zero.
type ZeroCone[T vecmath.Float] struct {
	dim int
}

func newZeroCone[T vecmath.Float](dim int) *ZeroCone[T] {
	return &ZeroCone[T]{dim: dim}
}

func (c *ZeroCone[T]) Dim() int          { return c.dim }
func (c *ZeroCone[T]) Degree() int       { return 0 }
func (c *ZeroCone[T]) Numel() int        { return c.dim }
func (c *ZeroCone[T]) IsSymmetric() bool { return true }

func (c *ZeroCone[T]) RectifyEquilibration(delta, e []T) bool {
	vecmath.Fill(delta, 1)
	return false
}

func (c *ZeroCone[T]) ShiftToCone(z []T) {
	vecmath.Fill(z, 0)
}

func (c *ZeroCone[T]) UnitInitialization(z, s []T) {
	vecmath.Fill(z, 0)
	vecmath.Fill(s, 0)
}

func (c *ZeroCone[T]) SetIdentityScaling() {}

func (c *ZeroCone[T]) UpdateScaling(s, z []T, mu T, strategy ScalingStrategy) {}

func (c *ZeroCone[T]) HsIsDiagonal() bool { return true }

func (c *ZeroCone[T]) GetHs(block []T) {
	vecmath.Fill(block, 0)
}

func (c *ZeroCone[T]) MulHs(y, x, work []T) {
	vecmath.Fill(y, 0)
}

func (c *ZeroCone[T]) AffineDs(ds, s []T) {
	vecmath.Fill(ds, 0)
}

func (c *ZeroCone[T]) CombinedDsShift(shift, stepZ, stepS []T, sigmaMu T) {
	vecmath.Fill(shift, 0)
}

func (c *ZeroCone[T]) DsFromDzOffset(out, ds, work []T) {
	vecmath.Fill(out, 0)
}

// StepLength never restricts the step: both slacks stay pinned at zero.
func (c *ZeroCone[T]) StepLength(dz, ds, z, s []T, set *Settings[T], alphaMax T) (T, T) {
	return alphaMax, alphaMax
}

func (c *ZeroCone[T]) ComputeBarrier(z, s, dz, ds []T, alpha T) T {
	return 0
}
