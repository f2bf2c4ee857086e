package cones

import (
	"fmt"

	"github.com/katalvlaran/coneal/vecmath"
)

// Cone is the capability contract every cone kind implements. A cone
// object is constructed once per solve; its scaling state mutates every
// iteration through UpdateScaling / SetIdentityScaling / CombinedDsShift.
// All buffers are caller-owned slices of exactly Numel() elements unless
// noted otherwise.
type Cone[T vecmath.Float] interface {
	// Dim is the ambient dimension fixed at construction.
	Dim() int
	// Degree is the barrier degree fixed at construction.
	Degree() int
	// Numel is the number of elements of this cone's iterate slice.
	Numel() int
	// IsSymmetric reports whether the kind admits a symmetric scaling;
	// fixed per kind.
	IsSymmetric() bool

	// RectifyEquilibration optionally adjusts delta given a proposed
	// column/row equilibration e, reporting whether anything changed.
	// The default behavior fills delta with ones and reports false.
	RectifyEquilibration(delta, e []T) bool

	// ShiftToCone moves a possibly-infeasible point into the cone interior.
	ShiftToCone(z []T)
	// UnitInitialization writes a canonical centered interior starting
	// point into z and s.
	UnitInitialization(z, s []T)

	// SetIdentityScaling resets the internal scaling state to the identity.
	SetIdentityScaling()
	// UpdateScaling recomputes the internal primal-dual scaling from the
	// current iterate, barrier parameter mu and the strategy selector.
	UpdateScaling(s, z []T, mu T, strategy ScalingStrategy)

	// HsIsDiagonal reports whether the structural Hessian block is
	// representable as a diagonal, enabling cheaper storage upstream.
	HsIsDiagonal() bool
	// GetHs writes the block's diagonal (length Numel) or packed
	// upper-triangular (length Numel·(Numel+1)/2) representation.
	GetHs(block []T)
	// MulHs applies the scaled Hessian operator y ← Hs·x using the
	// caller-provided scratch buffer.
	MulHs(y, x, work []T)

	// AffineDs computes the affine-step contribution to the slack delta.
	AffineDs(ds, s []T)
	// CombinedDsShift computes the centering-corrector shift for the
	// combined step; nonsymmetric cones may mutate internal state here.
	CombinedDsShift(shift, stepZ, stepS []T, sigmaMu T)
	// DsFromDzOffset recovers a slack step from a dual step plus offset.
	DsFromDzOffset(out, ds, work []T)

	// StepLength returns the maximal primal and dual step lengths
	// preserving cone membership, each bounded above by alphaMax.
	StepLength(dz, ds, z, s []T, set *Settings[T], alphaMax T) (T, T)
	// ComputeBarrier evaluates the barrier function at the candidate step
	// z+alpha·dz, s+alpha·ds.
	ComputeBarrier(z, s, dz, ds []T, alpha T) T
}

// newCone builds the concrete cone object for a descriptor. Unimplemented
// kinds fail with ErrUnsupportedCone; dimensions below a kind's minimum
// fail with ErrBadDimension.
func newCone[T vecmath.Float](d Descriptor[T]) (Cone[T], error) {
	switch d.Kind {
	case ZeroKind:
		if d.Dim < 1 {
			return nil, fmt.Errorf("%w: %s(%d)", ErrBadDimension, d.Kind, d.Dim)
		}
		return newZeroCone[T](d.Dim), nil
	case NonnegativeKind:
		if d.Dim < 1 {
			return nil, fmt.Errorf("%w: %s(%d)", ErrBadDimension, d.Kind, d.Dim)
		}
		return newNonnegativeCone[T](d.Dim), nil
	case SecondOrderKind:
		if d.Dim < 2 {
			return nil, fmt.Errorf("%w: %s(%d)", ErrBadDimension, d.Kind, d.Dim)
		}
		return newSecondOrderCone[T](d.Dim), nil
	case ExponentialKind:
		return newExponentialCone[T](), nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedCone, d.Kind)
	}
}

// rectifyUniform implements the shared rectification rule of cones whose
// equilibration must be uniform across the block: delta = mean(e) ./ e,
// so that delta .* e is constant.
func rectifyUniform[T vecmath.Float](delta, e []T) bool {
	vecmath.CopyFrom(delta, e)
	vecmath.Reciprocal(delta)
	vecmath.Scale(delta, vecmath.Mean(e))
	return true
}
