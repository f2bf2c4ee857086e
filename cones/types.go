package cones

import "github.com/katalvlaran/coneal/vecmath"

// Kind tags the variant of a conic constraint. Tallies of cone occurrences
// are keyed by the bare Kind, so two descriptors of the same kind count
// together regardless of dimension.
type Kind int

const (
	// ZeroKind is the zero cone {0}ᵈ, used for equality constraints.
	ZeroKind Kind = iota
	// NonnegativeKind is the nonnegative orthant.
	NonnegativeKind
	// SecondOrderKind is the second-order (Lorentz / ice-cream) cone.
	SecondOrderKind
	// ExponentialKind is the exponential cone in R³.
	ExponentialKind
	// PlaceholderKind reserves a variant slot for a future power-like cone;
	// constructing it fails with ErrUnsupportedCone.
	PlaceholderKind
)

// String returns the kind's name. Used for progress printing upstream.
func (k Kind) String() string {
	switch k {
	case ZeroKind:
		return "ZeroCone"
	case NonnegativeKind:
		return "NonnegativeCone"
	case SecondOrderKind:
		return "SecondOrderCone"
	case ExponentialKind:
		return "ExponentialCone"
	case PlaceholderKind:
		return "PlaceholderCone"
	default:
		return "UnknownCone"
	}
}

// Descriptor names one conic constraint: its variant tag, the ambient
// dimension of its slice, and an exponent parameter for parameterized
// variants. The exponential cone's dimension is fixed at 3 by definition.
type Descriptor[T vecmath.Float] struct {
	// Kind is the variant tag; it alone determines identity for counting.
	Kind Kind
	// Dim is the ambient dimension of this cone's slice of the iterate.
	Dim int
	// Param carries the exponent of parameterized variants; unused otherwise.
	Param T
}

// Zero describes a zero cone of the given dimension.
func Zero[T vecmath.Float](dim int) Descriptor[T] {
	return Descriptor[T]{Kind: ZeroKind, Dim: dim}
}

// Nonnegative describes a nonnegative orthant of the given dimension.
func Nonnegative[T vecmath.Float](dim int) Descriptor[T] {
	return Descriptor[T]{Kind: NonnegativeKind, Dim: dim}
}

// SecondOrder describes a second-order cone of the given dimension.
func SecondOrder[T vecmath.Float](dim int) Descriptor[T] {
	return Descriptor[T]{Kind: SecondOrderKind, Dim: dim}
}

// Exponential describes the exponential cone; its dimension is always 3.
func Exponential[T vecmath.Float]() Descriptor[T] {
	return Descriptor[T]{Kind: ExponentialKind, Dim: 3}
}

// Placeholder describes the reserved parameterized variant. It cannot be
// constructed into a cone object.
func Placeholder[T vecmath.Float](dim int, param T) Descriptor[T] {
	return Descriptor[T]{Kind: PlaceholderKind, Dim: dim, Param: param}
}

// NumVars reports the number of slack variables this constraint generates,
// equivalent to Numel of the constructed cone.
func (d Descriptor[T]) NumVars() int {
	if d.Kind == ExponentialKind {
		return 3
	}
	return d.Dim
}

// SameKind reports the variant-tag-only equality used for counting:
// dimension and parameter are ignored.
func (d Descriptor[T]) SameKind(other Descriptor[T]) bool {
	return d.Kind == other.Kind
}

// ScalingStrategy selects how a cone recomputes its primal-dual scaling
// each iteration. It is forwarded unchanged through the composite.
type ScalingStrategy int

const (
	// PrimalDual uses the full primal-dual scaling where available.
	PrimalDual ScalingStrategy = iota
	// Dual falls back to the dual-barrier Hessian scaling.
	Dual
)

// Settings carries the numeric tolerances consumed by step-length
// computations of nonsymmetric cones.
//
// Fields:
//   - LinesearchBacktrackStep — multiplicative shrink factor applied each
//     time a candidate step leaves the cone interior.
//   - MinTerminateStepLength  — floor below which the backtracking search
//     gives up and returns the floor itself.
type Settings[T vecmath.Float] struct {
	LinesearchBacktrackStep T
	MinTerminateStepLength  T
}

// DefaultSettings returns the standard tolerances: backtrack factor 0.8,
// termination floor 1e-4.
func DefaultSettings[T vecmath.Float]() Settings[T] {
	return Settings[T]{
		LinesearchBacktrackStep: 0.8,
		MinTerminateStepLength:  1e-4,
	}
}
