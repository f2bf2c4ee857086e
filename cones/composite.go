package cones

import "github.com/katalvlaran/coneal/vecmath"

// nonsymmetricStepCeiling caps step lengths whenever any member cone is
// nonsymmetric, keeping the next iterate strictly inside every barrier
// domain: a nonsymmetric barrier is undefined at its boundary.
const nonsymmetricStepCeiling = 0.99

// indexRange is a half-open slice window [Start, Stop) into a global
// iterate or block buffer.
type indexRange struct {
	Start, Stop int
}

// CompositeCone owns an ordered collection of cone objects, partitions
// global iterate vectors across them, dispatches every per-iteration
// operation, and folds the member results.
//
// The member order is the descriptor order; the index ranges and the
// symmetry flag are immutable once built; members are never added or
// removed after construction. Scaling state of the members mutates every
// iteration through the dispatching methods.
type CompositeCone[T vecmath.Float] struct {
	cones []Cone[T]

	// descriptors is the construction-order copy of the input; kindCounts
	// tallies occurrences keyed by the bare variant tag.
	descriptors []Descriptor[T]
	kindCounts  map[Kind]int

	numel  int
	degree int

	// rngCones partitions [0, numel) in construction order, one window per
	// member; rngBlocks partitions the Hs block storage space, sized per
	// member by HsIsDiagonal (numel vs packed-triangle count).
	rngCones  []indexRange
	rngBlocks []indexRange

	isSymmetric bool
}

// NewCompositeCone instantiates every descriptor in order, tallies
// per-kind counts, computes the parallel range partitions and the
// aggregate size, degree and symmetry. Construction fails on the first
// descriptor that cannot be built (unsupported kind, bad dimension).
//
// Time Complexity: O(ncones)
func NewCompositeCone[T vecmath.Float](descriptors []Descriptor[T]) (*CompositeCone[T], error) {
	n := len(descriptors)

	c := &CompositeCone[T]{
		cones:       make([]Cone[T], 0, n),
		descriptors: append([]Descriptor[T](nil), descriptors...),
		kindCounts:  make(map[Kind]int),
		isSymmetric: true,
	}

	for _, d := range c.descriptors {
		c.kindCounts[d.Kind]++

		cone, err := newCone(d)
		if err != nil {
			return nil, err
		}
		if !cone.IsSymmetric() {
			c.isSymmetric = false
		}
		c.cones = append(c.cones, cone)

		c.numel += cone.Numel()
		c.degree += cone.Degree()
	}

	c.rngCones = make([]indexRange, n)
	c.rngBlocks = make([]indexRange, n)
	start, bstart := 0, 0
	for i, cone := range c.cones {
		stop := start + cone.Numel()
		c.rngCones[i] = indexRange{Start: start, Stop: stop}
		start = stop

		blen := cone.Numel()
		if !cone.HsIsDiagonal() {
			blen = blen * (blen + 1) / 2
		}
		c.rngBlocks[i] = indexRange{Start: bstart, Stop: bstart + blen}
		bstart += blen
	}

	return c, nil
}

// Len returns the number of member cones.
func (c *CompositeCone[T]) Len() int { return len(c.cones) }

// IsEmpty reports whether the composite has no members.
func (c *CompositeCone[T]) IsEmpty() bool { return len(c.cones) == 0 }

// TypeCount returns how many members carry the given kind tag, zero for an
// absent kind. Counting ignores dimensions: Zero(3) and Zero(7) tally
// together.
func (c *CompositeCone[T]) TypeCount(k Kind) int { return c.kindCounts[k] }

// RangeCone returns the iterate-vector window assigned to member i.
func (c *CompositeCone[T]) RangeCone(i int) (start, stop int) {
	r := c.rngCones[i]
	return r.Start, r.Stop
}

// RangeBlock returns the Hs-block window assigned to member i.
func (c *CompositeCone[T]) RangeBlock(i int) (start, stop int) {
	r := c.rngBlocks[i]
	return r.Start, r.Stop
}

// BlockLen returns the total Hs block storage length across all members.
func (c *CompositeCone[T]) BlockLen() int {
	if len(c.rngBlocks) == 0 {
		return 0
	}
	return c.rngBlocks[len(c.rngBlocks)-1].Stop
}

// AsSecondOrderCone returns member i as a second-order-cone view when
// applicable. The kind set is closed, so an explicit query replaces
// reflection-based downcasting for the LDL expanded-format special case.
func (c *CompositeCone[T]) AsSecondOrderCone(i int) (*SecondOrderCone[T], bool) {
	soc, ok := c.cones[i].(*SecondOrderCone[T])
	return soc, ok
}

// Dim is undefined for a composite: no single ambient dimension is
// meaningful across heterogeneous members. Callers use Numel.
func (c *CompositeCone[T]) Dim() int {
	panic("cones: Dim() is not well defined for a CompositeCone")
}

// Degree returns the summed barrier degree of the members.
func (c *CompositeCone[T]) Degree() int { return c.degree }

// Numel returns the total ambient size of the composite.
func (c *CompositeCone[T]) Numel() int { return c.numel }

// IsSymmetric reports whether every member admits a symmetric scaling.
func (c *CompositeCone[T]) IsSymmetric() bool { return c.isSymmetric }

// RectifyEquilibration dispatches per member and folds the changed flags
// with logical OR. delta is first filled with ones so members that decline
// to rectify leave the identity adjustment.
func (c *CompositeCone[T]) RectifyEquilibration(delta, e []T) bool {
	anyChanged := false
	vecmath.Fill(delta, 1)
	for i, cone := range c.cones {
		r := c.rngCones[i]
		if cone.RectifyEquilibration(delta[r.Start:r.Stop], e[r.Start:r.Stop]) {
			anyChanged = true
		}
	}
	return anyChanged
}

// ShiftToCone dispatches per member in construction order.
func (c *CompositeCone[T]) ShiftToCone(z []T) {
	for i, cone := range c.cones {
		r := c.rngCones[i]
		cone.ShiftToCone(z[r.Start:r.Stop])
	}
}

// UnitInitialization dispatches per member in construction order.
func (c *CompositeCone[T]) UnitInitialization(z, s []T) {
	for i, cone := range c.cones {
		r := c.rngCones[i]
		cone.UnitInitialization(z[r.Start:r.Stop], s[r.Start:r.Stop])
	}
}

// SetIdentityScaling resets every member's scaling state.
func (c *CompositeCone[T]) SetIdentityScaling() {
	for _, cone := range c.cones {
		cone.SetIdentityScaling()
	}
}

// UpdateScaling dispatches the iterate slices and forwards mu and the
// strategy token unchanged to every member.
func (c *CompositeCone[T]) UpdateScaling(s, z []T, mu T, strategy ScalingStrategy) {
	for i, cone := range c.cones {
		r := c.rngCones[i]
		cone.UpdateScaling(s[r.Start:r.Stop], z[r.Start:r.Stop], mu, strategy)
	}
}

// HsIsDiagonal folds the members' flags with logical AND, short-circuiting
// on the first dense block. Callers normally interrogate the members
// through the block ranges instead.
func (c *CompositeCone[T]) HsIsDiagonal() bool {
	for _, cone := range c.cones {
		if !cone.HsIsDiagonal() {
			return false
		}
	}
	return true
}

// GetHs dispatches into the block-range partition: each member writes its
// diagonal or packed-triangular representation into its own window.
func (c *CompositeCone[T]) GetHs(block []T) {
	for i, cone := range c.cones {
		r := c.rngBlocks[i]
		cone.GetHs(block[r.Start:r.Stop])
	}
}

// MulHs applies every member's scaled Hessian operator to its iterate
// slice, sharing the caller's scratch.
func (c *CompositeCone[T]) MulHs(y, x, work []T) {
	for i, cone := range c.cones {
		r := c.rngCones[i]
		cone.MulHs(y[r.Start:r.Stop], x[r.Start:r.Stop], work[r.Start:r.Stop])
	}
}

// AffineDs dispatches per member in construction order.
func (c *CompositeCone[T]) AffineDs(ds, s []T) {
	for i, cone := range c.cones {
		r := c.rngCones[i]
		cone.AffineDs(ds[r.Start:r.Stop], s[r.Start:r.Stop])
	}
}

// CombinedDsShift dispatches per member; nonsymmetric members may mutate
// their internal state while computing the shift.
func (c *CompositeCone[T]) CombinedDsShift(shift, stepZ, stepS []T, sigmaMu T) {
	for i, cone := range c.cones {
		r := c.rngCones[i]
		cone.CombinedDsShift(shift[r.Start:r.Stop], stepZ[r.Start:r.Stop], stepS[r.Start:r.Stop], sigmaMu)
	}
}

// DsFromDzOffset dispatches per member in construction order.
func (c *CompositeCone[T]) DsFromDzOffset(out, ds, work []T) {
	for i, cone := range c.cones {
		r := c.rngCones[i]
		cone.DsFromDzOffset(out[r.Start:r.Stop], ds[r.Start:r.Stop], work[r.Start:r.Stop])
	}
}

// StepLength runs the two-phase protocol. Symmetric members tighten a
// running bound starting from alphaMax; if any member is nonsymmetric the
// bound is then clamped to the conservative ceiling before the
// nonsymmetric members tighten it further with the clamped bound as their
// own maximum. One scalar serves both primal and dual: the composite
// contract does not support independently tightened steps.
func (c *CompositeCone[T]) StepLength(dz, ds, z, s []T, set *Settings[T], alphaMax T) (T, T) {
	α := alphaMax

	// Symmetric cones first.
	for i, cone := range c.cones {
		if !cone.IsSymmetric() {
			continue
		}
		r := c.rngCones[i]
		αz, αs := cone.StepLength(
			dz[r.Start:r.Stop], ds[r.Start:r.Stop],
			z[r.Start:r.Stop], s[r.Start:r.Stop], set, α)
		α = minT(α, minT(αz, αs))
	}

	// Back off from full steps so that centrality checks and logarithms
	// don't fail right at a nonsymmetric boundary.
	if !c.isSymmetric {
		α = minT(α, nonsymmetricStepCeiling)
	}

	// Nonsymmetric cones last, from the already-tightened bound.
	for i, cone := range c.cones {
		if cone.IsSymmetric() {
			continue
		}
		r := c.rngCones[i]
		αz, αs := cone.StepLength(
			dz[r.Start:r.Stop], ds[r.Start:r.Stop],
			z[r.Start:r.Stop], s[r.Start:r.Stop], set, α)
		α = minT(α, minT(αz, αs))
	}

	return α, α
}

// ComputeBarrier sums the members' barrier values at the candidate step.
func (c *CompositeCone[T]) ComputeBarrier(z, s, dz, ds []T, alpha T) T {
	var barrier T
	for i, cone := range c.cones {
		r := c.rngCones[i]
		barrier += cone.ComputeBarrier(
			z[r.Start:r.Stop], s[r.Start:r.Stop],
			dz[r.Start:r.Stop], ds[r.Start:r.Stop], alpha)
	}
	return barrier
}
