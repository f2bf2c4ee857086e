package cones_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/coneal/cones"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// singleCone builds a one-member composite so concrete cones are exercised
// through the same dispatch path the solver uses.
func singleCone(t *testing.T, d cones.Descriptor[float64]) *cones.CompositeCone[float64] {
	t.Helper()
	return mustComposite(t, d)
}

// TestZeroCone verifies the degenerate member: zero blocks, free steps,
// no barrier contribution.
func TestZeroCone(t *testing.T) {
	c := singleCone(t, cones.Zero[float64](3))
	set := cones.DefaultSettings[float64]()

	z := []float64{1, -2, 3}
	c.ShiftToCone(z)
	assert.Equal(t, []float64{0, 0, 0}, z, "shift pins the point at the origin")

	y := make([]float64, 3)
	c.MulHs(y, []float64{1, 2, 3}, make([]float64, 3))
	assert.Equal(t, []float64{0, 0, 0}, y)

	az, as := c.StepLength([]float64{-9, -9, -9}, []float64{-9, -9, -9},
		[]float64{0, 0, 0}, []float64{0, 0, 0}, &set, 0.7)
	assert.Equal(t, 0.7, az)
	assert.Equal(t, 0.7, as)
}

// TestNonnegative_ShiftToCone verifies the two-stage translation to a
// strictly interior point.
func TestNonnegative_ShiftToCone(t *testing.T) {
	c := singleCone(t, cones.Nonnegative[float64](3))

	z := []float64{-2, 0.5, 3}
	c.ShiftToCone(z)
	assert.Equal(t, []float64{1, 3.5, 6}, z, "minimum entry lands at one")

	z = []float64{0.5, 1, 2}
	c.ShiftToCone(z)
	assert.Equal(t, []float64{0.5, 1, 2}, z, "interior points are untouched")
}

// TestNonnegative_Scaling verifies the diagonal NT quantities on an
// asymmetric point: Hs diagonal s./z, affine ds = s.*z, and the offset
// recovery ds ./ z.
func TestNonnegative_Scaling(t *testing.T) {
	c := singleCone(t, cones.Nonnegative[float64](2))

	s := []float64{4, 9}
	z := []float64{1, 4}
	c.UpdateScaling(s, z, 1.0, cones.PrimalDual)

	block := make([]float64, c.BlockLen())
	c.GetHs(block)
	assert.InDeltaSlice(t, []float64{4, 2.25}, block, 1e-12, "Hs diagonal is s./z")

	y := make([]float64, 2)
	c.MulHs(y, []float64{1, 2}, make([]float64, 2))
	assert.InDeltaSlice(t, []float64{4, 4.5}, y, 1e-12, "MulHs applies the diagonal")

	ds := make([]float64, 2)
	c.AffineDs(ds, s)
	assert.InDeltaSlice(t, []float64{4, 36}, ds, 1e-12, "affine ds is λ.^2 = s.*z")

	out := make([]float64, 2)
	c.DsFromDzOffset(out, []float64{2, 8}, make([]float64, 2))
	assert.InDeltaSlice(t, []float64{2, 2}, out, 1e-12, "offset recovery divides by z")

	shift := make([]float64, 2)
	c.CombinedDsShift(shift, []float64{2, 3}, []float64{5, 7}, 1.0)
	assert.InDeltaSlice(t, []float64{9, 20}, shift, 1e-12, "Δz.*Δs - σμ")
}

// TestSecondOrder_StepLength verifies the closed-form boundary quadratic:
// from the apex direction e the boundary is hit exactly at α = 1.
func TestSecondOrder_StepLength(t *testing.T) {
	c := singleCone(t, cones.SecondOrder[float64](3))
	set := cones.DefaultSettings[float64]()

	z := []float64{1, 0, 0}
	s := []float64{1, 0, 0}
	dz := []float64{0, 1, 0} // leaves through the boundary at α=1
	ds := []float64{0, 0, 0}

	az, as := c.StepLength(dz, ds, z, s, &set, 2.0)
	assert.Equal(t, az, as, "composite folds both to one scalar")
	assert.InDelta(t, 1.0, az, 1e-12, "boundary crossing at α=1")

	// inward directions never bind
	az, _ = c.StepLength([]float64{1, 0, 0}, ds, z, s, &set, 2.0)
	assert.Equal(t, 2.0, az)
}

// TestSecondOrder_ScalingConsistency cross-checks the NT scaling through
// three independent identities on a generic interior pair:
//
//	DsFromDzOffset(λ∘λ) = Wλ  and  MulHs(z) = W²z = Wλ  must agree,
//	and MulHs must match the dense packed block from GetHs.
func TestSecondOrder_ScalingConsistency(t *testing.T) {
	c := singleCone(t, cones.SecondOrder[float64](3))

	z := []float64{2.0, 0.3, 0.4}
	s := []float64{1.5, -0.2, 0.1}
	c.UpdateScaling(s, z, 1.0, cones.PrimalDual)

	// Wλ via the Jordan solve of the affine ds
	ds := make([]float64, 3)
	c.AffineDs(ds, s)
	wλ := make([]float64, 3)
	c.DsFromDzOffset(wλ, ds, make([]float64, 3))

	// W²z via the Hessian operator
	w2z := make([]float64, 3)
	c.MulHs(w2z, z, make([]float64, 3))

	assert.InDeltaSlice(t, wλ, w2z, 1e-9, "Wz = λ makes both paths coincide")

	// dense reconstruction from the packed triangle
	block := make([]float64, c.BlockLen())
	c.GetHs(block)
	dense := unpackTriu3(block)
	for i := 0; i < 3; i++ {
		var acc float64
		for j := 0; j < 3; j++ {
			acc += dense[i][j] * z[j]
		}
		assert.InDelta(t, w2z[i], acc, 1e-9, "packed block agrees with the operator")
	}
}

// unpackTriu3 expands a 6-entry packed upper triangle into a symmetric 3x3.
func unpackTriu3(block []float64) [3][3]float64 {
	var m [3][3]float64
	k := 0
	for j := 0; j < 3; j++ {
		for i := 0; i <= j; i++ {
			m[i][j] = block[k]
			m[j][i] = block[k]
			k++
		}
	}
	return m
}

// TestSecondOrder_ShiftToCone verifies the interior lift.
func TestSecondOrder_ShiftToCone(t *testing.T) {
	c := singleCone(t, cones.SecondOrder[float64](3))

	z := []float64{1, 3, 4} // outside: 1 < 5
	c.ShiftToCone(z)
	assert.Equal(t, []float64{6, 3, 4}, z, "lifted to ‖z₁:‖+1")

	z = []float64{10, 3, 4}
	c.ShiftToCone(z)
	assert.Equal(t, []float64{10, 3, 4}, z, "interior points are untouched")
}

// TestExponential_UnitInitialization verifies the central ray lies
// strictly inside both the primal and dual cones: the barrier is finite.
func TestExponential_UnitInitialization(t *testing.T) {
	c := singleCone(t, cones.Exponential[float64]())

	z := make([]float64, 3)
	s := make([]float64, 3)
	c.UnitInitialization(z, s)
	assert.Equal(t, z, s, "central ray initializes both sides")

	b := c.ComputeBarrier(z, s, make([]float64, 3), make([]float64, 3), 0)
	assert.False(t, math.IsInf(b, 1), "central ray must be interior")
	assert.False(t, math.IsNaN(b))
}

// TestExponential_BarrierIdentities validates the dual-barrier calculus
// through the logarithmic-homogeneity identities ∇f*(z)ᵀz = −3 and
// ∇²f*(z)·z = −∇f*(z).
func TestExponential_BarrierIdentities(t *testing.T) {
	c := singleCone(t, cones.Exponential[float64]())

	z := make([]float64, 3)
	s := make([]float64, 3)
	c.UnitInitialization(z, s)
	c.UpdateScaling(s, z, 1.0, cones.Dual)

	// grad surfaces through the centering shift with σμ = 1
	grad := make([]float64, 3)
	c.CombinedDsShift(grad, make([]float64, 3), make([]float64, 3), 1.0)

	dot := grad[0]*z[0] + grad[1]*z[1] + grad[2]*z[2]
	assert.InDelta(t, -3.0, dot, 1e-9, "degree-3 homogeneity: gᵀz = -ν")

	hz := make([]float64, 3)
	c.MulHs(hz, z, make([]float64, 3))
	for i := range hz {
		assert.InDelta(t, -grad[i], hz[i], 1e-9, "H·z = -g for a log-homogeneous barrier")
	}
}

// TestExponential_StepLength_Backtracks verifies the membership line
// search: shrinking along the central ray binds near α = 0.1 for a
// direction of ten times the negated point.
func TestExponential_StepLength_Backtracks(t *testing.T) {
	c := singleCone(t, cones.Exponential[float64]())
	set := cones.DefaultSettings[float64]()

	z := make([]float64, 3)
	s := make([]float64, 3)
	c.UnitInitialization(z, s)

	dz := []float64{-10 * z[0], -10 * z[1], -10 * z[2]}
	ds := []float64{-10 * s[0], -10 * s[1], -10 * s[2]}

	az, as := c.StepLength(dz, ds, z, s, &set, 1.0)
	assert.Equal(t, az, as)
	assert.Less(t, az, 0.1, "the ray leaves the cone at α = 0.1")
	assert.GreaterOrEqual(t, az, set.MinTerminateStepLength, "floor bounds the search")
}

// TestExponential_ShiftToCone replaces non-interior duals by the central ray.
func TestExponential_ShiftToCone(t *testing.T) {
	c := singleCone(t, cones.Exponential[float64]())

	z := []float64{1, 1, 1} // z₀ ≥ 0 is outside the dual cone
	c.ShiftToCone(z)

	ref := make([]float64, 3)
	s := make([]float64, 3)
	c.UnitInitialization(ref, s)
	assert.Equal(t, ref, z, "replaced by the central ray")

	interior := append([]float64(nil), ref...)
	c.ShiftToCone(interior)
	assert.Equal(t, ref, interior, "interior duals are untouched")
}

// TestExponential_BlockRange verifies the dense 3x3 packed block size and
// the identity reset.
func TestExponential_BlockRange(t *testing.T) {
	c := singleCone(t, cones.Exponential[float64]())
	require.Equal(t, 6, c.BlockLen(), "3x3 packed triangle")

	c.SetIdentityScaling()
	block := make([]float64, 6)
	c.GetHs(block)
	assert.Equal(t, []float64{1, 0, 1, 0, 0, 1}, block, "packed identity")
}
