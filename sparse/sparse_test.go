package sparse_test

import (
	"testing"

	"github.com/katalvlaran/coneal/sparse"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustCSC builds a matrix and fails the test on constructor error.
func mustCSC(t *testing.T, m, n int, colptr, rowidx []int, nzval []float64) *sparse.CSC[float64] {
	t.Helper()
	a, err := sparse.New(m, n, colptr, rowidx, nzval)
	require.NoError(t, err)
	return a
}

// testMatrix is the 3x2 example
//
//	[ 1  0 ]
//	[ 0  3 ]
//	[ 2  4 ]
//
// stored column-major.
func testMatrix(t *testing.T) *sparse.CSC[float64] {
	return mustCSC(t, 3, 2,
		[]int{0, 2, 4},
		[]int{0, 2, 1, 2},
		[]float64{1, 2, 3, 4})
}

// TestNew_Validation exercises every CSC constructor invariant.
func TestNew_Validation(t *testing.T) {
	_, err := sparse.New(-1, 2, []int{0, 0, 0}, nil, []float64{})
	assert.ErrorIs(t, err, sparse.ErrBadShape, "negative dimension")

	_, err = sparse.New(2, 2, []int{0, 0}, nil, []float64{})
	assert.ErrorIs(t, err, sparse.ErrColPtrLength, "colptr too short")

	_, err = sparse.New(2, 2, []int{0, 1, 1}, []int{0}, []float64{})
	assert.ErrorIs(t, err, sparse.ErrValueLength, "rowidx/nzval mismatch")

	_, err = sparse.New(2, 2, []int{0, 2, 1}, []int{0, 1}, []float64{1, 2})
	assert.ErrorIs(t, err, sparse.ErrColPtrOrder, "decreasing colptr")

	_, err = sparse.New(2, 2, []int{0, 1, 3}, []int{0, 1}, []float64{1, 2})
	assert.ErrorIs(t, err, sparse.ErrColPtrOrder, "last colptr disagrees with nnz")

	_, err = sparse.New(2, 2, []int{0, 1, 2}, []int{0, 2}, []float64{1, 2})
	assert.ErrorIs(t, err, sparse.ErrRowIndex, "row index out of range")
}

// TestShapeQueries verifies the dimension accessors.
func TestShapeQueries(t *testing.T) {
	a := testMatrix(t)
	assert.Equal(t, 3, a.NRows())
	assert.Equal(t, 2, a.NCols())
	assert.False(t, a.IsSquare())
	assert.Equal(t, 4, a.Nnz())

	assert.True(t, sparse.Identity[float64](3).IsSquare())
}

// TestScale verifies uniform scaling of stored values.
func TestScale(t *testing.T) {
	a := testMatrix(t)
	a.Scale(2)
	assert.Equal(t, []float64{2, 4, 6, 8}, a.NzVal)
}

// TestGemv_DiagonalN checks the spec example: a 2x2 diagonal matrix with
// entries 2 and 3 applied to the ones vector, both orientations.
func TestGemv_DiagonalN(t *testing.T) {
	a := mustCSC(t, 2, 2, []int{0, 1, 2}, []int{0, 1}, []float64{2, 3})
	x := []float64{1, 1}

	y := make([]float64, 2)
	a.Gemv(y, sparse.NoTranspose, x, 1, 0)
	assert.Equal(t, []float64{2, 3}, y, "orientation N")

	y = make([]float64, 2)
	a.Gemv(y, sparse.Transpose, x, 1, 0)
	assert.Equal(t, []float64{2, 3}, y, "orientation T matches for a diagonal matrix")
}

// TestGemv_Rectangular checks both orientations and the alpha/beta fast
// paths on a non-symmetric 3x2 matrix.
func TestGemv_Rectangular(t *testing.T) {
	a := testMatrix(t)
	x := []float64{1, 2} // A*x = (1, 6, 10)

	y := []float64{100, 100, 100}
	a.Gemv(y, sparse.NoTranspose, x, 1, 0)
	assert.Equal(t, []float64{1, 6, 10}, y, "b=0 overwrites y")

	a.Gemv(y, sparse.NoTranspose, x, 1, 1)
	assert.Equal(t, []float64{2, 12, 20}, y, "b=1 accumulates")

	a.Gemv(y, sparse.NoTranspose, x, -1, 1)
	assert.Equal(t, []float64{1, 6, 10}, y, "a=-1 subtracts")

	a.Gemv(y, sparse.NoTranspose, x, 0, -1)
	assert.Equal(t, []float64{-1, -6, -10}, y, "a=0 applies only the b term")

	// Aᵀ·(1,1,1) = (3, 7)
	z := make([]float64, 2)
	a.Gemv(z, sparse.Transpose, []float64{1, 1, 1}, 1, 0)
	assert.Equal(t, []float64{3, 7}, z, "transpose product")

	a.Gemv(z, sparse.Transpose, []float64{1, 1, 1}, 2, 0.5)
	assert.Equal(t, []float64{7.5, 17.5}, z, "general a and b")
}

// TestGemv_LengthMismatchPanics verifies fail-fast operand checking for
// both orientations.
func TestGemv_LengthMismatchPanics(t *testing.T) {
	a := testMatrix(t)
	y3 := make([]float64, 3)
	y2 := make([]float64, 2)

	require.Panics(t, func() { a.Gemv(y3, sparse.NoTranspose, []float64{1, 2, 3}, 1, 0) }, "x too long for N")
	require.Panics(t, func() { a.Gemv(y2, sparse.NoTranspose, []float64{1, 2}, 1, 0) }, "y too short for N")
	require.Panics(t, func() { a.Gemv(y2, sparse.Transpose, []float64{1, 2}, 1, 0) }, "x too short for T")
}

// TestColRowNorms verifies per-column and per-row maxima and the NoReset
// accumulation across two matrices.
func TestColRowNorms(t *testing.T) {
	a := testMatrix(t)

	cn := make([]float64, 2)
	a.ColNorms(cn)
	assert.Equal(t, []float64{2, 4}, cn)

	rn := make([]float64, 3)
	a.RowNorms(rn)
	assert.Equal(t, []float64{1, 3, 4}, rn)

	// running max across a second matrix with a larger entry in column 0
	b := mustCSC(t, 3, 2, []int{0, 1, 1}, []int{0}, []float64{-9})
	b.ColNormsNoReset(cn)
	assert.Equal(t, []float64{9, 4}, cn, "NoReset keeps the running max")
}

// TestColNormsSym verifies that the symmetric variant updates both row and
// column maxima from a stored triangle.
func TestColNormsSym(t *testing.T) {
	// upper triangle of [ 1 5 ; 5 2 ]
	a := mustCSC(t, 2, 2, []int{0, 1, 3}, []int{0, 0, 1}, []float64{1, 5, 2})

	n := make([]float64, 2)
	a.ColNormsSym(n)
	assert.Equal(t, []float64{5, 5}, n, "off-diagonal entry dominates both indices")
}

// TestDiagScaling verifies left, right and combined diagonal scalings.
func TestDiagScaling(t *testing.T) {
	l := []float64{2, 3, 5}
	r := []float64{10, 100}

	a := testMatrix(t)
	a.LMulDiag(l)
	assert.Equal(t, []float64{2, 10, 9, 20}, a.NzVal, "left scaling by row")

	a = testMatrix(t)
	a.RMulDiag(r)
	assert.Equal(t, []float64{10, 20, 300, 400}, a.NzVal, "right scaling by column")

	a = testMatrix(t)
	a.LRMulDiag(l, r)
	assert.Equal(t, []float64{20, 100, 900, 2000}, a.NzVal, "two-sided equilibration scaling")
}
