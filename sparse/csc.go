package sparse

import (
	"fmt"

	"github.com/katalvlaran/coneal/vecmath"
)

// Orientation selects which operator a Gemv applies.
type Orientation int

const (
	// NoTranspose applies A itself.
	NoTranspose Orientation = iota
	// Transpose applies Aᵀ.
	Transpose
)

// CSC is an m×n sparse matrix in compressed-sparse-column storage.
//
// Column j's nonzeros occupy RowIdx[ColPtr[j]:ColPtr[j+1]] and the parallel
// NzVal range. Invariant: ColPtr[n] == len(RowIdx) == len(NzVal). No row
// ordering is required within a column. The three sequences are coupled and
// must not be resized independently once constructed.
type CSC[T vecmath.Float] struct {
	// M and N are the row and column counts.
	M, N int
	// ColPtr holds n+1 non-decreasing offsets into RowIdx/NzVal.
	ColPtr []int
	// RowIdx holds the row of each stored entry, each in [0, M).
	RowIdx []int
	// NzVal holds the value of each stored entry, parallel to RowIdx.
	NzVal []T
}

// New validates the CSC invariants and builds a matrix over the given
// storage. The slices are adopted, not copied.
//
// Time Complexity: O(n + nnz)
func New[T vecmath.Float](m, n int, colptr, rowidx []int, nzval []T) (*CSC[T], error) {
	if m < 0 || n < 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrBadShape, m, n)
	}
	if len(colptr) != n+1 {
		return nil, fmt.Errorf("%w: got %d, want %d", ErrColPtrLength, len(colptr), n+1)
	}
	if len(rowidx) != len(nzval) {
		return nil, fmt.Errorf("%w: %d row indices, %d values", ErrValueLength, len(rowidx), len(nzval))
	}
	if colptr[0] != 0 || colptr[n] != len(nzval) {
		return nil, fmt.Errorf("%w: colptr[0]=%d, colptr[n]=%d, nnz=%d",
			ErrColPtrOrder, colptr[0], colptr[n], len(nzval))
	}
	for j := 0; j < n; j++ {
		if colptr[j] > colptr[j+1] {
			return nil, fmt.Errorf("%w: colptr[%d]=%d > colptr[%d]=%d",
				ErrColPtrOrder, j, colptr[j], j+1, colptr[j+1])
		}
	}
	for k, r := range rowidx {
		if r < 0 || r >= m {
			return nil, fmt.Errorf("%w: rowidx[%d]=%d, nrows=%d", ErrRowIndex, k, r, m)
		}
	}

	return &CSC[T]{M: m, N: n, ColPtr: colptr, RowIdx: rowidx, NzVal: nzval}, nil
}

// Identity returns the n×n identity matrix.
func Identity[T vecmath.Float](n int) *CSC[T] {
	d := make([]T, n)
	vecmath.Fill(d, 1)
	return Diagonal(d)
}

// Diagonal returns the square matrix with d on its diagonal.
func Diagonal[T vecmath.Float](d []T) *CSC[T] {
	n := len(d)
	colptr := make([]int, n+1)
	rowidx := make([]int, n)
	nzval := make([]T, n)
	for j := 0; j < n; j++ {
		colptr[j+1] = j + 1
		rowidx[j] = j
		nzval[j] = d[j]
	}
	return &CSC[T]{M: n, N: n, ColPtr: colptr, RowIdx: rowidx, NzVal: nzval}
}

// NRows returns the row count m.
func (a *CSC[T]) NRows() int { return a.M }

// NCols returns the column count n.
func (a *CSC[T]) NCols() int { return a.N }

// IsSquare reports whether m == n.
func (a *CSC[T]) IsSquare() bool { return a.M == a.N }

// Nnz returns the number of stored entries.
func (a *CSC[T]) Nnz() int { return len(a.NzVal) }

// Scale multiplies every stored value by c.
func (a *CSC[T]) Scale(c T) {
	vecmath.Scale(a.NzVal, c)
}
