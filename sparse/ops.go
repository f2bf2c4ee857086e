package sparse

import "github.com/katalvlaran/coneal/vecmath"

// ColNorms writes, per column, the maximum absolute value among its
// nonzeros, clearing norms first.
func (a *CSC[T]) ColNorms(norms []T) {
	vecmath.Fill(norms, 0)
	a.ColNormsNoReset(norms)
}

// ColNormsNoReset accumulates column maxima into norms without clearing it
// first, so norms from several matrices combine via repeated calls with a
// running max.
func (a *CSC[T]) ColNormsNoReset(norms []T) {
	if len(norms) != a.N {
		panic("sparse: column norms buffer must have length ncols")
	}
	for j := 0; j < a.N; j++ {
		for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
			v := a.NzVal[k]
			if v < 0 {
				v = -v
			}
			if v > norms[j] {
				norms[j] = v
			}
		}
	}
}

// ColNormsSym treats the matrix as symmetric-by-convention, updating both
// the row and column maxima from each stored entry. Used when only a
// triangular part is stored. Clears norms first.
func (a *CSC[T]) ColNormsSym(norms []T) {
	vecmath.Fill(norms, 0)
	a.ColNormsSymNoReset(norms)
}

// ColNormsSymNoReset is ColNormsSym without the initial clear.
func (a *CSC[T]) ColNormsSymNoReset(norms []T) {
	if len(norms) != a.N {
		panic("sparse: symmetric norms buffer must have length ncols")
	}
	for j := 0; j < a.N; j++ {
		for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
			v := a.NzVal[k]
			if v < 0 {
				v = -v
			}
			r := a.RowIdx[k]
			if v > norms[j] {
				norms[j] = v
			}
			if v > norms[r] {
				norms[r] = v
			}
		}
	}
}

// RowNorms writes, per row, the maximum absolute value among its nonzeros,
// clearing norms first.
func (a *CSC[T]) RowNorms(norms []T) {
	vecmath.Fill(norms, 0)
	a.RowNormsNoReset(norms)
}

// RowNormsNoReset is RowNorms without the initial clear.
func (a *CSC[T]) RowNormsNoReset(norms []T) {
	if len(norms) != a.M {
		panic("sparse: row norms buffer must have length nrows")
	}
	for k, r := range a.RowIdx {
		v := a.NzVal[k]
		if v < 0 {
			v = -v
		}
		if v > norms[r] {
			norms[r] = v
		}
	}
}

// LMulDiag scales each nonzero by l[row_of_entry]: A ← diag(l)·A.
func (a *CSC[T]) LMulDiag(l []T) {
	if len(l) != a.M {
		panic("sparse: left diagonal must have length nrows")
	}
	for k, r := range a.RowIdx {
		a.NzVal[k] *= l[r]
	}
}

// RMulDiag scales each nonzero by r[col_of_entry]: A ← A·diag(r),
// applied column-block-wise.
func (a *CSC[T]) RMulDiag(r []T) {
	if len(r) != a.N {
		panic("sparse: right diagonal must have length ncols")
	}
	for j := 0; j < a.N; j++ {
		vecmath.Scale(a.NzVal[a.ColPtr[j]:a.ColPtr[j+1]], r[j])
	}
}

// LRMulDiag applies the combined two-sided scaling A ← diag(l)·A·diag(r),
// used for equilibration.
func (a *CSC[T]) LRMulDiag(l, r []T) {
	if len(l) != a.M || len(r) != a.N {
		panic("sparse: diagonal lengths must match matrix dimensions")
	}
	for j := 0; j < a.N; j++ {
		first, last := a.ColPtr[j], a.ColPtr[j+1]
		for k := first; k < last; k++ {
			a.NzVal[k] *= l[a.RowIdx[k]] * r[j]
		}
	}
}

// Gemv computes y ← a·op(A)·x + b·y where op is the identity
// (NoTranspose) or the transpose (Transpose).
//
// The b-term is applied first with the same zero/one/negative-one fast
// paths as vecmath.Axpby; if a == 0 the accumulation is skipped entirely;
// otherwise a ∈ {1, −1} avoid the extra multiply.
//
// Panics if x or y does not match the operand dimension implied by the
// orientation.
//
// Time Complexity: O(nnz + len(y))
func (a *CSC[T]) Gemv(y []T, orient Orientation, x []T, alpha, beta T) {
	switch orient {
	case NoTranspose:
		a.gemvN(y, x, alpha, beta)
	case Transpose:
		a.gemvT(y, x, alpha, beta)
	default:
		panic("sparse: unknown gemv orientation")
	}
}

// gemvN accumulates y ← alpha·A·x + beta·y.
func (a *CSC[T]) gemvN(y, x []T, alpha, beta T) {
	if len(x) != a.N || len(y) != a.M {
		panic("sparse: gemv operand length mismatch")
	}
	applyBeta(y, beta)
	if alpha == 0 {
		return
	}

	switch alpha {
	case 1:
		for j := 0; j < a.N; j++ {
			for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
				y[a.RowIdx[k]] += a.NzVal[k] * x[j]
			}
		}
	case -1:
		for j := 0; j < a.N; j++ {
			for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
				y[a.RowIdx[k]] -= a.NzVal[k] * x[j]
			}
		}
	default:
		for j := 0; j < a.N; j++ {
			for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
				y[a.RowIdx[k]] += alpha * a.NzVal[k] * x[j]
			}
		}
	}
}

// gemvT accumulates y ← alpha·Aᵀ·x + beta·y.
func (a *CSC[T]) gemvT(y, x []T, alpha, beta T) {
	if len(x) != a.M || len(y) != a.N {
		panic("sparse: gemv operand length mismatch")
	}
	applyBeta(y, beta)
	if alpha == 0 {
		return
	}

	switch alpha {
	case 1:
		for j := 0; j < a.N; j++ {
			for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
				y[j] += a.NzVal[k] * x[a.RowIdx[k]]
			}
		}
	case -1:
		for j := 0; j < a.N; j++ {
			for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
				y[j] -= a.NzVal[k] * x[a.RowIdx[k]]
			}
		}
	default:
		for j := 0; j < a.N; j++ {
			for k := a.ColPtr[j]; k < a.ColPtr[j+1]; k++ {
				y[j] += alpha * a.NzVal[k] * x[a.RowIdx[k]]
			}
		}
	}
}

// applyBeta performs the b·y part of a gemv with exact-case branches.
func applyBeta[T vecmath.Float](y []T, beta T) {
	switch beta {
	case 0:
		vecmath.Fill(y, 0)
	case 1:
		// y unchanged
	case -1:
		vecmath.Negate(y)
	default:
		vecmath.Scale(y, beta)
	}
}
