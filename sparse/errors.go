package sparse

import "errors"

var (
	// ErrBadShape indicates a negative row or column count.
	ErrBadShape = errors.New("sparse: matrix dimensions must be nonnegative")
	// ErrColPtrLength indicates colptr is not of length n+1.
	ErrColPtrLength = errors.New("sparse: colptr must have length ncols+1")
	// ErrColPtrOrder indicates colptr is not a valid prefix-sum sequence.
	ErrColPtrOrder = errors.New("sparse: colptr must start at 0, be non-decreasing, and end at nnz")
	// ErrRowIndex indicates a row index outside [0, nrows).
	ErrRowIndex = errors.New("sparse: row index out of range")
	// ErrValueLength indicates rowidx and nzval differ in length.
	ErrValueLength = errors.New("sparse: row-index and value sequences must have equal length")
)
