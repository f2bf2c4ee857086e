// Package sparse provides the compressed-sparse-column (CSC) matrix kernel
// used to apply the constraint operator and its transpose, and to
// equilibrate problem data, inside an interior-point iteration.
//
// What:
//
//   - CSC[T] couples column pointers, row indices and values into an m×n
//     matrix; New validates the storage invariants.
//   - Gemv computes y ← a·op(A)·x + b·y for op ∈ {identity, transpose},
//     with exact fast paths for a, b ∈ {0, 1, −1}.
//   - ColNorms / RowNorms / ColNormsSym write per-column/row maxima of
//     absolute values; NoReset variants accumulate a running max across
//     several matrices.
//   - LMulDiag / RMulDiag / LRMulDiag scale stored values by diagonal
//     factors for equilibration.
//
// Why:
//
//   - Residuals and search directions reduce to sparse gemv; Ruiz-style
//     equilibration reduces to the norm and diagonal-scaling kernels.
//
// Complexity:
//
//   - All kernels are a single O(nnz) pass (Gemv additionally O(m) or O(n)
//     for the b-term), Memory: O(1) extra.
//
// Errors:
//
//   - ErrBadShape: negative dimensions.
//   - ErrColPtrLength: colptr length is not n+1.
//   - ErrColPtrOrder: colptr not starting at 0 or not non-decreasing, or
//     its last entry disagrees with the nonzero count.
//   - ErrRowIndex: a row index outside [0, m).
//   - ErrValueLength: row-index and value sequences differ in length.
//
// Kernel operand mismatches (a gemv x of the wrong length, a norms buffer
// of the wrong size) are contract violations and panic.
package sparse
