// Package vecmath provides the scalar and dense-vector kernel used by every
// interior-point iteration: elementwise transforms, reductions, and the
// axpby family of fused updates, generic over float32/float64.
//
// What:
//
//   - Clip regularizes a scalar into a safe range with replacement bounds.
//   - In-place transforms: Translate, Scale, Negate, Reciprocal, Sqrt,
//     Rsqrt, Hadamard, ClipAll, Fill, CopyFrom.
//   - Reductions: Dot, SumSq, Norm, NormScaled, NormInf, NormOne,
//     Minimum, Maximum, Mean.
//   - Fused updates: Axpby (y ← a·x + b·y) and Waxpby (w ← a·x + b·y),
//     with exact fast paths for b ∈ {0, 1, −1}.
//
// Why:
//
//   - Residual evaluation, equilibration and step updates all reduce to
//     these primitives; keeping them in one place keeps the solver loops
//     free of index bookkeeping.
//
// Complexity:
//
//   - Every operation is a single O(n) pass, Memory: O(1) extra.
//
// Edge policy (deliberate behaviors, never errors):
//
//   - NormInf skips NaN entries (comparisons against NaN are false).
//   - Mean of an empty buffer is zero.
//   - Minimum/Maximum of an empty buffer are +Inf/−Inf (fold seeds).
//
// Paired-buffer operations panic on length mismatch: a mismatch is an
// integration bug upstream, not a data condition.
package vecmath
