// Package cones defines the cone capability contract of a primal-dual
// interior-point solver, the concrete cone kinds implementing it, and the
// CompositeCone that stands for an entire heterogeneous constraint set.
//
// What:
//
//   - Descriptor + Kind: tagged variants naming each conic constraint
//     (Zero, Nonnegative, SecondOrder, Exponential) with its ambient
//     dimension; Kind-only tallies count occurrences per variant.
//   - Cone[T]: the operation set every cone kind implements — scalings,
//     Hessian blocks, step lengths, barriers.
//   - Concrete cones: ZeroCone, NonnegativeCone and SecondOrderCone carry
//     Nesterov–Todd scalings; ExponentialCone is nonsymmetric and scales
//     through its dual barrier Hessian.
//   - CompositeCone[T]: owns the members in construction order, partitions
//     global iterate vectors across per-member index ranges, dispatches
//     every operation and folds the results (sum, AND, OR, min).
//
// Why:
//
//   - The outer Newton iteration sees one object per solve; adding a cone
//     kind touches the registry and nothing else.
//
// Step-length protocol (order matters):
//
//  1. symmetric members tighten a running bound from the caller's αmax;
//  2. if any member is nonsymmetric, the bound is clamped to 0.99 so the
//     next iterate stays strictly inside every barrier domain;
//  3. nonsymmetric members tighten the already-clamped bound further.
//
// Errors:
//
//   - ErrUnsupportedCone: a descriptor kind with no implementation.
//   - ErrBadDimension: a descriptor dimension below the kind's minimum.
//
// Dim() on a CompositeCone panics: no single ambient dimension is
// meaningful across heterogeneous members — callers use Numel().
package cones
