// Package coneal is the computational core of a primal-dual interior-point
// solver for convex conic programs — the cone abstraction layer plus the
// dense and sparse numerical kernels every iteration is built on.
//
// 🚀 What is coneal?
//
//	A pure-Go, dependency-light library that brings together:
//		• Vector kernel: elementwise transforms & reductions over float buffers
//		• Sparse kernel: compressed-sparse-column matrices, gemv, equilibration
//		• Cone contract: one capability protocol shared by every cone kind
//		• Concrete cones: zero, nonnegative, second-order, exponential
//		• Composite cone: one object standing for a whole heterogeneous stack
//
// ✨ Why choose coneal?
//
//   - Solver-grade semantics – NT scalings, two-phase step lengths, barriers
//   - Generic scalar type – float32 or float64 via a single type parameter
//   - Pure Go – no cgo, no hidden deps
//   - Extensible – add a cone kind by implementing one interface
//
// Everything is organized under three subpackages:
//
//	vecmath/ — scalar clip + dense vector transforms and reductions
//	sparse/  — CSC matrices: products, norms, diagonal scalings
//	cones/   — descriptors, the Cone contract, concrete cones, CompositeCone
//
// Quick sketch of a composite cone over a 5-vector:
//
//	    [ z₀ z₁ | z₂ z₃ z₄ ]
//	      Zero(2)  Nonnegative(3)
//
//	each member sees only its slice; results fold back into one answer.
//
// The outer Newton iteration, KKT factorization and termination logic live
// upstream; they consume these kernels through caller-owned buffers.
//
//	go get github.com/katalvlaran/coneal
package coneal
