// Package eigs finds the few lowest eigenpairs of very large, implicitly
// defined linear operators — operators you can apply to a vector, but could
// never afford to store as a matrix.
//
// 🚀 What is eigs?
//
//	A small, focused library implementing the block-Davidson subspace
//	eigensolver:
//		• Trial-subspace management with bounded growth and collapse
//		• Operator application as an injected capability (sigma vectors)
//		• Rayleigh–Ritz projection with a general (non-symmetric) eigensolver
//		• Diagonal (Jacobi-style) residual preconditioning
//		• Eigenvalue-drift convergence monitoring
//
// ✨ Why choose eigs?
//
//   - Implicit operators only – you supply Apply(dst, src), never a matrix
//   - Bounded memory – the subspace never exceeds Roots×VectorsPerRoot columns
//   - Explicit failure modes – sentinel errors for divergence, rank
//     deficiency and complex Ritz values; partial results for diagnosis
//   - Pluggable – seed strategies and iteration observers are injectable
//
// Everything is organized under two subpackages:
//
//	blockvec/ — composite singles/doubles trial vectors with zero-copy views
//	davidson/ — the block-Davidson driver and its supporting pieces
//
// See davidson/example_test.go for a complete end-to-end run.
package eigs
