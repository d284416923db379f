// Package davidson implements the block-Davidson iterative eigensolver for
// large, implicitly defined, generally non-symmetric linear operators.
//
// The solver never forms the operator as a matrix. It maintains a small
// orthonormal trial subspace, applies the injected Operator to each basis
// column (the "sigma vectors"), projects the operator onto the subspace
// (Rayleigh–Ritz), and expands the subspace with diagonally preconditioned
// residuals until the retained eigenvalues stop drifting.
//
// Algorithm outline (one iteration):
//  1. Orthonormalize the trial basis C (modified Gram–Schmidt; near-dependent
//     columns are dropped or rejected, per Options.RankPolicy).
//  2. Build sigma vectors S = [Op·c₁ … Op·c_L], optionally in parallel.
//  3. Form G = Cᵀ·S and compute its full general eigendecomposition; sort by
//     ascending real part and retain the Roots lowest pairs. A retained value
//     with a non-negligible imaginary part aborts with ErrUnstable.
//  4. For each retained pair compute the residual w = S·α − θ·C·α and the
//     correction q = w ⊘ (θ − D), with D the fixed diagonal preconditioner.
//  5. Declare convergence when the 2-norm of the eigenvalue drift falls below
//     Options.Tolerance (plus an optional residual-norm criterion).
//  6. Otherwise grow the basis by the Roots corrections, or — once L would
//     exceed Roots·VectorsPerRoot — collapse it to the Roots current Ritz
//     vectors and continue.
//
// Complexity per iteration:
//
//	– L operator applications (dominant for realistic problems)
//	– O(N·L²) for the projection and O(L³) for the small eigendecomposition
//	– memory never exceeds O(N·Roots·VectorsPerRoot)
//
// Errors (sentinel):
//
//	– ErrNilOperator, ErrBadDiagonal, ErrBadRoots, ErrBadVectorBudget,
//	  ErrBadTolerance, ErrBadIterations, ErrBadWorkers, ErrBadSeed,
//	  ErrOperatorShape          — setup validation, detected before iterating.
//	– ErrNotConverged           — iteration cap exhausted; partial Result kept.
//	– ErrUnstable               — retained Ritz value has a non-negligible
//	  imaginary part; partial Result kept.
//	– ErrRankDeficient          — basis cannot represent Roots independent
//	  directions (or any dependence under FailOnDeficiency).
//	– ErrEigenFailed            — general eigendecomposition did not converge.
//	– ErrNotLinear              — VerifyLinearity detected an affine operator.
//
// Numerical risks, documented rather than silently patched: the diagonal
// preconditioner divides by (θ − D) entries with no guard by default; set
// Options.PrecondFloor to clamp near-zero denominators. See Options.
package davidson
