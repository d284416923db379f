// SPDX-License-Identifier: MIT

// Package davidson: configuration, result types and the sentinel error set.
// All solver entry points return these sentinels (possibly wrapped with
// context via %w); callers and tests match them with errors.Is.
package davidson

import (
	"errors"
	"time"

	"github.com/katalvlaran/eigs/blockvec"
)

var (
	// ErrNilOperator indicates that Solve was given a nil Operator.
	ErrNilOperator = errors.New("davidson: operator must be non-nil")

	// ErrBadDiagonal indicates a nil preconditioner vector or one whose
	// length does not equal the configured Shape.Dim().
	ErrBadDiagonal = errors.New("davidson: preconditioner diagonal does not match shape")

	// ErrBadRoots indicates Roots <= 0 or Roots exceeding the operator dimension.
	ErrBadRoots = errors.New("davidson: number of roots out of range")

	// ErrBadVectorBudget indicates VectorsPerRoot < 2; the subspace could
	// never hold the initial 2·Roots guesses.
	ErrBadVectorBudget = errors.New("davidson: vectors per root must be >= 2")

	// ErrBadTolerance indicates a non-positive convergence tolerance or a
	// negative drop/imaginary tolerance.
	ErrBadTolerance = errors.New("davidson: tolerance out of range")

	// ErrBadIterations indicates MaxIterations <= 0.
	ErrBadIterations = errors.New("davidson: max iterations must be > 0")

	// ErrBadWorkers indicates a negative sigma-build worker count.
	ErrBadWorkers = errors.New("davidson: workers must be >= 0")

	// ErrBadSeed indicates that the seed strategy produced no usable initial
	// basis (fewer than Roots columns, or columns of the wrong length).
	ErrBadSeed = errors.New("davidson: seed strategy produced an unusable basis")

	// ErrOperatorShape indicates that the operator rejected the configured
	// block shape during the setup probe, before any iteration began.
	ErrOperatorShape = errors.New("davidson: operator rejected the configured shape")

	// ErrNotConverged indicates the iteration cap was exhausted before the
	// eigenvalue drift fell below Tolerance. The returned Result carries the
	// best available partial estimates for diagnosis.
	ErrNotConverged = errors.New("davidson: iteration cap exhausted before convergence")

	// ErrUnstable indicates that a retained Ritz eigenvalue has an imaginary
	// part exceeding ImagTolerance relative to its real part. The operator's
	// low spectrum is (locally) complex; the real-arithmetic driver aborts
	// rather than silently discarding the imaginary component.
	ErrUnstable = errors.New("davidson: retained eigenvalue has non-negligible imaginary part")

	// ErrRankDeficient indicates that orthonormalization could not represent
	// the requested number of independent directions.
	ErrRankDeficient = errors.New("davidson: trial basis is rank deficient")

	// ErrEigenFailed indicates that the general eigendecomposition of the
	// projected operator did not converge.
	ErrEigenFailed = errors.New("davidson: eigendecomposition of projected operator failed")

	// ErrNotLinear indicates that VerifyLinearity observed a violation of
	// operator(a·x+b·y) = a·operator(x)+b·operator(y) beyond tolerance.
	ErrNotLinear = errors.New("davidson: operator failed linearity check")
)

// RankPolicy selects the orthonormalizer's response to near-linear-dependent
// trial columns.
type RankPolicy int

const (
	// DropVector silently drops a column whose component orthogonal to the
	// already-accepted basis is below DropTolerance. This is the default:
	// preconditioned corrections routinely become dependent once the
	// subspace spans the target eigenspace.
	DropVector RankPolicy = iota

	// FailOnDeficiency aborts the solve with ErrRankDeficient instead.
	FailOnDeficiency
)

// DEFAULTS — single source of truth for DefaultOptions.
const (
	// DefaultVectorsPerRoot bounds the subspace at Roots·VectorsPerRoot
	// columns before a collapse is forced.
	DefaultVectorsPerRoot = 30

	// DefaultTolerance is the eigenvalue-drift 2-norm convergence threshold.
	DefaultTolerance = 1e-6

	// DefaultMaxIterations caps the outer Davidson loop.
	DefaultMaxIterations = 80

	// DefaultDropTolerance is the relative remainder-norm threshold below
	// which an orthonormalized column counts as linearly dependent.
	DefaultDropTolerance = 1e-8

	// DefaultImagTolerance bounds the acceptable imaginary part of a retained
	// Ritz value, relative to max(1, |Re θ|).
	DefaultImagTolerance = 1e-6

	// DefaultPrecondFloor disables denominator clamping: (θ − D) entries are
	// used as-is, reproducing the unguarded reference behavior. Set
	// Options.PrecondFloor > 0 to clamp near-singular denominators.
	DefaultPrecondFloor = 0

	// DefaultWorkers runs the sigma build sequentially.
	DefaultWorkers = 1
)

// Options configures a Solve run. Construct with DefaultOptions and override
// fields as needed; Solve validates everything fail-fast before iterating.
type Options struct {
	// Roots is the number of lowest eigenpairs sought. Must be > 0.
	Roots int

	// VectorsPerRoot is the subspace growth budget: the basis is collapsed
	// once it reaches Roots·VectorsPerRoot columns. Must be >= 2.
	VectorsPerRoot int

	// Tolerance is the convergence threshold on the 2-norm of the eigenvalue
	// drift between successive iterations. Must be > 0.
	Tolerance float64

	// ResidualTolerance is an optional auxiliary stopping criterion: when
	// > 0, convergence additionally requires every retained residual norm
	// |w_j| to fall below it. Zero disables the criterion (the eigenvalue
	// drift alone decides, as in the reference behavior).
	ResidualTolerance float64

	// MaxIterations caps the outer loop; exhaustion is a fatal
	// ErrNotConverged carrying the partial result. Must be > 0.
	MaxIterations int

	// DropTolerance is the orthonormalizer's relative remainder threshold
	// for declaring a column dependent. Must be >= 0.
	DropTolerance float64

	// PrecondFloor, when > 0, clamps |θ − D[i]| denominators below it to
	// ±PrecondFloor before dividing. Zero leaves them unguarded: a Ritz
	// value landing on a diagonal entry then produces a non-finite
	// correction, which the orthonormalizer subsequently drops or rejects
	// per RankPolicy. The correct remedy is domain-dependent, so the guard
	// is opt-in rather than implicit.
	PrecondFloor float64

	// ImagTolerance bounds the acceptable imaginary part of retained Ritz
	// values relative to max(1, |Re θ|); beyond it the solve aborts with
	// ErrUnstable. Must be >= 0.
	ImagTolerance float64

	// RankPolicy selects drop-and-continue vs abort on dependent columns.
	RankPolicy RankPolicy

	// Workers bounds the number of concurrent Operator.Apply calls during
	// the sigma build. Values <= 1 run sequentially. When > 1 the Operator
	// must be safe for concurrent use.
	Workers int

	// Observer, when non-nil, receives per-iteration statistics. Slices in
	// the snapshot are cloned per call; the observer may retain them.
	Observer Observer

	// Seed builds the initial trial basis. Nil selects DiagonalSeed.
	Seed SeedStrategy
}

// DefaultOptions returns the documented defaults for the given root count,
// mirroring the reference configuration (30 vectors per root, drift tolerance
// 1e-6, 80 iterations).
func DefaultOptions(roots int) Options {
	return Options{
		Roots:          roots,
		VectorsPerRoot: DefaultVectorsPerRoot,
		Tolerance:      DefaultTolerance,
		MaxIterations:  DefaultMaxIterations,
		DropTolerance:  DefaultDropTolerance,
		ImagTolerance:  DefaultImagTolerance,
		PrecondFloor:   DefaultPrecondFloor,
		RankPolicy:     DropVector,
		Workers:        DefaultWorkers,
	}
}

// IterationStats is the per-iteration snapshot handed to an Observer. All
// slices are freshly allocated per callback.
type IterationStats struct {
	// Iteration is the zero-based outer-loop index.
	Iteration int

	// SubspaceSize is L, the basis column count used this iteration
	// (after orthonormalization).
	SubspaceSize int

	// Values are the Roots retained Ritz values, ascending.
	Values []float64

	// Drift is the 2-norm of (Values − previous Values).
	Drift float64

	// ResidualNorms are the per-root residual 2-norms |w_j|.
	ResidualNorms []float64

	// Collapsed reports whether this iteration ended in a subspace collapse
	// rather than growth.
	Collapsed bool
}

// Observer receives iteration-boundary callbacks from the driver. Implementations
// must be fast; the solver blocks on the call. A nil Observer is silent.
type Observer interface {
	OnIteration(IterationStats)
}

// Result is the outcome of a Solve run. On failure it still carries the best
// available partial estimates (possibly from the previous iteration) so
// callers can diagnose divergence.
type Result struct {
	// Values are the retained eigenvalues, ascending by real part.
	Values []float64

	// Vectors are the corresponding full-dimension eigenvectors C·α, unit
	// 2-norm, in the same order as Values. Nil when no iteration completed.
	Vectors []*blockvec.Vector

	// Iterations is the zero-based index of the iteration at which the run
	// stopped (converged, failed, or exhausted the cap).
	Iterations int

	// Runtime is the wall-clock duration of the whole solve.
	Runtime time.Duration

	// Converged reports success; false on any failure path.
	Converged bool
}
