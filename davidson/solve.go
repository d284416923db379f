// SPDX-License-Identifier: MIT

package davidson

import (
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/floats"

	"github.com/katalvlaran/eigs/blockvec"
)

// Solve runs the block-Davidson iteration until the retained eigenvalues stop
// drifting, and returns the Roots lowest eigenpairs of op, ascending.
//
// diag is the fixed diagonal preconditioner of length shape.Dim(); the solver
// never mutates it. opts may be nil, selecting DefaultOptions(1).
//
// On failure the error wraps one of the package sentinels and the returned
// Result still carries the best available partial estimates. The trial basis
// is owned exclusively by this call from setup to return; operators must not
// share mutable state with it.
func Solve(op Operator, diag []float64, shape blockvec.Shape, opts *Options) (*Result, error) {
	start := time.Now()

	var o Options
	if opts == nil {
		o = DefaultOptions(1)
	} else {
		o = *opts
	}
	if err := validate(op, diag, shape, &o); err != nil {
		return nil, err
	}
	if o.Workers <= 0 {
		o.Workers = 1
	}
	if err := probe(op, shape); err != nil {
		return nil, err
	}

	seed := o.Seed
	if seed == nil {
		seed = DiagonalSeed{}
	}
	basis, err := seed.Seed(diag, shape, 2*o.Roots)
	if err != nil {
		return nil, err
	}
	if len(basis) < o.Roots {
		return nil, fmt.Errorf("davidson: %d seed columns for %d roots: %w",
			len(basis), o.Roots, ErrBadSeed)
	}
	for i, col := range basis {
		if len(col) != shape.Dim() {
			return nil, fmt.Errorf("davidson: seed column %d has length %d: %w",
				i, len(col), ErrBadSeed)
		}
	}

	lmax := o.Roots * o.VectorsPerRoot
	thetaPrev := make([]float64, o.Roots)
	lastValues := thetaPrev
	var corr []correction

	for iter := 0; iter <= o.MaxIterations; iter++ {
		basis, err = orthonormalize(basis, o.DropTolerance, o.RankPolicy)
		if err != nil {
			return partial(thetaPrev, corr, shape, iter, start), err
		}
		if len(basis) < o.Roots {
			return partial(thetaPrev, corr, shape, iter, start),
				fmt.Errorf("davidson: basis shrank to %d columns for %d roots: %w",
					len(basis), o.Roots, ErrRankDeficient)
		}

		sigma, err := applyAll(op, basis, shape, o.Workers)
		if err != nil {
			return partial(thetaPrev, corr, shape, iter, start), err
		}

		pairs, err := project(basis, sigma, o.Roots, o.ImagTolerance)
		if err != nil {
			return partial(thetaPrev, corr, shape, iter, start), err
		}

		corr = corrections(basis, sigma, pairs, diag, o.PrecondFloor)
		lastValues = pairs.values
		drift := driftNorm(pairs.values, thetaPrev)

		if converged(drift, corr, &o) {
			emit(&o, iter, len(basis), pairs.values, drift, corr, false)

			res := partial(pairs.values, corr, shape, iter, start)
			res.Converged = true

			return res, nil
		}

		// Collapse whenever growth would push L past the budget. Dropped
		// dependent columns can move L off the Roots lattice, so comparing
		// the post-growth size keeps L <= lmax in every case.
		collapsed := len(basis)+o.Roots > lmax
		if collapsed {
			// Keep thetaPrev at the pre-collapse baseline: the re-expressed
			// basis reproduces these values next iteration.
			basis = collapseBasis(corr)
		} else {
			basis = grow(basis, corr)
			copy(thetaPrev, pairs.values)
		}
		emit(&o, iter, len(sigma), pairs.values, drift, corr, collapsed)
	}

	return partial(lastValues, corr, shape, o.MaxIterations, start), ErrNotConverged
}

// validate fail-fasts every configuration error before the first iteration.
func validate(op Operator, diag []float64, shape blockvec.Shape, o *Options) error {
	if op == nil {
		return ErrNilOperator
	}
	if err := shape.Validate(); err != nil {
		return err
	}
	if diag == nil || len(diag) != shape.Dim() {
		return ErrBadDiagonal
	}
	if o.Roots <= 0 || o.Roots > shape.Dim() {
		return ErrBadRoots
	}
	if o.VectorsPerRoot < 2 {
		return ErrBadVectorBudget
	}
	if o.Tolerance <= 0 || o.DropTolerance < 0 || o.ImagTolerance < 0 ||
		o.ResidualTolerance < 0 || o.PrecondFloor < 0 {
		return ErrBadTolerance
	}
	if o.MaxIterations <= 0 {
		return ErrBadIterations
	}
	if o.Workers < 0 {
		return ErrBadWorkers
	}

	return nil
}

// probe applies the operator once to the zero vector. A linear operator must
// accept the configured shape and map zero to zero; anything else is rejected
// here, before any iteration begins.
func probe(op Operator, shape blockvec.Shape) error {
	src, err := blockvec.New(shape)
	if err != nil {
		return err
	}
	dst, err := blockvec.New(shape)
	if err != nil {
		return err
	}
	if err = op.Apply(dst, src); err != nil {
		return fmt.Errorf("davidson: setup probe: %v: %w", err, ErrOperatorShape)
	}
	if norm := floats.Norm(dst.Raw(), 2); norm != 0 {
		return fmt.Errorf("davidson: image of zero vector has norm %.3e: %w", norm, ErrNotLinear)
	}

	return nil
}

// applyAll builds the sigma columns sigma[i] = Op·basis[i]. The calls are
// mutually independent; workers > 1 runs them under a bounded errgroup.
func applyAll(op Operator, basis [][]float64, shape blockvec.Shape, workers int) ([][]float64, error) {
	sigma := make([][]float64, len(basis))

	apply := func(i int) error {
		src, err := blockvec.Wrap(shape, basis[i])
		if err != nil {
			return err
		}
		dst, err := blockvec.New(shape)
		if err != nil {
			return err
		}
		if err = op.Apply(dst, src); err != nil {
			return fmt.Errorf("davidson: sigma column %d: %w", i, err)
		}
		sigma[i] = dst.Raw()

		return nil
	}

	if workers <= 1 {
		for i := range basis {
			if err := apply(i); err != nil {
				return nil, err
			}
		}

		return sigma, nil
	}

	var g errgroup.Group
	g.SetLimit(workers)
	for i := range basis {
		i := i
		g.Go(func() error { return apply(i) })
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return sigma, nil
}

// converged applies the drift criterion plus the optional auxiliary
// residual-norm criterion.
func converged(drift float64, corr []correction, o *Options) bool {
	if drift >= o.Tolerance {
		return false
	}
	if o.ResidualTolerance <= 0 {
		return true
	}
	for j := range corr {
		if corr[j].norm > o.ResidualTolerance {
			return false
		}
	}

	return true
}

// emit hands a cloned snapshot to the observer, if any.
func emit(o *Options, iter, subspace int, values []float64, drift float64, corr []correction, collapsed bool) {
	if o.Observer == nil {
		return
	}

	stats := IterationStats{
		Iteration:     iter,
		SubspaceSize:  subspace,
		Values:        append([]float64(nil), values...),
		Drift:         drift,
		ResidualNorms: make([]float64, len(corr)),
		Collapsed:     collapsed,
	}
	for j := range corr {
		stats.ResidualNorms[j] = corr[j].norm
	}
	o.Observer.OnIteration(stats)
}

// partial assembles a Result from whatever the run has produced so far.
func partial(values []float64, corr []correction, shape blockvec.Shape, iter int, start time.Time) *Result {
	res := &Result{
		Values:     append([]float64(nil), values...),
		Iterations: iter,
		Runtime:    time.Since(start),
	}
	if len(corr) == len(values) {
		res.Vectors = make([]*blockvec.Vector, len(corr))
		for j := range corr {
			v, err := blockvec.Wrap(shape, append([]float64(nil), corr[j].ritz...))
			if err != nil {
				res.Vectors = nil

				break
			}
			res.Vectors[j] = v
		}
	}

	return res
}
