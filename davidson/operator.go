// SPDX-License-Identifier: MIT

package davidson

import (
	"fmt"
	"math/rand"

	"github.com/katalvlaran/eigs/blockvec"
	"gonum.org/v1/gonum/floats"
)

// Operator is the injected linear map the solver diagonalizes. It is the
// single external capability of the package: typically the similarity
// transformed Hamiltonian of a coupled-cluster calculation, but any linear,
// deterministic, side-effect-free map over blockvec vectors works.
//
// Apply must write the image of src into dst; both carry the shape given to
// Solve. Implementations must be linear,
//
//	Op(a·x + b·y) = a·Op(x) + b·Op(y),
//
// stateless across calls, and — when Options.Workers > 1 — safe for
// concurrent use. The solver issues L independent Apply calls per iteration,
// one per basis column.
type Operator interface {
	Apply(dst, src *blockvec.Vector) error
}

// VerifyLinearity samples random vectors and scalars and checks that op
// satisfies op(a·x+b·y) = a·op(x)+b·op(y) within tol, relative to the image
// magnitude. It is a precondition test for any Operator used with Solve, not
// a runtime guard: call it from the operator implementation's own tests.
//
// Complexity: 3·trials operator applications.
func VerifyLinearity(op Operator, shape blockvec.Shape, rnd *rand.Rand, trials int, tol float64) error {
	if op == nil {
		return ErrNilOperator
	}
	if err := shape.Validate(); err != nil {
		return err
	}

	n := shape.Dim()
	x, _ := blockvec.New(shape)
	y, _ := blockvec.New(shape)
	z, _ := blockvec.New(shape)
	opX, _ := blockvec.New(shape)
	opY, _ := blockvec.New(shape)
	opZ, _ := blockvec.New(shape)

	for trial := 0; trial < trials; trial++ {
		a := rnd.NormFloat64()
		b := rnd.NormFloat64()
		for i := 0; i < n; i++ {
			x.Raw()[i] = rnd.NormFloat64()
			y.Raw()[i] = rnd.NormFloat64()
			z.Raw()[i] = a*x.Raw()[i] + b*y.Raw()[i]
		}

		if err := op.Apply(opX, x); err != nil {
			return fmt.Errorf("davidson: linearity probe apply(x): %w", err)
		}
		if err := op.Apply(opY, y); err != nil {
			return fmt.Errorf("davidson: linearity probe apply(y): %w", err)
		}
		if err := op.Apply(opZ, z); err != nil {
			return fmt.Errorf("davidson: linearity probe apply(ax+by): %w", err)
		}

		// diff = op(ax+by) − a·op(x) − b·op(y)
		diff := make([]float64, n)
		copy(diff, opZ.Raw())
		floats.AddScaled(diff, -a, opX.Raw())
		floats.AddScaled(diff, -b, opY.Raw())

		scale := 1 + floats.Norm(opZ.Raw(), 2)
		if floats.Norm(diff, 2) > tol*scale {
			return fmt.Errorf("davidson: trial %d deviation %.3e: %w",
				trial, floats.Norm(diff, 2), ErrNotLinear)
		}
	}

	return nil
}
