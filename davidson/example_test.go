package davidson_test

import (
	"fmt"

	"github.com/katalvlaran/eigs/blockvec"
	"github.com/katalvlaran/eigs/davidson"
)

// ExampleSolve runs the minimal worked example: a 2-dimensional diagonal
// operator diag(3,5) with the diagonal itself as preconditioner. The seed
// already spans the target eigenvector, so one iteration suffices.
func ExampleSolve() {
	shape := blockvec.Shape{Occ: 1, Virt: 1} // singles=1, doubles=1, dim=2
	diag := []float64{3, 5}
	opts := davidson.DefaultOptions(1)

	res, err := davidson.Solve(diagOp{diag: diag}, diag, shape, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("converged=%v\n", res.Converged)
	fmt.Printf("value=%.6f\n", res.Values[0])
	fmt.Printf("iterations=%d\n", res.Iterations)
	// Output:
	// converged=true
	// value=3.000000
	// iterations=1
}

// traceObserver prints one line per iteration, the library's replacement for
// the console reporting a solver would otherwise hard-code.
type traceObserver struct{}

func (traceObserver) OnIteration(s davidson.IterationStats) {
	fmt.Printf("iter=%d L=%d drift=%.3f collapsed=%v\n",
		s.Iteration, s.SubspaceSize, s.Drift, s.Collapsed)
}

// ExampleSolve_observer traces iteration statistics through an injected
// Observer on a 6-dimensional diagonal model with two roots.
func ExampleSolve_observer() {
	shape := blockvec.Shape{Occ: 1, Virt: 2} // dim = 6
	diag := []float64{1, 2, 3, 4, 5, 6}

	opts := davidson.DefaultOptions(2)
	opts.Observer = traceObserver{}

	res, err := davidson.Solve(diagOp{diag: diag}, diag, shape, &opts)
	if err != nil {
		fmt.Println("error:", err)

		return
	}
	fmt.Printf("values=[%.4f %.4f]\n", res.Values[0], res.Values[1])
	// Output:
	// iter=0 L=2 drift=2.236 collapsed=false
	// iter=1 L=2 drift=0.000 collapsed=false
	// values=[1.0000 2.0000]
}
