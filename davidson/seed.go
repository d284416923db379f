// SPDX-License-Identifier: MIT

package davidson

import (
	"sort"

	"github.com/katalvlaran/eigs/blockvec"
)

// SeedStrategy builds the initial trial basis. It returns up to count columns
// of length shape.Dim(); the driver validates the result and orthonormalizes
// it on the first iteration. Alternative strategies (for example a cheaper
// approximate diagonalization) plug in via Options.Seed without touching the
// rest of the solver.
type SeedStrategy interface {
	Seed(diag []float64, shape blockvec.Shape, count int) ([][]float64, error)
}

// DiagonalSeed is the default strategy: one unit basis vector per selected
// index, at the count smallest diagonal entries restricted to the singles
// block. The diagonal approximates the operator's spectrum, so its smallest
// singles entries mark the cheapest low-energy directions.
//
// When the singles block holds fewer than count entries the selection is
// clamped to the whole block; the driver still requires at least Roots
// columns to proceed.
type DiagonalSeed struct{}

// Seed implements SeedStrategy.
// Complexity: O(S log S) for the sort plus O(count·Dim) for the unit columns.
func (DiagonalSeed) Seed(diag []float64, shape blockvec.Shape, count int) ([][]float64, error) {
	singles := shape.Singles()
	if count > singles {
		count = singles
	}
	if count <= 0 {
		return nil, ErrBadSeed
	}

	// Argsort the singles block ascending; index as tiebreak for determinism.
	order := make([]int, singles)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		if diag[order[a]] != diag[order[b]] {
			return diag[order[a]] < diag[order[b]]
		}

		return order[a] < order[b]
	})

	cols := make([][]float64, count)
	for j := 0; j < count; j++ {
		col := make([]float64, shape.Dim())
		col[order[j]] = 1
		cols[j] = col
	}

	return cols, nil
}
