// SPDX-License-Identifier: MIT

package davidson

// grow appends the freshly computed correction vectors to the basis without
// orthonormalizing them; the next iteration's modified Gram–Schmidt pass
// folds them in (and discards the dependent ones). L grows by len(corr).
func grow(basis [][]float64, corr []correction) [][]float64 {
	for j := range corr {
		basis = append(basis, corr[j].q)
	}

	return basis
}

// collapseBasis re-expresses the basis as the current best Ritz vectors,
// C ← C·α, one column per retained root. Older directions not represented by
// α are discarded; the next iteration re-orthonormalizes the result. L resets
// to the root count.
//
// The caller must keep the previous iteration's eigenvalues as the drift
// baseline: the collapsed basis reproduces the just-computed values on the
// next iteration, and comparing against them would register spurious
// convergence caused purely by the basis change.
func collapseBasis(corr []correction) [][]float64 {
	basis := make([][]float64, len(corr))
	for j := range corr {
		col := make([]float64, len(corr[j].ritz))
		copy(col, corr[j].ritz)
		basis[j] = col
	}

	return basis
}
