// SPDX-License-Identifier: MIT

package davidson

import (
	"fmt"
	"math"
	"sort"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// ritzPairs holds the retained output of one Rayleigh–Ritz projection:
// the roots lowest eigenvalues of G = Cᵀ·S (ascending real part) and their
// subspace-coordinate eigenvectors, renormalized to unit 2-norm.
type ritzPairs struct {
	values []float64   // length roots
	alpha  [][]float64 // alpha[j] has length L, coefficients of root j
}

// project forms the projected operator G = Cᵀ·S, computes its full general
// (non-symmetric) eigendecomposition, and retains the roots eigenpairs of
// lowest real part.
//
// G is not symmetric in general, so eigenvalues may come out complex. A
// retained value whose imaginary part exceeds imagTol·max(1, |Re θ|) aborts
// with ErrUnstable; below that the imaginary component is discarded and the
// real part of the eigenvector is kept.
//
// Complexity: O(N·L²) to form G, O(L³) for the eigendecomposition.
func project(basis, sigma [][]float64, roots int, imagTol float64) (*ritzPairs, error) {
	l := len(basis)
	g := mat.NewDense(l, l, nil)
	for i := 0; i < l; i++ {
		for j := 0; j < l; j++ {
			g.Set(i, j, floats.Dot(basis[i], sigma[j]))
		}
	}

	var eig mat.Eigen
	if ok := eig.Factorize(g, mat.EigenRight); !ok {
		return nil, ErrEigenFailed
	}
	vals := eig.Values(nil)

	// Stable ascending order on real part; imaginary part and index break
	// ties so the selection is deterministic for conjugate pairs.
	order := make([]int, l)
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(a, b int) bool {
		ra, rb := real(vals[order[a]]), real(vals[order[b]])
		if ra != rb {
			return ra < rb
		}

		return imag(vals[order[a]]) < imag(vals[order[b]])
	})

	var vecs mat.CDense
	eig.VectorsTo(&vecs)

	pairs := &ritzPairs{
		values: make([]float64, roots),
		alpha:  make([][]float64, roots),
	}
	for j := 0; j < roots; j++ {
		v := vals[order[j]]
		if math.Abs(imag(v)) > imagTol*math.Max(1, math.Abs(real(v))) {
			return nil, fmt.Errorf("davidson: root %d eigenvalue %v: %w", j, v, ErrUnstable)
		}
		pairs.values[j] = real(v)

		a := make([]float64, l)
		for i := 0; i < l; i++ {
			a[i] = real(vecs.At(i, order[j]))
		}
		// The complex-normalized eigenvector loses length when its imaginary
		// part is discarded; restore unit 2-norm.
		if norm := floats.Norm(a, 2); norm > 0 {
			floats.Scale(1/norm, a)
		}
		pairs.alpha[j] = a
	}

	return pairs, nil
}

// driftNorm is the convergence monitor's scalar: the 2-norm of the retained
// eigenvalue drift between successive iterations.
func driftNorm(values, prev []float64) float64 {
	return floats.Distance(values, prev, 2)
}
