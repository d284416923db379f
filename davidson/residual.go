// SPDX-License-Identifier: MIT

package davidson

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// correction bundles everything derived from one retained Ritz pair: the
// full-dimension Ritz vector x = C·α, the residual w = S·α − θ·x, its norm,
// and the diagonally preconditioned correction q = w ⊘ (θ − D).
type correction struct {
	ritz  []float64
	resid []float64
	norm  float64
	q     []float64
}

// corrections computes the per-root residuals and correction vectors.
//
// The preconditioner approximates (θ·I − Op)⁻¹·w by the inverse of the
// diagonal: q[i] = w[i] / (θ − diag[i]). When floor > 0, denominators with
// magnitude below floor are clamped to ±floor; with floor == 0 a θ landing on
// a diagonal entry yields a non-finite q, which the orthonormalizer later
// drops or rejects per RankPolicy.
//
// Complexity: O(N·L·roots) time, O(N·roots) memory.
func corrections(basis, sigma [][]float64, pairs *ritzPairs, diag []float64, floor float64) []correction {
	n := len(diag)
	out := make([]correction, len(pairs.values))
	for j := range pairs.values {
		theta := pairs.values[j]
		a := pairs.alpha[j]

		ritz := make([]float64, n)
		resid := make([]float64, n)
		for i := range basis {
			floats.AddScaled(ritz, a[i], basis[i])
			floats.AddScaled(resid, a[i], sigma[i])
		}
		// w = S·α − θ·C·α
		floats.AddScaled(resid, -theta, ritz)

		q := make([]float64, n)
		for i := 0; i < n; i++ {
			d := theta - diag[i]
			if floor > 0 && math.Abs(d) < floor {
				d = math.Copysign(floor, d)
			}
			q[i] = resid[i] / d
		}

		out[j] = correction{
			ritz:  ritz,
			resid: resid,
			norm:  floats.Norm(resid, 2),
			q:     q,
		}
	}

	return out
}
