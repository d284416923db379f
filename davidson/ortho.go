// SPDX-License-Identifier: MIT

package davidson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
)

// orthonormalize reduces cols to an orthonormal set spanning the same
// subspace, via modified Gram–Schmidt with one reorthogonalization pass
// against the already-accepted columns. Columns are mutated in place; the
// returned slice aliases the surviving ones.
//
// A column counts as dependent when its remainder norm after projection falls
// below dropTol relative to its original norm, or when it is zero or
// non-finite (a preconditioner singularity upstream). Dependent columns are
// dropped under DropVector and abort with ErrRankDeficient under
// FailOnDeficiency.
//
// Complexity: O(N·L²) time, O(1) extra memory.
func orthonormalize(cols [][]float64, dropTol float64, policy RankPolicy) ([][]float64, error) {
	kept := cols[:0]
	for idx, col := range cols {
		orig := floats.Norm(col, 2)
		if orig == 0 || math.IsNaN(orig) || math.IsInf(orig, 0) {
			if policy == FailOnDeficiency {
				return nil, fmt.Errorf("davidson: column %d has norm %v: %w", idx, orig, ErrRankDeficient)
			}

			continue
		}

		// Two projection passes: plain MGS, then reorthogonalization to
		// recover the digits lost when col is nearly inside span(kept).
		for pass := 0; pass < 2; pass++ {
			for _, q := range kept {
				floats.AddScaled(col, -floats.Dot(q, col), q)
			}
		}

		norm := floats.Norm(col, 2)
		if norm <= dropTol*orig {
			if policy == FailOnDeficiency {
				return nil, fmt.Errorf("davidson: column %d remainder %.3e of %.3e: %w",
					idx, norm, orig, ErrRankDeficient)
			}

			continue
		}

		floats.Scale(1/norm, col)
		kept = append(kept, col)
	}

	return kept, nil
}
