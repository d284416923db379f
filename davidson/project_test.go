package davidson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/floats"
)

// unitBasis returns the n standard basis vectors of length n.
func unitBasis(n int) [][]float64 {
	basis := make([][]float64, n)
	for i := range basis {
		basis[i] = make([]float64, n)
		basis[i][i] = 1
	}

	return basis
}

// sigmaFromColumns returns the columns of the row-major n×n matrix a, i.e.
// the images A·e_j of the unit basis.
func sigmaFromColumns(n int, a []float64) [][]float64 {
	sigma := make([][]float64, n)
	for j := 0; j < n; j++ {
		col := make([]float64, n)
		for i := 0; i < n; i++ {
			col[i] = a[i*n+j]
		}
		sigma[j] = col
	}

	return sigma
}

// TestProject_AscendingRealPart verifies that the projector retains the
// eigenvalues of lowest real part, in ascending order. With a unit basis the
// projected operator G equals the matrix itself; the triangular test matrix
// has eigenvalues 5, 2, 9 on its diagonal.
func TestProject_AscendingRealPart(t *testing.T) {
	basis := unitBasis(3)
	sigma := sigmaFromColumns(3, []float64{
		5, 1, 0,
		0, 2, 0,
		0, 0, 9,
	})

	pairs, err := project(basis, sigma, 2, DefaultImagTolerance)
	require.NoError(t, err)

	require.Len(t, pairs.values, 2)
	assert.InDelta(t, 2.0, pairs.values[0], 1e-12, "lowest eigenvalue first")
	assert.InDelta(t, 5.0, pairs.values[1], 1e-12, "second lowest next")

	for j, a := range pairs.alpha {
		assert.InDelta(t, 1.0, floats.Norm(a, 2), 1e-12, "alpha %d must be unit norm", j)
	}
}

// TestProject_EigenpairResidual checks G·α = θ·α for the retained pairs of a
// non-symmetric projected operator.
func TestProject_EigenpairResidual(t *testing.T) {
	n := 3
	a := []float64{
		4, 1, 0,
		2, 3, 0,
		0, 0, 8,
	}
	basis := unitBasis(n)
	sigma := sigmaFromColumns(n, a)

	pairs, err := project(basis, sigma, 2, DefaultImagTolerance)
	require.NoError(t, err)

	for j := range pairs.values {
		theta, alpha := pairs.values[j], pairs.alpha[j]
		for i := 0; i < n; i++ {
			var gai float64
			for k := 0; k < n; k++ {
				gai += a[i*n+k] * alpha[k]
			}
			assert.InDelta(t, theta*alpha[i], gai, 1e-10,
				"root %d row %d of G·α must equal θ·α", j, i)
		}
	}
}

// TestProject_ComplexPairIsUnstable verifies that a retained eigenvalue with a
// non-negligible imaginary part aborts with ErrUnstable rather than silently
// discarding the imaginary component. The rotation-like matrix has spectrum
// 1±4i.
func TestProject_ComplexPairIsUnstable(t *testing.T) {
	basis := unitBasis(2)
	sigma := sigmaFromColumns(2, []float64{
		1, -4,
		4, 1,
	})

	_, err := project(basis, sigma, 1, DefaultImagTolerance)
	assert.ErrorIs(t, err, ErrUnstable)
}

// TestDriftNorm is the convergence monitor's scalar on a known pair.
func TestDriftNorm(t *testing.T) {
	assert.InDelta(t, 5.0, driftNorm([]float64{3, 4}, []float64{0, 0}), 1e-15)
	assert.Zero(t, driftNorm([]float64{1.5}, []float64{1.5}))
}
