package blockvec_test

import (
	"testing"

	"github.com/katalvlaran/eigs/blockvec"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestShape_DerivedSizes verifies that all block sizes derive from Occ and Virt.
func TestShape_DerivedSizes(t *testing.T) {
	s := blockvec.Shape{Occ: 2, Virt: 3}

	assert.Equal(t, 6, s.Singles(), "singles block is Occ*Virt")
	assert.Equal(t, 36, s.Doubles(), "doubles block is (Occ*Virt)^2")
	assert.Equal(t, 42, s.Dim(), "full dimension is singles+doubles")
}

// TestShape_Validate rejects non-positive counts.
func TestShape_Validate(t *testing.T) {
	assert.NoError(t, blockvec.Shape{Occ: 1, Virt: 1}.Validate())
	assert.ErrorIs(t, blockvec.Shape{Occ: 0, Virt: 2}.Validate(), blockvec.ErrBadShape)
	assert.ErrorIs(t, blockvec.Shape{Occ: 2, Virt: -1}.Validate(), blockvec.ErrBadShape)
}

// TestNew_Zeroed verifies New allocates a zero vector of the right length.
func TestNew_Zeroed(t *testing.T) {
	v, err := blockvec.New(blockvec.Shape{Occ: 1, Virt: 2})
	require.NoError(t, err)

	require.Len(t, v.Raw(), 6)
	for i, x := range v.Raw() {
		assert.Zero(t, x, "entry %d must start at zero", i)
	}
}

// TestWrap_LengthValidation verifies Wrap rejects mismatched slices and adopts
// matching ones without copying.
func TestWrap_LengthValidation(t *testing.T) {
	shape := blockvec.Shape{Occ: 1, Virt: 1} // dim = 2

	_, err := blockvec.Wrap(shape, []float64{1, 2, 3})
	assert.ErrorIs(t, err, blockvec.ErrBadLength, "wrong length must error")

	backing := []float64{1, 2}
	v, err := blockvec.Wrap(shape, backing)
	require.NoError(t, err)

	// Zero-copy adoption: mutating the vector mutates the original slice.
	v.Raw()[0] = 7
	assert.Equal(t, 7.0, backing[0], "Wrap must alias the caller's slice")
}

// TestVector_ViewAliasing verifies that block views and matrix views all share
// the flat backing storage.
func TestVector_ViewAliasing(t *testing.T) {
	shape := blockvec.Shape{Occ: 2, Virt: 2} // singles=4, doubles=16
	v, err := blockvec.New(shape)
	require.NoError(t, err)

	v.Singles()[3] = 1.5
	assert.Equal(t, 1.5, v.Raw()[3], "singles view must alias flat storage")

	v.Doubles()[0] = -2.0
	assert.Equal(t, -2.0, v.Raw()[4], "doubles view starts right after singles")

	// Matrix views alias the same memory.
	v.SinglesMatrix().Set(0, 1, 9.0)
	assert.Equal(t, 9.0, v.Raw()[1], "singles matrix view must alias flat storage")

	v.DoublesMatrix().Set(1, 2, 4.0)
	assert.Equal(t, 4.0, v.Raw()[4+1*4+2], "doubles matrix view must alias flat storage")
}

// TestVector_CloneIndependence verifies Clone detaches the backing storage.
func TestVector_CloneIndependence(t *testing.T) {
	v, err := blockvec.New(blockvec.Shape{Occ: 1, Virt: 1})
	require.NoError(t, err)
	v.Raw()[0] = 1

	c := v.Clone()
	c.Raw()[0] = 42

	assert.Equal(t, 1.0, v.Raw()[0], "mutating a clone must not touch the original")
	assert.Equal(t, v.Shape(), c.Shape(), "clone keeps the shape")
}

// TestVector_Zero resets all entries in place.
func TestVector_Zero(t *testing.T) {
	v, err := blockvec.Wrap(blockvec.Shape{Occ: 1, Virt: 1}, []float64{3, 5})
	require.NoError(t, err)

	v.Zero()
	assert.Equal(t, []float64{0, 0}, v.Raw())
}
