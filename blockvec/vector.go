// SPDX-License-Identifier: MIT

package blockvec

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadShape indicates that the occupied or virtual count is not positive.
	ErrBadShape = errors.New("blockvec: occupied and virtual counts must be > 0")

	// ErrBadLength indicates that a backing slice does not match Shape.Dim().
	ErrBadLength = errors.New("blockvec: backing slice length does not match shape")
)

// Shape fixes the dimensions of a composite vector from the two integers that
// define the physical problem: the occupied (Occ) and virtual (Virt) orbital
// counts. All block sizes are derived, never stored.
type Shape struct {
	Occ  int
	Virt int
}

// Singles returns the length of the singles block, Occ·Virt.
func (s Shape) Singles() int { return s.Occ * s.Virt }

// Doubles returns the length of the doubles block, (Occ·Virt)².
func (s Shape) Doubles() int {
	n := s.Singles()

	return n * n
}

// Dim returns the full vector length, Singles() + Doubles().
func (s Shape) Dim() int { return s.Singles() + s.Doubles() }

// Validate reports ErrBadShape unless both counts are positive.
func (s Shape) Validate() error {
	if s.Occ <= 0 || s.Virt <= 0 {
		return ErrBadShape
	}

	return nil
}

// Vector is a flat float64 vector carrying its block Shape. The zero value is
// not usable; construct via New or Wrap.
type Vector struct {
	shape Shape
	data  []float64
}

// New allocates a zeroed Vector of the given shape.
// Complexity: O(Dim) time and memory.
func New(shape Shape) (*Vector, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}

	return &Vector{shape: shape, data: make([]float64, shape.Dim())}, nil
}

// Wrap adopts data as the backing storage of a Vector without copying.
// The caller must not resize data afterwards; mutation remains shared.
// Complexity: O(1).
func Wrap(shape Shape, data []float64) (*Vector, error) {
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.Dim() {
		return nil, ErrBadLength
	}

	return &Vector{shape: shape, data: data}, nil
}

// Shape returns the vector's block shape.
func (v *Vector) Shape() Shape { return v.shape }

// Raw returns the flat backing slice (zero-copy).
func (v *Vector) Raw() []float64 { return v.data }

// Singles returns the singles block as a zero-copy view of length Occ·Virt.
func (v *Vector) Singles() []float64 { return v.data[:v.shape.Singles()] }

// Doubles returns the doubles block as a zero-copy view of length (Occ·Virt)².
func (v *Vector) Doubles() []float64 { return v.data[v.shape.Singles():] }

// SinglesMatrix returns the singles block reshaped as an Occ×Virt matrix.
// The view shares the backing storage: writes through it are visible in Raw().
func (v *Vector) SinglesMatrix() *mat.Dense {
	return mat.NewDense(v.shape.Occ, v.shape.Virt, v.Singles())
}

// DoublesMatrix returns the doubles block reshaped as an Occ²×Virt² matrix.
// Row index encodes the occupied pair (i,j), column index the virtual pair
// (a,b), matching the flat layout ((i·Occ+j)·Virt+a)·Virt+b.
// The view shares the backing storage.
func (v *Vector) DoublesMatrix() *mat.Dense {
	return mat.NewDense(v.shape.Occ*v.shape.Occ, v.shape.Virt*v.shape.Virt, v.Doubles())
}

// Clone returns a deep copy with independent backing storage.
// Complexity: O(Dim) time and memory.
func (v *Vector) Clone() *Vector {
	data := make([]float64, len(v.data))
	copy(data, v.data)

	return &Vector{shape: v.shape, data: data}
}

// Zero resets every entry to 0 in place.
func (v *Vector) Zero() {
	for i := range v.data {
		v.data[i] = 0
	}
}
