// Package blockvec provides the composite trial-vector type used by the
// Davidson solver: a flat float64 vector logically partitioned into two named
// sub-blocks, "singles" and "doubles".
//
// The block sizes are derived from two integers (the occupied and virtual
// orbital counts of the underlying physical problem):
//
//	Singles = Occ · Virt
//	Doubles = Singles²
//	Dim     = Singles + Doubles
//
// A Vector owns one flat backing slice of length Dim. The Singles and Doubles
// accessors return zero-copy subslice views into that storage, and the
// SinglesMatrix / DoublesMatrix accessors return gonum mat.Dense views over
// the same memory, reshaped to Occ×Virt and Occ²×Virt² respectively. Mutation
// through any view is visible through every other view and through the flat
// slice — copies are made only by explicit request (Clone).
//
// Errors (sentinel):
//
//	– ErrBadShape  if either Occ or Virt is not positive.
//	– ErrBadLength if a wrapped slice's length does not equal Shape.Dim().
package blockvec
