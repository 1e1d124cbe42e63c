// Package geom provides utilities for rect-cut layout: an
// axis-aligned rectangle that strips can be cut from, peeked at, or
// added to along any of its four edges.
//
// The coordinate space has x increasing to the right and y increasing
// downwards, so the top edge of a rectangle is at MinY.
package geom

import "golang.org/x/exp/constraints"

// Scalar is a constraint for the types that geom types and functions
// can handle. Unsigned types are excluded because clamping a cut from
// the right or bottom subtracts the amount from the maximum bound.
type Scalar interface {
	constraints.Signed | constraints.Float
}

// Edges is a bitmask representing zero or more edges of a rectangle.
type Edges uint32

const (
	EdgeNone Edges = 0
	EdgeTop  Edges = 1 << (iota - 1)
	EdgeBottom
	EdgeLeft
	EdgeRight
)

// Has reports whether the edge of side s is in e.
func (e Edges) Has(s Side) bool {
	return e&s.Edge() != 0
}
