package geom

import "fmt"

// Side is one of the four sides of a rectangle. It allows the side
// to cut from to be chosen dynamically, typically via a [RectCut].
//
// Sides are ordered Left < Right < Top < Bottom.
type Side uint8

const (
	Left Side = iota
	Right
	Top
	Bottom
)

func (s Side) String() string {
	switch s {
	case Left:
		return "Left"
	case Right:
		return "Right"
	case Top:
		return "Top"
	case Bottom:
		return "Bottom"
	default:
		return fmt.Sprintf("Side(%d)", uint8(s))
	}
}

// Opposite returns the side across the rectangle from s.
func (s Side) Opposite() Side {
	switch s {
	case Left:
		return Right
	case Right:
		return Left
	case Top:
		return Bottom
	case Bottom:
		return Top
	default:
		return s
	}
}

// Horizontal reports whether cutting from s removes width rather than
// height.
func (s Side) Horizontal() bool {
	return s == Left || s == Right
}

// Edge returns the Edges bit corresponding to s.
func (s Side) Edge() Edges {
	switch s {
	case Left:
		return EdgeLeft
	case Right:
		return EdgeRight
	case Top:
		return EdgeTop
	case Bottom:
		return EdgeBottom
	default:
		return EdgeNone
	}
}
