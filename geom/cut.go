package geom

// A RectCut pairs a Rect with the Side that it should be cut from,
// allowing the two to be passed together into code that doesn't need
// to know which side it is cutting.
type RectCut[T Scalar] struct {
	Rect Rect[T]
	Side Side
}

// NewRectCut returns a RectCut that cuts r from side.
func NewRectCut[T Scalar](r Rect[T], side Side) RectCut[T] {
	return RectCut[T]{Rect: r, Side: side}
}

// Cut cuts a strip of size a from rc's side of its Rect, exactly as
// the corresponding Rect method would, and returns the strip.
func (rc *RectCut[T]) Cut(a T) Rect[T] {
	switch rc.Side {
	case Left:
		return rc.Rect.CutLeft(a)
	case Right:
		return rc.Rect.CutRight(a)
	case Top:
		return rc.Rect.CutTop(a)
	case Bottom:
		return rc.Rect.CutBottom(a)
	default:
		return Rt(rc.Rect.MinX, rc.Rect.MinY, rc.Rect.MinX, rc.Rect.MinY)
	}
}

// Get returns the strip that Cut would remove without modifying rc.
func (rc RectCut[T]) Get(a T) Rect[T] {
	switch rc.Side {
	case Left:
		return rc.Rect.GetLeft(a)
	case Right:
		return rc.Rect.GetRight(a)
	case Top:
		return rc.Rect.GetTop(a)
	case Bottom:
		return rc.Rect.GetBottom(a)
	default:
		return Rt(rc.Rect.MinX, rc.Rect.MinY, rc.Rect.MinX, rc.Rect.MinY)
	}
}

// Add returns a strip of size a just outside of rc's side of its
// Rect.
func (rc RectCut[T]) Add(a T) Rect[T] {
	switch rc.Side {
	case Left:
		return rc.Rect.AddLeft(a)
	case Right:
		return rc.Rect.AddRight(a)
	case Top:
		return rc.Rect.AddTop(a)
	case Bottom:
		return rc.Rect.AddBottom(a)
	default:
		return Rt(rc.Rect.MinX, rc.Rect.MinY, rc.Rect.MinX, rc.Rect.MinY)
	}
}
