package geom

// A Rect is the region MinX <= X <= MaxX, MinY <= Y <= MaxY. It is
// well-formed if MinX <= MaxX and likewise for Y. Nothing enforces
// that, but the Cut and Get methods return well-formed outputs for
// well-formed inputs by clamping.
type Rect[T Scalar] struct {
	MinX, MinY, MaxX, MaxY T
}

// Rt is shorthand for Rect{minx, miny, maxx, maxy}. Unlike
// image.Rect, the bounds are stored as given.
func Rt[T Scalar](minx, miny, maxx, maxy T) Rect[T] {
	return Rect[T]{MinX: minx, MinY: miny, MaxX: maxx, MaxY: maxy}
}

// Dx returns r's width.
func (r Rect[T]) Dx() T {
	return r.MaxX - r.MinX
}

// Dy returns r's height.
func (r Rect[T]) Dy() T {
	return r.MaxY - r.MinY
}

// Empty reports whether r has no area.
func (r Rect[T]) Empty() bool {
	return r.MinX >= r.MaxX || r.MinY >= r.MaxY
}

// Canon returns r with its bounds swapped where necessary so that it
// is well-formed.
func (r Rect[T]) Canon() Rect[T] {
	if r.MaxX < r.MinX {
		r.MinX, r.MaxX = r.MaxX, r.MinX
	}
	if r.MaxY < r.MinY {
		r.MinY, r.MaxY = r.MaxY, r.MinY
	}
	return r
}

// Center returns the point at the middle of r.
func (r Rect[T]) Center() (x, y T) {
	return (r.MinX + r.MaxX) / 2, (r.MinY + r.MaxY) / 2
}

// CutLeft removes a strip of width a from the left of r and returns
// it. If r is narrower than a, the whole of r is removed, leaving r
// with zero width at its right edge.
func (r *Rect[T]) CutLeft(a T) Rect[T] {
	minx := r.MinX
	if r.MaxX < r.MinX+a {
		r.MinX = r.MaxX
	} else {
		r.MinX += a
	}
	return Rt(minx, r.MinY, r.MinX, r.MaxY)
}

// CutRight removes a strip of width a from the right of r and returns
// it. If r is narrower than a, the whole of r is removed, leaving r
// with zero width at its left edge.
func (r *Rect[T]) CutRight(a T) Rect[T] {
	maxx := r.MaxX
	if r.MinX > r.MaxX-a {
		r.MaxX = r.MinX
	} else {
		r.MaxX -= a
	}
	return Rt(r.MaxX, r.MinY, maxx, r.MaxY)
}

// CutTop removes a strip of height a from the top of r and returns
// it. If r is shorter than a, the whole of r is removed, leaving r
// with zero height at its bottom edge.
func (r *Rect[T]) CutTop(a T) Rect[T] {
	miny := r.MinY
	if r.MaxY < r.MinY+a {
		r.MinY = r.MaxY
	} else {
		r.MinY += a
	}
	return Rt(r.MinX, miny, r.MaxX, r.MinY)
}

// CutBottom removes a strip of height a from the bottom of r and
// returns it. If r is shorter than a, the whole of r is removed,
// leaving r with zero height at its top edge.
func (r *Rect[T]) CutBottom(a T) Rect[T] {
	maxy := r.MaxY
	if r.MinY > r.MaxY-a {
		r.MaxY = r.MinY
	} else {
		r.MaxY -= a
	}
	return Rt(r.MinX, r.MaxY, r.MaxX, maxy)
}

// GetLeft returns the strip that CutLeft would remove without
// modifying r.
func (r Rect[T]) GetLeft(a T) Rect[T] {
	maxx := r.MinX + a
	if r.MaxX < maxx {
		maxx = r.MaxX
	}
	return Rt(r.MinX, r.MinY, maxx, r.MaxY)
}

// GetRight returns the strip that CutRight would remove without
// modifying r.
func (r Rect[T]) GetRight(a T) Rect[T] {
	minx := r.MaxX - a
	if r.MinX > minx {
		minx = r.MinX
	}
	return Rt(minx, r.MinY, r.MaxX, r.MaxY)
}

// GetTop returns the strip that CutTop would remove without modifying
// r.
func (r Rect[T]) GetTop(a T) Rect[T] {
	maxy := r.MinY + a
	if r.MaxY < maxy {
		maxy = r.MaxY
	}
	return Rt(r.MinX, r.MinY, r.MaxX, maxy)
}

// GetBottom returns the strip that CutBottom would remove without
// modifying r.
func (r Rect[T]) GetBottom(a T) Rect[T] {
	miny := r.MaxY - a
	if r.MinY > miny {
		miny = r.MinY
	}
	return Rt(r.MinX, miny, r.MaxX, r.MaxY)
}

// AddLeft returns a strip of width a directly to the left of r. A
// negative a yields a strip that overlaps r instead.
func (r Rect[T]) AddLeft(a T) Rect[T] {
	return Rt(r.MinX-a, r.MinY, r.MinX, r.MaxY)
}

// AddRight returns a strip of width a directly to the right of r.
func (r Rect[T]) AddRight(a T) Rect[T] {
	return Rt(r.MaxX, r.MinY, r.MaxX+a, r.MaxY)
}

// AddTop returns a strip of height a directly above r.
func (r Rect[T]) AddTop(a T) Rect[T] {
	return Rt(r.MinX, r.MinY-a, r.MaxX, r.MinY)
}

// AddBottom returns a strip of height a directly below r.
func (r Rect[T]) AddBottom(a T) Rect[T] {
	return Rt(r.MinX, r.MaxY, r.MaxX, r.MaxY+a)
}

// Extend returns r grown by a in every direction.
func (r Rect[T]) Extend(a T) Rect[T] {
	return Rt(r.MinX-a, r.MinY-a, r.MaxX+a, r.MaxY+a)
}

// Contract returns r shrunk by a in every direction. The result is
// not clamped, so contracting by more than half of r's width or
// height produces an inverted rectangle.
func (r Rect[T]) Contract(a T) Rect[T] {
	return Rt(r.MinX+a, r.MinY+a, r.MaxX-a, r.MaxY-a)
}
