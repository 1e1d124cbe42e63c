package geom

import (
	"iter"

	"deedles.dev/xiter"
)

// extent returns the size of r along the axis that cutting from side
// shrinks.
func extent[T Scalar](r Rect[T], side Side) T {
	if side.Horizontal() {
		return r.Dx()
	}
	return r.Dy()
}

// Strips returns an iterator that cuts a strip of each size yielded
// by sizes from rc in turn. rc keeps whatever is left over, so a
// caller can continue to cut from it after iteration stops.
func Strips[T Scalar](rc *RectCut[T], sizes iter.Seq[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		for a := range sizes {
			if !yield(rc.Cut(a)) {
				return
			}
		}
	}
}

// TileEven arranges and resizes the elements of tiles so that they
// comprise an even split of r, starting at side. For example,
//
//	tiles := make([]geom.Rect[float32], 3)
//	TileEven(tiles, r, geom.Right)
//
// will produce
//
//	----------
//	|2 |1 |0 |
//	----------
func TileEven[T Scalar](tiles []Rect[T], r Rect[T], side Side) {
	insertTiles(tiles, TiledEven(len(tiles), r, side))
}

// TiledEven is the same as [TileEven] but yields the successive tiles
// from an iterator instead of inserting them into a slice. The last
// tile is whatever remains of r, so no space is lost to rounding when
// T is an integer type.
func TiledEven[T Scalar](numtiles int, r Rect[T], side Side) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		rc := NewRectCut(r, side)
		size := extent(r, side) / T(numtiles)
		for range numtiles - 1 {
			if !yield(rc.Cut(size)) {
				return
			}
		}
		yield(rc.Rect)
	}
}

// TileEvenVertically arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// vertical splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float32], 3)
//	TileEvenVertically(tiles, r)
//
// will produce
//
//	----------
//	|        |
//	----------
//	|        |
//	----------
//	|        |
//	----------
func TileEvenVertically[T Scalar](tiles []Rect[T], r Rect[T]) {
	TileEven(tiles, r, Top)
}

// TiledEvenVertically is the same as [TileEvenVertically] except that
// it yields the tiles from an iterator.
func TiledEvenVertically[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return TiledEven(numtiles, r, Top)
}

// TileEvenHorizontally arranges and resizes the elements of tiles so
// that the result are a series of rectangles that comprise an even,
// horizontal splitting of r. In other words,
//
//	tiles := make([]geom.Rect[float32], 3)
//	TileEvenHorizontally(tiles, r)
//
// will produce
//
//	----------
//	|  |  |  |
//	----------
func TileEvenHorizontally[T Scalar](tiles []Rect[T], r Rect[T]) {
	TileEven(tiles, r, Left)
}

// TiledEvenHorizontally is the same as [TileEvenHorizontally] except
// that it yields the tiles from an iterator.
func TiledEvenHorizontally[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return TiledEven(numtiles, r, Left)
}

// TileRightThenDown arranges and resizes the elements of tiles in
// order to split r into a series of rectangles that recursively cut
// half of what remains from the left and then from the top. In other
// words,
//
//	tiles := make([]geom.Rect[float32], 4)
//	TileRightThenDown(tiles, r)
//
// will produce
//
//	------------
//	|    |     |
//	|    -------
//	|    |  |  |
//	------------
func TileRightThenDown[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTiles(tiles, TiledRightThenDown(len(tiles), r))
}

// TiledRightThenDown is the same as [TileRightThenDown] but yields
// the successive tiles from an iterator instead of inserting them
// into a slice.
func TiledRightThenDown[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}

		rc := NewRectCut(r, Left)
		for range numtiles - 1 {
			if !yield(rc.Cut(extent(rc.Rect, rc.Side) / 2)) {
				return
			}

			if rc.Side == Left {
				rc.Side = Top
			} else {
				rc.Side = Left
			}
		}
		yield(rc.Rect)
	}
}

// TileTwoThirdsSidebar arranges and resizes the elements of tiles so
// that the result are a series of rectangles where the first is
// two-thirds the width of r and the rest are arranged vertically in
// an even split in the remaining space.
func TileTwoThirdsSidebar[T Scalar](tiles []Rect[T], r Rect[T]) {
	insertTiles(tiles, TiledTwoThirdsSidebar(len(tiles), r))
}

// TiledTwoThirdsSidebar is the same as [TileTwoThirdsSidebar] except
// that it yields the successive rectangles from an iterator instead
// of inserting them into a slice.
func TiledTwoThirdsSidebar[T Scalar](numtiles int, r Rect[T]) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 {
			return
		}
		if numtiles == 1 {
			yield(r)
			return
		}

		rem := r
		first := rem.CutLeft(2 * r.Dx() / 3)
		if !yield(first) {
			return
		}

		for t := range TiledEvenVertically(numtiles-1, rem) {
			if !yield(t) {
				return
			}
		}
	}
}

// TileRows arranges and resizes the elements of tiles to produce a
// series of rows and columns the union of which reproduces r. The
// final row of the table is split evenly into at most cols columns.
// When that number is exceeded, a new row is added below it instead.
func TileRows[T Scalar](tiles []Rect[T], r Rect[T], cols int) {
	insertTiles(tiles, TiledRows(len(tiles), r, cols))
}

// TiledRows is the same as [TileRows] except that it yields the tiles
// from an iterator.
func TiledRows[T Scalar](numtiles int, r Rect[T], cols int) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		if numtiles <= 0 || cols <= 0 {
			return
		}

		numrows := numtiles / cols
		if numtiles%cols != 0 {
			numrows++
		}

		left := numtiles
		for row := range TiledEvenVertically(numrows, r) {
			numcols := min(left, cols)
			for t := range TiledEvenHorizontally(numcols, row) {
				if !yield(t) {
					return
				}
			}
			left -= numcols
		}
	}
}

// Stack returns an iterator that yields the rectangle provided, with
// its bounds put in order, and then identical copies placed against
// side of the previous one repeatedly, thus producing an infinite
// stack of rectangles.
func Stack[T Scalar](first Rect[T], side Side) iter.Seq[Rect[T]] {
	return func(yield func(Rect[T]) bool) {
		rc := NewRectCut(first.Canon(), side)
		size := extent(rc.Rect, side)
		for {
			if !yield(rc.Rect) {
				return
			}
			rc.Rect = rc.Add(size)
		}
	}
}

// Align shifts the specified edges of inner to align with the
// corresponding edges of outer, stretching the rectangle as
// necessary if opposite edges are specified. Along an axis with
// neither edge specified, inner is centered in outer.
func Align[T Scalar](outer, inner Rect[T], edges Edges) Rect[T] {
	w, h := inner.Dx(), inner.Dy()
	cx, cy := outer.Center()
	inner = Rt(cx-w/2, cy-h/2, cx-w/2+w, cy-h/2+h)

	switch {
	case edges.Has(Top):
		inner.MinY, inner.MaxY = outer.MinY, outer.MinY+h
		if edges.Has(Bottom) {
			inner.MaxY = outer.MaxY
		}
	case edges.Has(Bottom):
		inner.MinY, inner.MaxY = outer.MaxY-h, outer.MaxY
	}
	switch {
	case edges.Has(Left):
		inner.MinX, inner.MaxX = outer.MinX, outer.MinX+w
		if edges.Has(Right) {
			inner.MaxX = outer.MaxX
		}
	case edges.Has(Right):
		inner.MinX, inner.MaxX = outer.MaxX-w, outer.MaxX
	}

	return inner
}

func insertTiles[T Scalar](tiles []Rect[T], s iter.Seq[Rect[T]]) {
	for i, t := range xiter.Enumerate(s) {
		tiles[i] = t
	}
}
