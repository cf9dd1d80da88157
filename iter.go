package imgrid

import "iter"

// ColIter iterates over the pixels of one column in top-to-bottom order. It
// is exactly sized and double-ended. The yielded pointers alias the image
// storage; treat them as read-only when the iterator came from a View.
type ColIter[P comparable] struct {
	pix    []P // backing storage, starting at the column's first pixel
	stride int
	i, j   int // front and back cursors; i < j means pixels remain
}

// Len returns the number of pixels not yet yielded.
func (it *ColIter[P]) Len() int { return it.j - it.i }

// Next yields the next pixel from the front, or false when exhausted.
func (it *ColIter[P]) Next() (*P, bool) {
	if it.i >= it.j {
		return nil, false
	}
	p := &it.pix[it.i*it.stride]
	it.i++
	return p, true
}

// NextBack yields the next pixel from the back, or false when exhausted.
func (it *ColIter[P]) NextBack() (*P, bool) {
	if it.i >= it.j {
		return nil, false
	}
	it.j--
	return &it.pix[it.j*it.stride], true
}

// All returns a range-over-func adapter consuming the iterator from the
// front.
func (it *ColIter[P]) All() iter.Seq[*P] {
	return func(yield func(*P) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}

// RowsIter iterates over the rows of an image in scanline order, yielding
// each row as a slice aliasing the image storage. It is exactly sized and
// double-ended.
type RowsIter[P comparable] struct {
	img  *reader[P]
	i, j int
}

// Len returns the number of rows not yet yielded.
func (it *RowsIter[P]) Len() int { return it.j - it.i }

// Next yields the next row from the top, or false when exhausted.
func (it *RowsIter[P]) Next() ([]P, bool) {
	if it.i >= it.j {
		return nil, false
	}
	row := it.img.Row(it.i)
	it.i++
	return row, true
}

// NextBack yields the next row from the bottom, or false when exhausted.
func (it *RowsIter[P]) NextBack() ([]P, bool) {
	if it.i >= it.j {
		return nil, false
	}
	it.j--
	return it.img.Row(it.j), true
}

// All returns a range-over-func adapter pairing each remaining row with its
// row index, consuming the iterator from the top.
func (it *RowsIter[P]) All() iter.Seq2[int, []P] {
	return func(yield func(int, []P) bool) {
		for {
			y := it.i
			row, ok := it.Next()
			if !ok {
				return
			}
			if !yield(y, row) {
				return
			}
		}
	}
}

// ColsIter iterates over the columns of an image in left-to-right order,
// yielding a ColIter per column. It is exactly sized and double-ended.
type ColsIter[P comparable] struct {
	img  *reader[P]
	i, j int
}

// Len returns the number of columns not yet yielded.
func (it *ColsIter[P]) Len() int { return it.j - it.i }

// Next yields the next column from the left, or false when exhausted.
func (it *ColsIter[P]) Next() (*ColIter[P], bool) {
	if it.i >= it.j {
		return nil, false
	}
	col := it.img.Col(it.i)
	it.i++
	return col, true
}

// NextBack yields the next column from the right, or false when exhausted.
func (it *ColsIter[P]) NextBack() (*ColIter[P], bool) {
	if it.i >= it.j {
		return nil, false
	}
	it.j--
	return it.img.Col(it.j), true
}

// All returns a range-over-func adapter pairing each remaining column with
// its column index, consuming the iterator from the left.
func (it *ColsIter[P]) All() iter.Seq2[int, *ColIter[P]] {
	return func(yield func(int, *ColIter[P]) bool) {
		for {
			x := it.i
			col, ok := it.Next()
			if !ok {
				return
			}
			if !yield(x, col) {
				return
			}
		}
	}
}

// RectIter iterates over the cells of a rectangular region in scanline
// order: left to right within a row, rows top to bottom. It is exactly
// sized. The yielded pointers alias the image storage.
type RectIter[P comparable] struct {
	pix    []P // backing storage, starting at the region's first pixel
	stride int
	width  int
	x, y   int // cursor within the region
	n      int // cells remaining
}

// Len returns the number of cells not yet yielded.
func (it *RectIter[P]) Len() int { return it.n }

// Next yields the next cell in scanline order, or false when exhausted.
func (it *RectIter[P]) Next() (*P, bool) {
	if it.n == 0 {
		return nil, false
	}
	p := &it.pix[it.y*it.stride+it.x]
	it.x++
	if it.x == it.width {
		it.x = 0
		it.y++
	}
	it.n--
	return p, true
}

// All returns a range-over-func adapter consuming the iterator.
func (it *RectIter[P]) All() iter.Seq[*P] {
	return func(yield func(*P) bool) {
		for p, ok := it.Next(); ok; p, ok = it.Next() {
			if !yield(p) {
				return
			}
		}
	}
}
