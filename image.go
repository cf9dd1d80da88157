package imgrid

import (
	"fmt"
	"iter"
)

// Coord is a grid index in (row, column) order, matching the order in which
// EnumeratePixels yields indices.
type Coord struct {
	Y int
	X int
}

// Image is the read contract shared by every storage kind. Both *Buffer and
// *View satisfy it, so any mix of owned buffers and windows can be compared,
// blitted from, or combined arithmetically.
//
// The element type is only required to be comparable here; the channel-level
// operations (FromRaw, the arithmetic functions, Convert) additionally
// require it to satisfy [Pixel].
//
// Methods returning pixel pointers or aliasing slices must be treated as
// read-only when the Image is a *View; Go cannot express an immutable slice,
// so this is a documented contract rather than a compile-time guarantee.
type Image[P comparable] interface {
	Width() int
	Height() int
	Dimensions() (w, h int)
	Bounds() Rect
	At(x, y int) P
	AsSlice() []P
	Row(y int) []P
	Col(x int) *ColIter[P]
	Rows() *RowsIter[P]
	Cols() *ColsIter[P]
	RectIter(r Rect) *RectIter[P]
	Pixels() *RectIter[P]
	EnumeratePixels() iter.Seq2[Coord, *P]
	SubImage(r Rect) *View[P]
	View() *View[P]
	TranslateRect(r Rect, dx, dy int) (Rect, bool)
	Clone() *Buffer[P]
	Equal(o Image[P]) bool
}

// reader holds the shape bookkeeping and every read algorithm, implemented
// once and shared by Buffer and View through embedding. The pixel at (x, y)
// is pix[y*stride+x]; stride equals width for owned buffers and whole-image
// windows, and the source buffer's stride for narrower windows.
type reader[P comparable] struct {
	pix    []P
	width  int
	height int
	stride int
}

// Width returns the width of the image.
func (r *reader[P]) Width() int { return r.width }

// Height returns the height of the image.
func (r *reader[P]) Height() int { return r.height }

// Dimensions returns the width and height of the image.
func (r *reader[P]) Dimensions() (w, h int) { return r.width, r.height }

// Bounds returns the rect covering the whole image.
func (r *reader[P]) Bounds() Rect {
	return Rect{Width: r.width, Height: r.height}
}

// At returns the pixel at (x, y).
//
// Panics if the index is out of bounds.
func (r *reader[P]) At(x, y int) P {
	r.checkIndex(x, y)
	return r.pix[y*r.stride+x]
}

// AsSlice returns the pixels as a flat slice in row-major order, or nil if
// the backing storage is not contiguous (a window narrower than its source).
func (r *reader[P]) AsSlice() []P {
	if r.stride != r.width {
		return nil
	}
	return r.pix[:r.width*r.height]
}

// Row returns the pixels of row y in left-to-right order, or nil if y is out
// of range. The slice aliases the image storage.
func (r *reader[P]) Row(y int) []P {
	if y < 0 || y >= r.height {
		return nil
	}
	lo := y * r.stride
	return r.pix[lo : lo+r.width : lo+r.width]
}

// Col returns an iterator over the pixels of column x in top-to-bottom
// order, or nil if x is out of range.
func (r *reader[P]) Col(x int) *ColIter[P] {
	if x < 0 || x >= r.width {
		return nil
	}
	if r.height == 0 {
		return &ColIter[P]{}
	}
	return &ColIter[P]{pix: r.pix[x:], stride: r.stride, j: r.height}
}

// Rows returns an iterator over the rows of the image in scanline order.
func (r *reader[P]) Rows() *RowsIter[P] {
	return &RowsIter[P]{img: r, j: r.height}
}

// Cols returns an iterator over the columns of the image in left-to-right
// order.
func (r *reader[P]) Cols() *ColsIter[P] {
	return &ColsIter[P]{img: r, j: r.width}
}

// RectIter returns an iterator over the cells of r in scanline order. Every
// call builds a fresh iterator.
//
// Panics if r does not fit the image.
func (r *reader[P]) RectIter(rc Rect) *RectIter[P] {
	win := r.window(rc)
	return &RectIter[P]{
		pix:    win.pix,
		stride: win.stride,
		width:  win.width,
		n:      win.width * win.height,
	}
}

// Pixels returns an iterator over every pixel in row-major order.
func (r *reader[P]) Pixels() *RectIter[P] {
	return r.RectIter(r.Bounds())
}

// EnumeratePixels returns an iterator pairing each pixel with its grid index
// in row-major order. The index is in (row, column) order, not (x, y).
func (r *reader[P]) EnumeratePixels() iter.Seq2[Coord, *P] {
	return func(yield func(Coord, *P) bool) {
		for y := 0; y < r.height; y++ {
			for x := 0; x < r.width; x++ {
				if !yield(Coord{Y: y, X: x}, &r.pix[y*r.stride+x]) {
					return
				}
			}
		}
	}
}

// SubImage returns a read-only window over r, sharing storage with the
// image.
//
// Panics if r does not fit the image; validate with [Rect.Fits] first.
func (r *reader[P]) SubImage(rc Rect) *View[P] {
	return &View[P]{r.window(rc)}
}

// View returns a read-only window over the whole image.
func (r *reader[P]) View() *View[P] {
	return &View[P]{*r}
}

// TranslateRect moves r by (dx, dy) and clips the result to the image
// bounds. It reports false if the translated rect falls entirely outside the
// image; otherwise the returned rect is the clipped intersection, which may
// be smaller than r.
func (r *reader[P]) TranslateRect(rc Rect, dx, dy int) (Rect, bool) {
	var (
		left   = rc.Left + dx
		top    = rc.Top + dy
		right  = rc.Right() + dx
		bottom = rc.Bottom() + dy
	)
	if left >= r.width || top >= r.height || right < 0 || bottom < 0 {
		return Rect{}, false
	}
	x0 := max(left, 0)
	y0 := max(top, 0)
	return Rect{
		Left:   x0,
		Top:    y0,
		Width:  min(r.width, right+1) - x0,
		Height: min(r.height, bottom+1) - y0,
	}, true
}

// Clone returns an owned deep copy of the image, independent of the source
// storage.
func (r *reader[P]) Clone() *Buffer[P] {
	pix := make([]P, r.width*r.height)
	if r.stride == r.width {
		copy(pix, r.pix)
	} else {
		for y := 0; y < r.height; y++ {
			copy(pix[y*r.width:(y+1)*r.width], r.pix[y*r.stride:y*r.stride+r.width])
		}
	}
	return &Buffer[P]{reader[P]{pix: pix, width: r.width, height: r.height, stride: r.width}}
}

// Equal reports whether o has the same dimensions and all cells compare
// equal in scanline order. The storage kinds of the operands are irrelevant.
func (r *reader[P]) Equal(o Image[P]) bool {
	if o == nil {
		return false
	}
	ow, oh := o.Dimensions()
	if ow != r.width || oh != r.height {
		return false
	}
	for y := 0; y < r.height; y++ {
		row := r.pix[y*r.stride : y*r.stride+r.width]
		other := o.Row(y)
		for x := range row {
			if row[x] != other[x] {
				return false
			}
		}
	}
	return true
}

func (r *reader[P]) checkIndex(x, y int) {
	if x < 0 || x >= r.width || y < 0 || y >= r.height {
		panic(fmt.Sprintf("imgrid: pixel index (%d,%d) out of range for %dx%d image", x, y, r.width, r.height))
	}
}

// window slices the backing storage down to rc, keeping the source stride.
//
// Panics if rc does not fit the image.
func (r *reader[P]) window(rc Rect) reader[P] {
	if !rc.Fits(r) {
		panic(fmt.Sprintf("imgrid: rect %v does not fit %dx%d image", rc, r.width, r.height))
	}
	if rc.Width == 0 || rc.Height == 0 {
		return reader[P]{width: rc.Width, height: rc.Height, stride: rc.Width}
	}
	lo := rc.Top*r.stride + rc.Left
	hi := lo + (rc.Height-1)*r.stride + rc.Width
	return reader[P]{pix: r.pix[lo:hi], width: rc.Width, height: rc.Height, stride: r.stride}
}
