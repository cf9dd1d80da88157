package imgrid

import "fmt"

// Buffer is a mutable 2D grid of pixels. A Buffer created by one of the
// constructors owns its storage; a Buffer returned by SubImageMut is a
// window sharing storage with its source, in the manner of the standard
// library's image.RGBA.SubImage. Dimensions never change after
// construction; build a new Buffer instead of resizing.
type Buffer[P comparable] struct {
	reader[P]
}

// New returns a new owned w-by-h buffer with every cell set to the zero
// pixel.
//
// Panics if either dimension is negative.
func New[P comparable](w, h int) *Buffer[P] {
	if w < 0 || h < 0 {
		panic(fmt.Sprintf("imgrid: negative image dimensions %dx%d", w, h))
	}
	return &Buffer[P]{reader[P]{pix: make([]P, w*h), width: w, height: h, stride: w}}
}

// FromPixels returns a new w-by-h buffer backed by pix, which must hold
// exactly w*h pixels in row-major order. The buffer takes ownership of the
// slice.
func FromPixels[P comparable](w, h int, pix []P) (*Buffer[P], error) {
	if w < 0 || h < 0 || len(pix) != w*h {
		return nil, fmt.Errorf("%w: %d pixels for a %dx%d image", ErrDimensionMismatch, len(pix), w, h)
	}
	return &Buffer[P]{reader[P]{pix: pix, width: w, height: h, stride: w}}, nil
}

// FromRaw returns a new w-by-h buffer built from flat channel values in
// row-major order, chunked into pixels. The length of raw must be an exact
// multiple of the pixel type's channel count, and the resulting pixel count
// must equal w*h.
func FromRaw[P Pixel[P, S], S Channel](w, h int, raw []S) (*Buffer[P], error) {
	var zero P
	n := len(zero.Channels())
	if len(raw)%n != 0 {
		return nil, fmt.Errorf("%w: %d channel values is not a multiple of %d channels", ErrDimensionMismatch, len(raw), n)
	}
	if w < 0 || h < 0 || len(raw)/n != w*h {
		return nil, fmt.Errorf("%w: %d pixels for a %dx%d image", ErrDimensionMismatch, len(raw)/n, w, h)
	}
	pix := make([]P, 0, w*h)
	for i := 0; i < len(raw); i += n {
		pix = append(pix, zero.FromSlice(raw[i:i+n]))
	}
	return &Buffer[P]{reader[P]{pix: pix, width: w, height: h, stride: w}}, nil
}

// Generate returns a new w-by-h buffer with each cell set to f(x, y). f is
// called exactly once per cell; the visitation order is unspecified.
//
// Panics if either dimension is negative.
func Generate[P comparable](w, h int, f func(x, y int) P) *Buffer[P] {
	b := New[P](w, h)
	for y := 0; y < h; y++ {
		row := b.pix[y*w : (y+1)*w]
		for x := range row {
			row[x] = f(x, y)
		}
	}
	return b
}

// AtPtr returns a pointer to the pixel at (x, y).
//
// Panics if the index is out of bounds.
func (b *Buffer[P]) AtPtr(x, y int) *P {
	b.checkIndex(x, y)
	return &b.pix[y*b.stride+x]
}

// Set overwrites the pixel at (x, y).
//
// Panics if the index is out of bounds.
func (b *Buffer[P]) Set(x, y int, p P) {
	b.checkIndex(x, y)
	b.pix[y*b.stride+x] = p
}

// Fill sets every cell of the buffer to p.
func (b *Buffer[P]) Fill(p P) {
	for y := 0; y < b.height; y++ {
		row := b.pix[y*b.stride : y*b.stride+b.width]
		for x := range row {
			row[x] = p
		}
	}
}

// FillRect sets every cell within r to p.
//
// Panics if r does not fit the buffer.
func (b *Buffer[P]) FillRect(r Rect, p P) {
	it := b.RectIter(r)
	for q, ok := it.Next(); ok; q, ok = it.Next() {
		*q = p
	}
}

// BlitRect copies srcRect of src into dstRect of the buffer, pairing cells
// in scanline order. The two rects must be the same size, srcRect must fit
// src and dstRect must fit the buffer; on any violation an error is returned
// before a single cell is written. Cells are paired by iteration order, not
// by geometric translation.
//
// The behavior is unspecified if src shares storage with the buffer and the
// two rects overlap.
func (b *Buffer[P]) BlitRect(srcRect, dstRect Rect, src Image[P]) error {
	sw, sh := srcRect.Size()
	dw, dh := dstRect.Size()
	if sw != dw || sh != dh {
		return fmt.Errorf("%w: source is %dx%d, destination is %dx%d", ErrSizeMismatch, sw, sh, dw, dh)
	}
	if !srcRect.Fits(src) {
		return fmt.Errorf("%w: source rect %v in %dx%d image", ErrRectOutOfBounds, srcRect, src.Width(), src.Height())
	}
	if !dstRect.Fits(b) {
		return fmt.Errorf("%w: destination rect %v in %dx%d image", ErrRectOutOfBounds, dstRect, b.width, b.height)
	}

	si := src.RectIter(srcRect)
	di := b.RectIter(dstRect)
	for sp, ok := si.Next(); ok; sp, ok = si.Next() {
		dp, _ := di.Next()
		*dp = *sp
	}
	return nil
}

// SubImageMut returns a mutable window over r, sharing storage with the
// buffer. While the window is in use, no other writer may touch the
// overlapped region.
//
// Panics if r does not fit the buffer; validate with [Rect.Fits] first.
func (b *Buffer[P]) SubImageMut(r Rect) *Buffer[P] {
	return &Buffer[P]{b.window(r)}
}

// Interface checks.
var (
	_ Image[Gray8] = (*Buffer[Gray8])(nil)
	_ Sized        = (*Buffer[Gray8])(nil)
)
