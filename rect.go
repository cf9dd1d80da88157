package imgrid

import (
	"fmt"
	"image"
)

// Sized is the minimal dimensions contract shared by every storage kind.
type Sized interface {
	Width() int
	Height() int
}

// Rect is an axis-aligned rectangle addressing a sub-range of grid
// coordinates. The right and bottom edges are derived: for a non-empty rect,
// Right = Left + Width - 1 and Bottom = Top + Height - 1.
//
// Rects compare structurally with ==. Zero-size rects are legal and address
// zero cells; no normalization is performed.
type Rect struct {
	Left   int
	Top    int
	Width  int
	Height int
}

// NewRect returns the rect with the given origin and size.
func NewRect(left, top, width, height int) Rect {
	return Rect{Left: left, Top: top, Width: width, Height: height}
}

// Right returns the rightmost column covered by the rect (inclusive).
func (r Rect) Right() int { return r.Left + r.Width - 1 }

// Bottom returns the bottommost row covered by the rect (inclusive).
func (r Rect) Bottom() int { return r.Top + r.Height - 1 }

// Size returns the width and height of the rect.
func (r Rect) Size() (w, h int) { return r.Width, r.Height }

// Contains reports whether the rect covers the cell (x, y).
func (r Rect) Contains(x, y int) bool {
	return x >= r.Left && x <= r.Right() && y >= r.Top && y <= r.Bottom()
}

// Fits reports whether the rect lies entirely within the bounds of img.
func (r Rect) Fits(img Sized) bool {
	return r.Left >= 0 && r.Top >= 0 && r.Width >= 0 && r.Height >= 0 &&
		r.Left+r.Width <= img.Width() && r.Top+r.Height <= img.Height()
}

// Std returns the equivalent half-open image.Rectangle.
func (r Rect) Std() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Left+r.Width, r.Top+r.Height)
}

// FromStdRect converts a half-open image.Rectangle into a Rect.
func FromStdRect(r image.Rectangle) Rect {
	r = r.Canon()
	return Rect{Left: r.Min.X, Top: r.Min.Y, Width: r.Dx(), Height: r.Dy()}
}

func (r Rect) String() string {
	return fmt.Sprintf("(%d,%d %dx%d)", r.Left, r.Top, r.Width, r.Height)
}
