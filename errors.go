package imgrid

import "errors"

// Errors returned for recoverable failures. Contract violations such as an
// out-of-range pixel index or a window rectangle crossing the image boundary
// are programming errors and panic instead.
var (
	// ErrDimensionMismatch indicates that the dimensions of two images, or the
	// dimensions given to a constructor and the length of its input, disagree.
	ErrDimensionMismatch = errors.New("imgrid: image dimensions do not match")

	// ErrSizeMismatch indicates that the source and destination rectangles of
	// a blit are not the same size.
	ErrSizeMismatch = errors.New("imgrid: rects are not the same size")

	// ErrRectOutOfBounds indicates that a rectangle does not fit within the
	// image it addresses.
	ErrRectOutOfBounds = errors.New("imgrid: rect does not fit image")
)
