package imgrid

import "fmt"

// Elementwise arithmetic over any combination of storage kinds. The result
// is always a new owned buffer; the operands are never mutated. All five
// operations fail with ErrDimensionMismatch when the operand dimensions
// disagree, before any cell is computed.
//
// The channel type cannot be inferred from the operands, so calls name both
// type arguments: Add[imgrid.Gray8, uint8](a, b).

// Add returns the elementwise sum of a and b.
func Add[P Pixel[P, S], S Channel](a, b Image[P]) (*Buffer[P], error) {
	return zipImages(a, b, func(x, y S) S { return x + y })
}

// Sub returns the elementwise difference of a and b.
func Sub[P Pixel[P, S], S Channel](a, b Image[P]) (*Buffer[P], error) {
	return zipImages(a, b, func(x, y S) S { return x - y })
}

// Mul returns the elementwise product of a and b.
func Mul[P Pixel[P, S], S Channel](a, b Image[P]) (*Buffer[P], error) {
	return zipImages(a, b, func(x, y S) S { return x * y })
}

// Div returns the elementwise quotient of a and b. Division by a zero
// channel follows the element type: integer division panics, float division
// yields an infinity or NaN.
func Div[P Pixel[P, S], S Channel](a, b Image[P]) (*Buffer[P], error) {
	return zipImages(a, b, func(x, y S) S { return x / y })
}

// Mod returns the elementwise remainder of a and b. It is restricted to
// integer channels; Go defines no remainder operator for floating-point
// types.
func Mod[P Pixel[P, S], S IntChannel](a, b Image[P]) (*Buffer[P], error) {
	return zipImages(a, b, func(x, y S) S { return x % y })
}

func zipImages[P Pixel[P, S], S Channel](a, b Image[P], f func(S, S) S) (*Buffer[P], error) {
	aw, ah := a.Dimensions()
	bw, bh := b.Dimensions()
	if aw != bw || ah != bh {
		return nil, fmt.Errorf("%w: %dx%d and %dx%d", ErrDimensionMismatch, aw, ah, bw, bh)
	}
	out := New[P](aw, ah)
	ai := a.Pixels()
	bi := b.Pixels()
	for i := range out.pix {
		pa, _ := ai.Next()
		pb, _ := bi.Next()
		out.pix[i] = (*pa).Zip(*pb, f)
	}
	return out, nil
}
