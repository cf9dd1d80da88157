package imgrid

// Convert builds a new owned buffer by applying f to every pixel of src in
// scanline order. Both type arguments are inferred from f.
func Convert[Q, P comparable](src Image[P], f func(P) Q) *Buffer[Q] {
	w, h := src.Dimensions()
	out := New[Q](w, h)
	it := src.Pixels()
	for i := range out.pix {
		p, _ := it.Next()
		out.pix[i] = f(*p)
	}
	return out
}

// RGBAToRGB drops the alpha channel without premultiplying.
func RGBAToRGB[S Channel](src Image[RGBA[S]]) *Buffer[RGB[S]] {
	return Convert(src, func(p RGBA[S]) RGB[S] {
		return RGB[S]{p[0], p[1], p[2]}
	})
}

// GrayAlphaToGray drops the alpha channel without premultiplying.
func GrayAlphaToGray[S Channel](src Image[GrayAlpha[S]]) *Buffer[Gray[S]] {
	return Convert(src, func(p GrayAlpha[S]) Gray[S] {
		return Gray[S]{p[0]}
	})
}
