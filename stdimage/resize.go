package stdimage

import (
	"image"

	xdraw "golang.org/x/image/draw"

	"github.com/imgrid/imgrid"
)

// Resize scales src to w by h into a new buffer. A nil scaler defaults to
// ApproxBiLinear; pass xdraw.NearestNeighbor or xdraw.CatmullRom to trade
// speed against quality.
func Resize(src imgrid.Image[imgrid.RGBA8], w, h int, scaler xdraw.Scaler) *imgrid.Buffer[imgrid.RGBA8] {
	if scaler == nil {
		scaler = xdraw.ApproxBiLinear
	}
	out := imgrid.New[imgrid.RGBA8](w, h)
	scaler.Scale(NRGBA{Buf: out}, image.Rect(0, 0, w, h), nrgbaReader{img: src}, src.Bounds().Std(), xdraw.Src, nil)
	return out
}

// ResizeGray scales a grayscale src to w by h into a new buffer. A nil
// scaler defaults to ApproxBiLinear.
func ResizeGray(src imgrid.Image[imgrid.Gray8], w, h int, scaler xdraw.Scaler) *imgrid.Buffer[imgrid.Gray8] {
	if scaler == nil {
		scaler = xdraw.ApproxBiLinear
	}
	out := imgrid.New[imgrid.Gray8](w, h)
	scaler.Scale(Gray{Buf: out}, image.Rect(0, 0, w, h), grayReader{img: src}, src.Bounds().Std(), xdraw.Src, nil)
	return out
}
