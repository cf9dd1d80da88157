// Package stdimage bridges imgrid buffers and the standard library image
// packages. The adapter types satisfy image.Image and draw.Image without
// copying; the From/To functions convert between the two pixel layouts by
// copying.
//
// RGBA channels are straight (non-premultiplied) alpha, so the RGBA adapters
// map to image.NRGBA and color.NRGBA.
package stdimage

import (
	"image"
	"image/color"
	"image/draw"

	"github.com/imgrid/imgrid"
)

// Gray adapts a Buffer[Gray8] to image.Image and draw.Image. Points outside
// the buffer read as black and writes to them are dropped, per the
// image.Image bounds convention.
type Gray struct {
	Buf *imgrid.Buffer[imgrid.Gray8]
}

func (g Gray) ColorModel() color.Model { return color.GrayModel }

func (g Gray) Bounds() image.Rectangle { return g.Buf.Bounds().Std() }

func (g Gray) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return color.Gray{}
	}
	return color.Gray{Y: g.Buf.At(x, y)[0]}
}

func (g Gray) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return
	}
	g.Buf.Set(x, y, imgrid.Gray8{color.GrayModel.Convert(c).(color.Gray).Y})
}

// NRGBA adapts a Buffer[RGBA8] to image.Image and draw.Image.
type NRGBA struct {
	Buf *imgrid.Buffer[imgrid.RGBA8]
}

func (n NRGBA) ColorModel() color.Model { return color.NRGBAModel }

func (n NRGBA) Bounds() image.Rectangle { return n.Buf.Bounds().Std() }

func (n NRGBA) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(n.Bounds()) {
		return color.NRGBA{}
	}
	p := n.Buf.At(x, y)
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

func (n NRGBA) Set(x, y int, c color.Color) {
	if !(image.Point{X: x, Y: y}).In(n.Bounds()) {
		return
	}
	v := color.NRGBAModel.Convert(c).(color.NRGBA)
	n.Buf.Set(x, y, imgrid.RGBA8{v.R, v.G, v.B, v.A})
}

// nrgbaReader is the read-only counterpart of NRGBA, accepting any storage
// kind.
type nrgbaReader struct {
	img imgrid.Image[imgrid.RGBA8]
}

func (n nrgbaReader) ColorModel() color.Model { return color.NRGBAModel }

func (n nrgbaReader) Bounds() image.Rectangle { return n.img.Bounds().Std() }

func (n nrgbaReader) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(n.Bounds()) {
		return color.NRGBA{}
	}
	p := n.img.At(x, y)
	return color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}
}

type grayReader struct {
	img imgrid.Image[imgrid.Gray8]
}

func (g grayReader) ColorModel() color.Model { return color.GrayModel }

func (g grayReader) Bounds() image.Rectangle { return g.img.Bounds().Std() }

func (g grayReader) At(x, y int) color.Color {
	if !(image.Point{X: x, Y: y}).In(g.Bounds()) {
		return color.Gray{}
	}
	return color.Gray{Y: g.img.At(x, y)[0]}
}

var (
	_ draw.Image  = Gray{}
	_ draw.Image  = NRGBA{}
	_ image.Image = nrgbaReader{}
	_ image.Image = grayReader{}
)

// FromImage copies img into a new RGBA8 buffer. The buffer is zero based;
// the pixel at img's bounds minimum lands at (0, 0).
func FromImage(img image.Image) *imgrid.Buffer[imgrid.RGBA8] {
	bounds := img.Bounds()
	return imgrid.Generate(bounds.Dx(), bounds.Dy(), func(x, y int) imgrid.RGBA8 {
		c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
		return imgrid.RGBA8{c.R, c.G, c.B, c.A}
	})
}

// FromGray copies img into a new Gray8 buffer, converting through the gray
// color model.
func FromGray(img image.Image) *imgrid.Buffer[imgrid.Gray8] {
	bounds := img.Bounds()
	return imgrid.Generate(bounds.Dx(), bounds.Dy(), func(x, y int) imgrid.Gray8 {
		return imgrid.Gray8{color.GrayModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.Gray).Y}
	})
}

// ToNRGBA copies src into a new image.NRGBA.
func ToNRGBA(src imgrid.Image[imgrid.RGBA8]) *image.NRGBA {
	w, h := src.Dimensions()
	out := image.NewNRGBA(image.Rect(0, 0, w, h))
	for y, row := range src.Rows().All() {
		for x, p := range row {
			i := out.PixOffset(x, y)
			out.Pix[i+0] = p[0]
			out.Pix[i+1] = p[1]
			out.Pix[i+2] = p[2]
			out.Pix[i+3] = p[3]
		}
	}
	return out
}

// ToGray copies src into a new image.Gray.
func ToGray(src imgrid.Image[imgrid.Gray8]) *image.Gray {
	w, h := src.Dimensions()
	out := image.NewGray(image.Rect(0, 0, w, h))
	for y, row := range src.Rows().All() {
		for x, p := range row {
			out.Pix[out.PixOffset(x, y)] = p[0]
		}
	}
	return out
}

// Draw composites src into the r region of dst using the standard library
// compositor. It aligns r's origin in dst with sp in src.
func Draw(dst *imgrid.Buffer[imgrid.RGBA8], r imgrid.Rect, src image.Image, sp image.Point, op draw.Op) {
	draw.Draw(NRGBA{Buf: dst}, r.Std(), src, sp, op)
}
