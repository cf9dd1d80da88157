package imgrid

// Gray is a single-channel grayscale pixel.
type Gray[S Channel] [1]S

func (p Gray[S]) Channels() []S                       { return p[:] }
func (Gray[S]) FromSlice(s []S) Gray[S]               { return Gray[S]{s[0]} }
func (p Gray[S]) Map(f func(S) S) Gray[S]             { return Gray[S]{f(p[0])} }
func (p Gray[S]) Zip(q Gray[S], f func(S, S) S) Gray[S] {
	return Gray[S]{f(p[0], q[0])}
}
func (p Gray[S]) Sum() S { return p[0] }

// SetSlice overwrites the pixel with the first channel of s.
func (p *Gray[S]) SetSlice(s []S) { *p = Gray[S]{s[0]} }

// ChannelsMut returns a mutable slice aliasing the pixel's channels.
func (p *Gray[S]) ChannelsMut() []S { return p[:] }

// GrayAlpha is a grayscale pixel with an alpha channel.
type GrayAlpha[S Channel] [2]S

func (p GrayAlpha[S]) Channels() []S             { return p[:] }
func (GrayAlpha[S]) FromSlice(s []S) GrayAlpha[S] { return GrayAlpha[S]{s[0], s[1]} }
func (p GrayAlpha[S]) Map(f func(S) S) GrayAlpha[S] {
	return GrayAlpha[S]{f(p[0]), f(p[1])}
}
func (p GrayAlpha[S]) Zip(q GrayAlpha[S], f func(S, S) S) GrayAlpha[S] {
	return GrayAlpha[S]{f(p[0], q[0]), f(p[1], q[1])}
}
func (p GrayAlpha[S]) Sum() S { return p[0] + p[1] }

// SetSlice overwrites the pixel with the first two channels of s.
func (p *GrayAlpha[S]) SetSlice(s []S) { *p = GrayAlpha[S]{s[0], s[1]} }

// ChannelsMut returns a mutable slice aliasing the pixel's channels.
func (p *GrayAlpha[S]) ChannelsMut() []S { return p[:] }

// RGB is a three-channel red/green/blue pixel.
type RGB[S Channel] [3]S

func (p RGB[S]) Channels() []S         { return p[:] }
func (RGB[S]) FromSlice(s []S) RGB[S]  { return RGB[S]{s[0], s[1], s[2]} }
func (p RGB[S]) Map(f func(S) S) RGB[S] {
	return RGB[S]{f(p[0]), f(p[1]), f(p[2])}
}
func (p RGB[S]) Zip(q RGB[S], f func(S, S) S) RGB[S] {
	return RGB[S]{f(p[0], q[0]), f(p[1], q[1]), f(p[2], q[2])}
}
func (p RGB[S]) Sum() S { return p[0] + p[1] + p[2] }

// SetSlice overwrites the pixel with the first three channels of s.
func (p *RGB[S]) SetSlice(s []S) { *p = RGB[S]{s[0], s[1], s[2]} }

// ChannelsMut returns a mutable slice aliasing the pixel's channels.
func (p *RGB[S]) ChannelsMut() []S { return p[:] }

// RGBA is a four-channel red/green/blue/alpha pixel with straight
// (non-premultiplied) alpha.
type RGBA[S Channel] [4]S

func (p RGBA[S]) Channels() []S          { return p[:] }
func (RGBA[S]) FromSlice(s []S) RGBA[S]  { return RGBA[S]{s[0], s[1], s[2], s[3]} }
func (p RGBA[S]) Map(f func(S) S) RGBA[S] {
	return RGBA[S]{f(p[0]), f(p[1]), f(p[2]), f(p[3])}
}
func (p RGBA[S]) Zip(q RGBA[S], f func(S, S) S) RGBA[S] {
	return RGBA[S]{f(p[0], q[0]), f(p[1], q[1]), f(p[2], q[2]), f(p[3], q[3])}
}
func (p RGBA[S]) Sum() S { return p[0] + p[1] + p[2] + p[3] }

// SetSlice overwrites the pixel with the first four channels of s.
func (p *RGBA[S]) SetSlice(s []S) { *p = RGBA[S]{s[0], s[1], s[2], s[3]} }

// ChannelsMut returns a mutable slice aliasing the pixel's channels.
func (p *RGBA[S]) ChannelsMut() []S { return p[:] }

// Aliases for the common channel depths.
type (
	Gray8       = Gray[uint8]
	Gray16      = Gray[uint16]
	GrayF32     = Gray[float32]
	GrayAlpha8  = GrayAlpha[uint8]
	GrayAlpha16 = GrayAlpha[uint16]
	RGB8        = RGB[uint8]
	RGB16       = RGB[uint16]
	RGBA8       = RGBA[uint8]
	RGBA16      = RGBA[uint16]
)

// Interface checks. Pixel embeds comparable, so it cannot be used as an
// interface value; assert satisfaction by instantiating a constrained
// generic function instead.
func assertPixel[P Pixel[P, S], S Channel]() {}

var (
	_ = assertPixel[Gray8, uint8]
	_ = assertPixel[GrayAlpha8, uint8]
	_ = assertPixel[RGB8, uint8]
	_ = assertPixel[RGBA8, uint8]
)
