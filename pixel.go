package imgrid

// Channel is the set of numeric types usable as a pixel channel (subpixel).
type Channel interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int |
		~float32 | ~float64
}

// IntChannel is the subset of Channel supporting the remainder operator.
type IntChannel interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint |
		~int8 | ~int16 | ~int32 | ~int64 | ~int
}

// Pixel is the contract for the element types stored in an image. A pixel is
// a value type with a fixed channel count, compared with ==.
//
// FromSlice does not check the length of its argument; passing a slice
// shorter than the channel count is a programming error and faults with an
// index out of range. The concrete pixel types in this package additionally
// provide pointer-receiver SetSlice and ChannelsMut methods with the same
// length contract.
type Pixel[P any, S Channel] interface {
	comparable

	// Channels returns the channel values of the pixel. The returned slice
	// is a copy; writing to it does not modify the pixel.
	Channels() []S

	// FromSlice builds a pixel from the first channel-count values of s.
	// The receiver is ignored, so it may be the zero value.
	FromSlice(s []S) P

	// Map applies f to every channel and returns the resulting pixel.
	Map(f func(S) S) P

	// Zip combines the pixel with q channel by channel using f.
	Zip(q P, f func(S, S) S) P

	// Sum returns the sum of all channels.
	Sum() S
}
