package imgrid

import "testing"

func TestPixelChannels(t *testing.T) {
	p := RGB8{1, 2, 3}
	ch := p.Channels()
	if len(ch) != 3 || ch[0] != 1 || ch[1] != 2 || ch[2] != 3 {
		t.Errorf("Channels: got %v, want [1 2 3]", ch)
	}

	// The returned slice is a copy; writing through it must not change the
	// pixel.
	ch[0] = 99
	if p[0] != 1 {
		t.Errorf("Channels aliases the pixel: got %v", p)
	}
}

func TestPixelChannelsMut(t *testing.T) {
	p := RGB8{1, 2, 3}
	p.ChannelsMut()[0] = 99
	if p[0] != 99 {
		t.Errorf("ChannelsMut did not alias the pixel: got %v", p)
	}
}

func TestPixelFromSlice(t *testing.T) {
	var zero RGBA8
	p := zero.FromSlice([]uint8{1, 2, 3, 4})
	if p != (RGBA8{1, 2, 3, 4}) {
		t.Errorf("FromSlice: got %v", p)
	}

	// Extra values are ignored.
	g := Gray8{}.FromSlice([]uint8{7, 8, 9})
	if g != (Gray8{7}) {
		t.Errorf("FromSlice with long slice: got %v", g)
	}
}

func TestPixelFromSliceShortPanics(t *testing.T) {
	mustPanic(t, "FromSlice", func() {
		RGB8{}.FromSlice([]uint8{1, 2})
	})
}

func TestPixelSetSlice(t *testing.T) {
	var p GrayAlpha8
	p.SetSlice([]uint8{5, 6})
	if p != (GrayAlpha8{5, 6}) {
		t.Errorf("SetSlice: got %v", p)
	}
	mustPanic(t, "SetSlice", func() {
		p.SetSlice([]uint8{1})
	})
}

func TestPixelMap(t *testing.T) {
	p := RGB8{1, 2, 3}.Map(func(v uint8) uint8 { return v * 2 })
	if p != (RGB8{2, 4, 6}) {
		t.Errorf("Map: got %v", p)
	}
}

func TestPixelZip(t *testing.T) {
	p := RGBA8{1, 2, 3, 4}.Zip(RGBA8{10, 20, 30, 40}, func(a, b uint8) uint8 { return a + b })
	if p != (RGBA8{11, 22, 33, 44}) {
		t.Errorf("Zip: got %v", p)
	}
}

func TestPixelSum(t *testing.T) {
	if got := (RGB8{1, 2, 3}).Sum(); got != 6 {
		t.Errorf("Sum: got %d, want 6", got)
	}
	if got := (GrayF32{1.5}).Sum(); got != 1.5 {
		t.Errorf("Sum: got %v, want 1.5", got)
	}
	if got := (Gray8{}).Sum(); got != 0 {
		t.Errorf("Sum of zero pixel: got %d, want 0", got)
	}
}

func mustPanic(t *testing.T, name string, f func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	f()
}
