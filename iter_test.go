package imgrid

import "testing"

func collectGray(t *testing.T, it *RectIter[Gray8]) []uint8 {
	t.Helper()
	var out []uint8
	for p, ok := it.Next(); ok; p, ok = it.Next() {
		out = append(out, p[0])
	}
	return out
}

func equalBytes(a, b []uint8) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func TestRow(t *testing.T) {
	b := grayRamp(t, 5, 3)

	row := b.Row(1)
	if len(row) != 5 {
		t.Fatalf("Row(1) length: got %d, want 5", len(row))
	}
	for x, p := range row {
		if want := uint8(5 + x); p[0] != want {
			t.Errorf("Row(1)[%d]: got %d, want %d", x, p[0], want)
		}
	}

	// The slice writes through to the buffer.
	row[2] = Gray8{99}
	if got := b.At(2, 1); got != (Gray8{99}) {
		t.Errorf("write through Row: got %v, want {99}", got)
	}

	if b.Row(-1) != nil || b.Row(3) != nil {
		t.Error("Row out of range: want nil")
	}

	// Rows of a narrowed window stay inside the window.
	win := b.SubImage(NewRect(1, 0, 3, 3))
	wrow := win.Row(0)
	if len(wrow) != 3 || cap(wrow) != 3 {
		t.Errorf("window row len/cap: got %d/%d, want 3/3", len(wrow), cap(wrow))
	}
	if wrow[0][0] != 1 || wrow[2][0] != 3 {
		t.Errorf("window row values: got %d..%d, want 1..3", wrow[0][0], wrow[2][0])
	}
}

func TestCol(t *testing.T) {
	b := grayRamp(t, 5, 3)

	it := b.Col(2)
	if it == nil {
		t.Fatal("Col(2): got nil")
	}
	if it.Len() != 3 {
		t.Errorf("Col Len: got %d, want 3", it.Len())
	}
	for _, want := range []uint8{2, 7, 12} {
		p, ok := it.Next()
		if !ok {
			t.Fatal("Col exhausted early")
		}
		if p[0] != want {
			t.Errorf("Col value: got %d, want %d", p[0], want)
		}
	}
	if _, ok := it.Next(); ok {
		t.Error("Col yielded past the end")
	}

	if b.Col(-1) != nil || b.Col(5) != nil {
		t.Error("Col out of range: want nil")
	}
}

func TestColDoubleEnded(t *testing.T) {
	b := grayRamp(t, 5, 3)

	it := b.Col(0)
	front, _ := it.Next()
	back, _ := it.NextBack()
	if front[0] != 0 || back[0] != 10 {
		t.Errorf("front/back: got %d/%d, want 0/10", front[0], back[0])
	}
	if it.Len() != 1 {
		t.Errorf("Len after one from each end: got %d, want 1", it.Len())
	}
	mid, _ := it.Next()
	if mid[0] != 5 {
		t.Errorf("middle: got %d, want 5", mid[0])
	}
	if _, ok := it.NextBack(); ok {
		t.Error("NextBack yielded past the front cursor")
	}
}

func TestRows(t *testing.T) {
	b := grayRamp(t, 3, 4)

	it := b.Rows()
	if it.Len() != 4 {
		t.Errorf("Rows Len: got %d, want 4", it.Len())
	}
	y := 0
	for row, ok := it.Next(); ok; row, ok = it.Next() {
		if row[0][0] != uint8(3*y) {
			t.Errorf("row %d starts at %d, want %d", y, row[0][0], 3*y)
		}
		y++
	}
	if y != 4 {
		t.Errorf("yielded %d rows, want 4", y)
	}

	t.Run("back", func(t *testing.T) {
		it := b.Rows()
		last, _ := it.NextBack()
		if last[0][0] != 9 {
			t.Errorf("last row starts at %d, want 9", last[0][0])
		}
		first, _ := it.Next()
		if first[0][0] != 0 {
			t.Errorf("first row starts at %d, want 0", first[0][0])
		}
		if it.Len() != 2 {
			t.Errorf("Len: got %d, want 2", it.Len())
		}
	})

	t.Run("range", func(t *testing.T) {
		n := 0
		for y, row := range b.Rows().All() {
			if row[0][0] != uint8(3*y) {
				t.Errorf("row %d starts at %d, want %d", y, row[0][0], 3*y)
			}
			n++
		}
		if n != 4 {
			t.Errorf("ranged over %d rows, want 4", n)
		}
	})
}

func TestCols(t *testing.T) {
	b := grayRamp(t, 4, 3)

	it := b.Cols()
	if it.Len() != 4 {
		t.Errorf("Cols Len: got %d, want 4", it.Len())
	}
	x := 0
	for col, ok := it.Next(); ok; col, ok = it.Next() {
		top, _ := col.Next()
		if top[0] != uint8(x) {
			t.Errorf("column %d starts at %d, want %d", x, top[0], x)
		}
		x++
	}
	if x != 4 {
		t.Errorf("yielded %d columns, want 4", x)
	}

	t.Run("back", func(t *testing.T) {
		it := b.Cols()
		col, _ := it.NextBack()
		top, _ := col.Next()
		if top[0] != 3 {
			t.Errorf("rightmost column starts at %d, want 3", top[0])
		}
	})

	t.Run("range", func(t *testing.T) {
		for x, col := range b.Cols().All() {
			for y, want := 0, uint8(x); ; y, want = y+1, want+4 {
				p, ok := col.Next()
				if !ok {
					if y != 3 {
						t.Errorf("column %d yielded %d pixels, want 3", x, y)
					}
					break
				}
				if p[0] != want {
					t.Errorf("column %d row %d: got %d, want %d", x, y, p[0], want)
				}
			}
		}
	})
}

func TestRectIter(t *testing.T) {
	b := grayRamp(t, 5, 3)

	t.Run("single row", func(t *testing.T) {
		got := collectGray(t, b.RectIter(NewRect(1, 1, 3, 1)))
		if want := []uint8{6, 7, 8}; !equalBytes(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
	})

	t.Run("scanline order", func(t *testing.T) {
		it := b.RectIter(NewRect(1, 0, 2, 3))
		if it.Len() != 6 {
			t.Errorf("Len: got %d, want 6", it.Len())
		}
		got := collectGray(t, it)
		if want := []uint8{1, 2, 6, 7, 11, 12}; !equalBytes(got, want) {
			t.Errorf("got %v, want %v", got, want)
		}
		if it.Len() != 0 {
			t.Errorf("Len after drain: got %d, want 0", it.Len())
		}
	})

	t.Run("fresh per call", func(t *testing.T) {
		r := NewRect(0, 0, 2, 1)
		first := collectGray(t, b.RectIter(r))
		second := collectGray(t, b.RectIter(r))
		if !equalBytes(first, second) {
			t.Errorf("second iterator differs: %v vs %v", first, second)
		}
	})

	t.Run("empty", func(t *testing.T) {
		it := b.RectIter(NewRect(2, 2, 0, 0))
		if it.Len() != 0 {
			t.Errorf("Len: got %d, want 0", it.Len())
		}
		if _, ok := it.Next(); ok {
			t.Error("empty iterator yielded a pixel")
		}
	})

	t.Run("out of bounds", func(t *testing.T) {
		mustPanic(t, "RectIter", func() { b.RectIter(NewRect(3, 0, 3, 1)) })
	})
}

func TestPixels(t *testing.T) {
	b := grayRamp(t, 4, 2)

	it := b.Pixels()
	if it.Len() != 8 {
		t.Errorf("Len: got %d, want 8", it.Len())
	}
	got := collectGray(t, it)
	if want := []uint8{0, 1, 2, 3, 4, 5, 6, 7}; !equalBytes(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}

	// Writing through the yielded pointer mutates the buffer.
	first, _ := b.Pixels().Next()
	first[0] = 200
	if b.At(0, 0) != (Gray8{200}) {
		t.Error("write through Pixels pointer not visible")
	}
}

func TestPixelsRange(t *testing.T) {
	b := grayRamp(t, 3, 3)
	var sum int
	for p := range b.Pixels().All() {
		sum += int(p[0])
	}
	if sum != 36 {
		t.Errorf("sum: got %d, want 36", sum)
	}
}

func TestEnumeratePixels(t *testing.T) {
	b := grayRamp(t, 3, 2)

	var coords []Coord
	var vals []uint8
	for c, p := range b.EnumeratePixels() {
		coords = append(coords, c)
		vals = append(vals, p[0])
	}
	wantCoords := []Coord{
		{0, 0}, {0, 1}, {0, 2},
		{1, 0}, {1, 1}, {1, 2},
	}
	if len(coords) != len(wantCoords) {
		t.Fatalf("yielded %d cells, want %d", len(coords), len(wantCoords))
	}
	for i := range coords {
		if coords[i] != wantCoords[i] {
			t.Errorf("coord %d: got %v, want %v", i, coords[i], wantCoords[i])
		}
		if vals[i] != uint8(i) {
			t.Errorf("value %d: got %d, want %d", i, vals[i], i)
		}
	}
}

func TestEnumeratePixelsOnWindow(t *testing.T) {
	b := grayRamp(t, 5, 3)
	v := b.SubImage(NewRect(1, 1, 3, 2))

	var got []uint8
	for c, p := range v.EnumeratePixels() {
		// Indices are window local.
		if c.Y < 0 || c.Y >= 2 || c.X < 0 || c.X >= 3 {
			t.Errorf("coord %v outside window", c)
		}
		got = append(got, p[0])
	}
	if want := []uint8{6, 7, 8, 11, 12, 13}; !equalBytes(got, want) {
		t.Errorf("got %v, want %v", got, want)
	}
}
