package imgrid

// View is a read-only window referencing another buffer's storage. It is
// created by SubImage or View on a Buffer (or another View) and shares the
// source's pixels; it adds no mutating methods, and callers must not write
// through the slices or pointers its accessors expose.
//
// A View is safe for concurrent readers as long as no writer mutates the
// overlapped region of the source buffer.
type View[P comparable] struct {
	reader[P]
}

// Interface checks.
var (
	_ Image[Gray8] = (*View[Gray8])(nil)
	_ Sized        = (*View[Gray8])(nil)
)
