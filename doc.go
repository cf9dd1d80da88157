// Package imgrid implements a generic 2D pixel-grid container with owned
// buffers and zero-copy windows over the same storage.
//
// A [Buffer] owns (or mutably windows) a row-major grid of fixed-channel
// pixels; a [View] is a read-only window into another buffer's storage. Both
// share one set of algorithms for indexing, iteration, sub-region addressing
// and elementwise arithmetic, exposed through the [Image] interface.
package imgrid
