// Package sprite implements the Generation-I monster sprite
// decompressor: a bit-oriented codec that reconstructs a 2-bits-per-
// pixel planar image from a compact run-length/literal encoded stream.
package sprite

import "errors"

var (
	// ErrOverflow is returned when a chunk would grow a plane beyond
	// its declared size.
	ErrOverflow = errors.New("sprite: chunk overflows plane")

	// ErrInvalidHeader is returned when tile_w or tile_h decodes to 0.
	ErrInvalidHeader = errors.New("sprite: invalid header (tile_w or tile_h is zero)")

	// ErrInvalidMode is returned when the decoded mode value falls
	// outside {0,1,2}. Not producible by the on-disk encoding (mode is
	// read from one or two bits between the two plane fills, which only
	// ever map to 0, 1, or 2); guarded defensively.
	ErrInvalidMode = errors.New("sprite: invalid mode")
)
