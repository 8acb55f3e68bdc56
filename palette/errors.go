// Package palette decodes Generation-I packed 15-bit RGB sprite
// palettes.
package palette

import "errors"

var (
	// ErrPaletteShort is returned when fewer than 8 bytes (four
	// little-endian 16-bit words) are available to decode a palette.
	ErrPaletteShort = errors.New("palette: fewer than 8 bytes available")
)
