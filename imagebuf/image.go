// Package imagebuf holds the decoded-sprite value type shared by the
// sprite, rom, and palette packages. It is a plain data model, not a
// codec: encoding into a concrete image file format is out of scope.
package imagebuf

// RGB is a single 5-bit-per-channel color, channel values in [0,31].
type RGB struct {
	R, G, B uint8
}

// Image is a decoded sprite: a linear raster of 2-bit pixel samples
// (values 0..3), width*height long, plus an optional 4-entry palette.
type Image struct {
	Width   int
	Height  int
	Pixels  []byte // one sample per byte, value in [0,3]; len == Width*Height
	Palette *[4]RGB
}

// At returns the 2-bit sample at (x, y).
func (img *Image) At(x, y int) byte {
	return img.Pixels[y*img.Width+x]
}
