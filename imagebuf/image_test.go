package imagebuf

import "testing"

func TestImageAtIndexesRowMajor(t *testing.T) {
	img := &Image{
		Width:  3,
		Height: 2,
		Pixels: []byte{0, 1, 2, 3, 0, 1},
	}
	if img.At(2, 0) != 2 {
		t.Errorf("got %d, want 2", img.At(2, 0))
	}
	if img.At(0, 1) != 3 {
		t.Errorf("got %d, want 3", img.At(0, 1))
	}
}
