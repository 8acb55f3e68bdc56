package sprite

import (
	"github.com/gbcdec/rbysprite/bitio"
	"github.com/gbcdec/rbysprite/imagebuf"
)

// Decode reconstructs a 2-bits-per-pixel image from a compressed
// sprite stream. mirror selects an experimental horizontal-flip mode;
// it defaults to false for every known production sprite.
//
// Decode is a pure function: decoding the same bytes with the same
// mirror flag always returns a byte-identical Image. No partial Image
// is ever returned on error.
func Decode(data []byte, mirror bool) (*imagebuf.Image, error) {
	r := bitio.NewReader(data)

	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	sizeX, sizeY := h.sizeX(), h.sizeY()

	r1 := h.PlaneOrder
	r2 := r1 ^ 1

	var filled [2][]byte
	filled[r1], err = fillPlane(r, h)
	if err != nil {
		return nil, err
	}

	modeBit, err := r.ReadUint(1)
	if err != nil {
		return nil, err
	}
	mode := int(modeBit)
	if mode == 1 {
		extra, err := r.ReadUint(1)
		if err != nil {
			return nil, err
		}
		mode = 1 + int(extra)
	}

	filled[r2], err = fillPlane(r, h)
	if err != nil {
		return nil, err
	}

	planes := [2][]byte{pack4(filled[0]), pack4(filled[1])}

	if err := applyTransform(mode, planes, h.PlaneOrder, sizeX, sizeY, mirror); err != nil {
		return nil, err
	}

	pixelBits := interleavePlanes(planes[0], planes[1])
	tiled := pack4(pixelBits)
	raster := untile(tiled, h, mirror)

	width, height := sizeX, sizeY*8
	pixels, err := unpack2(raster, width*height)
	if err != nil {
		return nil, err
	}

	return &imagebuf.Image{Width: width, Height: height, Pixels: pixels}, nil
}

// interleavePlanes combines two equal-length packed planes bit-by-bit
// into 2-bit pixel values: pixel = p0bit | (p1bit << 1).
func interleavePlanes(p0, p1 []byte) []byte {
	r0 := bitio.NewReader(p0)
	r1 := bitio.NewReader(p1)
	out := make([]byte, 8*len(p0))
	for i := range out {
		b0, _ := r0.ReadBit()
		b1, _ := r1.ReadBit()
		out[i] = byte(b0) | byte(b1)<<1
	}
	return out
}
