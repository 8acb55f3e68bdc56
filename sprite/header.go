package sprite

import "github.com/gbcdec/rbysprite/bitio"

// Header is the 9-bit sprite stream header.
type Header struct {
	TileW      int // 8-pixel columns; image width in pixels = TileW*8
	TileH      int // 8-pixel row-groups; image height in pixels = TileH*8
	PlaneOrder int // 0 or 1: which plane is filled first
}

// sizeX returns the pixel width of the tile-strip grid: sizex = tile_w*8.
func (h Header) sizeX() int { return h.TileW * 8 }

// sizeY returns the unit-row count of the tile-strip grid: sizey =
// tile_h. This is tile_h itself, not tile_h*8 — each unit row groups 4
// actual pixel rows via the bit-group deinterleave, see planefiller.go.
func (h Header) sizeY() int { return h.TileH }

func readHeader(r *bitio.Reader) (Header, error) {
	tileW, err := r.ReadUint(4)
	if err != nil {
		return Header{}, err
	}
	tileH, err := r.ReadUint(4)
	if err != nil {
		return Header{}, err
	}
	planeOrder, err := r.ReadUint(1)
	if err != nil {
		return Header{}, err
	}
	if tileW == 0 || tileH == 0 {
		return Header{}, ErrInvalidHeader
	}
	return Header{TileW: int(tileW), TileH: int(tileH), PlaneOrder: int(planeOrder)}, nil
}
