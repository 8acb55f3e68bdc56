package sprite

// untile rewrites a column-major-by-tile byte buffer into raster (row-
// major) order. tiled must have length sizeX*sizeY*2 bytes; the
// returned buffer has the same length.
func untile(tiled []byte, h Header, mirror bool) []byte {
	sizeYpx := h.sizeY() * 8
	cols := h.TileW // sizeX/8

	out := make([]byte, 0, len(tiled))
	if !mirror {
		for y := 0; y < sizeYpx; y++ {
			for x := 0; x < cols; x++ {
				k := (y + sizeYpx*x) * 2
				out = append(out, tiled[k], tiled[k+1])
			}
		}
		return out
	}
	for y := 0; y < sizeYpx; y++ {
		for x := cols - 1; x >= 0; x-- {
			k := (y + sizeYpx*x) * 2
			out = append(out, tiled[k+1], tiled[k])
		}
	}
	return out
}
