package sprite

import "github.com/gbcdec/rbysprite/bitio"

// runLengthWidth[k] = (2<<k) - 1, the run length contributed by a
// unary prefix of k one-bits before the suffix is added.
var runLengthWidth = [16]int{}

func init() {
	for k := range runLengthWidth {
		runLengthWidth[k] = (2 << uint(k)) - 1
	}
}

// fillPlane reads one plane's worth of N = sizeX*sizeY*4 2-bit values
// by alternating RLE and literal chunks, then applies the bit-group
// deinterleave and returns the result.
func fillPlane(r *bitio.Reader, h Header) ([]byte, error) {
	sizeX, sizeY := h.sizeX(), h.sizeY()
	n := sizeX * sizeY * 4

	startMode, err := r.ReadUint(1)
	if err != nil {
		return nil, err
	}
	rle := startMode == 0

	buf := make([]byte, 0, n)
	for len(buf) < n {
		if rle {
			buf, err = appendRLERun(r, buf, n)
		} else {
			buf, err = appendLiteralChunk(r, buf, n)
		}
		if err != nil {
			return nil, err
		}
		rle = !rle
	}
	if len(buf) > n {
		return nil, ErrOverflow
	}
	return deinterleaveBitGroups(buf, sizeX, sizeY), nil
}

// appendRLERun reads one run-length chunk (a run of zero 2-bit values)
// and appends it to buf.
func appendRLERun(r *bitio.Reader, buf []byte, n int) ([]byte, error) {
	k := 0
	for {
		bit, err := r.ReadBit()
		if err != nil {
			return nil, err
		}
		if bit == 0 {
			break
		}
		k++
	}
	a, err := r.ReadUint(k + 1)
	if err != nil {
		return nil, err
	}
	count := runLengthWidth[k] + int(a)
	if len(buf)+count > n {
		return nil, ErrOverflow
	}
	for i := 0; i < count; i++ {
		buf = append(buf, 0)
	}
	return buf, nil
}

// appendLiteralChunk reads 2-bit values until a 00 terminator (not
// emitted) or until the plane reaches its declared size, whichever
// comes first. The exact-fill guard matters for sprites whose final
// emission exactly fills the plane with no trailing terminator.
func appendLiteralChunk(r *bitio.Reader, buf []byte, n int) ([]byte, error) {
	for {
		v, err := r.ReadUint(2)
		if err != nil {
			return nil, err
		}
		if v == 0 {
			break
		}
		buf = append(buf, byte(v))
		if len(buf) >= n {
			break
		}
	}
	return buf, nil
}

// deinterleaveBitGroups rewrites a column-major stream of 2-bit groups
// into the row-major order where four consecutive output groups come
// from four rows of the source spaced sizeX apart.
func deinterleaveBitGroups(src []byte, sizeX, sizeY int) []byte {
	out := make([]byte, 0, len(src))
	for y := 0; y < sizeY; y++ {
		for x := 0; x < sizeX; x++ {
			i := 4*y*sizeX + x
			for j := 0; j < 4; j++ {
				out = append(out, src[i])
				i += sizeX
			}
		}
	}
	return out
}
