package sprite

// deltaTable holds the two Gray-code-like nibble substitution tables
// used by the delta decode ("thing1"). deltaTable[1][i] ==
// deltaTable[0][i] ^ 15 for every i.
var deltaTable = [2][16]byte{
	{0, 1, 3, 2, 7, 6, 4, 5, 15, 14, 12, 13, 8, 9, 11, 10},
	{15, 14, 12, 13, 8, 9, 11, 10, 0, 1, 3, 2, 7, 6, 4, 5},
}

// mirrorTable is T3: the 4-bit bit-reversal table, an involution
// (T3[T3[i]] == i for all i).
var mirrorTable = func() [16]byte {
	var t [16]byte
	for i := range t {
		var r byte
		v := byte(i)
		for b := 0; b < 4; b++ {
			r = (r << 1) | (v & 1)
			v >>= 1
		}
		t[i] = r
	}
	return t
}()

// deltaDecode applies the delta-decode pass ("thing1") to ram in
// place, walking the plane column-major through its sizeX*sizeY byte
// grid. State resets to 0 at the top of each column. When mirror is
// set, each decoded nibble is additionally bit-reversed via
// mirrorTable before being written back; the running state is taken
// from the pre-reversal value, not the reversed one, so column state
// tracking is unaffected by the mirror flag.
func deltaDecode(ram []byte, sizeX, sizeY int, mirror bool) {
	for x := 0; x < sizeX; x++ {
		bit := byte(0)
		for y := 0; y < sizeY; y++ {
			i := y*sizeX + x
			hi := ram[i] >> 4 & 0xf
			lo := ram[i] & 0xf

			hi = deltaTable[bit][hi]
			bit = hi & 1
			if mirror {
				hi = mirrorTable[hi]
			}

			lo = deltaTable[bit][lo]
			bit = lo & 1
			if mirror {
				lo = mirrorTable[lo]
			}

			ram[i] = (hi << 4) | lo
		}
	}
}

// xorCombine applies the XOR combine pass ("thing2"): dst ^= src,
// byte-wise. When mirror is set, each byte of dst is nibble-bit-
// reversed before the XOR.
func xorCombine(src, dst []byte, mirror bool) {
	for i := range dst {
		if mirror {
			hi := mirrorTable[dst[i]>>4]
			lo := mirrorTable[dst[i]&0xf]
			dst[i] = (hi << 4) | lo
		}
		dst[i] ^= src[i]
	}
}

// applyTransform runs the mode-selected post-processing pass over the
// two packed plane buffers. planeOrder is the index of
// the plane filled first; mode is in {0,1,2}.
func applyTransform(mode int, planes [2][]byte, planeOrder int, sizeX, sizeY int, mirror bool) error {
	switch mode {
	case 0:
		deltaDecode(planes[0], sizeX, sizeY, mirror)
		deltaDecode(planes[1], sizeX, sizeY, mirror)
	case 1:
		r1 := planeOrder
		r2 := r1 ^ 1
		deltaDecode(planes[r1], sizeX, sizeY, mirror)
		xorCombine(planes[r1], planes[r2], mirror)
	case 2:
		r1 := planeOrder
		r2 := r1 ^ 1
		deltaDecode(planes[r2], sizeX, sizeY, false)
		deltaDecode(planes[r1], sizeX, sizeY, mirror)
		xorCombine(planes[r1], planes[r2], mirror)
	default:
		return ErrInvalidMode
	}
	return nil
}
