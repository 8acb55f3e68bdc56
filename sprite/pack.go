package sprite

import "github.com/gbcdec/rbysprite/bitio"

// pack4 packs successive groups of four 2-bit values MSB-first into
// bytes: (b0<<6)|(b1<<4)|(b2<<2)|b3. len(vals) must be a multiple of 4.
func pack4(vals []byte) []byte {
	out := make([]byte, len(vals)/4)
	for i := range out {
		b0, b1, b2, b3 := vals[i*4], vals[i*4+1], vals[i*4+2], vals[i*4+3]
		out[i] = (b0 << 6) | (b1 << 4) | (b2 << 2) | b3
	}
	return out
}

// unpack2 unpacks count 2-bit samples MSB-first from data.
func unpack2(data []byte, count int) ([]byte, error) {
	r := bitio.NewReader(data)
	out := make([]byte, count)
	for i := range out {
		v, err := r.ReadUint(2)
		if err != nil {
			return nil, err
		}
		out[i] = byte(v)
	}
	return out, nil
}
