package sprite

import "testing"

func TestDeltaTableIsComplementPair(t *testing.T) {
	for i := 0; i < 16; i++ {
		if deltaTable[1][i] != deltaTable[0][i]^15 {
			t.Errorf("deltaTable[1][%d] = %d, want %d", i, deltaTable[1][i], deltaTable[0][i]^15)
		}
	}
}

func TestMirrorTableIsInvolution(t *testing.T) {
	for i := 0; i < 16; i++ {
		if mirrorTable[mirrorTable[i]] != byte(i) {
			t.Errorf("mirrorTable[mirrorTable[%d]] = %d, want %d", i, mirrorTable[mirrorTable[i]], i)
		}
	}
}

func TestDeltaDecodeSingleByte(t *testing.T) {
	// hi=0xA,lo=0xB: deltaTable[0][0xA]=0xC (bit->0), deltaTable[0][0xB]=0xD
	ram := []byte{0xAB}
	deltaDecode(ram, 1, 1, false)
	if ram[0] != 0xCD {
		t.Errorf("got %#x, want 0xcd", ram[0])
	}

	ram = []byte{0x12}
	deltaDecode(ram, 1, 1, false)
	if ram[0] != 0x1C {
		t.Errorf("got %#x, want 0x1c", ram[0])
	}
}

func TestXorCombineNoMirror(t *testing.T) {
	src := []byte{0xCD}
	dst := []byte{0x1C}
	xorCombine(src, dst, false)
	if dst[0] != 0xD1 {
		t.Errorf("got %#x, want 0xd1", dst[0])
	}
}

func TestApplyTransformMode0(t *testing.T) {
	planes := [2][]byte{{0xAB}, {0x12}}
	if err := applyTransform(0, planes, 0, 1, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if planes[0][0] != 0xCD || planes[1][0] != 0x1C {
		t.Errorf("got %#x %#x, want 0xcd 0x1c", planes[0][0], planes[1][0])
	}
}

func TestApplyTransformMode1(t *testing.T) {
	planes := [2][]byte{{0xAB}, {0x12}}
	if err := applyTransform(1, planes, 0, 1, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if planes[0][0] != 0xCD {
		t.Errorf("r1 got %#x, want 0xcd", planes[0][0])
	}
	if planes[1][0] != 0xDF {
		t.Errorf("r2 got %#x, want 0xdf", planes[1][0])
	}
}

func TestApplyTransformMode2(t *testing.T) {
	planes := [2][]byte{{0xAB}, {0x12}}
	if err := applyTransform(2, planes, 0, 1, 1, false); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if planes[0][0] != 0xCD {
		t.Errorf("r1 got %#x, want 0xcd", planes[0][0])
	}
	if planes[1][0] != 0xD1 {
		t.Errorf("r2 got %#x, want 0xd1", planes[1][0])
	}
}

func TestApplyTransformUnknownMode(t *testing.T) {
	planes := [2][]byte{{0}, {0}}
	if err := applyTransform(3, planes, 0, 1, 1, false); err != ErrInvalidMode {
		t.Errorf("got %v, want ErrInvalidMode", err)
	}
}
