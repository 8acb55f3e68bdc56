package rom

import "testing"

func header(title string, country, sgb, gbc byte) []byte {
	rom := make([]byte, 0x200)
	copy(rom[headerOffset:], title)
	rom[headerOffset+22] = country
	rom[headerOffset+18] = sgb
	rom[headerOffset+15] = gbc
	return rom
}

func TestDetectInfoRed(t *testing.T) {
	info, err := DetectInfo(header("POKEMON RED", 1, 0x03, 0x80))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != Red {
		t.Errorf("got %v, want Red", info.Version)
	}
	if !info.HasSGB || !info.HasGBC {
		t.Errorf("got HasSGB=%v HasGBC=%v, want both true", info.HasSGB, info.HasGBC)
	}
}

func TestDetectInfoRedJapanese(t *testing.T) {
	info, err := DetectInfo(header("POKEMON RED", 0, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != RedJP {
		t.Errorf("got %v, want RedJP", info.Version)
	}
}

func TestDetectInfoGreenIsAlwaysJapanese(t *testing.T) {
	info, err := DetectInfo(header("POKEMON GREEN", 1, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != GreenJP {
		t.Errorf("got %v, want GreenJP", info.Version)
	}
}

func TestDetectInfoBlueAndYellow(t *testing.T) {
	info, err := DetectInfo(header("POKEMON BLUE", 1, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != Blue {
		t.Errorf("got %v, want Blue", info.Version)
	}

	info, err = DetectInfo(header("POKEMON YELLOW", 1, 0, 0))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if info.Version != Yellow {
		t.Errorf("got %v, want Yellow", info.Version)
	}
}

func TestDetectInfoUnknownTitle(t *testing.T) {
	if _, err := DetectInfo(header("SOMETHING ELSE", 1, 0, 0)); err != ErrUnknownVersion {
		t.Errorf("got %v, want ErrUnknownVersion", err)
	}
}

func TestDetectInfoTruncated(t *testing.T) {
	if _, err := DetectInfo(make([]byte, 0x10)); err != ErrTruncatedROM {
		t.Errorf("got %v, want ErrTruncatedROM", err)
	}
}

func TestIsJapaneseOriginal(t *testing.T) {
	for _, v := range []Version{RedJP, GreenJP} {
		if !v.IsJapaneseOriginal() {
			t.Errorf("%v: want IsJapaneseOriginal true", v)
		}
	}
	for _, v := range []Version{Red, Blue, Yellow} {
		if v.IsJapaneseOriginal() {
			t.Errorf("%v: want IsJapaneseOriginal false", v)
		}
	}
}
