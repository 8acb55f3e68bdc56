package rom

// Version identifies one of the five Generation I cartridge releases
// supported by this package.
type Version int

const (
	Red Version = iota
	RedJP
	GreenJP
	Blue
	Yellow
)

func (v Version) String() string {
	switch v {
	case Red:
		return "red"
	case RedJP:
		return "red.jp"
	case GreenJP:
		return "green.jp"
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	default:
		return "unknown"
	}
}

// IsJapaneseOriginal reports whether v is one of the two original
// Japanese-only releases, which shift the bank boundaries used by
// bank.
func (v Version) IsJapaneseOriginal() bool {
	return v == RedJP || v == GreenJP
}

const headerOffset = 0x134

// Info is the cartridge header information DetectInfo extracts: the
// release, its raw title bytes, the SGB country byte, and which
// color systems the cartridge declares support for.
type Info struct {
	Version Version
	Title   string
	Country byte
	HasSGB  bool
	HasGBC  bool
}

// DetectInfo reads the cartridge header at 0x134 and identifies the
// release. The title comparison and byte offsets (SGB flag at +18,
// GBC flag at +15, country byte at +22) match the cartridge header
// layout exactly.
func DetectInfo(rom []byte) (Info, error) {
	if len(rom) < headerOffset+23 {
		return Info{}, ErrTruncatedROM
	}

	rawTitle := rom[headerOffset : headerOffset+15]
	title := trimTrailingZeros(rawTitle)
	country := rom[headerOffset+22]
	hasSGB := rom[headerOffset+18] == 0x03
	hasGBC := rom[headerOffset+15] == 0x80

	var v Version
	switch title {
	case "POKEMON RED":
		if country == 0 {
			v = RedJP
		} else {
			v = Red
		}
	case "POKEMON GREEN":
		v = GreenJP
	case "POKEMON BLUE":
		v = Blue
	case "POKEMON YELLOW":
		v = Yellow
	default:
		return Info{}, ErrUnknownVersion
	}

	return Info{Version: v, Title: title, Country: country, HasSGB: hasSGB, HasGBC: hasGBC}, nil
}

func trimTrailingZeros(b []byte) string {
	end := len(b)
	for end > 0 && b[end-1] == 0 {
		end--
	}
	return string(b[:end])
}
