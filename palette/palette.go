package palette

import "github.com/gbcdec/rbysprite/imagebuf"

// System selects which of the two supported color systems' palette
// block to decode: 40 palettes are stored for each color system
// present on the cartridge.
type System int

const (
	// SuperConsole is the console add-on palette set.
	SuperConsole System = iota
	// HandheldColor is the color handheld's own palette set.
	HandheldColor
)

const (
	entriesPerPalette = 4
	bytesPerPalette   = entriesPerPalette * 2
)

// DecodeWord unpacks one little-endian 15-bit-RGB palette word.
// word & 0x1f -> R, (word>>5) & 0x1f -> G, (word>>10) & 0x1f -> B. The
// top bit is ignored. Every returned channel is in [0,31].
func DecodeWord(word uint16) imagebuf.RGB {
	return imagebuf.RGB{
		R: uint8(word & 0x1f),
		G: uint8((word >> 5) & 0x1f),
		B: uint8((word >> 10) & 0x1f),
	}
}

// DecodeFour reads four consecutive little-endian 16-bit palette words
// from data and returns their decoded colors. Returns ErrPaletteShort
// if fewer than 8 bytes are available.
func DecodeFour(data []byte) ([entriesPerPalette]imagebuf.RGB, error) {
	var out [entriesPerPalette]imagebuf.RGB
	if len(data) < bytesPerPalette {
		return out, ErrPaletteShort
	}
	for i := 0; i < entriesPerPalette; i++ {
		word := uint16(data[i*2]) | uint16(data[i*2+1])<<8
		out[i] = DecodeWord(word)
	}
	return out, nil
}

// Munge rewrites color 0 of a super-console palette to white
// (31,31,31); some cartridges rely on the hardware's own background
// color to fill that entry instead of storing white directly. It is a
// no-op for any system other than SuperConsole.
func Munge(system System, pal *[entriesPerPalette]imagebuf.RGB) {
	if system != SuperConsole {
		return
	}
	pal[0] = imagebuf.RGB{R: 31, G: 31, B: 31}
}

// PalettesPerSystem is the number of palette-map-indexed palettes
// stored in each color system's block.
const PalettesPerSystem = 40

// Decoder resolves and decodes a monster's palette from a palette-map
// table and a 40-palette block in ROM. PalettesOffset
// must already point at the start of this Decoder's System's own
// block; when a cartridge carries both color systems' blocks back to
// back, the rom package is responsible for shifting PalettesOffset by
// PalettesPerSystem*8 bytes for whichever block comes second — Decoder
// itself has no opinion on block ordering.
type Decoder struct {
	Rom            []byte
	MapOffset      int // offset of the 152-byte palette-map table
	PalettesOffset int // offset of this System's first palette
	System         System
	MungeColorZero bool
}

// Palette returns the four decoded colors for monsterIndex (the
// National Pokedex number, 1-151), per the palette-map table's own
// indexing.
func (d *Decoder) Palette(monsterIndex int) ([entriesPerPalette]imagebuf.RGB, error) {
	var out [entriesPerPalette]imagebuf.RGB
	mapIdx := d.MapOffset + monsterIndex
	if mapIdx < 0 || mapIdx >= len(d.Rom) {
		return out, ErrPaletteShort
	}
	paletteIdx := int(d.Rom[mapIdx])

	off := d.PalettesOffset + paletteIdx*bytesPerPalette
	if off < 0 || off+bytesPerPalette > len(d.Rom) {
		return out, ErrPaletteShort
	}

	out, err := DecodeFour(d.Rom[off : off+bytesPerPalette])
	if err != nil {
		return out, err
	}
	if d.MungeColorZero {
		Munge(d.System, &out)
	}
	return out, nil
}
