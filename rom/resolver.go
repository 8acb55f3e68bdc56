package rom

import (
	"bytes"

	"github.com/gbcdec/rbysprite/palette"
)

// SpriteVariant selects which of a monster's two sprites to resolve.
type SpriteVariant int

const (
	Front SpriteVariant = iota
	Back
)

const (
	baseStatsRecordSize = 28
	pokedexOrderLength  = 0xbe
	spritePointerOffset = 11 // bytes from record start to the front/back uint16 pair
	paletteMapLength    = 152
	bytesPerPalette     = 8
)

// Content fingerprints used to locate ROM tables without hardcoded
// per-version offsets. bulbasaurStats is the species id and five
// base-stat bytes that open every base-stats table; mewStats is Mew's
// distinctive all-100 stat line, which also identifies a second,
// separate record kept at a fixed low address in some ROMs.
var (
	bulbasaurStats  = []byte{1, 0x2d, 0x31, 0x31, 0x2d, 0x41}
	mewStats        = []byte{151, 100, 100, 100, 100, 100}
	paletteMapSig   = []byte{0x10, 0x16, 0x16, 0x16, 0x12, 0x12, 0x12, 0x13, 0x13, 0x13}
	pokedexOrderSig = []byte{0x70, 0x73, 0x20, 0x23, 0x15, 0x64, 0x22, 0x50}
)

// Resolver locates sprite and palette data inside one loaded ROM image
// by content signature, then answers bank-relative addressing queries
// for individual monsters.
type Resolver struct {
	rom  []byte
	info Info

	baseStatsOffset    int
	baseStatsMewOffset int // -1 when no separate fixed-address Mew record exists
	pokedexOrderOffset int
	paletteMapOffset   int
	palettesOffset     int

	internalIDs [152]int // [1..151] National Pokedex number -> internal id
}

// NewResolver detects the cartridge version and locates every table
// this package needs by scanning the ROM for fixed content signatures.
func NewResolver(data []byte) (*Resolver, error) {
	info, err := DetectInfo(data)
	if err != nil {
		return nil, err
	}

	r := &Resolver{rom: data, info: info}
	if err := r.findOffsets(); err != nil {
		return nil, err
	}
	if err := r.readInternalIDs(); err != nil {
		return nil, err
	}
	return r, nil
}

// Info returns the detected cartridge version and header flags.
func (r *Resolver) Info() Info { return r.info }

func (r *Resolver) findOffsets() error {
	idx := bytes.Index(r.rom, bulbasaurStats)
	if idx < 0 {
		return ErrSignatureNotFound
	}
	r.baseStatsOffset = idx

	mewIdx := bytes.Index(r.rom, mewStats)
	if mewIdx < 0 {
		return ErrSignatureNotFound
	}
	// A match past 0x8000 can only be Mew's ordinary entry inside the
	// main base-stats table (which lives in a banked region); the
	// dedicated low-address record, when present, is always found
	// first by this same search.
	if mewIdx > 0x8000 {
		r.baseStatsMewOffset = -1
	} else {
		r.baseStatsMewOffset = mewIdx
	}

	idx = bytes.Index(r.rom, pokedexOrderSig)
	if idx < 0 {
		return ErrSignatureNotFound
	}
	r.pokedexOrderOffset = idx

	idx = bytes.Index(r.rom, paletteMapSig)
	if idx < 0 {
		return ErrSignatureNotFound
	}
	r.paletteMapOffset = idx
	r.palettesOffset = idx + paletteMapLength

	return nil
}

func (r *Resolver) readInternalIDs() error {
	end := r.pokedexOrderOffset + pokedexOrderLength
	if end > len(r.rom) {
		return ErrTruncatedROM
	}
	order := r.rom[r.pokedexOrderOffset:end]
	for dex := 1; dex <= 151; dex++ {
		idx := bytes.IndexByte(order, byte(dex))
		if idx < 0 {
			return ErrSignatureNotFound
		}
		r.internalIDs[dex] = idx + 1
	}
	return nil
}

// InternalID returns the internal (non-Pokedex) species id the game's
// own sprite/bank tables are indexed by.
func (r *Resolver) InternalID(nationalDex int) (int, error) {
	if nationalDex < 1 || nationalDex > 151 {
		return 0, ErrUnknownMonster
	}
	return r.internalIDs[nationalDex], nil
}

// bank reproduces the game's own hardcoded sprite-bank lookup: every
// threshold below is an internal id cutoff baked into the original
// binary, not a computed value.
func (r *Resolver) bank(nationalDex int) (int, error) {
	id, err := r.InternalID(nationalDex)
	if err != nil {
		return 0, err
	}
	jp := r.info.Version.IsJapaneseOriginal()

	switch {
	case r.baseStatsMewOffset >= 0 && id == 0x15:
		return 0x1, nil
	case id == 0xb6:
		return 0xb, nil
	case id < 0x1f:
		return 0x9, nil
	case id < 0x4a:
		return 0xa, nil
	case jp && id < 0x75:
		return 0xb, nil
	case id < 0x74:
		return 0xb, nil
	case jp && id < 0x9a:
		return 0xc, nil
	case id < 0x99:
		return 0xc, nil
	default:
		return 0xd, nil
	}
}

// AbsoluteOffset converts a bank-relative pointer into an absolute ROM
// file offset: banked ROM space is windowed in 0x4000-byte pages
// starting at bank 1 (bank 0 is the always-mapped fixed page, never
// addressed this way).
func AbsoluteOffset(bank int, ptr uint16) int {
	return ((bank - 1) << 14) + int(ptr)
}

// SpriteOffset resolves the bank and absolute file offset of one
// monster's compressed sprite stream. Mew (#151) is read from its
// dedicated fixed-address record when the ROM carries one; every
// other monster is read from the 28-byte base-stats record at
// baseStatsOffset + (nationalDex-1)*28.
func (r *Resolver) SpriteOffset(nationalDex int, variant SpriteVariant) (bank int, absOffset int, err error) {
	if nationalDex < 1 || nationalDex > 151 {
		return 0, 0, ErrUnknownMonster
	}

	recordOffset := r.baseStatsOffset + (nationalDex-1)*baseStatsRecordSize
	if nationalDex == 151 && r.baseStatsMewOffset >= 0 {
		recordOffset = r.baseStatsMewOffset
	}

	ptrOffset := recordOffset + spritePointerOffset
	if ptrOffset+4 > len(r.rom) {
		return 0, 0, ErrTruncatedROM
	}

	var ptr uint16
	switch variant {
	case Front:
		ptr = uint16(r.rom[ptrOffset]) | uint16(r.rom[ptrOffset+1])<<8
	case Back:
		ptr = uint16(r.rom[ptrOffset+2]) | uint16(r.rom[ptrOffset+3])<<8
	default:
		return 0, 0, ErrUnknownMonster
	}

	bank, err = r.bank(nationalDex)
	if err != nil {
		return 0, 0, err
	}
	return bank, AbsoluteOffset(bank, ptr), nil
}

// Dimension returns the single size byte stored immediately before a
// monster's sprite pointer pair in its base-stats record.
func (r *Resolver) Dimension(nationalDex int) (byte, error) {
	if nationalDex < 1 || nationalDex > 151 {
		return 0, ErrUnknownMonster
	}
	recordOffset := r.baseStatsOffset + (nationalDex-1)*baseStatsRecordSize
	if nationalDex == 151 && r.baseStatsMewOffset >= 0 {
		recordOffset = r.baseStatsMewOffset
	}
	sizeOffset := recordOffset + spritePointerOffset - 1
	if sizeOffset >= len(r.rom) {
		return 0, ErrTruncatedROM
	}
	return r.rom[sizeOffset], nil
}

// PaletteDecoder builds a palette.Decoder for the requested color
// system. When the cartridge carries both systems' palette blocks, the
// handheld-color block immediately follows the super-console block;
// munging color 0 to white only ever applies to the super-console
// palettes.
func (r *Resolver) PaletteDecoder(system palette.System) palette.Decoder {
	off := r.palettesOffset
	if system == palette.HandheldColor && r.info.HasSGB {
		off += palette.PalettesPerSystem * bytesPerPalette
	}
	return palette.Decoder{
		Rom:            r.rom,
		MapOffset:      r.paletteMapOffset,
		PalettesOffset: off,
		System:         system,
		MungeColorZero: system == palette.SuperConsole,
	}
}
