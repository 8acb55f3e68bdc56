// Package rom resolves sprite and palette locations within a Red/Green/
// Blue/Yellow cartridge ROM image by content signature, mirroring the
// fixed-bank addressing scheme the game's own bank-switching code uses.
package rom

import "errors"

var (
	// ErrUnknownVersion is returned when the cartridge header's title
	// does not match any of the five known releases.
	ErrUnknownVersion = errors.New("rom: unknown cartridge version")
	// ErrSignatureNotFound is returned when a required content
	// fingerprint cannot be located anywhere in the ROM image.
	ErrSignatureNotFound = errors.New("rom: signature not found")
	// ErrTruncatedROM is returned when a resolved offset runs past the
	// end of the supplied ROM image.
	ErrTruncatedROM = errors.New("rom: truncated ROM image")
	// ErrUnknownMonster is returned for a National Pokedex number
	// outside the supported 1-151 range.
	ErrUnknownMonster = errors.New("rom: unknown monster index")
)
