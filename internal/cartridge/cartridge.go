// Package cartridge provides the cartridge store for the DMG. The
// cartridge holds the game ROM and any external RAM. Memory bank
// controllers are not emulated, the ROM is addressed as a flat image.
package cartridge

import (
	"errors"
	"fmt"

	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

// ErrIOFailure is returned when a cartridge image could not be
// opened or fully read.
var ErrIOFailure = errors.New("cartridge: unable to read image")

// Cartridge represents a basic game cartridge. Read and Write take the
// absolute bus address, for both the ROM and the external RAM.
type Cartridge struct {
	rom []byte
	ram [types.ERAMSize]uint8

	header      Header
	fingerprint uint64
}

// New returns a cartridge holding rom. The header is parsed from rom,
// images too short to hold one are accepted with zeroed header fields.
func New(rom []byte) *Cartridge {
	return &Cartridge{
		rom:         rom,
		header:      parseHeader(rom),
		fingerprint: xxhash.Sum64(rom),
	}
}

// NewEmptyCartridge returns an empty cartridge, as if no cartridge
// were inserted.
func NewEmptyCartridge() *Cartridge {
	return New([]byte{})
}

// Load reads the cartridge image at path, decompressing archives
// where needed.
func Load(path string) (*Cartridge, error) {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w %s: %w", ErrIOFailure, path, err)
	}
	return New(rom), nil
}

// Read returns the byte at the absolute address. Reads past the end of
// the ROM image return 0xFF, the value of an undriven bus.
func (c *Cartridge) Read(address uint16) uint8 {
	switch {
	case address <= types.ROMEnd:
		if int(address) < len(c.rom) {
			return c.rom[address]
		}
		return 0xFF
	case address >= types.ERAMStart && address <= types.ERAMEnd:
		return c.ram[address-types.ERAMStart]
	}
	return 0xFF
}

// Write writes to the external RAM. Writes to the ROM area are
// dropped, on hardware they would program the memory bank controller.
// Write reports whether the value was stored.
func (c *Cartridge) Write(address uint16, value uint8) bool {
	if address >= types.ERAMStart && address <= types.ERAMEnd {
		c.ram[address-types.ERAMStart] = value
		return true
	}
	return false
}

func (c *Cartridge) Header() Header {
	return c.header
}

// Title returns the cartridge title.
func (c *Cartridge) Title() string {
	return c.header.Title
}

// Fingerprint returns the xxhash of the ROM image, used to tie save
// states to the cartridge they were taken from.
func (c *Cartridge) Fingerprint() uint64 {
	return c.fingerprint
}

// Size returns the size of the ROM image in bytes.
func (c *Cartridge) Size() int {
	return len(c.rom)
}

// ResetRAM clears the external RAM.
func (c *Cartridge) ResetRAM() {
	c.ram = [types.ERAMSize]uint8{}
}

var _ types.Stater = (*Cartridge)(nil)

// Load restores the external RAM, the ROM is never part of a state.
func (c *Cartridge) Load(s *types.State) {
	s.ReadData(c.ram[:])
}

func (c *Cartridge) Save(s *types.State) {
	s.WriteData(c.ram[:])
}
