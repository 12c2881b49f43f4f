// Package mmu provides a memory management unit for the Game Boy. The
// MMU is unaware of the other components, and routes every read and
// write to the region handler owning the address.
package mmu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/internal/ram"
	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// MMU is the memory management unit for the Game Boy. It handles all
// memory reads and writes to the Game Boy's 64kB of memory, and
// delegates to the backing stores through the Region interface.
type MMU struct {
	// 64kB address space, nil entries are unmapped
	raw [65536]Region

	// 0x0000 - 0x7FFF - ROM (32kB)
	// 0xA000 - 0xBFFF - External RAM (8kB)
	Cart *cartridge.Cartridge

	// 0x8000 - 0x9FFF - Video RAM (8kB)
	// 0xFE00 - 0xFE9F - Sprite Attribute Table (160B)
	Video *ppu.PPU

	// 0xC000 - 0xDFFF - Work RAM (8kB)
	// 0xE000 - 0xFDFF - Echo RAM (7.5kB)
	wRAM *ram.RAM

	// 0xFF80 - 0xFFFE - Zero Page RAM (127B)
	zRAM *ram.RAM

	Log log.Logger
}

// NewMMU returns a new MMU routing to cart and video.
func NewMMU(cart *cartridge.Cartridge, video *ppu.PPU, logger log.Logger) *MMU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	m := &MMU{
		Cart:  cart,
		Video: video,
		wRAM:  ram.NewRAM(types.WRAMSize),
		zRAM:  ram.NewRAM(types.HRAMSize),
		Log:   logger,
	}
	m.init()

	return m
}

func (m *MMU) init() {
	cart := &cartridgeRegion{m: m}

	m.mapRegion(types.ROMStart, types.ROMEnd, cart)
	m.mapRegion(types.VRAMStart, types.VRAMEnd, Offset(types.VRAMStart, m.Video.VRAM))
	m.mapRegion(types.ERAMStart, types.ERAMEnd, cart)
	m.mapRegion(types.WRAMStart, types.WRAMEnd, Offset(types.WRAMStart, m.wRAM))
	m.mapRegion(types.EchoStart, types.EchoEnd, Echo(m.wRAM))
	m.mapRegion(types.OAMStart, types.OAMEnd, Offset(types.OAMStart, m.Video.OAM))
	m.mapRegion(types.HRAMStart, types.HRAMEnd, Offset(types.HRAMStart, m.zRAM))
}

func (m *MMU) mapRegion(start, end uint16, r Region) {
	for i := int(start); i <= int(end); i++ {
		m.raw[i] = r
	}
}

// Map attaches an external region, such as the hardware registers at
// 0xFF00 - 0xFF7F, to an unmapped range of the address space.
func (m *MMU) Map(start, end uint16, r Region) error {
	if start > end {
		return fmt.Errorf("mmu: invalid range 0x%04X - 0x%04X", start, end)
	}
	for i := int(start); i <= int(end); i++ {
		if m.raw[i] != nil {
			return &AddressError{Op: "map", Address: uint16(i), Err: ErrRegionMapped}
		}
	}
	m.mapRegion(start, end, r)
	return nil
}

// Read returns the value at the given address.
func (m *MMU) Read(address uint16) (uint8, error) {
	r := m.raw[address]
	if r == nil {
		return 0, &AddressError{Op: "read", Address: address, Err: ErrInvalidAddress}
	}
	return r.Read(address), nil
}

// Write writes value to the given address.
func (m *MMU) Write(address uint16, value uint8) error {
	r := m.raw[address]
	if r == nil {
		return &AddressError{Op: "write", Address: address, Err: ErrInvalidAddress}
	}
	if err := r.Write(address, value); err != nil {
		return &AddressError{Op: "write", Address: address, Err: err}
	}
	return nil
}

// Writable reports whether a write to address would be accepted,
// returning the error Write would return without storing anything.
func (m *MMU) Writable(address uint16) error {
	r := m.raw[address]
	if r == nil {
		return &AddressError{Op: "write", Address: address, Err: ErrInvalidAddress}
	}
	if c, ok := r.(writeChecker); ok {
		if err := c.CheckWrite(address); err != nil {
			return &AddressError{Op: "write", Address: address, Err: err}
		}
	}
	return nil
}

// Dump returns length bytes starting at start, stopping at the first
// address that cannot be read.
func (m *MMU) Dump(start uint16, length int) ([]byte, error) {
	b := make([]byte, 0, length)
	for i := 0; i < length; i++ {
		v, err := m.Read(start + uint16(i))
		if err != nil {
			return b, err
		}
		b = append(b, v)
	}
	return b, nil
}

// InsertCartridge replaces the current cartridge.
func (m *MMU) InsertCartridge(cart *cartridge.Cartridge) {
	m.Cart = cart
}

// Reset clears every RAM reachable through the bus.
func (m *MMU) Reset() {
	m.wRAM.Reset()
	m.zRAM.Reset()
	m.Video.Reset()
	m.Cart.ResetRAM()
}

var _ types.Stater = (*MMU)(nil)

func (m *MMU) Load(s *types.State) {
	m.wRAM.Load(s)
	m.zRAM.Load(s)
	m.Video.Load(s)
	m.Cart.Load(s)
}

func (m *MMU) Save(s *types.State) {
	m.wRAM.Save(s)
	m.zRAM.Save(s)
	m.Video.Save(s)
	m.Cart.Save(s)
}
