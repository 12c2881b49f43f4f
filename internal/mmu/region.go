package mmu

import (
	"github.com/thelolagemann/gbcore/internal/types"
)

// Region is a handler for a range of the address space. Read and Write
// receive the absolute bus address.
type Region interface {
	Read(address uint16) uint8
	Write(address uint16, value uint8) error
}

// writeChecker is implemented by regions that reject some writes, so
// the MMU can report the rejection before anything is stored.
type writeChecker interface {
	CheckWrite(address uint16) error
}

// Store is a passive backing store addressed by offset from the start
// of the region it backs.
type Store interface {
	Read(offset uint16) uint8
	Write(offset uint16, value uint8)
}

// offsetRegion maps a region onto a store, relative to base.
type offsetRegion struct {
	base  uint16
	store Store
}

// Offset returns a Region forwarding address - base to s.
func Offset(base uint16, s Store) Region {
	return &offsetRegion{base: base, store: s}
}

func (o *offsetRegion) Read(address uint16) uint8 {
	return o.store.Read(address - o.base)
}

func (o *offsetRegion) Write(address uint16, value uint8) error {
	o.store.Write(address-o.base, value)
	return nil
}

// echoRegion mirrors the work RAM for reads, and rejects all writes
// without touching the work RAM.
type echoRegion struct {
	wram Store
}

// Echo returns a Region mirroring wram for reads at 0xE000 - 0xFDFF.
// Writes fail with ErrProhibitedAccess.
func Echo(wram Store) Region {
	return &echoRegion{wram: wram}
}

func (e *echoRegion) Read(address uint16) uint8 {
	return e.wram.Read(address - types.EchoStart)
}

func (e *echoRegion) Write(address uint16, value uint8) error {
	return e.CheckWrite(address)
}

func (e *echoRegion) CheckWrite(uint16) error {
	return ErrProhibitedAccess
}

// cartridgeRegion forwards to whichever cartridge is currently inserted,
// so that cartridges can be swapped without rebuilding the routing table.
type cartridgeRegion struct {
	m *MMU
}

func (c *cartridgeRegion) Read(address uint16) uint8 {
	return c.m.Cart.Read(address)
}

func (c *cartridgeRegion) Write(address uint16, value uint8) error {
	if !c.m.Cart.Write(address, value) {
		c.m.Log.Debugf("mmu: dropped write 0x%02X to cartridge ROM at 0x%04X", value, address)
	}
	return nil
}
