// Package ppu provides the graphics memory of the Game Boy. Rendering is
// not emulated; the PPU only owns the video RAM and the sprite attribute
// table, which are exposed to the memory bus as passive storage.
package ppu

import "github.com/thelolagemann/gbcore/internal/types"

// PPU owns the graphics stores. VRAM and OAM are separate backing
// arrays, a write to one is never visible through the other.
type PPU struct {
	VRAM *VRAM
	OAM  *OAM
}

// New returns a new PPU with zeroed graphics memory.
func New() *PPU {
	return &PPU{
		VRAM: NewVRAM(),
		OAM:  NewOAM(),
	}
}

// Reset clears both graphics stores.
func (p *PPU) Reset() {
	p.VRAM.Reset()
	p.OAM.Reset()
}

var _ types.Stater = (*PPU)(nil)

func (p *PPU) Load(s *types.State) {
	p.VRAM.Load(s)
	p.OAM.Load(s)
}

func (p *PPU) Save(s *types.State) {
	p.VRAM.Save(s)
	p.OAM.Save(s)
}
