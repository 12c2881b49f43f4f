package ppu

import "github.com/thelolagemann/gbcore/internal/types"

// VRAM is the 8kB of video RAM mapped at 0x8000 - 0x9FFF. It holds the
// tile data (0x8000 - 0x97FF) and the two tile maps (0x9800 - 0x9FFF).
type VRAM struct {
	data [types.VRAMSize]uint8
}

// NewVRAM returns a new zeroed VRAM.
func NewVRAM() *VRAM {
	return &VRAM{}
}

// Read returns the value at the given offset into VRAM.
func (v *VRAM) Read(offset uint16) uint8 {
	return v.data[offset]
}

// Write writes the value to the given offset into VRAM.
func (v *VRAM) Write(offset uint16, value uint8) {
	v.data[offset] = value
}

func (v *VRAM) Reset() {
	v.data = [types.VRAMSize]uint8{}
}

func (v *VRAM) Load(s *types.State) {
	s.ReadData(v.data[:])
}

func (v *VRAM) Save(s *types.State) {
	s.WriteData(v.data[:])
}
