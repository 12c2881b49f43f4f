package ppu

import "github.com/thelolagemann/gbcore/internal/types"

// OAM (Object Attribute Memory) is the memory used to store the
// attributes of the sprites. It is 160 bytes long and is located at
// 0xFE00-0xFE9F in the memory map. It is divided in 40 entries of 4 bytes
// each, each entry representing a sprite.
type OAM struct {
	Sprites [40]Sprite
}

// Sprite is a single OAM entry.
type Sprite struct {
	Y          uint8
	X          uint8
	TileID     uint8
	Attributes uint8
}

func NewOAM() *OAM {
	return &OAM{}
}

// Read returns the value at the given offset into OAM.
func (o *OAM) Read(offset uint16) uint8 {
	s := &o.Sprites[offset>>2]
	switch offset & 3 {
	case 0:
		return s.Y
	case 1:
		return s.X
	case 2:
		return s.TileID
	default:
		return s.Attributes
	}
}

// Write writes the given value at the given offset into OAM.
func (o *OAM) Write(offset uint16, value uint8) {
	s := &o.Sprites[offset>>2]
	switch offset & 3 {
	case 0:
		s.Y = value
	case 1:
		s.X = value
	case 2:
		s.TileID = value
	default:
		s.Attributes = value
	}
}

func (o *OAM) Reset() {
	o.Sprites = [40]Sprite{}
}

func (o *OAM) Load(s *types.State) {
	for i := uint16(0); i < uint16(types.OAMSize); i++ {
		o.Write(i, s.Read8())
	}
}

func (o *OAM) Save(s *types.State) {
	for i := uint16(0); i < uint16(types.OAMSize); i++ {
		s.Write8(o.Read(i))
	}
}
