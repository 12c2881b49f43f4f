// Package ram provides a basic RAM implementation.
package ram

import "github.com/thelolagemann/gbcore/internal/types"

// RAM represents a fixed size block of RAM. Addresses passed to
// Read and Write are offsets from the start of the block.
type RAM struct {
	data []uint8
}

// NewRAM returns a new zeroed RAM of size bytes.
func NewRAM(size int) *RAM {
	return &RAM{
		data: make([]uint8, size),
	}
}

// Read returns the value at the given offset.
func (r *RAM) Read(offset uint16) uint8 {
	return r.data[offset]
}

// Write writes the value to the given offset.
func (r *RAM) Write(offset uint16, value uint8) {
	r.data[offset] = value
}

// Size returns the size of the RAM in bytes.
func (r *RAM) Size() int {
	return len(r.data)
}

// Reset clears the RAM.
func (r *RAM) Reset() {
	clear(r.data)
}

var _ types.Stater = (*RAM)(nil)

func (r *RAM) Load(s *types.State) {
	s.ReadData(r.data)
}

func (r *RAM) Save(s *types.State) {
	s.WriteData(r.data)
}
