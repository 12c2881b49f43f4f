package types

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags.
type Register = uint8

// RegisterPair represents a pair of GB Registers which is used to hold a 16-bit
// value. The CPU has 4 register pairs: AF, BC, DE, and HL. The pair holds no
// value of its own, it is always derived from the two registers.
type RegisterPair struct {
	High *Register
	Low  *Register

	// mask is applied to the low register on every 16-bit write.
	mask uint8
}

// NewRegisterPair returns a RegisterPair over high and low.
func NewRegisterPair(high, low *Register) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: 0xFF}
}

// NewMaskedRegisterPair returns a RegisterPair whose low register only
// keeps the bits set in mask when written as a 16-bit value. This is
// used for AF, where the lower nibble of F is always zero.
func NewMaskedRegisterPair(high, low *Register, mask uint8) *RegisterPair {
	return &RegisterPair{High: high, Low: low, mask: mask}
}

// Uint16 returns the value of the RegisterPair as an uint16.
func (r *RegisterPair) Uint16() uint16 {
	return utils.BytesToUint16(*r.High, *r.Low)
}

// SetUint16 sets the value of the RegisterPair to the given value.
func (r *RegisterPair) SetUint16(value uint16) {
	*r.High, *r.Low = utils.Uint16ToBytes(value)
	*r.Low &= r.mask
}

// Increment adds 1 to the pair, wrapping from 0xFFFF to 0x0000.
func (r *RegisterPair) Increment() {
	r.SetUint16(r.Uint16() + 1)
}

// Decrement subtracts 1 from the pair, wrapping from 0x0000 to 0xFFFF.
func (r *RegisterPair) Decrement() {
	r.SetUint16(r.Uint16() - 1)
}

// Registers represents the GB CPU registers.
type Registers struct {
	A Register
	B Register
	C Register
	D Register
	E Register
	F Register
	H Register
	L Register

	BC *RegisterPair
	DE *RegisterPair
	HL *RegisterPair
	AF *RegisterPair
}

// LinkPairs points the register pairs at the 8-bit registers of r. It
// must be called once r is at its final address, as the pairs hold
// pointers into r.
func (r *Registers) LinkPairs() {
	r.BC = NewRegisterPair(&r.B, &r.C)
	r.DE = NewRegisterPair(&r.D, &r.E)
	r.HL = NewRegisterPair(&r.H, &r.L)
	r.AF = NewMaskedRegisterPair(&r.A, &r.F, 0xF0)
}

// PowerOn sets the registers to the values left behind by the DMG boot
// ROM once it hands control to the cartridge.
func (r *Registers) PowerOn() {
	r.A = 0x01
	r.F = 0xB0
	r.B = 0x00
	r.C = 0x13
	r.D = 0x00
	r.E = 0xD8
	r.H = 0x01
	r.L = 0x4D
}

func (r *Registers) String() string {
	return fmt.Sprintf("A: %02X F: %02X B: %02X C: %02X D: %02X E: %02X H: %02X L: %02X",
		r.A, r.F, r.B, r.C, r.D, r.E, r.H, r.L)
}
