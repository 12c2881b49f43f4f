package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/pkg/utils"
)

// loadRegisterToRegister loads the value of the given Register into the given
// Register.
//
//	LD n, n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToRegister(register *Register, value *Register) {
	*register = *value
}

// loadRegister8 loads the given value into the given Register.
//
//	LD n, d8
//	n = A, B, C, D, E, H, L
//	d8 = 8-bit immediate value
func (c *CPU) loadRegister8(reg *Register) error {
	v, err := c.readOperand()
	if err != nil {
		return err
	}
	*reg = v
	return nil
}

// loadMemoryToRegister loads the value at the given memory address into the
// given Register.
//
//	LD n, (HL)
//	n = A, B, C, D, E, H, L
func (c *CPU) loadMemoryToRegister(reg *Register, address uint16) error {
	v, err := c.readByte(address)
	if err != nil {
		return err
	}
	*reg = v
	return nil
}

// loadRegisterToMemory loads the value of the given Register into the given
// memory address.
//
//	LD (HL), n
//	n = A, B, C, D, E, H, L
func (c *CPU) loadRegisterToMemory(reg Register, address uint16) error {
	return c.writeByte(address, reg)
}

// loadRegisterToHardware loads the value of the given Register into the given
// hardware address. (e.g. LD (0xFF00 + n), A)
//
//	LD (0xFF00 + n), A
//	n = C, 8 bit immediate value
func (c *CPU) loadRegisterToHardware(reg Register, address uint8) error {
	return c.writeByte(0xFF00|uint16(address), reg)
}

// loadHardwareToRegister loads the value at the given hardware address
// into the given Register.
//
//	LD A, (0xFF00 + n)
//	n = C, 8 bit immediate value
func (c *CPU) loadHardwareToRegister(reg *Register, address uint8) error {
	return c.loadMemoryToRegister(reg, 0xFF00|uint16(address))
}

// loadRegister16 loads the given value into the given Register pair.
//
//	LD nn, d16
//	nn = BC, DE, HL
//	d16 = 16-bit immediate value
func (c *CPU) loadRegister16(reg *RegisterPair) error {
	v, err := c.readPointer()
	if err != nil {
		return err
	}
	reg.SetUint16(v)
	return nil
}

// loadSPSigned returns SP plus a signed 8-bit immediate, setting the
// half carry and carry flags from the unsigned addition of the low byte.
//
//	LD HL, SP+r8
func (c *CPU) loadSPSigned() (uint16, error) {
	operand, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	result := c.SP + uint16(int8(operand))

	c.clearFlag(FlagZero)
	c.clearFlag(FlagSubtract)
	c.setFlagTo(FlagHalfCarry, (c.SP&0x0F)+uint16(operand&0x0F) > 0x0F)
	c.setFlagTo(FlagCarry, (c.SP&0xFF)+uint16(operand) > 0xFF)

	return result, nil
}

func init() {
	DefineInstruction(0x01, "LD BC, d16", 3, func(c *CPU) error { return c.loadRegister16(c.BC) })
	DefineInstruction(0x02, "LD (BC), A", 2, func(c *CPU) error { return c.loadRegisterToMemory(c.A, c.BC.Uint16()) })
	DefineInstruction(0x06, "LD B, d8", 2, func(c *CPU) error { return c.loadRegister8(&c.B) })
	DefineInstruction(0x08, "LD (a16), SP", 5, func(c *CPU) error {
		address, err := c.readPointer()
		if err != nil {
			return err
		}
		return c.writeBytes([]uint16{address, address + 1}, []uint8{utils.Low(c.SP), utils.High(c.SP)})
	})
	DefineInstruction(0x0A, "LD A, (BC)", 2, func(c *CPU) error { return c.loadMemoryToRegister(&c.A, c.BC.Uint16()) })
	DefineInstruction(0x0E, "LD C, d8", 2, func(c *CPU) error { return c.loadRegister8(&c.C) })
	DefineInstruction(0x11, "LD DE, d16", 3, func(c *CPU) error { return c.loadRegister16(c.DE) })
	DefineInstruction(0x12, "LD (DE), A", 2, func(c *CPU) error { return c.loadRegisterToMemory(c.A, c.DE.Uint16()) })
	DefineInstruction(0x16, "LD D, d8", 2, func(c *CPU) error { return c.loadRegister8(&c.D) })
	DefineInstruction(0x1A, "LD A, (DE)", 2, func(c *CPU) error { return c.loadMemoryToRegister(&c.A, c.DE.Uint16()) })
	DefineInstruction(0x1E, "LD E, d8", 2, func(c *CPU) error { return c.loadRegister8(&c.E) })
	DefineInstruction(0x21, "LD HL, d16", 3, func(c *CPU) error { return c.loadRegister16(c.HL) })
	DefineInstruction(0x22, "LD (HL+), A", 2, func(c *CPU) error {
		if err := c.loadRegisterToMemory(c.A, c.HL.Uint16()); err != nil {
			return err
		}
		c.HL.Increment()
		return nil
	})
	DefineInstruction(0x26, "LD H, d8", 2, func(c *CPU) error { return c.loadRegister8(&c.H) })
	DefineInstruction(0x2A, "LD A, (HL+)", 2, func(c *CPU) error {
		if err := c.loadMemoryToRegister(&c.A, c.HL.Uint16()); err != nil {
			return err
		}
		c.HL.Increment()
		return nil
	})
	DefineInstruction(0x2E, "LD L, d8", 2, func(c *CPU) error { return c.loadRegister8(&c.L) })
	DefineInstruction(0x31, "LD SP, d16", 3, func(c *CPU) error {
		v, err := c.readPointer()
		if err != nil {
			return err
		}
		c.SP = v
		return nil
	})
	DefineInstruction(0x32, "LD (HL-), A", 2, func(c *CPU) error {
		if err := c.loadRegisterToMemory(c.A, c.HL.Uint16()); err != nil {
			return err
		}
		c.HL.Decrement()
		return nil
	})
	DefineInstruction(0x36, "LD (HL), d8", 3, func(c *CPU) error {
		v, err := c.readOperand()
		if err != nil {
			return err
		}
		return c.writeByte(c.HL.Uint16(), v)
	})
	DefineInstruction(0x3A, "LD A, (HL-)", 2, func(c *CPU) error {
		if err := c.loadMemoryToRegister(&c.A, c.HL.Uint16()); err != nil {
			return err
		}
		c.HL.Decrement()
		return nil
	})
	DefineInstruction(0x3E, "LD A, d8", 2, func(c *CPU) error { return c.loadRegister8(&c.A) })
	DefineInstruction(0xE0, "LDH (a8), A", 3, func(c *CPU) error {
		address, err := c.readOperand()
		if err != nil {
			return err
		}
		return c.loadRegisterToHardware(c.A, address)
	})
	DefineInstruction(0xE2, "LD (C), A", 2, func(c *CPU) error { return c.loadRegisterToHardware(c.A, c.C) })
	DefineInstruction(0xEA, "LD (a16), A", 4, func(c *CPU) error {
		address, err := c.readPointer()
		if err != nil {
			return err
		}
		return c.loadRegisterToMemory(c.A, address)
	})
	DefineInstruction(0xF0, "LDH A, (a8)", 3, func(c *CPU) error {
		address, err := c.readOperand()
		if err != nil {
			return err
		}
		return c.loadHardwareToRegister(&c.A, address)
	})
	DefineInstruction(0xF2, "LD A, (C)", 2, func(c *CPU) error { return c.loadHardwareToRegister(&c.A, c.C) })
	DefineInstruction(0xF8, "LD HL, SP+r8", 3, func(c *CPU) error {
		v, err := c.loadSPSigned()
		if err != nil {
			return err
		}
		c.HL.SetUint16(v)
		return nil
	})
	DefineInstruction(0xF9, "LD SP, HL", 2, func(c *CPU) error { c.SP = c.HL.Uint16(); return nil })
	DefineInstruction(0xFA, "LD A, (a16)", 4, func(c *CPU) error {
		address, err := c.readPointer()
		if err != nil {
			return err
		}
		return c.loadMemoryToRegister(&c.A, address)
	})

	generateLoadRegisterToRegisterInstructions()
}

// generateLoadRegisterToRegisterInstructions generates the instructions
// for loading a register to another register. (e.g. LD B, A)
//
// The instructions are generated in the following format:
//
//	0x40 LD B, B
//	0x41 LD B, C
//	....
//	0x7F LD A, A
//
// 0x76 is HALT and is left undefined.
func generateLoadRegisterToRegisterInstructions() {
	// Loop over each register
	for i := uint8(0); i < 8; i++ {
		// handle the special case of LD (HL), r
		if i == 6 {
			for j := uint8(0); j < 8; j++ {
				// skip 0x76 (HALT)
				if j == 6 {
					continue
				}
				fromRegister := j
				DefineInstruction(0x70+j, fmt.Sprintf("LD (HL), %s", registerNames[fromRegister]), 2, func(c *CPU) error {
					return c.loadRegisterToMemory(*c.registerIndex(fromRegister), c.HL.Uint16())
				})
			}
			continue
		}

		// Loop over each register again
		for j := uint8(0); j < 8; j++ {
			// get the register to load to (needs to be nested in the inner loop otherwise it will always be the last register)
			toRegister := i
			// if j is 6, then we are loading from memory
			if j == 6 {
				DefineInstruction(0x40+i*8+j, fmt.Sprintf("LD %s, (HL)", registerNames[toRegister]), 2, func(c *CPU) error {
					return c.loadMemoryToRegister(c.registerIndex(toRegister), c.HL.Uint16())
				})
				continue
			}

			// get the register to load from
			fromRegister := j
			DefineInstruction(
				0x40+(i*8)+j,
				fmt.Sprintf("LD %s, %s", registerNames[toRegister], registerNames[fromRegister]),
				1,
				func(c *CPU) error {
					c.loadRegisterToRegister(c.registerIndex(toRegister), c.registerIndex(fromRegister))
					return nil
				})
		}
	}
}
