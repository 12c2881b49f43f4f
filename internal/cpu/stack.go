package cpu

import "github.com/thelolagemann/gbcore/pkg/utils"

// push a 16 bit value onto the stack, high byte first. SP only moves
// once both bytes are written.
//
//	PUSH nn
//	nn = 16-bit register
func (c *CPU) push(high, low uint8) error {
	if err := c.writeBytes([]uint16{c.SP - 1, c.SP - 2}, []uint8{high, low}); err != nil {
		return err
	}
	c.SP -= 2
	return nil
}

// pop a 16 bit value from the stack, returning the high and low bytes.
//
//	POP nn
//	nn = 16-bit register
func (c *CPU) pop() (uint8, uint8, error) {
	low, err := c.readByte(c.SP)
	if err != nil {
		return 0, 0, err
	}
	high, err := c.readByte(c.SP + 1)
	if err != nil {
		return 0, 0, err
	}
	c.SP += 2
	return high, low, nil
}

func (c *CPU) pushPair(pair *RegisterPair) error {
	return c.push(utils.Uint16ToBytes(pair.Uint16()))
}

// popPair pops into pair through SetUint16, so AF keeps the lower
// nibble of F clear.
func (c *CPU) popPair(pair *RegisterPair) error {
	high, low, err := c.pop()
	if err != nil {
		return err
	}
	pair.SetUint16(utils.BytesToUint16(high, low))
	return nil
}

func init() {
	DefineInstruction(0xC1, "POP BC", 3, func(c *CPU) error { return c.popPair(c.BC) })
	DefineInstruction(0xC5, "PUSH BC", 4, func(c *CPU) error { return c.pushPair(c.BC) })
	DefineInstruction(0xD1, "POP DE", 3, func(c *CPU) error { return c.popPair(c.DE) })
	DefineInstruction(0xD5, "PUSH DE", 4, func(c *CPU) error { return c.pushPair(c.DE) })
	DefineInstruction(0xE1, "POP HL", 3, func(c *CPU) error { return c.popPair(c.HL) })
	DefineInstruction(0xE5, "PUSH HL", 4, func(c *CPU) error { return c.pushPair(c.HL) })
	DefineInstruction(0xF1, "POP AF", 3, func(c *CPU) error { return c.popPair(c.AF) })
	DefineInstruction(0xF5, "PUSH AF", 4, func(c *CPU) error { return c.pushPair(c.AF) })
}
