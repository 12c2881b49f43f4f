package cpu

import (
	"fmt"
	"strings"
)

// Disassemble decodes the instruction at address without executing it,
// returning the mnemonic with its operands filled in and the length of
// the instruction in bytes. PC is left untouched.
func (c *CPU) Disassemble(address uint16) (string, uint8, error) {
	opcode, err := c.readByte(address)
	if err != nil {
		return "", 0, err
	}
	instruction := InstructionSet[opcode]
	if !instruction.Defined() {
		return fmt.Sprintf("DB $%02X", opcode), 1, nil
	}

	operands := make([]uint8, instruction.length-1)
	for i := range operands {
		if operands[i], err = c.readByte(address + 1 + uint16(i)); err != nil {
			return "", 0, err
		}
	}

	name := instruction.name
	switch len(operands) {
	case 1:
		replacer := strings.NewReplacer(
			"d8", fmt.Sprintf("$%02X", operands[0]),
			"a8", fmt.Sprintf("$%02X", operands[0]),
			"+r8", fmt.Sprintf("%+d", int8(operands[0])),
		)
		name = replacer.Replace(name)
	case 2:
		v := fmt.Sprintf("$%04X", uint16(operands[1])<<8|uint16(operands[0]))
		name = strings.NewReplacer("d16", v, "a16", v).Replace(name)
	}

	return name, instruction.length, nil
}
