package cpu

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnsupportedOpcode is matched by UnsupportedOpcodeError.
var ErrUnsupportedOpcode = errors.New("unsupported opcode")

// UnsupportedOpcodeError is returned by Step for an opcode missing from
// the InstructionSet.
type UnsupportedOpcodeError struct {
	Opcode uint8
	PC     uint16
}

func (e *UnsupportedOpcodeError) Error() string {
	return fmt.Sprintf("cpu: unsupported opcode 0x%02X at 0x%04X", e.Opcode, e.PC)
}

func (e *UnsupportedOpcodeError) Is(target error) bool {
	return target == ErrUnsupportedOpcode
}

// Instruction describes a single opcode: its mnemonic, its length in
// bytes (opcode included), the machine cycles it takes and its effect.
type Instruction struct {
	name   string
	length uint8
	cycles uint8
	fn     func(*CPU) error
}

func (i Instruction) Name() string  { return i.name }
func (i Instruction) Length() uint8 { return i.length }
func (i Instruction) Cycles() uint8 { return i.cycles }

// Defined reports whether the instruction has an implementation.
func (i Instruction) Defined() bool { return i.fn != nil }

// InstructionSet holds every opcode, undefined entries have a nil fn.
var InstructionSet [256]Instruction

// DefineInstruction defines the instruction in the InstructionSet, with
// the provided opcode. The length is taken from the operand in name:
// d8, a8 and r8 add one byte, d16 and a16 add two.
func DefineInstruction(opcode uint8, name string, cycles uint8, fn func(*CPU) error) {
	InstructionSet[opcode] = Instruction{
		name:   name,
		length: 1 + operandLength(name),
		cycles: cycles,
		fn:     fn,
	}
}

// operandLength returns the number of immediate bytes named in an
// instruction mnemonic.
func operandLength(name string) uint8 {
	switch {
	case strings.Contains(name, "d16"), strings.Contains(name, "a16"):
		return 2
	case strings.Contains(name, "d8"), strings.Contains(name, "a8"), strings.Contains(name, "r8"):
		return 1
	}
	return 0
}

func init() {
	DefineInstruction(0x00, "NOP", 1, func(c *CPU) error { return nil })
	DefineInstruction(0x10, "STOP", 1, func(c *CPU) error { return nil })
}
