package cpu

import (
	"fmt"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
	"github.com/thelolagemann/gbcore/pkg/utils"
)

const (
	// ClockSpeed is the clock speed of the CPU.
	ClockSpeed = 4194304
	// TicksPerCycle is the number of clock ticks in a machine cycle.
	TicksPerCycle = 4
)

type (
	Register     = types.Register
	RegisterPair = types.RegisterPair
	Registers    = types.Registers
)

// Bus is the memory bus the CPU executes against. Writable reports the
// error a Write to address would fail with, without writing.
type Bus interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, value uint8) error
	Writable(address uint16) error
}

// CPU represents the Gameboy CPU. It is responsible for executing instructions.
// The CPU is not safe for concurrent use; the host serializes every call.
type CPU struct {
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// Registers contains the 8-bit registers, as well as the 16-bit register pairs.
	Registers

	// Debug enables per-instruction trace logging.
	Debug bool

	mmu Bus
	log log.Logger
}

// NewCPU creates a new CPU instance with the given Bus, with the
// registers set to their power on values.
func NewCPU(mmu Bus, logger log.Logger) *CPU {
	if logger == nil {
		logger = log.NewNullLogger()
	}
	c := &CPU{
		mmu: mmu,
		log: logger,
	}
	// create register pairs
	c.LinkPairs()
	c.Reset()

	return c
}

// Reset sets the registers to the state the boot ROM leaves behind.
func (c *CPU) Reset() {
	c.PowerOn()
	c.SP = 0xFFFE
	c.PC = 0x0100
}

// registerIndex returns a Register pointer for the given operand index,
// as encoded in bits 0-2 and 3-5 of the LD r, r' opcodes.
func (c *CPU) registerIndex(index uint8) *Register {
	switch index {
	case 0:
		return &c.B
	case 1:
		return &c.C
	case 2:
		return &c.D
	case 3:
		return &c.E
	case 4:
		return &c.H
	case 5:
		return &c.L
	case 7:
		return &c.A
	}
	panic(fmt.Sprintf("invalid register index: %d", index))
}

// registerNames maps operand indexes to their names, index 6 is
// the memory operand (HL).
var registerNames = [8]string{"B", "C", "D", "E", "H", "L", "(HL)", "A"}

// Step executes a single instruction and returns the number of
// machine cycles it took. On error the cycles are 0. An unsupported
// opcode leaves everything untouched except PC, which has moved past
// the opcode.
func (c *CPU) Step() (uint8, error) {
	pc := c.PC
	opcode, err := c.readInstruction()
	if err != nil {
		return 0, err
	}

	instruction := InstructionSet[opcode]
	if !instruction.Defined() {
		return 0, &UnsupportedOpcodeError{Opcode: opcode, PC: pc}
	}

	if c.Debug {
		c.log.Debugf("%04X: %-16s %s SP: %04X", pc, instruction.name, &c.Registers, c.SP)
	}

	// execute the instruction
	if err := instruction.fn(c); err != nil {
		return 0, fmt.Errorf("cpu: %s at 0x%04X: %w", instruction.name, pc, err)
	}

	return instruction.cycles, nil
}

// readInstruction reads the next instruction from memory.
func (c *CPU) readInstruction() (uint8, error) {
	return c.readOperand()
}

// readOperand reads the byte at PC and advances PC.
func (c *CPU) readOperand() (uint8, error) {
	value, err := c.mmu.Read(c.PC)
	if err != nil {
		return 0, err
	}
	c.PC++
	return value, nil
}

// readPointer reads a little endian 16-bit operand.
func (c *CPU) readPointer() (uint16, error) {
	low, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	high, err := c.readOperand()
	if err != nil {
		return 0, err
	}
	return utils.BytesToUint16(high, low), nil
}

// readByte reads a byte from memory.
func (c *CPU) readByte(addr uint16) (uint8, error) {
	return c.mmu.Read(addr)
}

// writeByte writes the given value to the given address.
func (c *CPU) writeByte(addr uint16, val uint8) error {
	return c.mmu.Write(addr, val)
}

// writeBytes writes each value to its address, in order. Every address
// is checked first, so a rejected write leaves memory untouched.
func (c *CPU) writeBytes(addrs []uint16, values []uint8) error {
	for _, addr := range addrs {
		if err := c.mmu.Writable(addr); err != nil {
			return err
		}
	}
	for i, addr := range addrs {
		if err := c.writeByte(addr, values[i]); err != nil {
			return err
		}
	}
	return nil
}

func (c *CPU) String() string {
	return fmt.Sprintf("%s SP: %04X PC: %04X", &c.Registers, c.SP, c.PC)
}

var _ types.Stater = (*CPU)(nil)

func (c *CPU) Load(s *types.State) {
	c.A = s.Read8()
	c.F = s.Read8() & 0xF0
	c.B = s.Read8()
	c.C = s.Read8()
	c.D = s.Read8()
	c.E = s.Read8()
	c.H = s.Read8()
	c.L = s.Read8()
	c.SP = s.Read16()
	c.PC = s.Read16()
}

func (c *CPU) Save(s *types.State) {
	s.Write8(c.A)
	s.Write8(c.F)
	s.Write8(c.B)
	s.Write8(c.C)
	s.Write8(c.D)
	s.Write8(c.E)
	s.Write8(c.H)
	s.Write8(c.L)
	s.Write16(c.SP)
	s.Write16(c.PC)
}
