package cpu

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/thelolagemann/gbcore/internal/types"
	"github.com/thelolagemann/gbcore/pkg/log"
)

var errTestBus = errors.New("test bus: invalid address")

// testBus is a flat 64kB bus, with addresses in invalid rejected.
type testBus struct {
	mem     [0x10000]uint8
	invalid map[uint16]bool
}

func (b *testBus) Read(address uint16) (uint8, error) {
	if b.invalid[address] {
		return 0, errTestBus
	}
	return b.mem[address], nil
}

func (b *testBus) Write(address uint16, value uint8) error {
	if b.invalid[address] {
		return errTestBus
	}
	b.mem[address] = value
	return nil
}

func (b *testBus) Writable(address uint16) error {
	if b.invalid[address] {
		return errTestBus
	}
	return nil
}

// newTestCPU returns a CPU with program placed at 0x0100.
func newTestCPU(program ...uint8) (*CPU, *testBus) {
	bus := &testBus{invalid: make(map[uint16]bool)}
	copy(bus.mem[0x0100:], program)
	return NewCPU(bus, nil), bus
}

// step executes a single instruction, failing the test on error or
// an unexpected cycle count.
func step(t *testing.T, c *CPU, cycles uint8) {
	t.Helper()
	got, err := c.Step()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != cycles {
		t.Errorf("expected %d cycles, got %d", cycles, got)
	}
}

func TestNewCPU(t *testing.T) {
	c, _ := newTestCPU()
	expected := map[string][2]uint16{
		"A":  {uint16(c.A), 0x01},
		"F":  {uint16(c.F), 0xB0},
		"B":  {uint16(c.B), 0x00},
		"C":  {uint16(c.C), 0x13},
		"D":  {uint16(c.D), 0x00},
		"E":  {uint16(c.E), 0xD8},
		"H":  {uint16(c.H), 0x01},
		"L":  {uint16(c.L), 0x4D},
		"SP": {c.SP, 0xFFFE},
		"PC": {c.PC, 0x0100},
		"AF": {c.AF.Uint16(), 0x01B0},
		"HL": {c.HL.Uint16(), 0x014D},
	}
	for name, v := range expected {
		if v[0] != v[1] {
			t.Errorf("expected %s to be 0x%04X, got 0x%04X", name, v[1], v[0])
		}
	}
}

func TestCPU_Reset(t *testing.T) {
	c, _ := newTestCPU()
	c.A, c.F, c.SP, c.PC = 0xFF, 0x00, 0x1234, 0x4321
	c.Reset()
	if c.A != 0x01 || c.F != 0xB0 || c.SP != 0xFFFE || c.PC != 0x0100 {
		t.Errorf("expected power on state, got %s", c)
	}
}

func TestStep_NOP(t *testing.T) {
	c, bus := newTestCPU(0x00)
	regs, sp, mem := c.Registers, c.SP, bus.mem

	step(t, c, 1)
	if c.PC != 0x0101 {
		t.Errorf("expected PC to be 0x0101, got 0x%04X", c.PC)
	}
	if c.Registers != regs || c.SP != sp {
		t.Errorf("expected registers to be unchanged, got %s", c)
	}
	if bus.mem != mem {
		t.Errorf("expected memory to be unchanged")
	}
}

func TestStep_STOP(t *testing.T) {
	c, _ := newTestCPU(0x10, 0x00)
	step(t, c, 1)
	if c.PC != 0x0101 {
		t.Errorf("expected PC to be 0x0101, got 0x%04X", c.PC)
	}
}

func TestStep_Sequence(t *testing.T) {
	c, bus := newTestCPU(
		0x3E, 0x42, //       LD A, 0x42
		0x21, 0x00, 0xC0, // LD HL, 0xC000
		0x22, //             LD (HL+), A
		0x47, //             LD B, A
		0xEA, 0x10, 0xC0, // LD (0xC010), A
	)
	var total int
	for i := 0; i < 5; i++ {
		cycles, err := c.Step()
		if err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		total += int(cycles)
	}
	if total != 2+3+2+1+4 {
		t.Errorf("expected 12 cycles, got %d", total)
	}
	if bus.mem[0xC000] != 0x42 || bus.mem[0xC010] != 0x42 {
		t.Errorf("expected 0x42 at 0xC000 and 0xC010, got 0x%02X 0x%02X", bus.mem[0xC000], bus.mem[0xC010])
	}
	if c.B != 0x42 || c.HL.Uint16() != 0xC001 || c.PC != 0x010A {
		t.Errorf("unexpected state %s", c)
	}
}

func TestStep_UnsupportedOpcode(t *testing.T) {
	for _, opcode := range []uint8{0x76, 0xD3, 0xCB, 0x3C, 0xFF} {
		c, bus := newTestCPU(opcode)
		regs, sp, mem := c.Registers, c.SP, bus.mem

		cycles, err := c.Step()
		if cycles != 0 {
			t.Errorf("0x%02X: expected 0 cycles, got %d", opcode, cycles)
		}
		if !errors.Is(err, ErrUnsupportedOpcode) {
			t.Fatalf("0x%02X: expected ErrUnsupportedOpcode, got %v", opcode, err)
		}
		var opErr *UnsupportedOpcodeError
		if !errors.As(err, &opErr) || opErr.Opcode != opcode || opErr.PC != 0x0100 {
			t.Errorf("0x%02X: unexpected error %v", opcode, err)
		}
		if c.Registers != regs || c.SP != sp || bus.mem != mem {
			t.Errorf("0x%02X: expected no state change, got %s", opcode, c)
		}
		if c.PC != 0x0101 {
			t.Errorf("0x%02X: expected PC to be 0x0101, got 0x%04X", opcode, c.PC)
		}

		// repeatable
		c.PC = 0x0100
		_, again := c.Step()
		if again == nil || again.Error() != err.Error() {
			t.Errorf("0x%02X: expected the same error twice, got %v", opcode, again)
		}
	}
}

func TestStep_BusError(t *testing.T) {
	t.Run("fetch", func(t *testing.T) {
		c, bus := newTestCPU()
		bus.invalid[0x0100] = true
		if _, err := c.Step(); !errors.Is(err, errTestBus) {
			t.Errorf("expected bus error, got %v", err)
		}
		if c.PC != 0x0100 {
			t.Errorf("expected PC to be 0x0100, got 0x%04X", c.PC)
		}
	})
	t.Run("operand", func(t *testing.T) {
		c, bus := newTestCPU(0xFA, 0x00, 0xFF) // LD A, (0xFF00)
		bus.invalid[0xFF00] = true
		_, err := c.Step()
		if !errors.Is(err, errTestBus) {
			t.Fatalf("expected bus error, got %v", err)
		}
		if !strings.Contains(err.Error(), "LD A, (a16)") {
			t.Errorf("expected the instruction name in %q", err)
		}
		if c.A != 0x01 {
			t.Errorf("expected A to be unchanged, got 0x%02X", c.A)
		}
	})
}

func TestInstruction_Timing(t *testing.T) {
	expected := map[uint8]uint8{
		0x00: 1, 0x10: 1,
		0x01: 3, 0x11: 3, 0x21: 3, 0x31: 3,
		0x02: 2, 0x12: 2, 0x22: 2, 0x32: 2,
		0x0A: 2, 0x1A: 2, 0x2A: 2, 0x3A: 2,
		0x06: 2, 0x0E: 2, 0x16: 2, 0x1E: 2, 0x26: 2, 0x2E: 2, 0x3E: 2,
		0x36: 3, 0x08: 5,
		0xE0: 3, 0xF0: 3, 0xE2: 2, 0xF2: 2, 0xEA: 4, 0xFA: 4,
		0xF8: 3, 0xF9: 2,
		0xC1: 3, 0xD1: 3, 0xE1: 3, 0xF1: 3,
		0xC5: 4, 0xD5: 4, 0xE5: 4, 0xF5: 4,
	}
	for opcode := 0x40; opcode <= 0x7F; opcode++ {
		switch {
		case opcode == 0x76:
		case opcode >= 0x70 && opcode <= 0x77, opcode&0x07 == 0x06:
			expected[uint8(opcode)] = 2
		default:
			expected[uint8(opcode)] = 1
		}
	}

	for i := 0; i < 256; i++ {
		instruction := InstructionSet[i]
		cycles, ok := expected[uint8(i)]
		if !ok {
			if instruction.Defined() {
				t.Errorf("0x%02X %s: expected to be undefined", i, instruction.Name())
			}
			continue
		}
		if !instruction.Defined() {
			t.Errorf("0x%02X: expected to be defined", i)
			continue
		}
		if instruction.Cycles() != cycles {
			t.Errorf("0x%02X %s: expected %d cycles, got %d", i, instruction.Name(), cycles, instruction.Cycles())
		}
	}
}

func TestInstruction_Length(t *testing.T) {
	tests := map[uint8]uint8{
		0x00: 1, 0x41: 1, 0x46: 1, 0xE2: 1, 0xF9: 1, 0xC5: 1,
		0x3E: 2, 0x36: 2, 0xE0: 2, 0xF0: 2, 0xF8: 2,
		0x01: 3, 0x31: 3, 0x08: 3, 0xEA: 3, 0xFA: 3,
	}
	for opcode, length := range tests {
		if got := InstructionSet[opcode].Length(); got != length {
			t.Errorf("0x%02X %s: expected length %d, got %d", opcode, InstructionSet[opcode].Name(), length, got)
		}
	}
}

func TestStep_PCAdvance(t *testing.T) {
	// there are no jumps, so every instruction moves PC by its length
	for i := 0; i < 256; i++ {
		instruction := InstructionSet[i]
		if !instruction.Defined() {
			continue
		}
		c, _ := newTestCPU(uint8(i), 0x00, 0xC0)
		c.HL.SetUint16(0xC000)
		step(t, c, instruction.Cycles())
		if c.PC != 0x0100+uint16(instruction.Length()) {
			t.Errorf("0x%02X %s: expected PC 0x%04X, got 0x%04X", i, instruction.Name(), 0x0100+uint16(instruction.Length()), c.PC)
		}
	}
}

func TestCPU_Debug(t *testing.T) {
	var buf bytes.Buffer
	c := NewCPU(&testBus{}, log.NewWriter(&buf, true))
	c.Debug = true

	step(t, c, 1)
	if !strings.Contains(buf.String(), "0100: NOP") {
		t.Errorf("expected trace for NOP, got %q", buf.String())
	}
}

func TestCPU_State(t *testing.T) {
	c, _ := newTestCPU()
	c.A, c.B, c.C, c.D, c.E, c.F, c.H, c.L = 0x11, 0x22, 0x33, 0x44, 0x55, 0x60, 0x77, 0x88
	c.SP, c.PC = 0xDFF0, 0x0150

	s := types.NewState()
	c.Save(s)

	loaded, _ := newTestCPU()
	loaded.Load(types.StateFromBytes(s.Bytes()))
	if loaded.Registers.String() != c.Registers.String() || loaded.SP != c.SP || loaded.PC != c.PC {
		t.Errorf("expected %s, got %s", c, loaded)
	}
	if loaded.AF.Uint16() != 0x1160 {
		t.Errorf("expected AF to be linked after load, got 0x%04X", loaded.AF.Uint16())
	}
}
