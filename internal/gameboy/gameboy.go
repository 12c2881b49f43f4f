// Package gameboy wires the cartridge, memory bus and CPU together into
// a headless Game Boy core.
package gameboy

import (
	"context"
	"fmt"

	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/internal/cpu"
	"github.com/thelolagemann/gbcore/internal/mmu"
	"github.com/thelolagemann/gbcore/internal/ppu"
	"github.com/thelolagemann/gbcore/pkg/log"
)

const (
	// ClockSpeed is the clock speed of the Game Boy.
	ClockSpeed = cpu.ClockSpeed // 4.194304 MHz
)

// GameBoy represents a Game Boy. It contains all the components of the Game Boy.
// It is the main entry point for the emulator.
type GameBoy struct {
	CPU *cpu.CPU
	MMU *mmu.MMU
	PPU *ppu.PPU

	log.Logger

	// set by options, consumed by NewGameBoy
	cart  *cartridge.Cartridge
	debug bool
}

// NewGameBoy returns a new GameBoy with the registers at their power on
// values. Without WithCartridge an empty cartridge is inserted.
func NewGameBoy(opts ...Opt) *GameBoy {
	g := &GameBoy{
		Logger: log.NewNullLogger(),
	}
	for _, opt := range opts {
		opt(g)
	}
	if g.cart == nil {
		g.cart = cartridge.NewEmptyCartridge()
	}

	g.PPU = ppu.New()
	g.MMU = mmu.NewMMU(g.cart, g.PPU, g.Logger)
	g.CPU = cpu.NewCPU(g.MMU, g.Logger)
	g.CPU.Debug = g.debug
	g.cart = nil

	return g
}

// LoadCartridge loads the cartridge at path, replacing the inserted one.
// The registers and every RAM are reset, as on a power cycle.
func (g *GameBoy) LoadCartridge(path string) error {
	cart, err := cartridge.Load(path)
	if err != nil {
		return err
	}
	g.MMU.InsertCartridge(cart)
	g.Reset()

	g.Infof("loaded %s (%d bytes)", path, cart.Size())
	g.Infof("%s", cart.Header())
	if !cart.Header().ChecksumValid() {
		g.Errorf("header checksum mismatch for %s", path)
	}
	return nil
}

// EjectCartridge removes the inserted cartridge, leaving the bus
// floating high over the ROM range, and resets the machine.
func (g *GameBoy) EjectCartridge() {
	g.MMU.InsertCartridge(cartridge.NewEmptyCartridge())
	g.Reset()
	g.Infof("cartridge ejected")
}

// Reset returns the CPU to its power on state and clears memory.
func (g *GameBoy) Reset() {
	g.CPU.Reset()
	g.MMU.Reset()
}

// Step executes a single instruction, returning the machine cycles it took.
func (g *GameBoy) Step() (uint8, error) {
	return g.CPU.Step()
}

// Run steps the CPU until an error occurs, ctx is done or maxSteps
// instructions have executed. A maxSteps of 0 runs without limit. The
// machine cycles executed are returned alongside the error that stopped
// the run, if any.
func (g *GameBoy) Run(ctx context.Context, maxSteps uint64) (uint64, error) {
	var cycles uint64
	for steps := uint64(0); maxSteps == 0 || steps < maxSteps; steps++ {
		select {
		case <-ctx.Done():
			return cycles, ctx.Err()
		default:
		}

		c, err := g.CPU.Step()
		if err != nil {
			return cycles, fmt.Errorf("gameboy: step %d: %w", steps, err)
		}
		cycles += uint64(c)
	}
	return cycles, nil
}

// ClockTicks converts machine cycles to clock ticks.
func ClockTicks(cycles uint64) uint64 {
	return cycles * cpu.TicksPerCycle
}
