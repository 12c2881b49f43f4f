package gameboy

import (
	"github.com/thelolagemann/gbcore/internal/cartridge"
	"github.com/thelolagemann/gbcore/pkg/log"
)

// Opt is a function that modifies a GameBoy
// instance.
type Opt func(gb *GameBoy)

// Debug enables instruction tracing on the CPU.
func Debug() Opt {
	return func(gb *GameBoy) {
		gb.debug = true
	}
}

func WithLogger(log log.Logger) Opt {
	return func(gb *GameBoy) {
		if log != nil {
			gb.Logger = log
		}
	}
}

// WithCartridge inserts cart instead of an empty cartridge.
func WithCartridge(cart *cartridge.Cartridge) Opt {
	return func(gb *GameBoy) {
		gb.cart = cart
	}
}
