package cpu

import "github.com/thelolagemann/gbcore/pkg/bits"

type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// clearFlag clears a flag from the F register.
func (c *CPU) clearFlag(flag Flag) {
	c.F = bits.Reset(c.F, flag)
}

// setFlag sets a flag in the F register.
func (c *CPU) setFlag(flag Flag) {
	c.F = bits.Set(c.F, flag)
}

// setFlagTo sets or clears a flag depending on cond.
func (c *CPU) setFlagTo(flag Flag, cond bool) {
	if cond {
		c.setFlag(flag)
	} else {
		c.clearFlag(flag)
	}
}

// isFlagSet returns true if the given flag is set.
func (c *CPU) isFlagSet(flag Flag) bool {
	return bits.Test(c.F, flag)
}

// Flags returns the flags as a four character string, with an
// uppercase letter for each set flag. (e.g. "Z-H-")
func (c *CPU) Flags() string {
	f := []byte("----")
	for i, flag := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry} {
		if c.isFlagSet(flag) {
			f[i] = "ZNHC"[i]
		}
	}
	return string(f)
}
