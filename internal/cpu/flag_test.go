package cpu

import "testing"

func TestFlag(t *testing.T) {
	c, _ := newTestCPU()
	flags := []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

	t.Run("clear", func(t *testing.T) {
		for _, f := range flags {
			c.clearFlag(f)
			if c.isFlagSet(f) {
				t.Errorf("expected flag %d to be unset, got set", f)
			}
		}
		if c.F != 0x00 {
			t.Errorf("expected F to be 0x00, got 0x%02X", c.F)
		}
	})
	t.Run("set", func(t *testing.T) {
		for _, f := range flags {
			c.setFlag(f)
			if !c.isFlagSet(f) {
				t.Errorf("expected flag %d to be set, got unset", f)
			}
		}
		if c.F != 0xF0 {
			t.Errorf("expected F to be 0xF0, got 0x%02X", c.F)
		}
	})
	t.Run("setFlagTo", func(t *testing.T) {
		c.setFlagTo(FlagCarry, false)
		if c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry to be unset")
		}
		c.setFlagTo(FlagCarry, true)
		if !c.isFlagSet(FlagCarry) {
			t.Errorf("expected carry to be set")
		}
	})
}

func TestCPU_Flags(t *testing.T) {
	tests := map[uint8]string{
		0x00: "----",
		0xB0: "Z-HC",
		0xF0: "ZNHC",
		0x40: "-N--",
		0x10: "---C",
	}
	c, _ := newTestCPU()
	for f, want := range tests {
		c.F = f
		if got := c.Flags(); got != want {
			t.Errorf("F 0x%02X: expected %s, got %s", f, want, got)
		}
	}
}
