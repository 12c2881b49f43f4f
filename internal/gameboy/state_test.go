package gameboy

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thelolagemann/gbcore/internal/cartridge"
)

func TestGameBoy_SaveLoadState(t *testing.T) {
	rom := newTestROM(
		0x3E, 0x42, //       LD A, 0x42
		0x21, 0x00, 0x80, // LD HL, 0x8000
		0x22, //             LD (HL+), A
		0xEA, 0x00, 0xFE, // LD (0xFE00), A
		0xE0, 0x80, //       LDH (0x80), A
		0xEA, 0x00, 0xA0, // LD (0xA000), A
		0xC5, //             PUSH BC
	)
	gb := NewGameBoy(WithCartridge(cartridge.New(rom)))
	_, err := gb.Run(context.Background(), 7)
	require.NoError(t, err)

	b, err := gb.SaveState()
	require.NoError(t, err)
	require.NotEmpty(t, b)

	restored := NewGameBoy(WithCartridge(cartridge.New(rom)))
	require.NoError(t, restored.LoadState(b))

	assert.Equal(t, gb.CPU.String(), restored.CPU.String())
	for _, addr := range []uint16{0x8000, 0xFE00, 0xFF80, 0xA000, 0xFFFC, 0xFFFD} {
		want, err := gb.MMU.Read(addr)
		require.NoError(t, err)
		got, err := restored.MMU.Read(addr)
		require.NoError(t, err)
		assert.Equalf(t, want, got, "0x%04X", addr)
	}
	v, err := restored.MMU.Read(0x8000)
	require.NoError(t, err)
	assert.Equal(t, uint8(0x42), v)

	// the restored machine carries on where the saved one stopped
	assert.Equal(t, uint16(0x010F), restored.CPU.PC)
	assert.Equal(t, uint16(0xFFFC), restored.CPU.SP)
}

func TestGameBoy_LoadStateMismatch(t *testing.T) {
	gb := NewGameBoy(WithCartridge(cartridge.New(newTestROM(0x00))))
	b, err := gb.SaveState()
	require.NoError(t, err)

	other := NewGameBoy(WithCartridge(cartridge.New(newTestROM(0x01))))
	other.CPU.A = 0x77
	assert.ErrorIs(t, other.LoadState(b), ErrStateMismatch)
	assert.Equal(t, uint8(0x77), other.CPU.A)
}

func TestGameBoy_LoadStateInvalid(t *testing.T) {
	gb := NewGameBoy(WithCartridge(cartridge.New(newTestROM())))
	gb.CPU.A = 0x33

	for name, b := range map[string][]byte{
		"empty":   {},
		"garbage": []byte("definitely not a save state"),
	} {
		t.Run(name, func(t *testing.T) {
			assert.ErrorIs(t, gb.LoadState(b), ErrInvalidState)
			assert.Equal(t, uint8(0x33), gb.CPU.A)
		})
	}

	t.Run("truncated", func(t *testing.T) {
		b, err := gb.SaveState()
		require.NoError(t, err)
		assert.ErrorIs(t, gb.LoadState(b[:len(b)/2]), ErrInvalidState)
	})
}
