package gameboy

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/andybalholm/brotli"
	"github.com/cespare/xxhash"
	"github.com/thelolagemann/gbcore/internal/types"
)

var (
	// ErrInvalidState is returned when the data given to LoadState is
	// not a save state, or has been corrupted.
	ErrInvalidState = errors.New("gameboy: invalid save state")
	// ErrStateMismatch is returned when a save state was made with a
	// different cartridge to the one inserted.
	ErrStateMismatch = errors.New("gameboy: save state belongs to a different cartridge")
)

const (
	stateMagic   = "GBCS"
	stateVersion = 1
)

// snapshot serialises the CPU and every RAM reachable through the bus.
//
//	magic | version | cartridge fingerprint | CPU | MMU | checksum
func (g *GameBoy) snapshot() *types.State {
	s := types.NewState()
	s.WriteData([]byte(stateMagic))
	s.Write8(stateVersion)
	s.Write64(g.MMU.Cart.Fingerprint())
	g.CPU.Save(s)
	g.MMU.Save(s)
	s.Write64(xxhash.Sum64(s.Bytes()))
	return s
}

// SaveState returns the brotli compressed state of the GameBoy.
func (g *GameBoy) SaveState() ([]byte, error) {
	var buf bytes.Buffer
	w := brotli.NewWriterLevel(&buf, brotli.DefaultCompression)
	if _, err := w.Write(g.snapshot().Bytes()); err != nil {
		return nil, fmt.Errorf("gameboy: compressing state: %w", err)
	}
	if err := w.Close(); err != nil {
		return nil, fmt.Errorf("gameboy: compressing state: %w", err)
	}

	g.Debugf("saved state (%d bytes)", buf.Len())
	return buf.Bytes(), nil
}

// LoadState restores a state made by SaveState. The GameBoy is left
// untouched if the state is rejected.
func (g *GameBoy) LoadState(b []byte) error {
	raw, err := io.ReadAll(brotli.NewReader(bytes.NewReader(b)))
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	// every component has a fixed size, so the current state gives the
	// expected length
	if len(raw) != len(g.snapshot().Bytes()) {
		return fmt.Errorf("%w: unexpected length %d", ErrInvalidState, len(raw))
	}
	body, sum := raw[:len(raw)-8], raw[len(raw)-8:]
	if xxhash.Sum64(body) != types.StateFromBytes(sum).Read64() {
		return fmt.Errorf("%w: checksum mismatch", ErrInvalidState)
	}

	s := types.StateFromBytes(body)
	magic := make([]byte, len(stateMagic))
	s.ReadData(magic)
	if string(magic) != stateMagic {
		return fmt.Errorf("%w: bad magic %q", ErrInvalidState, magic)
	}
	if v := s.Read8(); v != stateVersion {
		return fmt.Errorf("%w: unsupported version %d", ErrInvalidState, v)
	}
	if fp := s.Read64(); fp != g.MMU.Cart.Fingerprint() {
		return fmt.Errorf("%w: %016x, inserted %016x", ErrStateMismatch, fp, g.MMU.Cart.Fingerprint())
	}

	g.CPU.Load(s)
	g.MMU.Load(s)
	if err := s.Err(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidState, err)
	}

	g.Debugf("loaded state (%d bytes)", len(b))
	return nil
}
