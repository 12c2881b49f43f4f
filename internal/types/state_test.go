package types

import (
	"errors"
	"testing"
)

func TestState(t *testing.T) {
	s := NewState()
	s.Write8(0x42)
	s.Write16(0xBEEF)
	s.Write64(0x0123456789ABCDEF)
	s.WriteData([]byte{1, 2, 3})

	r := StateFromBytes(s.Bytes())
	if v := r.Read8(); v != 0x42 {
		t.Errorf("expected 0x42, got 0x%02X", v)
	}
	if v := r.Read16(); v != 0xBEEF {
		t.Errorf("expected 0xBEEF, got 0x%04X", v)
	}
	if v := r.Read64(); v != 0x0123456789ABCDEF {
		t.Errorf("expected 0x0123456789ABCDEF, got 0x%016X", v)
	}
	p := make([]byte, 3)
	r.ReadData(p)
	if p[0] != 1 || p[1] != 2 || p[2] != 3 {
		t.Errorf("unexpected data %v", p)
	}
	if r.Err() != nil {
		t.Errorf("unexpected error %v", r.Err())
	}

	// reading past the end is reported, not panicked
	if v := r.Read16(); v != 0 {
		t.Errorf("expected 0 past the end, got 0x%04X", v)
	}
	if !errors.Is(r.Err(), ErrStateTruncated) {
		t.Errorf("expected ErrStateTruncated, got %v", r.Err())
	}

	// once failed, every later read is zero
	if v := r.Read8(); v != 0 {
		t.Errorf("expected 0 after a failed read, got 0x%02X", v)
	}
}
