package mmu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidAddress is returned for accesses outside of every mapped
	// region, such as the unusable area at 0xFEA0 - 0xFEFF.
	ErrInvalidAddress = errors.New("invalid address")
	// ErrProhibitedAccess is returned for writes to the echo RAM. The
	// write has no effect.
	ErrProhibitedAccess = errors.New("prohibited access")
	// ErrRegionMapped is returned by Map when the range overlaps a
	// region that is already mapped.
	ErrRegionMapped = errors.New("region already mapped")
)

// AddressError records a failed bus access.
type AddressError struct {
	Op      string // "read", "write" or "map"
	Address uint16
	Err     error
}

func (e *AddressError) Error() string {
	return fmt.Sprintf("mmu: %s 0x%04X: %v", e.Op, e.Address, e.Err)
}

func (e *AddressError) Unwrap() error {
	return e.Err
}
