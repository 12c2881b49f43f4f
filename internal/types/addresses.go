package types

// The Game Boy's 16-bit address space is split into regions, each owned
// by a single backing store. The ranges below are inclusive.
const (
	// ROMStart - ROMEnd is the cartridge ROM (32kB). Bank switching is
	// not emulated, so the whole range reads the raw image.
	ROMStart uint16 = 0x0000
	ROMEnd   uint16 = 0x7FFF

	// VRAMStart - VRAMEnd is the video RAM (8kB).
	VRAMStart uint16 = 0x8000
	VRAMEnd   uint16 = 0x9FFF

	// ERAMStart - ERAMEnd is the external (cartridge) RAM (8kB).
	ERAMStart uint16 = 0xA000
	ERAMEnd   uint16 = 0xBFFF

	// WRAMStart - WRAMEnd is the work RAM (8kB).
	WRAMStart uint16 = 0xC000
	WRAMEnd   uint16 = 0xDFFF

	// EchoStart - EchoEnd mirrors the work RAM for reads. Writes to this
	// range are prohibited.
	EchoStart uint16 = 0xE000
	EchoEnd   uint16 = 0xFDFF

	// OAMStart - OAMEnd is the sprite attribute table (160B).
	OAMStart uint16 = 0xFE00
	OAMEnd   uint16 = 0xFE9F

	// IOStart - IOEnd holds the hardware registers, which are not part
	// of the core and must be mapped by the host.
	IOStart uint16 = 0xFF00
	IOEnd   uint16 = 0xFF7F

	// HRAMStart - HRAMEnd is the high RAM (127B).
	HRAMStart uint16 = 0xFF80
	HRAMEnd   uint16 = 0xFFFE

	// IE is the interrupt enable register, also left to the host.
	IE uint16 = 0xFFFF
)

// Region sizes in bytes.
const (
	VRAMSize = int(VRAMEnd-VRAMStart) + 1
	ERAMSize = int(ERAMEnd-ERAMStart) + 1
	WRAMSize = int(WRAMEnd-WRAMStart) + 1
	OAMSize  = int(OAMEnd-OAMStart) + 1
	HRAMSize = int(HRAMEnd-HRAMStart) + 1
)
