package cartridge

import (
	"fmt"
	"strings"
)

// header field offsets into the ROM image.
const (
	titleStart          = 0x134
	titleLength         = 16
	cgbFlagOffset       = 0x143
	newLicenseeOffset   = 0x144
	sgbFlagOffset       = 0x146
	typeOffset          = 0x147
	romSizeOffset       = 0x148
	ramSizeOffset       = 0x149
	destinationOffset   = 0x14A
	oldLicenseeOffset   = 0x14B
	versionOffset       = 0x14C
	headerChecksumStart = 0x134
	headerChecksumEnd   = 0x14C
	headerChecksumAt    = 0x14D
	globalChecksumAt    = 0x14E
)

type Type uint8

const (
	ROM               Type = 0x00
	MBC1              Type = 0x01
	MBC1RAM           Type = 0x02
	MBC1RAMBATT       Type = 0x03
	MBC2              Type = 0x05
	MBC2BATT          Type = 0x06
	ROMRAM            Type = 0x08
	ROMRAMBATT        Type = 0x09
	MMM01             Type = 0x0B
	MMM01RAM          Type = 0x0C
	MMM01RAMBATT      Type = 0x0D
	MBC3TIMERBATT     Type = 0x0F
	MBC3TIMERRAMBATT  Type = 0x10
	MBC3              Type = 0x11
	MBC3RAM           Type = 0x12
	MBC3RAMBATT       Type = 0x13
	MBC5              Type = 0x19
	MBC5RAM           Type = 0x1A
	MBC5RAMBATT       Type = 0x1B
	MBC5RUMBLE        Type = 0x1C
	MBC5RUMBLERAM     Type = 0x1D
	MBC5RUMBLERAMBATT Type = 0x1E
	MBC6              Type = 0x20
	MBC7              Type = 0x22
	POCKETCAMERA      Type = 0xFC
	BANDAITAMA5       Type = 0xFD
	HUDSONHUC3        Type = 0xFE
	HUDSONHUC1        Type = 0xFF
)

var typeNames = map[Type]string{
	ROM:               "ROM ONLY",
	MBC1:              "MBC1",
	MBC1RAM:           "MBC1+RAM",
	MBC1RAMBATT:       "MBC1+RAM+BATTERY",
	MBC2:              "MBC2",
	MBC2BATT:          "MBC2+BATTERY",
	ROMRAM:            "ROM+RAM",
	ROMRAMBATT:        "ROM+RAM+BATTERY",
	MMM01:             "MMM01",
	MMM01RAM:          "MMM01+RAM",
	MMM01RAMBATT:      "MMM01+RAM+BATTERY",
	MBC3TIMERBATT:     "MBC3+TIMER+BATTERY",
	MBC3TIMERRAMBATT:  "MBC3+TIMER+RAM+BATTERY",
	MBC3:              "MBC3",
	MBC3RAM:           "MBC3+RAM",
	MBC3RAMBATT:       "MBC3+RAM+BATTERY",
	MBC5:              "MBC5",
	MBC5RAM:           "MBC5+RAM",
	MBC5RAMBATT:       "MBC5+RAM+BATTERY",
	MBC5RUMBLE:        "MBC5+RUMBLE",
	MBC5RUMBLERAM:     "MBC5+RUMBLE+RAM",
	MBC5RUMBLERAMBATT: "MBC5+RUMBLE+RAM+BATTERY",
	MBC6:              "MBC6",
	MBC7:              "MBC7+SENSOR+RUMBLE+RAM+BATTERY",
	POCKETCAMERA:      "POCKET CAMERA",
	BANDAITAMA5:       "BANDAI TAMA5",
	HUDSONHUC3:        "HuC3",
	HUDSONHUC1:        "HuC1+RAM+BATTERY",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("UNKNOWN CARTRIDGE TYPE (0x%02X)", uint8(t))
}

var romSizes = map[uint8]string{
	0x00: "32 KiB (no banking)",
	0x01: "64 KiB (4 banks)",
	0x02: "128 KiB (8 banks)",
	0x03: "256 KiB (16 banks)",
	0x04: "512 KiB (32 banks)",
	0x05: "1 MiB (64 banks)",
	0x06: "2 MiB (128 banks)",
	0x07: "4 MiB (256 banks)",
	0x08: "8 MiB (512 banks)",
	0x52: "1.1 MiB (72 banks)",
	0x53: "1.2 MiB (80 banks)",
	0x54: "1.5 MiB (96 banks)",
}

var ramSizes = map[uint8]string{
	0x00: "0 (No RAM)",
	0x01: "Unused",
	0x02: "8 KiB (1 bank)",
	0x03: "32 KiB (4 banks of 8 KiB each)",
	0x04: "128 KiB (16 banks of 8 KiB each)",
	0x05: "64 KiB (8 banks of 8 KiB each)",
}

// Header represents the header of a cartridge, each cartridge has a header and is
// located at the address space 0x0100-0x014F. The header contains information about
// the cartridge itself, and the hardware it expects to run on. It is only used for
// diagnostics, nothing in the header changes how the cartridge is addressed.
type Header struct {
	// 0x0134-0x0143 - Title of the game, up to the first zero byte.
	Title string

	// 0x0143 - CGBFlag. In older cartridges this byte was part of the
	// title, but the Colour Game Boy and later models interpret this byte
	// to determine if the cartridge is compatible with the Colour Game Boy.
	CGBFlag uint8

	// 0x0144-0x0145 - NewLicenseeCode of the game.
	NewLicenseeCode string
	// 0x0146 - SGBFlag, 0x03 if the game supports SGB functions.
	SGBFlag       uint8
	CartridgeType Type
	// 0x0148 - ROMSizeCode, the ROM is 32 KiB << code.
	ROMSizeCode uint8
	RAMSizeCode uint8

	Destination     uint8
	OldLicenseeCode uint8
	MaskROMVersion  uint8
	HeaderChecksum  uint8
	GlobalChecksum  uint16

	// computedChecksum is the header checksum calculated over 0x0134-0x014C.
	computedChecksum uint8
}

// parseHeader parses the header of the given ROM and returns a Header.
// Bytes beyond the end of rom read as zero.
func parseHeader(rom []byte) Header {
	at := func(offset int) uint8 {
		if offset < len(rom) {
			return rom[offset]
		}
		return 0
	}

	h := Header{}

	// parse the title
	var title strings.Builder
	for i := titleStart; i < titleStart+titleLength; i++ {
		b := at(i)
		if b == 0 {
			break
		}
		title.WriteByte(b)
	}
	h.Title = title.String()

	h.CGBFlag = at(cgbFlagOffset)
	h.NewLicenseeCode = string([]byte{at(newLicenseeOffset), at(newLicenseeOffset + 1)})
	h.SGBFlag = at(sgbFlagOffset)
	h.CartridgeType = Type(at(typeOffset))
	h.ROMSizeCode = at(romSizeOffset)
	h.RAMSizeCode = at(ramSizeOffset)
	h.Destination = at(destinationOffset)
	h.OldLicenseeCode = at(oldLicenseeOffset)
	h.MaskROMVersion = at(versionOffset)
	h.HeaderChecksum = at(headerChecksumAt)
	h.GlobalChecksum = uint16(at(globalChecksumAt))<<8 | uint16(at(globalChecksumAt+1))

	for i := headerChecksumStart; i <= headerChecksumEnd; i++ {
		h.computedChecksum = h.computedChecksum - at(i) - 1
	}

	return h
}

// CGBDescription describes the CGB flag.
func (h Header) CGBDescription() string {
	switch h.CGBFlag {
	case 0x80:
		return "The game supports CGB enhancements, but is backwards compatible with monochrome Game Boys"
	case 0xC0:
		return "The game works on CGB only"
	}
	return "UNKNOWN CGB FLAG"
}

// SGBDescription describes the SGB flag.
func (h Header) SGBDescription() string {
	if h.SGBFlag == 0x03 {
		return "The game supports SGB functions"
	}
	return "The game doesn't support SGB functions"
}

// ROMSize describes the ROM size code.
func (h Header) ROMSize() string {
	if s, ok := romSizes[h.ROMSizeCode]; ok {
		return s
	}
	return "UNKNOWN ROM SIZE"
}

// RAMSize describes the RAM size code.
func (h Header) RAMSize() string {
	if s, ok := ramSizes[h.RAMSizeCode]; ok {
		return s
	}
	return "UNKNOWN RAM SIZE"
}

// ChecksumValid reports whether the header checksum at 0x014D matches
// the bytes 0x0134-0x014C. The boot ROM refuses to start a cartridge
// that fails this check.
func (h Header) ChecksumValid() bool {
	return h.HeaderChecksum == h.computedChecksum
}

func (h Header) String() string {
	checksum := "OK"
	if !h.ChecksumValid() {
		checksum = fmt.Sprintf("BAD (expected %02X)", h.computedChecksum)
	}
	return fmt.Sprintf(`*~~ ROM Header ~~*
Title: %s
CGB Flag: %s
SGB Flag: %s
Cartridge Type: %s
ROM Size: %s
RAM Size: %s
Header Checksum: %02X %s
`, h.Title, h.CGBDescription(), h.SGBDescription(), h.CartridgeType, h.ROMSize(), h.RAMSize(), h.HeaderChecksum, checksum)
}
