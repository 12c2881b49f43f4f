package utils

// BytesToUint16 combines a high and a low byte into a 16-bit value.
func BytesToUint16(upper, lower uint8) uint16 {
	return uint16(upper)<<8 | uint16(lower)
}

// Uint16ToBytes splits a 16-bit value into its high and low bytes.
func Uint16ToBytes(value uint16) (upper, lower uint8) {
	return High(value), Low(value)
}

// High returns the upper byte of value.
func High(value uint16) uint8 {
	return uint8(value >> 8)
}

// Low returns the lower byte of value.
func Low(value uint16) uint8 {
	return uint8(value & 0xFF)
}
