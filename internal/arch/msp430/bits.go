package msp430

// Bitfield extracts width bits of value that end at bit position high.
// Bit 15 is the most significant bit of the word.
func Bitfield(value uint16, high, width uint) uint16 {
	return (value >> (high + 1 - width)) & (1<<width - 1)
}

// SignExtend10 interprets the lower 10 bits of value as a two's complement number.
func SignExtend10(value uint16) int {
	v := int(value & 0x3FF)
	if v >= 1<<9 {
		v -= 1 << 10
	}
	return v
}
