package bits

// Reset resets the bit at the given index.
func Reset(b, i uint8) uint8 {
	return b &^ (1 << i)
}

// Set sets the bit at the given index.
func Set(b, i uint8) uint8 {
	return b | (1 << i)
}

// Test tests the bit at the given index.
func Test(b, i uint8) bool {
	return (b>>i)&1 != 0
}

// Join combines a high and low byte into a 16-bit value.
func Join(high, low uint8) uint16 {
	return uint16(high)<<8 | uint16(low)
}

// Split returns the high and low bytes of a 16-bit value.
func Split(v uint16) (high, low uint8) {
	return uint8(v >> 8), uint8(v)
}
