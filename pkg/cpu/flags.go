package cpu

import (
	"github.com/thelolagemann/gomeboy-registers/pkg/bits"
	"github.com/thelolagemann/gomeboy-registers/pkg/types"
)

// Flag is the bit index of a condition held in the F register.
type Flag = uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags is the F register: the zero, subtract, half-carry and
// carry conditions packed into the upper nibble of a byte. The
// lower nibble is not wired on hardware and always reads as 0.
type Flags uint8

// EmptyFlags returns Flags with no condition set. This is
// the same as the zero value.
func EmptyFlags() Flags {
	return 0
}

// FlagsFromByte returns the Flags held in the upper nibble
// of b. The lower nibble is discarded.
func FlagsFromByte(b uint8) Flags {
	return Flags(b & types.FlagMask)
}

// Byte returns f as it would be read from the F register.
func (f Flags) Byte() uint8 {
	return uint8(f) & types.FlagMask
}

// Contains returns true if the given flag is set.
func (f Flags) Contains(flag Flag) bool {
	return bits.Test(f.Byte(), flag)
}

// With returns f with the given flag set.
func (f Flags) With(flag Flag) Flags {
	return FlagsFromByte(bits.Set(uint8(f), flag))
}

// Without returns f with the given flag cleared.
func (f Flags) Without(flag Flag) Flags {
	return FlagsFromByte(bits.Reset(uint8(f), flag))
}

// SetTo returns f with the given flag set to v.
func (f Flags) SetTo(flag Flag, v bool) Flags {
	if v {
		return f.With(flag)
	}
	return f.Without(flag)
}

// String renders f as ZNHC, with a dash for each clear flag.
func (f Flags) String() string {
	s := []byte("----")
	for i, c := range "ZNHC" {
		if f.Contains(FlagZero - Flag(i)) {
			s[i] = byte(c)
		}
	}
	return string(s)
}
