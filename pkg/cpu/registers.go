package cpu

import (
	"fmt"

	"github.com/thelolagemann/gomeboy-registers/pkg/bits"
	"github.com/thelolagemann/gomeboy-registers/pkg/types"
)

const (
	// InitialSP is the stack pointer after the boot ROM hands over.
	InitialSP uint16 = 0xFFFE
	// InitialPC is the cartridge entry point.
	InitialPC uint16 = 0x0100
)

// Pair selects one of the four 16-bit register pairs.
type Pair uint8

const (
	AF Pair = iota
	BC
	DE
	HL
)

var pairNames = [...]string{
	AF: "AF",
	BC: "BC",
	DE: "DE",
	HL: "HL",
}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// Registers holds the Game Boy CPU registers. The 8-bit
// registers are the only storage; the 16-bit pairs AF, BC,
// DE and HL are views composed on demand, with the first
// named register as the high byte.
//
// A Registers is owned by a single execution driver and is
// not safe for concurrent use.
type Registers struct {
	// A is the accumulator.
	A uint8
	// F holds the condition flags.
	F Flags

	B, C uint8
	D, E uint8
	H, L uint8

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

var (
	_ types.Resettable = (*Registers)(nil)
	_ types.Stater     = (*Registers)(nil)
)

// NewRegisters returns Registers in the boot state: every 8-bit
// register and flag cleared, SP at InitialSP and PC at InitialPC.
func NewRegisters() *Registers {
	r := &Registers{}
	r.Reset()
	return r
}

// Reset returns the registers to the boot state.
func (r *Registers) Reset() {
	*r = Registers{
		SP: InitialSP,
		PC: InitialPC,
	}
}

// Pair returns the 16-bit value of the given register pair.
// An unknown pair reads as 0.
func (r *Registers) Pair(p Pair) uint16 {
	switch p {
	case AF:
		return bits.Join(r.A, r.F.Byte())
	case BC:
		return bits.Join(r.B, r.C)
	case DE:
		return bits.Join(r.D, r.E)
	case HL:
		return bits.Join(r.H, r.L)
	}
	return 0
}

// SetPair writes value to the given register pair. For AF the
// lower nibble of the low byte is discarded, as F cannot hold
// it. Writes to an unknown pair are ignored.
func (r *Registers) SetPair(p Pair, value uint16) {
	high, low := bits.Split(value)
	switch p {
	case AF:
		r.A, r.F = high, FlagsFromByte(low)
	case BC:
		r.B, r.C = high, low
	case DE:
		r.D, r.E = high, low
	case HL:
		r.H, r.L = high, low
	}
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(flag Flag) bool {
	return r.F.Contains(flag)
}

// SetFlag sets the given flag to v.
func (r *Registers) SetFlag(flag Flag, v bool) {
	r.F = r.F.SetTo(flag, v)
}

// String returns the registers as shown by the debugger's CPU view.
func (r *Registers) String() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X [%s]",
		r.Pair(AF), r.Pair(BC), r.Pair(DE), r.Pair(HL), r.SP, r.PC, r.F)
}
