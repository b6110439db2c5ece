package cpu

import "github.com/thelolagemann/gomeboy-registers/pkg/types"

// StateSize is the number of bytes Save writes.
const StateSize = 12

// Save writes the registers to s in the order
// A, F, B, C, D, E, H, L, SP, PC.
func (r *Registers) Save(s *types.State) {
	s.Write8(r.A)
	s.Write8(r.F.Byte())
	s.Write8(r.B)
	s.Write8(r.C)
	s.Write8(r.D)
	s.Write8(r.E)
	s.Write8(r.H)
	s.Write8(r.L)
	s.Write16(r.SP)
	s.Write16(r.PC)
}

// Load reads registers written by Save. If s holds fewer than
// StateSize unread bytes the registers are left unchanged and
// s.Err reports types.ErrShortState. A State that already failed
// a read has no unread bytes left.
func (r *Registers) Load(s *types.State) {
	var n Registers
	n.A = s.Read8()
	n.F = FlagsFromByte(s.Read8())
	n.B = s.Read8()
	n.C = s.Read8()
	n.D = s.Read8()
	n.E = s.Read8()
	n.H = s.Read8()
	n.L = s.Read8()
	n.SP = s.Read16()
	n.PC = s.Read16()
	if s.Err() != nil {
		return
	}
	*r = n
}
