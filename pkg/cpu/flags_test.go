package cpu

import "testing"

var allFlags = []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

func TestFlags(t *testing.T) {
	t.Run("empty", func(t *testing.T) {
		f := EmptyFlags()
		if f.Byte() != 0x00 {
			t.Errorf("expected empty flags byte 00, got %02X", f.Byte())
		}
		for _, flag := range allFlags {
			if f.Contains(flag) {
				t.Errorf("expected flag %d to be unset, got set", flag)
			}
		}
	})
	t.Run("fromByte", func(t *testing.T) {
		for b := 0; b < 256; b++ {
			f := FlagsFromByte(uint8(b))
			if f.Byte()&0x0F != 0 {
				t.Fatalf("FlagsFromByte(%02X): low nibble set in %02X", b, f.Byte())
			}
			if f.Byte() != uint8(b)&0xF0 {
				t.Fatalf("FlagsFromByte(%02X): got %02X, want %02X", b, f.Byte(), uint8(b)&0xF0)
			}
		}
	})
	t.Run("unchecked conversion", func(t *testing.T) {
		if b := Flags(0xFF).Byte(); b != 0xF0 {
			t.Errorf("expected F0, got %02X", b)
		}
	})
	t.Run("independence", func(t *testing.T) {
		f := EmptyFlags().With(FlagCarry)
		if !f.Contains(FlagCarry) {
			t.Errorf("expected carry to be set")
		}
		for _, flag := range []Flag{FlagZero, FlagSubtract, FlagHalfCarry} {
			if f.Contains(flag) {
				t.Errorf("expected flag %d to be unset, got set", flag)
			}
		}
		if f.Byte() != 0x10 {
			t.Errorf("expected 10, got %02X", f.Byte())
		}
	})
	t.Run("set", func(t *testing.T) {
		for _, flag := range allFlags {
			f := EmptyFlags().SetTo(flag, true)
			if !f.Contains(flag) {
				t.Errorf("expected flag %d to be set, got unset", flag)
			}
			if f.Byte() != 1<<flag {
				t.Errorf("expected %02X, got %02X", uint8(1<<flag), f.Byte())
			}
			if f = f.SetTo(flag, false); f != EmptyFlags() {
				t.Errorf("expected flag %d to be cleared, got %02X", flag, f.Byte())
			}
		}
	})
	t.Run("without", func(t *testing.T) {
		f := FlagsFromByte(0xF0).Without(FlagSubtract)
		if f.Byte() != 0xB0 {
			t.Errorf("expected B0, got %02X", f.Byte())
		}
	})
}

func TestFlags_String(t *testing.T) {
	for _, test := range []struct {
		b    uint8
		want string
	}{
		{0x00, "----"},
		{0x10, "---C"},
		{0xA0, "Z-H-"},
		{0xFF, "ZNHC"},
	} {
		if got := FlagsFromByte(test.b).String(); got != test.want {
			t.Errorf("%02X: got %q, want %q", test.b, got, test.want)
		}
	}
}
