// This file is part of Gopher65816.
//
// Gopher65816 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher65816 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher65816.  If not, see <https://www.gnu.org/licenses/>.

package registers

import "fmt"

// File is the complete register file of the 65816.
type File struct {
	// accumulator. when the accumulator is 8bit, the high byte (sometimes
	// called B) is preserved by all operations except XBA and TCD etc.
	A uint16

	// index registers. the high bytes are always zero when the index width
	// is 8bit.
	X uint16
	Y uint16

	// direct page, stack pointer and program counter
	D  uint16
	SP uint16
	PC uint16

	// program bank (sometimes called K) and data bank
	PB uint8
	DB uint8

	Status StatusRegister

	// emulation mode
	E bool
}

// Reset the register file to the state after a hardware reset. The program
// counter is not changed. It should be loaded from the reset vector.
func (f *File) Reset() {
	f.E = true
	f.D = 0
	f.PB = 0
	f.DB = 0
	f.SP = 0x01ff
	f.Status.Sign = false
	f.Status.Overflow = false
	f.Status.Zero = false
	f.Status.Carry = false
	f.LoadStatus(ResetValue)
}

func (f File) String() string {
	e := 'n'
	if f.E {
		e = 'E'
	}
	return fmt.Sprintf("A=%04x X=%04x Y=%04x D=%04x SP=%04x DB=%02x PC=%02x:%04x P=%s %c",
		f.A, f.X, f.Y, f.D, f.SP, f.DB, f.PB, f.PC, f.Status.String(), e)
}

// AccumulatorSize returns the current width of the accumulator and of memory
// operations.
func (f File) AccumulatorSize() Width {
	if f.E || f.Status.MemorySelect {
		return Width8
	}
	return Width16
}

// IndexSize returns the current width of the X and Y registers.
func (f File) IndexSize() Width {
	if f.E || f.Status.IndexSelect {
		return Width8
	}
	return Width16
}

// SetZN sets the zero and sign flags according to value. Only the bits
// covered by the width are considered.
func (f *File) SetZN(value uint16, w Width) {
	f.Status.Zero = value&w.Mask() == 0
	f.Status.Sign = value&w.Sign() == w.Sign()
}

// LoadStatus sets the status register from an 8 bit value and applies the
// side effects of a change in width. In emulation mode the M and X flags
// cannot be cleared.
func (f *File) LoadStatus(v uint8) {
	f.Status.Load(v)
	f.applyMode()
}

// SetEmulation sets or clears emulation mode.
func (f *File) SetEmulation(e bool) {
	f.E = e
	f.applyMode()
}

func (f *File) applyMode() {
	if f.E {
		f.Status.MemorySelect = true
		f.Status.IndexSelect = true
		f.SP = 0x0100 | (f.SP & 0x00ff)
	}
	if f.Status.IndexSelect {
		f.X &= 0x00ff
		f.Y &= 0x00ff
	}
}

// PCAddress returns the 24 bit address of the program counter.
func (f File) PCAddress() uint32 {
	return uint32(f.PB)<<16 | uint32(f.PC)
}
