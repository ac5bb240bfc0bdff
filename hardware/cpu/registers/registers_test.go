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

package registers_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65816/test"
)

func TestStatusRegister(t *testing.T) {
	var sr registers.StatusRegister

	test.ExpectEquality(t, sr.String(), "nvmxdizc")
	test.ExpectEquality(t, sr.Value(), uint8(0x00))

	sr.Reset()
	test.ExpectEquality(t, sr.String(), "nvMXdIzc")
	test.ExpectEquality(t, sr.Value(), uint8(0x34))

	for v := 0; v <= 0xff; v++ {
		sr.Load(uint8(v))
		if !test.ExpectEquality(t, sr.Value(), uint8(v)) {
			return
		}
	}

	sr.Load(registers.Sign | registers.Carry)
	test.ExpectEquality(t, sr.String(), "NvmxdizC")
}

func TestWidth(t *testing.T) {
	test.ExpectEquality(t, registers.Width8.Mask(), uint16(0xff))
	test.ExpectEquality(t, registers.Width8.Sign(), uint16(0x80))
	test.ExpectEquality(t, registers.Width8.Bit6(), uint16(0x40))
	test.ExpectSuccess(t, registers.Width8.Is8Bit())

	test.ExpectEquality(t, registers.Width16.Mask(), uint16(0xffff))
	test.ExpectEquality(t, registers.Width16.Sign(), uint16(0x8000))
	test.ExpectEquality(t, registers.Width16.Bit6(), uint16(0x4000))
	test.ExpectFailure(t, registers.Width16.Is8Bit())
}

func TestSetZN(t *testing.T) {
	var f registers.File

	// the zero flag only considers bits inside the width
	f.SetZN(0x1200, registers.Width8)
	test.ExpectSuccess(t, f.Status.Zero)
	test.ExpectFailure(t, f.Status.Sign)

	f.SetZN(0x1200, registers.Width16)
	test.ExpectFailure(t, f.Status.Zero)
	test.ExpectFailure(t, f.Status.Sign)

	f.SetZN(0x0080, registers.Width8)
	test.ExpectFailure(t, f.Status.Zero)
	test.ExpectSuccess(t, f.Status.Sign)

	f.SetZN(0x0080, registers.Width16)
	test.ExpectFailure(t, f.Status.Sign)

	f.SetZN(0x8000, registers.Width16)
	test.ExpectSuccess(t, f.Status.Sign)
}

func TestWidthSelection(t *testing.T) {
	var f registers.File

	f.Reset()
	test.ExpectSuccess(t, f.E)
	test.ExpectEquality(t, f.AccumulatorSize(), registers.Width8)
	test.ExpectEquality(t, f.IndexSize(), registers.Width8)
	test.ExpectEquality(t, f.SP, uint16(0x01ff))

	// M and X cannot be cleared in emulation mode
	f.LoadStatus(0x00)
	test.ExpectSuccess(t, f.Status.MemorySelect)
	test.ExpectSuccess(t, f.Status.IndexSelect)

	f.SetEmulation(false)
	f.LoadStatus(0x00)
	test.ExpectEquality(t, f.AccumulatorSize(), registers.Width16)
	test.ExpectEquality(t, f.IndexSize(), registers.Width16)

	// setting the X flag clears the high byte of the index registers
	f.X = 0x1234
	f.Y = 0xabcd
	f.LoadStatus(registers.IndexSelect)
	test.ExpectEquality(t, f.X, uint16(0x0034))
	test.ExpectEquality(t, f.Y, uint16(0x00cd))
	test.ExpectEquality(t, f.AccumulatorSize(), registers.Width16)
	test.ExpectEquality(t, f.IndexSize(), registers.Width8)

	// returning to emulation mode forces the stack into page one
	f.SP = 0x1fff
	f.SetEmulation(true)
	test.ExpectEquality(t, f.SP, uint16(0x01ff))
}

func TestPCAddress(t *testing.T) {
	f := registers.File{PB: 0x12, PC: 0x3456}
	test.ExpectEquality(t, f.PCAddress(), uint32(0x123456))
	test.ExpectEquality(t, f.String(), "A=0000 X=0000 Y=0000 D=0000 SP=0000 DB=00 PC=12:3456 P=nvmxdizc n")
}
