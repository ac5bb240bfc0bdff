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

package instructions_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65816/test"
)

func TestClassification(t *testing.T) {
	calls := 0
	returns := 0
	branches := 0

	for op := 0; op <= 0xff; op++ {
		o := uint8(op)
		c := instructions.IsCall(o)
		r := instructions.IsReturn(o)
		b := instructions.IsBranch(o)

		// the three classifications are mutually exclusive
		n := 0
		for _, v := range []bool{c, r, b} {
			if v {
				n++
			}
		}
		test.ExpectSuccess(t, n <= 1, op)

		if c {
			calls++
			test.ExpectEquality(t, instructions.Lookup(o).Category, instructions.Subroutine, op)
		}
		if r {
			returns++
		}
		if b {
			branches++
			test.ExpectEquality(t, instructions.Lookup(o).Category, instructions.Flow, op)
		}
	}

	test.ExpectEquality(t, calls, 3)
	test.ExpectEquality(t, returns, 3)
	test.ExpectEquality(t, branches, 15)

	test.ExpectSuccess(t, instructions.IsCall(0x20))
	test.ExpectSuccess(t, instructions.IsCall(0x22))
	test.ExpectSuccess(t, instructions.IsCall(0xfc))
	test.ExpectSuccess(t, instructions.IsReturn(0x60))
	test.ExpectSuccess(t, instructions.IsReturn(0x6b))
	test.ExpectSuccess(t, instructions.IsReturn(0x40))
	test.ExpectSuccess(t, instructions.IsBranch(0x80))
	test.ExpectSuccess(t, instructions.IsBranch(0x82))
	test.ExpectSuccess(t, instructions.IsBranch(0xdc))
	test.ExpectFailure(t, instructions.IsBranch(0xea))
	test.ExpectSuccess(t, instructions.IsLongCall(0x22))
	test.ExpectFailure(t, instructions.IsLongCall(0x20))
}

func TestSize(t *testing.T) {
	test.ExpectEquality(t, instructions.Size(0xea), 1) // NOP
	test.ExpectEquality(t, instructions.Size(0x60), 1) // RTS
	test.ExpectEquality(t, instructions.Size(0x80), 2) // BRA
	test.ExpectEquality(t, instructions.Size(0xa9), 2) // LDA #
	test.ExpectEquality(t, instructions.Size(0xc2), 2) // REP
	test.ExpectEquality(t, instructions.Size(0x20), 3) // JSR abs
	test.ExpectEquality(t, instructions.Size(0xfc), 3) // JSR (abs,X)
	test.ExpectEquality(t, instructions.Size(0x82), 3) // BRL
	test.ExpectEquality(t, instructions.Size(0x54), 3) // MVN
	test.ExpectEquality(t, instructions.Size(0x22), 4) // JSL
	test.ExpectEquality(t, instructions.Size(0x5c), 4) // JML
	test.ExpectEquality(t, instructions.Size(0xbf), 4) // LDA long,X

	test.ExpectEquality(t, instructions.SizeWithWidths(0xa9, false, true), 3)
	test.ExpectEquality(t, instructions.SizeWithWidths(0xa2, false, true), 2)
	test.ExpectEquality(t, instructions.SizeWithWidths(0xa2, true, false), 3)
	test.ExpectEquality(t, instructions.SizeWithWidths(0xc2, false, false), 2)

	for op := 0; op <= 0xff; op++ {
		s := instructions.Size(uint8(op))
		test.ExpectSuccess(t, s >= 1 && s <= 4, op)
	}
}

func TestDefinitions(t *testing.T) {
	for op := 0; op <= 0xff; op++ {
		d := instructions.Lookup(uint8(op))
		test.ExpectEquality(t, d.OpCode, uint8(op))
		test.ExpectEquality(t, len(d.Mnemonic), 3, op)
	}

	test.ExpectEquality(t, instructions.Lookup(0x20).Disassemble(0x0010, 3), "JSR $0010")
	test.ExpectEquality(t, instructions.Lookup(0x22).Disassemble(0x018000, 4), "JSL $018000")
	test.ExpectEquality(t, instructions.Lookup(0xa9).Disassemble(0x12, 2), "LDA #$12")
	test.ExpectEquality(t, instructions.Lookup(0xb1).Disassemble(0x12, 2), "LDA ($12),Y")
	test.ExpectEquality(t, instructions.Lookup(0x0a).Disassemble(0, 1), "ASL A")
	test.ExpectEquality(t, instructions.Lookup(0xea).Disassemble(0, 1), "NOP")
	test.ExpectEquality(t, instructions.Lookup(0x54).Disassemble(0x7e7f, 3), "MVN $7e,$7f")
	test.ExpectEquality(t, instructions.Lookup(0x60).Category, instructions.Subroutine)
	test.ExpectEquality(t, instructions.Lookup(0x1a).Category, instructions.RMW)
	test.ExpectEquality(t, instructions.Lookup(0xaa).Category, instructions.Internal)
	test.ExpectEquality(t, instructions.Mnemonic(0x6b), "RTL")
}
