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

package disassembly_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/disassembly"
	"github.com/jetsetilly/gopher65816/hardware/memory"
	"github.com/jetsetilly/gopher65816/symbols"
	"github.com/jetsetilly/gopher65816/test"
)

func TestDisassemble(t *testing.T) {
	mem := memory.NewFlat()
	mem.Load(0x008000, []uint8{
		0xa9, 0x34, 0x12, // LDA #$1234 (16bit)
		0x20, 0x10, 0x80, // JSR $8010
		0x80, 0xfe, // BRA $8006
		0x22, 0x00, 0x80, 0x01, // JSL $018000
		0x54, 0x7e, 0x7f, // MVN
	})

	syms := symbols.NewSymbols()
	syms.Add(0x008000, "Reset")
	syms.Add(0x008010, "update")

	e := disassembly.Disassemble(mem, 0x008000, false, false, syms)
	test.ExpectEquality(t, e.Size, 3)
	test.ExpectEquality(t, e.String(), "LDA #$1234")
	test.ExpectEquality(t, e.Bytecode, "a9 34 12")
	test.ExpectEquality(t, e.Label, "Reset")
	test.ExpectEquality(t, e.Columns(), "$008000  a9 34 12     Reset       LDA #$1234")

	// same instruction with an 8bit accumulator
	e = disassembly.Disassemble(mem, 0x008000, true, true, nil)
	test.ExpectEquality(t, e.Size, 2)
	test.ExpectEquality(t, e.String(), "LDA #$34")

	entries := disassembly.Range(mem, 0x008000, 5, false, false, syms)
	test.DemandEquality(t, len(entries), 5)
	test.ExpectEquality(t, entries[1].String(), "JSR update")
	test.ExpectEquality(t, entries[2].Address, uint32(0x008006))
	test.ExpectEquality(t, entries[2].String(), "BRA $8006")
	test.ExpectEquality(t, entries[3].String(), "JSL $018000")
	test.ExpectEquality(t, entries[4].Address, uint32(0x00800c))
	test.ExpectEquality(t, entries[4].String(), "MVN $7f,$7e")
}
