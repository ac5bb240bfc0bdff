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

package hardware_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware"
	"github.com/jetsetilly/gopher65816/hardware/cpu"
	"github.com/jetsetilly/gopher65816/test"
)

func TestRunToStop(t *testing.T) {
	m := hardware.NewMachine()
	m.Mem.WriteWord(cpu.VectorReset, cpu.VectorReset+1, 0x8000)

	// LDA #$05; loop: DEC A; BNE loop; STP
	m.Mem.Load(0x8000, []uint8{0xa9, 0x05, 0x3a, 0xd0, 0xfd, 0xdb})
	m.Reset()

	n, err := m.Run(nil)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 12)
	test.ExpectSuccess(t, m.CPU.Stopped)
	test.ExpectEquality(t, m.CPU.A&0xff, uint16(0))

	// the stopped CPU refuses to step
	test.ExpectSuccess(t, curated.Is(m.Step(), cpu.Stopped))
}

func TestRunLimit(t *testing.T) {
	m := hardware.NewMachine()

	// BRA to self at address zero
	m.Mem.Load(0x0000, []uint8{0x80, 0xfe})

	limit := 100
	n, err := m.Run(func() (bool, error) {
		limit--
		return limit >= 0, nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 100)
	test.ExpectEquality(t, m.CPU.PCAddress(), uint32(0x0000))
}
