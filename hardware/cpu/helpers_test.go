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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/hardware/cpu"
	"github.com/jetsetilly/gopher65816/hardware/memory"
	"github.com/jetsetilly/gopher65816/test"
)

// origin of test programs in bank zero.
const origin = 0x8000

func newCPU(bytes ...uint8) (*cpu.CPU, *memory.Flat) {
	mem := memory.NewFlat()
	mem.WriteWord(cpu.VectorReset, cpu.VectorReset+1, origin)
	mem.Load(origin, bytes)
	mc := cpu.NewCPU(mem)
	mc.Reset()
	return mc, mem
}

// native mode with 8bit accumulator and index registers.
func native8(mc *cpu.CPU) {
	mc.SetEmulation(false)
	mc.LoadStatus(0x34)
}

// native mode with 16bit accumulator and index registers.
func native16(mc *cpu.CPU) {
	mc.SetEmulation(false)
	mc.LoadStatus(0x04)
}

func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	err := mc.ExecuteInstruction()
	if err != nil {
		t.Fatal(err)
	}
	err = mc.LastResult.IsValid()
	if err != nil {
		t.Fatal(err)
	}
}

func flags(t *testing.T, mc *cpu.CPU, expected string) {
	t.Helper()
	test.ExpectEquality(t, mc.Status.String(), expected)
}
