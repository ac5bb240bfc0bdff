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

package hardware

import (
	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware/cpu"
	"github.com/jetsetilly/gopher65816/hardware/memory"
)

// Machine is the main container for the emulated components.
type Machine struct {
	CPU *cpu.CPU
	Mem *memory.Flat
}

// NewMachine is the preferred method of initialisation for the Machine type.
// The CPU is not reset. Call Reset() once a program has been loaded.
func NewMachine() *Machine {
	m := &Machine{
		Mem: memory.NewFlat(),
	}
	m.CPU = cpu.NewCPU(m.Mem)
	return m
}

// Reset the CPU. Memory is not changed.
func (m *Machine) Reset() {
	m.CPU.Reset()
}

// Step executes a single instruction.
func (m *Machine) Step() error {
	return m.CPU.ExecuteInstruction()
}

// Run executes instructions until the CPU stops or until continueCheck()
// returns false. continueCheck() is called before every instruction and may
// be nil. The number of instructions executed is returned.
//
// A CPU that stops with STP or WAI is not an error.
func (m *Machine) Run(continueCheck func() (bool, error)) (int, error) {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	n := 0
	for {
		cont, err := continueCheck()
		if err != nil {
			return n, err
		}
		if !cont {
			return n, nil
		}

		err = m.Step()
		if err != nil {
			if curated.Is(err, cpu.Stopped) || curated.Is(err, cpu.Waiting) {
				return n, nil
			}
			return n, err
		}
		n++
	}
}
