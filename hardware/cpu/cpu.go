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

package cpu

import (
	"fmt"

	"github.com/jetsetilly/gopher65816/hardware/cpu/execution"
	"github.com/jetsetilly/gopher65816/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65816/hardware/memory/cpubus"
)

// Sentinal error patterns returned by ExecuteInstruction().
const (
	Stopped = "cpu: stopped"
	Waiting = "cpu: waiting for interrupt"
)

// Interrupt and reset vectors.
const (
	VectorNativeCOP    = 0xffe4
	VectorNativeBRK    = 0xffe6
	VectorEmulationCOP = 0xfff4
	VectorReset        = 0xfffc
	VectorEmulationBRK = 0xfffe
)

// CPU implements the 65816.
type CPU struct {
	registers.File

	mem cpubus.Memory

	// last result. see the execution package
	LastResult execution.Result

	// the CPU has executed STP and requires a Reset()
	Stopped bool

	// the CPU has executed WAI. without interrupts there is nothing to wake
	// the CPU so this also requires a Reset()
	Waiting bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// register file is in its reset state but the program counter is not loaded
// from the reset vector. Use Reset() for that.
func NewCPU(mem cpubus.Memory) *CPU {
	mc := &CPU{mem: mem}
	mc.File.Reset()
	return mc
}

// Plumb a new memory bus into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return mc.File.String()
}

// Reset the CPU. The program counter is loaded from the reset vector.
func (mc *CPU) Reset() {
	mc.File.Reset()
	mc.LastResult.Reset()
	mc.Stopped = false
	mc.Waiting = false
	mc.PC = mc.mem.ReadWord(VectorReset, VectorReset+1)
}

// LoadPC sets the program bank and program counter from a 24 bit address.
func (mc *CPU) LoadPC(address uint32) {
	mc.PB = uint8(address >> 16)
	mc.PC = uint16(address)
}

// EffectiveAddress is the location of an instruction's operand. The low and
// high bytes of a 16bit operand are not necessarily contiguous, for example
// when a direct page access wraps inside bank zero. Only Low is used for 8bit
// operands.
type EffectiveAddress struct {
	Low  uint32
	High uint32
}

func (ea EffectiveAddress) String() string {
	return fmt.Sprintf("%06x/%06x", ea.Low, ea.High)
}

// Linear returns an EffectiveAddress where the high byte immediately follows
// the low byte in the 24 bit address space.
func Linear(address uint32) EffectiveAddress {
	return EffectiveAddress{
		Low:  address & 0xffffff,
		High: (address + 1) & 0xffffff,
	}
}
