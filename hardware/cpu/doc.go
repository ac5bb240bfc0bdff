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

// Package cpu emulates the 65816 microprocessor. The CPU type combines the
// register file from the registers package with an implementation of the
// cpubus.Memory interface.
//
// The instruction executor is exposed as one method per operation (And, Adc,
// Lda, Asl, etc.). Each of these methods takes an EffectiveAddress that has
// already been resolved by the caller. The executor never fails: the memory
// bus has no error channel and every combination of flags is valid.
//
//	mc := cpu.NewCPU(mem)
//	mc.Adc(cpu.EffectiveAddress{Low: 0x7e0010, High: 0x7e0011})
//
// ExecuteInstruction() decodes and executes the instruction at the program
// counter, resolving the addressing mode before calling the executor. It is a
// convenience for the debugger and for tests and makes no attempt at cycle
// accuracy. The LastResult field records details of the most recently
// executed instruction.
//
//	for {
//		if err := mc.ExecuteInstruction(); err != nil {
//			break
//		}
//		fmt.Println(mc.LastResult)
//	}
//
// ExecuteInstruction() returns an error only when the CPU has been halted by
// STP or WAI. Reset() is required to continue after STP.
package cpu
