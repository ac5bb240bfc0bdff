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

// Package stepper implements instruction stepping for the debugger. In
// addition to stepping a single instruction, the Controller type can step
// over a subroutine call and step out of the current subroutine.
//
// To do this the Controller maintains its own call stack. The call stack is
// built only by looking at the opcode of each instruction before it is
// executed: a JSR, JSL or JSR (abs,X) pushes an entry and an RTS, RTL or RTI
// pops one. The hardware stack is never consulted.
//
// This means the call stack is a best-effort model of the program. It
// assumes that calls and returns are correctly paired. A program that pushes
// a return address by hand and then returns to it, that leaves a subroutine
// without returning, or that is interrupted mid-subroutine, will cause the
// call stack to differ from the hardware stack. ClearCallStack() can be used
// to resynchronise when that happens.
//
// The Controller knows nothing about the CPU or memory implementation. It is
// configured with three functions: a MemoryReader for reading opcodes and
// operands, a SingleStepper that executes exactly one instruction, and a
// PCGetter that returns the 24 bit address of the next instruction.
//
// The Controller is not safe for concurrent use.
package stepper
