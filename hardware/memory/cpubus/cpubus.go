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

// Package cpubus defines the interface through which the CPU accesses
// memory.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. Addresses are 24 bit values: the bank in bits 16 to 23 and the offset
// in bits 0 to 15.
//
// Word accesses take the address of the low byte and the address of the high
// byte separately. The two addresses are not necessarily contiguous. For
// example, a direct page access at offset 0xffff wraps to offset 0x0000 of
// bank zero for the high byte.
//
// Idle is called by the CPU on cycles that do not access the bus. For
// read-modify-write instructions Idle(false) is called exactly once between
// the read and the write. The waiting argument is true when the CPU is
// halted by WAI.
type Memory interface {
	ReadByte(address uint32) uint8
	ReadWord(low, high uint32) uint16
	WriteByte(address uint32, data uint8)
	WriteWord(low, high uint32, data uint16)
	Idle(waiting bool)
}
