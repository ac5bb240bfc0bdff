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

// Package instructions defines the 65816 instruction set: the mnemonic and
// addressing mode of every opcode, the encoded size of an instruction and
// the classification of opcodes that change the flow of a program.
//
// The classification functions (IsCall, IsReturn, IsBranch) are used by the
// debugger to track subroutine calls without needing to understand the
// instruction completely.
package instructions
