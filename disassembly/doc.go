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

// Package disassembly decodes 65816 instructions in memory into a printable
// form. It does not execute anything and it does not track register widths.
// The width of immediate operands must be supplied by the caller, usually
// from the current state of the CPU.
//
// Operands that refer to code (subroutine calls, jumps and branches) are
// replaced by a symbol if one is available.
package disassembly
