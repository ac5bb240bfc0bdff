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

// Package registers implements the register file of the 65816 CPU along with
// the binary and decimal arithmetic that operates on register values.
//
// The accumulator and index registers are stored as 16 bit values regardless
// of the current register width. The width is selected by the M and X flags
// of the status register (or by emulation mode) and is represented by the
// Width type. Functions in this package that operate on register values take
// a Width argument and never touch bits outside of the width.
//
// Arithmetic functions return the result and the new carry and overflow
// state. Setting the status register from those values is the responsibility
// of the caller. For example:
//
//	r, c, v := registers.Add(f.A, value, f.Status.Carry, w)
//	f.Status.Carry = c
//	f.Status.Overflow = v
//	f.A = (f.A &^ w.Mask()) | r
//	f.SetZN(f.A, w)
package registers
