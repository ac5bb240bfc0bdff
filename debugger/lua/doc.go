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

// Package lua runs Lua scripts against the debugger. Scripts are run with
// the github.com/yuin/gopher-lua interpreter with the base, table, string and
// math libraries available. The io and os libraries are not available.
//
// The following globals are added:
//
//	step()          step one instruction. returns ok, message
//	over([n])       step over a subroutine call. returns ok, message
//	out([n])        step out of the current subroutine. returns ok, message
//	pc()            address of the next instruction
//	peek(addr)      read a byte from memory
//	poke(addr, v)   write a byte to memory
//	reg(name)       value of a register. A, X, Y, D, SP, PC, PB, DB or P
//	depth()         depth of the call stack
//	print(...)      print to the debugger terminal
//
// The optional argument to over() and out() is the maximum number of
// instructions to execute.
package lua
