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

// Package debugger implements a command line debugger for the 65816. The
// debugger works on a hardware.Machine and reads commands through the
// terminal.Terminal interface.
//
// Stepping is done through the stepper package, which maintains a call stack
// so that subroutine calls can be stepped over and stepped out of. The call
// stack is a heuristic. See the stepper package documentation for details.
//
// Commands can be replayed from a script file or recorded to one, using the
// script package. Lua scripts are run with the lua package.
//
// The Debugger type is not safe for concurrent use.
package debugger
