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

// Package terminal defines the operations required by the debugger's command
// line interface. The plainterm and colorterm sub-packages provide
// implementations.
//
// The debugger only ever talks to the Terminal interface. The plainterm
// implementation works with any io.Reader and io.Writer and so is useful for
// testing and for when input is not coming from a real terminal.
package terminal
