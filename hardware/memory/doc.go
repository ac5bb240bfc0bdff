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

// Package memory implements a flat 24 bit address space suitable for running
// 65816 programs without any other hardware attached. Every bank is plain RAM
// and banks are only allocated when they are first written to.
//
// The Flat type implements the cpubus.Memory interface. It also counts the
// number of idle cycles signalled by the CPU, which is useful when testing
// the timing contract of read-modify-write instructions.
package memory
