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

// Package symbols keeps track of the labels attached to addresses in the 24
// bit address space. The primary structure for this is the Symbols type,
// which is safe for concurrent use.
//
// Symbols can be added one at a time with Add() or read from a symbols file
// produced by an assembler or emulator with ReadFile(). Three file formats are
// understood:
//
//	WLA-DX     [labels] section of bank:offset pairs. eg. 00:8000 Reset
//	Mesen      address:label pairs, optionally prefixed with PRG:
//	bsnes      six digit address followed by a label. eg. 008000 Reset
//
// The format is detected from the filename extension and the content of the
// file. bsnes is assumed if nothing else matches.
package symbols
