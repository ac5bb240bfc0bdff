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

package colorterm

// list of ASCII codes for non-alphanumeric characters.
const (
	keyInterrupt      = 3 // end-of-text character
	keyEOT            = 4
	keyBackspace      = 8
	keyTab            = 9
	keyLineFeed       = 10
	keyCarriageReturn = 13
	keyEsc            = 27
	keyDelete         = 127
)

// list of codes that can follow keyEsc.
const (
	escCursor = '['
	escSS3    = 'O'
)

// list of codes that can follow escCursor.
const (
	cursorUp       = 'A'
	cursorDown     = 'B'
	cursorForward  = 'C'
	cursorBackward = 'D'
	cursorHome     = 'H'
	cursorEnd      = 'F'
	cursorDelete   = '3' // followed by a tilde
)
