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

package registers

// Width is the size of a register operation.
type Width int

// List of valid Width values.
const (
	Width8  Width = 8
	Width16 Width = 16
)

func (w Width) String() string {
	if w == Width8 {
		return "8bit"
	}
	return "16bit"
}

// Is8Bit returns true if the width is eight bits.
func (w Width) Is8Bit() bool {
	return w == Width8
}

// Mask returns the bits covered by the width.
func (w Width) Mask() uint16 {
	if w == Width8 {
		return 0x00ff
	}
	return 0xffff
}

// Sign returns the most significant bit of the width.
func (w Width) Sign() uint16 {
	if w == Width8 {
		return 0x0080
	}
	return 0x8000
}

// Bit6 returns the bit below the most significant bit. It is the bit copied
// into the overflow flag by the BIT instruction.
func (w Width) Bit6() uint16 {
	if w == Width8 {
		return 0x0040
	}
	return 0x4000
}

// nibbles is the number of BCD digits in the width.
func (w Width) nibbles() int {
	if w == Width8 {
		return 2
	}
	return 4
}
