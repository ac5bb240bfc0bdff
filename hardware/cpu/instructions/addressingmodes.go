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

package instructions

// AddressingMode describes how the operand of an instruction is located.
type AddressingMode int

// List of supported addressing modes.
const (
	Implied     AddressingMode = iota
	Accumulator                // A

	Immediate      // #const. width follows the M flag
	ImmediateIndex // #const. width follows the X flag
	Immediate8     // #const. always 8bit (REP, SEP, BRK, COP, WDM)

	Relative     // rel8
	RelativeLong // rel16

	DirectPage                    // dp
	DirectPageX                   // dp,X
	DirectPageY                   // dp,Y
	DirectPageIndirect            // (dp)
	DirectPageIndexedIndirect     // (dp,X)
	DirectPageIndirectIndexed     // (dp),Y
	DirectPageIndirectLong        // [dp]
	DirectPageIndirectLongIndexed // [dp],Y
	StackRelative                 // sr,S
	StackRelativeIndirectIndexed  // (sr,S),Y

	Absolute                // abs
	AbsoluteX               // abs,X
	AbsoluteY               // abs,Y
	AbsoluteIndirect        // (abs)
	AbsoluteIndexedIndirect // (abs,X)
	AbsoluteIndirectLong    // [abs]
	AbsoluteLong            // long
	AbsoluteLongX           // long,X

	BlockMove // srcbk,destbk
)

// Size returns the number of bytes used to encode an instruction with the
// addressing mode. The size of the immediate modes depends on the register
// widths: m8 for the accumulator and x8 for the index registers.
func (m AddressingMode) Size(m8, x8 bool) int {
	switch m {
	case Implied, Accumulator:
		return 1
	case Immediate:
		if m8 {
			return 2
		}
		return 3
	case ImmediateIndex:
		if x8 {
			return 2
		}
		return 3
	case Immediate8, Relative:
		return 2
	case DirectPage, DirectPageX, DirectPageY, DirectPageIndirect,
		DirectPageIndexedIndirect, DirectPageIndirectIndexed,
		DirectPageIndirectLong, DirectPageIndirectLongIndexed,
		StackRelative, StackRelativeIndirectIndexed:
		return 2
	case RelativeLong, Absolute, AbsoluteX, AbsoluteY, AbsoluteIndirect,
		AbsoluteIndexedIndirect, AbsoluteIndirectLong, BlockMove:
		return 3
	case AbsoluteLong, AbsoluteLongX:
		return 4
	}
	return 1
}

// Format returns the operand notation for the addressing mode, with the
// operand value rendered by the %s verb.
func (m AddressingMode) Format() string {
	switch m {
	case Implied:
		return ""
	case Accumulator:
		return "A"
	case Immediate, ImmediateIndex, Immediate8:
		return "#%s"
	case DirectPageX, AbsoluteX, AbsoluteLongX:
		return "%s,X"
	case DirectPageY, AbsoluteY:
		return "%s,Y"
	case DirectPageIndirect, AbsoluteIndirect:
		return "(%s)"
	case DirectPageIndexedIndirect, AbsoluteIndexedIndirect:
		return "(%s,X)"
	case DirectPageIndirectIndexed:
		return "(%s),Y"
	case DirectPageIndirectLong, AbsoluteIndirectLong:
		return "[%s]"
	case DirectPageIndirectLongIndexed:
		return "[%s],Y"
	case StackRelative:
		return "%s,S"
	case StackRelativeIndirectIndexed:
		return "(%s,S),Y"
	}
	return "%s"
}
