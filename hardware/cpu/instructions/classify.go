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

// Opcodes of the instructions that change the flow of the program.
const (
	JSR         = 0x20
	JSL         = 0x22
	JSRIndirect = 0xfc // JSR (abs,X)
	RTS         = 0x60
	RTL         = 0x6b
	RTI         = 0x40

	BPL = 0x10
	BMI = 0x30
	BVC = 0x50
	BVS = 0x70
	BCC = 0x90
	BCS = 0xb0
	BNE = 0xd0
	BEQ = 0xf0
	BRA = 0x80
	BRL = 0x82

	JMP         = 0x4c
	JML         = 0x5c
	JMPIndirect = 0x6c // JMP (abs)
	JMPIndexed  = 0x7c // JMP (abs,X)
	JMLIndirect = 0xdc // JML [abs]
)

// IsCall returns true if the opcode calls a subroutine.
func IsCall(opcode uint8) bool {
	switch opcode {
	case JSR, JSL, JSRIndirect:
		return true
	}
	return false
}

// IsReturn returns true if the opcode returns from a subroutine or from an
// interrupt.
func IsReturn(opcode uint8) bool {
	switch opcode {
	case RTS, RTL, RTI:
		return true
	}
	return false
}

// IsBranch returns true if the opcode is a branch or a jump. Subroutine calls
// are not included.
func IsBranch(opcode uint8) bool {
	switch opcode {
	case BPL, BMI, BVC, BVS, BCC, BCS, BNE, BEQ, BRA, BRL:
		return true
	case JMP, JML, JMPIndirect, JMPIndexed, JMLIndirect:
		return true
	}
	return false
}

// IsLongCall returns true if the opcode calls a subroutine in another bank.
func IsLongCall(opcode uint8) bool {
	return opcode == JSL
}

// Size returns the encoded size of the instruction in bytes, assuming 8bit
// immediate values.
func Size(opcode uint8) int {
	return definitions[opcode].Mode.Size(true, true)
}

// SizeWithWidths returns the encoded size of the instruction in bytes for the
// given accumulator and index register widths.
func SizeWithWidths(opcode uint8, m8 bool, x8 bool) int {
	return definitions[opcode].Mode.Size(m8, x8)
}

// Mnemonic returns the three letter mnemonic for the opcode.
func Mnemonic(opcode uint8) string {
	return definitions[opcode].Mnemonic
}
