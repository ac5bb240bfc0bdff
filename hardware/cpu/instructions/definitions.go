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

import (
	"fmt"
	"strings"
)

// Definition describes a single opcode.
type Definition struct {
	OpCode   uint8
	Mnemonic string
	Mode     AddressingMode
	Category Category
}

func (defn Definition) String() string {
	return fmt.Sprintf("%02x %s [%s]", defn.OpCode, defn.Mnemonic, defn.Category)
}

// Disassemble returns the instruction in assembly notation. The operand is
// the value encoded in the bytes following the opcode, of which there are
// size-1.
func (defn Definition) Disassemble(operand uint32, size int) string {
	var o string
	switch defn.Mode {
	case BlockMove:
		return fmt.Sprintf("%s $%02x,$%02x", defn.Mnemonic, (operand>>8)&0xff, operand&0xff)
	default:
		switch size {
		case 2:
			o = fmt.Sprintf("$%02x", operand&0xff)
		case 3:
			o = fmt.Sprintf("$%04x", operand&0xffff)
		case 4:
			o = fmt.Sprintf("$%06x", operand&0xffffff)
		}
	}

	f := defn.Mode.Format()
	if f == "" {
		return defn.Mnemonic
	}
	if !strings.Contains(f, "%s") {
		return fmt.Sprintf("%s %s", defn.Mnemonic, f)
	}
	return fmt.Sprintf("%s %s", defn.Mnemonic, fmt.Sprintf(f, o))
}

// Lookup returns the definition for the opcode.
func Lookup(opcode uint8) Definition {
	return definitions[opcode]
}

func init() {
	for i := range definitions {
		if c, ok := categories[definitions[i].Mnemonic]; ok {
			definitions[i].Category = c
		} else {
			definitions[i].Category = Internal
		}
	}
}

// indexed by opcode.
var definitions = [256]Definition{
	{OpCode: 0x00, Mnemonic: "BRK", Mode: Immediate8},
	{OpCode: 0x01, Mnemonic: "ORA", Mode: DirectPageIndexedIndirect},
	{OpCode: 0x02, Mnemonic: "COP", Mode: Immediate8},
	{OpCode: 0x03, Mnemonic: "ORA", Mode: StackRelative},
	{OpCode: 0x04, Mnemonic: "TSB", Mode: DirectPage},
	{OpCode: 0x05, Mnemonic: "ORA", Mode: DirectPage},
	{OpCode: 0x06, Mnemonic: "ASL", Mode: DirectPage},
	{OpCode: 0x07, Mnemonic: "ORA", Mode: DirectPageIndirectLong},
	{OpCode: 0x08, Mnemonic: "PHP", Mode: Implied},
	{OpCode: 0x09, Mnemonic: "ORA", Mode: Immediate},
	{OpCode: 0x0a, Mnemonic: "ASL", Mode: Accumulator},
	{OpCode: 0x0b, Mnemonic: "PHD", Mode: Implied},
	{OpCode: 0x0c, Mnemonic: "TSB", Mode: Absolute},
	{OpCode: 0x0d, Mnemonic: "ORA", Mode: Absolute},
	{OpCode: 0x0e, Mnemonic: "ASL", Mode: Absolute},
	{OpCode: 0x0f, Mnemonic: "ORA", Mode: AbsoluteLong},
	{OpCode: 0x10, Mnemonic: "BPL", Mode: Relative},
	{OpCode: 0x11, Mnemonic: "ORA", Mode: DirectPageIndirectIndexed},
	{OpCode: 0x12, Mnemonic: "ORA", Mode: DirectPageIndirect},
	{OpCode: 0x13, Mnemonic: "ORA", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0x14, Mnemonic: "TRB", Mode: DirectPage},
	{OpCode: 0x15, Mnemonic: "ORA", Mode: DirectPageX},
	{OpCode: 0x16, Mnemonic: "ASL", Mode: DirectPageX},
	{OpCode: 0x17, Mnemonic: "ORA", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0x18, Mnemonic: "CLC", Mode: Implied},
	{OpCode: 0x19, Mnemonic: "ORA", Mode: AbsoluteY},
	{OpCode: 0x1a, Mnemonic: "INC", Mode: Accumulator},
	{OpCode: 0x1b, Mnemonic: "TCS", Mode: Implied},
	{OpCode: 0x1c, Mnemonic: "TRB", Mode: Absolute},
	{OpCode: 0x1d, Mnemonic: "ORA", Mode: AbsoluteX},
	{OpCode: 0x1e, Mnemonic: "ASL", Mode: AbsoluteX},
	{OpCode: 0x1f, Mnemonic: "ORA", Mode: AbsoluteLongX},
	{OpCode: 0x20, Mnemonic: "JSR", Mode: Absolute},
	{OpCode: 0x21, Mnemonic: "AND", Mode: DirectPageIndexedIndirect},
	{OpCode: 0x22, Mnemonic: "JSL", Mode: AbsoluteLong},
	{OpCode: 0x23, Mnemonic: "AND", Mode: StackRelative},
	{OpCode: 0x24, Mnemonic: "BIT", Mode: DirectPage},
	{OpCode: 0x25, Mnemonic: "AND", Mode: DirectPage},
	{OpCode: 0x26, Mnemonic: "ROL", Mode: DirectPage},
	{OpCode: 0x27, Mnemonic: "AND", Mode: DirectPageIndirectLong},
	{OpCode: 0x28, Mnemonic: "PLP", Mode: Implied},
	{OpCode: 0x29, Mnemonic: "AND", Mode: Immediate},
	{OpCode: 0x2a, Mnemonic: "ROL", Mode: Accumulator},
	{OpCode: 0x2b, Mnemonic: "PLD", Mode: Implied},
	{OpCode: 0x2c, Mnemonic: "BIT", Mode: Absolute},
	{OpCode: 0x2d, Mnemonic: "AND", Mode: Absolute},
	{OpCode: 0x2e, Mnemonic: "ROL", Mode: Absolute},
	{OpCode: 0x2f, Mnemonic: "AND", Mode: AbsoluteLong},
	{OpCode: 0x30, Mnemonic: "BMI", Mode: Relative},
	{OpCode: 0x31, Mnemonic: "AND", Mode: DirectPageIndirectIndexed},
	{OpCode: 0x32, Mnemonic: "AND", Mode: DirectPageIndirect},
	{OpCode: 0x33, Mnemonic: "AND", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0x34, Mnemonic: "BIT", Mode: DirectPageX},
	{OpCode: 0x35, Mnemonic: "AND", Mode: DirectPageX},
	{OpCode: 0x36, Mnemonic: "ROL", Mode: DirectPageX},
	{OpCode: 0x37, Mnemonic: "AND", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0x38, Mnemonic: "SEC", Mode: Implied},
	{OpCode: 0x39, Mnemonic: "AND", Mode: AbsoluteY},
	{OpCode: 0x3a, Mnemonic: "DEC", Mode: Accumulator},
	{OpCode: 0x3b, Mnemonic: "TSC", Mode: Implied},
	{OpCode: 0x3c, Mnemonic: "BIT", Mode: AbsoluteX},
	{OpCode: 0x3d, Mnemonic: "AND", Mode: AbsoluteX},
	{OpCode: 0x3e, Mnemonic: "ROL", Mode: AbsoluteX},
	{OpCode: 0x3f, Mnemonic: "AND", Mode: AbsoluteLongX},
	{OpCode: 0x40, Mnemonic: "RTI", Mode: Implied},
	{OpCode: 0x41, Mnemonic: "EOR", Mode: DirectPageIndexedIndirect},
	{OpCode: 0x42, Mnemonic: "WDM", Mode: Immediate8},
	{OpCode: 0x43, Mnemonic: "EOR", Mode: StackRelative},
	{OpCode: 0x44, Mnemonic: "MVP", Mode: BlockMove},
	{OpCode: 0x45, Mnemonic: "EOR", Mode: DirectPage},
	{OpCode: 0x46, Mnemonic: "LSR", Mode: DirectPage},
	{OpCode: 0x47, Mnemonic: "EOR", Mode: DirectPageIndirectLong},
	{OpCode: 0x48, Mnemonic: "PHA", Mode: Implied},
	{OpCode: 0x49, Mnemonic: "EOR", Mode: Immediate},
	{OpCode: 0x4a, Mnemonic: "LSR", Mode: Accumulator},
	{OpCode: 0x4b, Mnemonic: "PHK", Mode: Implied},
	{OpCode: 0x4c, Mnemonic: "JMP", Mode: Absolute},
	{OpCode: 0x4d, Mnemonic: "EOR", Mode: Absolute},
	{OpCode: 0x4e, Mnemonic: "LSR", Mode: Absolute},
	{OpCode: 0x4f, Mnemonic: "EOR", Mode: AbsoluteLong},
	{OpCode: 0x50, Mnemonic: "BVC", Mode: Relative},
	{OpCode: 0x51, Mnemonic: "EOR", Mode: DirectPageIndirectIndexed},
	{OpCode: 0x52, Mnemonic: "EOR", Mode: DirectPageIndirect},
	{OpCode: 0x53, Mnemonic: "EOR", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0x54, Mnemonic: "MVN", Mode: BlockMove},
	{OpCode: 0x55, Mnemonic: "EOR", Mode: DirectPageX},
	{OpCode: 0x56, Mnemonic: "LSR", Mode: DirectPageX},
	{OpCode: 0x57, Mnemonic: "EOR", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0x58, Mnemonic: "CLI", Mode: Implied},
	{OpCode: 0x59, Mnemonic: "EOR", Mode: AbsoluteY},
	{OpCode: 0x5a, Mnemonic: "PHY", Mode: Implied},
	{OpCode: 0x5b, Mnemonic: "TCD", Mode: Implied},
	{OpCode: 0x5c, Mnemonic: "JML", Mode: AbsoluteLong},
	{OpCode: 0x5d, Mnemonic: "EOR", Mode: AbsoluteX},
	{OpCode: 0x5e, Mnemonic: "LSR", Mode: AbsoluteX},
	{OpCode: 0x5f, Mnemonic: "EOR", Mode: AbsoluteLongX},
	{OpCode: 0x60, Mnemonic: "RTS", Mode: Implied},
	{OpCode: 0x61, Mnemonic: "ADC", Mode: DirectPageIndexedIndirect},
	{OpCode: 0x62, Mnemonic: "PER", Mode: RelativeLong},
	{OpCode: 0x63, Mnemonic: "ADC", Mode: StackRelative},
	{OpCode: 0x64, Mnemonic: "STZ", Mode: DirectPage},
	{OpCode: 0x65, Mnemonic: "ADC", Mode: DirectPage},
	{OpCode: 0x66, Mnemonic: "ROR", Mode: DirectPage},
	{OpCode: 0x67, Mnemonic: "ADC", Mode: DirectPageIndirectLong},
	{OpCode: 0x68, Mnemonic: "PLA", Mode: Implied},
	{OpCode: 0x69, Mnemonic: "ADC", Mode: Immediate},
	{OpCode: 0x6a, Mnemonic: "ROR", Mode: Accumulator},
	{OpCode: 0x6b, Mnemonic: "RTL", Mode: Implied},
	{OpCode: 0x6c, Mnemonic: "JMP", Mode: AbsoluteIndirect},
	{OpCode: 0x6d, Mnemonic: "ADC", Mode: Absolute},
	{OpCode: 0x6e, Mnemonic: "ROR", Mode: Absolute},
	{OpCode: 0x6f, Mnemonic: "ADC", Mode: AbsoluteLong},
	{OpCode: 0x70, Mnemonic: "BVS", Mode: Relative},
	{OpCode: 0x71, Mnemonic: "ADC", Mode: DirectPageIndirectIndexed},
	{OpCode: 0x72, Mnemonic: "ADC", Mode: DirectPageIndirect},
	{OpCode: 0x73, Mnemonic: "ADC", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0x74, Mnemonic: "STZ", Mode: DirectPageX},
	{OpCode: 0x75, Mnemonic: "ADC", Mode: DirectPageX},
	{OpCode: 0x76, Mnemonic: "ROR", Mode: DirectPageX},
	{OpCode: 0x77, Mnemonic: "ADC", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0x78, Mnemonic: "SEI", Mode: Implied},
	{OpCode: 0x79, Mnemonic: "ADC", Mode: AbsoluteY},
	{OpCode: 0x7a, Mnemonic: "PLY", Mode: Implied},
	{OpCode: 0x7b, Mnemonic: "TDC", Mode: Implied},
	{OpCode: 0x7c, Mnemonic: "JMP", Mode: AbsoluteIndexedIndirect},
	{OpCode: 0x7d, Mnemonic: "ADC", Mode: AbsoluteX},
	{OpCode: 0x7e, Mnemonic: "ROR", Mode: AbsoluteX},
	{OpCode: 0x7f, Mnemonic: "ADC", Mode: AbsoluteLongX},
	{OpCode: 0x80, Mnemonic: "BRA", Mode: Relative},
	{OpCode: 0x81, Mnemonic: "STA", Mode: DirectPageIndexedIndirect},
	{OpCode: 0x82, Mnemonic: "BRL", Mode: RelativeLong},
	{OpCode: 0x83, Mnemonic: "STA", Mode: StackRelative},
	{OpCode: 0x84, Mnemonic: "STY", Mode: DirectPage},
	{OpCode: 0x85, Mnemonic: "STA", Mode: DirectPage},
	{OpCode: 0x86, Mnemonic: "STX", Mode: DirectPage},
	{OpCode: 0x87, Mnemonic: "STA", Mode: DirectPageIndirectLong},
	{OpCode: 0x88, Mnemonic: "DEY", Mode: Implied},
	{OpCode: 0x89, Mnemonic: "BIT", Mode: Immediate},
	{OpCode: 0x8a, Mnemonic: "TXA", Mode: Implied},
	{OpCode: 0x8b, Mnemonic: "PHB", Mode: Implied},
	{OpCode: 0x8c, Mnemonic: "STY", Mode: Absolute},
	{OpCode: 0x8d, Mnemonic: "STA", Mode: Absolute},
	{OpCode: 0x8e, Mnemonic: "STX", Mode: Absolute},
	{OpCode: 0x8f, Mnemonic: "STA", Mode: AbsoluteLong},
	{OpCode: 0x90, Mnemonic: "BCC", Mode: Relative},
	{OpCode: 0x91, Mnemonic: "STA", Mode: DirectPageIndirectIndexed},
	{OpCode: 0x92, Mnemonic: "STA", Mode: DirectPageIndirect},
	{OpCode: 0x93, Mnemonic: "STA", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0x94, Mnemonic: "STY", Mode: DirectPageX},
	{OpCode: 0x95, Mnemonic: "STA", Mode: DirectPageX},
	{OpCode: 0x96, Mnemonic: "STX", Mode: DirectPageY},
	{OpCode: 0x97, Mnemonic: "STA", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0x98, Mnemonic: "TYA", Mode: Implied},
	{OpCode: 0x99, Mnemonic: "STA", Mode: AbsoluteY},
	{OpCode: 0x9a, Mnemonic: "TXS", Mode: Implied},
	{OpCode: 0x9b, Mnemonic: "TXY", Mode: Implied},
	{OpCode: 0x9c, Mnemonic: "STZ", Mode: Absolute},
	{OpCode: 0x9d, Mnemonic: "STA", Mode: AbsoluteX},
	{OpCode: 0x9e, Mnemonic: "STZ", Mode: AbsoluteX},
	{OpCode: 0x9f, Mnemonic: "STA", Mode: AbsoluteLongX},
	{OpCode: 0xa0, Mnemonic: "LDY", Mode: ImmediateIndex},
	{OpCode: 0xa1, Mnemonic: "LDA", Mode: DirectPageIndexedIndirect},
	{OpCode: 0xa2, Mnemonic: "LDX", Mode: ImmediateIndex},
	{OpCode: 0xa3, Mnemonic: "LDA", Mode: StackRelative},
	{OpCode: 0xa4, Mnemonic: "LDY", Mode: DirectPage},
	{OpCode: 0xa5, Mnemonic: "LDA", Mode: DirectPage},
	{OpCode: 0xa6, Mnemonic: "LDX", Mode: DirectPage},
	{OpCode: 0xa7, Mnemonic: "LDA", Mode: DirectPageIndirectLong},
	{OpCode: 0xa8, Mnemonic: "TAY", Mode: Implied},
	{OpCode: 0xa9, Mnemonic: "LDA", Mode: Immediate},
	{OpCode: 0xaa, Mnemonic: "TAX", Mode: Implied},
	{OpCode: 0xab, Mnemonic: "PLB", Mode: Implied},
	{OpCode: 0xac, Mnemonic: "LDY", Mode: Absolute},
	{OpCode: 0xad, Mnemonic: "LDA", Mode: Absolute},
	{OpCode: 0xae, Mnemonic: "LDX", Mode: Absolute},
	{OpCode: 0xaf, Mnemonic: "LDA", Mode: AbsoluteLong},
	{OpCode: 0xb0, Mnemonic: "BCS", Mode: Relative},
	{OpCode: 0xb1, Mnemonic: "LDA", Mode: DirectPageIndirectIndexed},
	{OpCode: 0xb2, Mnemonic: "LDA", Mode: DirectPageIndirect},
	{OpCode: 0xb3, Mnemonic: "LDA", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0xb4, Mnemonic: "LDY", Mode: DirectPageX},
	{OpCode: 0xb5, Mnemonic: "LDA", Mode: DirectPageX},
	{OpCode: 0xb6, Mnemonic: "LDX", Mode: DirectPageY},
	{OpCode: 0xb7, Mnemonic: "LDA", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0xb8, Mnemonic: "CLV", Mode: Implied},
	{OpCode: 0xb9, Mnemonic: "LDA", Mode: AbsoluteY},
	{OpCode: 0xba, Mnemonic: "TSX", Mode: Implied},
	{OpCode: 0xbb, Mnemonic: "TYX", Mode: Implied},
	{OpCode: 0xbc, Mnemonic: "LDY", Mode: AbsoluteX},
	{OpCode: 0xbd, Mnemonic: "LDA", Mode: AbsoluteX},
	{OpCode: 0xbe, Mnemonic: "LDX", Mode: AbsoluteY},
	{OpCode: 0xbf, Mnemonic: "LDA", Mode: AbsoluteLongX},
	{OpCode: 0xc0, Mnemonic: "CPY", Mode: ImmediateIndex},
	{OpCode: 0xc1, Mnemonic: "CMP", Mode: DirectPageIndexedIndirect},
	{OpCode: 0xc2, Mnemonic: "REP", Mode: Immediate8},
	{OpCode: 0xc3, Mnemonic: "CMP", Mode: StackRelative},
	{OpCode: 0xc4, Mnemonic: "CPY", Mode: DirectPage},
	{OpCode: 0xc5, Mnemonic: "CMP", Mode: DirectPage},
	{OpCode: 0xc6, Mnemonic: "DEC", Mode: DirectPage},
	{OpCode: 0xc7, Mnemonic: "CMP", Mode: DirectPageIndirectLong},
	{OpCode: 0xc8, Mnemonic: "INY", Mode: Implied},
	{OpCode: 0xc9, Mnemonic: "CMP", Mode: Immediate},
	{OpCode: 0xca, Mnemonic: "DEX", Mode: Implied},
	{OpCode: 0xcb, Mnemonic: "WAI", Mode: Implied},
	{OpCode: 0xcc, Mnemonic: "CPY", Mode: Absolute},
	{OpCode: 0xcd, Mnemonic: "CMP", Mode: Absolute},
	{OpCode: 0xce, Mnemonic: "DEC", Mode: Absolute},
	{OpCode: 0xcf, Mnemonic: "CMP", Mode: AbsoluteLong},
	{OpCode: 0xd0, Mnemonic: "BNE", Mode: Relative},
	{OpCode: 0xd1, Mnemonic: "CMP", Mode: DirectPageIndirectIndexed},
	{OpCode: 0xd2, Mnemonic: "CMP", Mode: DirectPageIndirect},
	{OpCode: 0xd3, Mnemonic: "CMP", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0xd4, Mnemonic: "PEI", Mode: DirectPageIndirect},
	{OpCode: 0xd5, Mnemonic: "CMP", Mode: DirectPageX},
	{OpCode: 0xd6, Mnemonic: "DEC", Mode: DirectPageX},
	{OpCode: 0xd7, Mnemonic: "CMP", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0xd8, Mnemonic: "CLD", Mode: Implied},
	{OpCode: 0xd9, Mnemonic: "CMP", Mode: AbsoluteY},
	{OpCode: 0xda, Mnemonic: "PHX", Mode: Implied},
	{OpCode: 0xdb, Mnemonic: "STP", Mode: Implied},
	{OpCode: 0xdc, Mnemonic: "JML", Mode: AbsoluteIndirectLong},
	{OpCode: 0xdd, Mnemonic: "CMP", Mode: AbsoluteX},
	{OpCode: 0xde, Mnemonic: "DEC", Mode: AbsoluteX},
	{OpCode: 0xdf, Mnemonic: "CMP", Mode: AbsoluteLongX},
	{OpCode: 0xe0, Mnemonic: "CPX", Mode: ImmediateIndex},
	{OpCode: 0xe1, Mnemonic: "SBC", Mode: DirectPageIndexedIndirect},
	{OpCode: 0xe2, Mnemonic: "SEP", Mode: Immediate8},
	{OpCode: 0xe3, Mnemonic: "SBC", Mode: StackRelative},
	{OpCode: 0xe4, Mnemonic: "CPX", Mode: DirectPage},
	{OpCode: 0xe5, Mnemonic: "SBC", Mode: DirectPage},
	{OpCode: 0xe6, Mnemonic: "INC", Mode: DirectPage},
	{OpCode: 0xe7, Mnemonic: "SBC", Mode: DirectPageIndirectLong},
	{OpCode: 0xe8, Mnemonic: "INX", Mode: Implied},
	{OpCode: 0xe9, Mnemonic: "SBC", Mode: Immediate},
	{OpCode: 0xea, Mnemonic: "NOP", Mode: Implied},
	{OpCode: 0xeb, Mnemonic: "XBA", Mode: Implied},
	{OpCode: 0xec, Mnemonic: "CPX", Mode: Absolute},
	{OpCode: 0xed, Mnemonic: "SBC", Mode: Absolute},
	{OpCode: 0xee, Mnemonic: "INC", Mode: Absolute},
	{OpCode: 0xef, Mnemonic: "SBC", Mode: AbsoluteLong},
	{OpCode: 0xf0, Mnemonic: "BEQ", Mode: Relative},
	{OpCode: 0xf1, Mnemonic: "SBC", Mode: DirectPageIndirectIndexed},
	{OpCode: 0xf2, Mnemonic: "SBC", Mode: DirectPageIndirect},
	{OpCode: 0xf3, Mnemonic: "SBC", Mode: StackRelativeIndirectIndexed},
	{OpCode: 0xf4, Mnemonic: "PEA", Mode: Absolute},
	{OpCode: 0xf5, Mnemonic: "SBC", Mode: DirectPageX},
	{OpCode: 0xf6, Mnemonic: "INC", Mode: DirectPageX},
	{OpCode: 0xf7, Mnemonic: "SBC", Mode: DirectPageIndirectLongIndexed},
	{OpCode: 0xf8, Mnemonic: "SED", Mode: Implied},
	{OpCode: 0xf9, Mnemonic: "SBC", Mode: AbsoluteY},
	{OpCode: 0xfa, Mnemonic: "PLX", Mode: Implied},
	{OpCode: 0xfb, Mnemonic: "XCE", Mode: Implied},
	{OpCode: 0xfc, Mnemonic: "JSR", Mode: AbsoluteIndexedIndirect},
	{OpCode: 0xfd, Mnemonic: "SBC", Mode: AbsoluteX},
	{OpCode: 0xfe, Mnemonic: "INC", Mode: AbsoluteX},
	{OpCode: 0xff, Mnemonic: "SBC", Mode: AbsoluteLongX},
}
