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

// Category of an instruction describes its effect.
type Category int

// List of instruction categories.
const (
	Read Category = iota
	Write
	RMW

	// flow consists of the branch and jump instructions
	Flow

	Subroutine
	Interrupt

	// register and flag operations that do not access memory other than the
	// stack
	Internal
)

func (c Category) String() string {
	switch c {
	case Read:
		return "Read"
	case Write:
		return "Write"
	case RMW:
		return "RMW"
	case Flow:
		return "Flow"
	case Subroutine:
		return "Subroutine"
	case Interrupt:
		return "Interrupt"
	case Internal:
		return "Internal"
	}
	return "unknown category"
}

var categories = map[string]Category{
	"ADC": Read, "AND": Read, "BIT": Read, "CMP": Read, "CPX": Read, "CPY": Read,
	"EOR": Read, "LDA": Read, "LDX": Read, "LDY": Read, "ORA": Read, "SBC": Read,
	"STA": Write, "STX": Write, "STY": Write, "STZ": Write,
	"ASL": RMW, "DEC": RMW, "INC": RMW, "LSR": RMW, "ROL": RMW, "ROR": RMW,
	"TRB": RMW, "TSB": RMW,
	"BCC": Flow, "BCS": Flow, "BEQ": Flow, "BMI": Flow, "BNE": Flow, "BPL": Flow,
	"BVC": Flow, "BVS": Flow, "BRA": Flow, "BRL": Flow, "JMP": Flow, "JML": Flow,
	"JSR": Subroutine, "JSL": Subroutine, "RTS": Subroutine, "RTL": Subroutine,
	"BRK": Interrupt, "COP": Interrupt, "RTI": Interrupt,
}
