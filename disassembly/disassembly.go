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

package disassembly

import (
	"fmt"
	"strings"

	"github.com/jetsetilly/gopher65816/hardware/cpu/instructions"
)

// Peeker is the memory interface required by Disassemble(). Peek must not
// have side effects.
type Peeker interface {
	Peek(address uint32) uint8
}

// Labeler is the symbols interface required by Disassemble(). It may be nil.
type Labeler interface {
	Lookup(address uint32) (string, bool)
}

// Entry is a single disassembled instruction.
type Entry struct {
	Address uint32
	Size    int
	Defn    instructions.Definition

	// string representations of the instruction
	Label    string
	Bytecode string
	Operator string
	Operand  string
}

func (e Entry) String() string {
	return strings.TrimSpace(fmt.Sprintf("%s %s", e.Operator, e.Operand))
}

// Columns returns the entry formatted for display in a list.
func (e Entry) Columns() string {
	s := fmt.Sprintf("$%06x  %-12s %-11s %s", e.Address, e.Bytecode, e.Label, e.String())
	return strings.TrimRight(s, " ")
}

// Disassemble the instruction at the address. The m8 and x8 arguments are the
// widths of the accumulator and index registers.
func Disassemble(mem Peeker, address uint32, m8 bool, x8 bool, syms Labeler) Entry {
	address &= 0xffffff
	bank := address & 0xff0000

	e := Entry{
		Address: address,
		Defn:    instructions.Lookup(mem.Peek(address)),
	}
	e.Size = e.Defn.Mode.Size(m8, x8)

	// operand bytes are little endian and wrap inside the bank
	var operand uint32
	b := strings.Builder{}
	b.WriteString(fmt.Sprintf("%02x", e.Defn.OpCode))
	for i := 1; i < e.Size; i++ {
		v := mem.Peek(bank | ((address + uint32(i)) & 0xffff))
		operand |= uint32(v) << (8 * (i - 1))
		b.WriteString(fmt.Sprintf(" %02x", v))
	}
	e.Bytecode = b.String()

	if syms != nil {
		e.Label, _ = syms.Lookup(address)
	}

	e.Operator = e.Defn.Mnemonic
	s := e.Defn.Disassemble(operand, e.Size)
	e.Operand = strings.TrimSpace(strings.TrimPrefix(s, e.Defn.Mnemonic))

	// code targets
	var target uint32
	var isTarget bool

	switch e.Defn.Mode {
	case instructions.Relative:
		target = bank | (address+2+uint32(int8(operand)))&0xffff
		isTarget = true
		e.Operand = fmt.Sprintf("$%04x", target&0xffff)
	case instructions.RelativeLong:
		target = bank | (address+3+uint32(int16(operand)))&0xffff
		isTarget = true
		e.Operand = fmt.Sprintf("$%04x", target&0xffff)
	case instructions.Absolute:
		switch e.Defn.OpCode {
		case instructions.JSR, instructions.JMP:
			target = bank | operand
			isTarget = true
		}
	case instructions.AbsoluteLong:
		switch e.Defn.OpCode {
		case instructions.JSL, instructions.JML:
			target = operand
			isTarget = true
		}
	}

	if isTarget && syms != nil {
		if l, ok := syms.Lookup(target); ok {
			e.Operand = l
		}
	}

	return e
}

// Range disassembles count instructions starting at address.
func Range(mem Peeker, address uint32, count int, m8 bool, x8 bool, syms Labeler) []Entry {
	entries := make([]Entry, 0, count)
	for i := 0; i < count; i++ {
		e := Disassemble(mem, address, m8, x8, syms)
		entries = append(entries, e)
		address = (address & 0xff0000) | ((address + uint32(e.Size)) & 0xffff)
	}
	return entries
}
