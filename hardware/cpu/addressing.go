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

package cpu

import (
	"github.com/jetsetilly/gopher65816/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65816/hardware/cpu/registers"
)

// direct returns the effective address of a direct page location. direct
// page accesses always wrap inside bank zero.
func (mc *CPU) direct(offset uint16) EffectiveAddress {
	return EffectiveAddress{
		Low:  uint32(mc.D + offset),
		High: uint32(mc.D + offset + 1),
	}
}

// data returns the effective address of an offset in the data bank. unlike
// direct page accesses, the high byte can cross into the next bank.
func (mc *CPU) data(offset uint32) EffectiveAddress {
	return Linear(uint32(mc.DB)<<16 + offset)
}

// directOperand reads the direct page offset from the program counter. an
// extra cycle is taken when the low byte of the direct page register is not
// zero.
func (mc *CPU) directOperand() uint16 {
	adr := uint16(mc.readOpcode())
	if mc.D&0x00ff != 0 {
		mc.idle()
	}
	return adr
}

// indexed adds an index register to an address in the data bank. an extra
// cycle is taken for writes, for 16bit index registers and when a page
// boundary is crossed.
func (mc *CPU) indexed(adr uint16, index uint16, write bool) EffectiveAddress {
	if write || !mc.IndexSize().Is8Bit() || (adr>>8) != ((adr+index)>>8) {
		mc.idle()
	}
	return mc.data(uint32(adr) + uint32(index))
}

func (mc *CPU) immediate(w registers.Width) EffectiveAddress {
	ea := EffectiveAddress{Low: mc.PCAddress()}
	mc.PC++
	mc.LastResult.ByteCount++
	if !w.Is8Bit() {
		ea.High = mc.PCAddress()
		mc.PC++
		mc.LastResult.ByteCount++
	}
	return ea
}

// resolve the effective address for the addressing mode. the write argument
// indicates that the instruction writes to the effective address.
func (mc *CPU) resolve(mode instructions.AddressingMode, write bool) EffectiveAddress {
	switch mode {
	case instructions.Immediate:
		return mc.immediate(mc.AccumulatorSize())

	case instructions.ImmediateIndex:
		return mc.immediate(mc.IndexSize())

	case instructions.Immediate8:
		return mc.immediate(registers.Width8)

	case instructions.DirectPage:
		return mc.direct(mc.directOperand())

	case instructions.DirectPageX:
		adr := mc.directOperand()
		mc.idle()
		return mc.direct(adr + mc.X)

	case instructions.DirectPageY:
		adr := mc.directOperand()
		mc.idle()
		return mc.direct(adr + mc.Y)

	case instructions.DirectPageIndirect:
		p := mc.direct(mc.directOperand())
		return mc.data(uint32(mc.mem.ReadWord(p.Low, p.High)))

	case instructions.DirectPageIndexedIndirect:
		adr := mc.directOperand()
		mc.idle()
		p := mc.direct(adr + mc.X)
		return mc.data(uint32(mc.mem.ReadWord(p.Low, p.High)))

	case instructions.DirectPageIndirectIndexed:
		p := mc.direct(mc.directOperand())
		return mc.indexed(mc.mem.ReadWord(p.Low, p.High), mc.Y, write)

	case instructions.DirectPageIndirectLong:
		p := mc.direct(mc.directOperand())
		bank := mc.mem.ReadByte(uint32(uint16(p.Low) + 2))
		return Linear(uint32(bank)<<16 | uint32(mc.mem.ReadWord(p.Low, p.High)))

	case instructions.DirectPageIndirectLongIndexed:
		p := mc.direct(mc.directOperand())
		bank := mc.mem.ReadByte(uint32(uint16(p.Low) + 2))
		return Linear(uint32(bank)<<16 | uint32(mc.mem.ReadWord(p.Low, p.High)) + uint32(mc.Y))

	case instructions.StackRelative:
		adr := uint16(mc.readOpcode())
		mc.idle()
		return EffectiveAddress{
			Low:  uint32(mc.SP + adr),
			High: uint32(mc.SP + adr + 1),
		}

	case instructions.StackRelativeIndirectIndexed:
		adr := uint16(mc.readOpcode())
		mc.idle()
		p := mc.mem.ReadWord(uint32(mc.SP+adr), uint32(mc.SP+adr+1))
		mc.idle()
		return mc.data(uint32(p) + uint32(mc.Y))

	case instructions.Absolute:
		return mc.data(uint32(mc.readOpcodeWord()))

	case instructions.AbsoluteX:
		return mc.indexed(mc.readOpcodeWord(), mc.X, write)

	case instructions.AbsoluteY:
		return mc.indexed(mc.readOpcodeWord(), mc.Y, write)

	case instructions.AbsoluteLong:
		return Linear(mc.readOpcodeLong())

	case instructions.AbsoluteLongX:
		return Linear(mc.readOpcodeLong() + uint32(mc.X))
	}

	// remaining modes are resolved by the instructions that use them
	return EffectiveAddress{}
}
