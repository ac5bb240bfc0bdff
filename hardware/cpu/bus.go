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
	"github.com/jetsetilly/gopher65816/hardware/cpu/registers"
)

func (mc *CPU) idle() {
	mc.LastResult.IdleCycles++
	mc.mem.Idle(false)
}

// readOpcode reads the byte at the program counter and advances the program
// counter. the program counter wraps inside the program bank.
func (mc *CPU) readOpcode() uint8 {
	v := mc.mem.ReadByte(mc.PCAddress())
	mc.PC++
	mc.LastResult.ByteCount++
	return v
}

func (mc *CPU) readOpcodeWord() uint16 {
	lo := mc.readOpcode()
	hi := mc.readOpcode()
	return uint16(hi)<<8 | uint16(lo)
}

func (mc *CPU) readOpcodeLong() uint32 {
	v := uint32(mc.readOpcodeWord())
	return uint32(mc.readOpcode())<<16 | v
}

func (mc *CPU) readOperand(ea EffectiveAddress, w registers.Width) uint16 {
	if w.Is8Bit() {
		return uint16(mc.mem.ReadByte(ea.Low))
	}
	return mc.mem.ReadWord(ea.Low, ea.High)
}

func (mc *CPU) writeOperand(ea EffectiveAddress, w registers.Width, v uint16) {
	if w.Is8Bit() {
		mc.mem.WriteByte(ea.Low, uint8(v))
		return
	}
	mc.mem.WriteWord(ea.Low, ea.High, v)
}

// the stack pointer is confined to page one in emulation mode.
func (mc *CPU) push(v uint8) {
	mc.mem.WriteByte(uint32(mc.SP), v)
	mc.SP--
	if mc.E {
		mc.SP = 0x0100 | mc.SP&0x00ff
	}
}

func (mc *CPU) pop() uint8 {
	mc.SP++
	if mc.E {
		mc.SP = 0x0100 | mc.SP&0x00ff
	}
	return mc.mem.ReadByte(uint32(mc.SP))
}

func (mc *CPU) pushWord(v uint16) {
	mc.push(uint8(v >> 8))
	mc.push(uint8(v))
}

func (mc *CPU) popWord() uint16 {
	lo := mc.pop()
	hi := mc.pop()
	return uint16(hi)<<8 | uint16(lo)
}

// setA sets the accumulator bits covered by the width, preserving the rest.
func (mc *CPU) setA(v uint16, w registers.Width) {
	mc.A = mc.A&^w.Mask() | v&w.Mask()
}

// setIndex sets an index register. the high byte is always cleared when the
// index width is 8bit.
func setIndex(r *uint16, v uint16, w registers.Width) {
	*r = v & w.Mask()
}
