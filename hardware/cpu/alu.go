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

// And performs a bitwise AND of the accumulator and the operand.
func (mc *CPU) And(ea EffectiveAddress) {
	w := mc.AccumulatorSize()
	v := mc.readOperand(ea, w)
	mc.setA(mc.A&v, w)
	mc.SetZN(mc.A, w)
}

// Eor performs a bitwise exclusive-OR of the accumulator and the operand.
func (mc *CPU) Eor(ea EffectiveAddress) {
	w := mc.AccumulatorSize()
	v := mc.readOperand(ea, w)
	mc.setA(mc.A^v, w)
	mc.SetZN(mc.A, w)
}

// Ora performs a bitwise OR of the accumulator and the operand.
func (mc *CPU) Ora(ea EffectiveAddress) {
	w := mc.AccumulatorSize()
	v := mc.readOperand(ea, w)
	mc.setA(mc.A|v, w)
	mc.SetZN(mc.A, w)
}

// Adc adds the operand and the carry flag to the accumulator. The addition
// is binary coded decimal when the decimal flag is set.
func (mc *CPU) Adc(ea EffectiveAddress) {
	w := mc.AccumulatorSize()
	v := mc.readOperand(ea, w)

	var r uint16
	var c, o bool
	if mc.Status.DecimalMode {
		r, c, o = registers.AddDecimal(mc.A, v, mc.Status.Carry, w)
	} else {
		r, c, o = registers.Add(mc.A, v, mc.Status.Carry, w)
	}

	mc.Status.Carry = c
	mc.Status.Overflow = o
	mc.setA(r, w)
	mc.SetZN(mc.A, w)
}

// Sbc subtracts the operand and the inverse of the carry flag from the
// accumulator. The subtraction is binary coded decimal when the decimal flag
// is set.
func (mc *CPU) Sbc(ea EffectiveAddress) {
	w := mc.AccumulatorSize()
	v := mc.readOperand(ea, w)

	var r uint16
	var c, o bool
	if mc.Status.DecimalMode {
		r, c, o = registers.SubtractDecimal(mc.A, v, mc.Status.Carry, w)
	} else {
		r, c, o = registers.Subtract(mc.A, v, mc.Status.Carry, w)
	}

	mc.Status.Carry = c
	mc.Status.Overflow = o
	mc.setA(r, w)
	mc.SetZN(mc.A, w)
}

func (mc *CPU) compare(reg uint16, ea EffectiveAddress, w registers.Width) {
	v := mc.readOperand(ea, w)
	r, c, _ := registers.Add(reg, ^v, true, w)
	mc.Status.Carry = c
	mc.SetZN(r, w)
}

// Cmp compares the accumulator with the operand.
func (mc *CPU) Cmp(ea EffectiveAddress) {
	mc.compare(mc.A, ea, mc.AccumulatorSize())
}

// Cpx compares the X register with the operand.
func (mc *CPU) Cpx(ea EffectiveAddress) {
	mc.compare(mc.X, ea, mc.IndexSize())
}

// Cpy compares the Y register with the operand.
func (mc *CPU) Cpy(ea EffectiveAddress) {
	mc.compare(mc.Y, ea, mc.IndexSize())
}

// Bit tests the bits of the operand against the accumulator. The sign and
// overflow flags are always copied from the top two bits of the operand,
// including when the operand is an immediate value.
func (mc *CPU) Bit(ea EffectiveAddress) {
	w := mc.AccumulatorSize()
	v := mc.readOperand(ea, w)
	mc.Status.Zero = mc.A&v&w.Mask() == 0
	mc.Status.Sign = v&w.Sign() == w.Sign()
	mc.Status.Overflow = v&w.Bit6() == w.Bit6()
}

// Lda loads the accumulator.
func (mc *CPU) Lda(ea EffectiveAddress) {
	w := mc.AccumulatorSize()
	mc.setA(mc.readOperand(ea, w), w)
	mc.SetZN(mc.A, w)
}

// Ldx loads the X register.
func (mc *CPU) Ldx(ea EffectiveAddress) {
	w := mc.IndexSize()
	setIndex(&mc.X, mc.readOperand(ea, w), w)
	mc.SetZN(mc.X, w)
}

// Ldy loads the Y register.
func (mc *CPU) Ldy(ea EffectiveAddress) {
	w := mc.IndexSize()
	setIndex(&mc.Y, mc.readOperand(ea, w), w)
	mc.SetZN(mc.Y, w)
}

// Sta stores the accumulator. Flags are not affected.
func (mc *CPU) Sta(ea EffectiveAddress) {
	mc.writeOperand(ea, mc.AccumulatorSize(), mc.A)
}

// Stx stores the X register. Flags are not affected.
func (mc *CPU) Stx(ea EffectiveAddress) {
	mc.writeOperand(ea, mc.IndexSize(), mc.X)
}

// Sty stores the Y register. Flags are not affected.
func (mc *CPU) Sty(ea EffectiveAddress) {
	mc.writeOperand(ea, mc.IndexSize(), mc.Y)
}

// Stz stores zero. The width follows the accumulator width.
func (mc *CPU) Stz(ea EffectiveAddress) {
	mc.writeOperand(ea, mc.AccumulatorSize(), 0)
}

// modify is the read-modify-write sequence. the memory bus is told of
// exactly one idle cycle between the read and the write.
func (mc *CPU) modify(ea EffectiveAddress, f func(uint16, registers.Width) uint16) {
	w := mc.AccumulatorSize()
	v := mc.readOperand(ea, w)
	mc.idle()
	mc.writeOperand(ea, w, f(v, w))
}

func (mc *CPU) asl(v uint16, w registers.Width) uint16 {
	mc.Status.Carry = v&w.Sign() == w.Sign()
	r := (v << 1) & w.Mask()
	mc.SetZN(r, w)
	return r
}

func (mc *CPU) lsr(v uint16, w registers.Width) uint16 {
	mc.Status.Carry = v&0x01 == 0x01
	r := (v & w.Mask()) >> 1
	mc.SetZN(r, w)
	return r
}

func (mc *CPU) rol(v uint16, w registers.Width) uint16 {
	r := (v << 1) & w.Mask()
	if mc.Status.Carry {
		r |= 0x01
	}
	mc.Status.Carry = v&w.Sign() == w.Sign()
	mc.SetZN(r, w)
	return r
}

func (mc *CPU) ror(v uint16, w registers.Width) uint16 {
	r := (v & w.Mask()) >> 1
	if mc.Status.Carry {
		r |= w.Sign()
	}
	mc.Status.Carry = v&0x01 == 0x01
	mc.SetZN(r, w)
	return r
}

func (mc *CPU) inc(v uint16, w registers.Width) uint16 {
	r := (v + 1) & w.Mask()
	mc.SetZN(r, w)
	return r
}

func (mc *CPU) dec(v uint16, w registers.Width) uint16 {
	r := (v - 1) & w.Mask()
	mc.SetZN(r, w)
	return r
}

func (mc *CPU) tsb(v uint16, w registers.Width) uint16 {
	mc.Status.Zero = mc.A&v&w.Mask() == 0
	return (v | mc.A) & w.Mask()
}

func (mc *CPU) trb(v uint16, w registers.Width) uint16 {
	mc.Status.Zero = mc.A&v&w.Mask() == 0
	return v &^ mc.A & w.Mask()
}

// Asl shifts the operand left. Bit 7 (or 15) moves into the carry flag.
func (mc *CPU) Asl(ea EffectiveAddress) {
	mc.modify(ea, mc.asl)
}

// Lsr shifts the operand right. Bit 0 moves into the carry flag.
func (mc *CPU) Lsr(ea EffectiveAddress) {
	mc.modify(ea, mc.lsr)
}

// Rol rotates the operand left through the carry flag.
func (mc *CPU) Rol(ea EffectiveAddress) {
	mc.modify(ea, mc.rol)
}

// Ror rotates the operand right through the carry flag.
func (mc *CPU) Ror(ea EffectiveAddress) {
	mc.modify(ea, mc.ror)
}

// Inc increments the operand.
func (mc *CPU) Inc(ea EffectiveAddress) {
	mc.modify(ea, mc.inc)
}

// Dec decrements the operand.
func (mc *CPU) Dec(ea EffectiveAddress) {
	mc.modify(ea, mc.dec)
}

// Tsb sets the bits of the operand that are set in the accumulator. The zero
// flag is set if the operand and the accumulator have no bits in common.
func (mc *CPU) Tsb(ea EffectiveAddress) {
	mc.modify(ea, mc.tsb)
}

// Trb clears the bits of the operand that are set in the accumulator. The
// zero flag is set as for Tsb.
func (mc *CPU) Trb(ea EffectiveAddress) {
	mc.modify(ea, mc.trb)
}
