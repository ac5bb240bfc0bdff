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
	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65816/hardware/cpu/registers"
	"github.com/jetsetilly/gopher65816/logger"
)

// ExecuteInstruction decodes and executes the instruction at the program
// counter. Returns an error only if the CPU has been halted.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Stopped {
		return curated.Errorf(Stopped)
	}
	if mc.Waiting {
		mc.mem.Idle(true)
		return curated.Errorf(Waiting)
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PCAddress()
	mc.LastResult.M8 = mc.AccumulatorSize().Is8Bit()
	mc.LastResult.X8 = mc.IndexSize().Is8Bit()

	defn := instructions.Lookup(mc.readOpcode())
	mc.LastResult.Defn = defn

	switch defn.Category {
	case instructions.Read, instructions.Write, instructions.RMW:
		if defn.Mode == instructions.Accumulator {
			mc.accumulator(defn)
		} else {
			mc.memory(defn, mc.resolve(defn.Mode, defn.Category != instructions.Read))
		}
	case instructions.Flow:
		mc.flow(defn)
	case instructions.Subroutine, instructions.Interrupt:
		mc.subroutine(defn)
	default:
		mc.internal(defn)
	}

	mc.LastResult.Final = true

	return nil
}

// memory instructions with a resolved effective address.
func (mc *CPU) memory(defn instructions.Definition, ea EffectiveAddress) {
	switch defn.Mnemonic {
	case "ORA":
		mc.Ora(ea)
	case "AND":
		mc.And(ea)
	case "EOR":
		mc.Eor(ea)
	case "ADC":
		mc.Adc(ea)
	case "SBC":
		mc.Sbc(ea)
	case "CMP":
		mc.Cmp(ea)
	case "CPX":
		mc.Cpx(ea)
	case "CPY":
		mc.Cpy(ea)
	case "BIT":
		mc.Bit(ea)
	case "LDA":
		mc.Lda(ea)
	case "LDX":
		mc.Ldx(ea)
	case "LDY":
		mc.Ldy(ea)
	case "STA":
		mc.Sta(ea)
	case "STX":
		mc.Stx(ea)
	case "STY":
		mc.Sty(ea)
	case "STZ":
		mc.Stz(ea)
	case "ASL":
		mc.Asl(ea)
	case "LSR":
		mc.Lsr(ea)
	case "ROL":
		mc.Rol(ea)
	case "ROR":
		mc.Ror(ea)
	case "INC":
		mc.Inc(ea)
	case "DEC":
		mc.Dec(ea)
	case "TSB":
		mc.Tsb(ea)
	case "TRB":
		mc.Trb(ea)
	}
}

// read-modify-write instructions on the accumulator.
func (mc *CPU) accumulator(defn instructions.Definition) {
	w := mc.AccumulatorSize()
	mc.idle()

	switch defn.Mnemonic {
	case "ASL":
		mc.setA(mc.asl(mc.A, w), w)
	case "LSR":
		mc.setA(mc.lsr(mc.A, w), w)
	case "ROL":
		mc.setA(mc.rol(mc.A, w), w)
	case "ROR":
		mc.setA(mc.ror(mc.A, w), w)
	case "INC":
		mc.setA(mc.inc(mc.A, w), w)
	case "DEC":
		mc.setA(mc.dec(mc.A, w), w)
	}
}

func (mc *CPU) branch(condition bool) {
	offset := int8(mc.readOpcode())
	if condition {
		mc.idle()
		mc.PC = uint16(int(mc.PC) + int(offset))
	}
}

// branches and jumps.
func (mc *CPU) flow(defn instructions.Definition) {
	switch defn.OpCode {
	case instructions.BPL:
		mc.branch(!mc.Status.Sign)
	case instructions.BMI:
		mc.branch(mc.Status.Sign)
	case instructions.BVC:
		mc.branch(!mc.Status.Overflow)
	case instructions.BVS:
		mc.branch(mc.Status.Overflow)
	case instructions.BCC:
		mc.branch(!mc.Status.Carry)
	case instructions.BCS:
		mc.branch(mc.Status.Carry)
	case instructions.BNE:
		mc.branch(!mc.Status.Zero)
	case instructions.BEQ:
		mc.branch(mc.Status.Zero)
	case instructions.BRA:
		mc.branch(true)

	case instructions.BRL:
		offset := int16(mc.readOpcodeWord())
		mc.idle()
		mc.PC = uint16(int(mc.PC) + int(offset))

	case instructions.JMP:
		mc.PC = mc.readOpcodeWord()

	case instructions.JML:
		adr := mc.readOpcodeLong()
		mc.LoadPC(adr)

	case instructions.JMPIndirect:
		adr := mc.readOpcodeWord()
		mc.PC = mc.mem.ReadWord(uint32(adr), uint32(adr+1))

	case instructions.JMPIndexed:
		adr := mc.readOpcodeWord() + mc.X
		mc.idle()
		bank := uint32(mc.PB) << 16
		mc.PC = mc.mem.ReadWord(bank|uint32(adr), bank|uint32(adr+1))

	case instructions.JMLIndirect:
		adr := mc.readOpcodeWord()
		pc := mc.mem.ReadWord(uint32(adr), uint32(adr+1))
		mc.PB = mc.mem.ReadByte(uint32(adr + 2))
		mc.PC = pc
	}
}

// subroutine calls, returns and software interrupts.
func (mc *CPU) subroutine(defn instructions.Definition) {
	switch defn.OpCode {
	case instructions.JSR:
		adr := mc.readOpcodeWord()
		mc.idle()
		mc.pushWord(mc.PC - 1)
		mc.PC = adr

	case instructions.JSL:
		adr := mc.readOpcodeWord()
		mc.push(mc.PB)
		mc.idle()
		bank := mc.readOpcode()
		mc.pushWord(mc.PC - 1)
		mc.PC = adr
		mc.PB = bank

	case instructions.JSRIndirect:
		lo := mc.readOpcode()
		mc.pushWord(mc.PC)
		adr := uint16(mc.readOpcode())<<8 | uint16(lo)
		mc.idle()
		adr += mc.X
		bank := uint32(mc.PB) << 16
		mc.PC = mc.mem.ReadWord(bank|uint32(adr), bank|uint32(adr+1))

	case instructions.RTS:
		mc.idle()
		mc.idle()
		mc.PC = mc.popWord() + 1
		mc.idle()

	case instructions.RTL:
		mc.idle()
		mc.idle()
		mc.PC = mc.popWord() + 1
		mc.PB = mc.pop()

	case instructions.RTI:
		mc.idle()
		mc.idle()
		mc.LoadStatus(mc.pop())
		mc.PC = mc.popWord()
		if !mc.E {
			mc.PB = mc.pop()
		}

	case 0x00: // BRK
		mc.interrupt(VectorNativeBRK, VectorEmulationBRK)

	case 0x02: // COP
		mc.interrupt(VectorNativeCOP, VectorEmulationCOP)
	}
}

// software interrupt. the signature byte is skipped.
func (mc *CPU) interrupt(native uint16, emulation uint16) {
	mc.readOpcode()

	vector := native
	if mc.E {
		vector = emulation
	} else {
		mc.push(mc.PB)
	}

	mc.pushWord(mc.PC)
	mc.push(mc.Status.Value())
	mc.Status.InterruptDisable = true
	mc.Status.DecimalMode = false
	mc.PB = 0
	mc.PC = mc.mem.ReadWord(uint32(vector), uint32(vector+1))
}

// transfer between registers. the width of the destination decides how many
// bits are transferred and the width of the flags.
func (mc *CPU) transfer(dest *uint16, v uint16, w registers.Width) {
	if dest == &mc.A {
		mc.setA(v, w)
	} else {
		setIndex(dest, v, w)
	}
	mc.SetZN(*dest, w)
}

// instructions that operate only on registers and the stack.
func (mc *CPU) internal(defn instructions.Definition) {
	m := mc.AccumulatorSize()
	x := mc.IndexSize()

	switch defn.Mnemonic {
	case "NOP":
		mc.idle()
	case "WDM":
		mc.readOpcode()

	case "CLC":
		mc.idle()
		mc.Status.Carry = false
	case "SEC":
		mc.idle()
		mc.Status.Carry = true
	case "CLI":
		mc.idle()
		mc.Status.InterruptDisable = false
	case "SEI":
		mc.idle()
		mc.Status.InterruptDisable = true
	case "CLD":
		mc.idle()
		mc.Status.DecimalMode = false
	case "SED":
		mc.idle()
		mc.Status.DecimalMode = true
	case "CLV":
		mc.idle()
		mc.Status.Overflow = false

	case "REP":
		v := mc.readOpcode()
		mc.idle()
		mc.LoadStatus(mc.Status.Value() &^ v)
	case "SEP":
		v := mc.readOpcode()
		mc.idle()
		mc.LoadStatus(mc.Status.Value() | v)
	case "XCE":
		mc.idle()
		c := mc.Status.Carry
		mc.Status.Carry = mc.E
		mc.SetEmulation(c)

	case "INX":
		mc.idle()
		mc.transfer(&mc.X, mc.X+1, x)
	case "INY":
		mc.idle()
		mc.transfer(&mc.Y, mc.Y+1, x)
	case "DEX":
		mc.idle()
		mc.transfer(&mc.X, mc.X-1, x)
	case "DEY":
		mc.idle()
		mc.transfer(&mc.Y, mc.Y-1, x)

	case "TAX":
		mc.idle()
		mc.transfer(&mc.X, mc.A, x)
	case "TAY":
		mc.idle()
		mc.transfer(&mc.Y, mc.A, x)
	case "TXA":
		mc.idle()
		mc.transfer(&mc.A, mc.X, m)
	case "TYA":
		mc.idle()
		mc.transfer(&mc.A, mc.Y, m)
	case "TXY":
		mc.idle()
		mc.transfer(&mc.Y, mc.X, x)
	case "TYX":
		mc.idle()
		mc.transfer(&mc.X, mc.Y, x)
	case "TSX":
		mc.idle()
		mc.transfer(&mc.X, mc.SP, x)
	case "TCD":
		mc.idle()
		mc.D = mc.A
		mc.SetZN(mc.D, registers.Width16)
	case "TDC":
		mc.idle()
		mc.A = mc.D
		mc.SetZN(mc.A, registers.Width16)
	case "TSC":
		mc.idle()
		mc.A = mc.SP
		mc.SetZN(mc.A, registers.Width16)
	case "TCS":
		mc.idle()
		mc.SP = mc.A
		if mc.E {
			mc.SP = 0x0100 | mc.A&0x00ff
		}
	case "TXS":
		mc.idle()
		mc.SP = mc.X
		if mc.E {
			mc.SP = 0x0100 | mc.X&0x00ff
		}
	case "XBA":
		mc.idle()
		mc.idle()
		mc.A = mc.A>>8 | mc.A<<8
		mc.SetZN(mc.A, registers.Width8)

	case "PHA":
		mc.idle()
		mc.pushSized(mc.A, m)
	case "PHX":
		mc.idle()
		mc.pushSized(mc.X, x)
	case "PHY":
		mc.idle()
		mc.pushSized(mc.Y, x)
	case "PHP":
		mc.idle()
		mc.push(mc.Status.Value())
	case "PHB":
		mc.idle()
		mc.push(mc.DB)
	case "PHK":
		mc.idle()
		mc.push(mc.PB)
	case "PHD":
		mc.idle()
		mc.pushWord(mc.D)

	case "PLA":
		mc.idle()
		mc.idle()
		mc.transfer(&mc.A, mc.popSized(m), m)
	case "PLX":
		mc.idle()
		mc.idle()
		mc.transfer(&mc.X, mc.popSized(x), x)
	case "PLY":
		mc.idle()
		mc.idle()
		mc.transfer(&mc.Y, mc.popSized(x), x)
	case "PLP":
		mc.idle()
		mc.idle()
		mc.LoadStatus(mc.pop())
	case "PLB":
		mc.idle()
		mc.idle()
		mc.DB = mc.pop()
		mc.SetZN(uint16(mc.DB), registers.Width8)
	case "PLD":
		mc.idle()
		mc.idle()
		mc.D = mc.popWord()
		mc.SetZN(mc.D, registers.Width16)

	case "PEA":
		mc.pushWord(mc.readOpcodeWord())
	case "PEI":
		p := mc.direct(mc.directOperand())
		mc.pushWord(mc.mem.ReadWord(p.Low, p.High))
	case "PER":
		v := mc.readOpcodeWord()
		mc.idle()
		mc.pushWord(mc.PC + v)

	case "MVN", "MVP":
		mc.blockMove(defn.Mnemonic == "MVN")

	case "WAI":
		mc.Waiting = true
		mc.mem.Idle(true)
		logger.Logf(logger.Allow, "cpu", "WAI at %06x", mc.LastResult.Address)
	case "STP":
		mc.Stopped = true
		logger.Logf(logger.Allow, "cpu", "STP at %06x", mc.LastResult.Address)
	}
}

func (mc *CPU) pushSized(v uint16, w registers.Width) {
	if w.Is8Bit() {
		mc.push(uint8(v))
		return
	}
	mc.pushWord(v)
}

func (mc *CPU) popSized(w registers.Width) uint16 {
	if w.Is8Bit() {
		return uint16(mc.pop())
	}
	return mc.popWord()
}

// blockMove transfers one byte. the program counter is moved back to the
// start of the instruction until the accumulator underflows, so the
// instruction repeats on the next call to ExecuteInstruction().
func (mc *CPU) blockMove(increment bool) {
	dest := mc.readOpcode()
	src := mc.readOpcode()
	mc.DB = dest

	v := mc.mem.ReadByte(uint32(src)<<16 | uint32(mc.X))
	mc.mem.WriteByte(uint32(dest)<<16|uint32(mc.Y), v)
	mc.idle()
	mc.idle()

	x := mc.IndexSize()
	if increment {
		setIndex(&mc.X, mc.X+1, x)
		setIndex(&mc.Y, mc.Y+1, x)
	} else {
		setIndex(&mc.X, mc.X-1, x)
		setIndex(&mc.Y, mc.Y-1, x)
	}

	mc.A--
	if mc.A != 0xffff {
		mc.PC -= 3
	}
}
