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

package cpu_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware/cpu"
	"github.com/jetsetilly/gopher65816/test"
)

func TestReset(t *testing.T) {
	mc, _ := newCPU()
	test.ExpectEquality(t, mc.PC, uint16(origin))
	test.ExpectEquality(t, mc.PB, uint8(0))
	test.ExpectEquality(t, mc.SP, uint16(0x01ff))
	test.ExpectSuccess(t, mc.E)
	flags(t, mc, "nvMXdIzc")
}

func TestEveryOpcode(t *testing.T) {
	for op := 0; op <= 0xff; op++ {
		for _, setup := range []func(*cpu.CPU){native8, native16, func(*cpu.CPU) {}} {
			mc, _ := newCPU(uint8(op))
			setup(mc)
			step(t, mc)
			test.ExpectEquality(t, mc.LastResult.Defn.OpCode, uint8(op))
		}
	}
}

func TestSubroutine(t *testing.T) {
	mc, mem := newCPU(0x20, 0x10, 0x80, 0xea) // JSR $8010; NOP
	mem.WriteByte(0x8010, 0x60)                // RTS

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8010))
	test.ExpectEquality(t, mc.SP, uint16(0x01fd))

	// the address of the last byte of the JSR instruction is pushed
	test.ExpectEquality(t, mem.Peek(0x01ff), uint8(0x80))
	test.ExpectEquality(t, mem.Peek(0x01fe), uint8(0x02))

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8003))
	test.ExpectEquality(t, mc.SP, uint16(0x01ff))

	step(t, mc)
	test.ExpectEquality(t, mc.LastResult.Defn.Mnemonic, "NOP")
}

func TestLongSubroutine(t *testing.T) {
	// CLC; XCE; JSL $010000
	mc, mem := newCPU(0x18, 0xfb, 0x22, 0x00, 0x00, 0x01)
	mem.WriteByte(0x010000, 0x6b) // RTL

	step(t, mc)
	step(t, mc)
	test.ExpectFailure(t, mc.E)

	step(t, mc)
	test.ExpectEquality(t, mc.PCAddress(), uint32(0x010000))
	test.ExpectEquality(t, mc.SP, uint16(0x01fc))

	step(t, mc)
	test.ExpectEquality(t, mc.PCAddress(), uint32(0x008006))
	test.ExpectEquality(t, mc.SP, uint16(0x01ff))
}

func TestIndirectSubroutine(t *testing.T) {
	// LDX #$02; JSR ($8100,X)
	mc, mem := newCPU(0xa2, 0x02, 0xfc, 0x00, 0x81)
	mem.WriteWord(0x8102, 0x8103, 0x8200)
	mem.WriteByte(0x8200, 0x60) // RTS

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8200))

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8005))
}

func TestBranches(t *testing.T) {
	// LDA #$00; BEQ +2; NOP; NOP; BNE +16; BRA -2
	mc, _ := newCPU(0xa9, 0x00, 0xf0, 0x02, 0xea, 0xea, 0xd0, 0x10, 0x80, 0xfe)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8006))

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8008))

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8008))
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8008))
}

func TestNativeMode(t *testing.T) {
	mc, mem := newCPU(
		0x18,             // CLC
		0xfb,             // XCE
		0xc2, 0x30,       // REP #$30
		0xa9, 0x34, 0x12, // LDA #$1234
		0xa2, 0x10, 0x00, // LDX #$0010
		0x9d, 0x00, 0x01, // STA $0100,X
		0xe2, 0x20, //       SEP #$20
		0xa9, 0xff, //       LDA #$ff
		0xeb, //             XBA
	)

	step(t, mc)
	step(t, mc)
	step(t, mc)
	flags(t, mc, "nvmxdIzC")

	step(t, mc)
	test.ExpectEquality(t, mc.A, uint16(0x1234))
	step(t, mc)
	test.ExpectEquality(t, mc.X, uint16(0x0010))
	step(t, mc)
	test.ExpectEquality(t, mem.ReadWord(0x000110, 0x000111), uint16(0x1234))

	step(t, mc)
	flags(t, mc, "nvMxdIzC")
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint16(0x12ff))
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint16(0xff12))
	flags(t, mc, "nvMxdIzC")
}

func TestDecimalProgram(t *testing.T) {
	// SED; CLC; LDA #$19; ADC #$01
	mc, _ := newCPU(0xf8, 0x18, 0xa9, 0x19, 0x69, 0x01)
	for i := 0; i < 4; i++ {
		step(t, mc)
	}
	test.ExpectEquality(t, mc.A&0xff, uint16(0x20))
	test.ExpectFailure(t, mc.Status.Carry)
}

func TestStack(t *testing.T) {
	// LDA #$42; PHA; LDA #$00; PLA; PHP; PLP; TSX
	mc, _ := newCPU(0xa9, 0x42, 0x48, 0xa9, 0x00, 0x68, 0x08, 0x28, 0xba)

	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.SP, uint16(0x01fe))
	step(t, mc)
	test.ExpectSuccess(t, mc.Status.Zero)
	step(t, mc)
	test.ExpectEquality(t, mc.A, uint16(0x0042))
	test.ExpectFailure(t, mc.Status.Zero)
	step(t, mc)
	step(t, mc)
	flags(t, mc, "nvMXdIzc")
	step(t, mc)
	test.ExpectEquality(t, mc.X, uint16(0x00ff))
}

func TestBlockMove(t *testing.T) {
	mc, mem := newCPU(
		0x18,             // CLC
		0xfb,             // XCE
		0xc2, 0x30,       // REP #$30
		0xa9, 0x02, 0x00, // LDA #$0002
		0xa2, 0x00, 0x10, // LDX #$1000
		0xa0, 0x00, 0x20, // LDY #$2000
		0x54, 0x00, 0x00, // MVN $00,$00
		0xea, //             NOP
	)
	mem.Load(0x001000, []uint8{0x01, 0x02, 0x03})

	for i := 0; i < 6; i++ {
		step(t, mc)
	}

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x800d))
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8010))
	test.ExpectEquality(t, mc.A, uint16(0xffff))
	test.ExpectEquality(t, mc.X, uint16(0x1003))
	test.ExpectEquality(t, mc.Y, uint16(0x2003))
	test.ExpectEquality(t, mem.Peek(0x002000), uint8(0x01))
	test.ExpectEquality(t, mem.Peek(0x002002), uint8(0x03))
}

func TestSoftwareInterrupt(t *testing.T) {
	mc, mem := newCPU(0x00, 0xff, 0xea) // BRK; NOP
	mem.WriteWord(cpu.VectorEmulationBRK, cpu.VectorEmulationBRK+1, 0x9000)
	mem.WriteByte(0x9000, 0x40) // RTI

	mc.Status.InterruptDisable = false
	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x9000))
	test.ExpectSuccess(t, mc.Status.InterruptDisable)

	step(t, mc)
	test.ExpectEquality(t, mc.PC, uint16(0x8002))
	test.ExpectFailure(t, mc.Status.InterruptDisable)
}

func TestStop(t *testing.T) {
	mc, _ := newCPU(0xdb) // STP

	step(t, mc)
	test.ExpectSuccess(t, mc.Stopped)

	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.Stopped))

	mc.Reset()
	test.ExpectFailure(t, mc.Stopped)
	step(t, mc)
}

func TestWait(t *testing.T) {
	mc, mem := newCPU(0xcb) // WAI

	step(t, mc)
	test.ExpectSuccess(t, mc.Waiting)

	err := mc.ExecuteInstruction()
	test.ExpectSuccess(t, curated.Is(err, cpu.Waiting))
	test.ExpectEquality(t, mem.WaitingCount, 2)
}
