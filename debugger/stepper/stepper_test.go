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

package stepper_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/stepper"
	"github.com/jetsetilly/gopher65816/hardware/cpu"
	"github.com/jetsetilly/gopher65816/hardware/memory"
	"github.com/jetsetilly/gopher65816/test"
)

// segment of program to be loaded at origin.
type segment struct {
	origin uint32
	data   []uint8
}

func newController(segments ...segment) (*stepper.Controller, *cpu.CPU) {
	mem := memory.NewFlat()
	for _, s := range segments {
		mem.Load(s.origin, s.data)
	}

	mc := cpu.NewCPU(mem)
	mc.LoadPC(0)

	c := stepper.NewController()
	c.SetMemoryReader(mem.Peek)
	c.SetSingleStepper(mc.ExecuteInstruction)
	c.SetPCGetter(func() uint32 {
		return mc.PCAddress()
	})
	return c, mc
}

// JSR $0010 at address zero and an RTS at $0010.
var callAndReturn = []segment{
	{0x0000, []uint8{0x20, 0x10, 0x00}},
	{0x0010, []uint8{0x60}},
}

func TestStepInto(t *testing.T) {
	c, _ := newController(callAndReturn...)

	r := c.StepInto()
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.InstructionsExecuted, 1)
	test.ExpectEquality(t, r.NewPC, uint32(0x0010))
	test.DemandSuccess(t, r.Call != nil)
	test.ExpectEquality(t, r.Call.CallAddress, uint32(0x0000))
	test.ExpectEquality(t, r.Call.TargetAddress, uint32(0x0010))
	test.ExpectEquality(t, r.Call.ReturnAddress, uint32(0x0003))
	test.ExpectFailure(t, r.Call.IsLong)
	test.ExpectEquality(t, r.Ret == nil, true)
	test.ExpectEquality(t, c.Depth(), 1)

	r = c.StepInto()
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.NewPC, uint32(0x0003))
	test.ExpectEquality(t, r.Call == nil, true)
	test.DemandSuccess(t, r.Ret != nil)
	test.ExpectEquality(t, r.Ret.TargetAddress, uint32(0x0010))
	test.ExpectEquality(t, c.Depth(), 0)
}

func TestStepIntoPlainInstruction(t *testing.T) {
	// NOP
	c, _ := newController(segment{0x0000, []uint8{0xea}})

	r := c.StepInto()
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.NewPC, uint32(0x0001))
	test.ExpectEquality(t, r.Call == nil, true)
	test.ExpectEquality(t, r.Ret == nil, true)
	test.ExpectEquality(t, c.Depth(), 0)
}

func TestReturnWithEmptyCallStack(t *testing.T) {
	// RTS with nothing on the call stack. the CPU still returns to wherever
	// the hardware stack points
	c, _ := newController(segment{0x0000, []uint8{0x60}})

	r := c.StepInto()
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.Ret == nil, true)
	test.ExpectEquality(t, c.Depth(), 0)
}

func TestLongCall(t *testing.T) {
	c, _ := newController(
		// JSL $018000
		segment{0x000000, []uint8{0x22, 0x00, 0x80, 0x01}},
		// RTL
		segment{0x018000, []uint8{0x6b}},
	)

	r := c.StepInto()
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.NewPC, uint32(0x018000))
	test.DemandSuccess(t, r.Call != nil)
	test.ExpectSuccess(t, r.Call.IsLong)
	test.ExpectEquality(t, r.Call.TargetAddress, uint32(0x018000))
	test.ExpectEquality(t, r.Call.ReturnAddress, uint32(0x000004))

	r = c.StepInto()
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.NewPC, uint32(0x000004))
	test.DemandSuccess(t, r.Ret != nil)
	test.ExpectEquality(t, c.Depth(), 0)
}

func TestStepOver(t *testing.T) {
	c, _ := newController(callAndReturn...)

	r := c.StepOver(0)
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.NewPC, uint32(0x0003))
	test.ExpectEquality(t, r.InstructionsExecuted, 2)
	test.ExpectEquality(t, c.Depth(), 0)
	test.DemandSuccess(t, r.Call != nil)
	test.ExpectEquality(t, r.Call.TargetAddress, uint32(0x0010))
}

func TestStepOverNested(t *testing.T) {
	c, _ := newController(
		// JSR $0010
		segment{0x0000, []uint8{0x20, 0x10, 0x00}},
		// JSR $0020; RTS
		segment{0x0010, []uint8{0x20, 0x20, 0x00, 0x60}},
		// NOP; RTS
		segment{0x0020, []uint8{0xea, 0x60}},
	)

	r := c.StepOver(100)
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.NewPC, uint32(0x0003))
	test.ExpectEquality(t, r.InstructionsExecuted, 5)
	test.ExpectEquality(t, c.Depth(), 0)
}

func TestStepOverNonCall(t *testing.T) {
	// LDA #$01
	c, mc := newController(segment{0x0000, []uint8{0xa9, 0x01}})

	r := c.StepOver(10)
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.InstructionsExecuted, 1)
	test.ExpectEquality(t, r.NewPC, uint32(0x0002))
	test.ExpectEquality(t, mc.A, uint16(0x0001))
}

func TestStepOverTimeout(t *testing.T) {
	c, _ := newController(
		// JSR $0010
		segment{0x0000, []uint8{0x20, 0x10, 0x00}},
		// BRA to self
		segment{0x0010, []uint8{0x80, 0xfe}},
	)

	r := c.StepOver(10)
	test.ExpectFailure(t, r.Success)
	test.ExpectSuccess(t, strings.Contains(r.Message, "timed out"))
	test.ExpectEquality(t, r.InstructionsExecuted, 10)
	test.ExpectEquality(t, r.NewPC, uint32(0x0010))

	// the call is still on the call stack
	test.ExpectEquality(t, c.Depth(), 1)
}

func TestStepOut(t *testing.T) {
	c, _ := newController(
		// JSR $0010
		segment{0x0000, []uint8{0x20, 0x10, 0x00}},
		// JSR $0020; RTS
		segment{0x0010, []uint8{0x20, 0x20, 0x00, 0x60}},
		// NOP; RTS
		segment{0x0020, []uint8{0xea, 0x60}},
	)

	r := c.StepOut(0)
	test.ExpectFailure(t, r.Success)
	test.ExpectSuccess(t, strings.Contains(r.Message, "call stack is empty"))
	test.ExpectEquality(t, r.InstructionsExecuted, 0)

	c.StepInto()
	c.StepInto()
	test.DemandEquality(t, c.Depth(), 2)

	r = c.StepOut(0)
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, c.Depth(), 1)
	test.ExpectEquality(t, r.InstructionsExecuted, 2)
	test.ExpectEquality(t, r.NewPC, uint32(0x0013))
	test.DemandSuccess(t, r.Ret != nil)
	test.ExpectEquality(t, r.Ret.TargetAddress, uint32(0x0020))

	r = c.StepOut(0)
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, c.Depth(), 0)
	test.ExpectEquality(t, r.InstructionsExecuted, 1)
	test.ExpectEquality(t, r.NewPC, uint32(0x0003))
}

func TestStepOutTimeout(t *testing.T) {
	c, _ := newController(
		segment{0x0000, []uint8{0x20, 0x10, 0x00}},
		segment{0x0010, []uint8{0x80, 0xfe}},
	)

	c.StepInto()
	r := c.StepOut(5)
	test.ExpectFailure(t, r.Success)
	test.ExpectSuccess(t, strings.Contains(r.Message, "timed out"))
	test.ExpectEquality(t, r.InstructionsExecuted, 5)
	test.ExpectEquality(t, c.Depth(), 1)
}

func TestCallStack(t *testing.T) {
	c, _ := newController(callAndReturn...)
	c.SetSymbolLookup(func(address uint32) (string, bool) {
		if address == 0x0010 {
			return "update", true
		}
		return "", false
	})

	c.StepInto()

	stk := c.CallStack()
	test.DemandEquality(t, len(stk), 1)
	test.ExpectEquality(t, stk[0].Symbol, "update")
	test.ExpectEquality(t, stk[0].String(), "$000000 JSR $000010 (update) -> $000003")

	// changing the copy does not change the controller's call stack
	stk[0].Symbol = "changed"
	test.ExpectEquality(t, c.CallStack()[0].Symbol, "update")

	c.ClearCallStack()
	test.ExpectEquality(t, c.Depth(), 0)
}

func TestIndirectCallSymbol(t *testing.T) {
	c, _ := newController(
		// JSR ($0010,X)
		segment{0x0000, []uint8{0xfc, 0x10, 0x00}},
		// pointer to $0020
		segment{0x0010, []uint8{0x20, 0x00}},
		// RTS
		segment{0x0020, []uint8{0x60}},
	)
	c.SetSymbolLookup(func(address uint32) (string, bool) {
		if address == 0x0000 {
			return "counter", true
		}
		return "", false
	})

	r := c.StepInto()
	test.ExpectSuccess(t, r.Success)
	test.ExpectEquality(t, r.NewPC, uint32(0x0020))
	test.DemandSuccess(t, r.Call != nil)
	test.ExpectEquality(t, r.Call.TargetAddress, uint32(0x0000))
	test.ExpectEquality(t, r.Call.Symbol, "")
	test.ExpectEquality(t, c.CallStack()[0].Symbol, "")
}

func TestNotConfigured(t *testing.T) {
	c := stepper.NewController()

	r := c.StepInto()
	test.ExpectFailure(t, r.Success)
	test.ExpectSuccess(t, strings.Contains(r.Message, "memory reader"))
	test.ExpectEquality(t, r.InstructionsExecuted, 0)

	c.SetMemoryReader(func(_ uint32) uint8 { return 0xea })
	r = c.StepOver(0)
	test.ExpectFailure(t, r.Success)
	test.ExpectSuccess(t, strings.Contains(r.Message, "single stepper"))
	test.ExpectEquality(t, r.InstructionsExecuted, 0)

	c.SetSingleStepper(func() error { return nil })
	r = c.StepOut(0)
	test.ExpectFailure(t, r.Success)
	test.ExpectSuccess(t, strings.Contains(r.Message, "PC getter"))
	test.ExpectEquality(t, r.InstructionsExecuted, 0)
}

func TestStepperError(t *testing.T) {
	mem := memory.NewFlat()
	mem.Load(0x0000, []uint8{0x20, 0x10, 0x00})

	c := stepper.NewController()
	c.SetMemoryReader(mem.Peek)
	c.SetPCGetter(func() uint32 { return 0 })
	c.SetSingleStepper(func() error {
		return curated.Errorf("test: cannot step")
	})

	r := c.StepInto()
	test.ExpectFailure(t, r.Success)
	test.ExpectEquality(t, r.Message, "test: cannot step")
	test.ExpectEquality(t, r.Call == nil, true)
	test.ExpectEquality(t, c.Depth(), 0)
}

func TestStoppedCPU(t *testing.T) {
	// STP
	c, _ := newController(segment{0x0000, []uint8{0xdb}})

	r := c.StepInto()
	test.ExpectSuccess(t, r.Success)

	r = c.StepInto()
	test.ExpectFailure(t, r.Success)
	test.ExpectEquality(t, r.Message, cpu.Stopped)
}

func TestCalculateAddresses(t *testing.T) {
	test.ExpectEquality(t, stepper.CalculateReturnAddress(0x12fffe, 0x20), uint32(0x120001))
	test.ExpectEquality(t, stepper.CalculateReturnAddress(0x12fffe, 0xfc), uint32(0x120001))
	test.ExpectEquality(t, stepper.CalculateReturnAddress(0x12fffe, 0x22), uint32(0x130002))
	test.ExpectEquality(t, stepper.CalculateReturnAddress(0xfffffe, 0x22), uint32(0x000002))

	mem := memory.NewFlat()
	mem.Load(0x028000, []uint8{0x20, 0x34, 0x12})
	mem.Load(0x028010, []uint8{0x22, 0x56, 0x34, 0x12})
	mem.Load(0x028020, []uint8{0xfc, 0x00, 0x90})

	c := stepper.NewController()
	c.SetMemoryReader(mem.Peek)
	test.ExpectEquality(t, c.CalculateCallTarget(0x028000, 0x20), uint32(0x021234))
	test.ExpectEquality(t, c.CalculateCallTarget(0x028010, 0x22), uint32(0x123456))
	test.ExpectEquality(t, c.CalculateCallTarget(0x028020, 0xfc), uint32(0))
}
