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

package stepper

import (
	"fmt"

	"github.com/jetsetilly/gopher65816/hardware/cpu/instructions"
	"github.com/jetsetilly/gopher65816/logger"
)

// DefaultMaxInstructions is the instruction budget used by StepOver() and
// StepOut() when the requested budget is zero or less.
const DefaultMaxInstructions = 1000000

// MemoryReader returns the byte at the 24 bit address. It must not have any
// side effects.
type MemoryReader func(address uint32) uint8

// SingleStepper executes exactly one instruction.
type SingleStepper func() error

// PCGetter returns the address of the next instruction as (bank << 16) | PC.
type PCGetter func() uint32

// SymbolLookup returns the symbol for an address, if there is one.
type SymbolLookup func(address uint32) (string, bool)

// CallStackEntry records a single subroutine call.
type CallStackEntry struct {
	// address of the call instruction
	CallAddress uint32

	// address of the subroutine. zero if the target could not be resolved
	TargetAddress uint32

	// address of the instruction following the call instruction
	ReturnAddress uint32

	// true if the call was a JSL
	IsLong bool

	// symbol for the target address, if known
	Symbol string
}

func (e CallStackEntry) String() string {
	target := fmt.Sprintf("$%06x", e.TargetAddress)
	if e.Symbol != "" {
		target = fmt.Sprintf("%s (%s)", target, e.Symbol)
	}
	if e.IsLong {
		return fmt.Sprintf("$%06x JSL %s -> $%06x", e.CallAddress, target, e.ReturnAddress)
	}
	return fmt.Sprintf("$%06x JSR %s -> $%06x", e.CallAddress, target, e.ReturnAddress)
}

// StepResult is returned by the step functions of the Controller.
type StepResult struct {
	Success              bool
	NewPC                uint32
	InstructionsExecuted int
	Message              string

	// Call is not nil if the last instruction executed was a call
	Call *CallStackEntry

	// Ret is not nil if the last instruction executed was a return that
	// popped an entry from the call stack. for StepOut() it is the return
	// that completed the step
	Ret *CallStackEntry
}

func (r StepResult) String() string {
	return r.Message
}

// Controller steps through a program one instruction at a time while
// maintaining a call stack.
type Controller struct {
	read   MemoryReader
	step   SingleStepper
	pc     PCGetter
	symbol SymbolLookup

	// most recent call is at the end of the slice
	stack []CallStackEntry
}

// NewController is the preferred method of initialisation for the Controller
// type. The Controller cannot step until the reader, stepper and PC getter
// have been set.
func NewController() *Controller {
	return &Controller{
		stack: make([]CallStackEntry, 0, 16),
	}
}

// SetMemoryReader sets the function used to read opcodes and operands.
func (c *Controller) SetMemoryReader(read MemoryReader) {
	c.read = read
}

// SetSingleStepper sets the function used to execute a single instruction.
func (c *Controller) SetSingleStepper(step SingleStepper) {
	c.step = step
}

// SetPCGetter sets the function used to find the address of the next
// instruction.
func (c *Controller) SetPCGetter(pc PCGetter) {
	c.pc = pc
}

// SetSymbolLookup sets the function used to name call targets. It may be nil.
func (c *Controller) SetSymbolLookup(symbol SymbolLookup) {
	c.symbol = symbol
}

// CallStack returns a copy of the call stack. The most recent call is the
// last entry.
func (c *Controller) CallStack() []CallStackEntry {
	s := make([]CallStackEntry, len(c.stack))
	copy(s, c.stack)
	return s
}

// Depth returns the number of entries in the call stack.
func (c *Controller) Depth() int {
	return len(c.stack)
}

// ClearCallStack empties the call stack.
func (c *Controller) ClearCallStack() {
	c.stack = c.stack[:0]
}

// CalculateReturnAddress returns the address of the instruction following the
// call instruction at pc. A JSR only pushes the sixteen bit PC so the return
// address wraps inside the current bank. A JSL returns to the full 24 bit
// address.
func CalculateReturnAddress(pc uint32, opcode uint8) uint32 {
	size := uint32(instructions.Size(opcode))
	if instructions.IsLongCall(opcode) {
		return (pc + size) & 0xffffff
	}
	return (pc & 0xff0000) | ((pc + size) & 0xffff)
}

// CalculateCallTarget returns the address of the subroutine called by the
// instruction at pc. The target of a JSR (abs,X) depends on the X register
// and cannot be calculated. Zero is returned in that case.
func (c *Controller) CalculateCallTarget(pc uint32, opcode uint8) uint32 {
	if c.read == nil {
		return 0
	}

	bank := pc & 0xff0000
	operand := func(i uint32) uint32 {
		return uint32(c.read(bank | ((pc + i) & 0xffff)))
	}

	switch opcode {
	case instructions.JSR:
		return bank | operand(2)<<8 | operand(1)
	case instructions.JSL:
		return operand(3)<<16 | operand(2)<<8 | operand(1)
	}

	return 0
}

// check that the Controller has everything it needs. returns a failed
// StepResult if it does not.
func (c *Controller) configured() (StepResult, bool) {
	var missing string
	switch {
	case c.read == nil:
		missing = "memory reader"
	case c.step == nil:
		missing = "single stepper"
	case c.pc == nil:
		missing = "PC getter"
	default:
		return StepResult{}, true
	}
	return StepResult{
		Message: fmt.Sprintf("step controller not configured: no %s", missing),
	}, false
}

func (c *Controller) failure(err error, executed int) StepResult {
	return StepResult{
		NewPC:                c.pc(),
		InstructionsExecuted: executed,
		Message:              err.Error(),
	}
}

// StepInto executes exactly one instruction. If the instruction is a call or
// a return the call stack is updated and the event is recorded in the
// StepResult.
//
// If the single stepper returns an error the call stack is not changed.
func (c *Controller) StepInto() StepResult {
	if r, ok := c.configured(); !ok {
		return r
	}

	pc := c.pc()
	opcode := c.read(pc)

	var call *CallStackEntry
	var ret *CallStackEntry

	if instructions.IsCall(opcode) {
		call = &CallStackEntry{
			CallAddress:   pc,
			TargetAddress: c.CalculateCallTarget(pc, opcode),
			ReturnAddress: CalculateReturnAddress(pc, opcode),
			IsLong:        instructions.IsLongCall(opcode),
		}
		// the target of JSR (abs,X) is not known before the instruction runs
		if c.symbol != nil && opcode != instructions.JSRIndirect {
			call.Symbol, _ = c.symbol(call.TargetAddress)
		}
	} else if instructions.IsReturn(opcode) {
		if len(c.stack) > 0 {
			e := c.stack[len(c.stack)-1]
			ret = &e
		} else {
			logger.Logf(logger.Allow, "stepper", "return at $%06x with an empty call stack", pc)
		}
	}

	if err := c.step(); err != nil {
		return c.failure(err, 0)
	}

	r := StepResult{
		Success:              true,
		NewPC:                c.pc(),
		InstructionsExecuted: 1,
		Call:                 call,
		Ret:                  ret,
	}

	switch {
	case call != nil:
		c.stack = append(c.stack, *call)
		r.Message = fmt.Sprintf("call to $%06x", call.TargetAddress)
		if call.Symbol != "" {
			r.Message = fmt.Sprintf("%s (%s)", r.Message, call.Symbol)
		}
	case ret != nil:
		c.stack = c.stack[:len(c.stack)-1]
		r.Message = fmt.Sprintf("return to $%06x", r.NewPC)
	default:
		r.Message = fmt.Sprintf("stepped to $%06x", r.NewPC)
	}

	return r
}

// StepOver executes the next instruction. If the instruction is a call then
// execution continues until the subroutine returns. The call instruction
// counts towards the max number of instructions.
//
// A value of zero or less for max means DefaultMaxInstructions.
func (c *Controller) StepOver(max int) StepResult {
	if r, ok := c.configured(); !ok {
		return r
	}

	if max <= 0 {
		max = DefaultMaxInstructions
	}

	if !instructions.IsCall(c.read(c.pc())) {
		return c.StepInto()
	}

	depth := len(c.stack)

	r := c.StepInto()
	if !r.Success {
		return r
	}
	call := r.Call
	count := 1

	for len(c.stack) > depth {
		if count >= max {
			return c.timeout("step over", count)
		}

		r = c.StepInto()
		if !r.Success {
			r.InstructionsExecuted = count
			return r
		}
		count++
	}

	return StepResult{
		Success:              true,
		NewPC:                c.pc(),
		InstructionsExecuted: count,
		Message:              fmt.Sprintf("stepped over call to $%06x (%d instructions)", call.TargetAddress, count),
		Call:                 call,
		Ret:                  r.Ret,
	}
}

// StepOut executes instructions until the current subroutine returns. It
// fails if the call stack is empty.
//
// A value of zero or less for max means DefaultMaxInstructions.
func (c *Controller) StepOut(max int) StepResult {
	if r, ok := c.configured(); !ok {
		return r
	}

	if len(c.stack) == 0 {
		return StepResult{
			NewPC:   c.pc(),
			Message: "cannot step out: call stack is empty",
		}
	}

	if max <= 0 {
		max = DefaultMaxInstructions
	}

	target := len(c.stack) - 1

	var ret *CallStackEntry
	count := 0

	for len(c.stack) > target {
		if count >= max {
			return c.timeout("step out", count)
		}

		r := c.StepInto()
		if !r.Success {
			r.InstructionsExecuted = count
			return r
		}
		count++

		if r.Ret != nil {
			ret = r.Ret
		}
	}

	return StepResult{
		Success:              true,
		NewPC:                c.pc(),
		InstructionsExecuted: count,
		Message:              fmt.Sprintf("stepped out to $%06x (%d instructions)", c.pc(), count),
		Ret:                  ret,
	}
}

func (c *Controller) timeout(operation string, count int) StepResult {
	logger.Logf(logger.Allow, "stepper", "%s timed out after %d instructions at $%06x", operation, count, c.pc())
	return StepResult{
		NewPC:                c.pc(),
		InstructionsExecuted: count,
		Message:              fmt.Sprintf("%s timed out after %d instructions", operation, count),
	}
}
