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

package debugger

import (
	"context"
	"io"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/script"
	"github.com/jetsetilly/gopher65816/debugger/stepper"
	"github.com/jetsetilly/gopher65816/debugger/terminal"
	"github.com/jetsetilly/gopher65816/disassembly"
	"github.com/jetsetilly/gopher65816/hardware"
	"github.com/jetsetilly/gopher65816/logger"
	"github.com/jetsetilly/gopher65816/symbols"
)

// DefaultRunLimit is the maximum number of instructions executed by the RUN
// command when no limit is given.
const DefaultRunLimit = 1000000

// maximum depth of nested scripts. a script that runs itself would otherwise
// never end
const maxScriptDepth = 8

// Debugger is the basic debugging frontend for the emulation.
type Debugger struct {
	machine *hardware.Machine
	syms    *symbols.Symbols
	stepper *stepper.Controller

	term terminal.Terminal

	breakpoints *breakpoints
	watches     *watches

	// record user input to a script file
	scriptScribe script.Scribe
	scriptDepth  int

	// cancels Lua scripts
	ctx context.Context

	// set to false by the QUIT command
	running bool
}

// NewDebugger creates and initialises everything required for a new debugging
// session. The symbols argument can be nil.
func NewDebugger(machine *hardware.Machine, syms *symbols.Symbols, term terminal.Terminal) *Debugger {
	if syms == nil {
		syms = symbols.NewSymbols()
	}

	dbg := &Debugger{
		machine: machine,
		syms:    syms,
		term:    term,
		ctx:     context.Background(),
		running: true,
	}

	dbg.breakpoints = newBreakpoints()

	// the CPU accesses memory through the watches
	dbg.watches = newWatches(machine.Mem, func(address uint32) string {
		return dbg.syms.FormatAddress(address, 0)
	})
	machine.CPU.Plumb(dbg.watches)

	dbg.stepper = stepper.NewController()
	dbg.InitialiseStepper()

	term.RegisterTabCompletion(newTabCompletion())

	return dbg
}

// InitialiseStepper connects the step controller to the machine. The call
// stack is cleared.
func (dbg *Debugger) InitialiseStepper() {
	dbg.stepper.SetMemoryReader(dbg.machine.Mem.Peek)
	dbg.stepper.SetSingleStepper(dbg.machine.Step)
	dbg.stepper.SetPCGetter(func() uint32 {
		return dbg.machine.CPU.PCAddress()
	})
	dbg.stepper.SetSymbolLookup(dbg.syms.Lookup)
	dbg.stepper.ClearCallStack()
}

// Start the main debugger sequence. The initScript is run before any input
// is read from the terminal and may be empty.
//
// Start returns when the user quits or when input from the terminal ends.
// Cancelling the context stops any running Lua script.
func (dbg *Debugger) Start(ctx context.Context, initScript string) error {
	dbg.ctx = ctx

	err := dbg.term.Initialise()
	if err != nil {
		return err
	}
	defer dbg.term.CleanUp()

	defer func() {
		if err := dbg.scriptScribe.EndSession(); err != nil {
			logger.Log(logger.Allow, "debugger", err.Error())
		}
	}()

	if initScript != "" {
		if err := dbg.runScript(initScript); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return dbg.inputLoop(dbg.term)
}

func (dbg *Debugger) prompt() terminal.Prompt {
	mc := dbg.machine.CPU
	e := disassembly.Disassemble(dbg.machine.Mem, mc.PCAddress(),
		mc.AccumulatorSize().Is8Bit(), mc.IndexSize().Is8Bit(), dbg.syms)

	return terminal.Prompt{
		Content: e.String(),
		Depth:   dbg.stepper.Depth(),
	}
}

// read and act on input until QUIT or until the input ends.
func (dbg *Debugger) inputLoop(inputter terminal.Input) error {
	for dbg.running {
		if err := dbg.ctx.Err(); err != nil {
			return nil
		}

		input, err := inputter.TermRead(dbg.prompt())
		if err != nil {
			switch {
			case err == io.EOF:
				return nil
			case curated.Is(err, terminal.UserAbort):
				return nil
			case curated.Is(err, terminal.UserInterrupt):
				dbg.printLine(terminal.StyleFeedback, "use QUIT to exit the debugger")
				continue // for loop
			case curated.Is(err, script.ScriptEnd):
				return nil
			}
			return err
		}

		if err := dbg.parseInput(input, inputter.IsInteractive()); err != nil {
			dbg.printLine(terminal.StyleError, "%v", err)
		}
	}

	return nil
}
