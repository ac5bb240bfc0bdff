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
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/bradleyjkemp/memviz"
	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/lua"
	"github.com/jetsetilly/gopher65816/debugger/script"
	"github.com/jetsetilly/gopher65816/debugger/stepper"
	"github.com/jetsetilly/gopher65816/debugger/terminal"
	"github.com/jetsetilly/gopher65816/disassembly"
	"github.com/jetsetilly/gopher65816/logger"
	"github.com/jetsetilly/gopher65816/paths"
	"github.com/jetsetilly/gopher65816/symbols"
)

// Sentinal error patterns returned by the debugger commands.
const (
	UnknownCommand  = "debugger: unknown command: %s"
	ArgumentCount   = "debugger: %s: %s"
	InvalidArgument = "debugger: invalid argument: %s"
	InvalidAddress  = "debugger: invalid address: %s"
	StepFailed      = "debugger: %s"
	ScriptTooDeep   = "debugger: scripts nested too deeply (%d)"
	RecordingActive = "debugger: already recording a script (%s)"
)

// number of bytes in each row of PEEK output
const peekRowLength = 16

// number of instructions shown by DISASM if no count is given
const disasmDefaultCount = 10

// parseInput splits the input into individual commands and processes them in
// turn. commands are separated by a semicolon.
func (dbg *Debugger) parseInput(input string, interactive bool) error {
	for _, cmd := range strings.Split(input, ";") {
		cmd = strings.TrimSpace(cmd)
		if cmd == "" {
			continue // for loop
		}

		if !interactive {
			dbg.printLine(terminal.StyleEcho, cmd)
		}

		dbg.scriptScribe.WriteInput(cmd)

		if err := dbg.parseCommand(cmd); err != nil {
			dbg.scriptScribe.Rollback()
			return err
		}

		if !dbg.running {
			break // for loop
		}
	}

	return nil
}

// parseCommand checks the number of arguments and then performs the command.
func (dbg *Debugger) parseCommand(cmd string) error {
	tokens := strings.Fields(cmd)
	keyword := strings.ToUpper(tokens[0])
	args := tokens[1:]

	if a, ok := aliases[keyword]; ok {
		keyword = a
	}

	c, ok := commands[keyword]
	if !ok {
		return curated.Errorf(UnknownCommand, tokens[0])
	}
	if len(args) < c.minArgs {
		return curated.Errorf(ArgumentCount, keyword, "too few arguments")
	}
	if c.maxArgs >= 0 && len(args) > c.maxArgs {
		return curated.Errorf(ArgumentCount, keyword, "too many arguments")
	}

	switch keyword {
	case KeywordHelp:
		if len(args) == 0 {
			dbg.printLine(terminal.StyleHelp, help(""))
		} else {
			dbg.printLine(terminal.StyleHelp, help(args[0]))
		}

	case KeywordStep:
		return dbg.printStepResult(dbg.stepper.StepInto(), false)

	case KeywordOver:
		max, err := optionalCount(args, 0, 0)
		if err != nil {
			return err
		}
		return dbg.printStepResult(dbg.stepper.StepOver(max), true)

	case KeywordOut:
		max, err := optionalCount(args, 0, 0)
		if err != nil {
			return err
		}
		return dbg.printStepResult(dbg.stepper.StepOut(max), true)

	case KeywordRun:
		max, err := optionalCount(args, 0, DefaultRunLimit)
		if err != nil {
			return err
		}
		return dbg.run(max)

	case KeywordBreak:
		addr, err := dbg.parseAddress(args[0])
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.add(addr); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint added at %s", dbg.syms.FormatAddress(addr, 0))

	case KeywordClear:
		if len(args) > 0 && strings.EqualFold(args[0], KeywordWatch) {
			return dbg.clearWatch(args[1:])
		}
		if len(args) > 1 {
			return curated.Errorf(ArgumentCount, KeywordClear, "too many arguments")
		}
		if len(args) == 0 {
			dbg.breakpoints.clear()
			dbg.printLine(terminal.StyleFeedback, "breakpoints cleared")
			return nil
		}
		addr, err := dbg.parseAddress(args[0])
		if err != nil {
			return err
		}
		if err := dbg.breakpoints.drop(addr); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "breakpoint removed from %s", dbg.syms.FormatAddress(addr, 0))

	case KeywordToggle:
		addr, err := dbg.parseAddress(args[0])
		if err != nil {
			return err
		}
		enabled, err := dbg.breakpoints.toggle(addr)
		if err != nil {
			return err
		}
		if enabled {
			dbg.printLine(terminal.StyleFeedback, "breakpoint at %s enabled", dbg.syms.FormatAddress(addr, 0))
		} else {
			dbg.printLine(terminal.StyleFeedback, "breakpoint at %s disabled", dbg.syms.FormatAddress(addr, 0))
		}

	case KeywordWatch:
		return dbg.watch(args)

	case KeywordList:
		dbg.printLine(terminal.StyleFeedback, dbg.breakpoints.String())
		dbg.printLine(terminal.StyleFeedback, dbg.watches.String())

	case KeywordCPU:
		dbg.printLine(terminal.StyleFeedback, dbg.machine.CPU.String())

	case KeywordStack:
		stack := dbg.stepper.CallStack()
		if len(stack) == 0 {
			dbg.printLine(terminal.StyleCallStack, "call stack is empty")
			return nil
		}
		for i := len(stack) - 1; i >= 0; i-- {
			dbg.printLine(terminal.StyleCallStack, "%2d: %s", i, stack[i].String())
		}

	case KeywordPeek:
		addr, err := dbg.parseAddress(args[0])
		if err != nil {
			return err
		}
		n, err := optionalCount(args, 1, 1)
		if err != nil {
			return err
		}
		dbg.peek(addr, n)

	case KeywordPoke:
		addr, err := dbg.parseAddress(args[0])
		if err != nil {
			return err
		}
		data := make([]uint8, 0, len(args)-1)
		for _, a := range args[1:] {
			v, err := parseValue(a, 0xff)
			if err != nil {
				return err
			}
			data = append(data, uint8(v))
		}
		for i, v := range data {
			dbg.machine.Mem.Poke((addr+uint32(i))&0xffffff, v)
		}
		dbg.peek(addr, len(data))

	case KeywordPC:
		addr, err := dbg.parseAddress(args[0])
		if err != nil {
			return err
		}
		dbg.machine.CPU.LoadPC(addr)
		dbg.printLine(terminal.StyleFeedback, "PC set to %s", dbg.syms.FormatAddress(addr, 0))

	case KeywordDisasm:
		mc := dbg.machine.CPU
		addr := mc.PCAddress()
		if len(args) > 0 {
			var err error
			addr, err = dbg.parseAddress(args[0])
			if err != nil {
				return err
			}
		}
		n, err := optionalCount(args, 1, disasmDefaultCount)
		if err != nil {
			return err
		}
		entries := disassembly.Range(dbg.machine.Mem, addr, n,
			mc.AccumulatorSize().Is8Bit(), mc.IndexSize().Is8Bit(), dbg.syms)
		for _, e := range entries {
			dbg.printLine(terminal.StyleFeedback, e.Columns())
		}

	case KeywordSymbol:
		addr, ok := dbg.syms.Search(args[0])
		if !ok {
			return curated.Errorf(InvalidArgument, fmt.Sprintf("no symbol named %s", args[0]))
		}
		dbg.printLine(terminal.StyleFeedback, "%s = $%06x", args[0], addr)

	case KeywordSymbols:
		if len(args) == 0 {
			if dbg.syms.Len() == 0 {
				dbg.printLine(terminal.StyleFeedback, "no symbols")
				return nil
			}
			dbg.syms.List(dbg.printStyle(terminal.StyleFeedback))
			return nil
		}
		if err := dbg.syms.ReadFile(args[0]); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "%d symbols loaded", dbg.syms.Len())

	case KeywordReset:
		dbg.machine.Reset()
		dbg.stepper.ClearCallStack()
		dbg.printLine(terminal.StyleFeedback, "machine reset")

	case KeywordMemviz:
		if len(args) == 0 {
			return dbg.memviz(paths.UniqueFilename("memviz", "", "dot"))
		}
		return dbg.memviz(args[0])

	case KeywordScript:
		return dbg.script(args)

	case KeywordLog:
		w := dbg.printStyle(terminal.StyleLog)
		if len(args) == 0 {
			logger.Write(w)
			return nil
		}
		n, err := optionalCount(args, 0, 0)
		if err != nil {
			return err
		}
		logger.Tail(w, n)

	case KeywordQuit:
		dbg.running = false
	}

	return nil
}

// run instructions until a breakpoint is reached. a breakpoint at the
// address of the first instruction is ignored.
func (dbg *Debugger) run(max int) error {
	// matches from earlier commands do not stop the run
	dbg.watches.check()

	count := 0
	for count < max {
		if err := dbg.ctx.Err(); err != nil {
			dbg.printLine(terminal.StyleFeedback, "run interrupted after %d instructions", count)
			return nil
		}

		if count > 0 {
			pc := dbg.machine.CPU.PCAddress()
			if dbg.breakpoints.check(pc) {
				dbg.printLine(terminal.StyleFeedback, "breakpoint at %s after %d instructions",
					dbg.syms.FormatAddress(pc, 0), count)
				return nil
			}
		}

		r := dbg.stepper.StepInto()
		if !r.Success {
			return curated.Errorf(StepFailed, fmt.Sprintf("run stopped after %d instructions: %s", count, r.Message))
		}
		count++

		if hits := dbg.watches.check(); hits != "" {
			dbg.printLine(terminal.StyleFeedback, hits)
			dbg.printLine(terminal.StyleFeedback, "watch matched after %d instructions", count)
			return nil
		}
	}

	dbg.printLine(terminal.StyleFeedback, "run limit reached (%d instructions)", count)
	return nil
}

// printStepResult shows the instruction that was executed along with any
// change to the call stack. the message in the step result is printed if
// showMessage is true. an unsuccessful step is returned as an error.
func (dbg *Debugger) printStepResult(r stepper.StepResult, showMessage bool) error {
	if !r.Success {
		return curated.Errorf(StepFailed, r.Message)
	}

	res := dbg.machine.CPU.LastResult
	if res.Final {
		e := disassembly.Disassemble(dbg.machine.Mem, res.Address, res.M8, res.X8, dbg.syms)
		dbg.printLine(terminal.StyleCPUStep, e.Columns())
	}

	if r.Call != nil {
		dbg.printLine(terminal.StyleCallStack, "call %s", r.Call.String())
	}
	if r.Ret != nil {
		dbg.printLine(terminal.StyleCallStack, "return %s", r.Ret.String())
	}

	if hits := dbg.watches.check(); hits != "" {
		dbg.printLine(terminal.StyleFeedback, hits)
	}

	if showMessage {
		dbg.printLine(terminal.StyleFeedback, r.Message)
	}

	return nil
}

func (dbg *Debugger) peek(addr uint32, n int) {
	var s strings.Builder
	for i := 0; i < n; i++ {
		a := (addr + uint32(i)) & 0xffffff
		if i%peekRowLength == 0 {
			if i > 0 {
				s.WriteString("\n")
			}
			s.WriteString(fmt.Sprintf("$%06x:", a))
		}
		s.WriteString(fmt.Sprintf(" %02x", dbg.machine.Mem.Peek(a)))
	}
	dbg.printLine(terminal.StyleFeedback, s.String())
}

// parseAddress accepts a symbol name, a hexadecimal address with an optional
// $ or 0x prefix, or a bank and offset separated by a colon.
func (dbg *Debugger) parseAddress(s string) (uint32, error) {
	if addr, ok := dbg.syms.Search(s); ok {
		return addr, nil
	}

	if bank, offset, ok := strings.Cut(s, ":"); ok {
		b, errb := strconv.ParseUint(strings.TrimPrefix(bank, "$"), 16, 8)
		o, erro := strconv.ParseUint(offset, 16, 16)
		if errb != nil || erro != nil {
			return 0, curated.Errorf(InvalidAddress, s)
		}
		return uint32(b)<<16 | uint32(o), nil
	}

	if addr, ok := symbols.ParseAddress(s); ok {
		return addr, nil
	}

	return 0, curated.Errorf(InvalidAddress, s)
}

// parseValue accepts a hexadecimal value with a $ prefix or any value
// understood by strconv.ParseUint() with a base of zero.
func parseValue(s string, max uint64) (uint64, error) {
	var v uint64
	var err error

	if h, ok := strings.CutPrefix(s, "$"); ok {
		v, err = strconv.ParseUint(h, 16, 64)
	} else {
		v, err = strconv.ParseUint(s, 0, 64)
	}
	if err != nil || v > max {
		return 0, curated.Errorf(InvalidArgument, s)
	}

	return v, nil
}

// optionalCount returns the decimal argument at idx or the default value if
// the argument is missing.
func optionalCount(args []string, idx int, def int) (int, error) {
	if idx >= len(args) {
		return def, nil
	}
	n, err := strconv.Atoi(args[idx])
	if err != nil || n <= 0 {
		return 0, curated.Errorf(InvalidArgument, args[idx])
	}
	return n, nil
}

// watch parses the arguments of the WATCH command. the default event is READ.
func (dbg *Debugger) watch(args []string) error {
	w := watcher{event: watchRead}

	switch strings.ToUpper(args[0]) {
	case "READ":
		args = args[1:]
	case "WRITE":
		w.event = watchWrite
		args = args[1:]
	case "ACCESS":
		w.event = watchAccess
		args = args[1:]
	}

	switch len(args) {
	case 0:
		return curated.Errorf(ArgumentCount, KeywordWatch, "too few arguments")
	case 1:
	case 2:
		v, err := parseValue(args[1], 0xff)
		if err != nil {
			return err
		}
		w.matchValue = true
		w.value = uint8(v)
	default:
		return curated.Errorf(ArgumentCount, KeywordWatch, "too many arguments")
	}

	var err error
	w.address, err = dbg.parseAddress(args[0])
	if err != nil {
		return err
	}

	if err := dbg.watches.add(w); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "watch added: %s", w)

	return nil
}

// clearWatch removes the numbered watch or all watches if there is no number.
func (dbg *Debugger) clearWatch(args []string) error {
	if len(args) == 0 {
		dbg.watches.clear()
		dbg.printLine(terminal.StyleFeedback, "watches cleared")
		return nil
	}

	n, err := strconv.Atoi(args[0])
	if err != nil {
		return curated.Errorf(InvalidArgument, args[0])
	}
	if err := dbg.watches.drop(n); err != nil {
		return err
	}
	dbg.printLine(terminal.StyleFeedback, "watch #%d removed", n)

	return nil
}

// script handles the three forms of the SCRIPT command.
func (dbg *Debugger) script(args []string) error {
	switch strings.ToUpper(args[0]) {
	case "RECORD":
		if dbg.scriptScribe.IsActive() {
			return curated.Errorf(RecordingActive, dbg.scriptScribe.Filename())
		}
		filename := paths.UniqueFilename("script", "", "")
		if len(args) == 2 {
			filename = args[1]
		}
		// the SCRIPT RECORD command itself is not part of the recording
		dbg.scriptScribe.Rollback()
		if err := dbg.scriptScribe.StartSession(filename); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "recording to %s", filename)
		return nil

	case "END":
		if len(args) != 1 {
			return curated.Errorf(ArgumentCount, KeywordScript, "too many arguments")
		}
		if !dbg.scriptScribe.IsActive() {
			return curated.Errorf(InvalidArgument, "no script is being recorded")
		}
		filename := dbg.scriptScribe.Filename()
		dbg.scriptScribe.Rollback()
		if err := dbg.scriptScribe.EndSession(); err != nil {
			return err
		}
		dbg.printLine(terminal.StyleFeedback, "recording to %s ended", filename)
		return nil
	}

	if len(args) != 1 {
		return curated.Errorf(ArgumentCount, KeywordScript, "too many arguments")
	}

	return dbg.runScript(args[0])
}

// runScript runs a Lua script or replays a recorded debugger script.
func (dbg *Debugger) runScript(filename string) error {
	if dbg.scriptDepth >= maxScriptDepth {
		return curated.Errorf(ScriptTooDeep, dbg.scriptDepth)
	}
	dbg.scriptDepth++
	defer func() {
		dbg.scriptDepth--
	}()

	if strings.EqualFold(filepath.Ext(filename), ".lua") {
		f, err := os.Open(filename)
		if err != nil {
			return curated.Errorf(script.FileUnavailable, err)
		}
		defer f.Close()
		return lua.Run(dbg.ctx, filename, f, dbg)
	}

	scr, err := script.RescribeScript(filename)
	if err != nil {
		return err
	}

	dbg.scriptScribe.StartPlayback()
	defer dbg.scriptScribe.EndPlayback()

	return dbg.inputLoop(scr)
}

// the values shown by the MEMVIZ command.
type memvizState struct {
	Registers string
	Depth     int
	CallStack []stepper.CallStackEntry
}

func (dbg *Debugger) memviz(filename string) error {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf(InvalidArgument, err)
	}
	defer f.Close()

	memviz.Map(f, &memvizState{
		Registers: dbg.machine.CPU.String(),
		Depth:     dbg.stepper.Depth(),
		CallStack: dbg.stepper.CallStack(),
	})

	dbg.printLine(terminal.StyleFeedback, "memviz written to %s", filename)
	return nil
}
