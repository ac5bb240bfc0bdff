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
	"sort"
	"strings"
)

// debugger keywords.
const (
	KeywordHelp    = "HELP"
	KeywordStep    = "STEP"
	KeywordOver    = "OVER"
	KeywordOut     = "OUT"
	KeywordRun     = "RUN"
	KeywordBreak   = "BREAK"
	KeywordClear   = "CLEAR"
	KeywordToggle  = "TOGGLE"
	KeywordWatch   = "WATCH"
	KeywordList    = "LIST"
	KeywordCPU     = "CPU"
	KeywordStack   = "STACK"
	KeywordPeek    = "PEEK"
	KeywordPoke    = "POKE"
	KeywordPC      = "PC"
	KeywordDisasm  = "DISASM"
	KeywordSymbol  = "SYMBOL"
	KeywordSymbols = "SYMBOLS"
	KeywordReset   = "RESET"
	KeywordMemviz  = "MEMVIZ"
	KeywordScript  = "SCRIPT"
	KeywordLog     = "LOG"
	KeywordQuit    = "QUIT"
)

// short forms of some keywords.
var aliases = map[string]string{
	"S":    KeywordStep,
	"O":    KeywordOver,
	"EXIT": KeywordQuit,
}

// command describes the arguments a keyword expects. a maxArgs value of -1
// means there is no limit.
type command struct {
	minArgs int
	maxArgs int
	usage   string
	help    string
}

var commands = map[string]command{
	KeywordHelp: {0, 1, "HELP [keyword]",
		"Lists commands and provides help for individual debugger commands"},
	KeywordStep: {0, 0, "STEP",
		"Execute a single instruction. Subroutine calls are entered"},
	KeywordOver: {0, 1, "OVER [max]",
		"Execute a single instruction. Subroutine calls are executed until they return"},
	KeywordOut: {0, 1, "OUT [max]",
		"Execute instructions until the current subroutine returns"},
	KeywordRun: {0, 1, "RUN [max]",
		"Execute instructions until a breakpoint or watch is reached or the CPU stops"},
	KeywordBreak: {1, 1, "BREAK address",
		"Add a breakpoint for the RUN command"},
	KeywordClear: {0, 2, "CLEAR [address] | CLEAR WATCH [number]",
		"Remove a breakpoint or watch. All breakpoints or watches are removed if no address or number is given"},
	KeywordToggle: {1, 1, "TOGGLE address",
		"Enable or disable the breakpoint at the address"},
	KeywordWatch: {1, 3, "WATCH [READ|WRITE|ACCESS] address [value]",
		"Add a watch for the RUN command. A watch matches when the CPU reads or writes the address, optionally only for a specific value"},
	KeywordList: {0, 0, "LIST",
		"List breakpoints and watches"},
	KeywordCPU: {0, 0, "CPU",
		"Display the CPU registers"},
	KeywordStack: {0, 0, "STACK",
		"Display the call stack. The most recent call is listed first"},
	KeywordPeek: {1, 2, "PEEK address [count]",
		"Display the contents of memory"},
	KeywordPoke: {2, -1, "POKE address value [value...]",
		"Change the contents of memory"},
	KeywordPC: {1, 1, "PC address",
		"Change the program bank and program counter. The call stack is not changed"},
	KeywordDisasm: {0, 2, "DISASM [address] [count]",
		"Disassemble instructions using the current register widths"},
	KeywordSymbol: {1, 1, "SYMBOL name",
		"Find the address of a symbol"},
	KeywordSymbols: {0, 1, "SYMBOLS [file]",
		"List symbols or load symbols from a WLA-DX, Mesen, bsnes or Asar symbols file"},
	KeywordReset: {0, 0, "RESET",
		"Reset the CPU and clear the call stack"},
	KeywordMemviz: {0, 1, "MEMVIZ [file]",
		"Write a graphviz rendering of the registers and call stack to a file"},
	KeywordScript: {1, 2, "SCRIPT file | SCRIPT RECORD [file] | SCRIPT END",
		"Run a script or record a new script. Files ending in .lua are run as Lua scripts"},
	KeywordLog: {0, 1, "LOG [count]",
		"Display the most recent log entries"},
	KeywordQuit: {0, 0, "QUIT",
		"Exits the debugger"},
}

// keywords returns the list of keywords in alphabetical order.
func keywords() []string {
	k := make([]string, 0, len(commands))
	for c := range commands {
		k = append(k, c)
	}
	sort.Strings(k)
	return k
}

// help text for a keyword, or a list of all keywords if keyword is empty.
func help(keyword string) string {
	if keyword == "" {
		return strings.Join(keywords(), " ")
	}

	keyword = strings.ToUpper(keyword)
	if a, ok := aliases[keyword]; ok {
		keyword = a
	}

	c, ok := commands[keyword]
	if !ok {
		return fmt.Sprintf("no help for %s", keyword)
	}

	return fmt.Sprintf("%s\n  %s", c.usage, c.help)
}
