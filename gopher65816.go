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

package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"strings"

	"github.com/jetsetilly/gopher65816/debugger"
	"github.com/jetsetilly/gopher65816/debugger/terminal"
	"github.com/jetsetilly/gopher65816/debugger/terminal/colorterm"
	"github.com/jetsetilly/gopher65816/debugger/terminal/plainterm"
	"github.com/jetsetilly/gopher65816/hardware"
	"github.com/jetsetilly/gopher65816/hardware/cpu"
	"github.com/jetsetilly/gopher65816/loader"
	"github.com/jetsetilly/gopher65816/logger"
	"github.com/jetsetilly/gopher65816/modalflag"
	"github.com/jetsetilly/gopher65816/paths"
	"github.com/jetsetilly/gopher65816/statsview"
	"github.com/jetsetilly/gopher65816/symbols"
	"github.com/jetsetilly/gopher65816/version"
	"golang.org/x/term"
)

// exit values
const (
	exitParseError = 10
	exitModeError  = 20
)

// the default load address of a program
const defaultOrigin = 0x008000

// the script run by the debugger if no script is specified. it is found in
// the resource path
const defaultInitScript = "debuggerInit"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	md := &modalflag.Modes{Output: os.Stdout}
	md.NewArgs(os.Args[1:])
	md.AddSubModes("DEBUG", "RUN")
	showVersion := md.AddBool("version", false, "print version information")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return
	case modalflag.ParseError:
		fmt.Printf("* error: %v\n", err)
		os.Exit(exitParseError)
	}

	if *showVersion {
		fmt.Println(version.String())
		return
	}

	switch md.Mode() {
	case "DEBUG":
		err = debug(ctx, md)
	case "RUN":
		err = run(ctx, md)
	}

	if err != nil {
		fmt.Printf("* error in %s mode: %s\n", md.String(), err)
		stop()
		os.Exit(exitModeError)
	}
}

// the flags common to all modes.
type commonFlags struct {
	origin    *uint32
	pc        *uint32
	echo      *bool
	statsview *bool
}

func addCommonFlags(md *modalflag.Modes) commonFlags {
	return commonFlags{
		origin:    md.AddAddress("origin", defaultOrigin, "load address of the program"),
		pc:        md.AddAddress("pc", 0, "start address. the reset vector is used if not specified"),
		echo:      md.AddBool("echo", false, "echo log entries to stdout"),
		statsview: md.AddBool("statsview", false, "launch the runtime statistics server"),
	}
}

// prepare a new machine with the program named on the command line.
func prepare(md *modalflag.Modes, flgs commonFlags) (*hardware.Machine, error) {
	if *flgs.echo {
		logger.SetEcho(os.Stdout)
	}

	if *flgs.statsview {
		statsview.Launch(os.Stdout)
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return nil, fmt.Errorf("65816 program required for %s mode", md)
	case 1:
	default:
		return nil, fmt.Errorf("too many arguments for %s mode", md)
	}

	m := hardware.NewMachine()

	ld := loader.NewLoader(md.GetArg(0), *flgs.origin)
	if err := ld.Attach(m); err != nil {
		return nil, err
	}

	pcSet := false
	md.Visit(func(flg string) {
		if flg == "pc" {
			pcSet = true
		}
	})

	// reset the machine to put the registers into the correct state.
	// the reset vector is only used if no start address has been given
	// and the reset vector has been set by the program
	m.Reset()
	if pcSet {
		m.CPU.LoadPC(*flgs.pc)
	} else if m.Mem.ReadWord(cpu.VectorReset, cpu.VectorReset+1) == 0 {
		m.CPU.LoadPC(*flgs.origin)
	}

	return m, nil
}

func debug(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	flgs := addCommonFlags(md)
	initScript := md.AddString("script", "", "script to run on debugger start")
	symbolsFile := md.AddString("symbols", "", "symbols file: WLA-DX, Mesen (.mlb) or bsnes")
	termType := md.AddString("term", "AUTO", "terminal type to use: AUTO, COLOR, PLAIN")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := prepare(md, flgs)
	if err != nil {
		return err
	}

	syms := symbols.NewSymbols()
	if *symbolsFile != "" {
		if err := syms.ReadFile(*symbolsFile); err != nil {
			return err
		}
	}

	var trm terminal.Terminal
	switch strings.ToUpper(*termType) {
	case "AUTO":
		// colorterm is not available on windows
		if runtime.GOOS != "windows" && term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd())) {
			trm = &colorterm.ColorTerminal{}
		} else {
			trm = plainterm.NewPlainTerminal(nil, nil)
		}
	case "COLOR":
		trm = &colorterm.ColorTerminal{}
	case "PLAIN":
		trm = plainterm.NewPlainTerminal(nil, nil)
	default:
		return fmt.Errorf("unknown terminal type (%s)", *termType)
	}

	if *initScript == "" && paths.ResourceExists(defaultInitScript) {
		*initScript = paths.ResourcePath(defaultInitScript)
	}

	dbg := debugger.NewDebugger(m, syms, trm)
	return dbg.Start(ctx, *initScript)
}

func run(ctx context.Context, md *modalflag.Modes) error {
	md.NewMode()

	flgs := addCommonFlags(md)
	max := md.AddInt("max", debugger.DefaultRunLimit, "maximum number of instructions. zero for no limit")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	m, err := prepare(md, flgs)
	if err != nil {
		return err
	}

	limit := *max
	n, err := m.Run(func() (bool, error) {
		if err := ctx.Err(); err != nil {
			return false, nil
		}
		if *max <= 0 {
			return true, nil
		}
		limit--
		return limit >= 0, nil
	})

	fmt.Printf("%d instructions executed\n", n)
	fmt.Println(m.CPU.String())

	return err
}
