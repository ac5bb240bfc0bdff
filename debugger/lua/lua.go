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

package lua

import (
	"context"
	"io"
	"strings"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/stepper"
	lua "github.com/yuin/gopher-lua"
)

// Sentinal error patterns.
const (
	ScriptError = "lua: %s: %v"
)

// Host is the interface to the debugger required by a script.
type Host interface {
	StepInto() stepper.StepResult
	StepOver(max int) stepper.StepResult
	StepOut(max int) stepper.StepResult
	PC() uint32
	Peek(address uint32) uint8
	Poke(address uint32, data uint8)

	// Register returns the value of the named register. The name is not case
	// sensitive
	Register(name string) (uint32, bool)

	Depth() int
	Print(s string)
}

// Run the script read from the io.Reader. The name is used in error messages.
// The script is stopped if the context is cancelled.
func Run(ctx context.Context, name string, src io.Reader, host Host) error {
	b, err := io.ReadAll(src)
	if err != nil {
		return curated.Errorf(ScriptError, name, err)
	}

	L := lua.NewState(lua.Options{SkipOpenLibs: true})
	defer L.Close()

	for _, lib := range []struct {
		name string
		open lua.LGFunction
	}{
		{lua.LoadLibName, lua.OpenPackage},
		{lua.BaseLibName, lua.OpenBase},
		{lua.TabLibName, lua.OpenTable},
		{lua.StringLibName, lua.OpenString},
		{lua.MathLibName, lua.OpenMath},
	} {
		err := L.CallByParam(lua.P{
			Fn:      L.NewFunction(lib.open),
			NRet:    0,
			Protect: true,
		}, lua.LString(lib.name))
		if err != nil {
			return curated.Errorf(ScriptError, name, err)
		}
	}

	register(L, host)

	L.SetContext(ctx)

	if err := L.DoString(string(b)); err != nil {
		return curated.Errorf(ScriptError, name, err)
	}

	return nil
}

// push the result of a step function. returns the number of values pushed.
func pushResult(L *lua.LState, r stepper.StepResult) int {
	L.Push(lua.LBool(r.Success))
	L.Push(lua.LString(r.Message))
	return 2
}

func register(L *lua.LState, host Host) {
	fns := map[string]lua.LGFunction{
		"step": func(L *lua.LState) int {
			return pushResult(L, host.StepInto())
		},
		"over": func(L *lua.LState) int {
			return pushResult(L, host.StepOver(L.OptInt(1, 0)))
		},
		"out": func(L *lua.LState) int {
			return pushResult(L, host.StepOut(L.OptInt(1, 0)))
		},
		"pc": func(L *lua.LState) int {
			L.Push(lua.LNumber(host.PC()))
			return 1
		},
		"peek": func(L *lua.LState) int {
			L.Push(lua.LNumber(host.Peek(uint32(L.CheckInt64(1)))))
			return 1
		},
		"poke": func(L *lua.LState) int {
			v := L.CheckInt(2)
			if v < 0 || v > 0xff {
				L.ArgError(2, "value out of range")
				return 0
			}
			host.Poke(uint32(L.CheckInt64(1)), uint8(v))
			return 0
		},
		"reg": func(L *lua.LState) int {
			v, ok := host.Register(L.CheckString(1))
			if !ok {
				L.ArgError(1, "unknown register")
				return 0
			}
			L.Push(lua.LNumber(v))
			return 1
		},
		"depth": func(L *lua.LState) int {
			L.Push(lua.LNumber(host.Depth()))
			return 1
		},
		"print": func(L *lua.LState) int {
			s := make([]string, 0, L.GetTop())
			for i := 1; i <= L.GetTop(); i++ {
				s = append(s, L.ToStringMeta(L.Get(i)).String())
			}
			host.Print(strings.Join(s, "\t"))
			return 0
		},
	}

	for n, f := range fns {
		L.SetGlobal(n, L.NewFunction(f))
	}
}
