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

package lua_test

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/lua"
	"github.com/jetsetilly/gopher65816/debugger/stepper"
	"github.com/jetsetilly/gopher65816/test"
)

// host advances the PC by one on every step and keeps a flat 256 byte memory.
type host struct {
	pc     uint32
	depth  int
	mem    [256]uint8
	output []string
	max    []int
}

func (h *host) StepInto() stepper.StepResult {
	h.pc++
	return stepper.StepResult{Success: true, NewPC: h.pc, InstructionsExecuted: 1, Message: "stepped"}
}

func (h *host) StepOver(max int) stepper.StepResult {
	h.max = append(h.max, max)
	return h.StepInto()
}

func (h *host) StepOut(max int) stepper.StepResult {
	h.max = append(h.max, max)
	if h.depth == 0 {
		return stepper.StepResult{Message: "cannot step out: call stack is empty"}
	}
	h.depth--
	return stepper.StepResult{Success: true, Message: "stepped out"}
}

func (h *host) PC() uint32 {
	return h.pc
}

func (h *host) Peek(address uint32) uint8 {
	return h.mem[address&0xff]
}

func (h *host) Poke(address uint32, data uint8) {
	h.mem[address&0xff] = data
}

func (h *host) Register(name string) (uint32, bool) {
	if strings.ToUpper(name) == "PC" {
		return h.pc, true
	}
	return 0, false
}

func (h *host) Depth() int {
	return h.depth
}

func (h *host) Print(s string) {
	h.output = append(h.output, s)
}

func run(h *host, src string) error {
	return lua.Run(context.Background(), "test", strings.NewReader(src), h)
}

func TestSteps(t *testing.T) {
	h := &host{depth: 1}
	err := run(h, `
for i = 1, 3 do
	step()
end
print(pc(), reg("pc"), depth())
over()
over(50)
local ok, msg = out(10)
print(ok, msg)
ok, msg = out()
print(ok, msg)
`)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, len(h.output), 3)
	test.ExpectEquality(t, h.output[0], "3\t3\t1")
	test.ExpectEquality(t, h.output[1], "true\tstepped out")
	test.ExpectEquality(t, h.output[2], "false\tcannot step out: call stack is empty")
	test.ExpectEquality(t, fmt.Sprint(h.max), "[0 50 10 0]")
	test.ExpectEquality(t, h.pc, uint32(5))
}

func TestMemory(t *testing.T) {
	h := &host{}
	err := run(h, `
poke(0x10, 0x7f)
poke(0x11, peek(0x10) + 1)
print(string.rep("-", 2) .. peek(0x11))
`)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, h.mem[0x11], uint8(0x80))
	test.DemandEquality(t, len(h.output), 1)
	test.ExpectEquality(t, h.output[0], "--128")
}

func TestErrors(t *testing.T) {
	h := &host{}

	err := run(h, `reg("Q")`)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, lua.ScriptError))

	err = run(h, `this is not lua`)
	test.ExpectSuccess(t, curated.Is(err, lua.ScriptError))

	// poke only accepts byte values
	h.mem[0x10] = 0x01
	err = run(h, `poke(0x10, 0x1ff)`)
	test.ExpectSuccess(t, curated.Is(err, lua.ScriptError))
	err = run(h, `poke(0x10, -1)`)
	test.ExpectSuccess(t, curated.Is(err, lua.ScriptError))
	test.ExpectEquality(t, h.mem[0x10], uint8(0x01))

	// io and os libraries are not available
	err = run(h, `os.exit(1)`)
	test.ExpectSuccess(t, curated.Is(err, lua.ScriptError))
}

func TestCancel(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	h := &host{}
	err := lua.Run(ctx, "test", strings.NewReader(`while true do step() end`), h)
	test.ExpectSuccess(t, curated.Is(err, lua.ScriptError))
}
