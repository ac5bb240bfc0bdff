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
	"strings"

	"github.com/jetsetilly/gopher65816/debugger/stepper"
	"github.com/jetsetilly/gopher65816/debugger/terminal"
)

// the following functions implement the lua.Host interface.

// watches do not halt a Lua script. matches are discarded after every step.

func (dbg *Debugger) StepInto() stepper.StepResult {
	defer dbg.watches.check()
	return dbg.stepper.StepInto()
}

func (dbg *Debugger) StepOver(max int) stepper.StepResult {
	defer dbg.watches.check()
	return dbg.stepper.StepOver(max)
}

func (dbg *Debugger) StepOut(max int) stepper.StepResult {
	defer dbg.watches.check()
	return dbg.stepper.StepOut(max)
}

func (dbg *Debugger) PC() uint32 {
	return dbg.machine.CPU.PCAddress()
}

func (dbg *Debugger) Peek(address uint32) uint8 {
	return dbg.machine.Mem.Peek(address & 0xffffff)
}

func (dbg *Debugger) Poke(address uint32, data uint8) {
	dbg.machine.Mem.Poke(address&0xffffff, data)
}

func (dbg *Debugger) Register(name string) (uint32, bool) {
	mc := dbg.machine.CPU
	switch strings.ToUpper(name) {
	case "A":
		return uint32(mc.A), true
	case "X":
		return uint32(mc.X), true
	case "Y":
		return uint32(mc.Y), true
	case "D":
		return uint32(mc.D), true
	case "SP", "S":
		return uint32(mc.SP), true
	case "PC":
		return uint32(mc.PC), true
	case "PB", "K":
		return uint32(mc.PB), true
	case "DB":
		return uint32(mc.DB), true
	case "P":
		return uint32(mc.Status.Value()), true
	case "E":
		if mc.E {
			return 1, true
		}
		return 0, true
	}
	return 0, false
}

func (dbg *Debugger) Depth() int {
	return dbg.stepper.Depth()
}

func (dbg *Debugger) Print(s string) {
	dbg.printLine(terminal.StyleScript, s)
}
