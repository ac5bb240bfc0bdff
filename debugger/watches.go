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
	"strings"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware/memory/cpubus"
)

// Sentinal error patterns for watches.
const (
	WatchExists  = "watch: already being watched (%s)"
	WatchMissing = "watch: #%d is not defined"
)

type watchEvent int

const (
	watchRead watchEvent = iota
	watchWrite
	watchAccess
)

func (e watchEvent) String() string {
	switch e {
	case watchRead:
		return "read"
	case watchWrite:
		return "write"
	case watchAccess:
		return "access"
	}
	return ""
}

func (e watchEvent) matches(write bool) bool {
	switch e {
	case watchRead:
		return !write
	case watchWrite:
		return write
	}
	return true
}

type watcher struct {
	address uint32
	event   watchEvent

	// whether to watch for a specific value. a matchValue of false means the
	// watcher will match regardless of the value
	matchValue bool
	value      uint8
}

func (w watcher) String() string {
	val := ""
	if w.matchValue {
		val = fmt.Sprintf(" (value=$%02x)", w.value)
	}
	return fmt.Sprintf("$%06x %s%s", w.address, w.event, val)
}

// watches sits between the CPU and memory. every byte the CPU reads or
// writes is compared with the watch conditions and any match is noted until
// the next call to check().
type watches struct {
	mem     cpubus.Memory
	watches []watcher

	// formats the address of a match
	format func(uint32) string

	hits strings.Builder
}

// newWatches is the preferred method of initialisation for the watches type.
func newWatches(mem cpubus.Memory, format func(uint32) string) *watches {
	wtc := &watches{
		mem:    mem,
		format: format,
	}
	wtc.clear()
	return wtc
}

func (wtc *watches) String() string {
	if len(wtc.watches) == 0 {
		return "no watches"
	}
	s := strings.Builder{}
	for i, w := range wtc.watches {
		s.WriteString(fmt.Sprintf("% 2d: %s\n", i, w))
	}
	return strings.TrimRight(s.String(), "\n")
}

// clear all watches.
func (wtc *watches) clear() {
	wtc.watches = make([]watcher, 0, 10)
	wtc.hits.Reset()
}

// add a watch. the same address can be watched more than once so long as the
// event or value differs.
func (wtc *watches) add(nw watcher) error {
	nw.address &= 0xffffff
	for _, w := range wtc.watches {
		if w == nw {
			return curated.Errorf(WatchExists, w)
		}
	}
	wtc.watches = append(wtc.watches, nw)
	return nil
}

// drop a specific watcher by a position in the list.
func (wtc *watches) drop(num int) error {
	if num < 0 || num >= len(wtc.watches) {
		return curated.Errorf(WatchMissing, num)
	}
	wtc.watches = append(wtc.watches[:num], wtc.watches[num+1:]...)
	return nil
}

// check returns every match since the previous call to check(), separated by
// \n. an empty string means nothing matched.
func (wtc *watches) check() string {
	s := strings.TrimRight(wtc.hits.String(), "\n")
	wtc.hits.Reset()
	return s
}

func (wtc *watches) access(address uint32, data uint8, write bool) {
	address &= 0xffffff
	for _, w := range wtc.watches {
		if w.address != address || !w.event.matches(write) {
			continue // for loop
		}
		if w.matchValue && w.value != data {
			continue // for loop
		}
		if write {
			wtc.hits.WriteString(fmt.Sprintf("watch at %s (written value $%02x)\n", wtc.format(address), data))
		} else {
			wtc.hits.WriteString(fmt.Sprintf("watch at %s (read value $%02x)\n", wtc.format(address), data))
		}
	}
}

// ReadByte implements the cpubus.Memory interface.
func (wtc *watches) ReadByte(address uint32) uint8 {
	v := wtc.mem.ReadByte(address)
	if len(wtc.watches) > 0 {
		wtc.access(address, v, false)
	}
	return v
}

// ReadWord implements the cpubus.Memory interface.
func (wtc *watches) ReadWord(low, high uint32) uint16 {
	v := wtc.mem.ReadWord(low, high)
	if len(wtc.watches) > 0 {
		wtc.access(low, uint8(v), false)
		wtc.access(high, uint8(v>>8), false)
	}
	return v
}

// WriteByte implements the cpubus.Memory interface.
func (wtc *watches) WriteByte(address uint32, data uint8) {
	wtc.mem.WriteByte(address, data)
	if len(wtc.watches) > 0 {
		wtc.access(address, data, true)
	}
}

// WriteWord implements the cpubus.Memory interface.
func (wtc *watches) WriteWord(low, high uint32, data uint16) {
	wtc.mem.WriteWord(low, high, data)
	if len(wtc.watches) > 0 {
		wtc.access(low, uint8(data), true)
		wtc.access(high, uint8(data>>8), true)
	}
}

// Idle implements the cpubus.Memory interface.
func (wtc *watches) Idle(waiting bool) {
	wtc.mem.Idle(waiting)
}
