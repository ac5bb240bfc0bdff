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

package memory

import (
	"fmt"
	"strings"
)

// AddressMask is applied to every address. Addresses outside the 24 bit
// range wrap.
const AddressMask = 0xffffff

// the number of bytes in a bank.
const bankSize = 0x10000

// Flat is a 24 bit address space of RAM.
type Flat struct {
	banks [256]*[bankSize]uint8

	// the number of times Idle() has been called. the number of those calls
	// made while waiting (WAI) is counted separately.
	IdleCount    int
	WaitingCount int
}

// NewFlat is the preferred method of initialisation for the Flat type.
func NewFlat() *Flat {
	return &Flat{}
}

func (mem *Flat) String() string {
	s := strings.Builder{}
	for i, b := range mem.banks {
		if b != nil {
			s.WriteString(fmt.Sprintf("%02x ", i))
		}
	}
	return strings.TrimSpace(fmt.Sprintf("banks: %s", s.String()))
}

// Clear all memory. Idle counts are also reset.
func (mem *Flat) Clear() {
	for i := range mem.banks {
		mem.banks[i] = nil
	}
	mem.IdleCount = 0
	mem.WaitingCount = 0
}

// Peek returns the value at address without otherwise affecting the state of
// memory.
func (mem *Flat) Peek(address uint32) uint8 {
	address &= AddressMask
	b := mem.banks[address>>16]
	if b == nil {
		return 0
	}
	return b[address&0xffff]
}

// Poke sets the value at address.
func (mem *Flat) Poke(address uint32, data uint8) {
	address &= AddressMask
	b := mem.banks[address>>16]
	if b == nil {
		b = &[bankSize]uint8{}
		mem.banks[address>>16] = b
	}
	b[address&0xffff] = data
}

// Load copies data into memory starting at origin. Loading continues across
// bank boundaries and wraps at the top of the address space.
func (mem *Flat) Load(origin uint32, data []uint8) {
	for i, d := range data {
		mem.Poke(origin+uint32(i), d)
	}
}

// ReadByte implements the cpubus.Memory interface.
func (mem *Flat) ReadByte(address uint32) uint8 {
	return mem.Peek(address)
}

// ReadWord implements the cpubus.Memory interface.
func (mem *Flat) ReadWord(low, high uint32) uint16 {
	return uint16(mem.Peek(low)) | uint16(mem.Peek(high))<<8
}

// WriteByte implements the cpubus.Memory interface.
func (mem *Flat) WriteByte(address uint32, data uint8) {
	mem.Poke(address, data)
}

// WriteWord implements the cpubus.Memory interface.
func (mem *Flat) WriteWord(low, high uint32, data uint16) {
	mem.Poke(low, uint8(data))
	mem.Poke(high, uint8(data>>8))
}

// Idle implements the cpubus.Memory interface.
func (mem *Flat) Idle(waiting bool) {
	mem.IdleCount++
	if waiting {
		mem.WaitingCount++
	}
}
