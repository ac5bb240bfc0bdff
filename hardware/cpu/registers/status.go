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

package registers

import (
	"strings"
)

// StatusRegister is the special purpose register that stores the flags of the
// CPU.
type StatusRegister struct {
	Sign             bool
	Overflow         bool
	MemorySelect     bool
	IndexSelect      bool
	DecimalMode      bool
	InterruptDisable bool
	Zero             bool
	Carry            bool
}

// Bits of the status register in uint8 form.
const (
	Carry            = 0x01
	Zero             = 0x02
	InterruptDisable = 0x04
	DecimalMode      = 0x08
	IndexSelect      = 0x10
	MemorySelect     = 0x20
	Overflow         = 0x40
	Sign             = 0x80
)

// ResetValue is the value of the status register after a reset.
const ResetValue = MemorySelect | IndexSelect | InterruptDisable

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

func (sr StatusRegister) String() string {
	s := strings.Builder{}

	f := func(b bool, set, unset rune) {
		if b {
			s.WriteRune(set)
		} else {
			s.WriteRune(unset)
		}
	}

	f(sr.Sign, 'N', 'n')
	f(sr.Overflow, 'V', 'v')
	f(sr.MemorySelect, 'M', 'm')
	f(sr.IndexSelect, 'X', 'x')
	f(sr.DecimalMode, 'D', 'd')
	f(sr.InterruptDisable, 'I', 'i')
	f(sr.Zero, 'Z', 'z')
	f(sr.Carry, 'C', 'c')

	return s.String()
}

// Reset status flags to initial state.
func (sr *StatusRegister) Reset() {
	sr.Load(ResetValue)
}

// Value converts the StatusRegister struct into a value suitable for pushing
// onto the stack.
func (sr StatusRegister) Value() uint8 {
	var v uint8

	if sr.Sign {
		v |= Sign
	}
	if sr.Overflow {
		v |= Overflow
	}
	if sr.MemorySelect {
		v |= MemorySelect
	}
	if sr.IndexSelect {
		v |= IndexSelect
	}
	if sr.DecimalMode {
		v |= DecimalMode
	}
	if sr.InterruptDisable {
		v |= InterruptDisable
	}
	if sr.Zero {
		v |= Zero
	}
	if sr.Carry {
		v |= Carry
	}

	return v
}

// Load converts an 8 bit value (taken from the stack, for example) into the
// StatusRegister. Use File.LoadStatus() to also apply the side effects of a
// change in register width.
func (sr *StatusRegister) Load(v uint8) {
	sr.Sign = v&Sign == Sign
	sr.Overflow = v&Overflow == Overflow
	sr.MemorySelect = v&MemorySelect == MemorySelect
	sr.IndexSelect = v&IndexSelect == IndexSelect
	sr.DecimalMode = v&DecimalMode == DecimalMode
	sr.InterruptDisable = v&InterruptDisable == InterruptDisable
	sr.Zero = v&Zero == Zero
	sr.Carry = v&Carry == Carry
}
