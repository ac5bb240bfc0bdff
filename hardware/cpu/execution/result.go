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

package execution

import (
	"fmt"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware/cpu/instructions"
)

// Result records the details of an executed instruction.
type Result struct {
	// 24 bit address of the opcode
	Address uint32

	Defn instructions.Definition

	// the register widths at the start of the instruction. these decide the
	// size of immediate operands
	M8 bool
	X8 bool

	// number of bytes read from the program counter. includes the opcode
	ByteCount int

	// number of idle cycles signalled to the memory bus
	IdleCycles int

	// whether this data has been finalised
	Final bool
}

// Reset the result to its zero state.
func (r *Result) Reset() {
	*r = Result{}
}

func (r Result) String() string {
	if !r.Final {
		return fmt.Sprintf("%02x:%04x ???", r.Address>>16, r.Address&0xffff)
	}
	return fmt.Sprintf("%02x:%04x %s (%d bytes)", r.Address>>16, r.Address&0xffff, r.Defn.Mnemonic, r.ByteCount)
}

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("execution: not finalised")
	}

	if sz := r.Defn.Mode.Size(r.M8, r.X8); r.ByteCount != sz {
		return curated.Errorf("execution: unexpected number of bytes read for opcode %02x [%s] (%d instead of %d)",
			r.Defn.OpCode, r.Defn.Mnemonic, r.ByteCount, sz)
	}

	return nil
}
