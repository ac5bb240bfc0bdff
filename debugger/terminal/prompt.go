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

package terminal

import (
	"fmt"
	"strings"
)

// Prompt specifies the prompt text.
type Prompt struct {
	// the content. usually the disassembly of the next instruction
	Content string

	// depth of the call stack
	Depth int
}

// String returns the prompt with "standard" decoration.
func (p Prompt) String() string {
	s := strings.Builder{}
	s.WriteString("[ ")
	s.WriteString(strings.TrimSpace(p.Content))
	if p.Depth > 0 {
		s.WriteString(fmt.Sprintf(" (depth %d)", p.Depth))
	}
	s.WriteString(" ] >> ")
	return s.String()
}
