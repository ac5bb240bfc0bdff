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

package terminal_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/debugger/terminal"
	"github.com/jetsetilly/gopher65816/test"
)

func TestPrompt(t *testing.T) {
	p := terminal.Prompt{Content: " $008000 NOP "}
	test.ExpectEquality(t, p.String(), "[ $008000 NOP ] >> ")

	p.Depth = 2
	test.ExpectEquality(t, p.String(), "[ $008000 NOP (depth 2) ] >> ")
}
