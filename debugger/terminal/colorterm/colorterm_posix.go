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

//go:build !windows

package colorterm

import (
	"bufio"
	"os"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/pkg/term"
	xterm "golang.org/x/term"
)

// Sentinal error patterns.
const (
	Unavailable = "colorterm: %v"
)

// Initialise perfoms any setting up required for the terminal. The
// controlling terminal is put into cbreak mode until CleanUp() is called.
func (ct *ColorTerminal) Initialise() error {
	tty, err := term.Open("/dev/tty", term.CBreakMode)
	if err != nil {
		return curated.Errorf(Unavailable, err)
	}

	ct.input = tty
	ct.output = os.Stdout
	ct.reader = bufio.NewReader(ct.input)
	ct.history = make([]string, 0)
	ct.restore = func() {
		_ = tty.Restore()
		_ = tty.Close()
	}

	if w, _, err := xterm.GetSize(int(os.Stdout.Fd())); err == nil {
		ct.width = w
	}

	return nil
}
