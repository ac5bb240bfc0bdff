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

package colorterm

import (
	"bufio"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/terminal"
	"github.com/jetsetilly/gopher65816/test"
)

type completion struct {
	resets int
}

func (c *completion) Complete(input string) string {
	if strings.HasPrefix("STEP", strings.ToUpper(input)) {
		return "STEP "
	}
	return input
}

func (c *completion) Reset() {
	c.resets++
}

func newTestTerminal(input string) (*ColorTerminal, *test.Writer) {
	tw := &test.Writer{}
	ct := &ColorTerminal{
		input:  strings.NewReader(input),
		output: tw,
	}
	ct.reader = bufio.NewReader(ct.input)
	return ct, tw
}

func TestLineEditing(t *testing.T) {
	// backspace, cursor left and insertion
	ct, _ := newTestTerminal("stpe\x08\x08ep\r" + "ab\x1b[Dx\r")

	s, err := ct.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "step")

	s, err = ct.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "axb")

	test.ExpectEquality(t, len(ct.history), 2)
}

func TestHistory(t *testing.T) {
	ct, _ := newTestTerminal("cpu\rcpu\rpeek 0\r\x1b[A\x1b[A\r")

	for _, expected := range []string{"cpu", "cpu", "peek 0", "cpu"} {
		s, err := ct.TermRead(terminal.Prompt{})
		test.ExpectSuccess(t, err)
		test.ExpectEquality(t, s, expected)
	}

	// duplicates of the most recent entry are not added
	test.ExpectEquality(t, len(ct.history), 3)
}

func TestTabCompletion(t *testing.T) {
	ct, _ := newTestTerminal("st\t10\r")
	tc := &completion{}
	ct.RegisterTabCompletion(tc)

	s, err := ct.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, s, "STEP 10")
	test.ExpectInequality(t, tc.resets, 0)
}

func TestInterrupt(t *testing.T) {
	ct, _ := newTestTerminal("abc\x03")
	_, err := ct.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, curated.Is(err, terminal.UserInterrupt))

	ct, _ = newTestTerminal("\x04")
	_, err = ct.TermRead(terminal.Prompt{})
	test.ExpectSuccess(t, curated.Is(err, terminal.UserAbort))
}

func TestOutput(t *testing.T) {
	ct, tw := newTestTerminal("")

	ct.TermPrintLine(terminal.StyleError, "bad")
	test.ExpectSuccess(t, tw.Contains("* bad"))
	test.ExpectSuccess(t, tw.Contains(pen(colRed)))

	tw.Clear()
	ct.Silence(true)
	ct.TermPrintLine(terminal.StyleFeedback, "quiet")
	test.ExpectEquality(t, tw.String(), "")
}
