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
	"io"
	"unicode"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/terminal"
)

// ColorTerminal implements debugger UI interface with a basic ANSI terminal.
type ColorTerminal struct {
	input  io.Reader
	output io.Writer
	reader *bufio.Reader

	// width of the output terminal in characters. zero if unknown
	width int

	// called by CleanUp()
	restore func()

	history       []string
	tabCompletion terminal.TabCompletion

	silenced bool
}

// RegisterTabCompletion adds an implementation of TabCompletion to the
// ColorTerminal.
func (ct *ColorTerminal) RegisterTabCompletion(tc terminal.TabCompletion) {
	ct.tabCompletion = tc
}

// IsInteractive implements the terminal.Input interface.
func (ct *ColorTerminal) IsInteractive() bool {
	return true
}

// Silence implements the terminal.Terminal interface.
func (ct *ColorTerminal) Silence(silenced bool) {
	ct.silenced = silenced
}

// CleanUp perfoms any cleaning up required for the terminal.
func (ct *ColorTerminal) CleanUp() {
	io.WriteString(ct.output, "\r")
	if ct.restore != nil {
		ct.restore()
		ct.restore = nil
	}
}

func (ct *ColorTerminal) print(s ...string) {
	for _, t := range s {
		io.WriteString(ct.output, t)
	}
}

// TermPrintLine implements the terminal.Output interface.
func (ct *ColorTerminal) TermPrintLine(style terminal.Style, s string) {
	if ct.silenced && style != terminal.StyleError {
		return
	}

	ct.print("\r", clearLine)

	switch style {
	case terminal.StyleEcho:
		ct.print(penBold)
	case terminal.StyleHelp:
		ct.print(dimPen(colWhite))
	case terminal.StyleFeedback:
		ct.print(dimPen(colWhite))
	case terminal.StyleCPUStep:
		ct.print(pen(colYellow))
	case terminal.StyleCallStack:
		ct.print(pen(colCyan))
	case terminal.StyleScript:
		ct.print(pen(colBlue))
	case terminal.StyleLog:
		ct.print(dimPen(colMagenta))
	case terminal.StyleError:
		ct.print(pen(colRed), "* ")
	}

	ct.print(s, penNormal, "\r\n")
}

// add input to the command history if it is not the same as the most recent
// entry.
func (ct *ColorTerminal) addHistory(s string) {
	if s == "" {
		return
	}
	if len(ct.history) > 0 && ct.history[len(ct.history)-1] == s {
		return
	}
	ct.history = append(ct.history, s)
}

// TermRead implements the terminal.Input interface.
func (ct *ColorTerminal) TermRead(prompt terminal.Prompt) (string, error) {
	p := prompt.String()
	if ct.width > 0 && len(p) > ct.width/2 {
		p = p[:ct.width/2]
	}

	input := make([]rune, 0, 64)
	cursor := 0
	history := len(ct.history)

	// the current input is kept while scrolling through history in case the
	// user wants to resume where they left off
	var pending []rune

	setInput := func(s []rune) {
		input = append(input[:0], s...)
		cursor = len(input)
	}

	for {
		// redraw line and place cursor
		if !ct.silenced {
			ct.print("\r", clearLine, penBold, p, penNormal, string(input), cursorMove(cursor-len(input)))
		}

		r, _, err := ct.reader.ReadRune()
		if err != nil {
			return "", err
		}

		if r != keyTab && ct.tabCompletion != nil {
			ct.tabCompletion.Reset()
		}

		switch r {
		case keyTab:
			if ct.tabCompletion != nil {
				s := []rune(ct.tabCompletion.Complete(string(input[:cursor])))
				setInput(append(s, input[cursor:]...))
				cursor = len(s)
			}

		case keyInterrupt:
			ct.print("\r\n")
			return "", curated.Errorf(terminal.UserInterrupt)

		case keyEOT:
			if len(input) == 0 {
				ct.print("\r\n")
				return "", curated.Errorf(terminal.UserAbort)
			}

		case keyCarriageReturn, keyLineFeed:
			ct.print("\r\n")
			s := string(input)
			ct.addHistory(s)
			return s, nil

		case keyEsc:
			r, _, err := ct.reader.ReadRune()
			if err != nil {
				return "", err
			}
			if r != escCursor && r != escSS3 {
				continue // for loop
			}

			r, _, err = ct.reader.ReadRune()
			if err != nil {
				return "", err
			}

			switch r {
			case cursorUp:
				if history > 0 {
					if history == len(ct.history) {
						pending = append(pending[:0], input...)
					}
					history--
					setInput([]rune(ct.history[history]))
				}
			case cursorDown:
				if history < len(ct.history)-1 {
					history++
					setInput([]rune(ct.history[history]))
				} else if history == len(ct.history)-1 {
					history++
					setInput(pending)
				}
			case cursorForward:
				if cursor < len(input) {
					cursor++
				}
			case cursorBackward:
				if cursor > 0 {
					cursor--
				}
			case cursorHome:
				cursor = 0
			case cursorEnd:
				cursor = len(input)
			case cursorDelete:
				// consume tilde
				_, _, err := ct.reader.ReadRune()
				if err != nil {
					return "", err
				}
				if cursor < len(input) {
					input = append(input[:cursor], input[cursor+1:]...)
					history = len(ct.history)
				}
			}

		case keyBackspace, keyDelete:
			if cursor > 0 {
				input = append(input[:cursor-1], input[cursor:]...)
				cursor--
				history = len(ct.history)
			}

		default:
			if unicode.IsPrint(r) {
				input = append(input, 0)
				copy(input[cursor+1:], input[cursor:])
				input[cursor] = r
				cursor++
				history = len(ct.history)
			}
		}
	}
}
