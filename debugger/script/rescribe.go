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

package script

import (
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/debugger/terminal"
)

// Sentinal error patterns.
const (
	FileUnavailable = "script: file unavailable: %v"
	FileError       = "script: %v"
	ScriptEnd       = "script: end of %s"
	ScribeError     = "script: scribe: %v"
)

const commentLine = "#"

// check if line is prepended with commentLine (ignoring leading spaces)
func isOutputLine(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), commentLine)
}

// Rescribe represents a previously scribed script. The type implements the
// terminal.Input interface.
type Rescribe struct {
	name   string
	lines  []string
	lineCt int
}

// RescribeScript is the preferred method of initialisation for the Rescribe
// type.
func RescribeScript(filename string) (*Rescribe, error) {
	f, err := os.Open(filename)
	if err != nil {
		return nil, curated.Errorf(FileUnavailable, err)
	}
	defer f.Close()

	return NewRescribe(filename, f)
}

// NewRescribe creates a Rescribe from an io.Reader. The name is used in error
// messages.
func NewRescribe(name string, r io.Reader) (*Rescribe, error) {
	buffer, err := io.ReadAll(r)
	if err != nil {
		return nil, curated.Errorf(FileError, err)
	}

	scr := &Rescribe{name: name}
	for _, l := range strings.Split(string(buffer), "\n") {
		l = strings.TrimRight(l, "\r")
		if !isOutputLine(l) && strings.TrimSpace(l) != "" {
			scr.lines = append(scr.lines, l)
		}
	}

	return scr, nil
}

// IsInteractive implements the terminal.Input interface.
func (scr *Rescribe) IsInteractive() bool {
	return false
}

// TermRead implements the terminal.Input interface. A ScriptEnd error is
// returned once every line has been read.
func (scr *Rescribe) TermRead(_ terminal.Prompt) (string, error) {
	if scr.lineCt >= len(scr.lines) {
		return "", curated.Errorf(ScriptEnd, scr.name)
	}

	s := scr.lines[scr.lineCt]
	scr.lineCt++

	return s, nil
}
