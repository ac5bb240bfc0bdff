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
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/logger"
)

// Scribe can be used again after a Start()/End() cycle. Scribe records the
// commands entered into the debugger along with their output.
type Scribe struct {
	file     io.WriteCloser
	filename string

	// the depth of script openings during the writing of a new script
	playbackDepth int

	inputLine  string
	outputLine strings.Builder
}

// IsActive returns true if a script is currently being captured.
func (scr *Scribe) IsActive() bool {
	return scr.file != nil
}

// Filename returns the name of the script being captured.
func (scr *Scribe) Filename() string {
	return scr.filename
}

// StartSession creates a new script file. It is an error for the file to
// already exist.
func (scr *Scribe) StartSession(filename string) error {
	if scr.IsActive() {
		return curated.Errorf(ScribeError, "already active")
	}

	f, err := os.OpenFile(filename, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return curated.Errorf(ScribeError, err)
	}

	scr.file = f
	scr.filename = filename

	return nil
}

// EndSession the current scribe session.
func (scr *Scribe) EndSession() error {
	if !scr.IsActive() {
		return nil
	}

	defer func() {
		scr.file = nil
		scr.filename = ""
		scr.playbackDepth = 0
		scr.inputLine = ""
		scr.outputLine.Reset()
	}()

	// make sure everything has been written to the output file. if Commit()
	// fails, continue with the Close() and return the commit error if the
	// close succeeds
	err := scr.Commit()

	if errClose := scr.file.Close(); errClose != nil {
		return curated.Errorf(ScribeError, errClose)
	}

	return err
}

// StartPlayback indicates that a replayed script has begun. Commands from
// the replayed script are not recorded but the act of running the script is.
func (scr *Scribe) StartPlayback() {
	if !scr.IsActive() {
		return
	}
	scr.logCommit()
	scr.playbackDepth++
}

// EndPlayback indicates that a replayed script has finished.
func (scr *Scribe) EndPlayback() {
	if !scr.IsActive() {
		return
	}
	scr.logCommit()
	scr.playbackDepth--
}

// Rollback undoes calls to WriteInput() and WriteOutput() since the last
// Commit().
func (scr *Scribe) Rollback() {
	scr.inputLine = ""
	scr.outputLine.Reset()
}

// WriteInput writes user input to the open script file.
func (scr *Scribe) WriteInput(command string) {
	if !scr.IsActive() || scr.playbackDepth > 0 {
		return
	}

	scr.logCommit()
	if command != "" {
		scr.inputLine = fmt.Sprintf("%s\n", command)
	}
}

// WriteOutput writes the output of the most recent command to the open script
// file as a comment.
func (scr *Scribe) WriteOutput(output string) {
	if !scr.IsActive() || scr.playbackDepth > 0 || scr.inputLine == "" {
		return
	}

	for _, l := range strings.Split(output, "\n") {
		scr.outputLine.WriteString(fmt.Sprintf("%s %s\n", commentLine, l))
	}
}

// Commit most recent calls to WriteInput() and WriteOutput().
func (scr *Scribe) Commit() error {
	if !scr.IsActive() {
		return nil
	}

	defer scr.Rollback()

	for _, s := range []string{scr.inputLine, scr.outputLine.String()} {
		if s == "" {
			continue // for loop
		}
		n, err := io.WriteString(scr.file, s)
		if err != nil {
			return curated.Errorf(ScribeError, err)
		}
		if n != len(s) {
			return curated.Errorf(ScribeError, "output truncated")
		}
	}

	return nil
}

// commit when there is no caller to return an error to.
func (scr *Scribe) logCommit() {
	if err := scr.Commit(); err != nil {
		logger.Log(logger.Allow, "scribe", err.Error())
	}
}
