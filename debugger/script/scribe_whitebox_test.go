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
	"errors"
	"strings"
	"testing"

	"github.com/jetsetilly/gopher65816/logger"
	"github.com/jetsetilly/gopher65816/test"
)

type fullDisk struct{}

func (fullDisk) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func (fullDisk) Close() error {
	return nil
}

func TestCommitErrorsAreLogged(t *testing.T) {
	logger.Clear()

	scr := &Scribe{file: fullDisk{}, filename: "full"}
	scr.WriteInput("step")

	// committing the previous line happens on the next input and during
	// playback changes
	scr.WriteInput("over")
	scr.StartPlayback()
	scr.EndPlayback()

	tw := &test.Writer{}
	logger.Write(tw)
	test.ExpectEquality(t, strings.Count(tw.String(), "scribe: script: scribe: disk full"), 1)

	err := scr.EndSession()
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, scr.IsActive())
}
