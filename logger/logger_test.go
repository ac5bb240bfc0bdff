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

package logger_test

import (
	"testing"

	"github.com/jetsetilly/gopher65816/logger"
	"github.com/jetsetilly/gopher65816/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.Writer{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	tw.Clear()
	logger.Log(deny{}, "test", "this is denied")
	logger.Logf(logger.Allow, "test2", "this is %s test", "another")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))
}
