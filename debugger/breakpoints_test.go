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

package debugger

import (
	"testing"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/test"
)

func TestBreakpoints(t *testing.T) {
	bp := newBreakpoints()
	test.ExpectEquality(t, bp.String(), "no breakpoints")
	test.ExpectFailure(t, bp.check(0x8000))

	test.ExpectSuccess(t, bp.add(0x008000))
	test.ExpectSuccess(t, bp.add(0x7e1234))
	test.ExpectSuccess(t, curated.Is(bp.add(0x008000), BreakpointExists))

	test.ExpectSuccess(t, bp.check(0x008000))
	test.ExpectSuccess(t, bp.check(0x7e1234))
	test.ExpectEquality(t, bp.String(), " 0: $008000\n 1: $7e1234")

	// disabled breakpoints remain in the list but do not match
	enabled, err := bp.toggle(0x7e1234)
	test.ExpectSuccess(t, err)
	test.ExpectFailure(t, enabled)
	test.ExpectFailure(t, bp.check(0x7e1234))
	test.ExpectEquality(t, bp.String(), " 0: $008000\n 1: $7e1234 (disabled)")
	test.ExpectSuccess(t, curated.Is(bp.add(0x7e1234), BreakpointExists))

	enabled, err = bp.toggle(0x7e1234)
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, enabled)
	test.ExpectSuccess(t, bp.check(0x7e1234))

	_, err = bp.toggle(0x001234)
	test.ExpectSuccess(t, curated.Is(err, BreakpointMissing))

	test.ExpectSuccess(t, bp.drop(0x008000))
	test.ExpectSuccess(t, curated.Is(bp.drop(0x008000), BreakpointMissing))
	test.ExpectFailure(t, bp.check(0x008000))

	bp.clear()
	test.ExpectFailure(t, bp.check(0x7e1234))
}
