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
	"fmt"
	"slices"
	"strings"

	"github.com/jetsetilly/gopher65816/curated"
)

// Sentinal error patterns for breakpoints.
const (
	BreakpointExists  = "break: already exists ($%06x)"
	BreakpointMissing = "break: not present ($%06x)"
)

type breaker struct {
	address uint32
	enabled bool
}

func (b breaker) String() string {
	if b.enabled {
		return fmt.Sprintf("$%06x", b.address)
	}
	return fmt.Sprintf("$%06x (disabled)", b.address)
}

// breakpoints keeps track of all the currently defined breakpoints. a
// breakpoint halts the RUN command when the PC reaches the address.
// breakpoints are not saved between sessions.
type breakpoints struct {
	// in the order they were added
	breaks []breaker
}

func newBreakpoints() *breakpoints {
	return &breakpoints{
		breaks: make([]breaker, 0, 8),
	}
}

func (bp *breakpoints) String() string {
	if len(bp.breaks) == 0 {
		return "no breakpoints"
	}
	s := strings.Builder{}
	for i, b := range bp.breaks {
		s.WriteString(fmt.Sprintf("% 2d: %s\n", i, b))
	}
	return strings.TrimRight(s.String(), "\n")
}

func (bp *breakpoints) index(address uint32) int {
	address &= 0xffffff
	return slices.IndexFunc(bp.breaks, func(b breaker) bool {
		return b.address == address
	})
}

// new breakpoints are enabled.
func (bp *breakpoints) add(address uint32) error {
	if bp.index(address) != -1 {
		return curated.Errorf(BreakpointExists, address&0xffffff)
	}
	bp.breaks = append(bp.breaks, breaker{address: address & 0xffffff, enabled: true})
	return nil
}

func (bp *breakpoints) drop(address uint32) error {
	i := bp.index(address)
	if i == -1 {
		return curated.Errorf(BreakpointMissing, address&0xffffff)
	}
	bp.breaks = slices.Delete(bp.breaks, i, i+1)
	return nil
}

// toggle the enabled state of the breakpoint. returns the new state.
func (bp *breakpoints) toggle(address uint32) (bool, error) {
	i := bp.index(address)
	if i == -1 {
		return false, curated.Errorf(BreakpointMissing, address&0xffffff)
	}
	bp.breaks[i].enabled = !bp.breaks[i].enabled
	return bp.breaks[i].enabled, nil
}

func (bp *breakpoints) clear() {
	bp.breaks = bp.breaks[:0]
}

// check returns true if there is an enabled breakpoint for the address.
func (bp *breakpoints) check(address uint32) bool {
	i := bp.index(address)
	return i != -1 && bp.breaks[i].enabled
}
