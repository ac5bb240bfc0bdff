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
	"strings"
)

// tabCompletion completes debugger keywords. repeated calls to Complete()
// cycle through all keywords matching the original input.
type tabCompletion struct {
	matches []string
	idx     int
}

func newTabCompletion() *tabCompletion {
	return &tabCompletion{}
}

// Complete implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Complete(input string) string {
	// only the first word is completed
	if strings.Contains(strings.TrimSpace(input), " ") {
		return input
	}

	if tc.matches == nil {
		s := strings.ToUpper(strings.TrimSpace(input))
		tc.matches = make([]string, 0)
		for _, k := range keywords() {
			if strings.HasPrefix(k, s) {
				tc.matches = append(tc.matches, k)
			}
		}
		tc.idx = 0
	}

	if len(tc.matches) == 0 {
		return input
	}

	s := tc.matches[tc.idx]
	tc.idx = (tc.idx + 1) % len(tc.matches)
	return s + " "
}

// Reset implements the terminal.TabCompletion interface.
func (tc *tabCompletion) Reset() {
	tc.matches = nil
	tc.idx = 0
}
