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

//go:build windows

package colorterm

import (
	"github.com/jetsetilly/gopher65816/curated"
)

// Sentinal error patterns.
const (
	Unavailable = "colorterm: %v"
)

// Initialise always fails on Windows. Use the plainterm package instead.
func (ct *ColorTerminal) Initialise() error {
	return curated.Errorf(Unavailable, "not supported on windows")
}
