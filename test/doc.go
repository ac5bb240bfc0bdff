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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect*() functions report a failure with t.Errorf() and allow the test
// to continue. The Demand*() functions use t.Fatalf() and should be used when
// the remainder of the test depends on the value being correct.
//
// A nil value is considered a success. This is how error values work and we
// need to interpret nil in the same way.
//
// All functions accept an optional list of tags. The tags are prefixed to any
// failure message and are useful for identifying which iteration of a loop
// failed.
package test
