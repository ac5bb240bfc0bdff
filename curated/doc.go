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

// Package curated wraps the plain Go error type with a pattern that can be
// tested for later. Errors are created with Errorf() in the same way as
// fmt.Errorf() but the pattern string is remembered:
//
//	e := curated.Errorf("cpu: unimplemented opcode (%02x)", op)
//
//	if curated.Is(e, "cpu: unimplemented opcode (%02x)") {
//		...
//	}
//
// Patterns that are tested for in other packages should be stored as an
// exported const string. For example, cpu.UnimplementedOpcode.
//
// Has() checks whether a pattern occurs anywhere in the chain of wrapped
// curated errors. IsAny() answers whether the error is curated at all. An
// uncurated error is an unexpected error.
//
// The Error() string is normalised so that adjacent parts of the message
// chain, separated by ": ", are not repeated. Wrapping an error with a
// pattern that begins with the same part as the wrapped error does not
// produce "cpu: cpu: stopped".
package curated
