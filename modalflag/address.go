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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// addressValue implements the flag.Value interface.
type addressValue uint32

func (a *addressValue) String() string {
	return fmt.Sprintf("$%06x", uint32(*a))
}

func (a *addressValue) Set(s string) error {
	v, err := ParseAddress(s)
	if err != nil {
		return err
	}
	*a = addressValue(v)
	return nil
}

// ParseAddress parses a 24 bit address in one of the forms "$7e8000",
// "0x7e8000", "7e8000" or "7e:8000".
func ParseAddress(s string) (uint32, error) {
	if bank, offset, ok := strings.Cut(s, ":"); ok {
		b, err := strconv.ParseUint(strings.TrimPrefix(bank, "$"), 16, 8)
		if err != nil {
			return 0, fmt.Errorf("invalid bank in address %q", s)
		}
		o, err := strconv.ParseUint(offset, 16, 16)
		if err != nil {
			return 0, fmt.Errorf("invalid offset in address %q", s)
		}
		return uint32(b)<<16 | uint32(o), nil
	}

	h := strings.TrimPrefix(s, "$")
	h = strings.TrimPrefix(strings.TrimPrefix(h, "0x"), "0X")
	v, err := strconv.ParseUint(h, 16, 24)
	if err != nil {
		return 0, fmt.Errorf("invalid address %q", s)
	}

	return uint32(v), nil
}
