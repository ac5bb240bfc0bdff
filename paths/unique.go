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

package paths

import (
	"fmt"
	"strings"
	"time"
)

// UniqueFilename creates a filename that should not collide with any
// existing file. The file system is not checked. The format of the filename
// is:
//
//	prepend_name_YYYYMMDD_HHMMSS.ext
//
// The name and ext parts are omitted if they are empty.
func UniqueFilename(prepend string, name string, ext string) string {
	n := time.Now()
	timestamp := fmt.Sprintf("%04d%02d%02d_%02d%02d%02d", n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	var fn string
	if name = strings.TrimSpace(name); name != "" {
		fn = fmt.Sprintf("%s_%s_%s", prepend, name, timestamp)
	} else {
		fn = fmt.Sprintf("%s_%s", prepend, timestamp)
	}

	if ext = strings.TrimPrefix(ext, "."); ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
