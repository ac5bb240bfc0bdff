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
	"os"
	"path/filepath"
)

const baseResourcePath = ".gopher65816"

// ResourcePath returns the path of a resource. Empty path elements are
// ignored.
func ResourcePath(resource ...string) string {
	p := make([]string, 0, len(resource)+1)
	p = append(p, basePath())
	for _, r := range resource {
		if r != "" {
			p = append(p, r)
		}
	}
	return filepath.Join(p...)
}

// ResourceExists returns true if the resource path exists and is a regular
// file.
func ResourceExists(resource ...string) bool {
	fi, err := os.Stat(ResourcePath(resource...))
	return err == nil && fi.Mode().IsRegular()
}

func basePath() string {
	if fi, err := os.Stat(baseResourcePath); err == nil && fi.IsDir() {
		return baseResourcePath
	}

	cfg, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}
	return filepath.Join(cfg, baseResourcePath[1:])
}
