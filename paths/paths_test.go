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

package paths_test

import (
	"os"
	"path/filepath"
	"regexp"
	"testing"

	"github.com/jetsetilly/gopher65816/paths"
	"github.com/jetsetilly/gopher65816/test"
)

func TestResourcePath(t *testing.T) {
	dir := t.TempDir()
	wd, err := os.Getwd()
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, os.Chdir(dir))
	defer os.Chdir(wd)

	test.DemandSuccess(t, os.Mkdir(".gopher65816", 0o755))

	test.ExpectEquality(t, paths.ResourcePath("foo", "baz"), filepath.Join(".gopher65816", "foo", "baz"))
	test.ExpectEquality(t, paths.ResourcePath("", "baz"), filepath.Join(".gopher65816", "baz"))
	test.ExpectEquality(t, paths.ResourcePath(), ".gopher65816")

	test.ExpectFailure(t, paths.ResourceExists("debuggerInit"))
	err = os.WriteFile(paths.ResourcePath("debuggerInit"), []byte("CPU\n"), 0o644)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, paths.ResourceExists("debuggerInit"))
}

func TestUniqueFilename(t *testing.T) {
	re := regexp.MustCompile(`^memviz_prog_\d{8}_\d{6}\.dot$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("memviz", "prog", ".dot")))

	re = regexp.MustCompile(`^script_\d{8}_\d{6}$`)
	test.ExpectSuccess(t, re.MatchString(paths.UniqueFilename("script", "", "")))
}
