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

package loader_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/gopher65816/curated"
	"github.com/jetsetilly/gopher65816/hardware"
	"github.com/jetsetilly/gopher65816/loader"
	"github.com/jetsetilly/gopher65816/test"
)

func writeFile(t *testing.T, name string, data []byte) string {
	t.Helper()
	filename := filepath.Join(t.TempDir(), name)
	test.DemandSuccess(t, os.WriteFile(filename, data, 0o644))
	return filename
}

func TestAttach(t *testing.T) {
	filename := writeFile(t, "prog.bin", []byte{0xa9, 0x01, 0xdb})

	ld := loader.NewLoader(filename, 0x7e8000)
	test.ExpectEquality(t, ld.ShortName(), "prog")
	test.ExpectFailure(t, ld.HasLoaded())

	m := hardware.NewMachine()
	test.DemandSuccess(t, ld.Attach(m))
	test.ExpectSuccess(t, ld.HasLoaded())
	test.ExpectEquality(t, m.Mem.Peek(0x7e8000), uint8(0xa9))
	test.ExpectEquality(t, m.Mem.Peek(0x7e8002), uint8(0xdb))
	test.ExpectEquality(t, len(ld.Hash), 40)
}

func TestHash(t *testing.T) {
	filename := writeFile(t, "prog.bin", []byte{0xea})

	ld := loader.NewLoader(filename, 0)
	ld.Hash = "0000"
	err := ld.Load()
	test.ExpectSuccess(t, curated.Is(err, loader.Failed))
}

func TestFailures(t *testing.T) {
	ld := loader.NewLoader(filepath.Join(t.TempDir(), "missing.bin"), 0)
	test.ExpectSuccess(t, curated.Is(ld.Load(), loader.Failed))

	ld = loader.NewLoader(writeFile(t, "empty.bin", []byte{}), 0)
	test.ExpectFailure(t, ld.Load())

	ld = loader.NewLoader(writeFile(t, "long.bin", []byte{0, 1, 2}), 0xfffffe)
	test.ExpectFailure(t, ld.Load())

	ld = loader.NewLoader("ftp://example.com/prog.bin", 0)
	test.ExpectFailure(t, ld.Load())
}
