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

// Package modalflag wraps the flag package of the standard library and adds
// program modes. Each mode can have its own set of flags.
//
// Arguments are given with NewArgs() and flags are parsed with Parse():
//
//	md = Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("DEBUG", "RUN")
//	_, _ = md.Parse()
//
// After Parse() the first argument following the flags is checked against
// the list of sub-modes. If it matches then that is the new mode, otherwise
// the first sub-mode in the list is the mode. Mode comparisons are not case
// sensitive.
//
// The flags for the selected mode are added after a call to NewMode() and
// parsed with another call to Parse():
//
//	switch md.Mode() {
//	case "DEBUG":
//		md.NewMode()
//		script := md.AddString("script", "", "script to run on startup")
//		origin := md.AddAddress("origin", 0x8000, "load address of the program")
//		_, _ = md.Parse()
//	}
//
// In addition to the usual types of flag, an address flag accepts 24 bit
// addresses in the forms "$7e8000", "0x7e8000", "7e8000" and "7e:8000".
package modalflag
