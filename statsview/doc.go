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

// Package statsview is an optional package that is only built when the
// statsview build tag is present. It runs a local HTTP server showing
// runtime statistics for the emulator process, which is useful when looking
// at the allocations made by long RUN commands.
//
// After launch the statistics are at:
//
//	localhost:12650/debug/statsview
//
// Standard Go pprof statistics are at:
//
//	localhost:12650/debug/pprof/
//
// Without the build tag, Available() returns false and Launch() does nothing
// except say so.
package statsview
