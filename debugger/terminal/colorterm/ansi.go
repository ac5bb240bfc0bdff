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

package colorterm

import "fmt"

// ansi color.
const (
	colRed     = 1
	colGreen   = 2
	colYellow  = 3
	colBlue    = 4
	colMagenta = 5
	colCyan    = 6
	colWhite   = 7
)

// ansi target.
const (
	targetPen       = 3
	targetBrightPen = 9
)

// ansi attribute.
const (
	attrBold = 1
)

func pen(col int) string {
	return fmt.Sprintf("\033[%d%dm", targetBrightPen, col)
}

func dimPen(col int) string {
	return fmt.Sprintf("\033[%d%dm", targetPen, col)
}

var (
	penBold   = fmt.Sprintf("\033[%dm", attrBold)
	penNormal = "\033[m"
)

// cursor control.
const (
	clearLine         = "\033[2K"
	cursorForwardOne  = "\033[1C"
	cursorBackwardOne = "\033[1D"
)

// cursorMove returns the sequence to move the cursor n characters forward
// (positive numbers) or n characters backwards (negative numbers).
func cursorMove(n int) string {
	if n < 0 {
		return fmt.Sprintf("\033[%dD", -n)
	} else if n > 0 {
		return fmt.Sprintf("\033[%dC", n)
	}
	return ""
}
