// This file is part of TASHarness.
//
// TASHarness is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// TASHarness is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with TASHarness.  If not, see <https://www.gnu.org/licenses/>.

package terminal

// list of ASCII codes for non-alphanumeric characters
const (
	KeyCtrlC          = 3
	KeyTab            = 9
	KeyLineFeed       = 10
	KeyCarriageReturn = 13
	KeyEsc            = 27
	KeySpace          = 32
	KeyBackspace      = 127
)

// list of ASCII code for characters that can follow KeyEsc
const (
	EscCursor = 91
)

// list of ASCII code for characters that can follow EscCursor
const (
	CursorUp       = 'A'
	CursorDown     = 'B'
	CursorForward  = 'C'
	CursorBackward = 'D'
)

// ANSI sequences used by the canvas
const (
	ansiHome       = "\033[H"
	ansiClearLine  = "\033[K"
	ansiClear      = "\033[2J"
	ansiHideCursor = "\033[?25l"
	ansiShowCursor = "\033[?25h"
)
