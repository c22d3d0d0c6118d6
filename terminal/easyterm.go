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

//go:build !windows

package terminal

import (
	"fmt"
	"os"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

// Terminal controls the mode of a posix terminal.
type Terminal struct {
	input  *os.File
	output *os.File

	canAttr unix.Termios
	rawAttr unix.Termios
}

// Open the terminal and put it into raw mode. The terminal must be restored
// with Close().
func Open(input *os.File, output *os.File) (*Terminal, error) {
	if input == nil || output == nil {
		return nil, fmt.Errorf("terminal: input and output files are required")
	}

	pt := &Terminal{
		input:  input,
		output: output,
	}

	if err := termios.Tcgetattr(pt.input.Fd(), &pt.canAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}
	pt.rawAttr = pt.canAttr
	termios.Cfmakeraw(&pt.rawAttr)

	if err := termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.rawAttr); err != nil {
		return nil, fmt.Errorf("terminal: %w", err)
	}

	pt.output.WriteString(ansiClear + ansiHideCursor)

	return pt, nil
}

// Close restores the terminal to canonical mode.
func (pt *Terminal) Close() error {
	pt.output.WriteString(ansiShowCursor + "\r\n")
	return termios.Tcsetattr(pt.input.Fd(), termios.TCSANOW, &pt.canAttr)
}
