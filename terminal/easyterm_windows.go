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

//go:build windows

package terminal

import (
	"fmt"
	"os"
)

// Terminal is not available on windows.
type Terminal struct{}

// Open returns an error on windows.
func Open(_ *os.File, _ *os.File) (*Terminal, error) {
	return nil, fmt.Errorf("terminal: raw mode is not supported on windows")
}

// Close does nothing on windows.
func (pt *Terminal) Close() error {
	return nil
}
