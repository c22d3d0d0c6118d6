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

// Package terminal is a host for the harness that runs in a text terminal.
// The terminal is put into raw mode and bytes from the keyboard are decoded
// into input events.
//
// A terminal only reports key presses, never key releases. A key is
// considered held for a number of frames after it was last pressed. The
// auto-repeat of the terminal keeps the key held for as long as it is
// physically held down.
//
// The modifier for capture mode is reached with the Alt key. Most terminals
// send Alt+key as an escape byte followed by the key. This is decoded as the
// LAlt key being pressed, the key being pressed and released, and then LAlt
// being released.
package terminal
