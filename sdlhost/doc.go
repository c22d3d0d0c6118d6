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

// Package sdlhost presents a tas.Controller in an SDL window. The Host type
// polls SDL for events and translates them into userinput events. It also
// acts as the tas.Transport, reporting physically held keys from the SDL
// keyboard state.
//
// The Canvas type is a grid of coloured cells drawn with the SDL renderer. It
// implements the same drawing methods as the terminal canvas so that a
// subject can draw to either.
//
// SDL must be serviced from the main thread. Programs using this package
// should call runtime.LockOSThread() from an init() function in the main
// package.
package sdlhost
