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

// Package host runs the frame loop that drives a tas.Controller. Each frame,
// events waiting in the Source are passed to the Controller, the Controller's
// FixedUpdate() is called with the fixed delta time and the Controller is
// asked to draw. The Limiter keeps the loop running at the requested rate.
//
// The loop is the only caller of the Controller. Hosts that receive input on
// another goroutine must hand the events to the loop through their Source.
package host
