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

// Package demo is a small deterministic subject for the harness. A marker is
// moved around a field with the cursor keys (or WASD) and scores a point
// whenever it reaches the target. The position of each new target is decided
// by the random package so a replay always places targets in the same
// positions as the original recording.
//
// Typed text is shown on the field and mouse clicks are counted, so that
// every kind of input event has an effect on the saved state.
package demo
