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

// Package clock converts the variable wall-clock time between host frames
// into a whole number of fixed-length simulation ticks.
//
// The length of a tick is not configured. It is discovered from the delta
// time passed to the first call to Observe(), which is the delta time of the
// host's own fixed update. Time observed by Advance() is multiplied by the
// time scale and added to an accumulator. Each whole tick in the accumulator
// is emitted and the remainder is carried to the next frame.
//
// A small tolerance (a billionth of a tick) is used when counting whole ticks.
// Without it the number of ticks emitted for a sequence of deltas would depend
// on how the deltas were divided between calls, because of floating point
// error. For example, sixty deltas of 1/60 must emit sixty ticks just as one
// delta of 1.0 does.
package clock
