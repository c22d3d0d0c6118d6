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

// Package replay steps through a recorded event log one tick at a time.
//
// A Replay is created from an eventlog.Log. On every tick the Controller asks
// for the inputs that are due with Next() and, after those inputs have been
// applied to the subject, consumes the tick with Advance(). When every tick of
// the log has been consumed, Next() returns false and the replay is
// exhausted. An exhausted replay stays exhausted.
//
// The Replay does not apply inputs itself and does not know about the
// subject. Ordering of events within a tick is the order in which they were
// recorded.
package replay
