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

// Package eventlog records the input events applied on every simulation tick.
//
// The log is run-length encoded. Each FrameInput entry holds the exact list
// of events applied on a tick and the number of consecutive ticks that list
// was applied for. Most ticks have no input at all so a long recording is
// usually a handful of entries. Adjacent entries never have equal input
// lists, where equality is ordered equality of the events.
//
// Expanding a log gives the per-tick list of events. Compacting a per-tick
// list gives the run-length encoded log. The two are inverses of each other:
//
//	log.Equal(eventlog.Compact(log.Expand()))
//
// The TimestampedInput type is an alternative representation in which every
// event carries the simulation time at which it was applied. It is useful for
// exporting recordings to other tools and for writing tests by hand.
package eventlog
