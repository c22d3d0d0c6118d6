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

// Package userinput defines the input vocabulary of the harness. Host
// implementations (the terminal and SDL hosts) translate their native input
// events into Event values. The harness records Event values, replays them
// and forwards them to the subject.
//
// Event is a comparable value type. Two events are equal if all fields are
// equal, which is what the event log uses to coalesce identical frames.
//
// KeySet and ButtonSet describe the keys and mouse buttons that are currently
// held. The Held type tracks both sets and is updated from KeyDown/KeyUp and
// MouseDown/MouseUp events as they are applied. Sets serialise as sorted JSON
// arrays so that persisted files are stable.
package userinput
