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

// Package tas is the record and replay harness. The Controller type sits
// between the host's frame loop and a Subject. All input events from the
// host pass through the Controller, which decides whether the event should
// be recorded, ignored or interpreted as a command.
//
// The host calls FixedUpdate() with its fixed delta time. The Controller
// converts the delta time into whole ticks according to the time scale and
// runs the subject for each of those ticks. Inputs received between ticks
// are applied to the subject, in the order they were received, at the start
// of the next tick. The inputs applied on each tick are recorded in the
// event log.
//
// When a run is being replayed the recorded inputs are applied instead of
// the inputs from the host. When the replay runs out of inputs the
// Controller pauses itself.
//
// Checkpoints of the subject can be made at any time with SaveState() and
// restored with LoadState(). The most recent load can be reverted with
// UndoLoad().
//
// # Capture mode
//
// Holding the modifier key (LAlt by default) enters capture mode. In capture
// mode the clock is frozen and key presses are interpreted as commands
// rather than being forwarded to the subject. The commands are defined by
// the bindings package.
//
// # Re-entrancy
//
// The Controller must not be called from inside a Subject method. Doing so
// is a programming error and will cause a panic.
package tas
