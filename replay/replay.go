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

package replay

import (
	"fmt"

	"github.com/jetsetilly/tasharness/eventlog"
	"github.com/jetsetilly/tasharness/userinput"
)

// State of the replay.
type State int

// List of valid State values.
const (
	Idle State = iota
	Replaying
	Exhausted
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Replaying:
		return "replaying"
	case Exhausted:
		return "exhausted"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Replay is a cursor over the entries of an event log.
type Replay struct {
	entries []eventlog.FrameInput

	// the entry currently being replayed
	input int

	// the number of ticks remaining before the cursor moves on to the next entry
	remaining int

	// the number of ticks that have been consumed
	frame int

	// total number of ticks in the log
	total int

	state State
}

// New is the preferred method of initialisation for the Replay type. The log
// is copied.
func New(log eventlog.Log) *Replay {
	r := &Replay{
		entries: log.Entries(),
		total:   log.Frames(),
		state:   Replaying,
	}
	if len(r.entries) > 0 {
		r.remaining = r.entries[0].Frames
	}
	return r
}

// String returns the progress of the replay.
func (r *Replay) String() string {
	if r.total == 0 {
		return "0/0 (100.0%)"
	}
	return fmt.Sprintf("%d/%d (%.1f%%)", r.frame, r.total, 100*(float64(r.frame)/float64(r.total)))
}

// Next returns the inputs due on the current tick. Returns false if there
// are no more ticks in the log, in which case the replay is now exhausted.
//
// The returned slice must not be modified.
func (r *Replay) Next() ([]userinput.Event, bool) {
	if r.input >= len(r.entries) {
		r.state = Exhausted
		return nil, false
	}
	return r.entries[r.input].Inputs, true
}

// Advance consumes the current tick. Does nothing if the replay is
// exhausted.
func (r *Replay) Advance() {
	if r.input >= len(r.entries) {
		return
	}

	r.remaining--
	if r.remaining <= 0 {
		r.input++
		if r.input < len(r.entries) {
			r.remaining = r.entries[r.input].Frames
		}
	}

	r.frame++
}

// Frame returns the number of ticks that have been consumed.
func (r *Replay) Frame() int {
	return r.frame
}

// Total returns the total number of ticks in the log being replayed.
func (r *Replay) Total() int {
	return r.total
}

// Pending returns true if there are ticks remaining in the log. Unlike Next()
// it does not change the state of the replay.
func (r *Replay) Pending() bool {
	return r.input < len(r.entries)
}

// State returns the current state of the replay. A Replay is never Idle, the
// Idle state describes the absence of a replay.
func (r *Replay) State() State {
	return r.state
}
