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

package tas

import (
	"fmt"

	"github.com/jetsetilly/tasharness/checkpoint"
	"github.com/jetsetilly/tasharness/eventlog"
	"github.com/jetsetilly/tasharness/replay"
	"github.com/jetsetilly/tasharness/userinput"
)

// Mode describes what the Controller is doing.
type Mode int

// List of valid Mode values.
const (
	Recording Mode = iota
	Paused
	Replaying
)

func (m Mode) String() string {
	switch m {
	case Recording:
		return "Recording"
	case Paused:
		return "Paused"
	case Replaying:
		return "Replaying"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// Mode returns the current mode. Capture mode is reported separately by
// Capture().
func (c *Controller[S]) Mode() Mode {
	if c.paused {
		return Paused
	}
	if c.replay != nil {
		return Replaying
	}
	return Recording
}

// Capture returns true if the Controller is in capture mode.
func (c *Controller[S]) Capture() bool {
	return c.capture
}

// Status returns a short description of the current mode suitable for a
// status line.
func (c *Controller[S]) Status() string {
	switch c.Mode() {
	case Paused:
		return "Paused"
	case Replaying:
		return fmt.Sprintf("Replay frame %d", c.replay.Frame())
	}
	return "Recording"
}

// ReplayState returns the state of the replay and its progress. The progress
// string is empty if the state is replay.Idle.
func (c *Controller[S]) ReplayState() (replay.State, string) {
	if c.replay == nil {
		return replay.Idle, ""
	}
	return c.replay.State(), c.replay.String()
}

func (c *Controller[S]) String() string {
	s := fmt.Sprintf("%s: %s", c.Status(), c.clock)
	if c.capture {
		s = fmt.Sprintf("%s [capture]", s)
	}
	return s
}

// Frame returns the number of ticks since the start of the recording.
func (c *Controller[S]) Frame() int {
	return c.clock.Frame()
}

// Time returns the simulation time in seconds since the start of the
// recording.
func (c *Controller[S]) Time() float64 {
	return c.clock.Time()
}

// Log returns a copy of the input log of the current recording.
func (c *Controller[S]) Log() eventlog.Log {
	return c.log.Clone()
}

// Held returns a copy of the keys and buttons held in the simulation.
func (c *Controller[S]) Held() userinput.Held {
	return c.held.Clone()
}

// Checkpoints returns a copy of the list of checkpoints.
func (c *Controller[S]) Checkpoints() []checkpoint.Checkpoint[S] {
	return c.states.List()
}

// SurfaceSize returns the size of the surface the last time the subject was
// drawn.
func (c *Controller[S]) SurfaceSize() (int, int) {
	return c.width, c.height
}
