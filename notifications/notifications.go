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

package notifications

// Notice describes events in the harness that the host might want to present
// to the user. For example, a status line or an on-screen message.
type Notice string

// List of defined notifications.
const (
	// the replay cursor has run past the end of the input log. the harness has
	// paused itself
	NotifyReplayEnded Notice = "NotifyReplayEnded"

	// a run file has been loaded and replay has begun
	NotifyReplayStarted Notice = "NotifyReplayStarted"

	// checkpoint store has changed
	NotifyStateSaved   Notice = "NotifyStateSaved"
	NotifyStateLoaded  Notice = "NotifyStateLoaded"
	NotifyStateDeleted Notice = "NotifyStateDeleted"

	// the most recent state load has been reverted
	NotifyLoadUndone Notice = "NotifyLoadUndone"

	// a run file has been written to disk
	NotifyRunSaved Notice = "NotifyRunSaved"

	// the harness has been paused or unpaused
	NotifyPause   Notice = "NotifyPause"
	NotifyUnpause Notice = "NotifyUnpause"

	// capture mode has been entered or left
	NotifyCaptureOn  Notice = "NotifyCaptureOn"
	NotifyCaptureOff Notice = "NotifyCaptureOff"
)

// Notify is implemented by anything that wants to receive notices from the
// harness. An error returned by Notify() is logged by the sender but does not
// otherwise affect the harness.
type Notify interface {
	Notify(notice Notice) error
}

// NotifyFunc allows a function to be used as an implementation of Notify.
type NotifyFunc func(notice Notice) error

// Notify implements the Notify interface.
func (f NotifyFunc) Notify(notice Notice) error {
	return f(notice)
}
