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

// Package notifications allow communication from the harness to the host
// application. This is useful, for example, to tell the user that a replay
// has finished and that the harness has paused itself.
//
// Notifications are informational. The harness does not wait for the host to
// act on a notification and the order of notifications within a frame is the
// order in which the events happened.
package notifications
