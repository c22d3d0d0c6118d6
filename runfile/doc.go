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

// Package runfile reads and writes run files. A run is a complete recording:
// the state the subject started from and the input log that was applied to
// it. A run file optionally records the fixed delta time of the host that
// made the recording and a digest of the subject state at the end of the
// recording, so that a run can be replayed and verified without a host.
//
// Run files are JSON objects. They are validated against an embedded schema
// before being decoded.
package runfile
