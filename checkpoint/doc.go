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

// Package checkpoint implements the checkpoint store. A checkpoint is a
// snapshot of the subject together with everything needed to carry on
// recording from that point: the frame number, the input log up to the
// snapshot and the keys and buttons that were held.
//
// Checkpoints are kept in creation order. The whole list is written to the
// backend every time it changes. A failure to write is returned to the
// caller but the in-memory list is always updated, so the list in memory is
// authoritative until the next successful write.
//
// Three backends are available: JSONFile writes a JSON array to a single file,
// SQLite writes one row per checkpoint to a database table and Memory keeps
// the encoded list in memory only.
package checkpoint
