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

// Package regression keeps a database of recorded runs and checks that each
// run still replays to the same result.
//
// A run is added to the database with RegressAdd(). The run is replayed
// headless and the digest of the final state, along with a trace digest
// chaining the state after every tick, is stored with the run. If the run
// file already carries a digest then the replay must agree with it for the
// run to be added.
//
// RegressRun() replays every run in the database, or a selection of them,
// and compares the results with the stored values. Any difference indicates
// that the subject is no longer deterministic or that its behaviour has
// changed.
//
// The Verify() function performs a single headless replay and is useful on
// its own for checking a run file.
package regression
