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

// Package digest computes fingerprints of subject state. The state is
// serialised to JSON and then canonicalised (RFC 8785) before it is hashed so
// that the fingerprint does not depend on map ordering or on the formatting
// choices of the encoder.
//
// Of() returns the fingerprint of a single value. The Chain type folds a
// fingerprint for every tick into a running value, so that two replays that
// finish in the same state but differ somewhere along the way produce
// different results.
package digest
