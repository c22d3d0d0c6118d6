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

// Package random should be used in preference to the math/rand package when a
// random number is required inside a subject being recorded.
//
// The numbers returned by Random depend only on the seed and the current tick
// of the subject. The same number is always returned for the same tick, so
// a replay of a recording sees exactly the same numbers as the original, and
// loading a checkpoint does not change the numbers seen after the load.
//
// The seed should be part of the subject's saved state. NewSeed() returns a
// seed based on the time, suitable for the start of a new recording.
package random
