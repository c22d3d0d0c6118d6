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

// Package test contains helper functions to remove common boilerplate from
// tests.
//
// The Expect functions report a failure and allow the test to continue. The
// Demand functions are the same but the failure is fatal.
//
// ExpectSuccess and ExpectFailure work with bool and error values. Note that
// nil is interpreted as a success because that is how errors work. This may
// not be how we want nil to be interpreted in all situations but there's no
// sensible alternative.
//
// The Writer type implements io.Writer and should be used to capture output.
// The Compare() function can then be used to test for equality.
package test
