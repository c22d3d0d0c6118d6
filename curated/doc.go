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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which looks like the
// Errorf() function in the fmt package. The difference is that the pattern
// string is kept and can be tested for later:
//
//	e := curated.Errorf("checkpoint: %v", err)
//
//	if curated.Is(e, "checkpoint: %v") {
//		...
//	}
//
// Has() looks for a pattern anywhere in a chain of curated errors and IsAny()
// says whether an error is curated at all. A curated error that has an error
// among its values will unwrap to that error, so the errors.Is() function from
// the standard library can still find sentinel errors like fs.ErrNotExist.
//
// The message returned by Error() is normalised. Parts of the message are
// separated by ": " and adjacent duplicate parts are removed. In practice this
// means that functions can always prefix errors with their package name
// without worrying whether the caller will do the same:
//
//	runfile: runfile: open tas.json: no such file or directory
//
// becomes:
//
//	runfile: open tas.json: no such file or directory
//
// Sentinel patterns should be stored as exported string constants in the
// package that creates them.
package curated
