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

// Package modalflag wraps the flag package of the standard library. It adds
// program modes, each of which has its own set of flags.
//
// Arguments are given to NewArgs() and then parsed with Parse(). Flags for
// the top level are added before the first call to Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	prefsFile := md.AddString("prefs", "", "preferences file")
//	md.AddSubModes("PLAY", "VERIFY", "REGRESS", "INSPECT")
//	r, err := md.Parse()
//
// After parsing, Mode() returns the sub-mode named by the first non-flag
// argument. If the argument does not name a sub-mode then the first sub-mode
// in the list is selected and the argument is left for the mode to use. Mode
// names are not case sensitive.
//
// Each mode then calls NewMode(), adds its own flags and sub-modes and calls
// Parse() again:
//
//	md.NewMode()
//	verbose := md.AddBool("v", false, "verbose output")
//	r, err = md.Parse()
//
// The sequence of modes that have been selected is returned by Path(), for
// example "REGRESS/RUN".
//
// The Parse() function handles the -help flag itself. Help for the current
// mode is written to the Output field and ParseHelp is returned. A short
// description of each sub-mode can be added with DescribeSubMode() and a
// longer explanation of the mode with AdditionalHelp().
package modalflag
