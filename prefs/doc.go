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

// Package prefs facilitates the storage of preference values. Values are
// typed (Bool, Int, Float and String) and can have hooks attached that are
// called when the value changes.
//
// Values are associated with a key when they are added to a Disk instance. The
// Disk type saves and loads values in a plain text file, one key/value pair per
// line:
//
//	tas.maxTimeScale :: 10
//
// Values can be overridden from the command line by pushing a prefs string
// onto the command line stack before the values are added to the Disk. For
// example:
//
//	prefs.PushCommandLineStack("tas.maxTimeScale::2; tas.modifier::RAlt")
//
// Values that come from the command line are never written to disk.
package prefs
