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

// Package bindings maps keys to the commands available in capture mode.
//
// The default bindings can be changed with a YAML file containing a mapping
// of key name to command name. Keys not mentioned in the file keep their
// default binding. A key can be unbound with the command "none". For example:
//
//	S: saveState
//	K: none
//	F5: saveRun
package bindings
