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

// Package paths contains functions to prepare paths for resource files
// (preferences, checkpoint stores, the regression database).
//
// The resource directory is ".tasharness" in the current working directory if
// it exists. Otherwise it is "tasharness" in the user's configuration
// directory (as reported by os.UserConfigDir()).
package paths
