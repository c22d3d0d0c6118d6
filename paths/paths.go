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

package paths

import (
	"os"
	"path/filepath"
)

// the name of the resource directory. used directly if it exists in the
// current working directory, otherwise it is placed in the user's
// configuration directory without the leading dot.
const baseResourcePath = ".tasharness"

// ResourcePath returns the path to a resource file in a sub-directory of the
// resource directory. The sub-directory is created if it does not exist. An
// empty subPth or file argument is ignored.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := getBasePath()
	if err != nil {
		return "", err
	}

	dir := filepath.Join(base, subPth)
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", err
	}

	return filepath.Join(dir, file), nil
}

// getBasePath returns baseResourcePath if it exists in the current directory.
// Otherwise the user's configuration directory is used.
func getBasePath() (string, error) {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, baseResourcePath[1:]), nil
}
