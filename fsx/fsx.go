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

package fsx

import (
	"os"
	"path/filepath"
	"runtime"

	"github.com/jetsetilly/tasharness/curated"
)

// Sentinal error patterns returned by WriteFileAtomic.
const (
	CreateError = "fsx: create: %v"
	WriteError  = "fsx: write: %v"
	RenameError = "fsx: rename: %v"
)

// WriteFileAtomic writes content to a temporary file in the same directory as
// path and then renames it into place. The parent directory is created if it
// does not exist.
func WriteFileAtomic(path string, content []byte, mode os.FileMode) error {
	parent := filepath.Dir(path)
	base := filepath.Base(path)

	if err := os.MkdirAll(parent, 0o700); err != nil {
		return curated.Errorf(CreateError, err)
	}

	tmp, err := os.CreateTemp(parent, "."+base+".tmp-*")
	if err != nil {
		return curated.Errorf(CreateError, err)
	}
	tmpPath := tmp.Name()

	// remove temporary file unless the rename succeeds
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tmpPath)
		}
	}()

	if _, err := tmp.Write(content); err != nil {
		_ = tmp.Close()
		return curated.Errorf(WriteError, err)
	}
	if err := tmp.Sync(); err != nil {
		_ = tmp.Close()
		return curated.Errorf(WriteError, err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return curated.Errorf(WriteError, err)
	}
	if err := tmp.Close(); err != nil {
		return curated.Errorf(WriteError, err)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		if runtime.GOOS != "windows" {
			return curated.Errorf(RenameError, err)
		}

		// windows will not rename over an existing file
		if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
			return curated.Errorf(RenameError, err)
		}
		if err := os.Rename(tmpPath, path); err != nil {
			return curated.Errorf(RenameError, err)
		}
	}
	cleanup = false

	if d, err := os.Open(parent); err == nil {
		_ = d.Sync()
		_ = d.Close()
	}

	return nil
}
