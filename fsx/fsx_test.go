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

package fsx_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/fsx"
	"github.com/jetsetilly/tasharness/test"
)

func TestWriteFileAtomic(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "nested", "file.json")

	err := fsx.WriteFileAtomic(pth, []byte("first"), 0o600)
	test.DemandSuccess(t, err)

	data, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "first")

	// overwrite
	err = fsx.WriteFileAtomic(pth, []byte("second"), 0o600)
	test.DemandSuccess(t, err)

	data, err = os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), "second")

	// no temporary files are left behind
	entries, err := os.ReadDir(filepath.Dir(pth))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, len(entries), 1)
}

func TestWriteFileAtomicFailure(t *testing.T) {
	dir := t.TempDir()

	// parent is a file so the directory cannot be created
	blocker := filepath.Join(dir, "blocker")
	test.DemandSuccess(t, os.WriteFile(blocker, []byte{}, 0o600))

	err := fsx.WriteFileAtomic(filepath.Join(blocker, "file.json"), []byte("x"), 0o600)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, curated.Is(err, fsx.CreateError))
}
