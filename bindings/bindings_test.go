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

package bindings_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/tasharness/bindings"
	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/test"
	"github.com/jetsetilly/tasharness/userinput"
)

func TestDefault(t *testing.T) {
	b := bindings.Default()

	c, ok := b.Lookup("S")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, bindings.SaveRun)

	c, ok = b.Lookup(userinput.KeyLeft)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, bindings.SlowDown)

	_, ok = b.Lookup("Q")
	test.ExpectFailure(t, ok)
}

func TestLoad(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "bindings.yaml")

	// missing file
	b, err := bindings.Load(pth, true)
	test.DemandSuccess(t, err)
	require.Equal(t, bindings.Default(), b)

	_, err = bindings.Load(pth, false)
	test.ExpectSuccess(t, curated.Is(err, bindings.LoadError))

	content := "s: saveState\nK: none\nF5: saveRun\n"
	test.DemandSuccess(t, os.WriteFile(pth, []byte(content), 0o644))

	b, err = bindings.Load(pth, false)
	test.DemandSuccess(t, err)

	c, ok := b.Lookup("S")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, bindings.SaveState)

	_, ok = b.Lookup("K")
	test.ExpectFailure(t, ok)

	c, ok = b.Lookup("F5")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, bindings.SaveRun)

	// unchanged default
	c, ok = b.Lookup("P")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, c, bindings.TogglePause)
}

func TestUnknownCommand(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "bindings.yaml")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("S: explode\n"), 0o644))

	_, err := bindings.Load(pth, false)
	test.ExpectSuccess(t, curated.Has(err, bindings.UnknownCommand))
}

func TestEncode(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "bindings.yaml")

	f, err := os.Create(pth)
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, bindings.Default().Encode(f))
	test.DemandSuccess(t, f.Close())

	b, err := bindings.Load(pth, false)
	test.DemandSuccess(t, err)
	require.Equal(t, bindings.Default(), b)
}
