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

package curated_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestDuplicateParts(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf("test error: %v", e)
	test.ExpectEquality(t, f.Error(), "test error: foo")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.Is(e, testError))
	test.ExpectSuccess(t, curated.IsAny(e))

	f := curated.Errorf(wrapError, e)
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectSuccess(t, curated.Has(f, wrapError))

	test.ExpectFailure(t, curated.IsAny(errors.New("plain")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapError, fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	f := curated.Errorf(wrapError, e)
	test.ExpectSuccess(t, errors.Is(f, fs.ErrNotExist))

	g := curated.Errorf(testError, "no error value")
	test.ExpectFailure(t, errors.Is(g, fs.ErrNotExist))
}

func TestWrappedByStandardLibrary(t *testing.T) {
	e := curated.Errorf(wrapError, curated.Errorf(testError, "foo"))
	f := fmt.Errorf("adding: %w", e)

	test.ExpectSuccess(t, curated.IsAny(f))
	test.ExpectSuccess(t, curated.Is(f, wrapError))
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectFailure(t, curated.Has(fmt.Errorf("adding: %v", e), testError))
}
