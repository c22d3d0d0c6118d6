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

package random_test

import (
	"testing"

	"github.com/jetsetilly/tasharness/random"
	"github.com/jetsetilly/tasharness/test"
)

type ticker struct {
	tick int
}

func (t *ticker) Tick() int {
	return t.tick
}

func TestRandom(t *testing.T) {
	tk := &ticker{tick: 100}
	a := random.NewRandom(tk, 42)
	b := random.NewRandom(tk, 42)

	for i := 1; i < 256; i++ {
		test.ExpectEquality(t, a.Intn(i, 0), b.Intn(i, 0))
	}

	// the same number is returned for the same tick
	v := a.Intn(1000000, 1)
	test.ExpectEquality(t, a.Intn(1000000, 1), v)

	// the number changes with the tick
	var different bool
	for range 10 {
		tk.tick++
		if a.Intn(1000000, 1) != v {
			different = true
		}
	}
	test.ExpectSuccess(t, different)
}
