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

// Package assert contains checks that are only useful while debugging or to
// catch programming errors. A failed check panics.
package assert

import (
	"bytes"
	"fmt"
	"runtime"
	"strconv"
)

// GetGoRoutineID returns an identifier for a goroutine. The result is
// different between goroutines and consistent for a given goroutine. It
// should only be used for debugging or testing purposes.
func GetGoRoutineID() uint64 {
	b := make([]byte, 64)
	b = b[:runtime.Stack(b, false)]
	b = bytes.TrimPrefix(b, []byte("goroutine "))
	b = b[:bytes.IndexByte(b, ' ')]
	n, _ := strconv.ParseUint(string(b), 10, 64)
	return n
}

// Goroutine identifies the goroutine that owns a resource.
type Goroutine uint64

// Owner returns the Goroutine value for the calling goroutine.
func Owner() Goroutine {
	return Goroutine(GetGoRoutineID())
}

// Check panics if the calling goroutine is not the owner. The name is used
// in the panic message.
func (g Goroutine) Check(name string) {
	if id := GetGoRoutineID(); id != uint64(g) {
		panic(fmt.Sprintf("%s called from goroutine %d but is owned by goroutine %d", name, id, uint64(g)))
	}
}
