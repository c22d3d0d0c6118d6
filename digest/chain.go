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

package digest

import (
	"crypto/sha256"
	"fmt"
)

// Chain is a running fingerprint of a sequence of values. The fingerprint of
// each value is chained with the previous fingerprint.
type Chain struct {
	digest [sha256.Size]byte
	count  int
}

// Add the value to the chain.
func (ch *Chain) Add(v any) error {
	c, err := Canonical(v)
	if err != nil {
		return err
	}

	// the previous digest is prepended to the data for the new digest
	b := make([]byte, 0, len(ch.digest)+len(c))
	b = append(b, ch.digest[:]...)
	b = append(b, c...)
	ch.digest = sha256.Sum256(b)
	ch.count++

	return nil
}

// Count returns the number of values that have been added since the last
// reset.
func (ch *Chain) Count() int {
	return ch.count
}

// Hash implements the Digest interface.
func (ch *Chain) Hash() string {
	return fmt.Sprintf("%x", ch.digest)
}

// ResetDigest implements the Digest interface.
func (ch *Chain) ResetDigest() {
	clear(ch.digest[:])
	ch.count = 0
}
