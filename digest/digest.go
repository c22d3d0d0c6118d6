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
	"encoding/hex"
	"encoding/json"

	"github.com/gowebpki/jcs"

	"github.com/jetsetilly/tasharness/curated"
)

// Digest implementations compute a running fingerprint.
type Digest interface {
	Hash() string
	ResetDigest()
}

// Sentinal error patterns.
const (
	EncodeError = "digest: encode: %v"
)

// Canonical returns the RFC 8785 canonical JSON form of the value.
func Canonical(v any) ([]byte, error) {
	raw, err := json.Marshal(v)
	if err != nil {
		return nil, curated.Errorf(EncodeError, err)
	}
	c, err := jcs.Transform(raw)
	if err != nil {
		return nil, curated.Errorf(EncodeError, err)
	}
	return c, nil
}

// Of returns the sha256 fingerprint of the canonical JSON form of the value,
// as a hex string.
func Of(v any) (string, error) {
	c, err := Canonical(v)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(c)
	return hex.EncodeToString(sum[:]), nil
}
