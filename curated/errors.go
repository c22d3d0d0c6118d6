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

package curated

import (
	"errors"
	"fmt"
	"strings"
)

// curated is an implementation of the go language error interface.
type curated struct {
	pattern string
	values  []any
}

// Errorf creates a new curated error.
//
// The first argument is named "pattern" rather than "format" because the
// unformatted string is what the Is() and Has() functions compare against.
func Errorf(pattern string, values ...any) error {
	return curated{
		pattern: pattern,
		values:  values,
	}
}

// Error returns the normalised error message. Adjacent duplicate parts of the
// message chain are removed, so wrapping an error with the same prefix twice
// does not produce a stuttering message.
func (er curated) Error() string {
	p := strings.Split(fmt.Sprintf(er.pattern, er.values...), ": ")
	n := p[:1]
	for _, s := range p[1:] {
		if n[len(n)-1] != s {
			n = append(n, s)
		}
	}
	return strings.Join(n, ": ")
}

// Unwrap returns the first error found in the values of the curated error.
// This allows errors.Is() and errors.As() from the standard library to see
// through a curated error to the error it is wrapping.
func (er curated) Unwrap() error {
	for _, v := range er.values {
		if e, ok := v.(error); ok {
			return e
		}
	}
	return nil
}

// IsAny checks if the error is a curated error or wraps a curated error.
func IsAny(err error) bool {
	var er curated
	return errors.As(err, &er)
}

// Is checks if error is a curated error with a specific pattern. Only the
// outermost curated error is compared.
func Is(err error, pattern string) bool {
	var er curated
	if !errors.As(err, &er) {
		return false
	}
	return er.pattern == pattern
}

// Has checks if error is a curated error with a specific pattern somewhere in
// the chain. Every error value of a curated error is searched, not only the
// one returned by Unwrap().
func Has(err error, pattern string) bool {
	var er curated
	if !errors.As(err, &er) {
		return false
	}

	if er.pattern == pattern {
		return true
	}

	for _, v := range er.values {
		if e, ok := v.(error); ok && Has(e, pattern) {
			return true
		}
	}

	return false
}
