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

package prefs

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/fsx"
)

// DefaultPrefsFile is the default filename of the global preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is inserted at the beginning of a preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// separator between key and value in a preferences file.
const separator = " :: "

// Sentinal error patterns.
const (
	NoPrefsFile    = "prefs: no prefs file (%s)"
	DuplicateKey   = "prefs: duplicate key (%s)"
	LoadError      = "prefs: load: %v"
	SaveError      = "prefs: save: %v"
	ValueError     = "prefs: value for %s: %v"
	InvalidPrefsFn = "prefs: %s is not a valid preferences file"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref

	// keys that have had their value set from the command line stack. these
	// values are not written to disk and take precedence over values loaded
	// from disk
	override map[string]Value
}

func (dsk Disk) String() string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

// NewDisk is the preferred method of initialisation for the Disk type. An
// empty path is allowed in which case Load() and Save() do nothing.
func NewDisk(path string) (*Disk, error) {
	dsk := &Disk{
		path:     path,
		entries:  make(map[string]pref),
		override: make(map[string]Value),
	}
	return dsk, nil
}

// Add preference value to list of values to store/load from Disk. If a value
// for the key is present in the current command line group then it is used
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(ValueError, key, err)
		}
		dsk.override[key] = v
	}

	return nil
}

// Reset all entries to their default (zero) values. Values set from the
// command line are retained.
func (dsk *Disk) Reset() error {
	for k, p := range dsk.entries {
		if _, ok := dsk.override[k]; ok {
			continue
		}
		if err := p.Reset(); err != nil {
			return curated.Errorf(ValueError, k, err)
		}
	}
	return nil
}

// read the preferences file into a map of key/value strings.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(LoadError, err)
	}
	defer f.Close()

	m := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// first line should be the boiler plate warning
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefsFn, dsk.path)
	}

	for scanner.Scan() {
		k, v, ok := strings.Cut(scanner.Text(), separator)
		if !ok {
			continue
		}
		m[strings.TrimSpace(k)] = strings.TrimSpace(v)
	}
	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	return m, nil
}

// Load preference values from disk. If the file doesn't exist then the
// NoPrefsFile error is returned unless saveOnFail is true, in which case the
// current values are written to a new file.
//
// Entries in the file that have not been added to the Disk are ignored but
// are preserved when the file is next saved.
func (dsk *Disk) Load(saveOnFail bool) error {
	if dsk.path == "" {
		return nil
	}

	m, err := dsk.read()
	if err != nil {
		if saveOnFail && curated.Is(err, NoPrefsFile) {
			return dsk.Save()
		}
		return err
	}

	for k, v := range m {
		p, ok := dsk.entries[k]
		if !ok {
			continue
		}
		if _, ok := dsk.override[k]; ok {
			continue
		}
		if err := p.Set(v); err != nil {
			return curated.Errorf(ValueError, k, err)
		}
	}

	return nil
}

// Save current preference values to disk. Existing entries in the file that
// are not known to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	if dsk.path == "" {
		return nil
	}

	m, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return curated.Errorf(SaveError, err)
		}
		m = make(map[string]string)
	}

	for k, p := range dsk.entries {
		if _, ok := dsk.override[k]; ok {
			continue
		}
		m[k] = p.String()
	}

	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, m[k]))
	}

	if err := fsx.WriteFileAtomic(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(SaveError, err)
	}

	return nil
}
