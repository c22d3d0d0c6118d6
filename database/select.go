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

package database

// SelectAll entries in the database in key order. onSelect can be nil.
//
// The select process stops if onSelect() returns an error. Returns the last
// matched entry in the selection and any error.
func (db *Session) SelectAll(onSelect func(key int, ent Entry) error) (Entry, error) {
	return db.SelectKeys(onSelect)
}

// SelectKeys matches entries with the specified key(s). If the list of keys
// is empty then all entries are matched. Keys that are not in the database
// are ignored. onSelect can be nil.
//
// The select process stops if onSelect() returns an error. Returns the last
// matched entry in the selection and any error.
func (db *Session) SelectKeys(onSelect func(key int, ent Entry) error, keys ...int) (Entry, error) {
	var entry Entry

	if onSelect == nil {
		onSelect = func(_ int, _ Entry) error { return nil }
	}

	keyList := keys
	if len(keyList) == 0 {
		keyList = db.SortedKeyList()
	}

	for _, key := range keyList {
		ent, ok := db.entries[key]
		if !ok {
			continue
		}
		entry = ent
		if err := onSelect(key, ent); err != nil {
			return entry, err
		}
	}

	return entry, nil
}
