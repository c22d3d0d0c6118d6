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

package database_test

import (
	"errors"
	"io/fs"
	"path/filepath"
	"testing"

	"github.com/jetsetilly/tasharness/database"
	"github.com/jetsetilly/tasharness/test"
)

type note struct {
	text    string
	cleaned *int
}

func (n *note) ID() string {
	return "note"
}

func (n *note) String() string {
	return n.text
}

func (n *note) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry(n.text), nil
}

func (n *note) CleanUp() error {
	if n.cleaned != nil {
		*n.cleaned++
	}
	return nil
}

func initNotes(db *database.Session) error {
	return db.RegisterEntryType("note", func(_ int, data database.SerialisedEntry) (database.Entry, error) {
		return &note{text: string(data)}, nil
	})
}

func TestSession(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	_, err := database.StartSession(path, database.ActivityReading, initNotes)
	test.ExpectFailure(t, err)
	test.ExpectSuccess(t, errors.Is(err, fs.ErrNotExist))

	db, err := database.StartSession(path, database.ActivityCreating, initNotes)
	test.DemandSuccess(t, err)
	test.ExpectFailure(t, db.RegisterEntryType("note", nil))

	for _, s := range []string{"foo", "bar", "baz"} {
		_, err := db.Add(&note{text: s})
		test.DemandSuccess(t, err)
	}
	test.ExpectEquality(t, db.NumEntries(), 3)
	test.DemandSuccess(t, db.EndSession(true))

	db, err = database.StartSession(path, database.ActivityModifying, initNotes)
	test.DemandSuccess(t, err)
	test.DemandEquality(t, db.NumEntries(), 3)

	cleaned := 0
	ent, err := db.Get(1)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, ent.String(), "bar")
	ent.(*note).cleaned = &cleaned

	test.DemandSuccess(t, db.Delete(1))
	test.ExpectEquality(t, cleaned, 1)
	test.ExpectFailure(t, db.Delete(1))

	// the lowest spare key is reused
	key, err := db.Add(&note{text: "qux"})
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.DemandSuccess(t, db.EndSession(true))

	db, err = database.StartSession(path, database.ActivityReading, initNotes)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	w := &test.Writer{}
	test.DemandSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "000 foo\n001 qux\n002 baz\nTotal: 3\n")

	_, err = db.Add(&note{text: "read only"})
	test.ExpectFailure(t, err)
}

func TestSelect(t *testing.T) {
	db, err := database.StartSession(":memory:", database.ActivityCreating, initNotes)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	for _, s := range []string{"a", "b", "c", "d"} {
		_, err := db.Add(&note{text: s})
		test.DemandSuccess(t, err)
	}

	var selected string
	collect := func(_ int, ent database.Entry) error {
		selected += ent.String()
		return nil
	}

	_, err = db.SelectAll(collect)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, selected, "abcd")

	selected = ""
	last, err := db.SelectKeys(collect, 3, 1, 10)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, selected, "db")
	test.ExpectEquality(t, last.String(), "b")

	stop := errors.New("stop")
	selected = ""
	_, err = db.SelectAll(func(key int, ent database.Entry) error {
		selected += ent.String()
		if key == 1 {
			return stop
		}
		return nil
	})
	test.ExpectSuccess(t, errors.Is(err, stop))
	test.ExpectEquality(t, selected, "ab")
}

func TestUnknownType(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.db")

	db, err := database.StartSession(path, database.ActivityCreating, initNotes)
	test.DemandSuccess(t, err)
	_, err = db.Add(&note{text: "foo"})
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, db.EndSession(true))

	_, err = database.StartSession(path, database.ActivityReading, nil)
	test.ExpectFailure(t, err)
}
