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

import (
	"database/sql"
	"fmt"
	"io"
	"io/fs"
	"os"
	"sort"

	"github.com/jetsetilly/tasharness/curated"
)

// Sentinal error patterns.
const (
	NotAvailable   = "database: not available (%s): %v"
	SessionError   = "database: %s: %v"
	KeyError       = "database: key not available (%d)"
	DuplicateType  = "database: duplicate entry type (%s)"
	UnknownType    = "database: unknown entry type (%s) for key %d"
	TooManyEntries = "database: maximum entries exceeded (max %d)"
	ReadOnly       = "database: session is read only"
)

// arbitrary maximum number of entries.
const maxEntries = 1000

// Activity describes what will be happening during a session.
type Activity int

// List of valid Activity values.
const (
	ActivityReading Activity = iota
	ActivityModifying
	ActivityCreating
)

// Session is an open database.
type Session struct {
	dsn      string
	db       *sql.DB
	activity Activity

	entries    map[int]Entry
	entryTypes map[string]Deserialiser
}

// StartSession opens the database and reads every entry. The init function
// is called before entries are read and should register entry types.
func StartSession(dsn string, activity Activity, init func(*Session) error) (*Session, error) {
	if activity != ActivityCreating && !IsMemory(dsn) {
		if _, err := os.Stat(dsn); err != nil {
			return nil, curated.Errorf(NotAvailable, dsn, fs.ErrNotExist)
		}
	}

	sdb, err := Open(dsn)
	if err != nil {
		return nil, curated.Errorf(NotAvailable, dsn, err)
	}

	err = Migrate(sdb, `CREATE TABLE IF NOT EXISTS entries (
		key INTEGER PRIMARY KEY,
		id TEXT NOT NULL,
		data BLOB NOT NULL
	)`)
	if err != nil {
		sdb.Close()
		return nil, curated.Errorf(NotAvailable, dsn, err)
	}

	db := &Session{
		dsn:        dsn,
		db:         sdb,
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	if init != nil {
		if err := init(db); err != nil {
			sdb.Close()
			return nil, err
		}
	}

	if err := db.read(); err != nil {
		sdb.Close()
		return nil, err
	}

	return db, nil
}

func (db *Session) read() error {
	rows, err := db.db.Query(`SELECT key, id, data FROM entries ORDER BY key`)
	if err != nil {
		return curated.Errorf(SessionError, db.dsn, err)
	}
	defer rows.Close()

	for rows.Next() {
		var key int
		var id string
		var data []byte
		if err := rows.Scan(&key, &id, &data); err != nil {
			return curated.Errorf(SessionError, db.dsn, err)
		}

		des, ok := db.entryTypes[id]
		if !ok {
			return curated.Errorf(UnknownType, id, key)
		}

		ent, err := des(key, data)
		if err != nil {
			return curated.Errorf(SessionError, db.dsn, err)
		}
		db.entries[key] = ent
	}

	return rows.Err()
}

// EndSession closes the database. Entries are written to the database if
// commitChanges is true and the session was not started with
// ActivityReading.
func (db *Session) EndSession(commitChanges bool) error {
	defer db.db.Close()

	if !commitChanges || db.activity == ActivityReading {
		return nil
	}

	tx, err := db.db.Begin()
	if err != nil {
		return curated.Errorf(SessionError, db.dsn, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM entries`); err != nil {
		return curated.Errorf(SessionError, db.dsn, err)
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]
		data, err := ent.Serialise()
		if err != nil {
			return curated.Errorf(SessionError, db.dsn, err)
		}
		_, err = tx.Exec(`INSERT INTO entries (key, id, data) VALUES (?, ?, ?)`, key, ent.ID(), []byte(data))
		if err != nil {
			return curated.Errorf(SessionError, db.dsn, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return curated.Errorf(SessionError, db.dsn, err)
	}

	return nil
}

// RegisterEntryType tells the database what entries it may expect in the
// database and what to do when it encounters one.
func (db *Session) RegisterEntryType(id string, des Deserialiser) error {
	if _, ok := db.entryTypes[id]; ok {
		return curated.Errorf(DuplicateType, id)
	}
	db.entryTypes[id] = des
	return nil
}

// NumEntries returns the number of entries in the database.
func (db *Session) NumEntries() int {
	return len(db.entries)
}

// SortedKeyList returns a sorted list of database keys.
func (db *Session) SortedKeyList() []int {
	keyList := make([]int, 0, len(db.entries))
	for k := range db.entries {
		keyList = append(keyList, k)
	}
	sort.Ints(keyList)
	return keyList
}

// List the entries in key order.
func (db *Session) List(output io.Writer) error {
	if db.NumEntries() == 0 {
		_, err := io.WriteString(output, "database is empty\n")
		return err
	}

	for _, key := range db.SortedKeyList() {
		if _, err := fmt.Fprintf(output, "%03d %s\n", key, db.entries[key]); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "Total: %d\n", db.NumEntries())
	return err
}

// Add an entry to the db. Returns the key of the new entry.
func (db *Session) Add(ent Entry) (int, error) {
	if db.activity == ActivityReading {
		return -1, curated.Errorf(ReadOnly)
	}

	var key int

	// find spare key
	for key = 0; key < maxEntries; key++ {
		if _, ok := db.entries[key]; !ok {
			break
		}
	}

	if key == maxEntries {
		return -1, curated.Errorf(TooManyEntries, maxEntries)
	}

	db.entries[key] = ent

	return key, nil
}

// Delete deletes the entry with the specified key.
func (db *Session) Delete(key int) error {
	if db.activity == ActivityReading {
		return curated.Errorf(ReadOnly)
	}

	ent, ok := db.entries[key]
	if !ok {
		return curated.Errorf(KeyError, key)
	}

	if err := ent.CleanUp(); err != nil {
		return curated.Errorf(SessionError, db.dsn, err)
	}

	delete(db.entries, key)

	return nil
}

// Get returns the entry with the specified key.
func (db *Session) Get(key int) (Entry, error) {
	ent, ok := db.entries[key]
	if !ok {
		return nil, curated.Errorf(KeyError, key)
	}
	return ent, nil
}
