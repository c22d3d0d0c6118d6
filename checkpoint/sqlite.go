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

package checkpoint

import (
	"database/sql"
	"encoding/json"
	"io/fs"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/database"
)

// Sentinal error patterns.
const (
	OpenError = "checkpoint: open %s: %v"
)

// SQLite stores checkpoints in a table of a SQLite database, one row per
// checkpoint. The table is rewritten in a single transaction on every save.
type SQLite[S any] struct {
	dsn string
	db  *sql.DB
}

// NewSQLite opens (or creates) the database and prepares the table.
func NewSQLite[S any](dsn string) (*SQLite[S], error) {
	db, err := database.Open(dsn)
	if err != nil {
		return nil, curated.Errorf(OpenError, dsn, err)
	}

	s := &SQLite[S]{dsn: dsn, db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, curated.Errorf(OpenError, dsn, err)
	}

	return s, nil
}

func (s *SQLite[S]) migrate() error {
	return database.Migrate(s.db,
		`CREATE TABLE IF NOT EXISTS checkpoints (
			position INTEGER PRIMARY KEY,
			id TEXT NOT NULL UNIQUE,
			frame INTEGER NOT NULL,
			data TEXT NOT NULL,
			saved_at DATETIME NOT NULL DEFAULT CURRENT_TIMESTAMP
		)`,
		`CREATE TABLE IF NOT EXISTS meta (
			key TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	)
}

func (s *SQLite[S]) String() string {
	return s.dsn
}

// Close the database.
func (s *SQLite[S]) Close() error {
	return s.db.Close()
}

// Load implements the Backend interface. If the store has never been saved
// then an error satisfying errors.Is(err, fs.ErrNotExist) is returned.
func (s *SQLite[S]) Load() ([]Checkpoint[S], error) {
	var saved string
	err := s.db.QueryRow(`SELECT value FROM meta WHERE key = 'saved'`).Scan(&saved)
	if err == sql.ErrNoRows {
		return nil, curated.Errorf(NotFound, s.dsn, fs.ErrNotExist)
	}
	if err != nil {
		return nil, curated.Errorf(LoadError, s.dsn, err)
	}

	rows, err := s.db.Query(`SELECT data FROM checkpoints ORDER BY position`)
	if err != nil {
		return nil, curated.Errorf(LoadError, s.dsn, err)
	}
	defer rows.Close()

	// rows are combined into a JSON array so the whole list can be validated
	// in one go
	var raw []json.RawMessage
	for rows.Next() {
		var data string
		if err := rows.Scan(&data); err != nil {
			return nil, curated.Errorf(LoadError, s.dsn, err)
		}
		raw = append(raw, json.RawMessage(data))
	}
	if err := rows.Err(); err != nil {
		return nil, curated.Errorf(LoadError, s.dsn, err)
	}

	if raw == nil {
		raw = []json.RawMessage{}
	}
	data, err := json.Marshal(raw)
	if err != nil {
		return nil, curated.Errorf(CorruptError, s.dsn, err)
	}

	list, err := decode[S](data)
	if err != nil {
		return nil, curated.Errorf(CorruptError, s.dsn, err)
	}

	return list, nil
}

// Save implements the Backend interface.
func (s *SQLite[S]) Save(list []Checkpoint[S]) error {
	tx, err := s.db.Begin()
	if err != nil {
		return curated.Errorf(SaveError, s.dsn, err)
	}
	defer tx.Rollback()

	if _, err := tx.Exec(`DELETE FROM checkpoints`); err != nil {
		return curated.Errorf(SaveError, s.dsn, err)
	}

	for i, cp := range list {
		data, err := json.Marshal(cp)
		if err != nil {
			return curated.Errorf(SaveError, s.dsn, err)
		}
		_, err = tx.Exec(`INSERT INTO checkpoints (position, id, frame, data) VALUES (?, ?, ?, ?)`,
			i, cp.ID.String(), cp.Frame, string(data))
		if err != nil {
			return curated.Errorf(SaveError, s.dsn, err)
		}
	}

	_, err = tx.Exec(`INSERT INTO meta (key, value) VALUES ('saved', CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value`)
	if err != nil {
		return curated.Errorf(SaveError, s.dsn, err)
	}

	if err := tx.Commit(); err != nil {
		return curated.Errorf(SaveError, s.dsn, err)
	}

	return nil
}

