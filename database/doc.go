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

// Package database is a simple way of storing arbitrary entry types in a
// SQLite database. Entries are keyed by a small integer and each entry type
// is identified by a string ID.
//
// Use of a database requires starting a "session". We do this with the
// StartSession() function, coupled with an EndSession() once we're done. For
// example (error handling removed for clarity):
//
//	db, _ := database.StartSession(dbPath, database.ActivityCreating, initDBSession)
//	defer db.EndSession(true)
//
// The first argument is the path to the database file. The second argument
// describes the activity that will be happening during the session. With
// ActivityCreating the database will be created if it does not already exist.
// With ActivityModifying and ActivityReading the database must already exist.
// Changes made during an ActivityReading session are never committed.
//
// The third argument is the initialisation function. It is called with the
// new session before any entries are read and should register the entry
// types that may be found in the database:
//
//	func initDBSession(db *database.Session) error {
//		return db.RegisterEntryType("foo", deserialiseFoo)
//	}
//
// The deserialiser is given the serialised data of the entry, as returned by
// the Serialise() function of the Entry interface.
//
// Once a session has started, entries can be added, removed and selected.
//
// The Open() and Migrate() functions are also used by other packages that
// keep their own tables in a SQLite database.
package database
