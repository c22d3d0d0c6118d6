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

// SerialisedEntry is the serialised form of an Entry. The format is decided
// by the entry type.
type SerialisedEntry []byte

// Entry represents the generic entry in the database.
type Entry interface {
	// ID returns the string that is used to identify the entry type in the
	// database
	ID() string

	// String should return information about the entry in a human readable
	// format. by contrast, machine readable representation is returned by the
	// Serialise function
	String() string

	// return the Entry data as an instance of SerialisedEntry
	Serialise() (SerialisedEntry, error)

	// a cleanup is performed when the entry is deleted from the database
	CleanUp() error
}

// Deserialiser creates an Entry from its serialised form.
type Deserialiser func(key int, data SerialisedEntry) (Entry, error)
