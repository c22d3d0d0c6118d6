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

package regression

import (
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/jetsetilly/tasharness/database"
)

const runEntryID = "run"

// RunRegression is the database entry for a recorded run.
type RunRegression struct {
	// base name of the run file when it was added
	Name  string `json:"name"`
	Notes string `json:"notes,omitempty"`

	// results of the replay when the entry was added
	Frames int    `json:"frames"`
	Digest string `json:"digest"`
	Trace  string `json:"trace"`

	Added time.Time `json:"added"`

	// the run file as it was added
	Run json.RawMessage `json:"run"`
}

// NewRunRegression creates an entry for the run file data. The results are
// filled in by RegressAdd().
func NewRunRegression(path string, data []byte, notes string) *RunRegression {
	return &RunRegression{
		Name:  filepath.Base(path),
		Notes: notes,
		Run:   json.RawMessage(data),
	}
}

func deserialiseRunEntry(_ int, data database.SerialisedEntry) (database.Entry, error) {
	reg := &RunRegression{}
	if err := json.Unmarshal(data, reg); err != nil {
		return nil, fmt.Errorf("run entry: %w", err)
	}
	return reg, nil
}

// ID implements the database.Entry interface.
func (reg *RunRegression) ID() string {
	return runEntryID
}

// String implements the database.Entry interface.
func (reg *RunRegression) String() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%s] %s (%d frames)", reg.ID(), reg.Name, reg.Frames))
	if reg.Notes != "" {
		s.WriteString(fmt.Sprintf(" [%s]", reg.Notes))
	}
	return s.String()
}

// Serialise implements the database.Entry interface.
func (reg *RunRegression) Serialise() (database.SerialisedEntry, error) {
	return json.Marshal(reg)
}

// CleanUp implements the database.Entry interface.
func (reg *RunRegression) CleanUp() error {
	return nil
}
