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
	"encoding/json"
	"errors"
	"io/fs"
	"os"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/fsx"
	"github.com/jetsetilly/tasharness/schema"
)

// Sentinal error patterns.
const (
	NotFound     = "checkpoint: %s: %v"
	LoadError    = "checkpoint: load %s: %v"
	CorruptError = "checkpoint: corrupt %s: %v"
	SaveError    = "checkpoint: save %s: %v"
)

// Backend implementations persist the list of checkpoints.
//
// Load() should return an error that satisfies errors.Is(err, fs.ErrNotExist)
// if nothing has been saved yet.
type Backend[S any] interface {
	Load() ([]Checkpoint[S], error)
	Save(list []Checkpoint[S]) error
	String() string
}

func encode[S any](list []Checkpoint[S]) ([]byte, error) {
	if list == nil {
		list = []Checkpoint[S]{}
	}
	return json.MarshalIndent(list, "", "  ")
}

func decode[S any](data []byte) ([]Checkpoint[S], error) {
	if err := schema.Validate(schema.Checkpoints, data); err != nil {
		return nil, err
	}
	var list []Checkpoint[S]
	if err := json.Unmarshal(data, &list); err != nil {
		return nil, err
	}
	return list, nil
}

// JSONFile stores the checkpoints as a JSON array in a single file. The file
// is written atomically.
type JSONFile[S any] struct {
	Path string
}

func (f JSONFile[S]) String() string {
	return f.Path
}

// Load implements the Backend interface.
func (f JSONFile[S]) Load() ([]Checkpoint[S], error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NotFound, f.Path, err)
		}
		return nil, curated.Errorf(LoadError, f.Path, err)
	}

	list, err := decode[S](data)
	if err != nil {
		return nil, curated.Errorf(CorruptError, f.Path, err)
	}

	return list, nil
}

// Save implements the Backend interface.
func (f JSONFile[S]) Save(list []Checkpoint[S]) error {
	data, err := encode(list)
	if err != nil {
		return curated.Errorf(SaveError, f.Path, err)
	}
	if err := fsx.WriteFileAtomic(f.Path, data, 0o644); err != nil {
		return curated.Errorf(SaveError, f.Path, err)
	}
	return nil
}

// Memory keeps the encoded checkpoints in memory. Nothing survives the end of
// the process. The list is encoded on save and decoded on load so loaded
// checkpoints never share memory with saved checkpoints.
type Memory[S any] struct {
	data []byte
}

func (m *Memory[S]) String() string {
	return "memory"
}

// Load implements the Backend interface.
func (m *Memory[S]) Load() ([]Checkpoint[S], error) {
	if m.data == nil {
		return nil, curated.Errorf(NotFound, "memory", fs.ErrNotExist)
	}
	list, err := decode[S](m.data)
	if err != nil {
		return nil, curated.Errorf(CorruptError, "memory", err)
	}
	return list, nil
}

// Save implements the Backend interface.
func (m *Memory[S]) Save(list []Checkpoint[S]) error {
	data, err := encode(list)
	if err != nil {
		return curated.Errorf(SaveError, "memory", err)
	}
	m.data = data
	return nil
}
