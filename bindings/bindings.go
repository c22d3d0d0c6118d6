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

package bindings

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/userinput"
)

// Sentinal error patterns.
const (
	LoadError      = "bindings: load %s: %v"
	UnknownCommand = "bindings: unknown command (%s) for key %s"
	EncodeError    = "bindings: encode: %v"
)

// Command is the name of an action performed in capture mode.
type Command string

// List of valid commands.
const (
	SaveRun      Command = "saveRun"
	SaveState    Command = "saveState"
	LoadLatest   Command = "loadLatest"
	TogglePause  Command = "togglePause"
	SlowDown     Command = "slowDown"
	SpeedUp      Command = "speedUp"
	StartReplay  Command = "startReplay"
	UndoLoad     Command = "undoLoad"
	DeleteLatest Command = "deleteLatest"

	// unbinds a key when used in a bindings file
	none Command = "none"
)

var commands = []Command{
	SaveRun, SaveState, LoadLatest, TogglePause, SlowDown, SpeedUp,
	StartReplay, UndoLoad, DeleteLatest,
}

// Bindings maps a key to a Command.
type Bindings map[userinput.Key]Command

// Default returns the default bindings.
func Default() Bindings {
	return Bindings{
		"S":                SaveRun,
		"K":                SaveState,
		"L":                LoadLatest,
		"P":                TogglePause,
		userinput.KeyLeft:  SlowDown,
		userinput.KeyRight: SpeedUp,
		"R":                StartReplay,
		"U":                UndoLoad,
		"X":                DeleteLatest,
	}
}

// Lookup the command bound to the key.
func (b Bindings) Lookup(key userinput.Key) (Command, bool) {
	c, ok := b[key]
	return c, ok
}

func (b Bindings) String() string {
	s := strings.Builder{}
	for _, k := range slices.Sorted(maps.Keys(b)) {
		if s.Len() > 0 {
			s.WriteString(", ")
		}
		s.WriteString(fmt.Sprintf("%s=%s", k, b[k]))
	}
	return s.String()
}

// Load the bindings file at path and merge it over the default bindings. If
// allowMissing is true then a missing file results in the default bindings
// and no error.
func Load(path string, allowMissing bool) (Bindings, error) {
	b := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if allowMissing && errors.Is(err, fs.ErrNotExist) {
			return b, nil
		}
		return nil, curated.Errorf(LoadError, path, err)
	}

	if err := b.merge(data); err != nil {
		return nil, curated.Errorf(LoadError, path, err)
	}

	return b, nil
}

func (b Bindings) merge(data []byte) error {
	var m map[string]string
	if err := yaml.Unmarshal(data, &m); err != nil {
		return err
	}

	for k, v := range m {
		key := userinput.NormaliseKey(k)
		cmd := Command(strings.TrimSpace(v))
		if cmd == none {
			delete(b, key)
			continue
		}
		if !slices.Contains(commands, cmd) {
			return curated.Errorf(UnknownCommand, cmd, key)
		}
		b[key] = cmd
	}

	return nil
}

// Encode writes the bindings to w in the format read by Load().
func (b Bindings) Encode(w io.Writer) error {
	m := make(map[string]string, len(b))
	for k, v := range b {
		m[string(k)] = string(v)
	}
	data, err := yaml.Marshal(m)
	if err != nil {
		return curated.Errorf(EncodeError, err)
	}
	if _, err := w.Write(data); err != nil {
		return curated.Errorf(EncodeError, err)
	}
	return nil
}
