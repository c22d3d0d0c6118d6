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

package tas

import (
	"fmt"

	"github.com/jetsetilly/tasharness/prefs"
)

// List of values for the StatesBackend preference.
const (
	BackendJSON   = "json"
	BackendSQLite = "sqlite"
	BackendMemory = "memory"
)

// Preferences for the Controller.
type Preferences struct {
	dsk *prefs.Disk

	// the run file used by the save run and start replay commands
	SaveFile prefs.String

	// where and how checkpoints are stored. an empty StatesFile means the
	// checkpoints are kept in memory only
	StatesFile    prefs.String
	StatesBackend prefs.String

	MaxTimeScale  prefs.Float
	TimeScaleStep prefs.Float

	// the key that enters capture mode while held
	Modifier prefs.String

	// YAML file of capture mode bindings. an empty value means the default
	// bindings are used
	BindingsFile prefs.String

	StartPaused prefs.Bool
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the Preferences
// type. If path is empty then preferences are not loaded or saved.
func NewPreferences(path string) (*Preferences, error) {
	p := &Preferences{}
	p.SetDefaults()

	p.StatesBackend.SetHookPre(func(v prefs.Value) error {
		switch v.(string) {
		case BackendJSON, BackendSQLite, BackendMemory:
			return nil
		}
		return fmt.Errorf("unknown checkpoint backend (%v)", v)
	})
	p.MaxTimeScale.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("maximum time scale must be positive")
		}
		return nil
	})
	p.TimeScaleStep.SetHookPre(func(v prefs.Value) error {
		if v.(float64) <= 0 {
			return fmt.Errorf("time scale step must be positive")
		}
		return nil
	})
	p.Modifier.SetHookPre(func(v prefs.Value) error {
		if v.(string) == "" {
			return fmt.Errorf("modifier key must not be empty")
		}
		return nil
	})

	var err error
	p.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("tas.saveFile", &p.SaveFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tas.statesFile", &p.StatesFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tas.statesBackend", &p.StatesBackend)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tas.maxTimeScale", &p.MaxTimeScale)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tas.timeScaleStep", &p.TimeScaleStep)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tas.modifier", &p.Modifier)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tas.bindingsFile", &p.BindingsFile)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("tas.startPaused", &p.StartPaused)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(true)
	if err != nil {
		return nil, err
	}

	return p, nil
}

// SetDefaults reverts all preferences to their default values.
func (p *Preferences) SetDefaults() {
	p.SaveFile.Set("tas.json")
	p.StatesFile.Set("savedstates.json")
	p.StatesBackend.Set(BackendJSON)
	p.MaxTimeScale.Set(10.0)
	p.TimeScaleStep.Set(0.05)
	p.Modifier.Set("LAlt")
	p.BindingsFile.Set("")
	p.StartPaused.Set(true)
}

// Load preferences from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
