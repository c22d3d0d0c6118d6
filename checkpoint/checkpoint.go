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
	"fmt"

	"github.com/google/uuid"

	"github.com/jetsetilly/tasharness/eventlog"
	"github.com/jetsetilly/tasharness/userinput"
)

// Checkpoint is a restorable snapshot of the subject. The type parameter is
// the type of the subject's saved state.
type Checkpoint[S any] struct {
	ID    uuid.UUID `json:"id"`
	Label string    `json:"label,omitempty"`

	// number of ticks since the start of the recording
	Frame int `json:"frame"`

	// the input log from the start of the recording up to Frame
	Inputs eventlog.Log `json:"inputs"`

	PressedKeys    userinput.KeySet    `json:"pressed_keys"`
	PressedButtons userinput.ButtonSet `json:"pressed_buttons"`

	// the state the recording started from. a checkpoint can be used to seed
	// a new run file
	InitialState S `json:"initial_state"`

	State S `json:"state"`
}

// New creates a checkpoint with a new ID. The log and held sets are copied.
func New[S any](frame int, inputs eventlog.Log, held userinput.Held, initial S, state S) Checkpoint[S] {
	return Checkpoint[S]{
		ID:             uuid.New(),
		Frame:          frame,
		Inputs:         inputs.Clone(),
		PressedKeys:    held.Keys.Clone(),
		PressedButtons: held.Buttons.Clone(),
		InitialState:   initial,
		State:          state,
	}
}

func (cp Checkpoint[S]) String() string {
	id := cp.ID.String()[:8]
	if cp.Label != "" {
		return fmt.Sprintf("%s %s (frame %d)", id, cp.Label, cp.Frame)
	}
	return fmt.Sprintf("%s (frame %d)", id, cp.Frame)
}

// Held returns a copy of the held sets in the checkpoint.
func (cp Checkpoint[S]) Held() userinput.Held {
	return userinput.Held{
		Keys:    cp.PressedKeys.Clone(),
		Buttons: cp.PressedButtons.Clone(),
	}
}
