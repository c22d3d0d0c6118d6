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

import "github.com/jetsetilly/tasharness/userinput"

// Surface is the area the subject draws to.
type Surface interface {
	Size() (width int, height int)
}

// Subject is the simulation being recorded. The type parameter is the type of
// the subject's saved state.
//
// The value returned by Save() must not share any memory with the subject.
// Similarly, Load() must not keep a reference to its argument.
type Subject[S any] interface {
	Save() S
	Load(state S)

	// Update() and FixedUpdate() are both called once per tick with the fixed
	// delta time
	Update(dt float64)
	FixedUpdate(dt float64)

	Draw(surface Surface)
	HandleEvent(ev userinput.Event)
}

// Transport connects the Controller to the host's input state.
type Transport interface {
	// whether the key is physically held down
	IsKeyHeld(key userinput.Key) bool

	// the keys and buttons that are held in the simulation. the sets are
	// owned by the Transport after the call
	SetPressedKeys(keys userinput.KeySet)
	SetPressedButtons(buttons userinput.ButtonSet)
}

// Headless is a Transport for when there is no host. The modifier key is never
// held so capture mode is never entered.
type Headless struct {
	Keys    userinput.KeySet
	Buttons userinput.ButtonSet
}

// IsKeyHeld implements the Transport interface.
func (h *Headless) IsKeyHeld(_ userinput.Key) bool {
	return false
}

// Pressed returns true if the key is held in the simulation.
func (h *Headless) Pressed(key userinput.Key) bool {
	return h.Keys.Has(key)
}

// SetPressedKeys implements the Transport interface.
func (h *Headless) SetPressedKeys(keys userinput.KeySet) {
	h.Keys = keys
}

// SetPressedButtons implements the Transport interface.
func (h *Headless) SetPressedButtons(buttons userinput.ButtonSet) {
	h.Buttons = buttons
}
