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

package userinput

import (
	"encoding/json"
	"maps"
	"slices"
	"strings"
)

// KeySet is a set of keys. The zero value is not ready for use. Use
// NewKeySet() or Clone().
type KeySet map[Key]struct{}

// NewKeySet returns a KeySet containing the specified keys.
func NewKeySet(keys ...Key) KeySet {
	s := make(KeySet, len(keys))
	for _, k := range keys {
		s[k] = struct{}{}
	}
	return s
}

// Has returns true if the key is in the set.
func (s KeySet) Has(k Key) bool {
	_, ok := s[k]
	return ok
}

// Sorted returns the keys in the set in sorted order.
func (s KeySet) Sorted() []Key {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns a copy of the set. The copy of a nil set is an empty set.
func (s KeySet) Clone() KeySet {
	c := make(KeySet, len(s))
	maps.Copy(c, s)
	return c
}

func (s KeySet) String() string {
	k := s.Sorted()
	n := make([]string, len(k))
	for i := range k {
		n[i] = string(k[i])
	}
	return strings.Join(n, "+")
}

// MarshalJSON implements the json.Marshaler interface. The set is written as
// a sorted array.
func (s KeySet) MarshalJSON() ([]byte, error) {
	k := s.Sorted()
	if k == nil {
		k = []Key{}
	}
	return json.Marshal(k)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *KeySet) UnmarshalJSON(b []byte) error {
	var k []Key
	if err := json.Unmarshal(b, &k); err != nil {
		return err
	}
	*s = NewKeySet(k...)
	return nil
}

// ButtonSet is a set of mouse buttons. The zero value is not ready for use.
// Use NewButtonSet() or Clone().
type ButtonSet map[MouseButton]struct{}

// NewButtonSet returns a ButtonSet containing the specified buttons.
func NewButtonSet(buttons ...MouseButton) ButtonSet {
	s := make(ButtonSet, len(buttons))
	for _, b := range buttons {
		s[b] = struct{}{}
	}
	return s
}

// Has returns true if the button is in the set.
func (s ButtonSet) Has(b MouseButton) bool {
	_, ok := s[b]
	return ok
}

// Sorted returns the buttons in the set in sorted order.
func (s ButtonSet) Sorted() []MouseButton {
	return slices.Sorted(maps.Keys(s))
}

// Clone returns a copy of the set. The copy of a nil set is an empty set.
func (s ButtonSet) Clone() ButtonSet {
	c := make(ButtonSet, len(s))
	maps.Copy(c, s)
	return c
}

func (s ButtonSet) String() string {
	b := s.Sorted()
	n := make([]string, len(b))
	for i := range b {
		n[i] = b[i].String()
	}
	return strings.Join(n, "+")
}

// MarshalJSON implements the json.Marshaler interface. The set is written as
// a sorted array.
func (s ButtonSet) MarshalJSON() ([]byte, error) {
	b := s.Sorted()
	if b == nil {
		b = []MouseButton{}
	}
	return json.Marshal(b)
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (s *ButtonSet) UnmarshalJSON(b []byte) error {
	var v []MouseButton
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}
	*s = NewButtonSet(v...)
	return nil
}

// Held tracks the keys and mouse buttons that are currently held down.
type Held struct {
	Keys    KeySet
	Buttons ButtonSet
}

// NewHeld is the preferred method of initialisation for the Held type.
func NewHeld() Held {
	return Held{
		Keys:    NewKeySet(),
		Buttons: NewButtonSet(),
	}
}

// Apply updates the held sets from the event. Returns true if the event was
// one that can change the held sets.
func (h *Held) Apply(ev Event) bool {
	if h.Keys == nil {
		h.Keys = NewKeySet()
	}
	if h.Buttons == nil {
		h.Buttons = NewButtonSet()
	}

	switch ev.Kind {
	case KindKeyDown:
		h.Keys[ev.Key] = struct{}{}
	case KindKeyUp:
		delete(h.Keys, ev.Key)
	case KindMouseDown:
		h.Buttons[ev.Button] = struct{}{}
	case KindMouseUp:
		delete(h.Buttons, ev.Button)
	default:
		return false
	}

	return true
}

// Clone returns a deep copy of the held sets.
func (h Held) Clone() Held {
	return Held{
		Keys:    h.Keys.Clone(),
		Buttons: h.Buttons.Clone(),
	}
}

// Clear empties both sets.
func (h *Held) Clear() {
	h.Keys = NewKeySet()
	h.Buttons = NewButtonSet()
}

// Equal returns true if both held sets contain the same keys and buttons.
func (h Held) Equal(o Held) bool {
	return maps.Equal(h.Keys, o.Keys) && maps.Equal(h.Buttons, o.Buttons)
}

func (h Held) String() string {
	return "keys [" + h.Keys.String() + "] buttons [" + h.Buttons.String() + "]"
}
