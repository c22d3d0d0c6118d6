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
	"fmt"
	"strings"

	"github.com/jetsetilly/tasharness/curated"
)

// Sentinal error patterns.
const (
	UnknownKind   = "userinput: unknown event kind (%s)"
	UnknownButton = "userinput: unknown mouse button (%s)"
)

// Kind identifies the type of an Event.
type Kind int

// List of valid Kind values.
const (
	KindNone Kind = iota
	KindKeyDown
	KindKeyUp
	KindMouseDown
	KindMouseUp
	KindMouseMove
	KindWheel
	KindText

	// quit is generated by a host when the user has requested that the
	// application ends. it is never recorded
	KindQuit
)

var kindNames = []string{"None", "KeyDown", "KeyUp", "MouseDown", "MouseUp", "MouseMove", "Wheel", "Text", "Quit"}

func (k Kind) String() string {
	if int(k) < len(kindNames) && k >= 0 {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Valid returns true if the Kind is one of the listed kinds. The zero value
// KindNone is not valid.
func (k Kind) Valid() bool {
	return k > KindNone && int(k) < len(kindNames)
}

// MarshalText implements the encoding.TextMarshaler interface.
func (k Kind) MarshalText() ([]byte, error) {
	if !k.Valid() {
		return nil, curated.Errorf(UnknownKind, k)
	}
	return []byte(k.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (k *Kind) UnmarshalText(b []byte) error {
	for i, n := range kindNames[1:] {
		if n == string(b) {
			*k = Kind(i + 1)
			return nil
		}
	}
	return curated.Errorf(UnknownKind, string(b))
}

// Key is the name of a keyboard key. Names follow SDL conventions: letters
// are upper case ("A"), digits are as they appear ("1") and special keys are
// named ("Left", "Space", "Return", "Escape", "LAlt").
type Key string

// List of named keys used by the harness.
const (
	KeyLAlt      Key = "LAlt"
	KeyRAlt      Key = "RAlt"
	KeyLeft      Key = "Left"
	KeyRight     Key = "Right"
	KeyArrowUp   Key = "Up"
	KeyArrowDown Key = "Down"
	KeySpace     Key = "Space"
	KeyReturn    Key = "Return"
	KeyEscape    Key = "Escape"
)

// NormaliseKey returns the key name in the canonical form. Single letters
// are upper case. Other names are returned trimmed but otherwise unchanged.
func NormaliseKey(s string) Key {
	s = strings.TrimSpace(s)
	if len(s) == 1 {
		return Key(strings.ToUpper(s))
	}
	return Key(s)
}

// MouseButton identifies a mouse button.
type MouseButton int

// List of valid MouseButton values.
const (
	MouseButtonNone MouseButton = iota
	MouseButtonLeft
	MouseButtonMiddle
	MouseButtonRight
	MouseButtonX1
	MouseButtonX2
)

var buttonNames = []string{"None", "Left", "Middle", "Right", "X1", "X2"}

func (b MouseButton) String() string {
	if int(b) < len(buttonNames) && b >= 0 {
		return buttonNames[b]
	}
	return fmt.Sprintf("MouseButton(%d)", int(b))
}

// MarshalText implements the encoding.TextMarshaler interface.
func (b MouseButton) MarshalText() ([]byte, error) {
	if b < MouseButtonNone || int(b) >= len(buttonNames) {
		return nil, curated.Errorf(UnknownButton, b)
	}
	return []byte(b.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (b *MouseButton) UnmarshalText(t []byte) error {
	for i, n := range buttonNames {
		if n == string(t) {
			*b = MouseButton(i)
			return nil
		}
	}
	return curated.Errorf(UnknownButton, string(t))
}

// Event is a single input event. Which fields are meaningful depends on the
// Kind:
//
//	KeyDown, KeyUp       Key, Repeat
//	MouseDown, MouseUp   Button, X, Y
//	MouseMove            X, Y
//	Wheel                X, Y (scroll amount)
//	Text                 Text
//
// Unused fields should be left as the zero value so that equality comparisons
// work as expected.
type Event struct {
	Kind   Kind        `json:"kind"`
	Key    Key         `json:"key,omitempty"`
	Repeat bool        `json:"repeat,omitempty"`
	Button MouseButton `json:"button,omitempty"`
	X      int         `json:"x,omitempty"`
	Y      int         `json:"y,omitempty"`
	Text   string      `json:"text,omitempty"`
}

func (ev Event) String() string {
	switch ev.Kind {
	case KindKeyDown, KindKeyUp:
		if ev.Repeat {
			return fmt.Sprintf("%s %s (repeat)", ev.Kind, ev.Key)
		}
		return fmt.Sprintf("%s %s", ev.Kind, ev.Key)
	case KindMouseDown, KindMouseUp:
		return fmt.Sprintf("%s %s (%d, %d)", ev.Kind, ev.Button, ev.X, ev.Y)
	case KindMouseMove, KindWheel:
		return fmt.Sprintf("%s (%d, %d)", ev.Kind, ev.X, ev.Y)
	case KindText:
		return fmt.Sprintf("%s %q", ev.Kind, ev.Text)
	}
	return ev.Kind.String()
}

// KeyDown returns a KeyDown event for the key.
func KeyDown(k Key) Event {
	return Event{Kind: KindKeyDown, Key: k}
}

// KeyUp returns a KeyUp event for the key.
func KeyUp(k Key) Event {
	return Event{Kind: KindKeyUp, Key: k}
}

// MouseDown returns a MouseDown event for the button at the pointer position.
func MouseDown(b MouseButton, x, y int) Event {
	return Event{Kind: KindMouseDown, Button: b, X: x, Y: y}
}

// MouseUp returns a MouseUp event for the button at the pointer position.
func MouseUp(b MouseButton, x, y int) Event {
	return Event{Kind: KindMouseUp, Button: b, X: x, Y: y}
}

// MouseMove returns a MouseMove event for the new pointer position.
func MouseMove(x, y int) Event {
	return Event{Kind: KindMouseMove, X: x, Y: y}
}

// Wheel returns a Wheel event for the scroll amount.
func Wheel(x, y int) Event {
	return Event{Kind: KindWheel, X: x, Y: y}
}

// Text returns a Text event.
func Text(s string) Event {
	return Event{Kind: KindText, Text: s}
}

// Quit returns a Quit event.
func Quit() Event {
	return Event{Kind: KindQuit}
}
