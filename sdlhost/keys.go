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

package sdlhost

import (
	"strings"

	"github.com/jetsetilly/tasharness/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// SDL names the modifier keys differently to the rest of the harness
var keyNames = map[string]userinput.Key{
	"Left Alt":    userinput.KeyLAlt,
	"Right Alt":   userinput.KeyRAlt,
	"Left Shift":  "LShift",
	"Right Shift": "RShift",
	"Left Ctrl":   "LCtrl",
	"Right Ctrl":  "RCtrl",
	"Left GUI":    "LGUI",
	"Right GUI":   "RGUI",
	"Enter":       userinput.KeyReturn,
}

// keyName converts an SDL key name to a userinput.Key. Unnamed keys return
// the empty string.
func keyName(name string) userinput.Key {
	if name == "" {
		return ""
	}
	if k, ok := keyNames[name]; ok {
		return k
	}
	return userinput.NormaliseKey(strings.ReplaceAll(name, " ", ""))
}

func mouseButton(b uint8) userinput.MouseButton {
	switch b {
	case sdl.BUTTON_LEFT:
		return userinput.MouseButtonLeft
	case sdl.BUTTON_MIDDLE:
		return userinput.MouseButtonMiddle
	case sdl.BUTTON_RIGHT:
		return userinput.MouseButtonRight
	case sdl.BUTTON_X1:
		return userinput.MouseButtonX1
	case sdl.BUTTON_X2:
		return userinput.MouseButtonX2
	}
	return userinput.MouseButtonNone
}
