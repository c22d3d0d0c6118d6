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

package terminal

import "github.com/jetsetilly/tasharness/userinput"

// press is a single decoded key press.
type press struct {
	key  userinput.Key
	text string
	alt  bool
	quit bool
}

var cursorKeys = map[byte]userinput.Key{
	CursorUp:       userinput.KeyArrowUp,
	CursorDown:     userinput.KeyArrowDown,
	CursorForward:  userinput.KeyRight,
	CursorBackward: userinput.KeyLeft,
}

// decodeByte decodes a byte that is not part of an escape sequence. Returns
// false if the byte has no meaning.
func decodeByte(b byte) (press, bool) {
	switch {
	case b == KeyCtrlC:
		return press{quit: true}, true
	case b == KeyCarriageReturn || b == KeyLineFeed:
		return press{key: userinput.KeyReturn}, true
	case b == KeySpace:
		return press{key: userinput.KeySpace, text: " "}, true
	case b == KeyTab:
		return press{key: "Tab"}, true
	case b == KeyBackspace:
		return press{key: "Backspace"}, true
	case b > KeySpace && b < KeyBackspace:
		return press{key: userinput.NormaliseKey(string(b)), text: string(b)}, true
	}
	return press{}, false
}

// decode the bytes read from the terminal. An escape sequence split over two
// reads is decoded as the escape key followed by ordinary presses.
func decode(b []byte) []press {
	var p []press

	for i := 0; i < len(b); i++ {
		if b[i] != KeyEsc {
			if d, ok := decodeByte(b[i]); ok {
				p = append(p, d)
			}
			continue
		}

		// cursor keys
		if i+2 < len(b) && b[i+1] == EscCursor {
			if k, ok := cursorKeys[b[i+2]]; ok {
				p = append(p, press{key: k})
				i += 2
				continue
			}
		}

		// alt and a key
		if i+1 < len(b) && b[i+1] != KeyEsc {
			if d, ok := decodeByte(b[i+1]); ok && !d.quit {
				d.alt = true
				d.text = ""
				p = append(p, d)
				i++
				continue
			}
		}

		p = append(p, press{key: userinput.KeyEscape})
	}

	return p
}
