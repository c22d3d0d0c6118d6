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

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/jetsetilly/tasharness/test"
	"github.com/jetsetilly/tasharness/userinput"
)

func TestDecode(t *testing.T) {
	require.Equal(t, []press{
		{key: "A", text: "a"},
		{key: userinput.KeySpace, text: " "},
		{key: "B", text: "B"},
		{key: userinput.KeyReturn},
	}, decode([]byte("a B\r")))

	require.Equal(t, []press{
		{key: userinput.KeyArrowUp},
		{key: userinput.KeyLeft},
	}, decode([]byte("\033[A\033[D")))

	require.Equal(t, []press{
		{key: "K", alt: true},
		{key: userinput.KeyEscape},
	}, decode([]byte("\033k\033")))

	require.Equal(t, []press{
		{quit: true},
	}, decode([]byte{KeyCtrlC, 0x01}))
}

// poll returns the events for one frame.
func poll(h *Host) []string {
	var s []string
	for {
		ev, ok := h.Poll()
		if !ok {
			return s
		}
		s = append(s, ev.String())
	}
}

func TestHost(t *testing.T) {
	ch := make(chan []byte, 10)
	h := newHost(ch, 3, "")

	ch <- []byte("d")
	require.Equal(t, []string{"KeyDown D", `Text "d"`}, poll(h))
	test.ExpectSuccess(t, h.IsKeyHeld("D"))

	// auto-repeat extends the hold
	ch <- []byte("d")
	require.Equal(t, []string{`Text "d"`}, poll(h))
	test.ExpectEquality(t, len(poll(h)), 0)
	test.ExpectEquality(t, len(poll(h)), 0)
	require.Equal(t, []string{"KeyUp D"}, poll(h))
	test.ExpectFailure(t, h.IsKeyHeld("D"))

	// alt is held for the duration of the chord
	ch <- []byte("\033s")
	var held []bool
	for {
		ev, ok := h.Poll()
		if !ok {
			break
		}
		if ev.Key == "S" {
			held = append(held, h.IsKeyHeld(userinput.KeyLAlt))
		}
	}
	require.Equal(t, []bool{true, true}, held)
	test.ExpectFailure(t, h.IsKeyHeld(userinput.KeyLAlt))

	// closing the input quits
	close(ch)
	require.Equal(t, []string{"Quit"}, poll(h))
}

func TestHostModifier(t *testing.T) {
	ch := make(chan []byte, 1)
	h := newHost(ch, 3, "RCtrl")

	ch <- []byte("\033k")
	require.Equal(t, []string{"KeyDown RCtrl", "KeyDown K", "KeyUp K", "KeyUp RCtrl"}, poll(h))
	test.ExpectFailure(t, h.IsKeyHeld(userinput.KeyLAlt))
}

func TestOpenRequiresFiles(t *testing.T) {
	_, err := Open(nil, nil)
	test.ExpectFailure(t, err)
}

func TestHostTransport(t *testing.T) {
	h := newHost(make(chan []byte), 0, "")
	test.ExpectFailure(t, h.Pressed("A"))
	h.SetPressedKeys(userinput.NewKeySet("A"))
	test.ExpectSuccess(t, h.Pressed("A"))
	test.ExpectFailure(t, h.IsKeyHeld("A"))
}

func TestCanvas(t *testing.T) {
	w := &test.Writer{}
	c := NewCanvas(w, 4, 2)
	c.Set(0, 0, '@')
	c.Set(10, 10, '!')
	c.Print(1, 1, "abcdef")
	c.Status = func() string { return "Paused" }

	test.DemandSuccess(t, c.Present())
	test.ExpectSuccess(t, w.Compare(ansiHome+"@   "+ansiClearLine+"\r\n"+" abc"+ansiClearLine+"\r\n"+"Paused"+ansiClearLine), w.String())
}
