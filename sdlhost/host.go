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
	"github.com/jetsetilly/tasharness/assert"
	"github.com/jetsetilly/tasharness/curated"
	"github.com/jetsetilly/tasharness/userinput"

	"github.com/veandco/go-sdl2/sdl"
)

// Sentinal error patterns.
const (
	SDL = "sdl: %v"
)

// Host services the SDL event queue. It implements the host.Source and
// tas.Transport interfaces.
type Host struct {
	window *sdl.Window

	// SDL must only be serviced by the goroutine that initialised it
	owner assert.Goroutine

	physical userinput.KeySet

	// keys held in the simulation
	keys userinput.KeySet

	// last reported mouse position
	mx, my int32
}

// NewHost is the preferred method of initialisation for the Host type. The
// window is created with the given size and shown immediately.
func NewHost(title string, width int, height int) (*Host, error) {
	err := sdl.Init(sdl.INIT_VIDEO)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	h := &Host{
		owner:    assert.Owner(),
		physical: userinput.NewKeySet(),
		keys:     userinput.NewKeySet(),
	}

	h.window, err = sdl.CreateWindow(title,
		sdl.WINDOWPOS_CENTERED, sdl.WINDOWPOS_CENTERED,
		int32(width), int32(height),
		sdl.WINDOW_SHOWN)
	if err != nil {
		sdl.Quit()
		return nil, curated.Errorf(SDL, err)
	}

	sdl.StartTextInput()

	return h, nil
}

// Destroy the window and shut down SDL.
func (h *Host) Destroy() {
	sdl.StopTextInput()
	if h.window != nil {
		_ = h.window.Destroy()
	}
	sdl.Quit()
}

// Window returns the SDL window the host created.
func (h *Host) Window() *sdl.Window {
	return h.window
}

// Poll implements the host.Source interface. Events that have no meaning to
// the harness are skipped.
func (h *Host) Poll() (userinput.Event, bool) {
	h.owner.Check("sdlhost.Poll")
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if e, ok := h.translate(ev); ok {
			return e, true
		}
	}
	return userinput.Event{}, false
}

func (h *Host) translate(ev sdl.Event) (userinput.Event, bool) {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return userinput.Quit(), true

	case *sdl.KeyboardEvent:
		key := keyName(sdl.GetKeyName(ev.Keysym.Sym))
		if key == "" {
			return userinput.Event{}, false
		}

		switch ev.Type {
		case sdl.KEYDOWN:
			h.physical[key] = struct{}{}
			e := userinput.KeyDown(key)
			e.Repeat = ev.Repeat != 0
			return e, true
		case sdl.KEYUP:
			delete(h.physical, key)
			return userinput.KeyUp(key), true
		}

	case *sdl.TextInputEvent:
		s := ev.GetText()
		if s == "" {
			return userinput.Event{}, false
		}
		return userinput.Text(s), true

	case *sdl.MouseButtonEvent:
		b := mouseButton(ev.Button)
		if b == userinput.MouseButtonNone {
			return userinput.Event{}, false
		}
		if ev.Type == sdl.MOUSEBUTTONDOWN {
			return userinput.MouseDown(b, int(ev.X), int(ev.Y)), true
		}
		return userinput.MouseUp(b, int(ev.X), int(ev.Y)), true

	case *sdl.MouseMotionEvent:
		if ev.X == h.mx && ev.Y == h.my {
			return userinput.Event{}, false
		}
		h.mx = ev.X
		h.my = ev.Y
		return userinput.MouseMove(int(ev.X), int(ev.Y)), true

	case *sdl.MouseWheelEvent:
		if ev.X == 0 && ev.Y == 0 {
			return userinput.Event{}, false
		}
		return userinput.Wheel(int(ev.X), int(ev.Y)), true
	}

	return userinput.Event{}, false
}

// IsKeyHeld implements the tas.Transport interface.
func (h *Host) IsKeyHeld(key userinput.Key) bool {
	return h.physical.Has(key)
}

// SetPressedKeys implements the tas.Transport interface.
func (h *Host) SetPressedKeys(keys userinput.KeySet) {
	h.keys = keys
}

// SetPressedButtons implements the tas.Transport interface. The canvas has no
// pointer so held buttons are not needed.
func (h *Host) SetPressedButtons(_ userinput.ButtonSet) {
}

// Pressed returns true if the key is held in the simulation.
func (h *Host) Pressed(key userinput.Key) bool {
	return h.keys.Has(key)
}
