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
	"io"
	"slices"

	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/userinput"
)

// DefaultHoldFrames is the number of frames a key is held after it was last
// pressed. Terminal auto-repeat usually starts after half a second.
const DefaultHoldFrames = 35

// Host decodes terminal input into events. It implements the host.Source and
// tas.Transport interfaces.
type Host struct {
	bytes chan []byte

	holdFrames int

	// the key sent with a key when the terminal reports an alt chord
	modifier userinput.Key

	// events decoded and waiting for Poll()
	pending []userinput.Event

	// keys physically held and the frame at which they will be released
	physical userinput.KeySet
	expiry   map[userinput.Key]int

	frame   int
	inFrame bool
	closed  bool

	// keys and buttons held in the simulation
	keys    userinput.KeySet
	buttons userinput.ButtonSet
}

// NewHost is the preferred method of initialisation for the Host type. Input
// is read from r on a new goroutine.
//
// The terminal reports an Alt+key chord as a single press. The chord is sent
// as the modifier key held around the key. An empty modifier means LAlt.
func NewHost(r io.Reader, holdFrames int, modifier userinput.Key) *Host {
	ch := make(chan []byte, 64)
	go func() {
		defer close(ch)
		buf := make([]byte, 64)
		for {
			n, err := r.Read(buf)
			if n > 0 {
				ch <- slices.Clone(buf[:n])
			}
			if err != nil {
				if err != io.EOF {
					logger.Log(logger.Allow, "terminal", err)
				}
				return
			}
		}
	}()
	return newHost(ch, holdFrames, modifier)
}

func newHost(ch chan []byte, holdFrames int, modifier userinput.Key) *Host {
	if holdFrames <= 0 {
		holdFrames = DefaultHoldFrames
	}
	if modifier == "" {
		modifier = userinput.KeyLAlt
	}
	return &Host{
		bytes:      ch,
		holdFrames: holdFrames,
		modifier:   modifier,
		physical:   userinput.NewKeySet(),
		expiry:     make(map[userinput.Key]int),
		keys:       userinput.NewKeySet(),
		buttons:    userinput.NewButtonSet(),
	}
}

// Poll implements the host.Source interface. The first call of each frame
// releases expired keys and decodes any input that has arrived.
func (h *Host) Poll() (userinput.Event, bool) {
	if !h.inFrame {
		h.inFrame = true
		h.frame++
		h.expire()
		h.drain()
	}

	if len(h.pending) == 0 {
		h.inFrame = false
		return userinput.Event{}, false
	}

	ev := h.pending[0]
	h.pending = h.pending[1:]

	switch ev.Kind {
	case userinput.KindKeyDown:
		h.physical[ev.Key] = struct{}{}
	case userinput.KindKeyUp:
		delete(h.physical, ev.Key)
	}

	return ev, true
}

func (h *Host) expire() {
	var released []userinput.Key
	for k, f := range h.expiry {
		if f <= h.frame {
			released = append(released, k)
		}
	}
	slices.Sort(released)
	for _, k := range released {
		delete(h.expiry, k)
		h.pending = append(h.pending, userinput.KeyUp(k))
	}
}

func (h *Host) drain() {
	if h.closed {
		return
	}

	for {
		select {
		case b, ok := <-h.bytes:
			if !ok {
				h.closed = true
				h.pending = append(h.pending, userinput.Quit())
				return
			}
			for _, p := range decode(b) {
				h.add(p)
			}
		default:
			return
		}
	}
}

func (h *Host) add(p press) {
	if p.quit {
		h.pending = append(h.pending, userinput.Quit())
		return
	}

	if p.alt {
		h.pending = append(h.pending,
			userinput.KeyDown(h.modifier),
			userinput.KeyDown(p.key),
			userinput.KeyUp(p.key),
			userinput.KeyUp(h.modifier),
		)
		return
	}

	if _, ok := h.expiry[p.key]; !ok {
		h.pending = append(h.pending, userinput.KeyDown(p.key))
	}
	h.expiry[p.key] = h.frame + h.holdFrames

	if p.text != "" {
		h.pending = append(h.pending, userinput.Text(p.text))
	}
}

// IsKeyHeld implements the tas.Transport interface.
func (h *Host) IsKeyHeld(key userinput.Key) bool {
	return h.physical.Has(key)
}

// SetPressedKeys implements the tas.Transport interface.
func (h *Host) SetPressedKeys(keys userinput.KeySet) {
	h.keys = keys
}

// SetPressedButtons implements the tas.Transport interface.
func (h *Host) SetPressedButtons(buttons userinput.ButtonSet) {
	h.buttons = buttons
}

// Pressed returns true if the key is held in the simulation.
func (h *Host) Pressed(key userinput.Key) bool {
	return h.keys.Has(key)
}
