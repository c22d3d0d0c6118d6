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

package demo

import (
	"fmt"

	"github.com/jetsetilly/tasharness/random"
	"github.com/jetsetilly/tasharness/tas"
	"github.com/jetsetilly/tasharness/userinput"
)

// Size of the field.
const (
	Width  = 40
	Height = 16
)

// maximum length of typed text that is remembered
const maxText = 24

// Keyboard reports the keys that are held in the simulation.
type Keyboard interface {
	Pressed(key userinput.Key) bool
}

// Canvas is a character grid that the Mover can draw to.
type Canvas interface {
	tas.Surface
	Clear()
	Set(x int, y int, r rune)
	Print(x int, y int, s string)
}

// State is the saved state of a Mover.
type State struct {
	Seed    int64   `json:"seed"`
	Tick    int     `json:"tick"`
	Elapsed float64 `json:"elapsed"`
	X       int     `json:"x"`
	Y       int     `json:"y"`
	TargetX int     `json:"target_x"`
	TargetY int     `json:"target_y"`
	Score   int     `json:"score"`
	Clicks  int     `json:"clicks"`
	Text    string  `json:"text"`
}

func (s State) String() string {
	return fmt.Sprintf("tick %d score %d at (%d, %d)", s.Tick, s.Score, s.X, s.Y)
}

// Mover is the demo subject. It implements the tas.Subject interface.
type Mover struct {
	state    State
	keyboard Keyboard
	rnd      *random.Random
}

// NewMover is the preferred method of initialisation for the Mover type.
func NewMover(keyboard Keyboard, seed int64) *Mover {
	m := &Mover{
		keyboard: keyboard,
	}
	m.rnd = random.NewRandom(m, seed)
	m.state = State{
		Seed: seed,
		X:    Width / 2,
		Y:    Height / 2,
	}
	m.placeTarget()
	return m
}

// Tick implements the random.Ticker interface.
func (m *Mover) Tick() int {
	return m.state.Tick
}

// the target is never placed under the marker
func (m *Mover) placeTarget() {
	for salt := 0; ; salt += 2 {
		m.state.TargetX = m.rnd.Intn(Width, salt)
		m.state.TargetY = m.rnd.Intn(Height, salt+1)
		if m.state.TargetX != m.state.X || m.state.TargetY != m.state.Y {
			return
		}
	}
}

// Save implements the tas.Subject interface.
func (m *Mover) Save() State {
	return m.state
}

// Load implements the tas.Subject interface.
func (m *Mover) Load(s State) {
	m.state = s
	m.rnd.Seed = s.Seed
}

// Update implements the tas.Subject interface.
func (m *Mover) Update(dt float64) {
	m.state.Elapsed += dt
}

func (m *Mover) held(keys ...userinput.Key) bool {
	for _, k := range keys {
		if m.keyboard.Pressed(k) {
			return true
		}
	}
	return false
}

// FixedUpdate implements the tas.Subject interface.
func (m *Mover) FixedUpdate(_ float64) {
	m.state.Tick++

	// the marker moves every other tick
	if m.state.Tick%2 != 0 {
		return
	}

	if m.held(userinput.KeyLeft, "A") {
		m.state.X--
	}
	if m.held(userinput.KeyRight, "D") {
		m.state.X++
	}
	if m.held(userinput.KeyArrowUp, "W") {
		m.state.Y--
	}
	if m.held(userinput.KeyArrowDown, "S") {
		m.state.Y++
	}
	m.state.X = min(max(m.state.X, 0), Width-1)
	m.state.Y = min(max(m.state.Y, 0), Height-1)

	if m.state.X == m.state.TargetX && m.state.Y == m.state.TargetY {
		m.state.Score++
		m.placeTarget()
	}
}

// HandleEvent implements the tas.Subject interface.
func (m *Mover) HandleEvent(ev userinput.Event) {
	switch ev.Kind {
	case userinput.KindText:
		m.state.Text += ev.Text
		if len(m.state.Text) > maxText {
			m.state.Text = m.state.Text[len(m.state.Text)-maxText:]
		}
	case userinput.KindMouseDown:
		m.state.Clicks++
	case userinput.KindKeyDown:
		if ev.Key == userinput.KeyReturn {
			m.state.Text = ""
		}
	}
}

// Draw implements the tas.Subject interface. Nothing is drawn if the surface
// is not a Canvas.
func (m *Mover) Draw(surface tas.Surface) {
	c, ok := surface.(Canvas)
	if !ok {
		return
	}

	c.Clear()
	for x := -1; x <= Width; x++ {
		c.Set(x+1, 0, '-')
		c.Set(x+1, Height+1, '-')
	}
	for y := range Height {
		c.Set(0, y+1, '|')
		c.Set(Width+1, y+1, '|')
	}
	c.Set(m.state.TargetX+1, m.state.TargetY+1, '*')
	c.Set(m.state.X+1, m.state.Y+1, '@')
	c.Print(0, Height+2, fmt.Sprintf("score %d  clicks %d  %s", m.state.Score, m.state.Clicks, m.state.Text))
}
