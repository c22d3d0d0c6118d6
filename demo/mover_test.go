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

package demo_test

import (
	"strings"
	"testing"

	"github.com/jetsetilly/tasharness/demo"
	"github.com/jetsetilly/tasharness/logger"
	"github.com/jetsetilly/tasharness/tas"
	"github.com/jetsetilly/tasharness/test"
	"github.com/jetsetilly/tasharness/userinput"
)

type keyboard struct {
	keys userinput.KeySet
}

func (k *keyboard) Pressed(key userinput.Key) bool {
	return k.keys.Has(key)
}

type canvas struct {
	grid [demo.Height + 3][demo.Width + 2]rune
	text string
}

func (c *canvas) Size() (int, int) {
	return demo.Width + 2, demo.Height + 3
}

func (c *canvas) Clear() {
	c.grid = [demo.Height + 3][demo.Width + 2]rune{}
	c.text = ""
}

func (c *canvas) Set(x int, y int, r rune) {
	c.grid[y][x] = r
}

func (c *canvas) Print(_ int, _ int, s string) {
	c.text = s
}

func TestMover(t *testing.T) {
	kb := &keyboard{keys: userinput.NewKeySet()}
	m := demo.NewMover(kb, 1)
	start := m.Save()
	test.ExpectEquality(t, start.X, demo.Width/2)

	kb.keys = userinput.NewKeySet(userinput.KeyRight)
	for range 4 {
		m.FixedUpdate(0)
	}
	test.ExpectEquality(t, m.Save().X, start.X+2)

	// the marker stays inside the field
	kb.keys = userinput.NewKeySet("W")
	for range demo.Height * 4 {
		m.FixedUpdate(0)
	}
	test.ExpectEquality(t, m.Save().Y, 0)

	m.HandleEvent(userinput.Text("hello"))
	m.HandleEvent(userinput.MouseDown(userinput.MouseButtonLeft, 1, 1))
	test.ExpectEquality(t, m.Save().Text, "hello")
	test.ExpectEquality(t, m.Save().Clicks, 1)
	m.HandleEvent(userinput.KeyDown(userinput.KeyReturn))
	test.ExpectEquality(t, m.Save().Text, "")

	// load restores the earlier state
	m.Load(start)
	test.ExpectEquality(t, m.Save(), start)
}

func TestMoverDraw(t *testing.T) {
	m := demo.NewMover(&keyboard{}, 1)
	c := &canvas{}
	m.Draw(c)

	s := m.Save()
	test.ExpectEquality(t, c.grid[s.Y+1][s.X+1], '@')
	test.ExpectEquality(t, c.grid[s.TargetY+1][s.TargetX+1], '*')
	test.ExpectSuccess(t, strings.HasPrefix(c.text, "score 0"))
}

// the mover is deterministic when driven by the harness. two recordings with
// the same inputs and seed end in the same state.
func TestMoverDeterminism(t *testing.T) {
	run := func() demo.State {
		p, err := tas.NewPreferences("")
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, p.StatesFile.Set(""))
		test.DemandSuccess(t, p.StartPaused.Set(false))

		transport := &tas.Headless{}
		m := demo.NewMover(transport, 99)
		ctrl, err := tas.NewController[demo.State](m, transport, p, logger.Deny)
		test.DemandSuccess(t, err)

		for i := range 200 {
			switch i % 50 {
			case 0:
				ctrl.HandleEvent(userinput.KeyDown(userinput.KeyRight))
			case 20:
				ctrl.HandleEvent(userinput.KeyUp(userinput.KeyRight))
				ctrl.HandleEvent(userinput.KeyDown(userinput.KeyArrowDown))
			case 35:
				ctrl.HandleEvent(userinput.KeyUp(userinput.KeyArrowDown))
			}
			ctrl.FixedUpdate(1.0 / 60.0)
		}
		return m.Save()
	}

	a := run()
	b := run()
	test.ExpectEquality(t, a, b)
	test.ExpectEquality(t, a.Tick, 200)
}
