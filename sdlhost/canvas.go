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

	"github.com/veandco/go-sdl2/sdl"
)

// CellSize is the width and height in pixels of each cell in the canvas.
const CellSize = 16

// Canvas is a grid of cells drawn to an SDL window. Each cell that has been
// set is drawn as a filled square, coloured by the rune it holds. It
// implements the tas.Surface and host.Presenter interfaces.
type Canvas struct {
	window   *sdl.Window
	renderer *sdl.Renderer
	owner    assert.Goroutine

	width  int
	height int
	cells  [][]rune

	// called by Present() and used as the window title
	Status func() string
	title  string
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
// The window should be CellSize times larger than the grid in each
// dimension.
func NewCanvas(window *sdl.Window, width int, height int) (*Canvas, error) {
	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, curated.Errorf(SDL, err)
	}

	c := &Canvas{
		window:   window,
		renderer: renderer,
		owner:    assert.Owner(),
		width:    width,
		height:   height,
		cells:    make([][]rune, height),
		title:    window.GetTitle(),
	}
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
	}
	c.Clear()

	return c, nil
}

// Destroy the renderer.
func (c *Canvas) Destroy() {
	_ = c.renderer.Destroy()
}

// Size implements the tas.Surface interface.
func (c *Canvas) Size() (int, int) {
	return c.width, c.height
}

// Clear the grid.
func (c *Canvas) Clear() {
	for y := range c.cells {
		for x := range c.cells[y] {
			c.cells[y][x] = ' '
		}
	}
}

// Set the rune at the position. Positions outside the grid are ignored.
func (c *Canvas) Set(x int, y int, r rune) {
	if y < 0 || y >= c.height || x < 0 || x >= c.width {
		return
	}
	c.cells[y][x] = r
}

// Print the string starting at the position. The string is cropped at the
// edge of the grid.
func (c *Canvas) Print(x int, y int, s string) {
	for _, r := range s {
		c.Set(x, y, r)
		x++
	}
}

// Present implements the host.Presenter interface.
func (c *Canvas) Present() error {
	c.owner.Check("sdlhost.Present")

	err := c.renderer.SetDrawColor(0, 0, 0, 255)
	if err != nil {
		return curated.Errorf(SDL, err)
	}
	err = c.renderer.Clear()
	if err != nil {
		return curated.Errorf(SDL, err)
	}

	for y := range c.cells {
		for x, r := range c.cells[y] {
			if r == ' ' {
				continue
			}
			col := palette(r)
			err = c.renderer.SetDrawColor(col.R, col.G, col.B, 255)
			if err != nil {
				return curated.Errorf(SDL, err)
			}
			err = c.renderer.FillRect(&sdl.Rect{
				X: int32(x * CellSize), Y: int32(y * CellSize),
				W: CellSize - 1, H: CellSize - 1,
			})
			if err != nil {
				return curated.Errorf(SDL, err)
			}
		}
	}

	c.renderer.Present()

	if c.Status != nil {
		c.window.SetTitle(c.title + " :: " + c.Status())
	}

	return nil
}

// palette chooses a colour for the rune. Letters and digits share a colour so
// that text is readable as a block.
func palette(r rune) sdl.Color {
	switch {
	case r == '@':
		return sdl.Color{R: 80, G: 220, B: 80, A: 255}
	case r == '*':
		return sdl.Color{R: 230, G: 200, B: 40, A: 255}
	case r == '#' || r == '-' || r == '|' || r == '+':
		return sdl.Color{R: 90, G: 90, B: 110, A: 255}
	}
	return sdl.Color{R: 200, G: 200, B: 220, A: 255}
}
