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
	"strings"
)

// Canvas is a grid of characters drawn to a terminal. It implements the
// tas.Surface and host.Presenter interfaces.
type Canvas struct {
	out    io.Writer
	width  int
	height int
	cells  [][]rune

	// called by Present() for the line below the grid
	Status func() string
}

// NewCanvas is the preferred method of initialisation for the Canvas type.
func NewCanvas(out io.Writer, width int, height int) *Canvas {
	c := &Canvas{
		out:    out,
		width:  width,
		height: height,
		cells:  make([][]rune, height),
	}
	for y := range c.cells {
		c.cells[y] = make([]rune, width)
	}
	c.Clear()
	return c
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

// Set the character at the position. Positions outside the grid are ignored.
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
	s := strings.Builder{}
	s.WriteString(ansiHome)
	for y := range c.cells {
		s.WriteString(string(c.cells[y]))
		s.WriteString(ansiClearLine)
		s.WriteString("\r\n")
	}
	if c.Status != nil {
		s.WriteString(c.Status())
	}
	s.WriteString(ansiClearLine)

	_, err := io.WriteString(c.out, s.String())
	return err
}
